package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	convey.Convey("Given a fresh registry", t, func() {
		registry := prometheus.NewRegistry()

		convey.Convey("When a manager is created with defaults", func() {
			m := NewManager(WithPrometheusRegistry(registry))

			convey.Convey("Then it should carry the default configuration", func() {
				convey.So(m.namespace, convey.ShouldEqual, "revibe")
				convey.So(m.subsystem, convey.ShouldEqual, "mood")
				convey.So(m.enabled, convey.ShouldBeTrue)
				convey.So(m.refreshInterval, convey.ShouldEqual, defaultRefreshInterval)
			})

			convey.Convey("And all metrics should be initialized", func() {
				convey.So(m.predictionsTotal, convey.ShouldNotBeNil)
				convey.So(m.predictionLatency, convey.ShouldNotBeNil)
				convey.So(m.moodScoreDistribution, convey.ShouldNotBeNil)
				convey.So(m.recommendationsEmitted, convey.ShouldNotBeNil)
				convey.So(m.validationFailures, convey.ShouldNotBeNil)
				convey.So(m.httpRequests, convey.ShouldNotBeNil)
				convey.So(m.systemMemoryUsage, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestManagerOptions(t *testing.T) {
	convey.Convey("Given custom options", t, func() {
		registry := prometheus.NewRegistry()
		buckets := []float64{1, 5, 10}
		labels := map[string]string{"env": "test"}

		m := NewManager(
			WithPrometheusRegistry(registry),
			WithNamespace("custom"),
			WithSubsystem("svc"),
			WithHistogramBuckets(buckets),
			WithMetricsEnabled(false),
			WithRefreshInterval(time.Minute),
			WithCustomLabels(labels),
			WithMetricPrefix("pre_"),
		)

		convey.Convey("Then the manager should reflect them", func() {
			convey.So(m.namespace, convey.ShouldEqual, "custom")
			convey.So(m.subsystem, convey.ShouldEqual, "svc")
			convey.So(m.histogramBuckets, convey.ShouldResemble, buckets)
			convey.So(m.enabled, convey.ShouldBeFalse)
			convey.So(m.refreshInterval, convey.ShouldEqual, time.Minute)
			convey.So(m.customLabels, convey.ShouldResemble, labels)
			convey.So(m.metricPrefix, convey.ShouldEqual, "pre_")
		})

		convey.Convey("And empty option values should be ignored", func() {
			m2 := NewManager(
				WithPrometheusRegistry(prometheus.NewRegistry()),
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithRefreshInterval(0),
			)
			convey.So(m2.namespace, convey.ShouldEqual, "revibe")
			convey.So(m2.subsystem, convey.ShouldEqual, "mood")
			convey.So(m2.histogramBuckets, convey.ShouldResemble, prometheus.DefBuckets)
			convey.So(m2.refreshInterval, convey.ShouldEqual, defaultRefreshInterval)
		})
	})
}

func TestPackageHelpers(t *testing.T) {
	convey.Convey("Given the global metrics manager", t, func() {
		convey.Convey("Then the package helpers should not panic", func() {
			convey.So(func() {
				RecordPrediction()
				RecordPredictionLatency(1.5)
				ObserveMoodScore(7.9)
				RecordRecommendation("sleep", "High")
				RecordValidationFailure("sleep")
				RecordRejectedRequest()
				RecordHTTPRequest("/predict", "POST", "200")
				RecordHTTPRequestDuration("/predict", "POST", "200", 2.5)
				RecordPredictionError()
				RecordErrorByType("validation", "warning")
				RecordErrorByEndpoint("/predict", "POST", "validation")
				RecordErrorLatency("service", "internal", 3.0)
				UpdateSystemMemoryUsage(1024)
				UpdateSystemGoroutineCount(8)
				RecordSystemGCPauseTime(0.2)
			}, convey.ShouldNotPanic)
		})

		convey.Convey("And the custom registry should be gatherable", func() {
			families, err := GetRegistry().Gather()
			convey.So(err, convey.ShouldBeNil)
			convey.So(len(families), convey.ShouldBeGreaterThan, 0)
		})
	})
}
