package scoring_test

import (
	"testing"

	"github.com/revibe/mood-api/internal/domain/model"
	scoring "github.com/revibe/mood-api/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

// balancedDay is a day with every metric in a healthy range.
func balancedDay() model.Metrics {
	return model.Metrics{
		DayRating:   "ok",
		WaterIntake: 2.0,
		PeopleMet:   3,
		Exercise:    30,
		Sleep:       7.5,
		ScreenTime:  4,
		OutdoorTime: 1,
		StressLevel: model.StressLow,
		FoodQuality: model.FoodHealthy,
	}
}

func TestFactorScorer_Score(t *testing.T) {
	Convey("Given a factor scorer with default weights", t, func() {
		scorer := scoring.New()

		Convey("When scoring a balanced day", func() {
			score := scorer.Score(balancedDay())

			Convey("Then the score should land in the upper-middle of the range", func() {
				So(score, ShouldBeGreaterThan, 6.5)
				So(score, ShouldBeLessThanOrEqualTo, 10)
			})

			Convey("And rounding should report one decimal place", func() {
				So(scoring.Round(score), ShouldAlmostEqual, 7.9, 0.0001)
			})
		})

		Convey("When scoring a rough day", func() {
			m := balancedDay()
			m.Sleep = 3
			m.StressLevel = model.StressHigh
			m.FoodQuality = model.FoodUnhealthy
			m.ScreenTime = 12
			m.PeopleMet = 0
			score := scorer.Score(m)

			Convey("Then the score should be low", func() {
				So(score, ShouldBeLessThan, 4)
				So(score, ShouldBeGreaterThanOrEqualTo, 0)
			})
		})

		Convey("When scoring the minimum-metric day", func() {
			m := model.Metrics{
				DayRating:   "terrible awful miserable horrible lonely",
				StressLevel: model.StressHigh,
				FoodQuality: model.FoodUnhealthy,
				ScreenTime:  24,
			}
			score := scorer.Score(m)

			Convey("Then the score should stay within bounds", func() {
				So(score, ShouldBeGreaterThanOrEqualTo, 0)
				So(score, ShouldBeLessThanOrEqualTo, 10)
			})
		})

		Convey("When scoring the maximum-allowed-metric day", func() {
			m := model.Metrics{
				DayRating:   "amazing wonderful great fantastic peaceful",
				WaterIntake: 15,
				PeopleMet:   100,
				Exercise:    600,
				Sleep:       24,
				ScreenTime:  0,
				OutdoorTime: 24,
				StressLevel: model.StressLow,
				FoodQuality: model.FoodHealthy,
			}
			score := scorer.Score(m)

			Convey("Then the score should stay within bounds", func() {
				So(score, ShouldBeGreaterThanOrEqualTo, 0)
				So(score, ShouldBeLessThanOrEqualTo, 10)
			})
		})
	})
}

func TestFactorScorer_Determinism(t *testing.T) {
	Convey("Given a factor scorer", t, func() {
		scorer := scoring.New()
		m := balancedDay()

		Convey("When scoring the same input repeatedly", func() {
			first := scorer.Score(m)

			Convey("Then every call should return the identical value", func() {
				for i := 0; i < 100; i++ {
					So(scorer.Score(m), ShouldEqual, first)
				}
			})
		})
	})
}

func TestFactorScorer_Monotonicity(t *testing.T) {
	Convey("Given a factor scorer", t, func() {
		scorer := scoring.New()

		Convey("When increasing sleep from 2 to 7 hours", func() {
			low := balancedDay()
			low.Sleep = 2
			high := balancedDay()
			high.Sleep = 7

			Convey("Then the score should not decrease", func() {
				So(scorer.Score(high), ShouldBeGreaterThanOrEqualTo, scorer.Score(low))
			})
		})

		Convey("When sleep rises past the healthy target", func() {
			target := balancedDay()
			target.Sleep = 7
			beyond := balancedDay()
			beyond.Sleep = 12

			Convey("Then the score should plateau, not drop", func() {
				So(scorer.Score(beyond), ShouldBeGreaterThanOrEqualTo, scorer.Score(target))
			})
		})

		Convey("When stress moves from Low to High", func() {
			calm := balancedDay()
			calm.StressLevel = model.StressLow
			tense := balancedDay()
			tense.StressLevel = model.StressHigh

			Convey("Then the score should not increase", func() {
				So(scorer.Score(tense), ShouldBeLessThanOrEqualTo, scorer.Score(calm))
			})
		})

		Convey("When food quality degrades from Healthy to Unhealthy", func() {
			healthy := balancedDay()
			unhealthy := balancedDay()
			unhealthy.FoodQuality = model.FoodUnhealthy

			Convey("Then the score should not increase", func() {
				So(scorer.Score(unhealthy), ShouldBeLessThanOrEqualTo, scorer.Score(healthy))
			})
		})

		Convey("When screen time grows", func() {
			some := balancedDay()
			some.ScreenTime = 4
			lots := balancedDay()
			lots.ScreenTime = 14

			Convey("Then the score should not increase", func() {
				So(scorer.Score(lots), ShouldBeLessThanOrEqualTo, scorer.Score(some))
			})
		})
	})
}

func TestFactorScorer_Weights(t *testing.T) {
	Convey("Given a scorer with config-supplied weights", t, func() {
		scorer := scoring.New(
			scoring.WithWeightsFromConfig(map[string]float64{
				scoring.FactorSleep:  0,
				scoring.FactorStress: 2.0,
			}, 0.5),
		)

		Convey("When the sleep weight is zero", func() {
			short := balancedDay()
			short.Sleep = 2
			long := balancedDay()
			long.Sleep = 8

			Convey("Then sleep should stop moving the score", func() {
				So(scorer.Score(short), ShouldEqual, scorer.Score(long))
			})
		})

		Convey("When the stress weight is doubled", func() {
			base := scoring.New()
			tense := balancedDay()
			tense.StressLevel = model.StressHigh

			Convey("Then high stress should cost more than with defaults", func() {
				So(scorer.Score(tense), ShouldBeLessThan, base.Score(tense))
			})
		})
	})
}

func TestRound(t *testing.T) {
	Convey("Given raw scores", t, func() {
		Convey("When rounding to one decimal", func() {
			So(scoring.Round(7.92), ShouldAlmostEqual, 7.9, 0.0001)
			So(scoring.Round(7.95), ShouldAlmostEqual, 8.0, 0.0001)
			So(scoring.Round(0.04), ShouldAlmostEqual, 0.0, 0.0001)
		})

		Convey("When the raw value escapes the range", func() {
			Convey("Then rounding should clamp it back", func() {
				So(scoring.Round(10.4), ShouldEqual, 10)
				So(scoring.Round(-0.3), ShouldEqual, 0)
			})
		})
	})
}
