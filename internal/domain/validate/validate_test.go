package validate_test

import (
	"strings"
	"testing"

	"github.com/revibe/mood-api/internal/domain/model"
	validate "github.com/revibe/mood-api/internal/domain/validate"
	. "github.com/smartystreets/goconvey/convey"
)

func validDay() model.Metrics {
	return model.Metrics{
		DayRating:   "a decent day",
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

func fieldsOf(violations []validate.Violation) []string {
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = v.Field
	}
	return out
}

func TestValidator_Validate(t *testing.T) {
	Convey("Given a validator with defaults", t, func() {
		v := validate.New()

		Convey("When validating a well-formed payload", func() {
			violations := v.Validate(validDay())

			Convey("Then there should be no violations", func() {
				So(violations, ShouldBeEmpty)
			})
		})

		Convey("When sleep exceeds 24 hours", func() {
			m := validDay()
			m.Sleep = 25
			violations := v.Validate(m)

			Convey("Then the sleep field should be rejected", func() {
				So(fieldsOf(violations), ShouldContain, "sleep")
			})
		})

		Convey("When water intake exceeds 15 liters", func() {
			m := validDay()
			m.WaterIntake = 20
			violations := v.Validate(m)

			Convey("Then the water_intake field should be rejected", func() {
				So(fieldsOf(violations), ShouldContain, "water_intake")
			})
		})

		Convey("When values sit exactly on the inclusive upper bound", func() {
			m := validDay()
			m.Sleep = 24
			m.WaterIntake = 15
			m.ScreenTime = 24
			m.OutdoorTime = 24
			violations := v.Validate(m)

			Convey("Then the payload should pass", func() {
				So(violations, ShouldBeEmpty)
			})
		})

		Convey("When numeric fields are negative", func() {
			m := validDay()
			m.PeopleMet = -1
			m.Exercise = -10
			m.Sleep = -0.5
			violations := v.Validate(m)

			Convey("Then each negative field should be reported", func() {
				So(fieldsOf(violations), ShouldContain, "people_met")
				So(fieldsOf(violations), ShouldContain, "exercise")
				So(fieldsOf(violations), ShouldContain, "sleep")
			})
		})

		Convey("When the day rating is blank", func() {
			m := validDay()
			m.DayRating = "   "
			violations := v.Validate(m)

			Convey("Then the day_rating field should be rejected", func() {
				So(fieldsOf(violations), ShouldContain, "day_rating")
			})
		})

		Convey("When the enums carry undeclared values", func() {
			m := validDay()
			m.StressLevel = "Extreme"
			m.FoodQuality = "Junk"
			violations := v.Validate(m)

			Convey("Then both enum fields should be rejected", func() {
				So(fieldsOf(violations), ShouldContain, "stress_level")
				So(fieldsOf(violations), ShouldContain, "food_quality")
			})
		})

		Convey("When several constraints fail at once", func() {
			m := validDay()
			m.Sleep = 30
			m.WaterIntake = 16
			m.StressLevel = "???"
			violations := v.Validate(m)

			Convey("Then all of them should be aggregated into one result", func() {
				So(len(violations), ShouldEqual, 3)
			})
		})
	})
}

func TestValidator_DayRatingCap(t *testing.T) {
	Convey("Given a validator with a small day-rating cap", t, func() {
		v := validate.New(validate.WithMaxDayRatingChars(10))

		Convey("When the rating exceeds the cap", func() {
			m := validDay()
			m.DayRating = strings.Repeat("x", 11)
			violations := v.Validate(m)

			Convey("Then the day_rating field should be rejected", func() {
				So(fieldsOf(violations), ShouldContain, "day_rating")
			})
		})

		Convey("When the rating fits the cap", func() {
			m := validDay()
			m.DayRating = "short day"
			violations := v.Validate(m)

			Convey("Then the payload should pass", func() {
				So(violations, ShouldBeEmpty)
			})
		})
	})
}

func TestError_Message(t *testing.T) {
	Convey("Given an aggregated validation error", t, func() {
		err := &validate.Error{Violations: []validate.Violation{
			{Field: "sleep", Message: "must be at most 24 hours"},
			{Field: "water_intake", Message: "must be at most 15 liters"},
		}}

		Convey("When rendering the message", func() {
			Convey("Then it should name every failed field", func() {
				So(err.Error(), ShouldContainSubstring, "2 field(s)")
				So(err.Error(), ShouldContainSubstring, "sleep")
				So(err.Error(), ShouldContainSubstring, "water_intake")
			})
		})
	})
}
