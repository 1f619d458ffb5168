// Package validate checks metric payloads against their declared bounds
// before they reach the scoring and recommendation engines. Downstream
// components rely on this precondition and do no bounds-checking of their
// own.
package validate

import (
	"fmt"
	"strings"

	"github.com/revibe/mood-api/internal/domain/model"
)

// Upper bounds for the numeric fields. Lower bound is zero for all of them.
const (
	MaxWaterIntakeLiters = 15.0
	MaxSleepHours        = 24.0
	MaxScreenTimeHours   = 24.0
	MaxOutdoorTimeHours  = 24.0

	defaultMaxDayRatingChars = 2000
)

// Violation describes a single field constraint failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error aggregates every violation found in one payload so the caller can
// report them all at once.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.Field
	}
	return fmt.Sprintf("validation failed for %d field(s): %s", len(e.Violations), strings.Join(fields, ", "))
}

// Option applies a configuration option to the Validator.
type Option func(*Validator)

// WithMaxDayRatingChars caps the accepted length of the free-text day rating.
func WithMaxDayRatingChars(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.maxDayRatingChars = n
		}
	}
}

// Validator checks Metrics payloads against the declared field constraints.
type Validator struct {
	maxDayRatingChars int
}

// New creates a Validator with configuration options.
func New(opts ...Option) *Validator {
	v := &Validator{
		maxDayRatingChars: defaultMaxDayRatingChars,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate returns every constraint violation in the payload. A nil return
// means the payload satisfies the closed precondition the engines require.
func (v *Validator) Validate(m model.Metrics) []Violation {
	var out []Violation

	if strings.TrimSpace(m.DayRating) == "" {
		out = append(out, Violation{Field: "day_rating", Message: "must not be empty"})
	} else if len(m.DayRating) > v.maxDayRatingChars {
		out = append(out, Violation{Field: "day_rating", Message: fmt.Sprintf("must be at most %d characters", v.maxDayRatingChars)})
	}

	out = appendRangeViolation(out, "water_intake", m.WaterIntake, MaxWaterIntakeLiters, "liters")
	out = appendRangeViolation(out, "sleep", m.Sleep, MaxSleepHours, "hours")
	out = appendRangeViolation(out, "screen_time", m.ScreenTime, MaxScreenTimeHours, "hours")
	out = appendRangeViolation(out, "outdoor_time", m.OutdoorTime, MaxOutdoorTimeHours, "hours")

	if m.PeopleMet < 0 {
		out = append(out, Violation{Field: "people_met", Message: "must not be negative"})
	}
	if m.Exercise < 0 {
		out = append(out, Violation{Field: "exercise", Message: "must not be negative"})
	}

	if !m.StressLevel.Valid() {
		out = append(out, Violation{Field: "stress_level", Message: "must be one of Low, Medium, High"})
	}
	if !m.FoodQuality.Valid() {
		out = append(out, Violation{Field: "food_quality", Message: "must be one of Healthy, Moderate, Unhealthy"})
	}

	return out
}

// appendRangeViolation checks a non-negative field with an inclusive upper
// bound and appends a violation when the value falls outside it.
func appendRangeViolation(out []Violation, field string, value, maxAllowed float64, unit string) []Violation {
	switch {
	case value < 0:
		return append(out, Violation{Field: field, Message: "must not be negative"})
	case value > maxAllowed:
		return append(out, Violation{Field: field, Message: fmt.Sprintf("must be at most %g %s", maxAllowed, unit)})
	}
	return out
}
