// Package recommend turns daily metrics into prioritized lifestyle
// recommendations via a fixed table of threshold rules.
package recommend

import (
	"sort"

	"github.com/revibe/mood-api/internal/domain/model"
	"github.com/revibe/mood-api/internal/domain/types"
)

// Recommendation category labels.
const (
	CategorySleep      = "sleep"
	CategoryExercise   = "exercise"
	CategoryNutrition  = "nutrition"
	CategorySocial     = "social"
	CategoryStress     = "stress"
	CategoryScreenTime = "screen_time"
	CategoryOutdoors   = "outdoors"
)

// Rule thresholds. Each rule is keyed to a single metric and evaluated
// independently; several rules may fire on the same payload.
const (
	lowSleepHours       = 6.0
	oversleepHours      = 9.5
	highScreenTimeHours = 8.0
	lowExerciseMinutes  = 20
	lowWaterLiters      = 1.5
	lowOutdoorHours     = 0.5
)

// Rule is one entry of the recommendation table. Declaration order is part
// of the contract: it breaks ties between rules of equal priority.
type Rule struct {
	Category string
	Priority types.Priority
	Message  string
	Applies  func(m model.Metrics) bool
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithMaxRecommendations caps the number of returned recommendations.
// Zero means unlimited. A cap keeps the highest-priority entries, breaking
// ties by rule declaration order.
func WithMaxRecommendations(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.maxRecommendations = n
		}
	}
}

// WithRules replaces the default rule table.
func WithRules(rules []Rule) Option {
	return func(e *Engine) {
		if len(rules) > 0 {
			e.rules = rules
		}
	}
}

// Engine evaluates the rule table against a metrics payload. It is a pure
// function of its input: no randomness, no state between calls.
type Engine struct {
	rules              []Rule
	maxRecommendations int
}

// New creates an Engine with the default rule table.
func New(opts ...Option) *Engine {
	e := &Engine{
		rules: DefaultRules(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RuleCount returns the number of rules in the table.
func (e *Engine) RuleCount() int {
	return len(e.rules)
}

// Recommend returns the recommendations of every rule that fires, ordered
// by priority rank and then by rule declaration order. The result may be
// empty but the call never fails.
func (e *Engine) Recommend(m model.Metrics) []types.Recommendation {
	out := make([]types.Recommendation, 0, len(e.rules))
	for _, rule := range e.rules {
		if rule.Applies(m) {
			out = append(out, types.Recommendation{
				Priority:       rule.Priority,
				Recommendation: rule.Message,
				Category:       rule.Category,
			})
		}
	}

	// Stable sort keeps declaration order within a priority.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})

	if e.maxRecommendations > 0 && len(out) > e.maxRecommendations {
		out = out[:e.maxRecommendations]
	}
	return out
}

// DefaultRules returns the built-in rule table.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category: CategorySleep,
			Priority: types.PriorityHigh,
			Message:  "You slept under 6 hours. Aim for 7-9 hours tonight; short sleep is the strongest single drag on next-day mood.",
			Applies:  func(m model.Metrics) bool { return m.Sleep < lowSleepHours },
		},
		{
			Category: CategoryStress,
			Priority: types.PriorityHigh,
			Message:  "Your stress level is high. Take a short break for breathing exercises or a walk, and consider winding down earlier this evening.",
			Applies:  func(m model.Metrics) bool { return m.StressLevel == model.StressHigh },
		},
		{
			Category: CategoryNutrition,
			Priority: types.PriorityMedium,
			Message:  "Food quality was low today. Plan at least one balanced meal with vegetables and protein tomorrow.",
			Applies:  func(m model.Metrics) bool { return m.FoodQuality == model.FoodUnhealthy },
		},
		{
			Category: CategoryScreenTime,
			Priority: types.PriorityMedium,
			Message:  "Over 8 hours of screen time. Schedule screen-free blocks, especially in the hour before bed.",
			Applies:  func(m model.Metrics) bool { return m.ScreenTime > highScreenTimeHours },
		},
		{
			Category: CategoryExercise,
			Priority: types.PriorityMedium,
			Message:  "Less than 20 minutes of exercise. Even a brisk 20-30 minute walk measurably lifts mood.",
			Applies:  func(m model.Metrics) bool { return m.Exercise < lowExerciseMinutes },
		},
		{
			Category: CategoryNutrition,
			Priority: types.PriorityMedium,
			Message:  "Water intake was under 1.5 liters. Keep a bottle nearby and spread intake across the day.",
			Applies:  func(m model.Metrics) bool { return m.WaterIntake < lowWaterLiters },
		},
		{
			Category: CategorySocial,
			Priority: types.PriorityMedium,
			Message:  "You met nobody today. Reach out to a friend or family member, even a short call counts.",
			Applies:  func(m model.Metrics) bool { return m.PeopleMet == 0 },
		},
		{
			Category: CategoryOutdoors,
			Priority: types.PriorityLow,
			Message:  "Under 30 minutes outdoors. Try to catch some daylight tomorrow; morning light helps regulate sleep.",
			Applies:  func(m model.Metrics) bool { return m.OutdoorTime < lowOutdoorHours },
		},
		{
			Category: CategoryStress,
			Priority: types.PriorityLow,
			Message:  "Stress was moderate. A short evening routine away from work helps keep it from climbing.",
			Applies:  func(m model.Metrics) bool { return m.StressLevel == model.StressMedium },
		},
		{
			Category: CategorySleep,
			Priority: types.PriorityLow,
			Message:  "You slept over 9.5 hours. Long sleep can signal poor sleep quality; try a consistent wake time.",
			Applies:  func(m model.Metrics) bool { return m.Sleep > oversleepHours },
		},
	}
}
