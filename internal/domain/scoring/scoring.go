// Package scoring defines the contract for computing a mood score from
// daily lifestyle metrics.
package scoring

import (
	"math"

	"github.com/revibe/mood-api/internal/domain/model"
	"github.com/revibe/mood-api/internal/domain/sentiment"
)

// Factor names used as keys in the weight map.
const (
	FactorSleep      = "sleep"
	FactorExercise   = "exercise"
	FactorHydration  = "hydration"
	FactorSocial     = "social"
	FactorOutdoors   = "outdoors"
	FactorScreenTime = "screen_time"
	FactorStress     = "stress"
	FactorFood       = "food"
	FactorSentiment  = "sentiment"
)

// Default scoring configuration constants.
const (
	defaultWeight = 0.5

	// Baseline is the score of a fully neutral day before any factor
	// contribution is applied.
	baselineScore = 5.0

	minScore = 0.0
	maxScore = 10.0

	// Saturation points for the per-factor normalization curves.
	sleepTargetHours        = 7.0
	exerciseTargetMinutes   = 60.0
	hydrationTargetLiters   = 2.5
	socialTargetPeople      = 5.0
	outdoorTargetHours      = 2.0
	screenTimeGraceHours    = 2.0
	screenTimePenaltySpan   = 10.0
	oneDecimalRoundingScale = 10.0
)

// Contribution values for the categorical factors.
const (
	stressLowContribution    = 0.5
	stressMediumContribution = -0.25
	stressHighContribution   = -1.0

	foodHealthyContribution   = 0.5
	foodModerateContribution  = 0.0
	foodUnhealthyContribution = -0.75
)

// Scorer computes a mood score in [0,10] from validated metrics. Inputs are
// assumed to be within their declared bounds; the validator enforces that
// before any scorer runs.
type Scorer interface {
	Score(m model.Metrics) float64
}

// Option applies a configuration option to the FactorScorer.
type Option func(*FactorScorer)

// WithWeightsFromConfig sets factor weights from a configuration map.
func WithWeightsFromConfig(weights map[string]float64, fallback float64) Option {
	return func(s *FactorScorer) {
		// Copy the weights map to avoid external modifications
		s.weights = make(map[string]float64, len(weights))
		for factor, weight := range weights {
			if weight >= 0 {
				s.weights[factor] = weight
			}
		}
		if fallback > 0 {
			s.defaultWeight = fallback
		}
	}
}

// WithAnalyzer sets the free-text sentiment analyzer.
func WithAnalyzer(a sentiment.Analyzer) Option {
	return func(s *FactorScorer) {
		if a != nil {
			s.analyzer = a
		}
	}
}

// FactorScorer implements Scorer as a deterministic weighted factor model:
// each metric is normalized to a bounded contribution, contributions are
// weighted and summed onto a neutral baseline, and the result is clamped to
// [0,10]. No randomness and no hidden state.
type FactorScorer struct {
	weights       map[string]float64
	defaultWeight float64
	analyzer      sentiment.Analyzer
}

// New creates a FactorScorer with configuration options.
func New(opts ...Option) *FactorScorer {
	s := &FactorScorer{
		weights:       DefaultWeights(),
		defaultWeight: defaultWeight,
		analyzer:      sentiment.NewLexiconAnalyzer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultWeights returns the built-in factor weight table.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		FactorSleep:      1.0,
		FactorExercise:   0.5,
		FactorHydration:  0.4,
		FactorSocial:     0.5,
		FactorOutdoors:   0.5,
		FactorScreenTime: 1.0,
		FactorStress:     1.0,
		FactorFood:       1.0,
		FactorSentiment:  0.75,
	}
}

// Score computes the mood score for the given metrics.
func (s *FactorScorer) Score(m model.Metrics) float64 {
	score := baselineScore

	score += s.weightFor(FactorSleep) * sleepContribution(m.Sleep)
	score += s.weightFor(FactorExercise) * saturate(float64(m.Exercise), exerciseTargetMinutes)
	score += s.weightFor(FactorHydration) * saturate(m.WaterIntake, hydrationTargetLiters)
	score += s.weightFor(FactorSocial) * saturate(float64(m.PeopleMet), socialTargetPeople)
	score += s.weightFor(FactorOutdoors) * saturate(m.OutdoorTime, outdoorTargetHours)
	score += s.weightFor(FactorScreenTime) * screenTimeContribution(m.ScreenTime)
	score += s.weightFor(FactorStress) * stressContribution(m.StressLevel)
	score += s.weightFor(FactorFood) * foodContribution(m.FoodQuality)
	score += s.weightFor(FactorSentiment) * s.analyzer.Adjustment(m.DayRating)

	return clamp(score)
}

// weightFor returns the configured weight for a factor, falling back to the
// default weight for unknown factors.
func (s *FactorScorer) weightFor(factor string) float64 {
	weight, ok := s.weights[factor]
	if !ok {
		return s.defaultWeight
	}
	return weight
}

// Round reports a score rounded to one decimal place, still within [0,10].
func Round(score float64) float64 {
	return math.Round(clamp(score)*oneDecimalRoundingScale) / oneDecimalRoundingScale
}

// sleepContribution ramps from -1 at zero hours to +1 at the target and
// stays flat beyond it, so more sleep never lowers the score.
func sleepContribution(hours float64) float64 {
	return saturate(hours, sleepTargetHours)*2 - 1
}

// screenTimeContribution is 0 up to the grace period and falls linearly to
// -1 over the penalty span.
func screenTimeContribution(hours float64) float64 {
	excess := hours - screenTimeGraceHours
	if excess <= 0 {
		return 0
	}
	return -math.Min(excess, screenTimePenaltySpan) / screenTimePenaltySpan
}

func stressContribution(level model.StressLevel) float64 {
	switch level {
	case model.StressLow:
		return stressLowContribution
	case model.StressMedium:
		return stressMediumContribution
	case model.StressHigh:
		return stressHighContribution
	}
	return 0
}

func foodContribution(quality model.FoodQuality) float64 {
	switch quality {
	case model.FoodHealthy:
		return foodHealthyContribution
	case model.FoodModerate:
		return foodModerateContribution
	case model.FoodUnhealthy:
		return foodUnhealthyContribution
	}
	return 0
}

// saturate normalizes value to [0,1], reaching 1 at target.
func saturate(value, target float64) float64 {
	if value >= target {
		return 1
	}
	if value <= 0 {
		return 0
	}
	return value / target
}

func clamp(score float64) float64 {
	return math.Max(minScore, math.Min(maxScore, score))
}
