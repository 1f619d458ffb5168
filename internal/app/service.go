// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/revibe/mood-api/internal/domain/model"
	"github.com/revibe/mood-api/internal/domain/recommend"
	"github.com/revibe/mood-api/internal/domain/scoring"
	"github.com/revibe/mood-api/internal/domain/sentiment"
	"github.com/revibe/mood-api/internal/domain/types"
	"github.com/revibe/mood-api/internal/domain/validate"
	"github.com/revibe/mood-api/pkg/logger"
	"github.com/revibe/mood-api/pkg/metrics"
)

// Service implements the API dependencies for the mood prediction system.
type Service struct {
	mu sync.RWMutex

	// Core components
	validator *validate.Validator
	scorer    scoring.Scorer
	engine    *recommend.Engine

	// Configuration
	factorWeights      map[string]float64
	defaultWeight      float64
	maxRecommendations int
	maxDayRatingChars  int
	analyzer           sentiment.Analyzer

	// State
	started          bool
	startedAt        time.Time
	totalPredictions atomic.Int64
	totalRejected    atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFactorWeights sets the per-factor weights for scoring.
func WithFactorWeights(weights map[string]float64) Option {
	return func(s *Service) {
		s.factorWeights = weights
	}
}

// WithDefaultFactorWeight sets the weight for factors missing from the weight map.
func WithDefaultFactorWeight(weight float64) Option {
	return func(s *Service) {
		s.defaultWeight = weight
	}
}

// WithMaxRecommendations caps the recommendation list per prediction. 0 means unlimited.
func WithMaxRecommendations(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxRecommendations = n
		}
	}
}

// WithMaxDayRatingChars bounds the free-text day rating length.
func WithMaxDayRatingChars(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxDayRatingChars = n
		}
	}
}

// WithAnalyzer sets a custom sentiment analyzer for the day rating text.
func WithAnalyzer(a sentiment.Analyzer) Option {
	return func(s *Service) {
		if a != nil {
			s.analyzer = a
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		factorWeights:      scoring.DefaultWeights(),
		defaultWeight:      0.5,
		maxRecommendations: 0,
		maxDayRatingChars:  2000,
		logger:             nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting mood prediction service...")

	// Initialize components
	s.validator = validate.New(
		validate.WithMaxDayRatingChars(s.maxDayRatingChars),
	)
	if s.analyzer == nil {
		s.analyzer = sentiment.NewLexiconAnalyzer()
	}
	s.scorer = scoring.New(
		scoring.WithWeightsFromConfig(s.factorWeights, s.defaultWeight),
		scoring.WithAnalyzer(s.analyzer),
	)
	s.engine = recommend.New(
		recommend.WithMaxRecommendations(s.maxRecommendations),
	)

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "mood prediction service started",
		logger.Int("rules", s.engine.RuleCount()),
		logger.Int("maxRecommendations", s.maxRecommendations),
		logger.Int("maxDayRatingChars", s.maxDayRatingChars),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping mood prediction service...")
	s.started = false
	s.logger.Info(context.Background(), "mood prediction service stopped")
}

// Predict validates the daily metrics, scores them, and derives recommendations.
// Validation failures are returned as a *validate.Error so callers can report
// every violated field in one response.
func (s *Service) Predict(ctx context.Context, m model.Metrics) (report types.MoodReport, err error) {
	s.mu.RLock()
	validator, scorer, engine, started := s.validator, s.scorer, s.engine, s.started
	s.mu.RUnlock()

	if !started {
		return types.MoodReport{}, ErrNotStarted
	}

	start := time.Now()

	// The scorer and rule engine are pure functions over validated input;
	// a panic here means a programming error, not bad input. Convert it to
	// an error so one request cannot take the process down.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "prediction panicked",
				logger.Any("panic", r),
			)
			metrics.RecordPredictionError()
			metrics.RecordErrorByType("panic", "critical")
			err = fmt.Errorf("%w: %v", ErrPrediction, r)
			report = types.MoodReport{}
		}
	}()

	if violations := validator.Validate(m); len(violations) > 0 {
		s.totalRejected.Add(1)
		metrics.RecordRejectedRequest()
		for _, v := range violations {
			metrics.RecordValidationFailure(v.Field)
		}
		s.logger.Debug(ctx, "metrics rejected",
			logger.Int("violations", len(violations)),
		)
		return types.MoodReport{}, &validate.Error{Violations: violations}
	}

	score := scoring.Round(scorer.Score(m))
	recommendations := engine.Recommend(m)

	s.totalPredictions.Add(1)
	metrics.RecordPrediction()
	metrics.RecordPredictionLatency(float64(time.Since(start).Microseconds()) / 1000.0)
	metrics.ObserveMoodScore(score)
	for _, rec := range recommendations {
		metrics.RecordRecommendation(rec.Category, string(rec.Priority))
	}

	s.logger.Debug(ctx, "prediction served",
		logger.Float64("score", score),
		logger.Int("recommendations", len(recommendations)),
	)

	return types.MoodReport{
		MoodScore:       score,
		Recommendations: recommendations,
	}, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":           s.started,
		"total_predictions": s.totalPredictions.Load(),
		"total_rejected":    s.totalRejected.Load(),
	}
	if s.started {
		stats["uptime_seconds"] = int64(time.Since(s.startedAt).Seconds())
		stats["rule_count"] = s.engine.RuleCount()
	}
	return stats
}
