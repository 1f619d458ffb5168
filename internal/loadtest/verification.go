package loadtest

import (
	"context"
	"fmt"
	"math"

	"github.com/revibe/mood-api/pkg/logger"
)

// verifyOutcomes checks every response against the API contract:
// scores in [0,10] with one decimal, recommendations ordered by priority,
// and out-of-range payloads rejected.
func verifyOutcomes(ctx context.Context, outcomes []Outcome) error {
	logger.Get().Info(ctx, "verifying outcomes", logger.Int("count", len(outcomes)))

	var problems int
	for i, o := range outcomes {
		if o.StatusCode == 0 {
			// Transport failure, already counted separately.
			continue
		}

		if o.Case.ExpectReject {
			if o.StatusCode != StatusUnprocessable {
				problems++
				logger.Get().Warn(ctx, "invalid payload was not rejected",
					logger.Int("index", i),
					logger.Int("status", o.StatusCode))
			}
			continue
		}

		if o.StatusCode != StatusOK {
			problems++
			logger.Get().Warn(ctx, "valid payload was not accepted",
				logger.Int("index", i),
				logger.Int("status", o.StatusCode))
			continue
		}

		if err := verifyReport(o); err != nil {
			problems++
			logger.Get().Warn(ctx, "report violates the contract",
				logger.Int("index", i),
				logger.Error(err))
		}
	}

	if problems > 0 {
		return fmt.Errorf("%d outcome(s) violated the API contract", problems)
	}

	logger.Get().Info(ctx, "all outcomes verified")
	return nil
}

// verifyReport checks a single accepted report.
func verifyReport(o Outcome) error {
	score := o.Report.MoodScore
	if score < 0 || score > 10 {
		return fmt.Errorf("score %.3f out of range", score)
	}

	// One decimal place: scaling by ten must land on an integer.
	scaled := score * 10
	if math.Abs(scaled-math.Round(scaled)) > 1e-6 {
		return fmt.Errorf("score %.3f not rounded to one decimal", score)
	}

	for i := 1; i < len(o.Report.Recommendations); i++ {
		prev := o.Report.Recommendations[i-1].Priority
		cur := o.Report.Recommendations[i].Priority
		if prev.Rank() > cur.Rank() {
			return fmt.Errorf("recommendations out of priority order at %d: %s after %s", i, cur, prev)
		}
	}
	return nil
}

// displayFinalStats prints the final test statistics.
func displayFinalStats(stats *Stats) {
	var successRate, requestsPerSecond float64

	if stats.RequestsSubmitted > 0 {
		successRate = float64(stats.RequestsOK) / float64(stats.RequestsSubmitted) * PercentageMultiplier
	}

	if stats.Duration > 0 {
		requestsPerSecond = float64(stats.RequestsSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("casesGenerated", stats.CasesGenerated),
		logger.Int("requestsSubmitted", stats.RequestsSubmitted),
		logger.Int("requestsOK", stats.RequestsOK),
		logger.Int("requestsRejected", stats.RequestsRejected),
		logger.Int("requestsFailed", stats.RequestsFailed),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("requestsPerSecond", requestsPerSecond))
}
