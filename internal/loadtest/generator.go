package loadtest

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/revibe/mood-api/internal/domain/model"
	"github.com/revibe/mood-api/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	dayProfileDivisor  = 6
	invalidEveryNth    = 10
)

// Day profile cases.
const (
	caseBalancedDay  = 0
	caseRoughDay     = 1
	caseActiveDay    = 2
	caseSedentaryDay = 3
	caseSocialDay    = 4
	caseShortSleep   = 5
)

var stressLevels = []model.StressLevel{model.StressLow, model.StressMedium, model.StressHigh}

var foodQualities = []model.FoodQuality{model.FoodHealthy, model.FoodModerate, model.FoodUnhealthy}

var dayRatings = []string{
	"ok",
	"pretty good day overall",
	"tired and stressed",
	"a productive and relaxed day",
	"rough day, felt exhausted",
	"great day with friends",
}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// getRandomInt returns a random int in [0, limit).
func getRandomInt(limit int64) int64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(limit))
	return n.Int64()
}

// generateCases creates the requested number of prediction payloads. Every
// tenth case is pushed out of range on purpose so the run also exercises the
// rejection path.
func generateCases(ctx context.Context, config *Config, stats *Stats) ([]Case, error) {
	logger.Get().Info(ctx, "generating prediction cases", logger.Int("numRequests", config.NumRequests))

	cases := make([]Case, config.NumRequests)
	for i := range cases {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if i%invalidEveryNth == invalidEveryNth-1 {
			cases[i] = generateInvalidCase()
			continue
		}
		cases[i] = Case{Metrics: generateDay()}
	}

	stats.CasesGenerated = len(cases)
	logger.Get().Info(ctx, "generated cases successfully", logger.Int("count", len(cases)))

	return cases, nil
}

// generateDay creates one in-range day following a varied profile mix.
func generateDay() model.Metrics {
	m := model.Metrics{
		DayRating:   dayRatings[getRandomInt(int64(len(dayRatings)))],
		WaterIntake: getRandomFloat() * 4,
		PeopleMet:   int(getRandomInt(12)),
		Exercise:    int(getRandomInt(90)),
		Sleep:       4 + getRandomFloat()*6,
		ScreenTime:  getRandomFloat() * 12,
		OutdoorTime: getRandomFloat() * 4,
		StressLevel: stressLevels[getRandomInt(int64(len(stressLevels)))],
		FoodQuality: foodQualities[getRandomInt(int64(len(foodQualities)))],
	}

	switch getRandomInt(dayProfileDivisor) {
	case caseBalancedDay:
		m.Sleep = 7 + getRandomFloat()
		m.StressLevel = model.StressLow
	case caseRoughDay:
		m.Sleep = 3 + getRandomFloat()*2
		m.StressLevel = model.StressHigh
		m.FoodQuality = model.FoodUnhealthy
		m.ScreenTime = 9 + getRandomFloat()*5
	case caseActiveDay:
		m.Exercise = 45 + int(getRandomInt(60))
		m.OutdoorTime = 2 + getRandomFloat()*3
	case caseSedentaryDay:
		m.Exercise = int(getRandomInt(10))
		m.ScreenTime = 8 + getRandomFloat()*6
		m.OutdoorTime = getRandomFloat() * 0.5
	case caseSocialDay:
		m.PeopleMet = 5 + int(getRandomInt(15))
	case caseShortSleep:
		m.Sleep = getRandomFloat() * 5
	}

	return m
}

// generateInvalidCase creates a payload that must be rejected with 422.
func generateInvalidCase() Case {
	m := generateDay()
	switch getRandomInt(4) {
	case 0:
		m.Sleep = 24 + 1 + getRandomFloat()*10
	case 1:
		m.WaterIntake = 15 + 1 + getRandomFloat()*10
	case 2:
		m.PeopleMet = -1 - int(getRandomInt(5))
	case 3:
		m.DayRating = ""
	}
	return Case{Metrics: m, ExpectReject: true}
}
