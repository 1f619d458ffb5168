// Package model contains domain models passed between layers.
package model

// StressLevel categorizes self-reported stress for the day.
type StressLevel string

// Declared stress levels.
const (
	StressLow    StressLevel = "Low"
	StressMedium StressLevel = "Medium"
	StressHigh   StressLevel = "High"
)

// Valid reports whether the value is one of the declared levels.
func (s StressLevel) Valid() bool {
	switch s {
	case StressLow, StressMedium, StressHigh:
		return true
	}
	return false
}

// FoodQuality categorizes the day's overall diet.
type FoodQuality string

// Declared food quality values.
const (
	FoodHealthy   FoodQuality = "Healthy"
	FoodModerate  FoodQuality = "Moderate"
	FoodUnhealthy FoodQuality = "Unhealthy"
)

// Valid reports whether the value is one of the declared qualities.
func (f FoodQuality) Valid() bool {
	switch f {
	case FoodHealthy, FoodModerate, FoodUnhealthy:
		return true
	}
	return false
}

// Metrics is a single day's lifestyle measurements submitted by clients.
// Fields mirror the OpenAPI schema for /predict.
type Metrics struct {
	DayRating   string      `json:"day_rating"`   // free-text description of the day
	WaterIntake float64     `json:"water_intake"` // liters, 0..15
	PeopleMet   int         `json:"people_met"`   // count, >= 0
	Exercise    int         `json:"exercise"`     // minutes, >= 0
	Sleep       float64     `json:"sleep"`        // hours, 0..24
	ScreenTime  float64     `json:"screen_time"`  // hours, 0..24
	OutdoorTime float64     `json:"outdoor_time"` // hours, 0..24
	StressLevel StressLevel `json:"stress_level"`
	FoodQuality FoodQuality `json:"food_quality"`
}
