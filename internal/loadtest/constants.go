package loadtest

import "time"

// Shared constants for the load test.
const (
	StatusOK            = 200
	StatusUnprocessable = 422

	PercentageMultiplier = 100.0

	// HealthCheckDelay gives the service a beat between phases.
	HealthCheckDelay = 1 * time.Second
)
