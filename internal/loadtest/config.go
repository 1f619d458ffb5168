// Package loadtest drives the mood API with generated daily metrics and
// verifies the responses it gets back.
package loadtest

import (
	"time"

	"github.com/revibe/mood-api/internal/domain/model"
	"github.com/revibe/mood-api/internal/domain/types"
)

// Config holds configuration for the load test.
type Config struct {
	BaseURL     string        // Base URL of the service
	NumRequests int           // Number of prediction requests to generate
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	OutputFile  string        // Output file for generated payloads
	LogFile     string        // Log file for test output
	Verbose     bool          // Enable verbose logging
}

// Case is one generated prediction request.
type Case struct {
	Metrics model.Metrics `json:"metrics"`
	// ExpectReject marks payloads generated out of range on purpose.
	ExpectReject bool `json:"expect_reject"`
}

// Outcome pairs a submitted case with what the service answered.
type Outcome struct {
	Case       Case
	StatusCode int
	Report     types.MoodReport
}

// Stats holds test statistics.
type Stats struct {
	CasesGenerated    int
	RequestsSubmitted int
	RequestsOK        int
	RequestsRejected  int
	RequestsFailed    int
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}
