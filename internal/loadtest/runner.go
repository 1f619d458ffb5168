package loadtest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"

	"github.com/revibe/mood-api/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Run executes the complete load test.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting mood API load test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("requests", config.NumRequests),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate prediction cases
	cases, err := generateCases(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("case generation failed: %w", err)
	}

	// Step 3: Submit requests concurrently
	outcomes, err := submitCases(ctx, config, cases, stats)
	if err != nil {
		return fmt.Errorf("request submission failed: %w", err)
	}

	// Step 4: Verify results
	if err := verifyOutcomes(ctx, outcomes); err != nil {
		return fmt.Errorf("outcome verification failed: %w", err)
	}

	// Step 5: Save cases to file
	if err := saveCasesToFile(ctx, config, cases); err != nil {
		logger.Get().Warn(ctx, "failed to save cases to file", logger.Error(err))
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "load test completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// saveCasesToFile saves the generated cases to a JSON file.
func saveCasesToFile(ctx context.Context, config *Config, cases []Case) error {
	if len(cases) == 0 {
		return fmt.Errorf("no cases to save")
	}

	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "generated_cases_" + timestamp + ".json"
	}

	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cases: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	logger.Get().Info(ctx, "cases saved to file", logger.String("filename", filename))
	return nil
}
