package loadtest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"

	"github.com/revibe/mood-api/internal/domain/types"
	"github.com/revibe/mood-api/pkg/logger"
)

// HTTPClient wraps http.Client with timeout.
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer func() { _ = resp.Body.Close() }()
	return io.ReadAll(resp.Body)
}

// submitCases submits prediction requests concurrently using a worker pool.
func submitCases(ctx context.Context, config *Config, cases []Case, stats *Stats) ([]Outcome, error) {
	logger.Get().Info(ctx, "submitting prediction requests",
		logger.Int("cases", len(cases)),
		logger.Int("workers", config.Workers))

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/predict"

	var (
		submitted int64
		ok        int64
		rejected  int64
		failed    int64
	)

	outcomes := make([]Outcome, len(cases))

	type job struct {
		index int
		c     Case
	}

	jobChan := make(chan job, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := range jobChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				outcome := submitSingleCase(ctx, client, url, j.c)
				outcomes[j.index] = outcome

				atomic.AddInt64(&submitted, 1)
				switch outcome.StatusCode {
				case StatusOK:
					atomic.AddInt64(&ok, 1)
				case StatusUnprocessable:
					atomic.AddInt64(&rejected, 1)
				default:
					atomic.AddInt64(&failed, 1)
				}

				if config.Verbose {
					logger.Get().Debug(ctx, "request finished",
						logger.Int("status", outcome.StatusCode),
						logger.Float64("score", outcome.Report.MoodScore))
				}
			}
		}()
	}

	go func() {
		defer close(jobChan)
		for i, c := range cases {
			select {
			case <-ctx.Done():
				return
			case jobChan <- job{index: i, c: c}:
			}
		}
	}()

	wg.Wait()

	stats.RequestsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.RequestsOK = int(atomic.LoadInt64(&ok))
	stats.RequestsRejected = int(atomic.LoadInt64(&rejected))
	stats.RequestsFailed = int(atomic.LoadInt64(&failed))

	logger.Get().Info(ctx, "submission completed",
		logger.Int("ok", stats.RequestsOK),
		logger.Int("rejected", stats.RequestsRejected),
		logger.Int("failed", stats.RequestsFailed))

	return outcomes, nil
}

// submitSingleCase posts one payload and decodes the outcome.
func submitSingleCase(ctx context.Context, client *HTTPClient, url string, c Case) Outcome {
	outcome := Outcome{Case: c}

	resp, err := client.Post(ctx, url, c.Metrics)
	if err != nil {
		return outcome
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return outcome
	}

	outcome.StatusCode = resp.StatusCode
	if resp.StatusCode == StatusOK {
		var report types.MoodReport
		if err := json.Unmarshal(body, &report); err == nil {
			outcome.Report = report
		}
	}
	return outcome
}
