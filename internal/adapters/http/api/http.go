// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/revibe/mood-api/internal/domain/model"
	"github.com/revibe/mood-api/internal/domain/types"
	"github.com/revibe/mood-api/internal/domain/validate"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Predict validates daily metrics and returns a mood report.
	// Validation failures come back as a *validate.Error.
	Predict(ctx context.Context, m model.Metrics) (types.MoodReport, error)
}

// MoodReport mirrors the read shape returned by predictions.
type MoodReport = types.MoodReport

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	predictHandler *PredictHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		predictHandler: NewPredictHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", RequestIDMiddleware(MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")))
	mux.HandleFunc("/stats", RequestIDMiddleware(MetricsMiddleware(s.statsHandler.HandleStats, "stats")))
	mux.HandleFunc("/predict", RequestIDMiddleware(MetricsMiddleware(s.predictHandler.HandlePredict, "predict")))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// validationResponse reports every violated field of a rejected request.
type validationResponse struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Details []validate.Violation `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
