// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/revibe/mood-api/internal/domain/model"
	"github.com/revibe/mood-api/internal/domain/validate"
)

// PredictHandler handles mood prediction requests.
type PredictHandler struct {
	deps Dependencies
}

// NewPredictHandler creates a new predict handler.
func NewPredictHandler(deps Dependencies) *PredictHandler {
	return &PredictHandler{deps: deps}
}

// HandlePredict handles POST /predict requests.
func (h *PredictHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var m model.Metrics
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		// Malformed JSON and wrong field types land here; clients get the
		// same status as a constraint violation.
		writeError(w, http.StatusUnprocessableEntity, "unprocessable", errors.Join(ErrBadRequest, err))
		return
	}

	report, err := h.deps.Predict(r.Context(), m)
	if err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
				Code:    "unprocessable",
				Message: verr.Error(),
				Details: verr.Violations,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "internal", err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
