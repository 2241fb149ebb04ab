package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/playtrack/playtrack-data/internal/api/respond"
	"github.com/playtrack/playtrack-data/internal/transform"
)

// GetSupportedTransformations lists the (category, game) pairs the stats
// transformer can normalize.
func (h *Handler) GetSupportedTransformations(w http.ResponseWriter, r *http.Request) {
	respond.WriteData(w, transform.Supported())
}

type transformRequest struct {
	Game     string          `json:"game"`
	Category string          `json:"category"`
	RawStats json.RawMessage `json:"raw_stats"`
}

// TransformStats normalizes a raw provider payload into the category schema
// for the requested game.
func (h *Handler) TransformStats(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_PARAMETER", "request body must be valid JSON")
		return
	}
	if req.Game == "" || req.Category == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_PARAMETER", "game and category are required")
		return
	}

	result, err := transform.ByGameAndCategory(req.Game, transform.Category(req.Category), req.RawStats)
	if err != nil {
		var unsupported *transform.UnsupportedTransformError
		if errors.As(err, &unsupported) {
			respond.WriteError(w, http.StatusBadRequest, "UNSUPPORTED_TRANSFORM", unsupported.Error())
			return
		}
		respond.WriteError(w, http.StatusBadRequest, "INVALID_PARAMETER", err.Error())
		return
	}
	respond.WriteData(w, result)
}
