package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playtrack/playtrack-data/internal/api/respond"
	"github.com/playtrack/playtrack-data/internal/transform"
)

// writeR6 wraps a Ubisoft payload in the envelope, flagging placeholder data.
func (h *Handler) writeR6(w http.ResponseWriter, v any) {
	if h.r6.Placeholder() {
		respond.WriteMockData(w, v)
		return
	}
	respond.WriteData(w, v)
}

// SearchR6Player searches for a player by username and platform.
func (h *Handler) SearchR6Player(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	platform := r.URL.Query().Get("platform")
	if username == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_PARAMETER", "username query parameter is required")
		return
	}
	if platform == "" {
		platform = "uplay"
	}

	raw, err := h.r6.SearchPlayer(r.Context(), username, platform)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	h.writeR6(w, raw)
}

// GetR6PlayerStats returns general statistics for a profile ID.
func (h *Handler) GetR6PlayerStats(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")
	platform := r.URL.Query().Get("platform")
	if platform == "" {
		platform = "uplay"
	}

	raw, err := h.r6.PlayerStats(r.Context(), profileID, platform)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	h.writeR6(w, raw)
}

// GetR6SeasonalStats returns seasonal statistics for a profile ID.
func (h *Handler) GetR6SeasonalStats(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")
	season := queryInt(r, "season", 0)

	raw, err := h.r6.SeasonalStats(r.Context(), profileID, season)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	h.writeR6(w, raw)
}

// GetR6OperatorStats returns per-operator statistics for a profile ID.
func (h *Handler) GetR6OperatorStats(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")

	raw, err := h.r6.OperatorStats(r.Context(), profileID)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	h.writeR6(w, raw)
}

// GetR6Stats serves the normalized FPS stats for a profile ID.
func (h *Handler) GetR6Stats(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")
	platform := r.URL.Query().Get("platform")
	if platform == "" {
		platform = "uplay"
	}

	summary, err := h.r6.PlayerSummaryStats(r.Context(), profileID, platform)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	h.writeR6(w, transform.UbisoftR6ToFPS(summary))
}
