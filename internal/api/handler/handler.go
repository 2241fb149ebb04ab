// Package handler provides HTTP handlers for all API endpoints.
// Handlers call provider clients directly — no service layer. Providers
// return typed errors; handlers map them through respond.WriteProviderError.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/playtrack/playtrack-data/internal/api/respond"
	"github.com/playtrack/playtrack-data/internal/cache"
	"github.com/playtrack/playtrack-data/internal/config"
	"github.com/playtrack/playtrack-data/internal/provider/opendota"
	"github.com/playtrack/playtrack-data/internal/provider/overfast"
	"github.com/playtrack/playtrack-data/internal/provider/riot"
	"github.com/playtrack/playtrack-data/internal/provider/ubisoft"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	riot      *riot.Client
	dota      *opendota.Client
	overwatch *overfast.Client
	r6        *ubisoft.Client
	cache     *cache.Cache
	cfg       *config.Config
}

// New creates a Handler with shared dependencies.
func New(riotClient *riot.Client, dotaClient *opendota.Client, owClient *overfast.Client, r6Client *ubisoft.Client, c *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{
		riot:      riotClient,
		dota:      dotaClient,
		overwatch: owClient,
		r6:        r6Client,
		cache:     c,
		cfg:       cfg,
	}
}

// Root serves API info at /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	games := make([]string, 0, len(config.GameRegistry))
	for name := range config.GameRegistry {
		games = append(games, name)
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "PlayTrack Data API",
		"version": "1.0.0",
		"status":  "running",
		"games":   games,
	})
}

// HealthCheck returns basic health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckProviders reports provider credential state. The Riot check
// performs one live status call unless the client runs on mock data.
func (h *Handler) HealthCheckProviders(w http.ResponseWriter, r *http.Request) {
	riotStatus := "mock"
	if !h.riot.MockEnabled() {
		riotStatus = "invalid_key"
		if h.riot.ValidateKey(r.Context()) {
			riotStatus = "live"
		}
	}
	r6Status := "live"
	if h.r6.Placeholder() {
		r6Status = "placeholder"
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"riot":      riotStatus,
		"opendota":  "live",
		"overfast":  "live",
		"ubisoft":   r6Status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// serveCached serves a profile-style response through the TTL/ETag cache.
// fetch runs only on a miss; its bool result marks mock payloads.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration, fetch func() (any, bool, error)) {
	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteCached(w, data, etag, ttl, true)
		return
	}

	v, mock, err := fetch()
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}

	body, err := json.Marshal(respond.Envelope{Success: true, Data: v, IsMockData: mock})
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to encode response")
		return
	}
	etag := h.cache.Set(key, body, ttl)
	respond.WriteCached(w, body, etag, ttl, false)
}

// queryInt parses an integer query parameter, falling back when absent or
// malformed.
func queryInt(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
