package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playtrack/playtrack-data/internal/api/respond"
	"github.com/playtrack/playtrack-data/internal/cache"
	"github.com/playtrack/playtrack-data/internal/provider"
	"github.com/playtrack/playtrack-data/internal/provider/overfast"
)

// GetOWPlayer returns the full player career profile. Unknown battletags get
// the default profile shape with success=true so client search flows don't
// break on typos; transport failures still propagate.
func (h *Handler) GetOWPlayer(w http.ResponseWriter, r *http.Request) {
	battletag := chi.URLParam(r, "battletag")

	raw, err := h.overwatch.PlayerProfile(r.Context(), battletag)
	if provider.IsNotFound(err) {
		respond.WriteData(w, overfast.DefaultProfile())
		return
	}
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, raw)
}

// GetOWPlayerSummary returns the player summary section.
func (h *Handler) GetOWPlayerSummary(w http.ResponseWriter, r *http.Request) {
	battletag := chi.URLParam(r, "battletag")

	raw, err := h.overwatch.PlayerSummary(r.Context(), battletag)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, raw)
}

// GetOWPlayerCompetitive returns the player's competitive ranks.
func (h *Handler) GetOWPlayerCompetitive(w http.ResponseWriter, r *http.Request) {
	battletag := chi.URLParam(r, "battletag")

	raw, err := h.overwatch.PlayerCompetitive(r.Context(), battletag)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, raw)
}

// GetOWPlayerHeroes returns per-hero stats for a mode.
func (h *Handler) GetOWPlayerHeroes(w http.ResponseWriter, r *http.Request) {
	battletag := chi.URLParam(r, "battletag")
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = overfast.ModeQuickplay
	}

	raw, err := h.overwatch.PlayerHeroes(r.Context(), battletag, mode)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, raw)
}

// GetOWHeroes returns the static hero list.
func (h *Handler) GetOWHeroes(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "ow:heroes", cache.TTLStatic, func() (any, bool, error) {
		raw, err := h.overwatch.Heroes(r.Context())
		return raw, false, err
	})
}

// GetOWHeroDetails returns details for one hero.
func (h *Handler) GetOWHeroDetails(w http.ResponseWriter, r *http.Request) {
	heroKey := chi.URLParam(r, "heroKey")

	h.serveCached(w, r, "ow:hero:"+heroKey, cache.TTLStatic, func() (any, bool, error) {
		raw, err := h.overwatch.HeroDetails(r.Context(), heroKey)
		return raw, false, err
	})
}

// GetOWMaps returns the static map list.
func (h *Handler) GetOWMaps(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "ow:maps", cache.TTLStatic, func() (any, bool, error) {
		raw, err := h.overwatch.Maps(r.Context())
		return raw, false, err
	})
}

// GetOWProfile serves the combined Overwatch profile through the cache.
// Unknown battletags get the same leniency as GetOWPlayer: the default
// profile shape fills the profile section, every section is marked degraded,
// and the envelope reports success. Transport failures still propagate.
func (h *Handler) GetOWProfile(w http.ResponseWriter, r *http.Request) {
	battletag := chi.URLParam(r, "battletag")

	key := "ow:profile:" + battletag
	h.serveCached(w, r, key, cache.TTLProfile, func() (any, bool, error) {
		p, err := h.overwatch.CombinedProfile(r.Context(), battletag)
		if provider.IsNotFound(err) {
			return &overfast.Profile{
				Profile:     overfast.DefaultProfile(),
				Summary:     json.RawMessage(`{}`),
				Competitive: json.RawMessage(`{}`),
				Heroes:      json.RawMessage(`{}`),
				Degraded:    []string{"profile", "summary", "competitive", "heroes"},
			}, false, nil
		}
		if err != nil {
			return nil, false, err
		}
		return p, false, nil
	})
}
