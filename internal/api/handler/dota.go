package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playtrack/playtrack-data/internal/api/respond"
	"github.com/playtrack/playtrack-data/internal/cache"
	"github.com/playtrack/playtrack-data/internal/provider/opendota"
)

// dotaAccountID resolves the path parameter through the pro-player alias table.
func dotaAccountID(r *http.Request) string {
	return opendota.ResolveAccountID(chi.URLParam(r, "accountID"))
}

// GetDotaPlayer returns player info for a numeric account ID or pro alias.
func (h *Handler) GetDotaPlayer(w http.ResponseWriter, r *http.Request) {
	raw, err := h.dota.PlayerInfo(r.Context(), dotaAccountID(r))
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, raw)
}

// GetDotaRecentMatches returns the player's recent matches.
func (h *Handler) GetDotaRecentMatches(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)

	matches, err := h.dota.RecentMatches(r.Context(), dotaAccountID(r), limit)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, matches)
}

// GetDotaPlayerHeroes returns the player's per-hero statistics.
func (h *Handler) GetDotaPlayerHeroes(w http.ResponseWriter, r *http.Request) {
	raw, err := h.dota.PlayerHeroes(r.Context(), dotaAccountID(r))
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, raw)
}

// GetDotaWinLoss returns the player's win/loss counts.
func (h *Handler) GetDotaWinLoss(w http.ResponseWriter, r *http.Request) {
	wl, err := h.dota.PlayerWinLoss(r.Context(), dotaAccountID(r))
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, wl)
}

// GetDotaRankings returns the player's hero rankings.
func (h *Handler) GetDotaRankings(w http.ResponseWriter, r *http.Request) {
	raw, err := h.dota.PlayerRankings(r.Context(), dotaAccountID(r))
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, raw)
}

// GetDotaHeroes returns the static hero list.
func (h *Handler) GetDotaHeroes(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "dota:heroes", cache.TTLStatic, func() (any, bool, error) {
		raw, err := h.dota.Heroes(r.Context())
		return raw, false, err
	})
}

// GetDotaHeroStats returns aggregate per-hero statistics.
func (h *Handler) GetDotaHeroStats(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "dota:hero-stats", cache.TTLStatic, func() (any, bool, error) {
		raw, err := h.dota.HeroStats(r.Context())
		return raw, false, err
	})
}

// GetDotaMatch returns detail for a single match.
func (h *Handler) GetDotaMatch(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")

	raw, err := h.dota.MatchDetails(r.Context(), matchID)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, raw)
}

// GetDotaPublicMatches returns a sample of recent public matches.
func (h *Handler) GetDotaPublicMatches(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)

	raw, err := h.dota.PublicMatches(r.Context(), limit)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, raw)
}

// GetDotaProPlayers returns the pro-player directory.
func (h *Handler) GetDotaProPlayers(w http.ResponseWriter, r *http.Request) {
	raw, err := h.dota.ProPlayers(r.Context())
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, raw)
}

// GetDotaProMatches returns recent professional matches.
func (h *Handler) GetDotaProMatches(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)

	raw, err := h.dota.ProMatches(r.Context(), limit)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, raw)
}

// GetDotaMetadata returns OpenDota constants and metadata.
func (h *Handler) GetDotaMetadata(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "dota:metadata", cache.TTLStatic, func() (any, bool, error) {
		raw, err := h.dota.Metadata(r.Context())
		return raw, false, err
	})
}
