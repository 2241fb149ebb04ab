package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playtrack/playtrack-data/internal/api/respond"
)

// GetValContent returns game content, optionally filtered by locale.
func (h *Handler) GetValContent(w http.ResponseWriter, r *http.Request) {
	routing := chi.URLParam(r, "routing")
	locale := r.URL.Query().Get("locale")

	raw, err := h.riot.ValContent(r.Context(), routing, locale)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, raw)
}

// GetValMatch returns full detail for one Valorant match.
func (h *Handler) GetValMatch(w http.ResponseWriter, r *http.Request) {
	routing := chi.URLParam(r, "routing")
	matchID := chi.URLParam(r, "matchID")

	raw, err := h.riot.ValMatch(r.Context(), routing, matchID)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, raw)
}

// GetValMatchlist returns a page of the player's match history.
func (h *Handler) GetValMatchlist(w http.ResponseWriter, r *http.Request) {
	routing := chi.URLParam(r, "routing")
	puuid := chi.URLParam(r, "puuid")
	start := queryInt(r, "start", 0)
	count := queryInt(r, "count", 10)

	list, err := h.riot.ValMatchlist(r.Context(), routing, puuid, start, count)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, list)
}

// GetValRecentMatches returns recent match IDs for a queue.
func (h *Handler) GetValRecentMatches(w http.ResponseWriter, r *http.Request) {
	routing := chi.URLParam(r, "routing")
	queue := chi.URLParam(r, "queue")
	maxGames := queryInt(r, "max_games", 10)

	recent, err := h.riot.ValRecentMatches(r.Context(), routing, queue, maxGames)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, recent)
}

// GetValLeaderboard returns a leaderboard page for a competitive act.
func (h *Handler) GetValLeaderboard(w http.ResponseWriter, r *http.Request) {
	routing := chi.URLParam(r, "routing")
	actID := chi.URLParam(r, "actID")
	size := queryInt(r, "size", 100)
	start := queryInt(r, "start", 0)

	raw, err := h.riot.ValLeaderboard(r.Context(), routing, actID, size, start)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, raw)
}

// GetValStatus returns Valorant platform status for the routing region.
func (h *Handler) GetValStatus(w http.ResponseWriter, r *http.Request) {
	routing := chi.URLParam(r, "routing")

	raw, err := h.riot.ValPlatformStatus(r.Context(), routing)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, raw)
}

// GetValAccount resolves a Riot ID (gameName#tagLine) to an account.
func (h *Handler) GetValAccount(w http.ResponseWriter, r *http.Request) {
	routing := chi.URLParam(r, "routing")
	gameName := chi.URLParam(r, "gameName")
	tagLine := chi.URLParam(r, "tagLine")

	acct, err := h.riot.AccountByRiotID(r.Context(), routing, gameName, tagLine)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, acct)
}

// GetValProfile serves the Valorant mini-profile for a puuid.
func (h *Handler) GetValProfile(w http.ResponseWriter, r *http.Request) {
	routing := chi.URLParam(r, "routing")
	puuid := chi.URLParam(r, "puuid")

	p, err := h.riot.ValorantProfile(r.Context(), routing, puuid)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, p)
}

// GetValProfileByRiotID serves the Valorant mini-profile for a Riot ID.
func (h *Handler) GetValProfileByRiotID(w http.ResponseWriter, r *http.Request) {
	routing := chi.URLParam(r, "routing")
	gameName := chi.URLParam(r, "gameName")
	tagLine := chi.URLParam(r, "tagLine")

	p, err := h.riot.ValorantProfileByRiotID(r.Context(), routing, gameName, tagLine)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	respond.WriteData(w, p)
}
