package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playtrack/playtrack-data/internal/api/respond"
	"github.com/playtrack/playtrack-data/internal/cache"
	"github.com/playtrack/playtrack-data/internal/provider/riot"
	"github.com/playtrack/playtrack-data/internal/transform"
)

// writeRiot wraps a Riot payload in the envelope, flagging mock-mode data.
func (h *Handler) writeRiot(w http.ResponseWriter, v any) {
	if h.riot.MockEnabled() {
		respond.WriteMockData(w, v)
		return
	}
	respond.WriteData(w, v)
}

// GetLoLSummoner resolves a summoner by name.
func (h *Handler) GetLoLSummoner(w http.ResponseWriter, r *http.Request) {
	region := chi.URLParam(r, "region")
	name := chi.URLParam(r, "name")

	s, err := h.riot.SummonerByName(r.Context(), region, name)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	h.writeRiot(w, s)
}

// GetLoLRanked resolves a summoner and returns the solo-queue entry with a
// derived win rate.
func (h *Handler) GetLoLRanked(w http.ResponseWriter, r *http.Request) {
	region := chi.URLParam(r, "region")
	name := chi.URLParam(r, "name")

	s, err := h.riot.SummonerByName(r.Context(), region, name)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	entry, err := h.riot.RankedSolo(r.Context(), region, s.ID)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}

	winRate := 0.0
	if total := entry.Wins + entry.Losses; total > 0 {
		winRate = float64(entry.Wins) / float64(total) * 100
	}
	h.writeRiot(w, map[string]interface{}{
		"entry":    entry,
		"win_rate": winRate,
	})
}

// GetLoLMastery returns the summoner's top champion masteries, enriched with
// champion names.
func (h *Handler) GetLoLMastery(w http.ResponseWriter, r *http.Request) {
	region := chi.URLParam(r, "region")
	name := chi.URLParam(r, "name")
	limit := queryInt(r, "limit", 3)

	s, err := h.riot.SummonerByName(r.Context(), region, name)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	entries, err := h.riot.ChampionMastery(r.Context(), region, s.ID, limit)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}

	type namedMastery struct {
		riot.MasteryEntry
		ChampionName string `json:"championName"`
	}
	named := make([]namedMastery, len(entries))
	for i, e := range entries {
		named[i] = namedMastery{MasteryEntry: e, ChampionName: riot.ChampionName(e.ChampionID)}
	}
	h.writeRiot(w, named)
}

// GetLoLMatches returns per-match summaries for the summoner's recent games.
func (h *Handler) GetLoLMatches(w http.ResponseWriter, r *http.Request) {
	region := chi.URLParam(r, "region")
	name := chi.URLParam(r, "name")
	count := queryInt(r, "count", 5)

	s, err := h.riot.SummonerByName(r.Context(), region, name)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	summaries, err := h.riot.RecentMatchSummaries(r.Context(), region, s.PUUID, count)
	if err != nil {
		respond.WriteProviderError(w, err)
		return
	}
	h.writeRiot(w, summaries)
}

// GetLoLProfile serves the combined LoL profile through the response cache.
func (h *Handler) GetLoLProfile(w http.ResponseWriter, r *http.Request) {
	region := chi.URLParam(r, "region")
	name := chi.URLParam(r, "name")

	key := "lol:profile:" + region + ":" + name
	h.serveCached(w, r, key, cache.TTLProfile, func() (any, bool, error) {
		p, err := h.riot.LoLProfile(r.Context(), region, name)
		if err != nil {
			return nil, false, err
		}
		return p, h.riot.MockEnabled(), nil
	})
}

// GetLoLStats serves the normalized MOBA stats derived from the combined
// profile.
func (h *Handler) GetLoLStats(w http.ResponseWriter, r *http.Request) {
	region := chi.URLParam(r, "region")
	name := chi.URLParam(r, "name")

	key := "lol:stats:" + region + ":" + name
	h.serveCached(w, r, key, cache.TTLTransform, func() (any, bool, error) {
		p, err := h.riot.LoLProfile(r.Context(), region, name)
		if err != nil {
			return nil, false, err
		}
		return transform.RiotLoLToMOBA(p), h.riot.MockEnabled(), nil
	})
}
