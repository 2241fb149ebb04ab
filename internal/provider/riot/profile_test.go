package riot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lolFakeUpstream serves a minimal happy-path League API. Individual tests
// override sections by status code.
type lolFakeUpstream struct {
	summonerStatus int
	rankedStatus   int
	masteryStatus  int
	matchStatus    int
}

func (f *lolFakeUpstream) handler() http.HandlerFunc {
	status := func(s int) int {
		if s == 0 {
			return http.StatusOK
		}
		return s
	}
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/lol/summoner/"):
			if s := status(f.summonerStatus); s != http.StatusOK {
				w.WriteHeader(s)
				return
			}
			json.NewEncoder(w).Encode(Summoner{
				ID: "sid", PUUID: "target-puuid", Name: "Faker", SummonerLevel: 412,
			})
		case strings.HasPrefix(r.URL.Path, "/lol/league/"):
			if s := status(f.rankedStatus); s != http.StatusOK {
				w.WriteHeader(s)
				return
			}
			json.NewEncoder(w).Encode([]LeagueEntry{
				{QueueType: "RANKED_SOLO_5x5", Tier: "CHALLENGER", Rank: "I", Wins: 300, Losses: 150},
			})
		case strings.HasPrefix(r.URL.Path, "/lol/champion-mastery/"):
			if s := status(f.masteryStatus); s != http.StatusOK {
				w.WriteHeader(s)
				return
			}
			json.NewEncoder(w).Encode([]MasteryEntry{
				{ChampionID: 157, ChampionPoints: 500000},
			})
		case strings.HasSuffix(r.URL.Path, "/ids"):
			if s := status(f.matchStatus); s != http.StatusOK {
				w.WriteHeader(s)
				return
			}
			json.NewEncoder(w).Encode([]string{"NA1_1", "NA1_2"})
		case strings.HasPrefix(r.URL.Path, "/lol/match/"):
			if s := status(f.matchStatus); s != http.StatusOK {
				w.WriteHeader(s)
				return
			}
			m := Match{}
			m.Metadata.MatchID = strings.TrimPrefix(r.URL.Path, "/lol/match/v5/matches/")
			m.Info.QueueID = 420
			m.Info.Participants = []Participant{
				{PUUID: "someone-else", ChampionID: 99, Kills: 1, Deaths: 1, Assists: 1, Role: "SUPPORT"},
				{PUUID: "target-puuid", ChampionID: 157, Kills: 10, Deaths: 0, Assists: 5, Win: true, Role: "MIDDLE"},
			}
			json.NewEncoder(w).Encode(m)
		default:
			http.NotFound(w, r)
		}
	}
}

func newProfileClient(t *testing.T, f *lolFakeUpstream) *Client {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "key", testRPM, nil)
}

func TestLoLProfileHappyPath(t *testing.T) {
	c := newProfileClient(t, &lolFakeUpstream{})

	p, err := c.LoLProfile(context.Background(), "na1", "Faker")
	require.NoError(t, err)
	assert.Empty(t, p.Degraded)
	assert.Equal(t, "Faker", p.Summoner.Name)
	assert.Equal(t, "CHALLENGER", p.Ranked.Tier)
	require.Len(t, p.Mastery, 1)
	require.Len(t, p.RecentMatches, 2)

	// The requesting player's row is extracted, with zero deaths guarded.
	m := p.RecentMatches[0]
	assert.Equal(t, 10, m.Kills)
	assert.Equal(t, 0, m.Deaths)
	assert.InDelta(t, 15.0, m.KDA, 0.001)
	assert.Equal(t, "Yasuo", m.ChampionName)
}

func TestLoLProfileUnknownSummonerIsLenient(t *testing.T) {
	c := newProfileClient(t, &lolFakeUpstream{summonerStatus: http.StatusNotFound})

	p, err := c.LoLProfile(context.Background(), "na1", "NoSuchPlayer")
	require.NoError(t, err)
	assert.Equal(t, "NoSuchPlayer", p.Summoner.Name)
	assert.Equal(t, 0, p.Summoner.SummonerLevel)
	assert.Equal(t, "UNRANKED", p.Ranked.Tier)
	assert.Empty(t, p.Mastery)
	assert.Empty(t, p.RecentMatches)
	assert.ElementsMatch(t, []string{"summoner", "ranked", "mastery", "recent_matches"}, p.Degraded)
}

func TestLoLProfileTransportFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	c := NewClient(srv.URL, "key", testRPM, nil)

	_, err := c.LoLProfile(context.Background(), "na1", "Faker")
	require.Error(t, err)
}

func TestLoLProfileSectionFailureDegrades(t *testing.T) {
	c := newProfileClient(t, &lolFakeUpstream{rankedStatus: http.StatusInternalServerError})

	p, err := c.LoLProfile(context.Background(), "na1", "Faker")
	require.NoError(t, err)
	assert.Equal(t, []string{"ranked"}, p.Degraded)
	assert.Equal(t, "UNRANKED", p.Ranked.Tier)
	assert.Len(t, p.RecentMatches, 2)
}

func TestLoLProfileMatchFailureDegradesOnlyMatches(t *testing.T) {
	c := newProfileClient(t, &lolFakeUpstream{matchStatus: http.StatusInternalServerError})

	p, err := c.LoLProfile(context.Background(), "na1", "Faker")
	require.NoError(t, err)
	assert.Equal(t, []string{"recent_matches"}, p.Degraded)
	assert.Equal(t, "CHALLENGER", p.Ranked.Tier)
	assert.Empty(t, p.RecentMatches)
}

func TestRecentMatchSummariesAcceptsRoutingRegion(t *testing.T) {
	c := newProfileClient(t, &lolFakeUpstream{})

	summaries, err := c.RecentMatchSummaries(context.Background(), "americas", "target-puuid", 2)
	require.NoError(t, err)
	assert.Len(t, summaries, 2)
}

func TestSummarizeFallsBackToFirstParticipant(t *testing.T) {
	m := &Match{}
	m.Info.Participants = []Participant{
		{ChampionID: 412, Kills: 2, Deaths: 4, Assists: 6},
	}
	s, ok := summarize(m, "absent-puuid")
	require.True(t, ok)
	assert.Equal(t, 412, s.ChampionID)
	assert.InDelta(t, 2.0, s.KDA, 0.001)
}

func TestSummarizeEmptyMatch(t *testing.T) {
	_, ok := summarize(&Match{}, "whoever")
	assert.False(t, ok)
}
