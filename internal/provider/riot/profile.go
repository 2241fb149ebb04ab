package riot

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/playtrack/playtrack-data/internal/provider"
)

// MatchSummary is the per-match line rendered in profile responses: the
// requesting player's participant row plus derived KDA.
type MatchSummary struct {
	MatchID      string  `json:"matchId"`
	QueueID      int     `json:"queueId"`
	GameCreation int64   `json:"gameCreation"`
	GameDuration int64   `json:"gameDuration"`
	Win          bool    `json:"win"`
	Kills        int     `json:"kills"`
	Deaths       int     `json:"deaths"`
	Assists      int     `json:"assists"`
	KDA          float64 `json:"kda"`
	ChampionID   int     `json:"championId"`
	ChampionName string  `json:"championName"`
	Role         string  `json:"role"`
}

// Profile is the combined League view assembled from several endpoints,
// keyed by logical section. Degraded lists every section that fell back to
// its default, so callers can tell a zeroed fallback from a real zero-stat
// player.
type Profile struct {
	Summoner      *Summoner      `json:"summoner"`
	Ranked        *LeagueEntry   `json:"ranked"`
	Mastery       []MasteryEntry `json:"mastery"`
	RecentMatches []MatchSummary `json:"recent_matches"`
	Degraded      []string       `json:"degraded,omitempty"`
}

const (
	profileMasteryCount = 3
	profileMatchCount   = 5
)

// LoLProfile builds the combined League profile. The summoner lookup is the
// only hard dependency: a player that simply does not exist yields a default
// profile (name as requested, level 0) with the summoner section marked
// degraded, while transport failures propagate. Every other section
// tolerates failure and degrades to its zero value.
func (c *Client) LoLProfile(ctx context.Context, region, name string) (*Profile, error) {
	summoner, err := c.SummonerByName(ctx, region, name)
	if err != nil {
		if provider.IsNotFound(err) {
			return &Profile{
				Summoner:      &Summoner{Name: name},
				Ranked:        unrankedEntry(""),
				Mastery:       []MasteryEntry{},
				RecentMatches: []MatchSummary{},
				Degraded:      []string{"summoner", "ranked", "mastery", "recent_matches"},
			}, nil
		}
		return nil, err
	}

	p := &Profile{Summoner: summoner}

	// Ranked, mastery, and match history all depend only on the resolved
	// identity and not on each other, so they fan out concurrently. Each
	// branch records its own error; failures degrade instead of aborting.
	var (
		rankedErr, masteryErr, matchesErr error
		ranked                            *LeagueEntry
		mastery                           []MasteryEntry
		matches                           []MatchSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ranked, rankedErr = c.RankedSolo(gctx, region, summoner.ID)
		return nil
	})
	g.Go(func() error {
		mastery, masteryErr = c.ChampionMastery(gctx, region, summoner.ID, profileMasteryCount)
		return nil
	})
	g.Go(func() error {
		matches, matchesErr = c.RecentMatchSummaries(gctx, region, summoner.PUUID, profileMatchCount)
		return nil
	})
	_ = g.Wait()

	if rankedErr != nil {
		c.logger.Warn("profile section failed", "section", "ranked", "error", rankedErr)
		ranked = unrankedEntry(summoner.ID)
		p.Degraded = append(p.Degraded, "ranked")
	}
	if masteryErr != nil {
		c.logger.Warn("profile section failed", "section", "mastery", "error", masteryErr)
		mastery = []MasteryEntry{}
		p.Degraded = append(p.Degraded, "mastery")
	}
	if matchesErr != nil {
		c.logger.Warn("profile section failed", "section", "recent_matches", "error", matchesErr)
		matches = []MatchSummary{}
		p.Degraded = append(p.Degraded, "recent_matches")
	}

	p.Ranked = ranked
	p.Mastery = mastery
	p.RecentMatches = matches
	return p, nil
}

// RecentMatchSummaries fetches the player's last count match IDs and the full
// detail of each, sequenced because the detail calls need the ID list first.
// The platform region is translated to its routing host.
func (c *Client) RecentMatchSummaries(ctx context.Context, region, puuid string, count int) ([]MatchSummary, error) {
	routing, ok := routingFor[region]
	if !ok {
		// Callers may already hold a routing region.
		if !validRouting(region) {
			return nil, invalidRegion(region)
		}
		routing = region
	}

	ids, err := c.MatchIDsByPUUID(ctx, routing, puuid, count)
	if err != nil {
		return nil, err
	}

	summaries := make([]MatchSummary, 0, len(ids))
	for _, id := range ids {
		match, err := c.MatchByID(ctx, routing, id)
		if err != nil {
			return nil, err
		}
		if s, ok := summarize(match, puuid); ok {
			summaries = append(summaries, s)
		}
	}
	return summaries, nil
}

// summarize extracts the given player's participant row. Match lists are
// fetched by PUUID, so live payloads always contain the player; payloads that
// omit PUUIDs entirely fall back to the first participant.
func summarize(match *Match, puuid string) (MatchSummary, bool) {
	participants := match.Info.Participants
	if len(participants) == 0 {
		return MatchSummary{}, false
	}

	target := &participants[0]
	for i := range participants {
		if participants[i].PUUID == puuid {
			target = &participants[i]
			break
		}
	}

	deaths := target.Deaths
	if deaths < 1 {
		deaths = 1
	}
	name := target.ChampionName
	if name == "" {
		name = ChampionName(target.ChampionID)
	}
	return MatchSummary{
		MatchID:      match.Metadata.MatchID,
		QueueID:      match.Info.QueueID,
		GameCreation: match.Info.GameCreation,
		GameDuration: match.Info.GameDuration,
		Win:          target.Win,
		Kills:        target.Kills,
		Deaths:       target.Deaths,
		Assists:      target.Assists,
		KDA:          float64(target.Kills+target.Assists) / float64(deaths),
		ChampionID:   target.ChampionID,
		ChampionName: name,
		Role:         target.Role,
	}, true
}
