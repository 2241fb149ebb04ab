package overfast

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"
)

// Profile is the combined Overwatch view, keyed by logical section. Degraded
// lists every section that fell back to its default.
type Profile struct {
	Profile     json.RawMessage `json:"profile"`
	Summary     json.RawMessage `json:"summary"`
	Competitive json.RawMessage `json:"competitive"`
	Heroes      json.RawMessage `json:"heroes"`
	Degraded    []string        `json:"degraded,omitempty"`
}

var emptySection = json.RawMessage(`{}`)

// CombinedProfile assembles the player's profile, summary, competitive
// rankings, and quickplay hero stats. The profile lookup is the only hard
// dependency; the remaining sections have no data dependency on each other
// and are fetched concurrently, each degrading to an empty object on
// failure.
func (c *Client) CombinedProfile(ctx context.Context, battletag string) (*Profile, error) {
	profile, err := c.PlayerProfile(ctx, battletag)
	if err != nil {
		return nil, err
	}

	p := &Profile{Profile: profile}

	var (
		summaryErr, competitiveErr, heroesErr error
		summary, competitive, heroes          json.RawMessage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, summaryErr = c.PlayerSummary(gctx, battletag)
		return nil
	})
	g.Go(func() error {
		competitive, competitiveErr = c.PlayerCompetitive(gctx, battletag)
		return nil
	})
	g.Go(func() error {
		heroes, heroesErr = c.PlayerHeroes(gctx, battletag, ModeQuickplay)
		return nil
	})
	_ = g.Wait()

	if summaryErr != nil {
		c.logger.Warn("profile section failed", "section", "summary", "error", summaryErr)
		summary = emptySection
		p.Degraded = append(p.Degraded, "summary")
	}
	if competitiveErr != nil {
		c.logger.Warn("profile section failed", "section", "competitive", "error", competitiveErr)
		competitive = emptySection
		p.Degraded = append(p.Degraded, "competitive")
	}
	if heroesErr != nil {
		c.logger.Warn("profile section failed", "section", "heroes", "error", heroesErr)
		heroes = emptySection
		p.Degraded = append(p.Degraded, "heroes")
	}

	p.Summary = summary
	p.Competitive = competitive
	p.Heroes = heroes
	return p, nil
}
