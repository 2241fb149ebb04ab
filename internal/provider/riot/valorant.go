package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/playtrack/playtrack-data/internal/provider"
)

// Valorant endpoints live exclusively on the continent routing hosts and
// always require a production key — there is no mock fallback here.

// Account is the riot/account-v1 response for a Riot ID lookup.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// MatchlistEntry is one entry of a Valorant match list.
type MatchlistEntry struct {
	MatchID       string `json:"matchId"`
	GameStartTime int64  `json:"gameStartTimeMillis"`
	QueueID       string `json:"queueId"`
}

// Matchlist is the val/match-v1 matchlist response.
type Matchlist struct {
	PUUID   string           `json:"puuid"`
	History []MatchlistEntry `json:"history"`
}

// RecentMatches is the val/match-v1 recent-matches response. The upstream
// endpoint caps the ID list at 15 entries.
type RecentMatches struct {
	CurrentTime int64    `json:"currentTime"`
	MatchIDs    []string `json:"matchIds"`
}

func (c *Client) requireKey() error {
	if c.mock != nil {
		return provider.InvalidParameter(providerName, "Valorant endpoints require a configured Riot API key")
	}
	return nil
}

// ValContent returns the current game content, optionally localized.
func (c *Client) ValContent(ctx context.Context, routing, locale string) (json.RawMessage, error) {
	if !validRouting(routing) {
		return nil, invalidRouting(routing)
	}
	if err := c.requireKey(); err != nil {
		return nil, err
	}
	var params url.Values
	if locale != "" {
		params = url.Values{"locale": []string{locale}}
	}
	return c.get(ctx, routing, "/val/content/v1/contents", params, valTimeout)
}

// ValMatch fetches one Valorant match by ID, returned verbatim.
func (c *Client) ValMatch(ctx context.Context, routing, matchID string) (json.RawMessage, error) {
	if !validRouting(routing) {
		return nil, invalidRouting(routing)
	}
	if err := c.requireKey(); err != nil {
		return nil, err
	}
	return c.get(ctx, routing, "/val/match/v1/matches/"+url.PathEscape(matchID), nil, valTimeout)
}

// ValMatchlist returns a window of the player's match history.
func (c *Client) ValMatchlist(ctx context.Context, routing, puuid string, start, count int) (*Matchlist, error) {
	if !validRouting(routing) {
		return nil, invalidRouting(routing)
	}
	if err := c.requireKey(); err != nil {
		return nil, err
	}
	if count <= 0 {
		count = 20
	}
	params := url.Values{
		"startIndex": []string{fmt.Sprint(start)},
		"endIndex":   []string{fmt.Sprint(start + count)},
	}
	raw, err := c.get(ctx, routing, "/val/match/v1/matchlists/by-puuid/"+url.PathEscape(puuid), params, valTimeout)
	if err != nil {
		return nil, err
	}
	var ml Matchlist
	if err := json.Unmarshal(raw, &ml); err != nil {
		return nil, decodeError(err)
	}
	return &ml, nil
}

// ValRecentMatches returns recent match IDs for a queue, trimmed client-side
// to maxGames while preserving provider order. The upstream list is already
// hard-capped at 15.
func (c *Client) ValRecentMatches(ctx context.Context, routing, queue string, maxGames int) (*RecentMatches, error) {
	if !validRouting(routing) {
		return nil, invalidRouting(routing)
	}
	if err := c.requireKey(); err != nil {
		return nil, err
	}
	raw, err := c.get(ctx, routing, "/val/match/v1/recent-matches/by-queue/"+url.PathEscape(queue), nil, valTimeout)
	if err != nil {
		return nil, err
	}
	var rm RecentMatches
	if err := json.Unmarshal(raw, &rm); err != nil {
		return nil, decodeError(err)
	}
	if maxGames > 0 && len(rm.MatchIDs) > maxGames {
		rm.MatchIDs = rm.MatchIDs[:maxGames]
	}
	return &rm, nil
}

// ValLeaderboard returns a page of the ranked leaderboard for an act.
func (c *Client) ValLeaderboard(ctx context.Context, routing, actID string, size, start int) (json.RawMessage, error) {
	if !validRouting(routing) {
		return nil, invalidRouting(routing)
	}
	if err := c.requireKey(); err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 100
	}
	params := url.Values{
		"size":       []string{fmt.Sprint(size)},
		"startIndex": []string{fmt.Sprint(start)},
	}
	return c.get(ctx, routing, "/val/ranked/v1/leaderboards/by-act/"+url.PathEscape(actID), params, valTimeout)
}

// ValPlatformStatus returns Valorant platform status for the routing region.
func (c *Client) ValPlatformStatus(ctx context.Context, routing string) (json.RawMessage, error) {
	if !validRouting(routing) {
		return nil, invalidRouting(routing)
	}
	if err := c.requireKey(); err != nil {
		return nil, err
	}
	return c.get(ctx, routing, "/val/status/v1/platform-data", nil, valTimeout)
}

// AccountByRiotID resolves a Riot ID (game name + tag line) to its account
// object. NotFound propagates: an unknown Riot ID is a caller-level concern.
func (c *Client) AccountByRiotID(ctx context.Context, routing, gameName, tagLine string) (*Account, error) {
	if !validRouting(routing) {
		return nil, invalidRouting(routing)
	}
	if err := c.requireKey(); err != nil {
		return nil, err
	}
	path := "/riot/account/v1/accounts/by-riot-id/" + url.PathEscape(gameName) + "/" + url.PathEscape(tagLine)
	raw, err := c.get(ctx, routing, path, nil, valTimeout)
	if err != nil {
		return nil, err
	}
	var a Account
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, decodeError(err)
	}
	return &a, nil
}

// ValProfile is the Valorant mini-profile: a short match history window plus
// the competitive tier lifted from the most recent ranked match.
type ValProfile struct {
	PUUID         string     `json:"puuid"`
	GameName      string     `json:"game_name,omitempty"`
	TagLine       string     `json:"tag_line,omitempty"`
	RecentMatches *Matchlist `json:"recent_matches"`
	LastKnownRank *int       `json:"last_known_rank"`
	Degraded      []string   `json:"degraded,omitempty"`
}

const valProfileWindow = 5

// ValorantProfile assembles the mini-profile for a PUUID. The matchlist is
// the hard dependency; the rank scan walks the window in provider order,
// stops at the first competitive entry, and fetches only that match. A
// failed rank lookup degrades rather than failing the profile.
func (c *Client) ValorantProfile(ctx context.Context, routing, puuid string) (*ValProfile, error) {
	matchlist, err := c.ValMatchlist(ctx, routing, puuid, 0, valProfileWindow)
	if err != nil {
		return nil, err
	}

	p := &ValProfile{PUUID: puuid, RecentMatches: matchlist}

	for _, entry := range matchlist.History {
		if entry.QueueID != "competitive" {
			continue
		}
		raw, err := c.ValMatch(ctx, routing, entry.MatchID)
		if err != nil {
			c.logger.Warn("profile section failed", "section", "rank", "error", err)
			p.Degraded = append(p.Degraded, "rank")
			break
		}
		var tier struct {
			CompetitiveTier *int `json:"competitiveTier"`
		}
		if err := json.Unmarshal(raw, &tier); err == nil {
			p.LastKnownRank = tier.CompetitiveTier
		}
		break
	}
	return p, nil
}

// ValorantProfileByRiotID resolves the Riot ID first, reusing the resolved
// PUUID for all dependent calls.
func (c *Client) ValorantProfileByRiotID(ctx context.Context, routing, gameName, tagLine string) (*ValProfile, error) {
	account, err := c.AccountByRiotID(ctx, routing, gameName, tagLine)
	if err != nil {
		return nil, err
	}
	p, err := c.ValorantProfile(ctx, routing, account.PUUID)
	if err != nil {
		return nil, err
	}
	p.GameName = account.GameName
	p.TagLine = account.TagLine
	return p, nil
}
