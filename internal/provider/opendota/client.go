// Package opendota provides the HTTP client for the OpenDota API.
//
// OpenDota requires no API key; every operation hits the network. Responses
// are returned verbatim as raw JSON — schema shaping happens downstream.
package opendota

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/playtrack/playtrack-data/internal/provider"
)

// DefaultBaseURL is the public OpenDota endpoint.
const DefaultBaseURL = "https://api.opendota.com/api"

const (
	providerName = "opendota"
	dataTimeout  = 10 * time.Second
)

// proPlayers maps well-known professional player nicknames to their OpenDota
// account IDs, so clients can ask for "arteezy" instead of a Steam ID.
var proPlayers = map[string]string{
	"arteezy": "86745912",
	"nisha":   "201358612",
	"sumail":  "111620041",
	"notail":  "19672354",
	"puppey":  "87278757",
}

// ResolveAccountID translates a known pro-player nickname to its account ID.
// Resolution is case-insensitive and happens before dispatch; unknown names
// pass through unchanged.
func ResolveAccountID(id string) string {
	if resolved, ok := proPlayers[strings.ToLower(id)]; ok {
		return resolved
	}
	return id
}

// Client is the HTTP client for OpenDota endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates an OpenDota client with rate limiting.
func NewClient(baseURL string, requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: dataTimeout},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// get performs one rate-limited GET and returns the raw JSON body.
func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, provider.Unavailable(providerName, err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, provider.Unavailable(providerName, err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("opendota request", "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, provider.Unavailable(providerName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, provider.Unavailable(providerName, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, provider.FromStatus(providerName, resp.StatusCode, body, resp.Header)
	}

	return body, nil
}

// PlayerInfo returns a player's profile by account ID or pro nickname.
func (c *Client) PlayerInfo(ctx context.Context, accountID string) (json.RawMessage, error) {
	accountID = ResolveAccountID(accountID)
	return c.get(ctx, "/players/"+url.PathEscape(accountID), nil)
}

// RecentMatches returns the player's recent matches trimmed to limit,
// preserving provider order.
func (c *Client) RecentMatches(ctx context.Context, accountID string, limit int) ([]json.RawMessage, error) {
	accountID = ResolveAccountID(accountID)
	raw, err := c.get(ctx, "/players/"+url.PathEscape(accountID)+"/recentMatches", nil)
	if err != nil {
		return nil, err
	}
	var matches []json.RawMessage
	if err := json.Unmarshal(raw, &matches); err != nil {
		return nil, provider.Unavailable(providerName, fmt.Errorf("decode response: %w", err))
	}
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// PlayerHeroes returns per-hero statistics for a player.
func (c *Client) PlayerHeroes(ctx context.Context, accountID string) (json.RawMessage, error) {
	accountID = ResolveAccountID(accountID)
	return c.get(ctx, "/players/"+url.PathEscape(accountID)+"/heroes", nil)
}

// WinLoss is a player's win/loss record.
type WinLoss struct {
	Win  int `json:"win"`
	Lose int `json:"lose"`
}

// PlayerWinLoss returns the player's win/loss record.
func (c *Client) PlayerWinLoss(ctx context.Context, accountID string) (*WinLoss, error) {
	accountID = ResolveAccountID(accountID)
	raw, err := c.get(ctx, "/players/"+url.PathEscape(accountID)+"/wl", nil)
	if err != nil {
		return nil, err
	}
	var wl WinLoss
	if err := json.Unmarshal(raw, &wl); err != nil {
		return nil, provider.Unavailable(providerName, fmt.Errorf("decode response: %w", err))
	}
	return &wl, nil
}

// PlayerRankings returns the player's hero rankings.
func (c *Client) PlayerRankings(ctx context.Context, accountID string) (json.RawMessage, error) {
	accountID = ResolveAccountID(accountID)
	return c.get(ctx, "/players/"+url.PathEscape(accountID)+"/rankings", nil)
}

// Heroes returns the static list of all heroes.
func (c *Client) Heroes(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/heroes", nil)
}

// HeroStats returns aggregate stats for all heroes.
func (c *Client) HeroStats(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/heroStats", nil)
}

// MatchDetails returns full detail for a known match. NotFound propagates.
func (c *Client) MatchDetails(ctx context.Context, matchID string) (json.RawMessage, error) {
	return c.get(ctx, "/matches/"+url.PathEscape(matchID), nil)
}

// PublicMatches returns a page of recent public matches.
func (c *Client) PublicMatches(ctx context.Context, limit int) (json.RawMessage, error) {
	if limit <= 0 {
		limit = 10
	}
	return c.get(ctx, "/publicMatches", url.Values{"limit": []string{fmt.Sprint(limit)}})
}

// ProPlayers returns the list of professional players.
func (c *Client) ProPlayers(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/proPlayers", nil)
}

// ProMatches returns a page of recent professional matches.
func (c *Client) ProMatches(ctx context.Context, limit int) (json.RawMessage, error) {
	if limit <= 0 {
		limit = 10
	}
	return c.get(ctx, "/proMatches", url.Values{"limit": []string{fmt.Sprint(limit)}})
}

// Metadata returns OpenDota API metadata.
func (c *Client) Metadata(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/metadata", nil)
}
