// Package overfast provides the HTTP client for the OverFast API serving
// Overwatch 2 data.
//
// OverFast requires no API key; every operation hits the network. Player
// lookups 404 for unknown battletags and private profiles alike — callers
// decide how lenient to be with that.
package overfast

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/playtrack/playtrack-data/internal/provider"
)

// DefaultBaseURL is the public OverFast endpoint.
const DefaultBaseURL = "https://overfast-api.tekrop.fr"

const (
	providerName = "overfast"
	dataTimeout  = 10 * time.Second
)

// Modes accepted by the per-hero stats endpoint.
const (
	ModeQuickplay   = "quickplay"
	ModeCompetitive = "competitive"
)

// DefaultProfile is the zeroed shape served when a player genuinely does not
// exist (or hides their profile). Serving it with success distinguishes
// "not found" from an upstream outage.
func DefaultProfile() json.RawMessage {
	return json.RawMessage(`{"player_name":"unknown","player_level":0,"endorsement_level":0}`)
}

// Client is the HTTP client for OverFast endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates an OverFast client with rate limiting.
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
func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, provider.Unavailable(providerName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, provider.Unavailable(providerName, err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("overfast request", "path", path)

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

// PlayerProfile returns general player information for a battletag
// (format: name-1234).
func (c *Client) PlayerProfile(ctx context.Context, battletag string) (json.RawMessage, error) {
	return c.get(ctx, "/players/"+url.PathEscape(battletag))
}

// PlayerSummary returns quick play and competitive summary statistics.
func (c *Client) PlayerSummary(ctx context.Context, battletag string) (json.RawMessage, error) {
	return c.get(ctx, "/players/"+url.PathEscape(battletag)+"/summary")
}

// PlayerCompetitive returns the player's competitive rankings.
func (c *Client) PlayerCompetitive(ctx context.Context, battletag string) (json.RawMessage, error) {
	return c.get(ctx, "/players/"+url.PathEscape(battletag)+"/competitive")
}

// PlayerHeroes returns per-hero statistics for a mode. The mode is validated
// before dispatch.
func (c *Client) PlayerHeroes(ctx context.Context, battletag, mode string) (json.RawMessage, error) {
	if mode != ModeQuickplay && mode != ModeCompetitive {
		return nil, provider.InvalidParameter(providerName, "mode must be 'quickplay' or 'competitive'")
	}
	return c.get(ctx, "/players/"+url.PathEscape(battletag)+"/heroes/"+mode)
}

// Heroes returns information about all heroes.
func (c *Client) Heroes(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/heroes")
}

// HeroDetails returns detail for one hero key (e.g. "ana", "soldier-76").
func (c *Client) HeroDetails(ctx context.Context, heroKey string) (json.RawMessage, error) {
	return c.get(ctx, "/heroes/"+url.PathEscape(heroKey))
}

// Maps returns information about all maps.
func (c *Client) Maps(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/maps")
}
