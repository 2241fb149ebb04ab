// Package ubisoft provides the client for Ubisoft Connect, serving Rainbow
// Six Siege statistics.
//
// The upstream session-brokering flow was never completed: without a
// configured app ID and session the client serves documented placeholder
// payloads, deterministic per profile ID, so the rest of the pipeline stays
// exercisable. Placeholder() reports which mode is active. When a session is
// configured, requests carry the Ubi_v1 session header.
package ubisoft

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/playtrack/playtrack-data/internal/provider"
)

// DefaultBaseURL is the public Ubisoft services endpoint.
const DefaultBaseURL = "https://public-ubiservices.ubi.com"

const (
	providerName = "ubisoft"
	dataTimeout  = 15 * time.Second
	userAgent    = "playtrack-data/1.0"
)

// Platforms supported by player search.
var Platforms = []string{"uplay", "steam", "xbox", "psn"}

// ValidPlatform reports whether the platform code is supported.
func ValidPlatform(platform string) bool {
	for _, p := range Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

// Client is the Ubisoft Connect client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	appID      string
	sessionID  string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a Ubisoft client. An empty appID leaves the client in
// placeholder mode.
func NewClient(baseURL, appID string, requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: dataTimeout},
		baseURL:    baseURL,
		appID:      appID,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// Placeholder reports whether the client serves canned payloads instead of
// calling Ubisoft.
func (c *Client) Placeholder() bool { return c.appID == "" || c.sessionID == "" }

// Authenticate installs the session used for live requests. Session
// brokering against the credential endpoint is not implemented upstream, so
// the session must be provisioned externally. Missing app ID or session
// leaves the client serving the canned payloads.
func (c *Client) Authenticate(ctx context.Context, sessionID string) error {
	if c.appID == "" || sessionID == "" {
		c.sessionID = ""
		c.logger.Warn("Ubisoft credentials not configured, serving placeholder R6 data")
		return nil
	}
	// TODO: replace with the v3/profiles/sessions token exchange once
	// credentials are provisioned for this service.
	c.sessionID = sessionID
	return nil
}

func (c *Client) headers(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.appID != "" {
		req.Header.Set("Ubi-AppId", c.appID)
	}
	if c.sessionID != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Ubi_v1 t=%s", c.sessionID))
	}
}

// get performs one rate-limited GET with the session header. Only reachable
// once a real session exists.
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
	c.headers(req)

	c.logger.Debug("ubisoft request", "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, provider.Unavailable(providerName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, provider.Unavailable(providerName, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, provider.FromStatus(providerName, resp.StatusCode, body, resp.Header)
	}

	return body, nil
}

// SearchPlayer searches for a player by username on a platform.
func (c *Client) SearchPlayer(ctx context.Context, username, platform string) (json.RawMessage, error) {
	if !ValidPlatform(platform) {
		return nil, provider.InvalidParameter(providerName, fmt.Sprintf("unsupported platform %q, must be one of %v", platform, Platforms))
	}
	if c.Placeholder() {
		return placeholderSearch(username, platform), nil
	}
	params := url.Values{
		"nameOnPlatform": []string{username},
		"platformType":   []string{platform},
	}
	return c.get(ctx, "/v3/profiles", params)
}

// PlayerStats returns Rainbow Six Siege statistics for a profile ID.
func (c *Client) PlayerStats(ctx context.Context, profileID, platform string) (json.RawMessage, error) {
	if !ValidPlatform(platform) {
		return nil, provider.InvalidParameter(providerName, fmt.Sprintf("unsupported platform %q, must be one of %v", platform, Platforms))
	}
	if c.Placeholder() {
		return placeholderStats(profileID), nil
	}
	return c.get(ctx, "/v1/spaces/stats/profiles/"+url.PathEscape(profileID), nil)
}

// SeasonalStats returns seasonal statistics for a profile ID. A zero
// seasonID means the current season.
func (c *Client) SeasonalStats(ctx context.Context, profileID string, seasonID int) (json.RawMessage, error) {
	if c.Placeholder() {
		return placeholderSeasonal(profileID, seasonID), nil
	}
	params := url.Values{}
	if seasonID > 0 {
		params.Set("season_id", fmt.Sprint(seasonID))
	}
	return c.get(ctx, "/v1/spaces/stats/profiles/"+url.PathEscape(profileID)+"/seasons", params)
}

// OperatorStats returns detailed per-operator statistics for a profile ID.
func (c *Client) OperatorStats(ctx context.Context, profileID string) (json.RawMessage, error) {
	if c.Placeholder() {
		return placeholderOperators(profileID), nil
	}
	return c.get(ctx, "/v1/spaces/stats/profiles/"+url.PathEscape(profileID)+"/operators", nil)
}
