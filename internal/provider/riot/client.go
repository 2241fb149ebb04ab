// Package riot provides the HTTP client for Riot Games endpoints, covering
// League of Legends and Valorant.
//
// Riot splits endpoints between per-platform hosts (na1, euw1, ...) and
// per-continent routing hosts (americas, europe, asia); match-history
// endpoints live on the latter. Auth is the X-Riot-Token header.
//
// When no API key is configured, the League operations serve deterministic
// mock payloads instead of calling the network, so downstream orchestration
// and transforms stay exercisable without a live key. This fallback is
// specific to this client; the keyless providers always hit the network.
package riot

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

const (
	providerName = "riot"
	userAgent    = "playtrack-data/1.0"

	dataTimeout     = 10 * time.Second
	valTimeout      = 15 * time.Second
	validateTimeout = 5 * time.Second
)

// PlatformRegions are the per-platform hosts accepted by League endpoints.
var PlatformRegions = []string{"na1", "euw1", "kr", "br1", "jp1", "ru", "oc1", "tr1", "la1", "la2"}

// RoutingRegions are the per-continent hosts used by match-history and
// Valorant endpoints.
var RoutingRegions = []string{"americas", "europe", "asia"}

// routingFor maps a platform region onto its continent routing host.
var routingFor = map[string]string{
	"na1": "americas", "br1": "americas", "la1": "americas", "la2": "americas", "oc1": "americas",
	"euw1": "europe", "tr1": "europe", "ru": "europe",
	"kr": "asia", "jp1": "asia",
}

// Client is the HTTP client for Riot Games endpoints.
type Client struct {
	httpClient *http.Client
	apiKey     string
	limiter    *rate.Limiter
	logger     *slog.Logger

	// baseURL pins every request to a fixed host instead of the regional
	// routing scheme. Empty in production; set for tests and proxies.
	baseURL string

	// mock is non-nil only when no API key is configured.
	mock *mockState
}

// NewClient creates a Riot client with rate limiting. An empty baseURL means
// regional hosts; an empty apiKey enables the deterministic mock fallback for
// the League operations.
func NewClient(baseURL, apiKey string, requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	c := &Client{
		httpClient: &http.Client{Timeout: valTimeout},
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
		baseURL:    baseURL,
	}
	if apiKey == "" {
		c.mock = newMockState(30 * time.Minute)
		logger.Warn("no Riot API key configured, League endpoints will serve mock data")
	}
	return c
}

// MockEnabled reports whether the client serves mock payloads.
func (c *Client) MockEnabled() bool { return c.mock != nil }

func (c *Client) host(region string) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return fmt.Sprintf("https://%s.api.riotgames.com", region)
}

func validPlatform(region string) bool {
	for _, r := range PlatformRegions {
		if r == region {
			return true
		}
	}
	return false
}

func validRouting(region string) bool {
	for _, r := range RoutingRegions {
		if r == region {
			return true
		}
	}
	return false
}

// get performs one rate-limited GET against a regional host and returns the
// raw JSON body. Status codes map onto the shared provider taxonomy.
func (c *Client) get(ctx context.Context, region, path string, params url.Values, timeout time.Duration) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, provider.Unavailable(providerName, err)
	}

	u := c.host(region) + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, provider.Unavailable(providerName, err)
	}
	req.Header.Set("X-Riot-Token", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("riot request", "path", path, "region", region)

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

func invalidRegion(region string) error {
	return provider.InvalidParameter(providerName, fmt.Sprintf("unsupported platform region %q", region))
}

func invalidRouting(region string) error {
	return provider.InvalidParameter(providerName, fmt.Sprintf("unsupported routing region %q, must be one of %v", region, RoutingRegions))
}

func decodeError(err error) error {
	return provider.Unavailable(providerName, fmt.Errorf("decode response: %w", err))
}

// ValidateKey checks the configured key against the LoL platform status
// endpoint. A 401/403 means the key is bad; rate limiting or other upstream
// noise is treated as "possibly valid", matching a lightweight probe.
func (c *Client) ValidateKey(ctx context.Context) bool {
	if c.apiKey == "" {
		c.logger.Warn("no Riot API key to validate")
		return false
	}

	_, err := c.get(ctx, "na1", "/lol/status/v4/platform-data", nil, validateTimeout)
	if err == nil {
		return true
	}
	if kind, ok := provider.KindOf(err); ok {
		switch kind {
		case provider.KindUnauthorized:
			return false
		case provider.KindUnavailable:
			return false
		}
	}
	// Unexpected but non-auth failure: assume the key may be valid.
	return true
}
