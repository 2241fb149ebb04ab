package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playtrack/playtrack-data/internal/cache"
	"github.com/playtrack/playtrack-data/internal/config"
	"github.com/playtrack/playtrack-data/internal/provider/opendota"
	"github.com/playtrack/playtrack-data/internal/provider/overfast"
	"github.com/playtrack/playtrack-data/internal/provider/riot"
	"github.com/playtrack/playtrack-data/internal/provider/ubisoft"
)

const testRPM = 60000

func testConfig() *config.Config {
	return &config.Config{
		CORSAllowOrigins:  []string{"*"},
		RateLimitEnabled:  false,
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		CacheEnabled:      true,
	}
}

// newTestRouter wires a router with a mock-mode Riot client, a placeholder
// Ubisoft client, and OpenDota/OverFast clients pointed at upstream.
func newTestRouter(t *testing.T, upstream string) http.Handler {
	t.Helper()
	riotClient := riot.NewClient("", "", testRPM, nil)
	dotaClient := opendota.NewClient(upstream, testRPM, nil)
	owClient := overfast.NewClient(upstream, testRPM, nil)
	r6Client := ubisoft.NewClient(upstream, "", testRPM, nil)
	appCache := cache.New(context.Background(), true)
	return NewRouter(riotClient, dotaClient, owClient, r6Client, appCache, testConfig())
}

func doRequest(t *testing.T, h http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (bool, bool, json.RawMessage) {
	t.Helper()
	var env struct {
		Success    bool            `json:"success"`
		IsMockData bool            `json:"is_mock_data"`
		Data       json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Success, env.IsMockData, env.Data
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, "")

	rec := doRequest(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestLoLSummonerServesMockDataWithoutKey(t *testing.T) {
	router := newTestRouter(t, "")

	rec := doRequest(t, router, http.MethodGet, "/api/v1/lol/summoner/na1/Faker", "")
	require.Equal(t, http.StatusOK, rec.Code)

	success, mock, data := decodeEnvelope(t, rec)
	assert.True(t, success)
	assert.True(t, mock)
	assert.Contains(t, string(data), "Faker")
}

func TestLoLSummonerRejectsUnknownRegion(t *testing.T) {
	router := newTestRouter(t, "")

	rec := doRequest(t, router, http.MethodGet, "/api/v1/lol/summoner/mars/Faker", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PARAMETER", errorCode(t, rec))
}

func TestValorantRequiresKeyAtBoundary(t *testing.T) {
	router := newTestRouter(t, "")

	rec := doRequest(t, router, http.MethodGet, "/api/v1/valorant/status/americas", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PARAMETER", errorCode(t, rec))
}

func TestDotaPlayerResolvesAlias(t *testing.T) {
	var gotPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"profile":{"personaname":"Arteezy"}}`))
	}))
	t.Cleanup(upstream.Close)
	router := newTestRouter(t, upstream.URL)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/dota/players/arteezy", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/players/86745912", gotPath)
}

func TestOverwatchUnknownPlayerIsLenient(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(upstream.Close)
	router := newTestRouter(t, upstream.URL)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/overwatch/players/Ghost-0000", "")
	require.Equal(t, http.StatusOK, rec.Code)

	success, _, data := decodeEnvelope(t, rec)
	assert.True(t, success)
	assert.Contains(t, string(data), "unknown")
}

func TestOverwatchProfileUnknownPlayerIsLenient(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(upstream.Close)
	router := newTestRouter(t, upstream.URL)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/overwatch/profile/Ghost-0000", "")
	require.Equal(t, http.StatusOK, rec.Code)

	success, _, data := decodeEnvelope(t, rec)
	assert.True(t, success)

	var profile struct {
		Profile  json.RawMessage `json:"profile"`
		Degraded []string        `json:"degraded"`
	}
	require.NoError(t, json.Unmarshal(data, &profile))
	assert.Contains(t, string(profile.Profile), "unknown")
	assert.ElementsMatch(t, []string{"profile", "summary", "competitive", "heroes"}, profile.Degraded)
}

func TestOverwatchUpstreamOutagePropagates(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(upstream.Close)
	router := newTestRouter(t, upstream.URL)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/overwatch/players/Player-1234", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "PROVIDER_ERROR", errorCode(t, rec))
}

func TestR6SearchServesPlaceholderData(t *testing.T) {
	router := newTestRouter(t, "")

	rec := doRequest(t, router, http.MethodGet, "/api/v1/r6/players?username=Beaulo&platform=uplay", "")
	require.Equal(t, http.StatusOK, rec.Code)

	success, mock, data := decodeEnvelope(t, rec)
	assert.True(t, success)
	assert.True(t, mock)
	assert.Contains(t, string(data), "Beaulo")
}

func TestR6SearchRequiresUsername(t *testing.T) {
	router := newTestRouter(t, "")

	rec := doRequest(t, router, http.MethodGet, "/api/v1/r6/players?platform=uplay", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestR6FPSStatsEndpoint(t *testing.T) {
	router := newTestRouter(t, "")

	rec := doRequest(t, router, http.MethodGet, "/api/v1/r6/players/some-profile/fps-stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, _, data := decodeEnvelope(t, rec)
	var fps struct {
		KDRatio            *float64 `json:"kd_ratio"`
		HeadshotPercentage *float64 `json:"headshot_percentage"`
	}
	require.NoError(t, json.Unmarshal(data, &fps))
	require.NotNil(t, fps.KDRatio)
	assert.Greater(t, *fps.KDRatio, 0.0)
	require.NotNil(t, fps.HeadshotPercentage)
}

func TestSupportedTransformations(t *testing.T) {
	router := newTestRouter(t, "")

	rec := doRequest(t, router, http.MethodGet, "/api/v1/stats/transformations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "League of Legends")
}

func TestTransformEndpoint(t *testing.T) {
	router := newTestRouter(t, "")

	body := `{"game":"Rainbow Six Siege","category":"FPS","raw_stats":{"kills":100,"deaths":50}}`
	rec := doRequest(t, router, http.MethodPost, "/api/v1/stats/transform", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kd_ratio":2`)
}

func TestTransformEndpointUnsupportedPair(t *testing.T) {
	router := newTestRouter(t, "")

	body := `{"game":"Chess","category":"MOBA","raw_stats":{}}`
	rec := doRequest(t, router, http.MethodPost, "/api/v1/stats/transform", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNSUPPORTED_TRANSFORM", errorCode(t, rec))
}

func TestTransformEndpointRejectsBadBody(t *testing.T) {
	router := newTestRouter(t, "")

	rec := doRequest(t, router, http.MethodPost, "/api/v1/stats/transform", "not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoLProfileResponseCaching(t *testing.T) {
	router := newTestRouter(t, "")

	first := doRequest(t, router, http.MethodGet, "/api/v1/lol/profile/na1/Faker", "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	second := doRequest(t, router, http.MethodGet, "/api/v1/lol/profile/na1/Faker", "")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())

	// Conditional request with the ETag short-circuits to 304.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/lol/profile/na1/Faker", nil)
	req.Header.Set("If-None-Match", etag)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)
}

func TestProcessTimeHeader(t *testing.T) {
	router := newTestRouter(t, "")

	rec := doRequest(t, router, http.MethodGet, "/health", "")
	assert.NotEmpty(t, rec.Header().Get("X-Process-Time"))
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute

	riotClient := riot.NewClient("", "", testRPM, nil)
	dotaClient := opendota.NewClient("", testRPM, nil)
	owClient := overfast.NewClient("", testRPM, nil)
	r6Client := ubisoft.NewClient("", "", testRPM, nil)
	appCache := cache.New(context.Background(), true)
	router := NewRouter(riotClient, dotaClient, owClient, r6Client, appCache, cfg)

	// Burst is half the window budget; the first request passes, later ones
	// within the same instant are rejected.
	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := doRequest(t, router, http.MethodGet, "/health", "")
		statuses = append(statuses, rec.Code)
	}
	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Contains(t, statuses, http.StatusTooManyRequests)
}
