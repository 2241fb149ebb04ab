package opendota

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playtrack/playtrack-data/internal/provider"
)

const testRPM = 60000

func TestResolveAccountID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"arteezy", "86745912"},
		{"ARTEEZY", "86745912"},
		{"SumaiL", "111620041"},
		{"notail", "19672354"},
		{"86745912", "86745912"},
		{"random-name", "random-name"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveAccountID(tt.in), "input %q", tt.in)
	}
}

func TestPlayerInfoResolvesAlias(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"profile":{"personaname":"Arteezy"}}`))
	}))
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, testRPM, nil)

	_, err := c.PlayerInfo(context.Background(), "Arteezy")
	require.NoError(t, err)
	assert.Equal(t, "/players/86745912", gotPath)
}

func TestRecentMatchesTrimsToLimit(t *testing.T) {
	matches := make([]map[string]int, 20)
	for i := range matches {
		matches[i] = map[string]int{"match_id": i}
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(matches)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, testRPM, nil)

	got, err := c.RecentMatches(context.Background(), "123", 5)
	require.NoError(t, err)
	require.Len(t, got, 5)

	// Provider order preserved.
	var first map[string]int
	require.NoError(t, json.Unmarshal(got[0], &first))
	assert.Equal(t, 0, first["match_id"])
}

func TestPlayerWinLoss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"win":120,"lose":100}`))
	}))
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, testRPM, nil)

	wl, err := c.PlayerWinLoss(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, 120, wl.Win)
	assert.Equal(t, 100, wl.Lose)
}

func TestPublicMatchesSendsLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, testRPM, nil)

	_, err := c.PublicMatches(context.Background(), 25)
	require.NoError(t, err)
}

func TestNotFoundMapsToTypedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, testRPM, nil)

	_, err := c.PlayerInfo(context.Background(), "0")
	assert.True(t, provider.IsNotFound(err))
}

func TestServerErrorCarriesTruncatedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":"boom"}`)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, testRPM, nil)

	_, err := c.Heroes(context.Background())
	var perr *provider.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, provider.KindProvider, perr.Kind)
	assert.Contains(t, perr.Body, "boom")
}
