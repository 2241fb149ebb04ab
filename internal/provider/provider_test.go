package provider

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantKind   ErrorKind
		wantCode   string
		retryAfter string
	}{
		{name: "not found", status: http.StatusNotFound, wantKind: KindNotFound, wantCode: "NOT_FOUND"},
		{name: "rate limited", status: http.StatusTooManyRequests, wantKind: KindRateLimited, wantCode: "RATE_LIMITED", retryAfter: "120"},
		{name: "unauthorized", status: http.StatusUnauthorized, wantKind: KindUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "forbidden", status: http.StatusForbidden, wantKind: KindUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "server error", status: http.StatusInternalServerError, wantKind: KindProvider, wantCode: "PROVIDER_ERROR"},
		{name: "bad gateway", status: http.StatusBadGateway, wantKind: KindProvider, wantCode: "PROVIDER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.retryAfter != "" {
				header.Set("Retry-After", tt.retryAfter)
			}
			err := FromStatus("riot", tt.status, []byte(`{"status":"nope"}`), header)
			require.NotNil(t, err)
			assert.Equal(t, tt.wantKind, err.Kind)
			assert.Equal(t, tt.wantCode, err.Kind.String())
			assert.Equal(t, "riot", err.Provider)
			if tt.retryAfter != "" {
				assert.Equal(t, tt.retryAfter, err.RetryAfter)
			}
		})
	}
}

func TestFromStatusTruncatesBody(t *testing.T) {
	body := make([]byte, 500)
	for i := range body {
		body[i] = 'x'
	}
	err := FromStatus("opendota", http.StatusInternalServerError, body, http.Header{})
	assert.Len(t, err.Body, 203) // 200 bytes + "..."
}

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	inner := NotFound("overfast", "player not found")
	wrapped := fmt.Errorf("combined profile: %w", inner)

	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsInvalidParameter(wrapped))
}

func TestKindOfForeignError(t *testing.T) {
	_, ok := KindOf(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestUnavailableKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Unavailable("ubisoft", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindUnavailable, err.Kind)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate([]byte("short"), 10))
	assert.Equal(t, "lon...", Truncate([]byte("longer"), 3))
}
