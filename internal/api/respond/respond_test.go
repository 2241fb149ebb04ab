package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playtrack/playtrack-data/internal/provider"
)

func TestWriteDataEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteData(rec, map[string]int{"level": 30})

	assert.Equal(t, http.StatusOK, rec.Code)
	var env struct {
		Success    bool           `json:"success"`
		Data       map[string]int `json:"data"`
		IsMockData *bool          `json:"is_mock_data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, 30, env.Data["level"])
	assert.Nil(t, env.IsMockData) // omitted unless mock
}

func TestWriteMockDataSetsMarker(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteMockData(rec, "payload")

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.True(t, env.IsMockData)
}

func TestWriteProviderErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid parameter", provider.InvalidParameter("riot", "bad region"), http.StatusBadRequest, "INVALID_PARAMETER"},
		{"not found", provider.NotFound("riot", "no such summoner"), http.StatusNotFound, "NOT_FOUND"},
		{"rate limited", provider.FromStatus("riot", http.StatusTooManyRequests, nil, http.Header{"Retry-After": []string{"30"}}), http.StatusTooManyRequests, "RATE_LIMITED"},
		{"unauthorized", provider.FromStatus("riot", http.StatusUnauthorized, nil, http.Header{}), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unavailable", provider.Unavailable("riot", errors.New("dial timeout")), http.StatusServiceUnavailable, "UNAVAILABLE"},
		{"provider error", provider.FromStatus("riot", http.StatusBadGateway, nil, http.Header{}), http.StatusInternalServerError, "PROVIDER_ERROR"},
		{"foreign error", errors.New("plain failure"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteProviderError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestWriteProviderErrorRetryAfterHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	err := provider.FromStatus("riot", http.StatusTooManyRequests, nil, http.Header{"Retry-After": []string{"90"}})
	WriteProviderError(rec, err)

	assert.Equal(t, "90", rec.Header().Get("Retry-After"))
}

func TestWriteProviderErrorUnwrapsWrappedErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := errors.Join(errors.New("context"), provider.NotFound("opendota", "player"))
	WriteProviderError(rec, wrapped)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWriteCachedSetsHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteCached(rec, []byte(`{"success":true}`), `W/"abc"`, 5*time.Minute, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `W/"abc"`, rec.Header().Get("ETag"))
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age=300")
}

func TestWriteNotModified(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteNotModified(rec, `W/"abc"`)

	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Equal(t, `W/"abc"`, rec.Header().Get("ETag"))
}
