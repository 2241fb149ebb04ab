// Package respond provides shared JSON response utilities for API handlers.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/playtrack/playtrack-data/internal/provider"
)

// Envelope is the standard success shape for all API responses.
type Envelope struct {
	Success    bool `json:"success"`
	Data       any  `json:"data"`
	IsMockData bool `json:"is_mock_data,omitempty"`
}

// ErrorResponse is the standard error shape for all API errors.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Detail  string `json:"detail,omitempty"`
	} `json:"error"`
}

// WriteData wraps v in the success envelope and writes it with status 200.
func WriteData(w http.ResponseWriter, v any) {
	WriteJSONObject(w, http.StatusOK, Envelope{Success: true, Data: v})
}

// WriteMockData is WriteData with the mock-data marker set, so clients can
// tell fallback payloads from live provider data.
func WriteMockData(w http.ResponseWriter, v any) {
	WriteJSONObject(w, http.StatusOK, Envelope{Success: true, Data: v, IsMockData: true})
}

// WriteCached writes pre-marshaled envelope bytes with cache and ETag headers.
func WriteCached(w http.ResponseWriter, data []byte, etag string, ttl time.Duration, cacheHit bool) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", etag)
	w.Header().Set("Vary", "Accept-Encoding")
	setCacheHeaders(w, ttl, cacheHit)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// WriteNotModified sends a 304 with the matching ETag.
func WriteNotModified(w http.ResponseWriter, etag string) {
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusNotModified)
}

// WriteError sends a structured JSON error response.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// WriteErrorDetail sends a structured error with additional detail.
func WriteErrorDetail(w http.ResponseWriter, status int, code, message, detail string) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.Detail = detail
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// WriteProviderError maps a typed provider error to the matching HTTP status.
// Non-provider errors fall through to a generic 500.
func WriteProviderError(w http.ResponseWriter, err error) {
	var perr *provider.Error
	if !errors.As(err, &perr) {
		WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	status := http.StatusInternalServerError
	switch perr.Kind {
	case provider.KindInvalidParameter:
		status = http.StatusBadRequest
	case provider.KindNotFound:
		status = http.StatusNotFound
	case provider.KindRateLimited:
		status = http.StatusTooManyRequests
		if perr.RetryAfter != "" {
			w.Header().Set("Retry-After", perr.RetryAfter)
		}
	case provider.KindUnauthorized:
		status = http.StatusUnauthorized
	case provider.KindUnavailable:
		status = http.StatusServiceUnavailable
	}
	WriteError(w, status, perr.Kind.String(), perr.Message)
}

// WriteJSONObject marshals a Go value to JSON and writes it.
// Used for health checks and anything already shaped by the caller.
func WriteJSONObject(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func setCacheHeaders(w http.ResponseWriter, ttl time.Duration, cacheHit bool) {
	maxAge := int(ttl.Seconds())
	swr := maxAge / 2
	if cacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.Header().Set("Cache-Control",
		fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", maxAge, swr))
}
