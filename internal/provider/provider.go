// Package provider defines the error taxonomy shared by all external game
// API clients. Each client translates transport and HTTP outcomes into these
// typed errors; the API boundary maps them onto HTTP statuses.
//
// Adding a new provider means returning these errors from its request
// primitive. Handlers and orchestrators never inspect raw status codes.
package provider

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a provider failure.
type ErrorKind int

const (
	// KindInvalidParameter is raised before any network call for inputs that
	// fail static validation (unknown region, bad mode).
	KindInvalidParameter ErrorKind = iota
	// KindNotFound maps upstream 404s. Recoverable for search-style lookups.
	KindNotFound
	// KindRateLimited maps upstream 429s and retains the Retry-After hint.
	KindRateLimited
	// KindUnauthorized maps 401/403 (bad or missing credential).
	KindUnauthorized
	// KindUnavailable covers timeouts and connection failures.
	KindUnavailable
	// KindProvider covers any other non-2xx response.
	KindProvider
)

// String returns the stable wire code for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidParameter:
		return "INVALID_PARAMETER"
	case KindNotFound:
		return "NOT_FOUND"
	case KindRateLimited:
		return "RATE_LIMITED"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindUnavailable:
		return "UNAVAILABLE"
	default:
		return "PROVIDER_ERROR"
	}
}

// Error is a typed failure from a provider client. StatusCode and Body are
// diagnostic only; Body is truncated and never contains credentials.
type Error struct {
	Kind       ErrorKind
	Provider   string
	Message    string
	StatusCode int
	Body       string
	RetryAfter string
	cause      error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (%s, status %d)", e.Provider, e.Message, e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Provider, e.Message, e.Kind)
}

func (e *Error) Unwrap() error { return e.cause }

// InvalidParameter reports a validation failure detected before dispatch.
func InvalidParameter(provider, message string) *Error {
	return &Error{Kind: KindInvalidParameter, Provider: provider, Message: message}
}

// NotFound reports an upstream 404.
func NotFound(provider, message string) *Error {
	return &Error{Kind: KindNotFound, Provider: provider, Message: message, StatusCode: http.StatusNotFound}
}

// Unavailable wraps a timeout or connection failure.
func Unavailable(provider string, cause error) *Error {
	return &Error{
		Kind:     KindUnavailable,
		Provider: provider,
		Message:  fmt.Sprintf("request failed: %v", cause),
		cause:    cause,
	}
}

// FromStatus maps a non-2xx upstream response to a typed error, applying the
// uniform taxonomy used by every provider client.
func FromStatus(provider string, status int, body []byte, header http.Header) *Error {
	switch status {
	case http.StatusNotFound:
		return NotFound(provider, "resource not found")
	case http.StatusTooManyRequests:
		return &Error{
			Kind:       KindRateLimited,
			Provider:   provider,
			Message:    "rate limit exceeded",
			StatusCode: status,
			RetryAfter: header.Get("Retry-After"),
		}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &Error{
			Kind:       KindUnauthorized,
			Provider:   provider,
			Message:    "credential rejected",
			StatusCode: status,
		}
	default:
		return &Error{
			Kind:       KindProvider,
			Provider:   provider,
			Message:    "unexpected response",
			StatusCode: status,
			Body:       Truncate(body, 200),
		}
	}
}

// KindOf extracts the error kind, reporting ok=false for foreign errors.
func KindOf(err error) (ErrorKind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}

// IsNotFound reports whether err is a provider NotFound.
func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

// IsInvalidParameter reports whether err is a provider InvalidParameter.
func IsInvalidParameter(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindInvalidParameter
}

// Truncate returns a truncated string representation for error messages.
func Truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
