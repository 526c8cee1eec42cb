package pulse

import (
	"errors"
	"fmt"
)

// ErrClientClosed is returned by every request issued after Close.
var ErrClientClosed = errors.New("pulse: client is closed")

// Machine-readable error codes carried by the error taxonomy.
const (
	CodeUnknown           = "UNKNOWN_ERROR"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeNotFound          = "NOT_FOUND"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeValidation        = "VALIDATION_ERROR"
	CodeNetwork           = "NETWORK_ERROR"
	CodeTimeout           = "TIMEOUT"
)

// APIError is the generic error for a non-2xx response that is not
// otherwise classified. The concrete kinds below embed it, so the shared
// fields are reachable through errors.As with any of the specific types.
type APIError struct {
	Message   string
	Code      string
	Status    int
	RateLimit RateLimitInfo
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("pulse: %s (code=%s, status=%d)", e.Message, e.Code, e.Status)
	}

	return fmt.Sprintf("pulse: %s (code=%s)", e.Message, e.Code)
}

// RateLimitError is returned on HTTP 429. RetryAfter is the server-suggested
// wait in seconds; the client never retries on its own.
type RateLimitError struct {
	APIError
	RetryAfter int
}

// NotFoundError is returned on HTTP 404.
type NotFoundError struct {
	APIError
}

// AuthenticationError is returned on HTTP 401 for a missing or invalid API key.
type AuthenticationError struct {
	APIError
}

// ValidationError is returned for a request rejected client-side before it is
// sent, or for a 2xx response body that does not match the wire contract.
type ValidationError struct {
	APIError
}

// NetworkError is returned for a transport failure that happened before any
// HTTP response existed, such as DNS resolution or a refused connection.
type NetworkError struct {
	Message string
	Code    string
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("pulse: network error: %s", e.Message)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TimeoutError is returned when the request exceeded the configured timeout,
// whether from the client-wide setting or a context deadline. Context
// cancellation is not a timeout and propagates as the context error instead.
type TimeoutError struct {
	Message string
	Code    string
	Err     error
}

func (e *TimeoutError) Error() string { return "pulse: " + e.Message }

func (e *TimeoutError) Unwrap() error { return e.Err }

func newNetworkError(err error) *NetworkError {
	return &NetworkError{Message: err.Error(), Code: CodeNetwork, Err: err}
}

func newTimeoutError(err error) *TimeoutError {
	return &TimeoutError{Message: "request timed out", Code: CodeTimeout, Err: err}
}

func newRateLimitError(message string, retryAfter int, rl RateLimitInfo) *RateLimitError {
	return &RateLimitError{
		APIError: APIError{
			Message:   message,
			Code:      CodeRateLimitExceeded,
			Status:    429,
			RateLimit: rl,
		},
		RetryAfter: retryAfter,
	}
}

func newNotFoundError(message string) *NotFoundError {
	return &NotFoundError{APIError{Message: message, Code: CodeNotFound, Status: 404}}
}

func newAuthenticationError(message string) *AuthenticationError {
	return &AuthenticationError{APIError{Message: message, Code: CodeUnauthorized, Status: 401}}
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{APIError{
		Message: fmt.Sprintf(format, args...),
		Code:    CodeValidation,
		Status:  400,
	}}
}
