package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Error is a non-2xx API response.
type Error struct {
	Status    int
	Message   string
	RequestID string
	// RetryAfter is set from the Retry-After header on 429 and 503.
	RetryAfter time.Duration
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
}

// Temporary reports whether the request may succeed if repeated.
func (e *Error) Temporary() bool {
	switch e.Status {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// NotFound reports whether the resource does not exist.
func (e *Error) NotFound() bool { return e.Status == http.StatusNotFound }

// VersionError indicates the server speaks an incompatible API major version.
type VersionError struct {
	Server string
	Client string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("api: server version %s is incompatible with client version %s", e.Server, e.Client)
}

// InvalidResponseError indicates a 2xx response whose body does not have the
// expected shape.
type InvalidResponseError struct {
	Endpoint string
	Body     json.RawMessage
	Err      error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("api: invalid response from %s: %v", e.Endpoint, e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }

// errorBody is the server's error payload.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func decodeError(resp *http.Response, body []byte, requestID string) *Error {
	e := &Error{Status: resp.StatusCode, RequestID: requestID}
	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		e.Message = eb.Message
		if e.Message == "" {
			e.Message = eb.Error
		}
	}
	if ra := resp.Header.Get("Retry-After"); ra != "" {
		if secs, err := time.ParseDuration(ra + "s"); err == nil {
			e.RetryAfter = secs
		}
	}
	return e
}
