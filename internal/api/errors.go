package api

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoToken indicates no candidate token is available. Proctoring and
// recording calls halt on this; it is logged, never thrown at the UI.
var ErrNoToken = errors.New("no candidate token available")

// ErrUnauthorized indicates the backend rejected the bearer token.
var ErrUnauthorized = errors.New("backend rejected candidate token")

// ErrRateLimit indicates the backend returned 429.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the backend returned a payload that does
// not match the expected shape or schema.
type ErrInvalidResponse struct {
	Body []byte
	Err  error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid backend response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrBackendUnavailable indicates the backend is down or unreachable.
type ErrBackendUnavailable struct {
	Err error
}

func (e *ErrBackendUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("assessment backend unavailable: %v", e.Err)
	}
	return "assessment backend unavailable"
}

func (e *ErrBackendUnavailable) Unwrap() error { return e.Err }

// ErrRequestFailed indicates the backend answered with a non-success
// status the client has no specific handling for.
type ErrRequestFailed struct {
	StatusCode int
	Body       string
}

func (e *ErrRequestFailed) Error() string {
	return fmt.Sprintf("backend request failed: status %d: %s", e.StatusCode, e.Body)
}
