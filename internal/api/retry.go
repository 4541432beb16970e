package api

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// shouldRetry determines whether an error from one attempt is transient.
func shouldRetry(err error) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Auth problems are terminal; the token won't fix itself mid-loop.
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNoToken) {
		return false
	}

	// A malformed payload will be just as malformed next time.
	var inv *ErrInvalidResponse
	if errors.As(err, &inv) {
		return false
	}

	var reqFailed *ErrRequestFailed
	if errors.As(err, &reqFailed) {
		return false
	}

	// Rate limits, 5xx, and network errors are transient.
	return true
}

// backoff computes the wait before the next attempt.
func backoff(cfg RetryConfig, attempt int, err error) time.Duration {
	// Respect Retry-After for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(cfg.InitialWait) * math.Pow(cfg.Multiplier, float64(attempt))
	if wait > float64(cfg.MaxWait) {
		wait = float64(cfg.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
