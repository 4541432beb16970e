package api

import "context"

// RequestLog captures one backend call for the local audit trail.
type RequestLog struct {
	Method       string
	Path         string
	Status       int
	Attempts     int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RequestLogger receives a record of every backend call. Implementations
// must not fail the request; logging is best-effort.
type RequestLogger interface {
	LogRequest(ctx context.Context, entry RequestLog)
}

// NopLogger discards all request logs.
type NopLogger struct{}

func (NopLogger) LogRequest(context.Context, RequestLog) {}
