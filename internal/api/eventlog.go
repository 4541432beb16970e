package api

import (
	"context"
	"fmt"
	"os"

	"github.com/nvasanth/candex/internal/store"
)

// EventLogger records every backend call into the local event log.
type EventLogger struct {
	repo store.EventRepo
}

// NewEventLogger returns a RequestLogger backed by the event store.
func NewEventLogger(repo store.EventRepo) *EventLogger {
	return &EventLogger{repo: repo}
}

func (l *EventLogger) LogRequest(ctx context.Context, entry RequestLog) {
	data := store.APIRequestEventData{
		Method:       entry.Method,
		Path:         entry.Path,
		StatusCode:   entry.Status,
		Attempts:     entry.Attempts,
		LatencyMs:    entry.LatencyMs,
		Success:      entry.Success,
		ErrorMessage: entry.ErrorMessage,
	}

	// Log the event but don't fail the request if logging fails.
	if err := l.repo.AppendAPIRequest(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log api request event: %v\n", err)
	}
}
