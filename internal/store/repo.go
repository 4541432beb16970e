package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int   // max results (0 = unlimited)
	After int64 // sequence > After
}

// APIRequestEventData captures the data for a single backend API call.
type APIRequestEventData struct {
	Method       string
	Path         string
	StatusCode   int
	Attempts     int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// ViolationEventData captures a proctoring violation.
type ViolationEventData struct {
	AttemptID        string
	ProctorSessionID string
	ViolationType    string
	Details          string
	Reported         bool
}

// AnswerEventData captures a submitted answer.
type AnswerEventData struct {
	AttemptID   string
	Round       string
	QuestionID  int
	AnswerKind  string
	AnswerValue string
	Submitted   bool
}

// AttemptEventData captures an attempt lifecycle event.
type AttemptEventData struct {
	AttemptID         string
	Action            string
	Round             string
	QuestionsAnswered int
	DurationSecs      int
}

// EventRecord is one entry in the unified cross-type event feed.
type EventRecord struct {
	Sequence  int64
	Timestamp time.Time
	Kind      string // api_request, violation, answer, attempt
	Summary   string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAPIRequest records a backend API call event.
	AppendAPIRequest(ctx context.Context, data APIRequestEventData) error

	// AppendViolation records a proctoring violation event.
	AppendViolation(ctx context.Context, data ViolationEventData) error

	// AppendAnswer records an answer submission event.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendAttempt records an attempt lifecycle event.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// RecentEvents returns the most recent events across all types,
	// newest first.
	RecentEvents(ctx context.Context, opts QueryOpts) ([]EventRecord, error)

	// ViolationCount returns the number of violations recorded for an
	// attempt.
	ViolationCount(ctx context.Context, attemptID string) (int, error)
}
