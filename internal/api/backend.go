package api

import (
	"context"

	"github.com/nvasanth/candex/internal/assessment"
)

// Backend is the client's view of the assessment service. All business
// logic (scoring, question banks, authentication, frame analysis) lives
// behind these calls; the client only presents and orchestrates.
type Backend interface {
	// Login exchanges candidate credentials for a bearer token.
	Login(ctx context.Context, email, accessCode string) (string, error)

	// FetchAssessment returns per-round completion flags for an attempt.
	FetchAssessment(ctx context.Context, assessmentID string) (*AssessmentInfo, error)

	// FetchQuestions returns the ordered question list for one round.
	// The payload is schema-validated before it reaches the state machine.
	FetchQuestions(ctx context.Context, assessmentID string, round assessment.Round) ([]assessment.Question, error)

	// SubmitAnswer delivers one mcq answer. Fire-and-forget at the call
	// site; the backend reconciles gaps.
	SubmitAnswer(ctx context.Context, assessmentID string, questionID int, ans assessment.Answer) error

	// StartProctorSession opens a backend proctoring session and returns
	// its opaque id.
	StartProctorSession(ctx context.Context, assessmentID string) (string, error)

	// EndProctorSession closes a proctoring session.
	EndProctorSession(ctx context.Context, sessionID string) error

	// AnalyzeFrame submits one base64 JPEG frame for server-side analysis.
	AnalyzeFrame(ctx context.Context, sessionID, imageBase64 string) (*FrameAnalysis, error)

	// LogEvent records an integrity event (e.g. a tab switch) against a
	// proctoring session.
	LogEvent(ctx context.Context, sessionID, eventType, details string) error

	// RecordPlayback posts a batch of editor snapshots for replay/audit.
	RecordPlayback(ctx context.Context, sessionID string, questionID int, events []PlaybackEvent) error
}

// AssessmentInfo is the backend's summary of an assessment attempt.
type AssessmentInfo struct {
	AssessmentID string
	Candidate    string

	// Completed reports which rounds the backend already holds results for.
	Completed map[assessment.Round]bool
}

// FrameAnalysis is the structured result of a single analyzed frame.
type FrameAnalysis struct {
	FaceDetected  bool `json:"face_detected"`
	MultipleFaces bool `json:"multiple_faces"`
	LookingAway   bool `json:"looking_away"`
	PhoneDetected bool `json:"phone_detected"`
}

// PlaybackEvent is one timestamped editor snapshot. Field names match the
// wire format: t is the offset from recording start in milliseconds, c is
// the full content snapshot.
type PlaybackEvent struct {
	T int64  `json:"t"`
	C string `json:"c"`
}
