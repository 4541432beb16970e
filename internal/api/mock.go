package api

import (
	"context"
	"sync"

	"github.com/nvasanth/candex/internal/assessment"
)

// MockAnalysis is a canned analyze-frame result for the MockBackend.
type MockAnalysis struct {
	Analysis *FrameAnalysis
	Err      error
}

// SubmittedAnswer records one SubmitAnswer call.
type SubmittedAnswer struct {
	AssessmentID string
	QuestionID   int
	Answer       assessment.Answer
}

// LoggedEvent records one LogEvent call.
type LoggedEvent struct {
	SessionID string
	EventType string
	Details   string
}

// PlaybackBatch records one RecordPlayback call.
type PlaybackBatch struct {
	SessionID  string
	QuestionID int
	Events     []PlaybackEvent
}

// MockBackend is a deterministic Backend for tests. Analyze results are
// served FIFO; every call is recorded.
type MockBackend struct {
	mu sync.Mutex

	LoginToken string
	Info       *AssessmentInfo
	Questions  map[assessment.Round][]assessment.Question

	StartSessionID string
	StartErr       error
	SubmitErr      error
	RecordErr      error
	LogErr         error
	EndErr         error

	analyses []MockAnalysis

	StartCalls   int
	EndCalls     int
	AnalyzeCalls int
	Submitted    []SubmittedAnswer
	Events       []LoggedEvent
	Batches      []PlaybackBatch
}

var _ Backend = (*MockBackend)(nil)

// NewMockBackend creates a MockBackend with canned analyze results.
func NewMockBackend(analyses ...MockAnalysis) *MockBackend {
	return &MockBackend{
		StartSessionID: "mock-session",
		analyses:       analyses,
	}
}

// QueueAnalysis appends a canned analyze result.
func (m *MockBackend) QueueAnalysis(a MockAnalysis) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyses = append(m.analyses, a)
}

func (m *MockBackend) Login(context.Context, string, string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoginToken == "" {
		return "", ErrUnauthorized
	}
	return m.LoginToken, nil
}

func (m *MockBackend) FetchAssessment(context.Context, string) (*AssessmentInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Info == nil {
		return nil, &ErrBackendUnavailable{}
	}
	return m.Info, nil
}

func (m *MockBackend) FetchQuestions(_ context.Context, _ string, round assessment.Round) ([]assessment.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Questions[round], nil
}

func (m *MockBackend) SubmitAnswer(_ context.Context, assessmentID string, questionID int, ans assessment.Answer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Submitted = append(m.Submitted, SubmittedAnswer{AssessmentID: assessmentID, QuestionID: questionID, Answer: ans})
	return m.SubmitErr
}

func (m *MockBackend) StartProctorSession(context.Context, string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartCalls++
	if m.StartErr != nil {
		return "", m.StartErr
	}
	return m.StartSessionID, nil
}

func (m *MockBackend) EndProctorSession(context.Context, string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EndCalls++
	return m.EndErr
}

func (m *MockBackend) AnalyzeFrame(context.Context, string, string) (*FrameAnalysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnalyzeCalls++

	if len(m.analyses) == 0 {
		// Default to a clean frame.
		return &FrameAnalysis{FaceDetected: true}, nil
	}
	next := m.analyses[0]
	m.analyses = m.analyses[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return next.Analysis, nil
}

func (m *MockBackend) LogEvent(_ context.Context, sessionID, eventType, details string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, LoggedEvent{SessionID: sessionID, EventType: eventType, Details: details})
	return m.LogErr
}

func (m *MockBackend) RecordPlayback(_ context.Context, sessionID string, questionID int, events []PlaybackEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecordErr != nil {
		return m.RecordErr
	}
	m.Batches = append(m.Batches, PlaybackBatch{SessionID: sessionID, QuestionID: questionID, Events: events})
	return nil
}

// BatchCount returns the number of recorded playback batches.
func (m *MockBackend) BatchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Batches)
}

// EventCount returns the number of logged integrity events.
func (m *MockBackend) EventCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Events)
}
