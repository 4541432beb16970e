package summary

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nvasanth/candex/internal/assessment"
	"github.com/nvasanth/candex/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	violations int
	countErr   error
}

func (m *mockEventRepo) AppendAPIRequest(context.Context, store.APIRequestEventData) error {
	return nil
}
func (m *mockEventRepo) AppendViolation(context.Context, store.ViolationEventData) error {
	return nil
}
func (m *mockEventRepo) AppendAnswer(context.Context, store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) AppendAttempt(context.Context, store.AttemptEventData) error {
	return nil
}
func (m *mockEventRepo) RecentEvents(context.Context, store.QueryOpts) ([]store.EventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) ViolationCount(context.Context, string) (int, error) {
	return m.violations, m.countErr
}

func finishedState() *assessment.State {
	st := assessment.Initialize(nil)
	now := time.Now()
	for _, r := range assessment.RoundOrder {
		rp := st.Rounds[r]
		rp.Status = assessment.StatusCompleted
		rp.StartedAt = now.Add(-10 * time.Minute)
		rp.CompletedAt = now
		rp.Answers = map[int]assessment.Answer{1: assessment.OptionAnswer(0)}
	}
	st.Active = ""
	st.Finished = true
	return st
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(&mockEventRepo{}, finishedState(), "Asha")
	if s.Title() != "Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(&mockEventRepo{}, finishedState(), "Asha")
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "Asha") {
		t.Error("expected candidate name in summary view")
	}
}

func TestSummaryScreen_ViolationFlag(t *testing.T) {
	s := New(&mockEventRepo{violations: 3}, finishedState(), "Asha")

	msg := s.Init()()
	scr, _ := s.Update(msg)
	ss := scr.(*SummaryScreen)

	view := ss.View(80, 24)
	if !strings.Contains(view, "3 proctoring event(s)") {
		t.Error("expected violation flag line in view")
	}
}

func TestSummaryScreen_NoViolationFlagWhenClean(t *testing.T) {
	s := New(&mockEventRepo{violations: 0}, finishedState(), "Asha")

	msg := s.Init()()
	scr, _ := s.Update(msg)
	ss := scr.(*SummaryScreen)

	view := ss.View(80, 24)
	if strings.Contains(view, "proctoring event") {
		t.Error("did not expect violation flag line for a clean attempt")
	}
}

func TestSummaryScreen_Quit(t *testing.T) {
	s := New(&mockEventRepo{}, finishedState(), "Asha")
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Error("expected a command on q (quit)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(&mockEventRepo{}, finishedState(), "Asha")
	hints := s.KeyHints()
	if len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}
