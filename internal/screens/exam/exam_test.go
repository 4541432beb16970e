package exam

import (
	"context"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nvasanth/candex/internal/api"
	"github.com/nvasanth/candex/internal/assessment"
	"github.com/nvasanth/candex/internal/proctor"
	"github.com/nvasanth/candex/internal/router"
	"github.com/nvasanth/candex/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	mu         sync.Mutex
	answers    []store.AnswerEventData
	violations []store.ViolationEventData
	attempts   []store.AttemptEventData
}

func (m *mockEventRepo) AppendAPIRequest(context.Context, store.APIRequestEventData) error {
	return nil
}
func (m *mockEventRepo) AppendViolation(_ context.Context, data store.ViolationEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.violations = append(m.violations, data)
	return nil
}
func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answers = append(m.answers, data)
	return nil
}
func (m *mockEventRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts = append(m.attempts, data)
	return nil
}
func (m *mockEventRepo) RecentEvents(context.Context, store.QueryOpts) ([]store.EventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) ViolationCount(context.Context, string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.violations), nil
}

func (m *mockEventRepo) lastAttemptAction() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.attempts) == 0 {
		return ""
	}
	return m.attempts[len(m.attempts)-1].Action
}

func mcqQuestions(n int) []assessment.Question {
	qs := make([]assessment.Question, n)
	for i := range qs {
		qs[i] = assessment.Question{
			ID:      i + 1,
			Kind:    assessment.KindMCQ,
			Prompt:  "Pick one",
			Options: []string{"alpha", "beta", "gamma"},
		}
	}
	return qs
}

func testExamScreen() (*ExamScreen, *api.MockBackend, *mockEventRepo) {
	backend := api.NewMockBackend()
	repo := &mockEventRepo{}
	st := assessment.Initialize(nil)
	info := &api.AssessmentInfo{AssessmentID: "assess-1", Candidate: "Asha"}
	return New(backend, repo, st, info), backend, repo
}

func loadRound(e *ExamScreen, qs []assessment.Question) *ExamScreen {
	scr, _ := e.Update(questionsLoadedMsg{Round: e.st.Active, Questions: qs})
	return scr.(*ExamScreen)
}

func TestExamScreen_BlocksBack(t *testing.T) {
	e, _, _ := testExamScreen()
	if !e.BlocksBack() {
		t.Error("expected exam screen to block Esc navigation")
	}
}

func TestExamScreen_View_Loading(t *testing.T) {
	e, _, _ := testExamScreen()
	if e.View(80, 24) == "" {
		t.Error("expected non-empty view while loading")
	}
}

func TestExamScreen_QuestionsLoaded(t *testing.T) {
	e, _, _ := testExamScreen()
	e = loadRound(e, mcqQuestions(2))

	if e.loading {
		t.Error("expected loading to clear once questions arrive")
	}
	rp := e.st.ActiveProgress()
	if rp.CurrentQuestion() == nil {
		t.Fatal("expected a current question")
	}
	if e.deadline.IsZero() {
		t.Error("expected a round deadline to be set")
	}
}

func TestExamScreen_StaleRoundIgnored(t *testing.T) {
	e, _, _ := testExamScreen()
	scr, _ := e.Update(questionsLoadedMsg{
		Round:     assessment.RoundTechnical,
		Questions: mcqQuestions(1),
	})
	e = scr.(*ExamScreen)

	if !e.loading {
		t.Error("expected a response for a non-active round to be dropped")
	}
}

func TestExamScreen_EmptyRoundNotCompleted(t *testing.T) {
	e, _, _ := testExamScreen()
	scr, _ := e.Update(questionsLoadedMsg{Round: e.st.Active, Questions: nil})
	e = scr.(*ExamScreen)

	if e.errMsg == "" {
		t.Error("expected an error shown for a round with no questions")
	}
	if e.st.Active != assessment.RoundMCQ {
		t.Errorf("active round = %q, want mcq unchanged", e.st.Active)
	}
	if e.st.Rounds[assessment.RoundMCQ].Status == assessment.StatusCompleted {
		t.Error("empty round must not be marked completed")
	}

	// The same retry path as a failed fetch.
	scr, cmd := e.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	e = scr.(*ExamScreen)
	if !e.loading || cmd == nil {
		t.Error("expected r to retry loading the round")
	}
}

func TestExamScreen_LoadErrorAndRetry(t *testing.T) {
	e, _, _ := testExamScreen()
	scr, _ := e.Update(questionsLoadedMsg{Round: e.st.Active, Err: context.DeadlineExceeded})
	e = scr.(*ExamScreen)

	if e.errMsg == "" {
		t.Fatal("expected an error message after a failed load")
	}

	scr, cmd := e.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	e = scr.(*ExamScreen)
	if !e.loading || cmd == nil {
		t.Error("expected r to retry the load")
	}
}

func TestExamScreen_SubmitAdvances(t *testing.T) {
	e, _, repo := testExamScreen()
	e = loadRound(e, mcqQuestions(2))

	scr, _ := e.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	e = scr.(*ExamScreen)

	rp := e.st.ActiveProgress()
	if rp.CurrentQuestionIndex != 1 {
		t.Errorf("question index = %d, want 1", rp.CurrentQuestionIndex)
	}
	if len(repo.answers) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answers))
	}
	if repo.answers[0].Submitted {
		t.Error("mcq answers are batched at round end, not submitted per question")
	}
}

func TestExamScreen_LastQuestionClosesRound(t *testing.T) {
	e, backend, repo := testExamScreen()
	e = loadRound(e, mcqQuestions(1))

	scr, cmd := e.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	e = scr.(*ExamScreen)
	if !e.loading {
		t.Error("expected loading while the round closes")
	}
	if cmd == nil {
		t.Fatal("expected a close-round command")
	}

	// Run the close-round command and feed the result back.
	msg := cmd()
	closed, ok := msg.(roundClosedMsg)
	if !ok {
		t.Fatalf("message = %T, want roundClosedMsg", msg)
	}
	if closed.Adv.CompletedRound != assessment.RoundMCQ {
		t.Errorf("completed round = %q, want mcq", closed.Adv.CompletedRound)
	}
	if len(backend.Submitted) != 1 {
		t.Errorf("batched submissions = %d, want 1", len(backend.Submitted))
	}

	scr, cmd = e.Update(msg)
	e = scr.(*ExamScreen)
	if e.st.Active == assessment.RoundMCQ {
		t.Error("expected the state machine to move to the next round")
	}
	if cmd == nil {
		t.Error("expected a load command for the next round")
	}
	if repo.lastAttemptAction() != "round_start" {
		t.Errorf("last attempt event = %q, want round_start", repo.lastAttemptAction())
	}
}

func TestExamScreen_ViolationRecordedAndCapped(t *testing.T) {
	e, _, repo := testExamScreen()
	e = loadRound(e, mcqQuestions(1))

	for i := 0; i < maxVisibleViolations+2; i++ {
		scr, cmd := e.Update(violationMsg{V: proctor.Violation{
			Type:    proctor.ViolationNoFace,
			Details: "no face visible in frame",
		}})
		e = scr.(*ExamScreen)
		if cmd == nil {
			t.Fatal("expected the violation wait to re-arm")
		}
	}

	if e.vTotal != maxVisibleViolations+2 {
		t.Errorf("total violations = %d, want %d", e.vTotal, maxVisibleViolations+2)
	}
	if len(e.violations) != maxVisibleViolations {
		t.Errorf("visible violations = %d, want %d", len(e.violations), maxVisibleViolations)
	}
	if len(repo.violations) != maxVisibleViolations+2 {
		t.Errorf("persisted violations = %d, want %d", len(repo.violations), maxVisibleViolations+2)
	}
}

func TestExamScreen_FinishSwapsToSummary(t *testing.T) {
	e, _, repo := testExamScreen()

	scr, cmd := e.handleRoundClosed(assessment.Advance{
		RoundCompleted: true,
		CompletedRound: assessment.RoundTextBased,
		Finished:       true,
	})
	e = scr.(*ExamScreen)
	if !e.finishing {
		t.Error("expected finishing state")
	}
	if repo.lastAttemptAction() != "finish" {
		t.Errorf("last attempt event = %q, want finish", repo.lastAttemptAction())
	}

	// Teardown command yields finishedMsg, which replaces the screen.
	msg := cmd()
	if _, ok := msg.(finishedMsg); !ok {
		t.Fatalf("message = %T, want finishedMsg", msg)
	}
	_, cmd = e.Update(msg)
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected a ReplaceScreenMsg to the summary screen")
	}
}

func TestExamScreen_InterceptQuit(t *testing.T) {
	e, _, _ := testExamScreen()

	cmd := e.InterceptQuit()
	if cmd == nil {
		t.Fatal("expected a teardown-then-quit command")
	}
	if !e.finishing {
		t.Error("expected finishing state while quitting")
	}

	// A second Ctrl+C while teardown runs still quits.
	if e.InterceptQuit() == nil {
		t.Error("expected quit command on repeated interrupt")
	}
}

func TestExamScreen_HeaderStatus_Starting(t *testing.T) {
	e, _, _ := testExamScreen()
	_, status := e.HeaderStatus()
	if status != "… starting" {
		t.Errorf("status = %q, want starting", status)
	}
}
