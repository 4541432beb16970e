package exam

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nvasanth/candex/internal/api"
	"github.com/nvasanth/candex/internal/assessment"
	"github.com/nvasanth/candex/internal/playback"
	"github.com/nvasanth/candex/internal/proctor"
	"github.com/nvasanth/candex/internal/router"
	"github.com/nvasanth/candex/internal/screen"
	"github.com/nvasanth/candex/internal/screens/summary"
	"github.com/nvasanth/candex/internal/store"
	"github.com/nvasanth/candex/internal/ui/components"
	"github.com/nvasanth/candex/internal/ui/layout"
)

// maxVisibleViolations caps the violation list shown on screen.
const maxVisibleViolations = 4

// answerSubmitter binds the backend to one assessment for the mcq batch.
type answerSubmitter struct {
	backend      api.Backend
	assessmentID string
}

func (s *answerSubmitter) SubmitAnswer(ctx context.Context, questionID int, ans assessment.Answer) error {
	return s.backend.SubmitAnswer(ctx, s.assessmentID, questionID, ans)
}

// ExamScreen runs the active assessment: question flow, proctoring, and
// playback recording. It owns the Monitor and Recorder lifecycles; every
// exit path goes through finish() so the camera is always released.
type ExamScreen struct {
	backend api.Backend
	events  store.EventRepo
	st      *assessment.State
	info    *api.AssessmentInfo

	monitor     *proctor.Monitor
	watcher     *proctor.FocusWatcher
	recorder    *playback.Recorder
	violationCh chan proctor.Violation
	proctorErr  string

	// Active input component; exactly one is live per question kind.
	mc     components.MultiChoice
	rating components.RatingScale
	area   components.TextArea

	deadline   time.Time
	loading    bool
	finishing  bool
	errMsg     string
	inputErr   string
	violations []proctor.Violation
	vTotal     int
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.StatusProvider = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.BackBlocker = (*ExamScreen)(nil)
var _ screen.QuitInterceptor = (*ExamScreen)(nil)

// New creates the exam screen and wires the proctoring stack. A missing
// camera degrades to focus-only proctoring instead of blocking the
// candidate.
func New(backend api.Backend, eventRepo store.EventRepo, st *assessment.State, info *api.AssessmentInfo) *ExamScreen {
	e := &ExamScreen{
		backend:     backend,
		events:      eventRepo,
		st:          st,
		info:        info,
		violationCh: make(chan proctor.Violation, 8),
		loading:     true,
	}

	push := func(v proctor.Violation) {
		select {
		case e.violationCh <- v:
		default:
		}
	}

	var source proctor.FrameSource
	cam, err := proctor.NewCameraSource(os.Getenv("CANDEX_CAMERA"))
	if err != nil {
		// Degraded mode: session and tab-switch logging continue
		// without frames.
		e.proctorErr = err.Error()
	} else {
		source = cam
	}
	e.monitor = proctor.New(backend, source, proctor.Config{
		OnViolation: push,
	})

	session := func() string {
		return e.monitor.SessionID()
	}
	e.watcher = proctor.NewFocusWatcher(backend, session, push)
	e.recorder = playback.NewRecorder(backend, session)

	return e
}

func (e *ExamScreen) Init() tea.Cmd {
	ctx := context.Background()
	_ = e.events.AppendAttempt(ctx, store.AttemptEventData{
		AttemptID: e.st.AttemptID,
		Action:    "start",
	})
	_ = e.events.AppendAttempt(ctx, store.AttemptEventData{
		AttemptID: e.st.AttemptID,
		Action:    "round_start",
		Round:     string(e.st.Active),
	})

	return tea.Batch(
		e.startProctor(),
		e.loadQuestions(e.st.Active),
		e.waitViolation(),
		tickCmd(),
	)
}

func (e *ExamScreen) Title() string {
	if rp := e.st.ActiveProgress(); rp != nil {
		return assessment.RoundConfigs[rp.Round].Name
	}
	return "Assessment"
}

func (e *ExamScreen) BlocksBack() bool {
	return true
}

// InterceptQuit ends the proctoring session and playback recorder before
// the program exits.
func (e *ExamScreen) InterceptQuit() tea.Cmd {
	if e.finishing {
		return tea.Quit
	}
	e.finishing = true
	return tea.Sequence(
		func() tea.Msg {
			e.recorder.Stop()
			e.monitor.Stop()
			return nil
		},
		tea.Quit,
	)
}

func (e *ExamScreen) HeaderStatus() (string, string) {
	candidate := e.info.Candidate

	switch e.monitor.Status() {
	case proctor.StatusActive:
		if e.monitor.Degraded() {
			return candidate, "⚠ camera off"
		}
		return candidate, "● proctored"
	case proctor.StatusWarning:
		return candidate, "⚠ violation"
	case proctor.StatusError:
		return candidate, "⚠ unproctored"
	}
	return candidate, "… starting"
}

func (e *ExamScreen) KeyHints() []layout.KeyHint {
	rp := e.st.ActiveProgress()
	if rp == nil || rp.CurrentQuestion() == nil {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	switch rp.CurrentQuestion().Kind {
	case assessment.KindText, assessment.KindCoding:
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Submit answer"},
		}
	case assessment.KindRating:
		return []layout.KeyHint{
			{Key: "←→", Description: "Adjust"},
			{Key: "Enter", Description: "Submit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Submit"},
	}
}

func (e *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		return e.handleQuestionsLoaded(msg)

	case proctorStartedMsg:
		if msg.Err != nil {
			e.proctorErr = msg.Err.Error()
		}
		return e, nil

	case violationMsg:
		return e.handleViolation(msg.V)

	case timerTickMsg:
		return e.handleTick()

	case roundClosedMsg:
		return e.handleRoundClosed(msg.Adv)

	case finishedMsg:
		return e, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summary.New(e.events, e.st, e.info.Candidate),
			}
		}

	case tea.BlurMsg:
		return e, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			e.watcher.Blurred(ctx)
			return nil
		}

	case tea.FocusMsg:
		e.watcher.Focused()
		return e, nil

	case tea.KeyMsg:
		return e.handleKey(msg)
	}

	return e.forwardToInput(msg)
}

func (e *ExamScreen) handleQuestionsLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	// A stale response for a round we already moved past.
	if msg.Round != e.st.Active {
		return e, nil
	}
	if msg.Err != nil {
		e.loading = false
		e.errMsg = msg.Err.Error()
		return e, nil
	}

	// An empty round is surfaced like a failed fetch, never completed on
	// the candidate's behalf.
	if err := assessment.BeginRound(e.st, msg.Questions); err != nil {
		e.loading = false
		e.errMsg = err.Error()
		return e, nil
	}

	e.loading = false
	e.errMsg = ""
	rp := e.st.ActiveProgress()
	e.deadline = rp.StartedAt.Add(assessment.RoundConfigs[rp.Round].EstimatedTime)
	return e, e.setupQuestion()
}

// setupQuestion builds the input component for the question under the
// cursor and starts playback recording for coding questions.
func (e *ExamScreen) setupQuestion() tea.Cmd {
	e.inputErr = ""
	rp := e.st.ActiveProgress()
	if rp == nil {
		return nil
	}
	q := rp.CurrentQuestion()
	if q == nil {
		return nil
	}

	switch q.Kind {
	case assessment.KindMCQ:
		e.mc = components.NewMultiChoice(q.Prompt, q.Options)
		return e.mc.Init()
	case assessment.KindRating:
		e.rating = components.NewRatingScale(q.Prompt, q.Min, q.Max, q.Step)
		return e.rating.Init()
	case assessment.KindText:
		e.area = components.NewTextArea("Type your answer...", q.MaxLength)
		return e.area.Init()
	case assessment.KindCoding:
		e.area = components.NewTextArea("", 0)
		e.area.Model.SetValue(q.StarterCode)
		e.recorder.Start(q.ID)
		e.recorder.RecordChange(q.StarterCode)
		return e.area.Init()
	}
	return nil
}

func (e *ExamScreen) handleViolation(v proctor.Violation) (screen.Screen, tea.Cmd) {
	e.vTotal++
	e.violations = append(e.violations, v)
	if len(e.violations) > maxVisibleViolations {
		e.violations = e.violations[len(e.violations)-maxVisibleViolations:]
	}

	_ = e.events.AppendViolation(context.Background(), store.ViolationEventData{
		AttemptID:        e.st.AttemptID,
		ProctorSessionID: e.monitor.SessionID(),
		ViolationType:    string(v.Type),
		Details:          v.Details,
		Reported:         true,
	})

	return e, e.waitViolation()
}

func (e *ExamScreen) handleTick() (screen.Screen, tea.Cmd) {
	if e.finishing {
		return e, nil
	}
	rp := e.st.ActiveProgress()
	if rp != nil && !e.loading && !e.deadline.IsZero() && time.Now().After(e.deadline) {
		// Time is up for this round; submit what we have.
		e.loading = true
		return e, tea.Batch(e.closeRound(), tickCmd())
	}
	return e, tickCmd()
}

func (e *ExamScreen) handleRoundClosed(adv assessment.Advance) (screen.Screen, tea.Cmd) {
	ctx := context.Background()

	if adv.CompletedRound == assessment.RoundTechnical {
		e.recorder.Stop()
	}

	rp := e.st.Rounds[adv.CompletedRound]
	if rp != nil {
		_ = e.events.AppendAttempt(ctx, store.AttemptEventData{
			AttemptID:         e.st.AttemptID,
			Action:            "round_complete",
			Round:             string(adv.CompletedRound),
			QuestionsAnswered: len(rp.Answers),
			DurationSecs:      int(rp.CompletedAt.Sub(rp.StartedAt).Seconds()),
		})
	}
	// Submit failures never block advancement; the failed calls are
	// already in the event log via the request logger.

	if adv.Finished {
		return e.finish()
	}

	_ = e.events.AppendAttempt(ctx, store.AttemptEventData{
		AttemptID: e.st.AttemptID,
		Action:    "round_start",
		Round:     string(e.st.Active),
	})

	e.loading = true
	e.deadline = time.Time{}
	return e, e.loadQuestions(e.st.Active)
}

// finish tears down proctoring off the UI loop and then swaps in the
// summary screen.
func (e *ExamScreen) finish() (screen.Screen, tea.Cmd) {
	e.finishing = true
	_ = e.events.AppendAttempt(context.Background(), store.AttemptEventData{
		AttemptID: e.st.AttemptID,
		Action:    "finish",
	})

	return e, func() tea.Msg {
		e.recorder.Stop()
		e.monitor.Stop()
		return finishedMsg{}
	}
}

func (e *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if e.finishing || e.loading {
		return e, nil
	}

	if e.errMsg != "" {
		if msg.String() == "r" {
			e.loading = true
			e.errMsg = ""
			return e, e.loadQuestions(e.st.Active)
		}
		return e, nil
	}

	rp := e.st.ActiveProgress()
	if rp == nil {
		return e, nil
	}
	q := rp.CurrentQuestion()
	if q == nil {
		return e, nil
	}

	switch q.Kind {
	case assessment.KindMCQ:
		if msg.String() == "enter" {
			if e.mc.Selected < 0 {
				return e, nil
			}
			return e.submit(q, assessment.OptionAnswer(e.mc.Selected))
		}
		var cmd tea.Cmd
		e.mc, cmd = e.mc.Update(msg)
		return e, cmd

	case assessment.KindRating:
		if msg.String() == "enter" {
			return e.submit(q, assessment.RatingAnswer(e.rating.Value))
		}
		var cmd tea.Cmd
		e.rating, cmd = e.rating.Update(msg)
		return e, cmd

	case assessment.KindText:
		if msg.String() == "ctrl+s" {
			return e.submit(q, assessment.TextAnswer(e.area.Value()))
		}
		var cmd tea.Cmd
		e.area, cmd = e.area.Update(msg)
		return e, cmd

	case assessment.KindCoding:
		if msg.String() == "ctrl+s" {
			return e.submit(q, assessment.CodeAnswer(e.area.Value()))
		}
		var cmd tea.Cmd
		e.area, cmd = e.area.Update(msg)
		e.recorder.RecordChange(e.area.Value())
		return e, cmd
	}

	return e, nil
}

// submit validates and records the answer, then advances the cursor or
// closes the round when it was the last question.
func (e *ExamScreen) submit(q *assessment.Question, ans assessment.Answer) (screen.Screen, tea.Cmd) {
	if err := assessment.RecordAnswer(e.st, q.ID, ans); err != nil {
		var vErr *assessment.ValidationError
		if errors.As(err, &vErr) {
			e.inputErr = vErr.Reason
			return e, nil
		}
		e.inputErr = err.Error()
		return e, nil
	}

	rp := e.st.ActiveProgress()
	_ = e.events.AppendAnswer(context.Background(), store.AnswerEventData{
		AttemptID:   e.st.AttemptID,
		Round:       string(rp.Round),
		QuestionID:  q.ID,
		AnswerKind:  answerKind(ans),
		AnswerValue: answerValue(ans),
		Submitted:   rp.Round != assessment.RoundMCQ,
	})

	if rp.CurrentQuestionIndex < len(rp.Questions)-1 {
		assessment.AdvanceQuestion(context.Background(), e.st, nil)
		return e, e.setupQuestion()
	}

	e.loading = true
	return e, e.closeRound()
}

// closeRound completes the active round off the UI loop; the mcq batch
// does network calls.
func (e *ExamScreen) closeRound() tea.Cmd {
	st := e.st
	sub := &answerSubmitter{backend: e.backend, assessmentID: e.info.AssessmentID}
	return func() tea.Msg {
		adv := assessment.CompleteRound(context.Background(), st, sub)
		return roundClosedMsg{Adv: adv}
	}
}

func (e *ExamScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	rp := e.st.ActiveProgress()
	if rp == nil || e.loading {
		return e, nil
	}
	q := rp.CurrentQuestion()
	if q == nil {
		return e, nil
	}

	var cmd tea.Cmd
	switch q.Kind {
	case assessment.KindText, assessment.KindCoding:
		e.area, cmd = e.area.Update(msg)
	}
	return e, cmd
}

func (e *ExamScreen) startProctor() tea.Cmd {
	monitor := e.monitor
	assessmentID := e.info.AssessmentID
	return func() tea.Msg {
		err := monitor.Start(context.Background(), assessmentID)
		return proctorStartedMsg{Err: err}
	}
}

func (e *ExamScreen) loadQuestions(r assessment.Round) tea.Cmd {
	backend := e.backend
	assessmentID := e.info.AssessmentID
	return func() tea.Msg {
		qs, err := backend.FetchQuestions(context.Background(), assessmentID, r)
		return questionsLoadedMsg{Round: r, Questions: qs, Err: err}
	}
}

func (e *ExamScreen) waitViolation() tea.Cmd {
	ch := e.violationCh
	return func() tea.Msg {
		return violationMsg{V: <-ch}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func answerKind(ans assessment.Answer) string {
	switch ans.(type) {
	case assessment.OptionAnswer:
		return "option"
	case assessment.RatingAnswer:
		return "rating"
	case assessment.TextAnswer:
		return "text"
	case assessment.CodeAnswer:
		return "code"
	}
	return "unknown"
}

func answerValue(ans assessment.Answer) string {
	switch v := ans.(type) {
	case assessment.OptionAnswer:
		return fmt.Sprintf("%d", int(v))
	case assessment.RatingAnswer:
		return fmt.Sprintf("%d", int(v))
	case assessment.TextAnswer:
		return string(v)
	case assessment.CodeAnswer:
		return string(v)
	}
	return ""
}
