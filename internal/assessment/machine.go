package assessment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNoQuestions is returned by BeginRound when the backend produced an
// empty question list. The round must not complete silently; an empty
// list would otherwise award an unearned pass.
var ErrNoQuestions = errors.New("no questions available for this round")

// ErrFinished is returned when an operation is attempted after the whole
// assessment has completed.
var ErrFinished = errors.New("assessment already finished")

// AnswerSubmitter delivers a single buffered answer to the backend.
// Submissions are fire-and-forget: failures are collected, not retried,
// and never block round advancement.
type AnswerSubmitter interface {
	SubmitAnswer(ctx context.Context, questionID int, ans Answer) error
}

// Advance reports the outcome of AdvanceQuestion or CompleteRound.
type Advance struct {
	// RoundCompleted is true when the call closed out the active round.
	RoundCompleted bool

	// CompletedRound names the round that was closed, when RoundCompleted.
	CompletedRound Round

	// Finished is true when no further round exists.
	Finished bool

	// SubmitFailures holds per-answer submission errors from the mcq
	// batch. The caller logs these; the backend reconciles gaps.
	SubmitFailures []error
}

// Initialize builds the assessment state from backend-reported per-round
// completion flags. The first non-completed round in order becomes active
// and is stamped started; earlier rounds are marked completed. If every
// round is complete the state starts finished and the caller redirects away.
func Initialize(completed map[Round]bool) *State {
	st := &State{
		AttemptID: uuid.New().String(),
		Rounds:    make(map[Round]*RoundProgress, len(RoundOrder)),
	}

	for _, r := range RoundOrder {
		st.Rounds[r] = &RoundProgress{
			Round:   r,
			Status:  StatusNotStarted,
			Answers: make(map[int]Answer),
		}
	}

	for _, r := range RoundOrder {
		if completed[r] {
			st.Rounds[r].Status = StatusCompleted
			continue
		}
		st.Active = r
		st.Rounds[r].Status = StatusInProgress
		st.Rounds[r].StartedAt = time.Now()
		return st
	}

	st.Finished = true
	return st
}

// BeginRound attaches the fetched question list to the active round and
// resets the cursor. Returns ErrNoQuestions for an empty list and
// ErrFinished after the final round.
func BeginRound(st *State, questions []Question) error {
	rp := st.ActiveProgress()
	if rp == nil {
		return ErrFinished
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}
	rp.Questions = questions
	rp.CurrentQuestionIndex = 0
	return nil
}

// RecordAnswer stores an answer for a question in the active round. The
// value's shape must match the question's kind; rejected values leave the
// answer map untouched. The cursor does not move.
func RecordAnswer(st *State, questionID int, ans Answer) error {
	rp := st.ActiveProgress()
	if rp == nil {
		return ErrFinished
	}

	var q *Question
	for i := range rp.Questions {
		if rp.Questions[i].ID == questionID {
			q = &rp.Questions[i]
			break
		}
	}
	if q == nil {
		return &ValidationError{QuestionID: questionID, Reason: "question not in active round"}
	}

	if err := ValidateAnswer(q, ans); err != nil {
		return err
	}

	rp.Answers[questionID] = ans
	return nil
}

// AdvanceQuestion moves the cursor forward, or completes the round when
// the cursor sits on the last question.
func AdvanceQuestion(ctx context.Context, st *State, submitter AnswerSubmitter) Advance {
	rp := st.ActiveProgress()
	if rp == nil {
		return Advance{Finished: true}
	}
	if len(rp.Questions) == 0 {
		// BeginRound was never called or rejected the list. Nothing to
		// advance past.
		return Advance{}
	}

	if rp.CurrentQuestionIndex < len(rp.Questions)-1 {
		rp.CurrentQuestionIndex++
		return Advance{}
	}

	return CompleteRound(ctx, st, submitter)
}

// CompleteRound marks the active round completed, submits the mcq answer
// batch, and advances to the next round. Submission failures never block
// advancement; candidate experience takes priority over guaranteed grading
// consistency and the backend reconciles missing submissions on its own.
func CompleteRound(ctx context.Context, st *State, submitter AnswerSubmitter) Advance {
	rp := st.ActiveProgress()
	if rp == nil {
		return Advance{Finished: true}
	}

	rp.Status = StatusCompleted
	rp.CompletedAt = time.Now()

	adv := Advance{RoundCompleted: true, CompletedRound: rp.Round}

	if rp.Round == RoundMCQ && submitter != nil {
		for _, q := range rp.Questions {
			ans, ok := rp.Answers[q.ID]
			if !ok {
				continue
			}
			if err := submitter.SubmitAnswer(ctx, q.ID, ans); err != nil {
				adv.SubmitFailures = append(adv.SubmitFailures, fmt.Errorf("submit answer %d: %w", q.ID, err))
			}
		}
	}

	advanceRound(st)
	adv.Finished = st.Finished
	return adv
}

// advanceRound moves to the next round in sequence, or marks the whole
// assessment finished when none remains.
func advanceRound(st *State) {
	next := NextRound(st.Active)
	if next == "" {
		st.Active = ""
		st.Finished = true
		return
	}

	st.Active = next
	rp := st.Rounds[next]
	rp.Status = StatusInProgress
	rp.StartedAt = time.Now()
	rp.CurrentQuestionIndex = 0
}
