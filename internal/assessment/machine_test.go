package assessment

import (
	"context"
	"errors"
	"testing"
)

type recordingSubmitter struct {
	submitted []int
	failIDs   map[int]bool
}

func (r *recordingSubmitter) SubmitAnswer(_ context.Context, questionID int, _ Answer) error {
	r.submitted = append(r.submitted, questionID)
	if r.failIDs[questionID] {
		return errors.New("backend unreachable")
	}
	return nil
}

func mcqQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:      i + 1,
			Kind:    KindMCQ,
			Title:   "Q",
			Options: []string{"a", "b", "c", "d"},
		}
	}
	return qs
}

func checkInvariant(t *testing.T, st *State) {
	t.Helper()

	inProgress := 0
	seenActive := false
	for _, r := range RoundOrder {
		rp := st.Rounds[r]
		switch rp.Status {
		case StatusInProgress:
			inProgress++
			seenActive = true
			if r != st.Active {
				t.Errorf("round %s in-progress but active is %s", r, st.Active)
			}
		case StatusCompleted:
			if seenActive {
				t.Errorf("round %s completed after the active round", r)
			}
		case StatusNotStarted:
			if !seenActive && !st.Finished {
				t.Errorf("round %s not-started before the active round", r)
			}
		}
	}
	if inProgress > 1 {
		t.Errorf("%d rounds in-progress, want at most 1", inProgress)
	}
	if st.Finished && inProgress != 0 {
		t.Error("finished assessment still has an in-progress round")
	}
}

func TestInitialize_FirstRoundActive(t *testing.T) {
	st := Initialize(nil)

	if st.Active != RoundMCQ {
		t.Errorf("Active = %s, want %s", st.Active, RoundMCQ)
	}
	if st.Rounds[RoundMCQ].StartedAt.IsZero() {
		t.Error("active round not stamped started")
	}
	checkInvariant(t, st)
}

func TestInitialize_SkipsCompletedRounds(t *testing.T) {
	st := Initialize(map[Round]bool{RoundMCQ: true})

	if st.Active != RoundPsychometric {
		t.Errorf("Active = %s, want %s", st.Active, RoundPsychometric)
	}
	if st.Rounds[RoundMCQ].Status != StatusCompleted {
		t.Error("mcq round should be completed")
	}
	if st.ActiveProgress().CurrentQuestionIndex != 0 {
		t.Error("cursor should start at 0")
	}
	checkInvariant(t, st)
}

func TestInitialize_AllComplete(t *testing.T) {
	st := Initialize(map[Round]bool{
		RoundMCQ: true, RoundPsychometric: true, RoundTechnical: true, RoundTextBased: true,
	})

	if !st.Finished {
		t.Error("expected finished assessment")
	}
	if st.ActiveProgress() != nil {
		t.Error("finished assessment has an active round")
	}
}

func TestBeginRound_EmptyList(t *testing.T) {
	st := Initialize(nil)

	err := BeginRound(st, nil)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
	// The round must not complete silently.
	if st.Rounds[RoundMCQ].Status != StatusInProgress {
		t.Error("empty question list must not complete the round")
	}
}

func TestAdvanceQuestion_CompletesRoundExactlyOnce(t *testing.T) {
	st := Initialize(nil)
	const n = 5
	if err := BeginRound(st, mcqQuestions(n)); err != nil {
		t.Fatal(err)
	}

	sub := &recordingSubmitter{}
	completions := 0
	for i := 0; i < n; i++ {
		if err := RecordAnswer(st, i+1, OptionAnswer(0)); err != nil {
			t.Fatalf("RecordAnswer(%d): %v", i+1, err)
		}
		adv := AdvanceQuestion(context.Background(), st, sub)
		if adv.RoundCompleted {
			completions++
		}
		checkInvariant(t, st)
	}

	if completions != 1 {
		t.Errorf("round completed %d times, want exactly 1", completions)
	}
	if len(sub.submitted) != n {
		t.Errorf("submitted %d answers, want %d", len(sub.submitted), n)
	}
	if st.Active != RoundPsychometric {
		t.Errorf("Active = %s, want %s", st.Active, RoundPsychometric)
	}
}

func TestAdvanceQuestion_CursorNeverExceedsCount(t *testing.T) {
	st := Initialize(nil)
	if err := BeginRound(st, mcqQuestions(3)); err != nil {
		t.Fatal(err)
	}

	rp := st.Rounds[RoundMCQ]
	for i := 0; i < 2; i++ {
		AdvanceQuestion(context.Background(), st, nil)
		if rp.CurrentQuestionIndex >= len(rp.Questions) {
			t.Fatalf("cursor %d exceeds question count %d", rp.CurrentQuestionIndex, len(rp.Questions))
		}
	}
}

func TestCompleteRound_SubmitFailuresDoNotBlockAdvance(t *testing.T) {
	st := Initialize(nil)
	if err := BeginRound(st, mcqQuestions(3)); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 3; i++ {
		if err := RecordAnswer(st, i, OptionAnswer(1)); err != nil {
			t.Fatal(err)
		}
	}

	sub := &recordingSubmitter{failIDs: map[int]bool{2: true}}
	adv := CompleteRound(context.Background(), st, sub)

	if !adv.RoundCompleted {
		t.Fatal("expected round completion")
	}
	if len(adv.SubmitFailures) != 1 {
		t.Errorf("SubmitFailures = %d, want 1", len(adv.SubmitFailures))
	}
	// All three submissions attempted despite the failure.
	if len(sub.submitted) != 3 {
		t.Errorf("submitted %d answers, want 3", len(sub.submitted))
	}
	if st.Active != RoundPsychometric {
		t.Error("submission failure must not block round advancement")
	}
	checkInvariant(t, st)
}

func TestCompleteRound_FinalRoundIsTerminalAndIdempotent(t *testing.T) {
	st := Initialize(map[Round]bool{
		RoundMCQ: true, RoundPsychometric: true, RoundTechnical: true,
	})
	if st.Active != RoundTextBased {
		t.Fatalf("Active = %s, want %s", st.Active, RoundTextBased)
	}
	if err := BeginRound(st, []Question{{ID: 9, Kind: KindText, MaxLength: 100}}); err != nil {
		t.Fatal(err)
	}

	adv := CompleteRound(context.Background(), st, nil)
	if !adv.Finished {
		t.Fatal("expected finished assessment")
	}

	// Further advances are no-ops, never a second round transition.
	again := CompleteRound(context.Background(), st, nil)
	if !again.Finished || again.RoundCompleted {
		t.Errorf("terminal state not idempotent: %+v", again)
	}
	if err := RecordAnswer(st, 9, TextAnswer("late")); !errors.Is(err, ErrFinished) {
		t.Errorf("RecordAnswer after finish = %v, want ErrFinished", err)
	}
	checkInvariant(t, st)
}

func TestRecordAnswer_UnknownQuestion(t *testing.T) {
	st := Initialize(nil)
	if err := BeginRound(st, mcqQuestions(2)); err != nil {
		t.Fatal(err)
	}

	err := RecordAnswer(st, 99, OptionAnswer(0))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestRecordAnswer_DoesNotAdvanceCursor(t *testing.T) {
	st := Initialize(nil)
	if err := BeginRound(st, mcqQuestions(2)); err != nil {
		t.Fatal(err)
	}

	if err := RecordAnswer(st, 1, OptionAnswer(2)); err != nil {
		t.Fatal(err)
	}
	if idx := st.ActiveProgress().CurrentQuestionIndex; idx != 0 {
		t.Errorf("cursor = %d, want 0", idx)
	}
}
