package assessment

import "time"

// Status is the lifecycle state of a single round.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// RoundProgress tracks a candidate's position within one round.
type RoundProgress struct {
	Round  Round
	Status Status

	// Questions is the ordered question list, attached by BeginRound
	// once fetched from the backend. Empty until then.
	Questions []Question

	// Answers maps question ID to the recorded answer value.
	Answers map[int]Answer

	// CurrentQuestionIndex is the cursor into Questions. Never exceeds
	// len(Questions).
	CurrentQuestionIndex int

	StartedAt   time.Time
	CompletedAt time.Time
}

// CurrentQuestion returns the question under the cursor, or nil if the
// round has no questions attached or the cursor is out of range.
func (rp *RoundProgress) CurrentQuestion() *Question {
	if rp.CurrentQuestionIndex < 0 || rp.CurrentQuestionIndex >= len(rp.Questions) {
		return nil
	}
	return &rp.Questions[rp.CurrentQuestionIndex]
}

// State is the whole-assessment state: one progress record per round plus
// the active-round cursor. Invariant: at most one round is in-progress,
// every round ordered before it is completed, every round after is
// not-started. All mutation goes through the package functions; screens
// never write fields directly.
type State struct {
	// AttemptID groups everything the client does in one assessment run.
	AttemptID string

	Rounds map[Round]*RoundProgress

	// Active is the in-progress round, or "" once Finished.
	Active Round

	// Finished is set when the final round completes. Terminal; further
	// advances are no-ops.
	Finished bool
}

// ActiveProgress returns the progress record for the active round, or nil
// when the assessment is finished.
func (st *State) ActiveProgress() *RoundProgress {
	if st.Finished || st.Active == "" {
		return nil
	}
	return st.Rounds[st.Active]
}

// OverallProgress returns completed rounds as a fraction of the total.
func (st *State) OverallProgress() float64 {
	done := 0
	for _, r := range RoundOrder {
		if st.Rounds[r].Status == StatusCompleted {
			done++
		}
	}
	return float64(done) / float64(len(RoundOrder))
}
