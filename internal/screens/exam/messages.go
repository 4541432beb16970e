package exam

import (
	"time"

	"github.com/nvasanth/candex/internal/assessment"
	"github.com/nvasanth/candex/internal/proctor"
)

// questionsLoadedMsg is sent when the active round's questions arrive.
type questionsLoadedMsg struct {
	Round     assessment.Round
	Questions []assessment.Question
	Err       error
}

// proctorStartedMsg is sent when the proctoring session start resolves.
type proctorStartedMsg struct {
	Err error
}

// violationMsg delivers one proctoring violation to the UI loop.
type violationMsg struct {
	V proctor.Violation
}

// timerTickMsg is sent every second to update the round countdown.
type timerTickMsg time.Time

// roundClosedMsg is sent when the active round has been completed and
// the mcq batch (if any) submitted.
type roundClosedMsg struct {
	Adv assessment.Advance
}

// finishedMsg is sent when proctoring teardown completes and the summary
// can be shown.
type finishedMsg struct{}
