package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nvasanth/candex/internal/ui/theme"
)

// RatingScale is a horizontal 1-N selector used for psychometric questions.
type RatingScale struct {
	Question  string
	Min       int
	Max       int
	Step      int
	Value     int
	Submitted bool
}

// NewRatingScale creates a rating scale starting at the midpoint.
func NewRatingScale(question string, min, max, step int) RatingScale {
	if step <= 0 {
		step = 1
	}
	return RatingScale{
		Question: question,
		Min:      min,
		Max:      max,
		Step:     step,
		Value:    min + (max-min)/2,
	}
}

// Init returns nil.
func (r RatingScale) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (r RatingScale) Update(msg tea.Msg) (RatingScale, tea.Cmd) {
	if r.Submitted {
		return r, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if r.Value-r.Step >= r.Min {
			r.Value -= r.Step
		}
	case "right", "l":
		if r.Value+r.Step <= r.Max {
			r.Value += r.Step
		}
	case "enter":
		r.Submitted = true
	}

	return r, nil
}

// View renders the scale with endpoint labels.
func (r RatingScale) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(r.Question) + "\n\n"

	var cells []string
	for v := r.Min; v <= r.Max; v += r.Step {
		cell := fmt.Sprintf(" %d ", v)
		if v == r.Value {
			cells = append(cells, lipgloss.NewStyle().
				Background(theme.Primary).
				Foreground(theme.Text).
				Bold(true).
				Render(cell))
		} else {
			cells = append(cells, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(cell))
		}
	}
	s += "  " + strings.Join(cells, " ") + "\n\n"

	s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("  %d = strongly disagree    %d = strongly agree", r.Min, r.Max))

	return s
}
