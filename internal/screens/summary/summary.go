package summary

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nvasanth/candex/internal/assessment"
	"github.com/nvasanth/candex/internal/screen"
	"github.com/nvasanth/candex/internal/store"
	"github.com/nvasanth/candex/internal/ui/components"
	"github.com/nvasanth/candex/internal/ui/layout"
	"github.com/nvasanth/candex/internal/ui/theme"
)

type violationsLoadedMsg struct {
	Count int
	Err   error
}

// SummaryScreen shows the end-of-assessment wrap-up.
type SummaryScreen struct {
	events    store.EventRepo
	st        *assessment.State
	candidate string

	violations int
	loaded     bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(eventRepo store.EventRepo, st *assessment.State, candidate string) *SummaryScreen {
	return &SummaryScreen{
		events:    eventRepo,
		st:        st,
		candidate: candidate,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		n, err := s.events.ViolationCount(context.Background(), s.st.AttemptID)
		return violationsLoadedMsg{Count: n, Err: err}
	}
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Q", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case violationsLoadedMsg:
		if msg.Err == nil {
			s.violations = msg.Count
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "enter":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Assessment Complete"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Thank you, %s. Your responses have been recorded.", s.candidate)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Rounds", s.st.OverallProgress(), true, min(width-20, 48))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	for _, r := range assessment.RoundOrder {
		rp := s.st.Rounds[r]
		cfg := assessment.RoundConfigs[r]

		mark := "·"
		detail := "not attempted"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if rp != nil && rp.Status == assessment.StatusCompleted {
			mark = "✓"
			style = theme.Completed
			if rp.CompletedAt.After(rp.StartedAt) {
				mins := int(rp.CompletedAt.Sub(rp.StartedAt).Minutes())
				detail = fmt.Sprintf("%d answered in %d min", len(rp.Answers), mins)
			} else {
				detail = "completed earlier"
			}
		}

		line := fmt.Sprintf("%s  %-32s %s", mark, cfg.Name, detail)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.loaded && s.violations > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Degraded.Render(fmt.Sprintf("%d proctoring event(s) were flagged during this attempt", s.violations))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("The hiring team will review your results and follow up by email.")))

	return b.String()
}
