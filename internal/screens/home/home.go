package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nvasanth/candex/internal/api"
	"github.com/nvasanth/candex/internal/assessment"
	"github.com/nvasanth/candex/internal/router"
	"github.com/nvasanth/candex/internal/screen"
	"github.com/nvasanth/candex/internal/screens/events"
	"github.com/nvasanth/candex/internal/screens/exam"
	"github.com/nvasanth/candex/internal/screens/summary"
	"github.com/nvasanth/candex/internal/store"
	"github.com/nvasanth/candex/internal/ui/components"
	"github.com/nvasanth/candex/internal/ui/layout"
	"github.com/nvasanth/candex/internal/ui/theme"
)

// assessmentLoadedMsg carries the backend's view of the attempt.
type assessmentLoadedMsg struct {
	Info *api.AssessmentInfo
	Err  error
}

// HomeScreen shows the round list and entry points into the assessment.
type HomeScreen struct {
	backend      api.Backend
	events       store.EventRepo
	assessmentID string

	info   *api.AssessmentInfo
	menu   components.Menu
	loaded bool
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(backend api.Backend, eventRepo store.EventRepo, assessmentID string) *HomeScreen {
	return &HomeScreen{
		backend:      backend,
		events:       eventRepo,
		assessmentID: assessmentID,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		info, err := h.backend.FetchAssessment(context.Background(), h.assessmentID)
		return assessmentLoadedMsg{Info: info, Err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Assessment"
}

func (h *HomeScreen) HeaderStatus() (string, string) {
	if h.info == nil {
		return "", ""
	}
	return h.info.Candidate, ""
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case assessmentLoadedMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			h.loaded = true
			return h, nil
		}
		h.info = msg.Info
		h.loaded = true
		h.menu = components.NewMenu(h.menuItems())
		return h, nil

	case tea.KeyMsg:
		if !h.loaded || h.errMsg != "" {
			if msg.String() == "q" {
				return h, tea.Quit
			}
			return h, nil
		}
	}

	if h.loaded && h.errMsg == "" {
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	}
	return h, nil
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	st := assessment.Initialize(h.info.Completed)

	startLabel := "START ASSESSMENT"
	startHint := "Proctoring begins when the first round starts"
	if st.Finished {
		startLabel = "VIEW RESULTS"
		startHint = "All rounds are complete"
	} else {
		for _, r := range assessment.RoundOrder {
			if h.info.Completed[r] {
				startLabel = "RESUME ASSESSMENT"
				startHint = "Continue from the next incomplete round"
				break
			}
		}
	}

	return []components.MenuItem{
		{Label: startLabel, Hint: startHint, Action: func() tea.Cmd {
			return func() tea.Msg {
				if st.Finished {
					return router.PushScreenMsg{
						Screen: summary.New(h.events, st, h.info.Candidate),
					}
				}
				return router.PushScreenMsg{
					Screen: exam.New(h.backend, h.events, st, h.info),
				}
			}
		}},
		{Label: "EVENT LOG", Hint: "Browse everything recorded on this machine", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: events.New(h.events)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) View(width, height int) string {
	if h.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nCould not reach the assessment service:\n%s\n\nPress q to quit.", h.errMsg))
	}
	if !h.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading assessment...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Candidate Assessment"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Welcome, %s", h.info.Candidate)))
	b.WriteString("\n\n")

	for _, r := range assessment.RoundOrder {
		cfg := assessment.RoundConfigs[r]
		mark := "·"
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if h.info.Completed[r] {
			mark = "✓"
			style = theme.Completed
		}
		line := fmt.Sprintf("%s  %-32s ~%d min", mark, cfg.Name,
			int(cfg.EstimatedTime.Minutes()))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
