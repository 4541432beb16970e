package events

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nvasanth/candex/internal/router"
	"github.com/nvasanth/candex/internal/screen"
	"github.com/nvasanth/candex/internal/store"
	"github.com/nvasanth/candex/internal/ui/layout"
	"github.com/nvasanth/candex/internal/ui/theme"
)

type eventsLoadedMsg struct {
	Records []store.EventRecord
	Err     error
}

// EventsScreen displays the local event log, newest first.
type EventsScreen struct {
	eventRepo store.EventRepo
	records   []store.EventRecord
	offset    int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*EventsScreen)(nil)
var _ screen.KeyHintProvider = (*EventsScreen)(nil)

// New creates a new EventsScreen.
func New(eventRepo store.EventRepo) *EventsScreen {
	return &EventsScreen{eventRepo: eventRepo}
}

func (s *EventsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.eventRepo.RecentEvents(context.Background(), store.QueryOpts{Limit: 200})
		return eventsLoadedMsg{Records: records, Err: err}
	}
}

func (s *EventsScreen) Title() string {
	return "Event Log"
}

func (s *EventsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *EventsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.records)-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *EventsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading events...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No events recorded yet.")
	}

	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	end := s.offset + visible
	if end > len(s.records) {
		end = len(s.records)
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, rec := range s.records[s.offset:end] {
		ts := rec.Timestamp.Format("15:04:05")
		kindStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
		if rec.Kind == "violation" {
			kindStyle = lipgloss.NewStyle().Foreground(theme.Error)
		}
		line := fmt.Sprintf("  %s  %s  %s",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(ts),
			kindStyle.Render(fmt.Sprintf("%-12s", rec.Kind)),
			lipgloss.NewStyle().Foreground(theme.Text).Render(rec.Summary))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
