package components

import (
	"fmt"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nvasanth/candex/internal/ui/theme"
)

// TextArea wraps bubbles/textarea for free-text and code answers.
type TextArea struct {
	Model     textarea.Model
	MaxLength int
}

// NewTextArea creates a multi-line input. maxLength of 0 means unlimited.
func NewTextArea(placeholder string, maxLength int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.Focus()

	if maxLength > 0 {
		ta.CharLimit = maxLength
	}

	return TextArea{
		Model:     ta,
		MaxLength: maxLength,
	}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the textarea with a character counter when limited.
func (t TextArea) View() string {
	view := t.Model.View()
	if t.MaxLength > 0 {
		counter := fmt.Sprintf("%d/%d", len(t.Model.Value()), t.MaxLength)
		view += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)
	}
	return view
}

// Value returns the current content.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetSize resizes the textarea.
func (t *TextArea) SetSize(width, height int) {
	t.Model.SetWidth(width)
	t.Model.SetHeight(height)
}
