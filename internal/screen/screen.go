package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nvasanth/candex/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that surface the
// candidate name and proctoring indicator in the header.
type StatusProvider interface {
	HeaderStatus() (candidate, proctor string)
}

// BackBlocker is an optional interface for screens that must not be
// dismissed with Esc, such as an in-progress round.
type BackBlocker interface {
	BlocksBack() bool
}

// QuitInterceptor is an optional interface for screens that own external
// resources and need to release them before the program quits. The
// returned command must end with the actual quit.
type QuitInterceptor interface {
	InterceptQuit() tea.Cmd
}
