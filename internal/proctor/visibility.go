package proctor

import (
	"context"
	"sync"

	"github.com/nvasanth/candex/internal/api"
)

// FocusWatcher reports terminal focus loss as a tab-switch violation.
// It is always on, independent of camera state, and reports exactly once
// per blur: staying unfocused raises nothing further, and regaining
// focus raises nothing at all.
type FocusWatcher struct {
	backend api.Backend

	// Session returns the active proctoring session id, or "" when no
	// session is running (no session, no event).
	Session func() string

	// OnViolation receives the tab-switch violation.
	OnViolation func(Violation)

	// Logf receives non-fatal warnings. nil discards them.
	Logf func(format string, args ...any)

	mu      sync.Mutex
	blurred bool
}

// NewFocusWatcher creates a FocusWatcher.
func NewFocusWatcher(backend api.Backend, session func() string, onViolation func(Violation)) *FocusWatcher {
	return &FocusWatcher{
		backend:     backend,
		Session:     session,
		OnViolation: onViolation,
	}
}

// Blurred handles a focus-loss event. Repeated blurs without an
// intervening Focused call are collapsed into one violation.
func (w *FocusWatcher) Blurred(ctx context.Context) {
	w.mu.Lock()
	if w.blurred {
		w.mu.Unlock()
		return
	}
	w.blurred = true
	w.mu.Unlock()

	sessionID := ""
	if w.Session != nil {
		sessionID = w.Session()
	}
	if sessionID == "" {
		return
	}

	const details = "candidate switched away from the assessment window"
	if err := w.backend.LogEvent(ctx, sessionID, string(ViolationTabSwitch), details); err != nil {
		if w.Logf != nil {
			w.Logf("proctor: log tab switch failed: %v", err)
		}
	}
	if w.OnViolation != nil {
		w.OnViolation(Violation{Type: ViolationTabSwitch, Details: details})
	}
}

// Focused handles a focus-gain event. Emits nothing; only re-arms the
// watcher for the next blur.
func (w *FocusWatcher) Focused() {
	w.mu.Lock()
	w.blurred = false
	w.mu.Unlock()
}
