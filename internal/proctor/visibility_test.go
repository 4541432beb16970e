package proctor

import (
	"context"
	"testing"

	"github.com/nvasanth/candex/internal/api"
)

func TestFocusWatcher_OncePerBlur(t *testing.T) {
	backend := api.NewMockBackend()
	var violations []Violation
	w := NewFocusWatcher(backend, func() string { return "sess-1" }, func(v Violation) {
		violations = append(violations, v)
	})

	ctx := context.Background()

	// Two blurs with no focus in between collapse to one event.
	w.Blurred(ctx)
	w.Blurred(ctx)

	if len(violations) != 1 {
		t.Fatalf("got %d violations, want 1", len(violations))
	}
	if violations[0].Type != ViolationTabSwitch {
		t.Errorf("violation = %s, want %s", violations[0].Type, ViolationTabSwitch)
	}
	if backend.EventCount() != 1 {
		t.Errorf("backend events = %d, want 1", backend.EventCount())
	}
}

func TestFocusWatcher_FocusEmitsNothingAndRearms(t *testing.T) {
	backend := api.NewMockBackend()
	count := 0
	w := NewFocusWatcher(backend, func() string { return "sess-1" }, func(Violation) { count++ })

	ctx := context.Background()

	w.Blurred(ctx)
	w.Focused()
	if count != 1 {
		t.Fatalf("focus must not emit a violation, count = %d", count)
	}

	// Next blur reports again.
	w.Blurred(ctx)
	if count != 2 {
		t.Errorf("count = %d, want 2 after re-blur", count)
	}
}

func TestFocusWatcher_NoSessionNoEvent(t *testing.T) {
	backend := api.NewMockBackend()
	count := 0
	w := NewFocusWatcher(backend, func() string { return "" }, func(Violation) { count++ })

	w.Blurred(context.Background())

	if count != 0 || backend.EventCount() != 0 {
		t.Error("blur without an active session must not report anything")
	}
}

func TestFocusWatcher_LogFailureStillRaisesViolation(t *testing.T) {
	backend := api.NewMockBackend()
	backend.LogErr = &api.ErrBackendUnavailable{}

	count := 0
	w := NewFocusWatcher(backend, func() string { return "sess-1" }, func(Violation) { count++ })
	w.Blurred(context.Background())

	if count != 1 {
		t.Errorf("count = %d; a failed backend log must not swallow the local violation", count)
	}
}
