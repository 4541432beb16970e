package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nvasanth/candex/internal/router"
	"github.com/nvasanth/candex/internal/screen"
)

type stubScreen struct {
	intercepted bool
}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "stub" }
func (s *stubScreen) Title() string                           { return "Stub" }

func (s *stubScreen) InterceptQuit() tea.Cmd {
	s.intercepted = true
	return tea.Quit
}

func TestAppView_ReportsFocus(t *testing.T) {
	m := AppModel{router: router.New(&stubScreen{})}
	v := m.View()
	if !v.ReportFocus {
		t.Error("expected focus reporting enabled; the focus watcher depends on it")
	}
	if !v.AltScreen {
		t.Error("expected alt screen enabled")
	}
}

func TestAppUpdate_CtrlCDelegatesToInterceptor(t *testing.T) {
	s := &stubScreen{}
	m := AppModel{router: router.New(s)}

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if !s.intercepted {
		t.Error("expected Ctrl+C to route through the screen's quit interceptor")
	}
	if cmd == nil {
		t.Error("expected the interceptor's command to be returned")
	}
}
