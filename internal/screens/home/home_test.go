package home

import (
	"context"
	"strings"
	"testing"

	"github.com/nvasanth/candex/internal/api"
	"github.com/nvasanth/candex/internal/assessment"
	"github.com/nvasanth/candex/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct{}

func (m *mockEventRepo) AppendAPIRequest(context.Context, store.APIRequestEventData) error {
	return nil
}
func (m *mockEventRepo) AppendViolation(context.Context, store.ViolationEventData) error {
	return nil
}
func (m *mockEventRepo) AppendAnswer(context.Context, store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) AppendAttempt(context.Context, store.AttemptEventData) error {
	return nil
}
func (m *mockEventRepo) RecentEvents(context.Context, store.QueryOpts) ([]store.EventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) ViolationCount(context.Context, string) (int, error) {
	return 0, nil
}

func testInfo(completed map[assessment.Round]bool) *api.AssessmentInfo {
	return &api.AssessmentInfo{
		AssessmentID: "assess-1",
		Candidate:    "Asha",
		Completed:    completed,
	}
}

func loadedHome(completed map[assessment.Round]bool) *HomeScreen {
	backend := api.NewMockBackend()
	backend.Info = testInfo(completed)
	h := New(backend, &mockEventRepo{}, "assess-1")

	msg := h.Init()()
	scr, _ := h.Update(msg)
	return scr.(*HomeScreen)
}

func TestHomeScreen_Title(t *testing.T) {
	h := New(api.NewMockBackend(), &mockEventRepo{}, "assess-1")
	if h.Title() != "Assessment" {
		t.Errorf("Title = %q, want %q", h.Title(), "Assessment")
	}
}

func TestHomeScreen_View_Loading(t *testing.T) {
	h := New(api.NewMockBackend(), &mockEventRepo{}, "assess-1")
	view := h.View(80, 24)
	if !strings.Contains(view, "Loading") {
		t.Error("expected loading view before the assessment arrives")
	}
}

func TestHomeScreen_View_Error(t *testing.T) {
	// MockBackend with no Info returns ErrBackendUnavailable.
	h := New(api.NewMockBackend(), &mockEventRepo{}, "assess-1")

	msg := h.Init()()
	scr, _ := h.Update(msg)
	hh := scr.(*HomeScreen)

	view := hh.View(80, 24)
	if !strings.Contains(view, "Could not reach") {
		t.Error("expected error view when the fetch fails")
	}
}

func TestHomeScreen_View_RoundList(t *testing.T) {
	h := loadedHome(nil)
	view := h.View(80, 24)
	for _, r := range assessment.RoundOrder {
		if !strings.Contains(view, assessment.RoundConfigs[r].Name) {
			t.Errorf("expected round %q in the home view", r)
		}
	}
}

func TestHomeScreen_StartLabel_Fresh(t *testing.T) {
	h := loadedHome(nil)
	items := h.menuItems()
	if items[0].Label != "START ASSESSMENT" {
		t.Errorf("label = %q, want START ASSESSMENT", items[0].Label)
	}
}

func TestHomeScreen_StartLabel_Resume(t *testing.T) {
	h := loadedHome(map[assessment.Round]bool{assessment.RoundMCQ: true})
	items := h.menuItems()
	if items[0].Label != "RESUME ASSESSMENT" {
		t.Errorf("label = %q, want RESUME ASSESSMENT", items[0].Label)
	}
}

func TestHomeScreen_StartLabel_Finished(t *testing.T) {
	completed := make(map[assessment.Round]bool)
	for _, r := range assessment.RoundOrder {
		completed[r] = true
	}
	h := loadedHome(completed)
	items := h.menuItems()
	if items[0].Label != "VIEW RESULTS" {
		t.Errorf("label = %q, want VIEW RESULTS", items[0].Label)
	}
}

func TestHomeScreen_KeyHints(t *testing.T) {
	h := New(api.NewMockBackend(), &mockEventRepo{}, "assess-1")
	hints := h.KeyHints()
	if len(hints) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(hints))
	}
}
