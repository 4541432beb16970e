package events

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nvasanth/candex/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	records []store.EventRecord
	err     error
}

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
	return m.records, m.err
}
func (m *mockEventRepo) ViolationCount(context.Context, string) (int, error) {
	return 0, nil
}

func loadedEvents(records []store.EventRecord) *EventsScreen {
	s := New(&mockEventRepo{records: records})
	msg := s.Init()()
	scr, _ := s.Update(msg)
	return scr.(*EventsScreen)
}

func testRecords(n int) []store.EventRecord {
	records := make([]store.EventRecord, n)
	for i := range records {
		records[i] = store.EventRecord{
			Sequence:  int64(n - i),
			Timestamp: time.Now(),
			Kind:      "attempt",
			Summary:   "round_start mcq",
		}
	}
	return records
}

func TestEventsScreen_Title(t *testing.T) {
	s := New(&mockEventRepo{})
	if s.Title() != "Event Log" {
		t.Errorf("Title = %q, want %q", s.Title(), "Event Log")
	}
}

func TestEventsScreen_Empty(t *testing.T) {
	s := loadedEvents(nil)
	view := s.View(80, 24)
	if !strings.Contains(view, "No events") {
		t.Error("expected empty-log message")
	}
}

func TestEventsScreen_Error(t *testing.T) {
	s := New(&mockEventRepo{err: errors.New("db locked")})
	msg := s.Init()()
	scr, _ := s.Update(msg)
	ss := scr.(*EventsScreen)

	view := ss.View(80, 24)
	if !strings.Contains(view, "db locked") {
		t.Error("expected error message in view")
	}
}

func TestEventsScreen_Rows(t *testing.T) {
	s := loadedEvents(testRecords(3))
	view := s.View(80, 24)
	if !strings.Contains(view, "round_start mcq") {
		t.Error("expected event summary in view")
	}
}

func TestEventsScreen_ScrollBounds(t *testing.T) {
	s := loadedEvents(testRecords(3))

	// Up at the top stays put.
	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	ss := scr.(*EventsScreen)
	if ss.offset != 0 {
		t.Errorf("offset after up at top = %d, want 0", ss.offset)
	}

	// Down never scrolls past the last record.
	for i := 0; i < 10; i++ {
		scr, _ = ss.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		ss = scr.(*EventsScreen)
	}
	if ss.offset != 2 {
		t.Errorf("offset after scrolling past end = %d, want 2", ss.offset)
	}
}

func TestEventsScreen_EscPops(t *testing.T) {
	s := loadedEvents(nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}
