package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev && i > 0 {
			t.Fatalf("sequence %d not greater than previous %d", seq, prev)
		}
		prev = seq
	}
}

func TestAppendAndFeed(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAttempt(ctx, AttemptEventData{
		AttemptID: "a1",
		Action:    "start",
	})
	if err != nil {
		t.Fatalf("append attempt: %v", err)
	}

	err = repo.AppendAPIRequest(ctx, APIRequestEventData{
		Method:     "POST",
		Path:       "/api/proctor/session/start",
		StatusCode: 200,
		Attempts:   1,
		LatencyMs:  12,
		Success:    true,
	})
	if err != nil {
		t.Fatalf("append api request: %v", err)
	}

	err = repo.AppendViolation(ctx, ViolationEventData{
		AttemptID:     "a1",
		ViolationType: "no_face",
		Details:       "No face detected in camera view",
		Reported:      true,
	})
	if err != nil {
		t.Fatalf("append violation: %v", err)
	}

	err = repo.AppendAnswer(ctx, AnswerEventData{
		AttemptID:   "a1",
		Round:       "mcq",
		QuestionID:  7,
		AnswerKind:  "option",
		AnswerValue: "2",
		Submitted:   true,
	})
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}

	records, err := repo.RecentEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("recent events: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}

	// Newest first across types.
	for i := 1; i < len(records); i++ {
		if records[i].Sequence >= records[i-1].Sequence {
			t.Errorf("records not in descending sequence order at %d", i)
		}
	}
	if records[0].Kind != "answer" {
		t.Errorf("newest record kind = %q, want answer", records[0].Kind)
	}
	if records[len(records)-1].Kind != "attempt" {
		t.Errorf("oldest record kind = %q, want attempt", records[len(records)-1].Kind)
	}
}

func TestFeedLimitAndAfter(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		err := repo.AppendViolation(ctx, ViolationEventData{
			AttemptID:     "a1",
			ViolationType: "tab_switch",
			Reported:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.RecentEvents(ctx, QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("recent events: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	cutoff := records[0].Sequence - 2
	after, err := repo.RecentEvents(ctx, QueryOpts{After: cutoff})
	if err != nil {
		t.Fatalf("recent events after: %v", err)
	}
	for _, rec := range after {
		if rec.Sequence <= cutoff {
			t.Errorf("record sequence %d not after cutoff %d", rec.Sequence, cutoff)
		}
	}
}

func TestViolationCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, attempt := range []string{"a1", "a1", "a2"} {
		err := repo.AppendViolation(ctx, ViolationEventData{
			AttemptID:     attempt,
			ViolationType: "looking_away",
			Reported:      true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	n, err := repo.ViolationCount(ctx, "a1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("violations for a1 = %d, want 2", n)
	}
}
