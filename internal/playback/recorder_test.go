package playback

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/nvasanth/candex/internal/api"
)

func session() string { return "sess-1" }

func TestRecorder_FlushSendsOneBatch(t *testing.T) {
	backend := api.NewMockBackend()
	r := NewRecorder(backend, session)
	r.Start(7)
	defer r.Stop()

	for i := 0; i < 10; i++ {
		r.RecordChange(fmt.Sprintf("draft %d", i))
	}

	r.Flush(context.Background())

	if backend.BatchCount() != 1 {
		t.Fatalf("network calls = %d, want exactly 1", backend.BatchCount())
	}
	batch := backend.Batches[0]
	if len(batch.Events) != 10 {
		t.Errorf("batch carries %d events, want 10", len(batch.Events))
	}
	if batch.QuestionID != 7 {
		t.Errorf("question id = %d, want 7", batch.QuestionID)
	}
	if r.Pending() != 0 {
		t.Errorf("buffer holds %d events after flush, want 0", r.Pending())
	}
}

// blockingBackend holds RecordPlayback open until released, to observe
// the buffer state mid-request.
type blockingBackend struct {
	*api.MockBackend
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

// Only the first call blocks; later flushes (Stop's final one) pass
// straight through.
func (b *blockingBackend) RecordPlayback(ctx context.Context, sessionID string, questionID int, events []api.PlaybackEvent) error {
	b.once.Do(func() {
		close(b.entered)
		<-b.release
	})
	return b.MockBackend.RecordPlayback(ctx, sessionID, questionID, events)
}

func TestRecorder_BufferSwappedBeforeRequestResolves(t *testing.T) {
	backend := &blockingBackend{
		MockBackend: api.NewMockBackend(),
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	r := NewRecorder(backend, session)
	r.Start(1)

	r.RecordChange("first")

	flushDone := make(chan struct{})
	go func() {
		r.Flush(context.Background())
		close(flushDone)
	}()

	// The request has started but not resolved; the buffer must already
	// be empty and accepting fresh events.
	<-backend.entered
	if r.Pending() != 0 {
		t.Errorf("buffer not swapped at request start: %d pending", r.Pending())
	}
	r.RecordChange("second")
	if r.Pending() != 1 {
		t.Errorf("concurrent record lost: %d pending", r.Pending())
	}

	close(backend.release)
	<-flushDone
	r.Stop()

	// Two batches total: the in-flight one and the final flush.
	if backend.BatchCount() != 2 {
		t.Fatalf("batches = %d, want 2", backend.BatchCount())
	}
	if backend.Batches[0].Events[0].C != "first" || backend.Batches[1].Events[0].C != "second" {
		t.Error("events lost or duplicated across the swap")
	}
}

func TestRecorder_FailedFlushDropsBatch(t *testing.T) {
	backend := api.NewMockBackend()
	backend.RecordErr = &api.ErrBackendUnavailable{}

	r := NewRecorder(backend, session)
	r.Start(1)
	defer r.Stop()

	r.RecordChange("lost interval")
	r.Flush(context.Background())

	if r.Pending() != 0 {
		t.Error("failed batch must be dropped, not re-queued")
	}
}

func TestRecorder_NoopWithoutRecording(t *testing.T) {
	backend := api.NewMockBackend()
	r := NewRecorder(backend, session)

	r.RecordChange("before start")
	if r.Pending() != 0 {
		t.Error("RecordChange before Start must be a no-op")
	}

	r.Flush(context.Background())
	if backend.BatchCount() != 0 {
		t.Error("empty buffer must not produce a network call")
	}
}

func TestRecorder_StopFlushesAndIsIdempotent(t *testing.T) {
	backend := api.NewMockBackend()
	r := NewRecorder(backend, session)
	r.Start(3)

	r.RecordChange("final state")
	r.Stop()
	r.Stop()

	if backend.BatchCount() != 1 {
		t.Fatalf("batches = %d, want 1 from the final flush", backend.BatchCount())
	}

	r.RecordChange("after stop")
	if r.Pending() != 0 {
		t.Error("recorder must stay stopped")
	}
}

func TestRecorder_PeriodicFlush(t *testing.T) {
	backend := api.NewMockBackend()
	r := NewRecorder(backend, session)
	r.FlushInterval = 20 * time.Millisecond
	r.Start(1)
	defer r.Stop()

	r.RecordChange("tick")

	deadline := time.After(time.Second)
	for backend.BatchCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("flush loop never fired")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestRecorder_RestartDoesNotLeakTimers(t *testing.T) {
	backend := api.NewMockBackend()
	r := NewRecorder(backend, session)
	r.FlushInterval = 10 * time.Millisecond

	// Repeated starts must replace, not stack, the flush loop.
	for i := 0; i < 5; i++ {
		r.Start(i + 1)
	}
	r.RecordChange("x")
	r.Stop()

	if backend.BatchCount() != 1 {
		t.Errorf("batches = %d, want 1", backend.BatchCount())
	}
}
