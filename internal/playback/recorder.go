package playback

import (
	"context"
	"sync"
	"time"

	"github.com/nvasanth/candex/internal/api"
)

// DefaultFlushInterval is how often buffered snapshots are posted.
const DefaultFlushInterval = 5 * time.Second

// Recorder buffers code-editor content snapshots for one question and
// periodically flushes them to the backend for replay/audit. A flush
// swaps the buffer out before the network call, so snapshots recorded
// during the request land in a fresh buffer — never lost, never
// duplicated. A failed flush drops that batch: losing one interval of
// playback beats unbounded memory growth or head-of-line blocking.
type Recorder struct {
	backend api.Backend

	// Session returns the proctoring session id the batch belongs to,
	// or "" when none is active (flush becomes a no-op).
	Session func() string

	// FlushInterval overrides DefaultFlushInterval when set before Start.
	FlushInterval time.Duration

	// Logf receives non-fatal warnings. nil discards them.
	Logf func(format string, args ...any)

	mu         sync.Mutex
	recording  bool
	questionID int
	epoch      time.Time
	buffer     []api.PlaybackEvent
	stopCh     chan struct{}
	done       chan struct{}
}

// NewRecorder creates an idle Recorder.
func NewRecorder(backend api.Backend, session func() string) *Recorder {
	return &Recorder{backend: backend, Session: session}
}

// Start begins recording for a question: resets the buffer and epoch and
// starts the flush loop. Calling Start while already recording restarts
// cleanly without leaking the previous timer.
func (r *Recorder) Start(questionID int) {
	r.stopLoop()

	r.mu.Lock()
	r.recording = true
	r.questionID = questionID
	r.epoch = time.Now()
	r.buffer = nil
	r.stopCh = make(chan struct{})
	r.done = make(chan struct{})
	stopCh, done := r.stopCh, r.done
	r.mu.Unlock()

	interval := r.FlushInterval
	if interval <= 0 {
		interval = DefaultFlushInterval
	}
	go r.loop(interval, stopCh, done)
}

func (r *Recorder) loop(interval time.Duration, stopCh, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			r.Flush(ctx)
			cancel()
		}
	}
}

// RecordChange appends a content snapshot. No-op when not recording.
func (r *Recorder) RecordChange(content string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return
	}
	r.buffer = append(r.buffer, api.PlaybackEvent{
		T: time.Since(r.epoch).Milliseconds(),
		C: content,
	})
}

// Flush posts the buffered batch. The buffer is swapped out before the
// request starts; on failure the batch is dropped.
func (r *Recorder) Flush(ctx context.Context) {
	r.mu.Lock()
	sessionID := ""
	if r.Session != nil {
		sessionID = r.Session()
	}
	if len(r.buffer) == 0 || sessionID == "" || r.questionID == 0 {
		r.mu.Unlock()
		return
	}
	batch := r.buffer
	r.buffer = nil
	questionID := r.questionID
	r.mu.Unlock()

	if err := r.backend.RecordPlayback(ctx, sessionID, questionID, batch); err != nil {
		if r.Logf != nil {
			r.Logf("playback: flush of %d events dropped: %v", len(batch), err)
		}
	}
}

// Stop performs a final flush and clears the timer. Idempotent.
func (r *Recorder) Stop() {
	r.mu.Lock()
	wasRecording := r.recording
	r.recording = false
	r.mu.Unlock()

	r.stopLoop()

	if wasRecording {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		r.Flush(ctx)
	}
}

// Pending returns the number of snapshots awaiting flush.
func (r *Recorder) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buffer)
}

func (r *Recorder) stopLoop() {
	r.mu.Lock()
	stopCh, done := r.stopCh, r.done
	r.stopCh, r.done = nil, nil
	r.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
		<-done
	}
}
