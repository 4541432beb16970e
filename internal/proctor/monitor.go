package proctor

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/nvasanth/candex/internal/api"
)

// Status is the proctoring session state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusActive  Status = "active"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

const (
	// DefaultInterval is the capture period. Chosen so one analyze call
	// finishes well before the next cycle under normal latency.
	DefaultInterval = 2 * time.Second

	minInterval = 1 * time.Second
	maxInterval = 2 * time.Second
)

// Config configures a Monitor.
type Config struct {
	// Interval is the capture period, clamped to [1s, 2s].
	Interval time.Duration

	// OnViolation receives at most one violation per capture cycle.
	// Called from the monitor goroutine.
	OnViolation func(Violation)

	// Logf receives non-fatal warnings (failed analyze calls, failed
	// session teardown). nil discards them.
	Logf func(format string, args ...any)
}

// Monitor drives the capture/analyze cycle for one proctoring session.
// Lifecycle: idle → Start → active ⇄ {warning, error} → Stop → idle.
// Stop is idempotent and must run on every exit path of the owning
// screen so camera and timer are always released.
type Monitor struct {
	backend api.Backend
	source  FrameSource
	cfg     Config

	mu           sync.Mutex
	sessionID    string
	status       Status
	lastAnalysis *api.FrameAnalysis
	inFlight     bool
	stopCh       chan struct{}
	done         chan struct{}
}

// New creates an idle Monitor. source may be nil when camera acquisition
// failed; the monitor then runs in degraded mode (session and
// tab-switch logging only, no frames).
func New(backend api.Backend, source FrameSource, cfg Config) *Monitor {
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Interval < minInterval {
		cfg.Interval = minInterval
	}
	if cfg.Interval > maxInterval {
		cfg.Interval = maxInterval
	}
	return &Monitor{
		backend: backend,
		source:  source,
		cfg:     cfg,
		status:  StatusIdle,
	}
}

// Start opens a backend session and schedules the capture loop. On
// failure the monitor transitions to error, schedules nothing, and the
// assessment proceeds without it.
func (m *Monitor) Start(ctx context.Context, assessmentID string) error {
	m.mu.Lock()
	if m.status != StatusIdle {
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()

	sessionID, err := m.backend.StartProctorSession(ctx, assessmentID)
	if err != nil {
		m.mu.Lock()
		m.status = StatusError
		m.mu.Unlock()
		m.logf("proctor: session start failed: %v", err)
		return err
	}

	m.mu.Lock()
	m.sessionID = sessionID
	m.status = StatusActive
	m.stopCh = make(chan struct{})
	m.done = make(chan struct{})
	stopCh, done := m.stopCh, m.done
	m.mu.Unlock()

	go m.loop(stopCh, done)
	return nil
}

// loop fires the capture cycle at a fixed interval until Stop.
func (m *Monitor) loop(stopCh, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), m.cfg.Interval*2)
			m.cycle(ctx)
			cancel()
		}
	}
}

// cycle runs one capture → encode → analyze → interpret pass. Failures
// are logged and skipped; they never stop future cycles.
func (m *Monitor) cycle(ctx context.Context) {
	m.mu.Lock()
	if m.sessionID == "" || m.source == nil || m.inFlight {
		// No session, degraded mode, or a previous analyze call still
		// outstanding under a slow network.
		m.mu.Unlock()
		return
	}
	m.inFlight = true
	sessionID := m.sessionID
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.inFlight = false
		m.mu.Unlock()
	}()

	frame, err := m.source.Capture(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotReady) {
			m.logf("proctor: frame capture failed: %v", err)
		}
		return
	}

	encoded := base64.StdEncoding.EncodeToString(frame)
	analysis, err := m.backend.AnalyzeFrame(ctx, sessionID, encoded)
	if err != nil {
		m.logf("proctor: frame analysis failed: %v", err)
		return
	}

	violation, found := Interpret(analysis)

	m.mu.Lock()
	m.lastAnalysis = analysis
	if found {
		m.status = StatusWarning
	} else {
		m.status = StatusActive
	}
	m.mu.Unlock()

	if found && m.cfg.OnViolation != nil {
		m.cfg.OnViolation(violation)
	}
}

// Stop tears the session down: timer cleared, camera released, backend
// session ended. Safe to call multiple times and on never-started
// monitors.
func (m *Monitor) Stop() {
	m.mu.Lock()
	sessionID := m.sessionID
	m.sessionID = ""
	m.status = StatusIdle
	stopCh, done := m.stopCh, m.done
	m.stopCh, m.done = nil, nil
	m.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
		<-done
	}

	if m.source != nil {
		if err := m.source.Close(); err != nil {
			m.logf("proctor: camera close failed: %v", err)
		}
	}

	if sessionID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := m.backend.EndProctorSession(ctx, sessionID); err != nil {
			m.logf("proctor: session end failed: %v", err)
		}
	}
}

// SessionID returns the active backend session id, or "".
func (m *Monitor) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionID
}

// Status returns the current proctoring status.
func (m *Monitor) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// LastAnalysis returns the most recent frame analysis, or nil.
func (m *Monitor) LastAnalysis() *api.FrameAnalysis {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastAnalysis
}

// Degraded reports whether the monitor runs without a camera.
func (m *Monitor) Degraded() bool {
	return m.source == nil
}

func (m *Monitor) logf(format string, args ...any) {
	if m.cfg.Logf != nil {
		m.cfg.Logf(format, args...)
	}
}
