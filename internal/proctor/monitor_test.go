package proctor

import (
	"context"
	"testing"
	"time"

	"github.com/nvasanth/candex/internal/api"
)

// stubSource returns a fixed JPEG payload, or ErrNotReady when not ready.
type stubSource struct {
	ready    bool
	captures int
	closes   int
}

func (s *stubSource) Capture(context.Context) ([]byte, error) {
	if !s.ready {
		return nil, ErrNotReady
	}
	s.captures++
	return []byte{0xff, 0xd8, 0xff, 0xd9}, nil
}

func (s *stubSource) Close() error {
	s.closes++
	return nil
}

func startedMonitor(t *testing.T, backend *api.MockBackend, cfg Config) *Monitor {
	t.Helper()
	m := New(backend, &stubSource{ready: true}, cfg)
	if err := m.Start(context.Background(), "assess-1"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(m.Stop)
	// Tests drive cycles by hand; the background loop's first tick is at
	// least one second away.
	return m
}

func TestInterpret_PriorityOrder(t *testing.T) {
	tests := []struct {
		name     string
		analysis api.FrameAnalysis
		want     ViolationType
		none     bool
	}{
		{
			name:     "no face wins over multiple faces",
			analysis: api.FrameAnalysis{FaceDetected: false, MultipleFaces: true},
			want:     ViolationNoFace,
		},
		{
			name:     "multiple faces wins over looking away",
			analysis: api.FrameAnalysis{FaceDetected: true, MultipleFaces: true, LookingAway: true},
			want:     ViolationMultipleFaces,
		},
		{
			name:     "looking away wins over phone",
			analysis: api.FrameAnalysis{FaceDetected: true, LookingAway: true, PhoneDetected: true},
			want:     ViolationLookingAway,
		},
		{
			name:     "phone alone",
			analysis: api.FrameAnalysis{FaceDetected: true, PhoneDetected: true},
			want:     ViolationPhoneDetected,
		},
		{
			name:     "clean frame",
			analysis: api.FrameAnalysis{FaceDetected: true},
			none:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, found := Interpret(&tt.analysis)
			if tt.none {
				if found {
					t.Errorf("unexpected violation %s", v.Type)
				}
				return
			}
			if !found {
				t.Fatal("expected a violation")
			}
			if v.Type != tt.want {
				t.Errorf("violation = %s, want %s", v.Type, tt.want)
			}
		})
	}
}

func TestMonitor_SingleViolationPerCycle(t *testing.T) {
	backend := api.NewMockBackend(api.MockAnalysis{
		Analysis: &api.FrameAnalysis{FaceDetected: false, MultipleFaces: true},
	})

	var violations []Violation
	m := startedMonitor(t, backend, Config{
		OnViolation: func(v Violation) { violations = append(violations, v) },
	})

	m.cycle(context.Background())

	if len(violations) != 1 {
		t.Fatalf("got %d violations, want exactly 1", len(violations))
	}
	if violations[0].Type != ViolationNoFace {
		t.Errorf("violation = %s, want %s (priority)", violations[0].Type, ViolationNoFace)
	}
	if m.Status() != StatusWarning {
		t.Errorf("status = %s, want warning", m.Status())
	}
}

func TestMonitor_CleanResultReturnsToActive(t *testing.T) {
	backend := api.NewMockBackend(
		api.MockAnalysis{Analysis: &api.FrameAnalysis{FaceDetected: false}},
		api.MockAnalysis{Analysis: &api.FrameAnalysis{FaceDetected: true}},
	)

	m := startedMonitor(t, backend, Config{})

	m.cycle(context.Background())
	if m.Status() != StatusWarning {
		t.Fatalf("status after violation = %s, want warning", m.Status())
	}

	m.cycle(context.Background())
	if m.Status() != StatusActive {
		t.Errorf("status after clean frame = %s, want active", m.Status())
	}
}

func TestMonitor_FailedAnalyzeDoesNotStopCycles(t *testing.T) {
	backend := api.NewMockBackend(
		api.MockAnalysis{Err: &api.ErrBackendUnavailable{}},
		api.MockAnalysis{Analysis: &api.FrameAnalysis{FaceDetected: true}},
	)

	m := startedMonitor(t, backend, Config{})

	m.cycle(context.Background())
	if m.LastAnalysis() != nil {
		t.Error("failed analyze must not record an analysis")
	}

	// The next tick still attempts analysis.
	m.cycle(context.Background())
	if backend.AnalyzeCalls != 2 {
		t.Errorf("AnalyzeCalls = %d, want 2", backend.AnalyzeCalls)
	}
	if m.LastAnalysis() == nil {
		t.Error("recovered cycle should record its analysis")
	}
}

func TestMonitor_SourceNotReadySkipsCycle(t *testing.T) {
	backend := api.NewMockBackend()
	src := &stubSource{ready: false}
	m := New(backend, src, Config{})
	if err := m.Start(context.Background(), "assess-1"); err != nil {
		t.Fatal(err)
	}
	defer m.Stop()

	m.cycle(context.Background())
	if backend.AnalyzeCalls != 0 {
		t.Errorf("AnalyzeCalls = %d, want 0 for an unready source", backend.AnalyzeCalls)
	}
	if m.Status() != StatusActive {
		t.Errorf("status = %s; an unready source is a no-op, not an error", m.Status())
	}
}

func TestMonitor_StartFailureLeavesErrorState(t *testing.T) {
	backend := api.NewMockBackend()
	backend.StartErr = &api.ErrBackendUnavailable{}

	m := New(backend, &stubSource{ready: true}, Config{})
	if err := m.Start(context.Background(), "assess-1"); err == nil {
		t.Fatal("expected start error")
	}
	if m.Status() != StatusError {
		t.Errorf("status = %s, want error", m.Status())
	}

	// No session means no capture and no analyze calls.
	m.cycle(context.Background())
	if backend.AnalyzeCalls != 0 {
		t.Error("no analyze call should happen without a session")
	}
	m.Stop()
	if backend.EndCalls != 0 {
		t.Error("no session to end")
	}
}

func TestMonitor_StopIsIdempotentAndReleasesEverything(t *testing.T) {
	backend := api.NewMockBackend()
	src := &stubSource{ready: true}
	m := New(backend, src, Config{})
	if err := m.Start(context.Background(), "assess-1"); err != nil {
		t.Fatal(err)
	}

	m.Stop()
	m.Stop()
	m.Stop()

	if backend.EndCalls != 1 {
		t.Errorf("EndCalls = %d, want 1", backend.EndCalls)
	}
	if src.closes == 0 {
		t.Error("camera never released")
	}
	if m.Status() != StatusIdle {
		t.Errorf("status = %s, want idle", m.Status())
	}
	if m.SessionID() != "" {
		t.Error("session id survived stop")
	}
}

func TestMonitor_DegradedModeWithoutCamera(t *testing.T) {
	backend := api.NewMockBackend()
	m := New(backend, nil, Config{})
	if err := m.Start(context.Background(), "assess-1"); err != nil {
		t.Fatal(err)
	}
	defer m.Stop()

	if !m.Degraded() {
		t.Error("monitor without a source should report degraded")
	}

	// Session runs, frames don't.
	m.cycle(context.Background())
	if backend.AnalyzeCalls != 0 {
		t.Error("degraded monitor must not analyze")
	}
	if m.SessionID() == "" {
		t.Error("degraded monitor still holds a session for event logging")
	}
}

func TestNew_ClampsInterval(t *testing.T) {
	m := New(api.NewMockBackend(), nil, Config{Interval: 100})
	if m.cfg.Interval < minInterval || m.cfg.Interval > maxInterval {
		t.Errorf("interval %s outside [%s, %s]", m.cfg.Interval, minInterval, maxInterval)
	}

	wide := New(api.NewMockBackend(), nil, Config{Interval: time.Minute})
	if wide.cfg.Interval != maxInterval {
		t.Errorf("interval %s, want clamped to %s", wide.cfg.Interval, maxInterval)
	}
}
