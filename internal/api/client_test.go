package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvasanth/candex/internal/assessment"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = server.URL
	cfg.Retry = RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2.0}

	client, err := NewClient(cfg, func() (string, error) { return "test-token", nil }, nil)
	require.NoError(t, err)
	return client
}

func TestClient_StartProctorSession(t *testing.T) {
	var gotAuth, gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		gotBody = req["assessment_id"]
		json.NewEncoder(w).Encode(map[string]any{"success": true, "session_id": "sess-42"})
	})

	id, err := client.StartProctorSession(context.Background(), "assess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-42", id)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "assess-1", gotBody)
}

func TestClient_AnalyzeFrame(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"analysis": map[string]any{
				"face_detected":  false,
				"multiple_faces": true,
				"looking_away":   false,
				"phone_detected": false,
			},
		})
	})

	analysis, err := client.AnalyzeFrame(context.Background(), "sess", "aGVsbG8=")
	require.NoError(t, err)
	assert.False(t, analysis.FaceDetected)
	assert.True(t, analysis.MultipleFaces)
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "session_id": "sess"})
	})

	_, err := client.StartProctorSession(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_UnauthorizedNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.StartProctorSession(context.Background(), "a")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_NoTokenHaltsAuthenticatedCall(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	t.Cleanup(server.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = server.URL
	client, err := NewClient(cfg, func() (string, error) { return "", ErrNoToken }, nil)
	require.NoError(t, err)

	err = client.LogEvent(context.Background(), "sess", "tab_switch", "")
	require.ErrorIs(t, err, ErrNoToken)
	assert.Zero(t, calls.Load(), "request must not leave the client without a token")
}

func TestClient_FetchQuestions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "mcq", r.URL.Query().Get("round"))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"questions": []map[string]any{
				{"id": 1, "type": "mcq", "title": "Q1", "description": "Pick one", "options": []string{"a", "b"}},
				{"id": 2, "type": "rating", "title": "Q2", "min": 1, "max": 10, "step": 1},
			},
		})
	})

	qs, err := client.FetchQuestions(context.Background(), "assess-1", assessment.RoundMCQ)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, assessment.KindMCQ, qs[0].Kind)
	assert.Equal(t, []string{"a", "b"}, qs[0].Options)
	assert.Equal(t, 10, qs[1].Max)
}

func TestClient_FetchQuestions_RejectsMalformedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// "type" outside the known kinds must be refused at the boundary.
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"questions": []map[string]any{
				{"id": 1, "type": "essay", "title": "Q1"},
			},
		})
	})

	_, err := client.FetchQuestions(context.Background(), "assess-1", assessment.RoundMCQ)
	var inv *ErrInvalidResponse
	require.True(t, errors.As(err, &inv), "err = %v", err)
}

func TestClient_RateLimitHonorsRetryAfter(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	err := client.LogEvent(context.Background(), "sess", "tab_switch", "")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.BaseURL = "ftp://example.com"
	require.Error(t, cfg.Validate())
}
