package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/nvasanth/candex/internal/assessment"
)

// TokenSource supplies the candidate bearer token for authenticated
// requests. Returning ErrNoToken halts the call before it leaves the
// client.
type TokenSource func() (string, error)

// Client is the HTTP implementation of Backend.
type Client struct {
	cfg    Config
	http   *http.Client
	token  TokenSource
	logger RequestLogger
}

var _ Backend = (*Client)(nil)

// NewClient creates a Client. token may be nil for a pre-login client;
// logger may be nil to disable the audit trail.
func NewClient(cfg Config, token TokenSource, logger RequestLogger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("backend config: %w", err)
	}
	if logger == nil {
		logger = NopLogger{}
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		token:  token,
		logger: logger,
	}, nil
}

// envelope is the common response wrapper used by the backend.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (c *Client) Login(ctx context.Context, email, accessCode string) (string, error) {
	var resp struct {
		envelope
		Token string `json:"token"`
	}
	req := map[string]string{"email": email, "access_code": accessCode}
	if err := c.post(ctx, "/api/candidates/login", false, req, &resp); err != nil {
		return "", err
	}
	if !resp.Success || resp.Token == "" {
		return "", &ErrInvalidResponse{Err: fmt.Errorf("login rejected: %s", resp.Error)}
	}
	return resp.Token, nil
}

func (c *Client) FetchAssessment(ctx context.Context, assessmentID string) (*AssessmentInfo, error) {
	var resp struct {
		envelope
		Candidate string          `json:"candidate"`
		Rounds    map[string]bool `json:"rounds_completed"`
	}
	if err := c.get(ctx, "/api/assessments/"+assessmentID, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("fetch assessment: %s", resp.Error)}
	}

	info := &AssessmentInfo{
		AssessmentID: assessmentID,
		Candidate:    resp.Candidate,
		Completed:    make(map[assessment.Round]bool, len(resp.Rounds)),
	}
	for name, done := range resp.Rounds {
		info.Completed[assessment.Round(name)] = done
	}
	return info, nil
}

// questionWire is the backend's question record.
type questionWire struct {
	ID          int      `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Options     []string `json:"options,omitempty"`
	Min         int      `json:"min,omitempty"`
	Max         int      `json:"max,omitempty"`
	Step        int      `json:"step,omitempty"`
	MaxLength   int      `json:"max_length,omitempty"`
	StarterCode string   `json:"starter_code,omitempty"`
	Language    string   `json:"language,omitempty"`
	Examples    []struct {
		Input       string `json:"input"`
		Output      string `json:"output"`
		Explanation string `json:"explanation,omitempty"`
	} `json:"examples,omitempty"`
	Constraints []string `json:"constraints,omitempty"`
}

func (c *Client) FetchQuestions(ctx context.Context, assessmentID string, round assessment.Round) ([]assessment.Question, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/api/assessments/%s/questions?round=%s", assessmentID, round)
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}

	// Validate the payload before it reaches the state machine.
	if err := validateQuestionPayload(raw); err != nil {
		return nil, err
	}

	var resp struct {
		envelope
		Questions []questionWire `json:"questions"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ErrInvalidResponse{Body: raw, Err: err}
	}
	if !resp.Success {
		return nil, &ErrInvalidResponse{Body: raw, Err: fmt.Errorf("fetch questions: %s", resp.Error)}
	}

	questions := make([]assessment.Question, 0, len(resp.Questions))
	for _, w := range resp.Questions {
		q := assessment.Question{
			ID:          w.ID,
			Kind:        assessment.QuestionKind(w.Type),
			Title:       w.Title,
			Prompt:      w.Description,
			Options:     w.Options,
			Min:         w.Min,
			Max:         w.Max,
			Step:        w.Step,
			MaxLength:   w.MaxLength,
			StarterCode: w.StarterCode,
			Language:    w.Language,
			Constraints: w.Constraints,
		}
		for _, ex := range w.Examples {
			q.Examples = append(q.Examples, assessment.Example{
				Input:       ex.Input,
				Output:      ex.Output,
				Explanation: ex.Explanation,
			})
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (c *Client) SubmitAnswer(ctx context.Context, assessmentID string, questionID int, ans assessment.Answer) error {
	var resp envelope
	req := map[string]any{
		"assessment_id": assessmentID,
		"question_id":   questionID,
		"answer":        answerWireValue(ans),
	}
	if err := c.post(ctx, "/api/mcq/submit-answer", true, req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &ErrInvalidResponse{Err: fmt.Errorf("submit answer: %s", resp.Error)}
	}
	return nil
}

func (c *Client) StartProctorSession(ctx context.Context, assessmentID string) (string, error) {
	var resp struct {
		envelope
		SessionID string `json:"session_id"`
	}
	req := map[string]string{"assessment_id": assessmentID}
	if err := c.post(ctx, "/api/proctor/session/start", true, req, &resp); err != nil {
		return "", err
	}
	if !resp.Success || resp.SessionID == "" {
		return "", &ErrInvalidResponse{Err: fmt.Errorf("session start rejected: %s", resp.Error)}
	}
	return resp.SessionID, nil
}

func (c *Client) EndProctorSession(ctx context.Context, sessionID string) error {
	var resp envelope
	req := map[string]string{"session_id": sessionID}
	return c.post(ctx, "/api/proctor/session/end", true, req, &resp)
}

func (c *Client) AnalyzeFrame(ctx context.Context, sessionID, imageBase64 string) (*FrameAnalysis, error) {
	var resp struct {
		envelope
		Analysis *FrameAnalysis `json:"analysis"`
	}
	req := map[string]string{"session_id": sessionID, "image": imageBase64}
	if err := c.post(ctx, "/api/proctor/analyze-frame", true, req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Analysis == nil {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("analyze frame: %s", resp.Error)}
	}
	return resp.Analysis, nil
}

func (c *Client) LogEvent(ctx context.Context, sessionID, eventType, details string) error {
	var resp envelope
	req := map[string]string{
		"session_id": sessionID,
		"event_type": eventType,
		"details":    details,
	}
	return c.post(ctx, "/api/proctor/log-event", true, req, &resp)
}

func (c *Client) RecordPlayback(ctx context.Context, sessionID string, questionID int, events []PlaybackEvent) error {
	var resp envelope
	req := map[string]any{
		"session_id":  sessionID,
		"question_id": questionID,
		"events":      events,
	}
	return c.post(ctx, "/api/playback/record", true, req, &resp)
}

// answerWireValue converts an Answer to its wire representation.
func answerWireValue(ans assessment.Answer) any {
	switch v := ans.(type) {
	case assessment.OptionAnswer:
		return int(v)
	case assessment.TextAnswer:
		return string(v)
	case assessment.RatingAnswer:
		return int(v)
	case assessment.CodeAnswer:
		return string(v)
	default:
		return nil
	}
}

func (c *Client) post(ctx context.Context, path string, auth bool, reqBody, out any) error {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, auth, body, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, true, nil, out)
}

// do runs one backend call with retry. Transient failures (network, 5xx,
// 429) back off with jitter; auth and payload errors return immediately.
func (c *Client) do(ctx context.Context, method, path string, auth bool, body []byte, out any) error {
	start := time.Now()
	status := 0
	attempts := 0

	var lastErr error
	for attempt := range c.cfg.Retry.MaxAttempts {
		attempts = attempt + 1
		status, lastErr = c.attempt(ctx, method, path, auth, body, out)
		if lastErr == nil {
			break
		}
		if !shouldRetry(lastErr) || attempt == c.cfg.Retry.MaxAttempts-1 {
			break
		}

		wait := backoff(c.cfg.Retry, attempt, lastErr)
		select {
		case <-ctx.Done():
			lastErr = ctx.Err()
		case <-time.After(wait):
			continue
		}
		break
	}

	entry := RequestLog{
		Method:    method,
		Path:      strings.SplitN(path, "?", 2)[0],
		Status:    status,
		Attempts:  attempts,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   lastErr == nil,
	}
	if lastErr != nil {
		entry.ErrorMessage = lastErr.Error()
	}
	c.logger.LogRequest(ctx, entry)

	return lastErr
}

// attempt performs a single HTTP round trip and classifies the outcome.
func (c *Client) attempt(ctx context.Context, method, path string, auth bool, body []byte, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if auth {
		if c.token == nil {
			return 0, ErrNoToken
		}
		tok, err := c.token()
		if err != nil {
			return 0, err
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, &ErrBackendUnavailable{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, &ErrBackendUnavailable{Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return resp.StatusCode, ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		return resp.StatusCode, &ErrRateLimit{
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("status 429"),
		}
	case resp.StatusCode >= 500:
		return resp.StatusCode, &ErrBackendUnavailable{Err: fmt.Errorf("status %d", resp.StatusCode)}
	case resp.StatusCode >= 400:
		return resp.StatusCode, &ErrRequestFailed{StatusCode: resp.StatusCode, Body: trimBody(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.StatusCode, &ErrInvalidResponse{Body: respBody, Err: err}
		}
	}
	return resp.StatusCode, nil
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	secs, err := strconv.Atoi(header)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func trimBody(body []byte) string {
	const max = 256
	s := string(body)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
