// Package client implements the quiz-taking flow against the catalog API:
// query-state and pagination controllers for the quiz listing, a session
// controller for a single attempt, and a timeout-bound HTTP transport.
//
// The controllers are plain structs wired together by the caller; they are
// designed for the single-threaded event-loop usage a UI gives them, and
// the pager additionally tolerates overlapping triggers (see Pager).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"quiz-catalog-service/internal/domain"
)

// DefaultTimeout bounds every request; on expiry the call resolves into
// the "Request Timed Out" error path.
const DefaultTimeout = 30 * time.Second

// Client is the HTTP transport for the quiz API. Failures surface as
// descriptive errors in a fixed taxonomy: "HTTP Error {status}:
// {statusText}" for non-200 responses, "Request Timed Out" for
// deadline/abort, "Fetch Error: {err}" for anything else.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient substitutes the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type quizzesEnvelope struct {
	Results []domain.Quiz `json:"results"`
}

type questionsEnvelope struct {
	Results []domain.Question `json:"results"`
}

type submitEnvelope struct {
	Answers domain.SubmittedAnswers `json:"answers"`
}

// FetchQuizzes loads one catalog page. rawQuery is the pre-encoded query
// string produced by QueryState, "?page=..." included.
func (c *Client) FetchQuizzes(ctx context.Context, rawQuery string) ([]domain.Quiz, error) {
	var out quizzesEnvelope
	if err := c.get(ctx, "/api/quizzes"+rawQuery, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// FetchQuestions loads every question of a quiz. The server never includes
// the correct choice on this endpoint.
func (c *Client) FetchQuestions(ctx context.Context, quizID string) ([]domain.Question, error) {
	var out questionsEnvelope
	if err := c.get(ctx, "/api/quiz/"+quizID, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// SubmitAnswers sends the answer set for scoring and returns the report.
func (c *Client) SubmitAnswers(ctx context.Context, quizID string, answers domain.SubmittedAnswers) (domain.ScoreReport, error) {
	body, err := json.Marshal(submitEnvelope{Answers: answers})
	if err != nil {
		return domain.ScoreReport{}, fmt.Errorf("Fetch Error: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/quiz/"+quizID, bytes.NewReader(body))
	if err != nil {
		return domain.ScoreReport{}, fmt.Errorf("Fetch Error: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var report domain.ScoreReport
	if err := c.do(req, &report); err != nil {
		return domain.ScoreReport{}, err
	}
	return report, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("Fetch Error: %v", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return errors.New("Request Timed Out")
		}
		return fmt.Errorf("Fetch Error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP Error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("Fetch Error: %v", err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
