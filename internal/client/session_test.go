package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"quiz-catalog-service/internal/domain"
)

type fakeSessionAPI struct {
	questions    []domain.Question
	fetchErr     error
	submitErr    error
	report       domain.ScoreReport
	submissions  []domain.SubmittedAnswers
	fetchedQuiz  string
	fetchCalled  int
	submitCalled int
}

func (f *fakeSessionAPI) FetchQuestions(ctx context.Context, quizID string) ([]domain.Question, error) {
	f.fetchedQuiz = quizID
	f.fetchCalled++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.questions, nil
}

func (f *fakeSessionAPI) SubmitAnswers(ctx context.Context, quizID string, answers domain.SubmittedAnswers) (domain.ScoreReport, error) {
	f.submitCalled++
	f.submissions = append(f.submissions, answers)
	if f.submitErr != nil {
		return domain.ScoreReport{}, f.submitErr
	}
	return f.report, nil
}

func sessionQuestions(n int) []domain.Question {
	out := make([]domain.Question, n)
	for i := range out {
		out[i] = domain.Question{
			ID:      fmt.Sprintf("q%d", i),
			QuizID:  "5f1cc728671d9165b0ee2f64",
			Prompt:  fmt.Sprintf("question %d", i),
			Answers: map[string]string{"0": "a", "1": "b"},
			Type:    domain.TypeSelectSingle,
		}
	}
	return out
}

func loadedSession(t *testing.T, api *fakeSessionAPI) *Session {
	t.Helper()
	s := NewSession("5f1cc728671d9165b0ee2f64", api)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return s
}

func TestSessionLoad(t *testing.T) {
	api := &fakeSessionAPI{questions: sessionQuestions(5)}
	s := loadedSession(t, api)

	if api.fetchedQuiz != "5f1cc728671d9165b0ee2f64" {
		t.Fatalf("fetched wrong quiz %q", api.fetchedQuiz)
	}
	if s.Length() != 5 {
		t.Fatalf("expected 5 questions, got %d", s.Length())
	}
	if s.Loading() {
		t.Fatalf("loading must be cleared after load")
	}
	if s.Empty() {
		t.Fatalf("session with questions must not be empty")
	}
	if q, ok := s.Current(); !ok || q.ID != "q0" {
		t.Fatalf("cursor should start at the first question, got %+v ok=%v", q, ok)
	}
}

func TestSessionLoadIsIdempotent(t *testing.T) {
	api := &fakeSessionAPI{questions: sessionQuestions(3)}
	s := loadedSession(t, api)
	s.Answer("q0", "1")

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if api.fetchCalled != 1 {
		t.Fatalf("loaded session must not re-fetch, saw %d fetches", api.fetchCalled)
	}
	if s.Length() != 3 || s.AnsweredCount() != 1 {
		t.Fatalf("second load must leave the session untouched")
	}
}

func TestSessionLoadError(t *testing.T) {
	api := &fakeSessionAPI{fetchErr: errors.New("HTTP Error 500: Internal Server Error")}
	s := NewSession("5f1cc728671d9165b0ee2f64", api)

	if err := s.Load(context.Background()); err == nil {
		t.Fatalf("expected load error")
	}
	if s.Loading() {
		t.Fatalf("loading must be cleared on failure")
	}
	if s.Empty() {
		t.Fatalf("a failed load is not an empty quiz")
	}
}

func TestSessionEmptyQuiz(t *testing.T) {
	api := &fakeSessionAPI{}
	s := loadedSession(t, api)

	if !s.Empty() {
		t.Fatalf("zero questions after a successful load means empty")
	}
	if s.CompleteRate() != 0 {
		t.Fatalf("empty session completion must be 0, got %d", s.CompleteRate())
	}
}

func TestSessionNavigationClamped(t *testing.T) {
	api := &fakeSessionAPI{questions: sessionQuestions(3)}
	s := loadedSession(t, api)

	s.Prev()
	if s.CurrentIndex() != 0 {
		t.Fatalf("prev at the first question must clamp, got %d", s.CurrentIndex())
	}
	s.Next()
	s.Next()
	s.Next()
	if s.CurrentIndex() != 2 {
		t.Fatalf("next at the last question must clamp, got %d", s.CurrentIndex())
	}
	s.Seek(-4)
	if s.CurrentIndex() != 0 {
		t.Fatalf("seek below range must clamp to 0, got %d", s.CurrentIndex())
	}
	s.Seek(99)
	if s.CurrentIndex() != 2 {
		t.Fatalf("seek past range must clamp to the end, got %d", s.CurrentIndex())
	}
}

func TestSessionProgress(t *testing.T) {
	api := &fakeSessionAPI{questions: sessionQuestions(10)}
	s := loadedSession(t, api)

	if s.Remaining() != 10 {
		t.Fatalf("expected 10 remaining, got %d", s.Remaining())
	}
	s.Answer("q0", "1")
	s.Answer("q1", "0")
	s.Answer("q2", "1")
	if s.Remaining() != 7 {
		t.Fatalf("expected 7 remaining, got %d", s.Remaining())
	}
	if s.CompleteRate() != 30 {
		t.Fatalf("expected 30%%, got %d", s.CompleteRate())
	}

	// Overwriting an answer does not change progress.
	s.Answer("q0", "0")
	if s.AnsweredCount() != 3 {
		t.Fatalf("expected 3 answered, got %d", s.AnsweredCount())
	}

	// Answers for unknown questions are dropped.
	s.Answer("ghost", "1")
	if s.AnsweredCount() != 3 {
		t.Fatalf("unknown question id must be ignored, got %d answered", s.AnsweredCount())
	}
}

func TestSessionAnswerCurrent(t *testing.T) {
	api := &fakeSessionAPI{questions: sessionQuestions(3)}
	s := loadedSession(t, api)

	s.Next()
	s.AnswerCurrent("1")
	answers := s.Answers()
	if answers["q1"] != "1" {
		t.Fatalf("expected answer recorded for q1, got %v", answers)
	}
}

func TestSessionSubmitComplete(t *testing.T) {
	api := &fakeSessionAPI{
		questions: sessionQuestions(2),
		report:    domain.ScoreReport{Correct: 1, Total: 2, Corrections: map[string]string{"q1": "0"}},
	}
	s := loadedSession(t, api)
	s.Answer("q0", "1")
	s.Answer("q1", "1")

	ok, err := s.RequestSubmit(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("complete attempt must submit without confirmation")
	}
	if !s.Submitted() {
		t.Fatalf("session should be submitted")
	}
	if got := s.Report(); got.Correct != 1 || got.Total != 2 || got.Corrections["q1"] != "0" {
		t.Fatalf("unexpected report %+v", got)
	}
	if len(api.submissions) != 1 || api.submissions[0]["q0"] != "1" {
		t.Fatalf("unexpected submission payload %v", api.submissions)
	}
}

func TestSessionSubmitPartialNeedsConfirmation(t *testing.T) {
	api := &fakeSessionAPI{
		questions: sessionQuestions(3),
		report:    domain.ScoreReport{Correct: 1, Total: 3, Corrections: map[string]string{}},
	}
	s := loadedSession(t, api)
	s.Answer("q0", "1")

	ok, err := s.RequestSubmit(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("partial attempt must not submit directly")
	}
	if !s.ConfirmationPending() {
		t.Fatalf("confirmation gate should be raised")
	}
	if api.submitCalled != 0 {
		t.Fatalf("gated request must not hit the transport")
	}

	if err := s.ConfirmSubmit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ConfirmationPending() {
		t.Fatalf("confirmation gate should be lowered")
	}
	if !s.Submitted() || api.submitCalled != 1 {
		t.Fatalf("confirmed partial attempt should submit once")
	}
}

func TestSessionDismissConfirmation(t *testing.T) {
	api := &fakeSessionAPI{questions: sessionQuestions(3)}
	s := loadedSession(t, api)

	s.RequestSubmit(context.Background())
	s.DismissConfirmation()
	if s.ConfirmationPending() {
		t.Fatalf("dismissed gate should be lowered")
	}
	if api.submitCalled != 0 || s.Submitted() {
		t.Fatalf("dismissing must not submit")
	}
}

func TestSessionSubmitError(t *testing.T) {
	api := &fakeSessionAPI{
		questions: sessionQuestions(1),
		submitErr: errors.New("Request Timed Out"),
	}
	s := loadedSession(t, api)
	s.Answer("q0", "1")

	if _, err := s.RequestSubmit(context.Background()); err == nil {
		t.Fatalf("expected submit error")
	}
	if s.Submitted() {
		t.Fatalf("failed submission must not mark the session submitted")
	}
	if s.Loading() {
		t.Fatalf("loading must be cleared on failure")
	}
}

func TestSessionResetKeepsQuestions(t *testing.T) {
	api := &fakeSessionAPI{
		questions: sessionQuestions(2),
		report:    domain.ScoreReport{Correct: 2, Total: 2, Corrections: map[string]string{}},
	}
	s := loadedSession(t, api)
	s.Answer("q0", "1")
	s.Answer("q1", "0")
	if _, err := s.RequestSubmit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Reset()
	if s.Submitted() {
		t.Fatalf("reset must clear submitted state")
	}
	if s.AnsweredCount() != 0 {
		t.Fatalf("reset must clear answers, got %d", s.AnsweredCount())
	}
	if s.CurrentIndex() != 0 {
		t.Fatalf("reset must rewind the cursor, got %d", s.CurrentIndex())
	}
	if s.Length() != 2 {
		t.Fatalf("reset must keep loaded questions, got %d", s.Length())
	}
	if api.fetchedQuiz != "5f1cc728671d9165b0ee2f64" {
		t.Fatalf("unexpected fetch state")
	}
}
