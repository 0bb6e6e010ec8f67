package client

import (
	"context"

	"quiz-catalog-service/internal/domain"
)

// SessionAPI is the slice of the transport a quiz attempt needs.
type SessionAPI interface {
	FetchQuestions(ctx context.Context, quizID string) ([]domain.Question, error)
	SubmitAnswers(ctx context.Context, quizID string, answers domain.SubmittedAnswers) (domain.ScoreReport, error)
}

// Session drives a single quiz attempt: load the questions, track answers
// and the cursor, gate submission, hold the score report. A session whose
// load returned zero questions is Empty and stays that way; Reset after a
// submission clears answers and the report but keeps the loaded questions
// so a retry needs no re-fetch.
//
// Sessions expect the cooperative single-threaded usage a UI event loop
// provides; they are not safe for concurrent use.
type Session struct {
	api    SessionAPI
	quizID string

	questions map[string]domain.Question
	order     []string
	index     int
	answers   domain.SubmittedAnswers

	loading        bool
	loaded         bool
	submitted      bool
	confirmPending bool
	report         domain.ScoreReport
}

func NewSession(quizID string, api SessionAPI) *Session {
	return &Session{
		api:       api,
		quizID:    quizID,
		questions: make(map[string]domain.Question),
		answers:   make(domain.SubmittedAnswers),
	}
}

// Load fetches the attempt's questions. A session that already loaded is
// left untouched, so a retry after Reset never re-fetches. The loading
// flag is cleared on every exit path; on failure the session stays in its
// pre-load state so the caller can try again.
func (s *Session) Load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	s.loading = true
	questions, err := s.api.FetchQuestions(ctx, s.quizID)
	s.loading = false
	if err != nil {
		return err
	}

	for _, q := range questions {
		if _, seen := s.questions[q.ID]; !seen {
			s.order = append(s.order, q.ID)
		}
		s.questions[q.ID] = q
	}
	s.loaded = true
	return nil
}

// Loading reports whether a fetch or submission is in flight.
func (s *Session) Loading() bool { return s.loading }

// Empty reports whether loading finished with zero questions.
func (s *Session) Empty() bool { return s.loaded && len(s.order) == 0 }

// Length returns the number of questions in the attempt.
func (s *Session) Length() int { return len(s.order) }

// CurrentIndex returns the cursor position.
func (s *Session) CurrentIndex() int { return s.index }

// Current returns the question under the cursor.
func (s *Session) Current() (domain.Question, bool) {
	if s.index < 0 || s.index >= len(s.order) {
		return domain.Question{}, false
	}
	return s.questions[s.order[s.index]], true
}

// Next advances the cursor, stopping at the last question.
func (s *Session) Next() {
	if s.index < len(s.order)-1 {
		s.index++
	}
}

// Prev moves the cursor back, stopping at the first question.
func (s *Session) Prev() {
	if s.index > 0 {
		s.index--
	}
}

// Seek jumps to the question at i, clamped to [0, Length-1].
func (s *Session) Seek(i int) {
	if len(s.order) == 0 {
		s.index = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(s.order) {
		i = len(s.order) - 1
	}
	s.index = i
}

// Answer records the user's choice for a question. Ids that are not part
// of the attempt are ignored.
func (s *Session) Answer(questionID, choice string) {
	if _, ok := s.questions[questionID]; !ok {
		return
	}
	s.answers[questionID] = choice
}

// AnswerCurrent records the choice for the question under the cursor.
func (s *Session) AnswerCurrent(choice string) {
	if s.index >= 0 && s.index < len(s.order) {
		s.answers[s.order[s.index]] = choice
	}
}

// Answers returns a copy of the recorded answers.
func (s *Session) Answers() domain.SubmittedAnswers {
	out := make(domain.SubmittedAnswers, len(s.answers))
	for id, choice := range s.answers {
		out[id] = choice
	}
	return out
}

// AnsweredCount returns how many questions have an answer.
func (s *Session) AnsweredCount() int { return len(s.answers) }

// Remaining returns how many questions are still unanswered.
func (s *Session) Remaining() int { return len(s.order) - len(s.answers) }

// CompleteRate returns answered progress as a whole percentage, 0 while
// loading or when no questions are loaded.
func (s *Session) CompleteRate() int {
	if len(s.order) == 0 || s.loading {
		return 0
	}
	return len(s.answers) * 100 / len(s.order)
}

// RequestSubmit is the submit-button path. With unanswered questions it
// raises the confirmation gate instead of submitting and reports false;
// otherwise it submits and reports true on success.
func (s *Session) RequestSubmit(ctx context.Context) (bool, error) {
	if s.Remaining() != 0 {
		s.confirmPending = true
		return false, nil
	}
	if err := s.submit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// ConfirmationPending reports whether a partial submission awaits the
// user's confirmation.
func (s *Session) ConfirmationPending() bool { return s.confirmPending }

// ConfirmSubmit completes a gated partial submission.
func (s *Session) ConfirmSubmit(ctx context.Context) error {
	s.confirmPending = false
	return s.submit(ctx)
}

// DismissConfirmation cancels the pending confirmation gate.
func (s *Session) DismissConfirmation() { s.confirmPending = false }

func (s *Session) submit(ctx context.Context) error {
	s.loading = true
	report, err := s.api.SubmitAnswers(ctx, s.quizID, s.Answers())
	s.loading = false
	if err != nil {
		return err
	}
	s.report = report
	s.submitted = true
	return nil
}

// Submitted reports whether a score report is available.
func (s *Session) Submitted() bool { return s.submitted }

// Report returns the score report of the last submission.
func (s *Session) Report() domain.ScoreReport { return s.report }

// Reset returns a submitted session to the active state for a retry:
// answers cleared, cursor zeroed, report dropped, questions retained.
func (s *Session) Reset() {
	s.index = 0
	s.answers = make(domain.SubmittedAnswers)
	s.submitted = false
	s.confirmPending = false
	s.report = domain.ScoreReport{}
}
