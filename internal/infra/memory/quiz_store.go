package memory

import (
	"context"
	"strings"
	"sync"

	"quiz-catalog-service/internal/domain"
)

// QuizStore is an in-memory catalog (useful for tests/demos and the no-DB
// server mode). Quizzes keep insertion order so pagination is stable.
type QuizStore struct {
	mu        sync.RWMutex
	quizzes   []domain.Quiz
	questions map[string][]domain.Question
}

func NewQuizStore(quizzes []domain.Quiz, questions []domain.Question) *QuizStore {
	store := &QuizStore{
		questions: make(map[string][]domain.Question),
	}
	store.quizzes = append(store.quizzes, quizzes...)
	for _, q := range questions {
		store.questions[q.QuizID] = append(store.questions[q.QuizID], q)
	}
	return store
}

// SearchQuizzes applies keyword and difficulty filtering, then slices out
// the requested page. Every keyword must match the quiz name or one of its
// tags, case-insensitively. Excluded difficulties are dropped (not-in
// semantics, mirroring the wire contract).
func (s *QuizStore) SearchQuizzes(_ context.Context, desc domain.QueryDescriptor) ([]domain.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.Quiz, 0, len(s.quizzes))
	for _, quiz := range s.quizzes {
		if excluded(quiz.Difficulty, desc.ExcludedDifficulties) {
			continue
		}
		if !matchesKeywords(quiz, desc.Keywords) {
			continue
		}
		matched = append(matched, quiz)
	}

	offset := desc.Offset()
	if offset >= len(matched) {
		return []domain.Quiz{}, nil
	}
	matched = matched[offset:]
	if desc.Limit > 0 && len(matched) > desc.Limit {
		matched = matched[:desc.Limit]
	}
	out := make([]domain.Quiz, len(matched))
	copy(out, matched)
	return out, nil
}

// QuestionsByQuiz returns the questions owned by the quiz; unknown ids
// yield an empty slice, never an error.
func (s *QuizStore) QuestionsByQuiz(_ context.Context, quizID string) ([]domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	questions := s.questions[quizID]
	out := make([]domain.Question, len(questions))
	copy(out, questions)
	return out, nil
}

func excluded(d domain.Difficulty, excludedSet []domain.Difficulty) bool {
	for _, e := range excludedSet {
		if d == e {
			return true
		}
	}
	return false
}

func matchesKeywords(quiz domain.Quiz, keywords []string) bool {
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if kw == "" {
			continue
		}
		if strings.Contains(strings.ToLower(quiz.Name), kw) {
			continue
		}
		found := false
		for _, tag := range quiz.Tags {
			if strings.Contains(strings.ToLower(tag), kw) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
