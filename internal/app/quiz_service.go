package app

import (
	"context"

	"quiz-catalog-service/internal/domain"
)

// QuizStore abstracts how catalog content is persisted (Postgres, in-memory).
type QuizStore interface {
	SearchQuizzes(ctx context.Context, desc domain.QueryDescriptor) ([]domain.Quiz, error)
	QuestionsByQuiz(ctx context.Context, quizID string) ([]domain.Question, error)
}

// AnswerKeyRepository resolves the answer key for a quiz, typically through
// a cache (Redis or in-memory) in front of the store.
type AnswerKeyRepository interface {
	GetAnswerKey(ctx context.Context, quizID string) (domain.AnswerKey, error)
}

// QuizService contains the catalog and scoring use cases.
type QuizService struct {
	quizzes QuizStore
	keys    AnswerKeyRepository
}

func NewQuizService(quizzes QuizStore, keys AnswerKeyRepository) *QuizService {
	return &QuizService{quizzes: quizzes, keys: keys}
}

// SearchQuizzes returns the catalog page matching the descriptor. An
// unknown keyword or an exclude-everything filter yields an empty slice,
// not an error.
func (s *QuizService) SearchQuizzes(ctx context.Context, desc domain.QueryDescriptor) ([]domain.Quiz, error) {
	if desc.Page < 1 {
		desc.Page = 1
	}
	return s.quizzes.SearchQuizzes(ctx, desc)
}

// QuizQuestions returns every question belonging to the quiz. A malformed
// id returns domain.ErrInvalidQuizID; a well-formed id with no questions
// returns an empty slice.
func (s *QuizService) QuizQuestions(ctx context.Context, quizID string) ([]domain.Question, error) {
	if !domain.ValidQuizID(quizID) {
		return nil, domain.ErrInvalidQuizID
	}
	return s.quizzes.QuestionsByQuiz(ctx, quizID)
}

// SubmitAnswers scores the submitted answer set against the quiz's answer
// key. A malformed id returns domain.ErrInvalidQuizID and a nil answer set
// domain.ErrMissingAnswers; scoring a quiz with no questions is
// meaningless and returns domain.ErrNoQuestions.
func (s *QuizService) SubmitAnswers(ctx context.Context, quizID string, submitted domain.SubmittedAnswers) (domain.ScoreReport, error) {
	if !domain.ValidQuizID(quizID) {
		return domain.ScoreReport{}, domain.ErrInvalidQuizID
	}
	if submitted == nil {
		return domain.ScoreReport{}, domain.ErrMissingAnswers
	}
	key, err := s.keys.GetAnswerKey(ctx, quizID)
	if err != nil {
		return domain.ScoreReport{}, err
	}
	if len(key) == 0 {
		return domain.ScoreReport{}, domain.ErrNoQuestions
	}
	return Score(submitted, key), nil
}

// StoreKeyLoader builds answer keys straight from a QuizStore. It is the
// loader the caches fall back to on a miss.
type StoreKeyLoader struct {
	store QuizStore
}

func NewStoreKeyLoader(store QuizStore) *StoreKeyLoader {
	return &StoreKeyLoader{store: store}
}

func (l *StoreKeyLoader) LoadAnswerKey(ctx context.Context, quizID string) (domain.AnswerKey, error) {
	questions, err := l.store.QuestionsByQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	return BuildAnswerKey(questions), nil
}
