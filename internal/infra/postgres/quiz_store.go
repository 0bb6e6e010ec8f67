package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"quiz-catalog-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// QuizStore serves the catalog from Postgres.
type QuizStore struct {
	pool *pgxpool.Pool
}

func NewQuizStore(pool *pgxpool.Pool) *QuizStore {
	return &QuizStore{pool: pool}
}

// SearchQuizzes filters by keyword and excluded difficulties (not-in
// semantics) and returns one page ordered by creation time.
func (s *QuizStore) SearchQuizzes(ctx context.Context, desc domain.QueryDescriptor) ([]domain.Quiz, error) {
	var (
		conds []string
		args  []interface{}
	)

	if len(desc.ExcludedDifficulties) > 0 {
		excluded := make([]string, len(desc.ExcludedDifficulties))
		for i, d := range desc.ExcludedDifficulties {
			excluded[i] = string(d)
		}
		args = append(args, excluded)
		conds = append(conds, fmt.Sprintf("NOT (difficulty = ANY($%d))", len(args)))
	}

	for _, kw := range desc.Keywords {
		if kw == "" {
			continue
		}
		args = append(args, "%"+kw+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(name ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE $%d))", n, n))
	}

	query := `SELECT id, name, difficulty, length, tags FROM quizzes`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at, id"
	if desc.Limit > 0 {
		args = append(args, desc.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, desc.Offset())
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := []domain.Quiz{}
	for rows.Next() {
		var (
			quiz       domain.Quiz
			difficulty string
		)
		if err := rows.Scan(&quiz.ID, &quiz.Name, &difficulty, &quiz.Length, &quiz.Tags); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		quiz.Difficulty = domain.Difficulty(difficulty)
		quizzes = append(quizzes, quiz)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search quizzes: %w", err)
	}
	return quizzes, nil
}

// QuestionsByQuiz loads every question owned by the quiz, answer set
// included. An unknown quiz id yields an empty slice.
func (s *QuizStore) QuestionsByQuiz(ctx context.Context, quizID string) ([]domain.Question, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, quiz_id, question, answers, correct, type, media FROM questions WHERE quiz_id=$1 ORDER BY created_at, id`,
		quizID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	defer rows.Close()

	questions := []domain.Question{}
	for rows.Next() {
		var (
			q           domain.Question
			raw         []byte
			kind, media string
		)
		if err := rows.Scan(&q.ID, &q.QuizID, &q.Prompt, &raw, &q.Correct, &kind, &media); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.Type = domain.QuestionType(kind)
		q.Media = domain.MediaKind(media)
		if err := json.Unmarshal(raw, &q.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return questions, nil
}

// InsertQuiz writes a catalog entry; used by the seeder and tests.
func (s *QuizStore) InsertQuiz(ctx context.Context, quiz domain.Quiz) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO quizzes (id, name, difficulty, length, tags) VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, difficulty=EXCLUDED.difficulty, length=EXCLUDED.length, tags=EXCLUDED.tags`,
		quiz.ID, quiz.Name, string(quiz.Difficulty), quiz.Length, quiz.Tags)
	if err != nil {
		return fmt.Errorf("insert quiz: %w", err)
	}
	return nil
}

// InsertQuestion writes a question under its quiz.
func (s *QuizStore) InsertQuestion(ctx context.Context, q domain.Question) error {
	answers, err := json.Marshal(q.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO questions (id, quiz_id, question, answers, correct, type, media) VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO NOTHING`,
		q.ID, q.QuizID, q.Prompt, answers, q.Correct, string(q.Type), string(q.Media))
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}
