package cli

import "quiz-catalog-service/internal/domain"

const sampleQuizID = "5f1cc728671d9165b0ee2f64"

// sampleCatalog is the fixed data set used when no database is configured,
// and the deterministic portion of the seeder. The first quiz is fully
// playable; the rest only populate the listing.
func sampleCatalog() ([]domain.Quiz, []domain.Question) {
	quizzes := []domain.Quiz{
		{
			ID:         sampleQuizID,
			Name:       "JavaScript Basics",
			Difficulty: domain.DifficultyEasy,
			Length:     10,
			Tags:       []string{"JavaScript", "Basics"},
		},
		{
			ID:         "64b7f0a1c2d3e4f5a6b7c8d9",
			Name:       "Go Concurrency",
			Difficulty: domain.DifficultyHard,
			Length:     12,
			Tags:       []string{"Go", "Concurrency"},
		},
		{
			ID:         "64b7f0a1c2d3e4f5a6b7c8da",
			Name:       "SQL Fundamentals",
			Difficulty: domain.DifficultyMedium,
			Length:     8,
			Tags:       []string{"SQL", "Fundamentals"},
		},
	}

	questions := []domain.Question{
		{
			ID: "q01", QuizID: sampleQuizID,
			Prompt:  "Which keyword declares a block-scoped variable?",
			Answers: map[string]string{"0": "var", "1": "let", "2": "function", "3": "scope"},
			Correct: "1", Type: domain.TypeSelectSingle, Media: domain.MediaNone,
		},
		{
			ID: "q02", QuizID: sampleQuizID,
			Prompt:  "typeof null evaluates to \"object\".",
			Answers: map[string]string{"0": "True", "1": "False"},
			Correct: "0", Type: domain.TypeTrueFalse, Media: domain.MediaNone,
		},
		{
			ID: "q03", QuizID: sampleQuizID,
			Prompt:  "What does this snippet log?",
			Answers: map[string]string{"0": "undefined", "1": "null", "2": "ReferenceError", "3": "NaN"},
			Correct: "0", Type: domain.TypeSelectSingle, Media: domain.MediaCode,
		},
		{
			ID: "q04", QuizID: sampleQuizID,
			Prompt:  "Which method adds an element to the end of an array?",
			Answers: map[string]string{"0": "shift", "1": "unshift", "2": "push", "3": "pop"},
			Correct: "2", Type: domain.TypeSelectSingle, Media: domain.MediaNone,
		},
		{
			ID: "q05", QuizID: sampleQuizID,
			Prompt:  "Arrow functions bind their own this.",
			Answers: map[string]string{"0": "True", "1": "False"},
			Correct: "1", Type: domain.TypeTrueFalse, Media: domain.MediaNone,
		},
		{
			ID: "q06", QuizID: sampleQuizID,
			Prompt:  "Which of these are falsy values?",
			Answers: map[string]string{"0": "0, \"\", null", "1": "1, \"a\", []", "2": "{}, [], \"0\"", "3": "Infinity, -1"},
			Correct: "0", Type: domain.TypeSelectMultiple, Media: domain.MediaNone,
		},
		{
			ID: "q07", QuizID: sampleQuizID,
			Prompt:  "What operator checks equality without type coercion?",
			Answers: map[string]string{"0": "==", "1": "===", "2": "=", "3": "!="},
			Correct: "1", Type: domain.TypeSelectSingle, Media: domain.MediaNone,
		},
		{
			ID: "q08", QuizID: sampleQuizID,
			Prompt:  "Identify the element shown in the screenshot.",
			Answers: map[string]string{"0": "button", "1": "input", "2": "select", "3": "textarea"},
			Correct: "2", Type: domain.TypeSelectSingle, Media: domain.MediaImage,
		},
		{
			ID: "q09", QuizID: sampleQuizID,
			Prompt:  "JSON.parse reverses JSON.stringify for plain objects.",
			Answers: map[string]string{"0": "True", "1": "False"},
			Correct: "0", Type: domain.TypeTrueFalse, Media: domain.MediaNone,
		},
		{
			ID: "q10", QuizID: sampleQuizID,
			Prompt:  "Which call schedules a task after the current call stack?",
			Answers: map[string]string{"0": "setTimeout(fn, 0)", "1": "fn()", "2": "return fn", "3": "delete fn"},
			Correct: "0", Type: domain.TypeSelectSingle, Media: domain.MediaNone,
		},
	}

	return quizzes, questions
}
