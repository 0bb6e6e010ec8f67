package app

import "quiz-catalog-service/internal/domain"

// BuildAnswerKey flattens a quiz's questions into a question-id -> correct
// choice lookup. Duplicate ids overwrite silently; empty input yields an
// empty key.
func BuildAnswerKey(questions []domain.Question) domain.AnswerKey {
	key := make(domain.AnswerKey, len(questions))
	for _, q := range questions {
		key[q.ID] = q.Correct
	}
	return key
}

// Score checks submitted answers against the key and reports the result.
//
// Every submitted entry is compared to the key: a match counts toward
// Correct, a mismatch records the right choice in Corrections, and ids the
// key does not know are ignored. Total is the size of the key, so
// questions the user skipped lower the score implicitly without showing
// up in Corrections.
func Score(submitted domain.SubmittedAnswers, key domain.AnswerKey) domain.ScoreReport {
	report := domain.ScoreReport{
		Total:       len(key),
		Corrections: make(map[string]string),
	}

	for id, choice := range submitted {
		want, known := key[id]
		switch {
		case known && want == choice:
			report.Correct++
		case known:
			report.Corrections[id] = want
		}
	}
	return report
}
