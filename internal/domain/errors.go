package domain

import "errors"

var (
	// ErrInvalidQuizID is returned when an id does not match the 24-hex shape.
	ErrInvalidQuizID = errors.New("invalid quiz id")
	// ErrNoQuestions is returned when scoring is requested for a quiz with no questions.
	ErrNoQuestions = errors.New("no questions associated with quiz")
	// ErrMissingAnswers is returned when a scoring request carries no answer set.
	ErrMissingAnswers = errors.New("no answers in request body")
)
