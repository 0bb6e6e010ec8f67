package domain

import "regexp"

// Difficulty is the fixed three-value rating attached to every quiz.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the valid values in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether d is one of the three known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// QuestionType describes how a question is presented.
type QuestionType string

const (
	TypeSelectSingle   QuestionType = "Select Single"
	TypeTrueFalse      QuestionType = "True/False"
	TypeSelectMultiple QuestionType = "Select Multiple"
)

// MediaKind describes optional media attached to a question prompt.
type MediaKind string

const (
	MediaNone  MediaKind = "None"
	MediaImage MediaKind = "Image"
	MediaCode  MediaKind = "Code"
)

// Quiz is the catalog entry for a named collection of questions.
// Questions reference their quiz by id; the quiz does not embed them.
type Quiz struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Difficulty Difficulty `json:"difficulty"`
	Length     int        `json:"length"`
	Tags       []string   `json:"tags"`
}

// Question is a single prompt with a choice-key -> choice-text answer set
// and a designated correct choice. Correct never leaves the server on
// question-listing responses.
type Question struct {
	ID      string            `json:"id"`
	QuizID  string            `json:"quizId"`
	Prompt  string            `json:"question"`
	Answers map[string]string `json:"answers"`
	Correct string            `json:"correct,omitempty"`
	Type    QuestionType      `json:"type"`
	Media   MediaKind         `json:"media"`
}

// AnswerKey maps question id to the correct choice key. It is built fresh
// per scoring request and never persisted.
type AnswerKey map[string]string

// SubmittedAnswers maps question id to the choice the user picked.
type SubmittedAnswers map[string]string

// ScoreReport is the outcome of checking submitted answers against a key.
// Corrections holds the correct choice for every question the user
// answered incorrectly; unanswered questions are not listed.
type ScoreReport struct {
	Correct     int               `json:"correct"`
	Total       int               `json:"total"`
	Corrections map[string]string `json:"corrections"`
}

// QueryDescriptor is the canonical parameter set for a catalog search.
type QueryDescriptor struct {
	Page                 int
	Limit                int
	Keywords             []string
	ExcludedDifficulties []Difficulty
}

// Offset returns the row offset implied by Page and Limit.
func (d QueryDescriptor) Offset() int {
	page := d.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * d.Limit
}

var quizIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ValidQuizID reports whether id has the 24-character hex shape every
// stored quiz id carries.
func ValidQuizID(id string) bool {
	return quizIDPattern.MatchString(id)
}
