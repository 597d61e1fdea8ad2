package catalog

// Difficulty classifies how hard a question is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Weight maps a difficulty to its numeric weight for aggregation
// and scoring (easy=1, medium=2, hard=3).
func (d Difficulty) Weight() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 3
	default:
		return 2
	}
}

// QuestionType classifies how a question is answered.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeShortAnswer    QuestionType = "short-answer"
	TypeTrueFalse      QuestionType = "true-false"
)

// Question is a single catalog question. Questions are immutable once
// loaded; the repository owns them and hands out copies.
type Question struct {
	ID           string       `json:"id"`
	Prompt       string       `json:"prompt"`
	Options      []string     `json:"options,omitempty"`
	Answer       string       `json:"answer"`
	Topic        string       `json:"topic"`
	Subtopic     string       `json:"subtopic,omitempty"`
	Difficulty   Difficulty   `json:"difficulty"`
	Type         QuestionType `json:"type"`
	Points       int          `json:"points"`
	TimeEstimate int          `json:"timeEstimate"` // seconds
}
