package catalog

// QuestionSet is an ordered, named collection of questions. Catalog
// sets are static and live inside a QuestionBank; generated sets are
// built on demand and never persisted.
type QuestionSet struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Subject     string     `json:"subject"`
	Grade       string     `json:"grade"`
	Topic       string     `json:"topic"`
	Subtopic    string     `json:"subtopic,omitempty"`
	Questions   []Question `json:"questions"`

	// Derived at construction from Questions.
	TotalPoints   int        `json:"totalPoints"`
	EstimatedTime int        `json:"estimatedTime"` // seconds
	Difficulty    Difficulty `json:"difficulty"`
}

// QuestionBank groups a subject's catalog sets. Banks are loaded once
// at process start and never mutated.
type QuestionBank struct {
	Subject string        `json:"subject"`
	Sets    []QuestionSet `json:"sets"`
}

// ComputeAggregates fills the derived fields of a set from its
// questions.
func (s *QuestionSet) ComputeAggregates() {
	s.TotalPoints = 0
	s.EstimatedTime = 0
	for _, q := range s.Questions {
		s.TotalPoints += q.Points
		s.EstimatedTime += q.TimeEstimate
	}
	s.Difficulty = AggregateDifficulty(s.Questions)
}

// AggregateDifficulty reduces a question list to one overall
// difficulty: average the weights, then bucket with cut points at
// 1.5 and 2.5. An empty list reports medium.
func AggregateDifficulty(questions []Question) Difficulty {
	if len(questions) == 0 {
		return DifficultyMedium
	}
	sum := 0
	for _, q := range questions {
		sum += q.Difficulty.Weight()
	}
	avg := float64(sum) / float64(len(questions))
	switch {
	case avg < 1.5:
		return DifficultyEasy
	case avg > 2.5:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}
