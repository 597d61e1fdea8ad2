// Package mastery derives coarse competence levels per topic and
// subtopic from a learner's accumulated answer history.
package mastery

// Level is a mastery classification for a topic or subtopic.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelMastered     Level = "mastered"
)

// Thresholds controls how accumulated accuracy maps to a Level.
type Thresholds struct {
	// MinAttempts is the sample size below which a bucket is always
	// beginner, regardless of accuracy.
	MinAttempts int

	// Accuracy cut points. accuracy < Intermediate is beginner,
	// < Advanced is intermediate, < Mastered is advanced, and at or
	// above Mastered is mastered.
	Intermediate float64
	Advanced     float64
	Mastered     float64
}

// DefaultThresholds returns the standard classification boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinAttempts:  5,
		Intermediate: 0.60,
		Advanced:     0.80,
		Mastered:     0.95,
	}
}

// Classify maps an accumulated (correct, total) bucket to a Level.
func Classify(correct, total int, t Thresholds) Level {
	if total < t.MinAttempts {
		return LevelBeginner
	}
	accuracy := float64(correct) / float64(total)
	switch {
	case accuracy >= t.Mastered:
		return LevelMastered
	case accuracy >= t.Advanced:
		return LevelAdvanced
	case accuracy >= t.Intermediate:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}
