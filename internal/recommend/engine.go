// Package recommend selects personalized question sets by combining
// mastery levels with a difficulty-weighted scoring heuristic.
package recommend

import (
	"context"
	"math/rand"
	"sort"

	"github.com/meera/quizbank/internal/catalog"
	"github.com/meera/quizbank/internal/mastery"
	"github.com/meera/quizbank/internal/progress"
)

// DefaultCount is the number of questions recommended when the caller
// doesn't ask for a specific count.
const DefaultCount = 10

// learnedThreshold is the correct-answer count at which a question is
// considered sufficiently learned and dropped from recommendations.
const learnedThreshold = 2

// unknownScore is the priority for questions whose topic has no
// mastery record yet: higher than any known level.
const unknownScore = 5

// ProgressSource loads a user's progress document; nil means no prior
// activity.
type ProgressSource interface {
	Load(ctx context.Context, userID string) (*progress.UserProgress, error)
}

// Engine ranks a subject's questions for one user. It never mutates
// state; it only reads the catalog and the progress source.
type Engine struct {
	repo   *catalog.Repository
	source ProgressSource
	rng    *rand.Rand
}

// New creates an engine. rng drives sampling and tie-breaking.
func New(repo *catalog.Repository, source ProgressSource, rng *rand.Rand) *Engine {
	return &Engine{repo: repo, source: source, rng: rng}
}

// RecommendedQuestions returns up to count questions for the user,
// highest priority first. Users with no history get a uniform random
// sample of the subject. Questions answered correctly at least twice
// are excluded unless dropping them would starve the pool, in which
// case a random sample of them tops the pool back up. Tied scores
// order randomly between runs.
func (e *Engine) RecommendedQuestions(ctx context.Context, userID, subject string, count int) ([]catalog.Question, error) {
	if count <= 0 {
		count = DefaultCount
	}

	up, err := e.source.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	all := e.repo.SubjectQuestions(subject)
	if len(all) == 0 {
		return nil, nil
	}

	if up == nil {
		return e.sample(all, count), nil
	}

	var candidates, learned []catalog.Question
	for _, q := range all {
		if rec, ok := up.AnsweredRecord(q.ID); ok && rec.TimesCorrect >= learnedThreshold {
			learned = append(learned, q)
			continue
		}
		candidates = append(candidates, q)
	}

	// Top up from learned questions rather than starve the quiz.
	if len(candidates) < count && len(learned) > 0 {
		candidates = append(candidates, e.sample(learned, count-len(candidates))...)
	}

	// Shuffle before the stable sort so exact-score ties break
	// randomly.
	e.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	sort.SliceStable(candidates, func(i, j int) bool {
		return e.Score(up, candidates[i]) > e.Score(up, candidates[j])
	})

	if len(candidates) > count {
		candidates = candidates[:count]
	}
	return candidates, nil
}

// Score computes a question's recommendation priority: the mastery
// score of its topic (less mastered = higher) plus its difficulty
// weight.
func (e *Engine) Score(up *progress.UserProgress, q catalog.Question) int {
	return masteryScore(up, q) + q.Difficulty.Weight()
}

// masteryScore prefers the subtopic-level record, falls back to the
// topic-level one, and treats an unknown topic as highest priority.
func masteryScore(up *progress.UserProgress, q catalog.Question) int {
	rec, ok := up.Mastery(q.Topic, q.Subtopic)
	if !ok {
		rec, ok = up.Mastery(q.Topic, "")
	}
	if !ok {
		return unknownScore
	}
	switch mastery.Level(rec.Level) {
	case mastery.LevelBeginner:
		return 4
	case mastery.LevelIntermediate:
		return 3
	case mastery.LevelAdvanced:
		return 2
	case mastery.LevelMastered:
		return 1
	default:
		return unknownScore
	}
}

// sample returns up to n questions drawn uniformly without
// replacement.
func (e *Engine) sample(pool []catalog.Question, n int) []catalog.Question {
	out := make([]catalog.Question, len(pool))
	copy(out, pool)
	e.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
