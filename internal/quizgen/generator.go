// Package quizgen assembles question sets on demand from the catalog.
package quizgen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/meera/quizbank/internal/catalog"
)

// DefaultCount is the number of questions a quiz gets when the caller
// doesn't ask for a specific count.
const DefaultCount = 10

// Filters narrows the candidate pool for a generated quiz. Subject
// and Grade are required; the rest are optional (zero value = no
// filter). Count defaults to DefaultCount when not positive.
type Filters struct {
	Subject    string
	Grade      string
	Topic      string
	Subtopic   string
	Difficulty catalog.Difficulty
	Count      int
}

// Generator builds ephemeral question sets. Generated sets are never
// added to the catalog or persisted.
type Generator struct {
	repo *catalog.Repository
	rng  *rand.Rand
}

// New creates a generator. rng drives the shuffle; tests pass a
// seeded source to pin permutations.
func New(repo *catalog.Repository, rng *rand.Rand) *Generator {
	return &Generator{repo: repo, rng: rng}
}

// Generate assembles a quiz from every catalog set matching the
// filters. An unknown subject or an empty pool yields a well-formed
// empty set, not an error; a pool smaller than the requested count
// yields fewer questions.
func (g *Generator) Generate(f Filters) catalog.QuestionSet {
	count := f.Count
	if count <= 0 {
		count = DefaultCount
	}

	pool := g.collect(f)

	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > count {
		pool = pool[:count]
	}

	set := catalog.QuestionSet{
		ID:          "generated-" + uuid.New().String(),
		Title:       quizTitle(f),
		Description: fmt.Sprintf("Generated quiz with %d questions", len(pool)),
		Subject:     f.Subject,
		Grade:       f.Grade,
		Topic:       f.Topic,
		Subtopic:    f.Subtopic,
		Questions:   pool,
	}
	set.ComputeAggregates()
	return set
}

// collect gathers every question matching the filters across the
// subject's grade-matched sets.
func (g *Generator) collect(f Filters) []catalog.Question {
	var pool []catalog.Question
	for _, set := range g.repo.SetsByGradeAndSubject(f.Subject, f.Grade) {
		for _, q := range set.Questions {
			if f.Topic != "" && q.Topic != f.Topic {
				continue
			}
			if f.Subtopic != "" && q.Subtopic != f.Subtopic {
				continue
			}
			if f.Difficulty != "" && q.Difficulty != f.Difficulty {
				continue
			}
			pool = append(pool, q)
		}
	}
	return pool
}

func quizTitle(f Filters) string {
	parts := []string{strings.TrimSpace(f.Subject)}
	if f.Topic != "" {
		parts = append(parts, f.Topic)
	}
	if f.Subtopic != "" {
		parts = append(parts, f.Subtopic)
	}
	return strings.Join(parts, ": ") + " quiz"
}
