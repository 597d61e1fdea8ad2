package mastery

import (
	"sort"
	"time"

	"github.com/meera/quizbank/internal/catalog"
	"github.com/meera/quizbank/internal/progress"
)

// Calculator recomputes mastery records from scratch on every run. It
// is a pure function of the answered-question history: identical input
// yields identical output (timestamps aside).
type Calculator struct {
	repo *catalog.Repository
	cfg  Thresholds
	now  func() time.Time
}

// NewCalculator creates a calculator over the given catalog.
func NewCalculator(repo *catalog.Repository, cfg Thresholds) *Calculator {
	return &Calculator{repo: repo, cfg: cfg, now: time.Now}
}

// SetClock overrides the calculator's clock. Test hook.
func (c *Calculator) SetClock(now func() time.Time) { c.now = now }

type bucket struct {
	correct int
	total   int
}

// Recompute derives the full mastery record set from the user's
// answered questions: one record per topic plus one per
// (topic, subtopic) pair, all stamped with the current time. Records
// whose question no longer resolves in the catalog are skipped; the
// catalog may have dropped content the history still references.
func (c *Calculator) Recompute(up *progress.UserProgress) []progress.MasteryRecord {
	type key struct {
		topic    string
		subtopic string
	}
	buckets := make(map[key]*bucket)

	accumulate := func(k key, rec progress.AnsweredQuestion) {
		b, ok := buckets[k]
		if !ok {
			b = &bucket{}
			buckets[k] = b
		}
		b.correct += rec.TimesCorrect
		b.total += rec.TimesAnswered
	}

	for _, rec := range up.Answered {
		q, err := c.repo.QuestionByID(rec.QuestionID)
		if err != nil {
			continue
		}
		accumulate(key{topic: q.Topic}, rec)
		if q.Subtopic != "" {
			accumulate(key{topic: q.Topic, subtopic: q.Subtopic}, rec)
		}
	}

	keys := make([]key, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	// Stable output order keeps recomputation idempotent.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].topic != keys[j].topic {
			return keys[i].topic < keys[j].topic
		}
		return keys[i].subtopic < keys[j].subtopic
	})

	now := c.now()
	records := make([]progress.MasteryRecord, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		records = append(records, progress.MasteryRecord{
			Topic:       k.topic,
			Subtopic:    k.subtopic,
			Level:       string(Classify(b.correct, b.total, c.cfg)),
			LastUpdated: now,
		})
	}
	return records
}
