package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound reports that a subject, set, or question id is not in
// the catalog.
var ErrNotFound = errors.New("not found")

// Repository is the in-memory question catalog. It is immutable after
// construction and safe for concurrent reads without coordination.
// Construct one explicitly and inject it; nothing here is package
// state.
type Repository struct {
	banks    map[string]*QuestionBank
	subjects []string
}

// New builds a Repository from the given banks. Subject keys are
// normalized (lowercased, trimmed); derived set aggregates are
// computed here so lookups return fully-populated sets.
func New(banks []QuestionBank) *Repository {
	r := &Repository{banks: make(map[string]*QuestionBank, len(banks))}
	for i := range banks {
		b := banks[i]
		for j := range b.Sets {
			b.Sets[j].ComputeAggregates()
		}
		key := normalizeSubject(b.Subject)
		r.banks[key] = &b
	}
	for key := range r.banks {
		r.subjects = append(r.subjects, key)
	}
	sort.Strings(r.subjects)
	return r
}

func normalizeSubject(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Subjects returns the normalized subject keys in sorted order.
func (r *Repository) Subjects() []string {
	out := make([]string, len(r.subjects))
	copy(out, r.subjects)
	return out
}

// Bank returns the question bank for a subject.
func (r *Repository) Bank(subject string) (*QuestionBank, error) {
	b, ok := r.banks[normalizeSubject(subject)]
	if !ok {
		return nil, fmt.Errorf("subject %q: %w", subject, ErrNotFound)
	}
	return b, nil
}

// SetsByGradeAndSubject returns the subject's catalog sets with an
// exact grade match.
func (r *Repository) SetsByGradeAndSubject(subject, grade string) []QuestionSet {
	b, err := r.Bank(subject)
	if err != nil {
		return nil
	}
	var out []QuestionSet
	for _, s := range b.Sets {
		if s.Grade == grade {
			out = append(out, s)
		}
	}
	return out
}

// SetsByTopic returns the subject's catalog sets matching topic, and
// subtopic when non-empty.
func (r *Repository) SetsByTopic(subject, topic, subtopic string) []QuestionSet {
	b, err := r.Bank(subject)
	if err != nil {
		return nil
	}
	var out []QuestionSet
	for _, s := range b.Sets {
		if s.Topic != topic {
			continue
		}
		if subtopic != "" && s.Subtopic != subtopic {
			continue
		}
		out = append(out, s)
	}
	return out
}

// SetByID finds a catalog set by id, searching every bank.
func (r *Repository) SetByID(setID string) (*QuestionSet, error) {
	for _, key := range r.subjects {
		b := r.banks[key]
		for i := range b.Sets {
			if b.Sets[i].ID == setID {
				return &b.Sets[i], nil
			}
		}
	}
	return nil, fmt.Errorf("set %q: %w", setID, ErrNotFound)
}

// QuestionByID finds a question by id, searching every bank's sets.
func (r *Repository) QuestionByID(questionID string) (*Question, error) {
	for _, key := range r.subjects {
		b := r.banks[key]
		for i := range b.Sets {
			for j := range b.Sets[i].Questions {
				if b.Sets[i].Questions[j].ID == questionID {
					return &b.Sets[i].Questions[j], nil
				}
			}
		}
	}
	return nil, fmt.Errorf("question %q: %w", questionID, ErrNotFound)
}

// SubjectQuestions flattens every set of a subject into one question
// list, in catalog order.
func (r *Repository) SubjectQuestions(subject string) []Question {
	b, err := r.Bank(subject)
	if err != nil {
		return nil
	}
	var out []Question
	for _, s := range b.Sets {
		out = append(out, s.Questions...)
	}
	return out
}

// QuestionsByDifficulty returns a subject's questions with the given
// difficulty.
func (r *Repository) QuestionsByDifficulty(subject string, d Difficulty) []Question {
	var out []Question
	for _, q := range r.SubjectQuestions(subject) {
		if q.Difficulty == d {
			out = append(out, q)
		}
	}
	return out
}

// QuestionsByType returns a subject's questions with the given type.
func (r *Repository) QuestionsByType(subject string, t QuestionType) []Question {
	var out []Question
	for _, q := range r.SubjectQuestions(subject) {
		if q.Type == t {
			out = append(out, q)
		}
	}
	return out
}
