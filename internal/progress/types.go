// Package progress tracks what a learner has answered and how well,
// persisted as one JSON document per user.
package progress

import "time"

// AnsweredQuestion accumulates a user's history on one question.
// Created on first attempt, updated on every later attempt, never
// deleted. TimesCorrect never exceeds TimesAnswered.
type AnsweredQuestion struct {
	QuestionID          string    `json:"questionId"`
	LastAnswered        time.Time `json:"lastAnswered"`
	TimesAnswered       int       `json:"timesAnswered"`
	TimesCorrect        int       `json:"timesCorrect"`
	AverageResponseTime float64   `json:"averageResponseTime"` // seconds, running mean
}

// CompletedSet records the latest completion of a question set.
// Repeat completions overwrite; only the most recent attempt is kept.
type CompletedSet struct {
	SetID         string    `json:"setId"`
	CompletedAt   time.Time `json:"completedAt"`
	Score         int       `json:"score"`
	TotalPossible int       `json:"totalPossible"`
}

// MasteryRecord is a derived competence classification for a topic,
// or for a (topic, subtopic) pair when Subtopic is non-empty. The
// full set is recomputed and replaced on every update; callers never
// mutate records directly.
type MasteryRecord struct {
	Topic       string    `json:"topic"`
	Subtopic    string    `json:"subtopic,omitempty"`
	Level       string    `json:"level"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// UserProgress is the per-user aggregate root. It is loaded wholesale,
// mutated in memory, and saved wholesale.
type UserProgress struct {
	UserID        string             `json:"userId"`
	Answered      []AnsweredQuestion `json:"answeredQuestions"`
	CompletedSets []CompletedSet     `json:"completedSets"`
	MasteryLevels []MasteryRecord    `json:"masteryLevels"`
}

// RecordAnswer upserts the answered-question record for questionID.
// The average response time advances by the incremental-mean rule:
// newAvg = (oldAvg*oldCount + sample) / (oldCount + 1).
func (up *UserProgress) RecordAnswer(questionID string, correct bool, responseTimeSeconds float64, now time.Time) {
	for i := range up.Answered {
		rec := &up.Answered[i]
		if rec.QuestionID != questionID {
			continue
		}
		rec.AverageResponseTime = (rec.AverageResponseTime*float64(rec.TimesAnswered) + responseTimeSeconds) / float64(rec.TimesAnswered+1)
		rec.TimesAnswered++
		if correct {
			rec.TimesCorrect++
		}
		rec.LastAnswered = now
		return
	}

	rec := AnsweredQuestion{
		QuestionID:          questionID,
		LastAnswered:        now,
		TimesAnswered:       1,
		AverageResponseTime: responseTimeSeconds,
	}
	if correct {
		rec.TimesCorrect = 1
	}
	up.Answered = append(up.Answered, rec)
}

// RecordCompletion upserts the completed-set record for setID,
// replacing any earlier completion.
func (up *UserProgress) RecordCompletion(setID string, score, totalPossible int, now time.Time) {
	for i := range up.CompletedSets {
		if up.CompletedSets[i].SetID == setID {
			up.CompletedSets[i] = CompletedSet{
				SetID:         setID,
				CompletedAt:   now,
				Score:         score,
				TotalPossible: totalPossible,
			}
			return
		}
	}
	up.CompletedSets = append(up.CompletedSets, CompletedSet{
		SetID:         setID,
		CompletedAt:   now,
		Score:         score,
		TotalPossible: totalPossible,
	})
}

// AnsweredRecord returns the record for questionID, if any.
func (up *UserProgress) AnsweredRecord(questionID string) (*AnsweredQuestion, bool) {
	for i := range up.Answered {
		if up.Answered[i].QuestionID == questionID {
			return &up.Answered[i], true
		}
	}
	return nil, false
}

// Mastery returns the record for a (topic, subtopic) pair. Pass an
// empty subtopic for the topic-level record.
func (up *UserProgress) Mastery(topic, subtopic string) (*MasteryRecord, bool) {
	for i := range up.MasteryLevels {
		if up.MasteryLevels[i].Topic == topic && up.MasteryLevels[i].Subtopic == subtopic {
			return &up.MasteryLevels[i], true
		}
	}
	return nil, false
}

// Stats summarizes a user's history.
type Stats struct {
	QuestionsAnswered int     `json:"questionsAnswered"` // distinct questions
	TotalAttempts     int     `json:"totalAttempts"`
	TotalCorrect      int     `json:"totalCorrect"`
	Accuracy          float64 `json:"accuracy"` // 0 when no attempts
	SetsCompleted     int     `json:"setsCompleted"`
}

// Stats computes summary statistics over the full history.
func (up *UserProgress) Stats() Stats {
	st := Stats{
		QuestionsAnswered: len(up.Answered),
		SetsCompleted:     len(up.CompletedSets),
	}
	for _, rec := range up.Answered {
		st.TotalAttempts += rec.TimesAnswered
		st.TotalCorrect += rec.TimesCorrect
	}
	if st.TotalAttempts > 0 {
		st.Accuracy = float64(st.TotalCorrect) / float64(st.TotalAttempts)
	}
	return st
}
