package progress

import (
	"context"
	"encoding/json"
	"time"

	"github.com/meera/quizbank/internal/storage"
)

// Namespace prefixes every progress key in the underlying KV store.
const Namespace = "user_progress"

// Recomputer rebuilds the full mastery record set from a user's
// answered-question history.
type Recomputer interface {
	Recompute(up *UserProgress) []MasteryRecord
}

// Store persists one UserProgress document per user through a KV
// collaborator. The load-mutate-save cycle is not atomic: concurrent
// writers for the same user race with last-writer-wins semantics.
// That is the accepted model for a single-learner-per-device client.
type Store struct {
	kv   storage.KV
	calc Recomputer
	now  func() time.Time
}

// NewStore creates a progress store. calc may be nil, in which case
// mastery recomputation is skipped on writes.
func NewStore(kv storage.KV, calc Recomputer) *Store {
	return &Store{kv: kv, calc: calc, now: time.Now}
}

// SetClock overrides the store's clock. Test hook.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

func (s *Store) key(userID string) string {
	return Namespace + "_" + userID
}

// Load returns the user's progress document, or nil when the user has
// no prior activity.
func (s *Store) Load(ctx context.Context, userID string) (*UserProgress, error) {
	key := s.key(userID)
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, &StorageError{Op: "load", Key: key, Err: err}
	}
	if !ok {
		return nil, nil
	}
	var up UserProgress
	if err := json.Unmarshal([]byte(raw), &up); err != nil {
		return nil, &StorageError{Op: "load", Key: key, Err: err}
	}
	return &up, nil
}

// Save serializes and persists the document wholesale.
func (s *Store) Save(ctx context.Context, up *UserProgress) error {
	key := s.key(up.UserID)
	raw, err := json.Marshal(up)
	if err != nil {
		return &StorageError{Op: "save", Key: key, Err: err}
	}
	if err := s.kv.Set(ctx, key, string(raw)); err != nil {
		return &StorageError{Op: "save", Key: key, Err: err}
	}
	return nil
}

// RecordQuestionAttempt upserts the answered-question record for the
// user, recomputes mastery, and persists. The user's document is
// created lazily on first write.
func (s *Store) RecordQuestionAttempt(ctx context.Context, userID, questionID string, correct bool, responseTimeSeconds float64) (*UserProgress, error) {
	up, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if up == nil {
		up = &UserProgress{UserID: userID}
	}

	up.RecordAnswer(questionID, correct, responseTimeSeconds, s.now())
	s.recomputeMastery(up)

	if err := s.Save(ctx, up); err != nil {
		return nil, err
	}
	return up, nil
}

// RecordSetCompletion replaces the user's completion record for the
// set, recomputes mastery, and persists.
func (s *Store) RecordSetCompletion(ctx context.Context, userID, setID string, score, totalPossible int) (*UserProgress, error) {
	up, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if up == nil {
		up = &UserProgress{UserID: userID}
	}

	up.RecordCompletion(setID, score, totalPossible, s.now())
	s.recomputeMastery(up)

	if err := s.Save(ctx, up); err != nil {
		return nil, err
	}
	return up, nil
}

// recomputeMastery replaces the document's mastery levels wholesale.
// Runs before the save so a single write persists both the record
// upsert and the fresh mastery set.
func (s *Store) recomputeMastery(up *UserProgress) {
	if s.calc == nil {
		return
	}
	up.MasteryLevels = s.calc.Recompute(up)
}
