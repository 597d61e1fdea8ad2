package recommend

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meera/quizbank/internal/catalog"
	"github.com/meera/quizbank/internal/progress"
	"github.com/meera/quizbank/internal/storage"
)

func testRepo() *catalog.Repository {
	var qs []catalog.Question
	add := func(id, topic, subtopic string, d catalog.Difficulty) {
		qs = append(qs, catalog.Question{
			ID: id, Prompt: "p", Topic: topic, Subtopic: subtopic,
			Difficulty: d, Type: catalog.TypeShortAnswer, Points: 5, TimeEstimate: 60,
		})
	}
	add("q-alg-1", "algebra", "linear", catalog.DifficultyEasy)
	add("q-alg-2", "algebra", "linear", catalog.DifficultyMedium)
	add("q-alg-3", "algebra", "quadratic", catalog.DifficultyHard)
	add("q-geo-1", "geometry", "", catalog.DifficultyEasy)
	add("q-geo-2", "geometry", "", catalog.DifficultyMedium)
	add("q-geo-3", "geometry", "", catalog.DifficultyHard)

	return catalog.New([]catalog.QuestionBank{{
		Subject: "math",
		Sets: []catalog.QuestionSet{{
			ID: "mixed-1", Title: "Mixed", Grade: "8", Topic: "algebra", Questions: qs,
		}},
	}})
}

func newEngine(repo *catalog.Repository, store *progress.Store) *Engine {
	return New(repo, store, rand.New(rand.NewSource(7)))
}

func TestFallbackForUnknownUser(t *testing.T) {
	repo := testRepo()
	store := progress.NewStore(storage.NewMemory(), nil)
	e := newEngine(repo, store)

	got, err := e.RecommendedQuestions(context.Background(), "new-user", "math", 4)
	require.NoError(t, err)
	assert.Len(t, got, 4, "no-history users still get a full set")
}

func TestUnknownSubjectReturnsNothing(t *testing.T) {
	e := newEngine(testRepo(), progress.NewStore(storage.NewMemory(), nil))

	got, err := e.RecommendedQuestions(context.Background(), "u1", "history", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLearnedQuestionsExcluded(t *testing.T) {
	repo := testRepo()
	store := progress.NewStore(storage.NewMemory(), nil)
	ctx := context.Background()

	// q-alg-1 answered correctly twice: sufficiently learned.
	for i := 0; i < 2; i++ {
		_, err := store.RecordQuestionAttempt(ctx, "u1", "q-alg-1", true, 10)
		require.NoError(t, err)
	}

	e := newEngine(repo, store)
	got, err := e.RecommendedQuestions(ctx, "u1", "math", 5)
	require.NoError(t, err)

	require.Len(t, got, 5)
	for _, q := range got {
		assert.NotEqual(t, "q-alg-1", q.ID, "learned question must be excluded")
	}
}

func TestLearnedQuestionsTopUpStarvedPool(t *testing.T) {
	repo := testRepo()
	store := progress.NewStore(storage.NewMemory(), nil)
	ctx := context.Background()

	// Learn every question; exclusion alone would leave nothing.
	for _, id := range []string{"q-alg-1", "q-alg-2", "q-alg-3", "q-geo-1", "q-geo-2", "q-geo-3"} {
		for i := 0; i < 2; i++ {
			_, err := store.RecordQuestionAttempt(ctx, "u1", id, true, 10)
			require.NoError(t, err)
		}
	}

	e := newEngine(repo, store)
	got, err := e.RecommendedQuestions(ctx, "u1", "math", 4)
	require.NoError(t, err)
	assert.Len(t, got, 4, "pool tops up from learned questions rather than starving")
}

func TestScoreOrderingInvariant(t *testing.T) {
	repo := testRepo()
	store := progress.NewStore(storage.NewMemory(), nil)
	ctx := context.Background()

	// One wrong answer so progress exists without excluding anything.
	_, err := store.RecordQuestionAttempt(ctx, "u1", "q-alg-1", false, 10)
	require.NoError(t, err)
	up, err := store.Load(ctx, "u1")
	require.NoError(t, err)

	e := newEngine(repo, store)
	got, err := e.RecommendedQuestions(ctx, "u1", "math", 6)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	// Tied entries may appear in any order; scores must never
	// increase down the list.
	for i := 1; i < len(got); i++ {
		prev, cur := e.Score(up, got[i-1]), e.Score(up, got[i])
		assert.GreaterOrEqual(t, prev, cur, "position %d outranks position %d", i, i-1)
	}
}

func TestScoreCombinesMasteryAndDifficulty(t *testing.T) {
	up := &progress.UserProgress{
		UserID: "u1",
		MasteryLevels: []progress.MasteryRecord{
			{Topic: "algebra", Level: "mastered"},
			{Topic: "algebra", Subtopic: "quadratic", Level: "beginner"},
		},
	}
	e := newEngine(testRepo(), nil)

	tests := []struct {
		name string
		q    catalog.Question
		want int
	}{
		{"topic-level fallback", catalog.Question{Topic: "algebra", Subtopic: "linear", Difficulty: catalog.DifficultyEasy}, 1 + 1},
		{"subtopic overrides topic", catalog.Question{Topic: "algebra", Subtopic: "quadratic", Difficulty: catalog.DifficultyHard}, 4 + 3},
		{"unknown topic is top priority", catalog.Question{Topic: "statistics", Difficulty: catalog.DifficultyMedium}, 5 + 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Score(up, tt.q))
		})
	}
}

type failingSource struct{ err error }

func (f failingSource) Load(ctx context.Context, userID string) (*progress.UserProgress, error) {
	return nil, f.err
}

func TestStorageErrorPropagates(t *testing.T) {
	want := errors.New("storage down")
	e := New(testRepo(), failingSource{err: want}, rand.New(rand.NewSource(1)))

	_, err := e.RecommendedQuestions(context.Background(), "u1", "math", 5)
	require.ErrorIs(t, err, want)
}
