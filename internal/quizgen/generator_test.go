package quizgen

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/meera/quizbank/internal/catalog"
)

func testRepo() *catalog.Repository {
	questions := func(prefix string, n int, topic, subtopic string, d catalog.Difficulty) []catalog.Question {
		qs := make([]catalog.Question, n)
		for i := range qs {
			qs[i] = catalog.Question{
				ID:           prefix + string(rune('a'+i)),
				Prompt:       "prompt",
				Topic:        topic,
				Subtopic:     subtopic,
				Difficulty:   d,
				Type:         catalog.TypeShortAnswer,
				Points:       10,
				TimeEstimate: 60,
			}
		}
		return qs
	}

	return catalog.New([]catalog.QuestionBank{
		{
			Subject: "math",
			Sets: []catalog.QuestionSet{
				{ID: "alg-easy", Title: "Algebra Easy", Grade: "8", Topic: "algebra",
					Questions: questions("qae-", 6, "algebra", "linear", catalog.DifficultyEasy)},
				{ID: "alg-hard", Title: "Algebra Hard", Grade: "8", Topic: "algebra",
					Questions: questions("qah-", 4, "algebra", "quadratic", catalog.DifficultyHard)},
				{ID: "geo-7", Title: "Geometry", Grade: "7", Topic: "geometry",
					Questions: questions("qg-", 5, "geometry", "", catalog.DifficultyMedium)},
			},
		},
	})
}

func newGen(repo *catalog.Repository) *Generator {
	return New(repo, rand.New(rand.NewSource(1)))
}

func TestGenerateCountBound(t *testing.T) {
	gen := newGen(testRepo())

	for _, count := range []int{1, 5, 10, 50} {
		set := gen.Generate(Filters{Subject: "math", Grade: "8", Count: count})
		// Pool for grade 8 is 10 questions.
		want := count
		if want > 10 {
			want = 10
		}
		if len(set.Questions) != want {
			t.Errorf("count=%d: got %d questions, want %d", count, len(set.Questions), want)
		}
	}
}

func TestGenerateDefaultCount(t *testing.T) {
	gen := newGen(testRepo())

	set := gen.Generate(Filters{Subject: "math", Grade: "8"})
	if len(set.Questions) != DefaultCount {
		t.Errorf("got %d questions, want %d", len(set.Questions), DefaultCount)
	}
}

func TestGenerateUnknownSubjectEmptyPolicy(t *testing.T) {
	gen := newGen(testRepo())

	set := gen.Generate(Filters{Subject: "history", Grade: "8", Count: 5})
	if len(set.Questions) != 0 {
		t.Fatalf("expected empty set, got %d questions", len(set.Questions))
	}
	if set.TotalPoints != 0 || set.EstimatedTime != 0 {
		t.Errorf("empty set aggregates = %d points, %ds", set.TotalPoints, set.EstimatedTime)
	}
	if set.ID == "" || set.Title == "" {
		t.Error("empty set must still be well-formed")
	}
}

func TestGenerateFilters(t *testing.T) {
	gen := newGen(testRepo())

	tests := []struct {
		name string
		f    Filters
		want int
	}{
		{"topic", Filters{Subject: "math", Grade: "8", Topic: "algebra", Count: 20}, 10},
		{"subtopic", Filters{Subject: "math", Grade: "8", Topic: "algebra", Subtopic: "quadratic", Count: 20}, 4},
		{"difficulty", Filters{Subject: "math", Grade: "8", Difficulty: catalog.DifficultyEasy, Count: 20}, 6},
		{"grade excludes", Filters{Subject: "math", Grade: "7", Topic: "algebra", Count: 20}, 0},
		{"combined", Filters{Subject: "math", Grade: "8", Topic: "algebra", Difficulty: catalog.DifficultyHard, Count: 2}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := gen.Generate(tt.f)
			if len(set.Questions) != tt.want {
				t.Errorf("got %d questions, want %d", len(set.Questions), tt.want)
			}
			for _, q := range set.Questions {
				if tt.f.Topic != "" && q.Topic != tt.f.Topic {
					t.Errorf("question %s has topic %q", q.ID, q.Topic)
				}
				if tt.f.Difficulty != "" && q.Difficulty != tt.f.Difficulty {
					t.Errorf("question %s has difficulty %q", q.ID, q.Difficulty)
				}
			}
		})
	}
}

func TestGenerateAggregates(t *testing.T) {
	gen := newGen(testRepo())

	set := gen.Generate(Filters{Subject: "math", Grade: "8", Topic: "algebra", Subtopic: "quadratic", Count: 4})
	if set.TotalPoints != 40 {
		t.Errorf("totalPoints = %d, want 40", set.TotalPoints)
	}
	if set.EstimatedTime != 240 {
		t.Errorf("estimatedTime = %d, want 240", set.EstimatedTime)
	}
	if set.Difficulty != catalog.DifficultyHard {
		t.Errorf("difficulty = %q, want hard", set.Difficulty)
	}

	easy := gen.Generate(Filters{Subject: "math", Grade: "8", Difficulty: catalog.DifficultyEasy, Count: 6})
	if easy.Difficulty != catalog.DifficultyEasy {
		t.Errorf("difficulty = %q, want easy", easy.Difficulty)
	}
}

func TestGeneratedSetIsEphemeral(t *testing.T) {
	repo := testRepo()
	gen := newGen(repo)

	set := gen.Generate(Filters{Subject: "math", Grade: "8", Count: 3})
	if !strings.HasPrefix(set.ID, "generated-") {
		t.Errorf("generated id = %q", set.ID)
	}
	if _, err := repo.SetByID(set.ID); err == nil {
		t.Error("generated set must not join the catalog")
	}

	other := gen.Generate(Filters{Subject: "math", Grade: "8", Count: 3})
	if other.ID == set.ID {
		t.Error("generated ids must be unique")
	}
}
