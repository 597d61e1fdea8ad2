package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalogJSON = `{
	"banks": [
		{
			"subject": "math",
			"sets": [
				{
					"id": "frac-1",
					"title": "Fractions",
					"grade": "6",
					"topic": "fractions",
					"questions": [
						{
							"id": "q-frac-1",
							"prompt": "What is 1/2 + 1/4?",
							"answer": "3/4",
							"topic": "fractions",
							"subtopic": "addition",
							"difficulty": "easy",
							"type": "short-answer",
							"points": 5,
							"timeEstimate": 60
						}
					]
				}
			]
		}
	]
}`

func TestParseValidCatalog(t *testing.T) {
	r, err := Parse([]byte(validCatalogJSON))
	require.NoError(t, err)

	q, err := r.QuestionByID("q-frac-1")
	require.NoError(t, err)
	assert.Equal(t, "fractions", q.Topic)
	assert.Equal(t, DifficultyEasy, q.Difficulty)

	s, err := r.SetByID("frac-1")
	require.NoError(t, err)
	assert.Equal(t, 5, s.TotalPoints, "aggregates computed on load")
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"banks": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing banks", `{}`},
		{"set without id", `{"banks":[{"subject":"math","sets":[{"title":"t","grade":"6","topic":"x","questions":[]}]}]}`},
		{"bad difficulty", `{"banks":[{"subject":"math","sets":[{"id":"s1","title":"t","grade":"6","topic":"x","questions":[
			{"id":"q1","prompt":"p","topic":"x","difficulty":"extreme","type":"short-answer","points":1,"timeEstimate":30}
		]}]}]}`},
		{"zero points", `{"banks":[{"subject":"math","sets":[{"id":"s1","title":"t","grade":"6","topic":"x","questions":[
			{"id":"q1","prompt":"p","topic":"x","difficulty":"easy","type":"short-answer","points":0,"timeEstimate":30}
		]}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema validation failed")
		})
	}
}
