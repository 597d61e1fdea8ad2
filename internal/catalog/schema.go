package catalog

// catalogSchema is the JSON schema a catalog file must satisfy before
// it is decoded. Validation catches authoring mistakes (missing ids,
// bad difficulty values, non-positive points) with a precise error
// instead of a half-loaded catalog.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"banks": map[string]any{
			"type":  "array",
			"items": bankSchema,
		},
	},
	"required":             []any{"banks"},
	"additionalProperties": false,
}

var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"subject": map[string]any{"type": "string", "minLength": 1},
		"sets": map[string]any{
			"type":  "array",
			"items": setSchema,
		},
	},
	"required":             []any{"subject", "sets"},
	"additionalProperties": false,
}

var setSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":       map[string]any{"type": "string", "minLength": 1},
		"title":    map[string]any{"type": "string", "minLength": 1},
		"subject":  map[string]any{"type": "string"},
		"grade":    map[string]any{"type": "string", "minLength": 1},
		"topic":    map[string]any{"type": "string", "minLength": 1},
		"subtopic": map[string]any{"type": "string"},
		"questions": map[string]any{
			"type":  "array",
			"items": questionSchema,
		},
	},
	"required": []any{"id", "title", "grade", "topic", "questions"},
}

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":     map[string]any{"type": "string", "minLength": 1},
		"prompt": map[string]any{"type": "string", "minLength": 1},
		"options": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"answer":   map[string]any{"type": "string"},
		"topic":    map[string]any{"type": "string", "minLength": 1},
		"subtopic": map[string]any{"type": "string"},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"easy", "medium", "hard"},
		},
		"type": map[string]any{
			"type": "string",
			"enum": []any{"multiple-choice", "short-answer", "true-false"},
		},
		"points":       map[string]any{"type": "integer", "minimum": 1},
		"timeEstimate": map[string]any{"type": "integer", "minimum": 1},
	},
	"required": []any{"id", "prompt", "topic", "difficulty", "type", "points", "timeEstimate"},
}
