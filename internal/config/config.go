// Package config resolves application settings from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings the CLI wires into the engine.
type Config struct {
	// DBPath is the SQLite file backing the progress store. Empty
	// means resolve the default data-dir path.
	DBPath string

	// CatalogPath is the question-catalog JSON file.
	CatalogPath string

	// QuestionCount is the default size of generated quizzes and
	// recommendation sets.
	QuestionCount int
}

// Load reads configuration from a .env file (if present) and the
// QUIZBANK_* environment variables, which override defaults.
func Load() Config {
	// Missing .env is fine; env vars still apply.
	_ = godotenv.Load()

	cfg := Config{QuestionCount: 10}

	if p := os.Getenv("QUIZBANK_DB"); p != "" {
		cfg.DBPath = p
	}
	if p := os.Getenv("QUIZBANK_CATALOG"); p != "" {
		cfg.CatalogPath = p
	}
	if v := os.Getenv("QUIZBANK_QUESTION_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.QuestionCount = n
		}
	}
	return cfg
}
