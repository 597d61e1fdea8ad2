package cmd

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/meera/quizbank/internal/catalog"
	"github.com/meera/quizbank/internal/config"
	"github.com/meera/quizbank/internal/mastery"
	"github.com/meera/quizbank/internal/progress"
	"github.com/meera/quizbank/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "quizbank",
	Short: "Adaptive question-bank engine",
	Long:  "Quizbank — personalized quizzes, mastery tracking, and question recommendations over a static catalog.",
}

// logger reports storage-level faults the commands choose to continue
// past. Command results themselves go to stdout.
var logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZBANK_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to catalog JSON file (overrides QUIZBANK_CATALOG env var)")

	rootCmd.AddCommand(banksCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(masteryCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QUIZBANK_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, storage.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, storage.EnsureDir(cfg.DBPath)
	}
	return storage.DefaultPath()
}

// loadCatalog builds the question repository from the configured
// catalog file.
func loadCatalog(cmd *cobra.Command, cfg config.Config) (*catalog.Repository, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		path = cfg.CatalogPath
	}
	if path == "" {
		return nil, fmt.Errorf("no catalog configured: pass --catalog or set QUIZBANK_CATALOG")
	}
	return catalog.Load(path)
}

// openStore wires the sqlite KV and the mastery calculator into a
// progress store. The caller closes the returned KV.
func openStore(cmd *cobra.Command, cfg config.Config, repo *catalog.Repository) (*progress.Store, *storage.SQLite, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	kv, err := storage.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	calc := mastery.NewCalculator(repo, mastery.DefaultThresholds())
	return progress.NewStore(kv, calc), kv, nil
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
