package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meera/quizbank/internal/config"
	"github.com/meera/quizbank/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend questions for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		repo, err := loadCatalog(cmd, cfg)
		if err != nil {
			return err
		}
		store, kv, err := openStore(cmd, cfg, repo)
		if err != nil {
			return err
		}
		defer kv.Close()

		user, _ := cmd.Flags().GetString("user")
		subject, _ := cmd.Flags().GetString("subject")
		count, _ := cmd.Flags().GetInt("count")
		if count == 0 {
			count = cfg.QuestionCount
		}

		engine := recommend.New(repo, store, newRNG())
		questions, err := engine.RecommendedQuestions(cmd.Context(), user, subject, count)
		if err != nil {
			return err
		}
		if len(questions) == 0 {
			fmt.Printf("No questions available for subject %q.\n", subject)
			return nil
		}

		up, err := store.Load(cmd.Context(), user)
		if err != nil {
			logger.Warn("load progress for score display", "user", user, "error", err)
		}

		fmt.Printf("%-20s  %-24s  %-8s  %5s\n", "ID", "Topic", "Diff", "Score")
		fmt.Println(strings.Repeat("─", 64))
		for _, q := range questions {
			topic := q.Topic
			if q.Subtopic != "" {
				topic += "/" + q.Subtopic
			}
			score := "-"
			if up != nil {
				score = fmt.Sprintf("%d", engine.Score(up, q))
			}
			fmt.Printf("%-20s  %-24s  %-8s  %5s\n", q.ID, topic, q.Difficulty, score)
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("user", "", "User id (required)")
	recommendCmd.Flags().String("subject", "", "Subject to recommend from (required)")
	recommendCmd.Flags().Int("count", 0, "Number of questions (default from config)")
	recommendCmd.MarkFlagRequired("user")
	recommendCmd.MarkFlagRequired("subject")
}
