package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meera/quizbank/internal/config"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record quiz results for a user",
}

var recordAttemptCmd = &cobra.Command{
	Use:   "attempt",
	Short: "Record a single answered question",
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
		question, _ := cmd.Flags().GetString("question")
		correct, _ := cmd.Flags().GetBool("correct")
		seconds, _ := cmd.Flags().GetFloat64("seconds")

		up, err := store.RecordQuestionAttempt(cmd.Context(), user, question, correct, seconds)
		if err != nil {
			return err
		}

		rec, _ := up.AnsweredRecord(question)
		fmt.Printf("%s: %d/%d correct, avg %.1fs\n",
			question, rec.TimesCorrect, rec.TimesAnswered, rec.AverageResponseTime)
		return nil
	},
}

var recordSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Record a completed question set",
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
		setID, _ := cmd.Flags().GetString("set")
		score, _ := cmd.Flags().GetInt("score")
		total, _ := cmd.Flags().GetInt("total")

		up, err := store.RecordSetCompletion(cmd.Context(), user, setID, score, total)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d/%d recorded (%d sets completed)\n",
			setID, score, total, len(up.CompletedSets))
		return nil
	},
}

func init() {
	recordAttemptCmd.Flags().String("user", "", "User id (required)")
	recordAttemptCmd.Flags().String("question", "", "Question id (required)")
	recordAttemptCmd.Flags().Bool("correct", false, "Whether the answer was correct")
	recordAttemptCmd.Flags().Float64("seconds", 0, "Response time in seconds")
	recordAttemptCmd.MarkFlagRequired("user")
	recordAttemptCmd.MarkFlagRequired("question")

	recordSetCmd.Flags().String("user", "", "User id (required)")
	recordSetCmd.Flags().String("set", "", "Set id (required)")
	recordSetCmd.Flags().Int("score", 0, "Score achieved")
	recordSetCmd.Flags().Int("total", 0, "Total possible score")
	recordSetCmd.MarkFlagRequired("user")
	recordSetCmd.MarkFlagRequired("set")

	recordCmd.AddCommand(recordAttemptCmd)
	recordCmd.AddCommand(recordSetCmd)
}
