package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meera/quizbank/internal/config"
)

var masteryCmd = &cobra.Command{
	Use:   "mastery",
	Short: "Show a user's mastery levels and statistics",
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
		up, err := store.Load(cmd.Context(), user)
		if err != nil {
			return err
		}
		if up == nil {
			fmt.Printf("No recorded activity for user %q.\n", user)
			return nil
		}

		st := up.Stats()
		fmt.Printf("User %s: %d questions answered, %d attempts, %.0f%% accuracy, %d sets completed\n\n",
			up.UserID, st.QuestionsAnswered, st.TotalAttempts, st.Accuracy*100, st.SetsCompleted)

		if len(up.MasteryLevels) == 0 {
			fmt.Println("No mastery levels yet.")
			return nil
		}

		fmt.Printf("%-24s  %-24s  %-12s  %s\n", "Topic", "Subtopic", "Level", "Updated")
		fmt.Println(strings.Repeat("─", 84))
		for _, m := range up.MasteryLevels {
			sub := m.Subtopic
			if sub == "" {
				sub = "-"
			}
			fmt.Printf("%-24s  %-24s  %-12s  %s\n",
				m.Topic, sub, m.Level, m.LastUpdated.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	masteryCmd.Flags().String("user", "", "User id (required)")
	masteryCmd.MarkFlagRequired("user")
}
