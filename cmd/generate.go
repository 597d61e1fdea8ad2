package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meera/quizbank/internal/catalog"
	"github.com/meera/quizbank/internal/config"
	"github.com/meera/quizbank/internal/quizgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a quiz from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		repo, err := loadCatalog(cmd, cfg)
		if err != nil {
			return err
		}

		subject, _ := cmd.Flags().GetString("subject")
		grade, _ := cmd.Flags().GetString("grade")
		topic, _ := cmd.Flags().GetString("topic")
		subtopic, _ := cmd.Flags().GetString("subtopic")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")
		if count == 0 {
			count = cfg.QuestionCount
		}

		gen := quizgen.New(repo, newRNG())
		set := gen.Generate(quizgen.Filters{
			Subject:    subject,
			Grade:      grade,
			Topic:      topic,
			Subtopic:   subtopic,
			Difficulty: catalog.Difficulty(difficulty),
			Count:      count,
		})

		printSet(set)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("subject", "", "Subject to draw questions from (required)")
	generateCmd.Flags().String("grade", "", "Grade to draw questions from (required)")
	generateCmd.Flags().String("topic", "", "Restrict to a topic")
	generateCmd.Flags().String("subtopic", "", "Restrict to a subtopic")
	generateCmd.Flags().String("difficulty", "", "Restrict to a difficulty (easy, medium, hard)")
	generateCmd.Flags().Int("count", 0, "Number of questions (default from config)")
	generateCmd.MarkFlagRequired("subject")
	generateCmd.MarkFlagRequired("grade")
}

func printSet(set catalog.QuestionSet) {
	fmt.Printf("%s (%s)\n", set.Title, set.ID)
	fmt.Printf("%d questions, %d points, ~%dm, difficulty %s\n\n",
		len(set.Questions), set.TotalPoints, (set.EstimatedTime+59)/60, set.Difficulty)

	if len(set.Questions) == 0 {
		fmt.Println("No questions matched.")
		return
	}

	fmt.Printf("%-20s  %-24s  %-8s  %-15s  %6s\n", "ID", "Topic", "Diff", "Type", "Points")
	fmt.Println(strings.Repeat("─", 82))
	for _, q := range set.Questions {
		topic := q.Topic
		if q.Subtopic != "" {
			topic += "/" + q.Subtopic
		}
		if len(topic) > 24 {
			topic = topic[:21] + "..."
		}
		fmt.Printf("%-20s  %-24s  %-8s  %-15s  %6d\n", q.ID, topic, q.Difficulty, q.Type, q.Points)
	}
}
