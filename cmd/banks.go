package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meera/quizbank/internal/config"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List the catalog's question banks and sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		repo, err := loadCatalog(cmd, cfg)
		if err != nil {
			return err
		}

		subject, _ := cmd.Flags().GetString("subject")

		subjects := repo.Subjects()
		if subject != "" {
			if _, err := repo.Bank(subject); err != nil {
				return err
			}
			subjects = []string{subject}
		}

		fmt.Printf("%-24s  %-20s  %-30s  %5s  %9s  %9s\n",
			"ID", "Subject", "Title", "Grade", "Questions", "Points")
		fmt.Println(strings.Repeat("─", 105))

		total := 0
		for _, subj := range subjects {
			bank, err := repo.Bank(subj)
			if err != nil {
				continue
			}
			for _, s := range bank.Sets {
				title := s.Title
				if len(title) > 30 {
					title = title[:27] + "..."
				}
				fmt.Printf("%-24s  %-20s  %-30s  %5s  %9d  %9d\n",
					s.ID, bank.Subject, title, s.Grade, len(s.Questions), s.TotalPoints)
				total++
			}
		}

		fmt.Printf("\n%d sets\n", total)
		return nil
	},
}

func init() {
	banksCmd.Flags().String("subject", "", "Only list sets for this subject")
}
