package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maxcolbe/studentsky-svet/internal/config"
	"github.com/maxcolbe/studentsky-svet/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect the quiz content",
}

var contentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subjects, topics and tests (optionally for one subject)",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg.ContentDir)
		if err != nil {
			return err
		}

		subjects := catalog.Subjects()
		if subject != "" {
			s, err := catalog.Subject(subject)
			if err != nil {
				return fmt.Errorf("no subject %q", subject)
			}
			subjects = []content.Subject{s}
		}

		out := cmd.OutOrStdout()

		// Header.
		fmt.Fprintf(out, "%-20s  %-28s  %-32s  %9s  %s\n",
			"Subject", "Topic", "Test", "Questions", "Theory")
		fmt.Fprintln(out, strings.Repeat("─", 102))

		tests := 0
		for _, s := range subjects {
			for _, t := range s.Topics {
				for _, name := range t.Tests {
					key := content.Key{Subject: s.Name, Topic: t.ID, Test: name}
					q, err := catalog.Quiz(key)
					if err != nil {
						return err
					}
					theory := ""
					if _, err := catalog.Theory(key); err == nil {
						theory = "✓"
					}
					fmt.Fprintf(out, "%-20s  %-28s  %-32s  %9d  %s\n",
						truncate(s.Name, 20), truncate(t.Title, 28), truncate(name, 32), q.Len(), theory)
					tests++
				}
			}
		}

		fmt.Fprintf(out, "\n%d tests\n", tests)
		return nil
	},
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check content files against the schema and quiz rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			dir = cfg.ContentDir
		}

		catalog, err := loadCatalog(dir)
		if errors.Is(err, content.ErrInvalidContent) {
			return fmt.Errorf("content is invalid: %w", err)
		}
		if err != nil {
			return err
		}

		source := dir
		if source == "" {
			source = "embedded content"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d subjects, %d tests)\n",
			source, len(catalog.Subjects()), catalog.QuizCount())
		return nil
	},
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	contentListCmd.Flags().String("subject", "", "Only list tests of this subject (e.g. Matematika)")
	contentValidateCmd.Flags().String("dir", "", "Directory holding questions.json and theory.json (default: SVET_CONTENT_DIR or embedded)")

	contentCmd.AddCommand(contentListCmd)
	contentCmd.AddCommand(contentValidateCmd)
}
