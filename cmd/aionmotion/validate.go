package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aionmotion/internal/grammar"
	"aionmotion/internal/validate"
)

func validateCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the grammar and the relation types used by content",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strict") {
				strict = project.Strict
			}
			return runValidate(cmd.Context(), strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat unmapped relation types as errors")
	return cmd
}

func runValidate(ctx context.Context, strict bool) error {
	g, err := grammar.Load(project.Grammar)
	if err != nil {
		return err
	}

	stores, err := openStores(ctx, project)
	if err != nil {
		return err
	}
	defer closeStores(ctx, stores)
	logger.Debug("auditing taxonomy", zap.Int("sources", len(stores)), zap.Bool("strict", strict))

	sources := make([]validate.TaxonomySource, 0, len(stores))
	for _, s := range stores {
		sources = append(sources, s)
	}

	report, err := validate.Run(ctx, g, sources, validate.Options{Strict: strict})
	if err != nil {
		return err
	}

	errorIssues := report.Errors()
	warnIssues := report.Warnings()

	if len(errorIssues) == 0 && len(warnIssues) == 0 {
		fmt.Fprintln(os.Stdout, "No issues found.")
		return nil
	}

	if len(errorIssues) > 0 {
		fmt.Fprintf(os.Stdout, "Errors (%d):\n", len(errorIssues))
		printIssues(os.Stdout, errorIssues)
	}
	if len(warnIssues) > 0 {
		if len(errorIssues) > 0 {
			fmt.Fprintln(os.Stdout, "")
		}
		fmt.Fprintf(os.Stdout, "Warnings (%d):\n", len(warnIssues))
		printIssues(os.Stdout, warnIssues)
	}

	if len(errorIssues) > 0 {
		return fmt.Errorf("validation found errors")
	}
	return nil
}

func printIssues(out io.Writer, issues []validate.Issue) {
	for _, issue := range issues {
		location := issue.RelationType
		if location == "" {
			location = issue.Preset
		} else if issue.Preset != "" {
			location = fmt.Sprintf("%s [%s]", issue.RelationType, issue.Preset)
		}
		fmt.Fprintf(out, "  - %s: %s (%s)\n", location, issue.Message, issue.Code)
		for _, ex := range issue.Examples {
			if ex.SourceFile != "" {
				fmt.Fprintf(out, "      %s -> %s (%s)\n", ex.From, ex.To, ex.SourceFile)
			} else {
				fmt.Fprintf(out, "      %s -> %s\n", ex.From, ex.To)
			}
		}
	}
}
