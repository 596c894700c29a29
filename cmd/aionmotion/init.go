package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"aionmotion/internal/config"
	"aionmotion/internal/grammar"
)

func initCmd() *cobra.Command {
	var projectName string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold an aionmotion project with an editable grammar",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			return runInit(projectName)
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "", "Project name")
	return cmd
}

func runInit(projectName string) error {
	configFile := config.DefaultPath
	grammarFile := "grammar.yaml"
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("%s already exists", configFile)
	}
	if _, err := os.Stat(grammarFile); err == nil {
		return fmt.Errorf("%s already exists", grammarFile)
	}

	configContents := fmt.Sprintf("project: %s\nversion: 1\n\ngrammar: ./%s\nstrict: false\nreduced_motion: false\nlog_level: info\n\n# database:\n#   dsn: sqlite://./content.db\n\ncontent:\n  paths:\n    - ./content/\n\nhttp:\n  addr: \":8760\"\n", projectName, grammarFile)
	if err := os.WriteFile(configFile, []byte(configContents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configFile, err)
	}
	if err := os.WriteFile(grammarFile, grammar.DefaultYAML(), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", grammarFile, err)
	}

	return nil
}
