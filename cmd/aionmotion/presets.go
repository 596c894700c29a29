package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aionmotion/internal/motion"
)

func presetsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "presets [id]",
		Short: "List semantic motion presets, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			return runPresets(id, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print presets as JSON")
	return cmd
}

func runPresets(id string, asJSON bool) error {
	resolver, err := newResolver(project)
	if err != nil {
		return err
	}

	presets := resolver.Presets().All()
	if id != "" {
		p, ok := resolver.Presets().Lookup(id)
		if !ok {
			return fmt.Errorf("preset not found: %s", id)
		}
		presets = presets[:0]
		presets = append(presets, p)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(presets)
	}

	for i, p := range presets {
		if i > 0 {
			fmt.Fprintln(os.Stdout, "")
		}
		fmt.Fprintf(os.Stdout, "%s (%s)\n", p.ID, p.Label)
		fmt.Fprintf(os.Stdout, "  meaning:   %s\n", p.Meaning)
		fmt.Fprintf(os.Stdout, "  objective: %s\n", p.LearningObjective)
		fmt.Fprintf(os.Stdout, "  animated:  %s (%s)\n", p.Animation.Behavior, motion.AnimatedCue(p.Animation))
		fmt.Fprintf(os.Stdout, "  reduced:   %s (%s)\n", p.ReducedMotion.Behavior, p.ReducedMotion.Cue)
	}
	return nil
}
