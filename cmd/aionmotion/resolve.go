package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aionmotion/internal/motion"
)

func resolveCmd() *cobra.Command {
	var req motion.Request
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the motion plan for a relation type or module transition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.RelationType == "" && req.ModuleName == "" {
				return fmt.Errorf("--relation or --module is required")
			}
			return runResolve(req, asJSON)
		},
	}
	cmd.Flags().StringVar(&req.RelationType, "relation", "", "Relation type, e.g. opposes")
	cmd.Flags().StringVar(&req.ModuleName, "module", "", "Visualization module, e.g. alchemyLab")
	cmd.Flags().StringVar(&req.TransitionKey, "transition", "", "Transition key, e.g. nigredo->albedo")
	cmd.Flags().BoolVar(&req.ReducedMotionRequested, "reduced", false, "Force reduced motion")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	return cmd
}

func runResolve(req motion.Request, asJSON bool) error {
	resolver, err := newResolver(project)
	if err != nil {
		return err
	}

	plan := resolver.Resolve(req)
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}

	fmt.Fprintf(os.Stdout, "preset:             %s\n", plan.SemanticPreset)
	if plan.Fallback {
		fmt.Fprintln(os.Stdout, "                    (not registered, default applied)")
	}
	fmt.Fprintf(os.Stdout, "mode:               %s\n", plan.Mode)
	fmt.Fprintf(os.Stdout, "behavior:           %s\n", plan.Behavior)
	fmt.Fprintf(os.Stdout, "cue:                %s\n", plan.Cue)
	fmt.Fprintf(os.Stdout, "meaning:            %s\n", plan.Meaning)
	fmt.Fprintf(os.Stdout, "learning objective: %s\n", plan.LearningObjective)
	return nil
}
