package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func relationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relations",
		Short: "List registered relation types and their presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := newResolver(project)
			if err != nil {
				return err
			}
			maps := resolver.Transitions()
			for _, name := range maps.RelationTypes() {
				fmt.Fprintf(os.Stdout, "%s -> %s\n", name, maps.PresetForRelationType(name))
			}
			return nil
		},
	}
}

func transitionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transitions [module]",
		Short: "List registered module state transitions and their presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := newResolver(project)
			if err != nil {
				return err
			}
			maps := resolver.Transitions()

			modules := maps.Modules()
			if len(args) == 1 {
				if maps.Transitions(args[0]) == nil {
					fmt.Fprintf(os.Stdout, "No transitions registered for %q.\n", args[0])
					return nil
				}
				modules = []string{args[0]}
			}

			for _, module := range modules {
				fmt.Fprintf(os.Stdout, "%s\n", module)
				for _, key := range maps.Transitions(module) {
					fmt.Fprintf(os.Stdout, "  %s => %s\n", key, maps.PresetForModuleTransition(module, key))
				}
			}
			return nil
		},
	}
}
