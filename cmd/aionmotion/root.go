package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"aionmotion/internal/config"
	"aionmotion/internal/grammar"
	"aionmotion/internal/motion"
)

var (
	configPath string
	verbose    bool

	project *config.ProjectConfig
	logger  = zap.NewNop()
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "aionmotion",
		Short: "Motion grammar resolver for the Aion visualization",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cmd.Name() {
			case "init", "version":
				project = config.DefaultProjectConfig()
			default:
				cfg, err := config.LoadOrDefault(configPath, !cmd.Flags().Changed("config"))
				if err != nil {
					return err
				}
				project = cfg
			}

			l, err := newLogger(project.LogLevel, verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Project config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(resolveCmd())
	root.AddCommand(presetsCmd())
	root.AddCommand(relationsCmd())
	root.AddCommand(transitionsCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(initCmd())
	root.AddCommand(versionCmd())
	return root
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// newResolver loads the project grammar and wires the configured preference
// sources: the project default and AION_REDUCED_MOTION.
func newResolver(cfg *config.ProjectConfig) (*motion.Resolver, error) {
	g, err := grammar.Load(cfg.Grammar)
	if err != nil {
		return nil, err
	}
	logger.Debug("grammar loaded",
		zap.String("path", cfg.Grammar),
		zap.Int("presets", g.Presets.Len()),
		zap.Int("relation_types", len(g.Transitions.RelationTypes())),
	)
	return motion.NewFromGrammar(g,
		motion.WithPreference(motion.AnyPreference{
			motion.StaticPreference(cfg.ReducedMotion),
			motion.EnvPreference{},
		}),
		motion.WithLogger(logger),
		motion.WithStrict(cfg.Strict),
	), nil
}
