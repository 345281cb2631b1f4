package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/starpath/galaxy"
	"github.com/katalvlaran/starpath/internal/config"
	"github.com/katalvlaran/starpath/internal/logging"
	"github.com/spf13/cobra"
)

// app carries state shared by subcommands after PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string
	seed       int64

	cfg    *config.Config
	logger *slog.Logger
}

// Execute runs the CLI with args until completion or SIGINT/SIGTERM.
func Execute(ctx context.Context, args []string) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd()
	cmd.SetArgs(args)

	return cmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "starpath",
		Short: "Star map generator and A* route explorer",
		Long: `starpath builds a procedural galaxy of star systems joined by lanes
and finds shortest routes between them with A*.

Configuration is read from --config (YAML) and STARPATH_* environment
variables, e.g. STARPATH_GALAXY_PLANETS=200.`,
		PersistentPreRunE: a.load,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
	flags.Int64Var(&a.seed, "seed", 0, "override galaxy.seed")

	root.AddCommand(newServeCmd(a), newRouteCmd(a), newGenerateCmd(a))
	return root
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if cmd.Flags().Changed("seed") {
		cfg.Galaxy.Seed = a.seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(cfg.Logging, cmd.ErrOrStderr())
	return nil
}

// galaxy generates the configured map.
func (a *app) galaxy() (*galaxy.Map, error) {
	opts, err := a.cfg.GeneratorOptions()
	if err != nil {
		return nil, err
	}
	opts.Logger = a.logger

	m, err := galaxy.Generate(opts)
	if err != nil {
		return nil, err
	}
	a.logger.Info("galaxy generated", "systems", m.Len(), "lanes", len(m.Edges()), "seed", opts.Seed)

	return m, nil
}
