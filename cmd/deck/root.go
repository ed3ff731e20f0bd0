package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conn-castle/deck-builder/internal/brand"
	"github.com/conn-castle/deck-builder/internal/config"
	"github.com/conn-castle/deck-builder/internal/deck"
	"github.com/conn-castle/deck-builder/internal/logging"
	"github.com/conn-castle/deck-builder/internal/messages"
	"github.com/conn-castle/deck-builder/internal/profile"
	"github.com/conn-castle/deck-builder/internal/terminal"
	"github.com/conn-castle/deck-builder/internal/warnings"
	"github.com/conn-castle/deck-builder/internal/wizard"
)

// Seams for tests.
var (
	newLogger     = logging.New
	isInteractive = terminal.IsInteractive
	newWizardUI   = func() wizard.UI { return wizard.NewHuhUI() }
)

// app carries the state shared by subcommands: flags, loaded config, and the logger.
type app struct {
	configFlag string
	verbose    bool

	cfg    *config.Config
	paths  config.Paths
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&a.configFlag, "config", "", messages.RootConfigFlagUsage)
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, messages.RootVerboseFlagUsage)

	cmd.AddCommand(
		newBuildCmd(a),
		newRenderCmd(a),
		newParseSheetCmd(a),
		newProfilesCmd(a),
		newInspectCmd(a),
		newDoctorCmd(a),
		newServeCmd(a),
	)
	return cmd
}

// configPath resolves the config file location from --config and the environment.
func (a *app) configPath() (string, error) {
	return config.ConfigPath(a.configFlag)
}

// load reads the config and builds the logger. Safe to call more than once.
func (a *app) load() error {
	if a.cfg != nil {
		return nil
	}
	path, err := a.configPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	paths, err := config.ResolvePaths(path, cfg)
	if err != nil {
		return err
	}
	logger, err := newLogger(logging.FromConfig(cfg.Logging, a.verbose))
	if err != nil {
		return err
	}
	a.cfg, a.paths, a.logger = cfg, paths, logger
	return nil
}

func (a *app) store() profile.Store {
	return profile.NewStore(a.paths.ProfilesDir)
}

// assembler returns a deck assembler themed and indexed from the tool config.
func (a *app) assembler() (*deck.Assembler, error) {
	theme, err := a.cfg.Theme.Apply(brand.Default())
	if err != nil {
		return nil, err
	}
	return deck.New(
		deck.WithTheme(theme),
		deck.WithLayoutIndices(a.cfg.LayoutIndices),
		deck.WithLogger(a.logger),
	), nil
}

// printWarnings writes the warnings that survive the configured noise mode.
func (a *app) printWarnings(out io.Writer, items []warnings.Warning) {
	shown := warnings.ApplyNoiseControl(items, a.cfg.Warnings.NoiseMode)
	if len(shown) == 0 {
		return
	}
	_, _ = fmt.Fprintf(out, messages.WarningsHeaderFmt, len(shown))
	for _, w := range shown {
		_, _ = fmt.Fprintln(out, color.YellowString(w.String()))
		_, _ = fmt.Fprintln(out)
	}
}
