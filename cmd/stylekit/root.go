package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/engine"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
)

type rootFlags struct {
	settingsPath string
}

// appContext carries what every subcommand needs once settings are loaded.
type appContext struct {
	settings settings
	log      *logger.Logger
	engine   *engine.Engine
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{}

	cmd := &cobra.Command{
		Use:           "stylekit",
		Short:         "Stylekit resolves widget documents into class lists and element attributes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags.settingsPath)
		},
	}

	defaults := defaultSettings()
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.settingsPath, "settings", "", "Settings file (yaml, json or toml)")
	pf.String("log-level", defaults.LogLevel, "Log level: debug, info, warn or error")
	pf.Bool("human", defaults.HumanReadable, "Human-readable log output")
	pf.Int("cache-size", defaults.CacheSize, "Maximum memoized resolutions per cache")

	cmd.AddCommand(newResolveCmd(app))
	cmd.AddCommand(newDiffCmd(app))
	cmd.AddCommand(newDimensionsCmd())
	cmd.AddCommand(newPresetsCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *appContext) init(cmd *cobra.Command, settingsPath string) error {
	s, err := loadSettings(cmd, settingsPath)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:         s.LogLevel,
		HumanReadable: s.HumanReadable,
		Writer:        cmd.ErrOrStderr(),
		Component:     "stylekit",
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	eng, err := engine.New(engine.Options{CacheSize: s.CacheSize, Logger: log})
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	a.settings = s
	a.log = log
	a.engine = eng
	return nil
}
