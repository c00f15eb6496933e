package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fireplan/fire-calculator/internal/calculation"
	"github.com/fireplan/fire-calculator/internal/config"
	"github.com/fireplan/fire-calculator/internal/insights"
	"github.com/fireplan/fire-calculator/internal/logging"
	"github.com/fireplan/fire-calculator/internal/planner"
)

// app holds state shared by every subcommand.
type app struct {
	prefsPath string
	verbose   bool
	prefs     config.Preferences
	log       zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "fire",
		Short:        "FIRE calculator",
		Long:         "Estimate how much you need to reach financial independence and how long it will take.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.prefsPath, "config", config.PreferencesPath(), "Preferences file (TOML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log calculation details to stderr")

	root.AddCommand(
		newCalcCmd(a),
		newScenariosCmd(a),
		newServeCmd(a),
		newHistoryCmd(a),
		newInitCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	prefs, err := config.LoadPreferences(a.prefsPath)
	if err != nil {
		return err
	}
	a.prefs = prefs

	level := "warn"
	if a.verbose {
		level = "debug"
	}
	a.log, err = logging.New(cmd.ErrOrStderr(), level, logging.FormatConsole)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	return nil
}

// newPlanner wires the engine, rule-based insights and logging together.
func newPlanner(log zerolog.Logger, insightsTimeout time.Duration) *planner.Planner {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logging.NewAdapter(log, "engine"))
	enricher := insights.NewEnricher(insights.RuleBased{}, insightsTimeout, logging.NewAdapter(log, "insights"))
	return planner.New(engine, enricher, logging.NewAdapter(log, "planner"))
}
