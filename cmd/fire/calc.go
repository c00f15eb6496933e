package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fireplan/fire-calculator/internal/config"
	"github.com/fireplan/fire-calculator/internal/domain"
	"github.com/fireplan/fire-calculator/internal/output"
	"github.com/fireplan/fire-calculator/internal/store"
)

type calcOptions struct {
	format          string
	outputPath      string
	save            bool
	interactive     bool
	insightsTimeout time.Duration
	currency        string
}

func newCalcCmd(a *app) *cobra.Command {
	opts := &calcOptions{}
	cmd := &cobra.Command{
		Use:   "calc [request-file]",
		Short: "Calculate a FIRE plan from a YAML or JSON request",
		Example: `  fire calc request.yaml
  fire calc request.json --format html --output plan.html
  fire calc --interactive --save`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, a, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format (console, json, csv, scenarios-csv, html)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Store the calculation in the history database")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Enter the request in an interactive form")
	cmd.Flags().DurationVar(&opts.insightsTimeout, "insights-timeout", 0, "Deadline for insight generation (default from preferences)")
	cmd.Flags().StringVar(&opts.currency, "currency", "", "Currency symbol for human-readable reports")
	return cmd
}

func runCalc(cmd *cobra.Command, a *app, opts *calcOptions, args []string) error {
	req, err := loadRequest(opts, args)
	if err != nil {
		return err
	}

	timeout := opts.insightsTimeout
	if timeout == 0 {
		timeout = a.prefs.Advisor.InsightsTimeout
	}
	result, err := newPlanner(a.log, timeout).Plan(cmd.Context(), *req)
	if err != nil {
		return err
	}

	if opts.save || a.prefs.History.Enabled {
		id, err := saveCalculation(cmd, a.prefs.HistoryDatabase(), *req, result)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved calculation %s\n", id)
	}

	format := opts.format
	if format == "" {
		format = a.prefs.Output.Format
	}
	currency := opts.currency
	if currency == "" {
		currency = a.prefs.Output.CurrencySymbol
	}
	f, err := output.NewFormatter(format, output.Options{CurrencySymbol: currency})
	if err != nil {
		return err
	}
	data, err := f.Format(result)
	if err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}

	if opts.outputPath != "" {
		if err := os.WriteFile(opts.outputPath, data, 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", opts.outputPath)
		return nil
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func loadRequest(opts *calcOptions, args []string) (*domain.Request, error) {
	if opts.interactive {
		return runRequestForm()
	}
	if len(args) == 0 {
		return nil, errors.New("a request file is required (or use --interactive)")
	}
	return config.NewInputParser().LoadFromFile(args[0])
}

func saveCalculation(cmd *cobra.Command, path string, req domain.Request, result *domain.FireResult) (string, error) {
	h, err := store.Open(path)
	if err != nil {
		return "", err
	}
	defer h.Close()

	rec, err := h.Save(cmd.Context(), "", req, result)
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}
