package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/fireplan/fire-calculator/internal/output"
	"github.com/fireplan/fire-calculator/internal/store"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List or show saved calculations",
	}

	var limit int
	var listFormat string
	list := &cobra.Command{
		Use:   "list",
		Short: "List recent calculations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := store.Open(a.prefs.HistoryDatabase())
			if err != nil {
				return err
			}
			defer h.Close()

			records, err := h.List(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("listing history: %w", err)
			}
			if output.NormalizeFormatName(listFormat) == "json" {
				data, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), output.RenderHistory(records, a.prefs.Output.CurrencySymbol))
			return nil
		},
	}
	list.Flags().IntVarP(&limit, "limit", "n", store.DefaultListLimit, "Maximum number of calculations")
	list.Flags().StringVarP(&listFormat, "format", "f", "console", "Output format (console or json)")

	var showFormat string
	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved calculation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := store.Open(a.prefs.HistoryDatabase())
			if err != nil {
				return err
			}
			defer h.Close()

			rec, err := h.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			result, err := rec.DecodeResult()
			if err != nil {
				return err
			}

			format := showFormat
			if format == "" {
				format = a.prefs.Output.Format
			}
			return output.GenerateReport(cmd.OutOrStdout(), result, format, output.Options{CurrencySymbol: a.prefs.Output.CurrencySymbol})
		},
	}
	show.Flags().StringVarP(&showFormat, "format", "f", "", "Output format (console, json, csv, scenarios-csv, html)")

	cmd.AddCommand(list, show)
	return cmd
}
