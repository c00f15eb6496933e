package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/fireplan/fire-calculator/internal/calculation"
	"github.com/fireplan/fire-calculator/internal/output"
)

func newScenariosCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Show the FIRE tiers, investment profiles and investment types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := calculation.NewCalculationEngine().Catalog()
			switch output.NormalizeFormatName(format) {
			case "json":
				data, err := json.MarshalIndent(catalog, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			case "console":
				fmt.Fprint(cmd.OutOrStdout(), output.RenderCatalog(catalog, a.prefs.Output.CurrencySymbol))
			default:
				return fmt.Errorf("%w: %q (use console or json)", output.ErrUnsupportedFormat, format)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format (console or json)")
	return cmd
}
