package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fireplan/fire-calculator/internal/config"
)

const defaultRequestFile = "fire_request.yaml"

func newInitCmd(a *app) *cobra.Command {
	var force, withPrefs bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write an example request document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultRequestFile
			if len(args) == 1 {
				path = args[0]
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			parser := config.NewInputParser()
			if err := parser.SaveRequest(parser.CreateExampleRequest(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote example request to %s\n", path)

			if withPrefs {
				if err := config.SavePreferences(a.prefsPath, a.prefs); err != nil {
					return fmt.Errorf("saving preferences: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote preferences to %s\n", a.prefsPath)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&withPrefs, "preferences", false, "Also write the current preferences file")
	return cmd
}
