package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vardeck/internal/config"
	appErrors "vardeck/internal/errors"
)

func newBackendCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "backend [api|sqlite]",
		Short: "Choose where variables are stored",
		Long: strings.TrimSpace(`
Store the backend choice in the nearest vardeck config file. Without an
argument you are asked to pick one interactively.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var choice string
			if len(args) == 1 {
				choice = strings.ToLower(strings.TrimSpace(args[0]))
				if choice != config.BackendAPI && choice != config.BackendSQLite {
					return appErrors.New(appErrors.CodeConfigurationError,
						fmt.Sprintf("Unknown backend %q (expected %q or %q)", args[0], config.BackendAPI, config.BackendSQLite), nil)
				}
				if err := d.saveBackend(choice); err != nil {
					return appErrors.New(appErrors.CodeConfigurationError,
						fmt.Sprintf("Could not save backend: %v", err), err)
				}
			} else {
				var err error
				if choice, err = d.chooseBackend(); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backend set to %s.\n", choice)
			return nil
		},
	}
}
