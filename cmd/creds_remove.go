package cmd

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rewahq/rewa/internal/configs"
	"github.com/rewahq/rewa/internal/creds"
	rerrors "github.com/rewahq/rewa/internal/errors"
	"github.com/rewahq/rewa/internal/ui"
)

var credsRemoveCmd = &cobra.Command{
	Use:   "remove <registry>",
	Short: "Deletes the sealed credential for a registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := args[0]

		spinner, cleanup := startSpinner(CredsLogger, "Removing credential...", CredsLogger.Output, credsDebug)
		defer cleanup()

		err := creds.RemoveCredentialFile(configs.UserRewaSettings.CredsPath, registry)
		if err != nil {
			if errors.Is(err, rerrors.ErrCredentialNotFound) {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " No credential for " + color.YellowString(registry)
				return rerrors.QuietExit{Code: 1}
			}
			if errors.Is(err, rerrors.ErrInvalidRegistryName) {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " " + err.Error()
				return rerrors.QuietExit{Code: 1}
			}
			return CredsLogger.ErrorfAndReturn("failed to remove credential: %v", err)
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Credential for " + color.YellowString(registry) + " removed"
		return nil
	},
}
