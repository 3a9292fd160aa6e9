package cmd

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rewahq/rewa/internal/configs"
	rerrors "github.com/rewahq/rewa/internal/errors"
	"github.com/rewahq/rewa/internal/ui"
	"github.com/rewahq/rewa/internal/utils"
)

var toolchainRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Removes an installed toolchain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		spinner, cleanup := startSpinner(ToolchainLogger, "Removing toolchain...", ToolchainLogger.Output, toolchainDebug)
		defer cleanup()

		if !utils.IsValidName(name) {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " " + rerrors.ErrInvalidToolchainName.Error() + ": " + color.YellowString(name)
			return rerrors.QuietExit{Code: 1}
		}

		config, err := configs.LoadUserConfig()
		if err != nil {
			return ToolchainLogger.ErrorfAndReturn("failed to load user config: %v", err)
		}

		dst := filepath.Join(configs.UserRewaSettings.ToolchainsPath, name)
		_, recorded := config.Toolchains[name]
		if _, err := os.Stat(dst); os.IsNotExist(err) && !recorded {
			ToolchainLogger.Debugf("%v: %s", rerrors.ErrToolchainNotFound, name)
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Toolchain " + color.YellowString(name) + " is not installed"
			return rerrors.QuietExit{Code: 1}
		}

		ToolchainLogger.Debugf("Removing %s", dst)
		if err := os.RemoveAll(dst); err != nil {
			return ToolchainLogger.ErrorfAndReturn("failed to remove toolchain directory: %v", err)
		}

		if recorded {
			delete(config.Toolchains, name)
			if err := configs.SaveUserConfig(config); err != nil {
				return ToolchainLogger.ErrorfAndReturn("failed to update user config: %v", err)
			}
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Toolchain " + color.YellowString(name) + " removed"
		return nil
	},
}
