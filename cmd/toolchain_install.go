package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rewahq/rewa/internal/archive"
	"github.com/rewahq/rewa/internal/configs"
	rerrors "github.com/rewahq/rewa/internal/errors"
	"github.com/rewahq/rewa/internal/ui"
	"github.com/rewahq/rewa/internal/utils"
)

var (
	installStripComponents int
	installOnly            string
	installForce           bool
)

var toolchainInstallCmd = &cobra.Command{
	Use:   "install <name> <archive>",
	Short: "Unpacks a toolchain archive into the managed toolchains directory",
	Long: `Reads a gzip- or zstd-compressed tarball and unpacks it under the rewa
toolchains directory. Entry paths are sanitized, so hostile archives cannot
write outside the destination; unsafe entries are skipped, not fatal.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, archivePath := args[0], args[1]
		ToolchainLogger.Infof("Starting toolchain install for %s", name)

		spinner, cleanup := startSpinner(ToolchainLogger, "Installing toolchain...", ToolchainLogger.Output, toolchainDebug)
		defer cleanup()

		if !utils.IsValidName(name) {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " " + rerrors.ErrInvalidToolchainName.Error() + ": " + color.YellowString(name)
			return rerrors.QuietExit{Code: 1}
		}

		dst := filepath.Join(configs.UserRewaSettings.ToolchainsPath, name)
		ToolchainLogger.Debugf("Destination: %s", dst)

		if _, err := os.Stat(dst); err == nil && !installForce {
			ToolchainLogger.Debugf("%v: %s", rerrors.ErrToolchainExists, name)
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Toolchain " + color.YellowString(name) + " is already installed\n" +
				ui.Info.Sprint("→") + " Run with " + color.YellowString("--force") + " to reinstall"
			return rerrors.QuietExit{Code: 1}
		}

		ToolchainLogger.Debugf("Reading archive from %s", archivePath)
		contents, err := os.ReadFile(archivePath)
		if err != nil {
			return ToolchainLogger.ErrorfAndReturn("failed to read archive: %v", err)
		}
		ToolchainLogger.Infof("Read %d bytes", len(contents))

		ToolchainLogger.Debugf("Unpacking with strip-components=%d only=%q", installStripComponents, installOnly)
		extracted, err := archive.UnpackMatching(contents, dst, installStripComponents, installOnly)
		if err != nil {
			switch {
			case errors.Is(err, rerrors.ErrNotCompressed):
				spinner.FinalMSG = ui.Error.Sprint("✗") + " " + color.YellowString(filepath.Base(archivePath)) +
					" is not a gzip or zstd compressed tarball"
			case errors.Is(err, rerrors.ErrArchiveFormat):
				spinner.FinalMSG = ui.Error.Sprint("✗") + " The archive is corrupt\n" +
					ui.Error.Sprint("Error: ") + err.Error()
			default:
				spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to unpack the archive\n" +
					ui.Error.Sprint("Error: ") + err.Error()
			}
			return rerrors.QuietExit{Code: 1}
		}
		ToolchainLogger.Infof("Extracted %d files:%s", len(extracted), utils.FormatPaths(extracted))

		config, err := configs.EnsureUserConfig()
		if err != nil {
			return ToolchainLogger.ErrorfAndReturn("failed to load user config: %v", err)
		}
		config.Toolchains[name] = configs.ToolchainRecord{
			UUID:        uuid.New().String(),
			Archive:     filepath.Base(archivePath),
			InstalledAt: time.Now().UTC(),
		}
		if err := configs.SaveUserConfig(config); err != nil {
			return ToolchainLogger.ErrorfAndReturn("failed to record toolchain: %v", err)
		}

		ToolchainLogger.Infof("Toolchain %s installed to %s", name, dst)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Toolchain " + color.YellowString(name) + " installed\n" +
			ui.Info.Sprint("→") + " Location: " + color.YellowString(dst)
		return nil
	},
}

func init() {
	toolchainInstallCmd.Flags().IntVar(&installStripComponents, "strip-components", 1, "leading path segments to strip from archive entries")
	toolchainInstallCmd.Flags().StringVar(&installOnly, "only", "", "glob pattern limiting which files are extracted (e.g. 'bin/**')")
	toolchainInstallCmd.Flags().BoolVar(&installForce, "force", false, "reinstall over an existing toolchain")
}
