package cmd

import (
	"github.com/spf13/cobra"

	logger "github.com/rewahq/rewa/internal/logging"
)

var (
	toolchainVerbose bool
	toolchainDebug   bool
	toolchainQuiet   bool
	ToolchainLogger  logger.Logger

	ToolchainCmd = &cobra.Command{
		Use:   "toolchain",
		Short: "Manage toolchains installed from release archives",
		Long:  `Provides installation, listing, and removal of toolchains unpacked from compressed release tarballs.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ToolchainLogger = logger.Logger{
				Output: logger.OutputFromFlags(toolchainQuiet, toolchainVerbose),
				Debug:  toolchainDebug,
			}
			ToolchainLogger.Debugf("Initializing toolchain command with output=%s, debug=%t", ToolchainLogger.Output, toolchainDebug)
		},
	}
)

func init() {
	ToolchainCmd.PersistentFlags().BoolVarP(&toolchainVerbose, "verbose", "v", false, "enable verbose output")
	ToolchainCmd.PersistentFlags().BoolVar(&toolchainDebug, "debug", false, "enable debug output")
	ToolchainCmd.PersistentFlags().BoolVarP(&toolchainQuiet, "quiet", "q", false, "suppress non-error output")

	ToolchainCmd.AddCommand(toolchainInstallCmd)
	ToolchainCmd.AddCommand(toolchainListCmd)
	ToolchainCmd.AddCommand(toolchainRemoveCmd)
}
