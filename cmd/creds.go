package cmd

import (
	"github.com/spf13/cobra"

	logger "github.com/rewahq/rewa/internal/logging"
)

var (
	credsVerbose bool
	credsDebug   bool
	credsQuiet   bool
	CredsLogger  logger.Logger

	CredsCmd = &cobra.Command{
		Use:   "creds",
		Short: "Manage sealed registry credentials",
		Long:  `Provides initialization of the credential store and setting, reading, listing, and removal of per-registry credentials sealed with the store key.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			CredsLogger = logger.Logger{
				Output: logger.OutputFromFlags(credsQuiet, credsVerbose),
				Debug:  credsDebug,
			}
			CredsLogger.Debugf("Initializing creds command with output=%s, debug=%t", CredsLogger.Output, credsDebug)
		},
	}
)

func init() {
	CredsCmd.PersistentFlags().BoolVarP(&credsVerbose, "verbose", "v", false, "enable verbose output")
	CredsCmd.PersistentFlags().BoolVar(&credsDebug, "debug", false, "enable debug output")
	CredsCmd.PersistentFlags().BoolVarP(&credsQuiet, "quiet", "q", false, "suppress non-error output")

	CredsCmd.AddCommand(credsInitCmd)
	CredsCmd.AddCommand(credsSetCmd)
	CredsCmd.AddCommand(credsGetCmd)
	CredsCmd.AddCommand(credsListCmd)
	CredsCmd.AddCommand(credsRemoveCmd)
}
