package cmd

import (
	"github.com/spf13/cobra"

	logger "github.com/rewahq/rewa/internal/logging"
)

var (
	reqVerbose bool
	reqDebug   bool
	reqQuiet   bool
	ReqLogger  logger.Logger

	ReqCmd = &cobra.Command{
		Use:   "req",
		Short: "Work with dependency requirement specifiers",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ReqLogger = logger.Logger{
				Output: logger.OutputFromFlags(reqQuiet, reqVerbose),
				Debug:  reqDebug,
			}
		},
	}
)

func init() {
	ReqCmd.PersistentFlags().BoolVarP(&reqVerbose, "verbose", "v", false, "enable verbose output")
	ReqCmd.PersistentFlags().BoolVar(&reqDebug, "debug", false, "enable debug output")
	ReqCmd.PersistentFlags().BoolVarP(&reqQuiet, "quiet", "q", false, "suppress non-error output")

	ReqCmd.AddCommand(reqFmtCmd)
}
