package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Helper functions for testing

// GetToolchainCmd returns the ToolchainCmd for testing.
func GetToolchainCmd() *cobra.Command {
	return ToolchainCmd
}

// GetCredsCmd returns the CredsCmd for testing.
func GetCredsCmd() *cobra.Command {
	return CredsCmd
}

// GetReqCmd returns the ReqCmd for testing.
func GetReqCmd() *cobra.Command {
	return ReqCmd
}

// ResetCommandState restores a command tree's flags to their defaults so
// tests can execute commands repeatedly from a clean slate.
func ResetCommandState(cmd *cobra.Command) {
	resetFlagSet(cmd.PersistentFlags())
	resetFlagSet(cmd.Flags())
	for _, sub := range cmd.Commands() {
		ResetCommandState(sub)
	}
}

func resetFlagSet(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		// Slice values cannot round-trip through their DefValue string.
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}
