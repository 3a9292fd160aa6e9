package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rewahq/rewa/cmd"
	rerrors "github.com/rewahq/rewa/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "rewa",
	Short: "Rewa - A CLI for toolchain installation and sealed registry credentials.",
	Long: `Rewa is a command-line tool for unpacking toolchain release archives into a
managed directory and for keeping per-registry credentials encrypted at rest.

Features:
  - Install toolchains from gzip or zstd compressed tarballs, safely
  - Seal registry credentials with AES-256-GCM under a local store key
  - Render dependency requirement specifiers to canonical text

Usage:
  rewa <command> [flags]

Available Commands:
  toolchain  Install, list, and remove toolchains
  creds      Manage sealed registry credentials
  req        Work with requirement specifiers

Run 'rewa help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to Rewa! Run 'rewa --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.ToolchainCmd)
	rootCmd.AddCommand(cmd.CredsCmd)
	rootCmd.AddCommand(cmd.ReqCmd)
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// QuietExit carries a code for failures already reported to the
		// user; anything else still needs printing.
		var quiet rerrors.QuietExit
		if errors.As(err, &quiet) {
			os.Exit(quiet.Code)
		}
		fmt.Println(err)
		os.Exit(1)
	}
}
