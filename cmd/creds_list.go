package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rewahq/rewa/internal/configs"
	"github.com/rewahq/rewa/internal/creds"
	"github.com/rewahq/rewa/internal/ui"
)

var credsListCmd = &cobra.Command{
	Use:   "list [glob]",
	Short: "Lists registries with sealed credentials",
	Long:  `Lists registry names from the credential store, optionally filtered by a glob pattern (e.g. 'company-*').`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}

		names, err := creds.ListCredentialFiles(configs.UserRewaSettings.CredsPath, pattern)
		if err != nil {
			return CredsLogger.ErrorfAndReturn("failed to list credentials: %v", err)
		}

		if len(names) == 0 {
			fmt.Println(ui.Muted.Sprint("no sealed credentials"))
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("rewa creds set <registry>") + " to seal one")
			return nil
		}

		for _, name := range names {
			fmt.Println(ui.Highlight.Sprint(name))
		}
		return nil
	},
}
