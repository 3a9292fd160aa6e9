package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rewahq/rewa/internal/configs"
	"github.com/rewahq/rewa/internal/ui"
)

var toolchainListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists installed toolchains",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := configs.LoadUserConfig()
		if err != nil {
			return ToolchainLogger.ErrorfAndReturn("failed to load user config: %v", err)
		}

		if len(config.Toolchains) == 0 {
			fmt.Println(ui.Muted.Sprint("no toolchains installed"))
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("rewa toolchain install <name> <archive>") + " to install one")
			return nil
		}

		names := make([]string, 0, len(config.Toolchains))
		for name := range config.Toolchains {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			record := config.Toolchains[name]
			fmt.Printf("%s %s %s\n",
				ui.Highlight.Sprint(name),
				ui.Muted.Sprintf("from %s", record.Archive),
				ui.Muted.Sprintf("installed %s", record.InstalledAt.Format("2006-01-02")),
			)
		}
		return nil
	},
}
