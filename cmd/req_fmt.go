package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rewahq/rewa/internal/requirements"
	"github.com/rewahq/rewa/internal/utils"
)

var (
	fmtExtras     []string
	fmtSpecifiers []string
	fmtURL        string
	fmtMarker     string
	fmtExpandEnv  bool
)

var reqFmtCmd = &cobra.Command{
	Use:   "fmt <name>",
	Short: "Renders a requirement specifier to canonical text",
	Long: `Builds a requirement from its parts and prints the canonical form.
Source URLs keep literal '{' and '}' so ${VAR} placeholders survive; pass
--expand-env to substitute them from the environment instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := requirements.Requirement{
			Name:       args[0],
			Extras:     fmtExtras,
			Specifiers: fmtSpecifiers,
			URL:        fmtURL,
			Marker:     fmtMarker,
		}

		rendered := req.String()
		if fmtExpandEnv {
			rendered = utils.ExpandEnvVars(rendered, os.LookupEnv)
		}

		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	},
}

// resetReqFmtState resets the fmt command's flag variables for testing.
func resetReqFmtState() {
	fmtExtras = nil
	fmtSpecifiers = nil
	fmtURL = ""
	fmtMarker = ""
	fmtExpandEnv = false
}

func init() {
	reqFmtCmd.Flags().StringSliceVar(&fmtExtras, "extras", nil, "extras to request, comma separated")
	reqFmtCmd.Flags().StringArrayVar(&fmtSpecifiers, "specifier", nil, "version specifier, repeatable (e.g. '>=1.0.0')")
	reqFmtCmd.Flags().StringVar(&fmtURL, "url", "", "direct source URL instead of version specifiers")
	reqFmtCmd.Flags().StringVar(&fmtMarker, "marker", "", "environment marker (e.g. \"python_version < '3.8'\")")
	reqFmtCmd.Flags().BoolVar(&fmtExpandEnv, "expand-env", false, "expand ${VAR} placeholders from the environment")
}
