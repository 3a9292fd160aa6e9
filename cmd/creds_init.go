package cmd

import (
	"errors"
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rewahq/rewa/internal/configs"
	"github.com/rewahq/rewa/internal/creds"
	rerrors "github.com/rewahq/rewa/internal/errors"
	"github.com/rewahq/rewa/internal/ui"
)

var initForce bool

var credsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Creates the credential store key",
	Long: `Generates a random 256-bit store key and saves it with owner-only
permissions. All registry credentials are sealed under this key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keyPath := configs.UserRewaSettings.StoreKeyPath
		CredsLogger.Debugf("Store key path: %s", keyPath)

		_, err := creds.LoadStoreKey(keyPath)
		switch {
		case err == nil && !initForce:
			fmt.Println(ui.Error.Sprint("✗") + " A store key already exists at " + ui.Path.Sprint(keyPath))
			fmt.Println(ui.Info.Sprint("→") + " Run with " + color.YellowString("--force") + " to replace it " +
				ui.Muted.Sprint("existing credentials become unreadable"))
			return rerrors.QuietExit{Code: 1}
		case err == nil:
			// The replacement is irreversible, so this bypasses --quiet.
			CredsLogger.WarnfAlways("Replacing the store key at %s; previously sealed credentials become unreadable", keyPath)
		case !errors.Is(err, rerrors.ErrKeyNotFound):
			return CredsLogger.ErrorfAndReturn("failed to check for existing store key: %v", err)
		}

		key, err := creds.CreateStoreKey()
		if err != nil {
			return CredsLogger.ErrorfAndReturn("failed to generate store key: %v", err)
		}
		if err := creds.SaveStoreKey(keyPath, key); err != nil {
			return CredsLogger.ErrorfAndReturn("failed to save store key: %v", err)
		}

		if _, err := configs.EnsureUserConfig(); err != nil {
			return CredsLogger.ErrorfAndReturn("failed to initialize user config: %v", err)
		}

		if !credsQuiet {
			fmt.Println()
			banner := figure.NewColorFigure("rewa", "alligator2", "green", true)
			banner.Print()
			fmt.Println()

			fmt.Println(ui.Success.Sprint("✓") + " Credential store initialized")
			fmt.Println(ui.Info.Sprint("→") + " Key saved to " + ui.Path.Sprint(keyPath))
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("rewa creds set <registry>") + " to seal a credential")
		}
		return nil
	},
}

func init() {
	credsInitCmd.Flags().BoolVar(&initForce, "force", false, "replace an existing store key")
}
