package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rewahq/rewa/internal/configs"
	"github.com/rewahq/rewa/internal/creds"
	rerrors "github.com/rewahq/rewa/internal/errors"
	"github.com/rewahq/rewa/internal/ui"
)

var getShowSecret bool

var credsGetCmd = &cobra.Command{
	Use:   "get <registry>",
	Short: "Unseals and prints a registry credential",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := args[0]

		key, err := creds.LoadStoreKey(configs.UserRewaSettings.StoreKeyPath)
		if err != nil {
			if errors.Is(err, rerrors.ErrKeyNotFound) {
				CredsLogger.Errorf("%v", rerrors.ErrStoreNotInitialized)
				CredsLogger.Errorf("Run %s first", color.YellowString("rewa creds init"))
				return rerrors.QuietExit{Code: 1}
			}
			return CredsLogger.ErrorfAndReturn("failed to load store key: %v", err)
		}

		cred, ok, err := creds.OpenCredentialFile(configs.UserRewaSettings.CredsPath, registry, key)
		if err != nil {
			if errors.Is(err, rerrors.ErrCredentialNotFound) {
				CredsLogger.Errorf("No credential for %s", ui.Highlight.Sprint(registry))
				CredsLogger.Errorf("Run %s to seal one", color.YellowString("rewa creds set "+registry))
				return rerrors.QuietExit{Code: 1}
			}
			return CredsLogger.ErrorfAndReturn("failed to read credential: %v", err)
		}
		if !ok {
			// Tampered file, wrong key, truncation: deliberately one message.
			CredsLogger.Errorf("Credential for %s could not be unsealed", ui.Highlight.Sprint(registry))
			return rerrors.QuietExit{Code: 1}
		}

		fmt.Printf("registry: %s\n", ui.Highlight.Sprint(registry))
		if config, err := configs.LoadUserConfig(); err == nil {
			if rc, found := config.Registries[registry]; found {
				fmt.Printf("index:    %s\n", rc.ResolvedIndexURL())
			}
		}
		fmt.Printf("username: %s\n", cred.Username)
		if getShowSecret {
			fmt.Printf("secret:   %s\n", cred.Secret)
		} else {
			fmt.Printf("secret:   %s %s\n", "********", ui.Muted.Sprint("use --show-secret to reveal"))
		}
		return nil
	},
}

func init() {
	credsGetCmd.Flags().BoolVar(&getShowSecret, "show-secret", false, "print the secret in the clear")
}
