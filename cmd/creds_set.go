package cmd

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rewahq/rewa/internal/configs"
	"github.com/rewahq/rewa/internal/creds"
	rerrors "github.com/rewahq/rewa/internal/errors"
	"github.com/rewahq/rewa/internal/ui"
	"github.com/rewahq/rewa/internal/utils"
)

var (
	setUsername string
	setSecret   string
	setIndexURL string
)

var credsSetCmd = &cobra.Command{
	Use:   "set <registry>",
	Short: "Seals a credential for a registry",
	Long: `Encrypts a username/secret pair under the store key and writes it to the
credential store. The secret is read from --secret, or prompted for without
echo when the flag is omitted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := args[0]
		CredsLogger.Infof("Sealing credential for %s", registry)

		key, err := creds.LoadStoreKey(configs.UserRewaSettings.StoreKeyPath)
		if err != nil {
			if errors.Is(err, rerrors.ErrKeyNotFound) {
				CredsLogger.Errorf("%v", rerrors.ErrStoreNotInitialized)
				CredsLogger.Errorf("Run %s first", color.YellowString("rewa creds init"))
				return rerrors.QuietExit{Code: 1}
			}
			return CredsLogger.ErrorfAndReturn("failed to load store key: %v", err)
		}

		secret := setSecret
		if secret == "" {
			raw, err := utils.ReadSecret("Secret for " + registry + ": ")
			if err != nil {
				return CredsLogger.ErrorfAndReturn("failed to read secret: %v", err)
			}
			secret = string(raw)
		}

		spinner, cleanup := startSpinner(CredsLogger, "Sealing credential...", CredsLogger.Output, credsDebug)
		defer cleanup()

		cred := creds.Credential{Username: setUsername, Secret: secret}
		if err := creds.SealCredentialFile(configs.UserRewaSettings.CredsPath, registry, key, cred); err != nil {
			if errors.Is(err, rerrors.ErrInvalidRegistryName) {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " " + err.Error()
				return rerrors.QuietExit{Code: 1}
			}
			return CredsLogger.ErrorfAndReturn("failed to seal credential: %v", err)
		}

		if setIndexURL != "" {
			config, err := configs.EnsureUserConfig()
			if err != nil {
				return CredsLogger.ErrorfAndReturn("failed to load user config: %v", err)
			}
			config.Registries[registry] = configs.RegistryConfig{IndexURL: setIndexURL}
			if err := configs.SaveUserConfig(config); err != nil {
				return CredsLogger.ErrorfAndReturn("failed to record registry: %v", err)
			}
			CredsLogger.Infof("Recorded index URL for %s", registry)
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Credential sealed for " + color.YellowString(registry)
		return nil
	},
}

func init() {
	credsSetCmd.Flags().StringVarP(&setUsername, "username", "u", "", "username stored with the credential")
	credsSetCmd.Flags().StringVar(&setSecret, "secret", "", "secret value (prompted without echo when omitted)")
	credsSetCmd.Flags().StringVar(&setIndexURL, "index-url", "", "registry index URL, may contain ${VAR} placeholders")
}
