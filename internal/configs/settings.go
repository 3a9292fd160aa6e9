package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/rewahq/rewa/internal/utils"
)

type UserSettings struct {
	// ToolchainsPath is where extracted toolchains are installed.
	ToolchainsPath string
	// CredsPath holds the sealed per-registry credential files.
	CredsPath string
	// StoreKeyPath is the 0600 file holding the credential store key.
	StoreKeyPath string
	// UserConfigsPath holds config.toml.
	UserConfigsPath string
	Username        string
}

var UserRewaSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	username, err := utils.GetUsername()
	if err != nil {
		log.Fatalf("error getting username: %s", err)
	}

	// These paths are independent of the working directory, so it is ok
	// to resolve them here.
	UserRewaSettings = &UserSettings{
		ToolchainsPath:  filepath.Join(dataDir, "rewa", "toolchains"),
		CredsPath:       filepath.Join(dataDir, "rewa", "creds"),
		StoreKeyPath:    filepath.Join(dataDir, "rewa", "keys", "store.key"),
		UserConfigsPath: filepath.Join(configDir, "rewa"),
		Username:        username,
	}
}
