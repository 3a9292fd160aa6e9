package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/rewahq/rewa/internal/utils"
)

type UserConfig struct {
	Store      Store                      `toml:"store"`
	Registries map[string]RegistryConfig  `toml:"registries"`
	Toolchains map[string]ToolchainRecord `toml:"toolchains"`
}

type Store struct {
	UUID string `toml:"store_uuid"`
}

// RegistryConfig describes a package registry the user authenticates
// against. IndexURL may contain ${VAR} placeholders.
type RegistryConfig struct {
	IndexURL string `toml:"index_url"`
}

// ResolvedIndexURL returns the index URL with ${VAR} placeholders expanded
// from the process environment. Unset variables expand to nothing.
func (r RegistryConfig) ResolvedIndexURL() string {
	return utils.ExpandEnvVars(r.IndexURL, os.LookupEnv)
}

// ToolchainRecord records an installed toolchain.
type ToolchainRecord struct {
	UUID        string    `toml:"toolchain_uuid"`
	Archive     string    `toml:"archive"`
	InstalledAt time.Time `toml:"installed_at"`
}

// LoadUserConfig loads the user configuration from the config file.
// A missing file yields an empty config, not an error.
func LoadUserConfig() (*UserConfig, error) {
	configPath := filepath.Join(UserRewaSettings.UserConfigsPath, "config.toml")

	config := &UserConfig{
		Registries: make(map[string]RegistryConfig),
		Toolchains: make(map[string]ToolchainRecord),
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	if config.Registries == nil {
		config.Registries = make(map[string]RegistryConfig)
	}
	if config.Toolchains == nil {
		config.Toolchains = make(map[string]ToolchainRecord)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	configPath := filepath.Join(UserRewaSettings.UserConfigsPath, "config.toml")

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}

// EnsureUserConfig ensures the user configuration exists and has a store UUID.
func EnsureUserConfig() (*UserConfig, error) {
	config, err := LoadUserConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	if config.Store.UUID == "" {
		config.Store.UUID = uuid.New().String()
		if err := SaveUserConfig(config); err != nil {
			return nil, fmt.Errorf("failed to save user config: %w", err)
		}
	}

	return config, nil
}
