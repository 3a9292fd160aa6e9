// Package configs manages user configuration and well-known paths for rewa.
//
// Configuration is stored in TOML format at ~/.config/rewa/config.toml
// (or the platform equivalent of os.UserConfigDir). It records:
//
//   - The credential store UUID
//   - Known registries and their index URLs (which may contain ${VAR}
//     placeholders, expanded from the environment at read time)
//   - Installed toolchains and when they were installed
//
// Toolchains, sealed credentials, and the store key live under the user
// data directory ($XDG_DATA_HOME/rewa or ~/.local/share/rewa).
package configs
