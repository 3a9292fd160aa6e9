package creds

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"

	rerrors "github.com/rewahq/rewa/internal/errors"
	"github.com/rewahq/rewa/internal/utils"
)

// credExt is the file extension for sealed credential files.
const credExt = ".cred"

// Credential is the plaintext payload sealed into a credential file.
type Credential struct {
	Username string `toml:"username"`
	Secret   string `toml:"secret"`
}

// SealCredentialFile seals cred under key and writes it to
// <dir>/<registry>.cred as nonce‖ciphertext‖tag with owner-only
// permissions. The store tracks the nonce/ciphertext pairing by prepending
// the freshly generated nonce; a new nonce is drawn on every write, so
// re-sealing the same registry never reuses one.
func SealCredentialFile(dir, registry string, key []byte, cred Credential) error {
	if !utils.IsValidName(registry) {
		return fmt.Errorf("%w: %q", rerrors.ErrInvalidRegistryName, registry)
	}

	var payload bytes.Buffer
	if err := toml.NewEncoder(&payload).Encode(cred); err != nil {
		return fmt.Errorf("failed to encode credential: %w", err)
	}

	nonce, err := NewNonce()
	if err != nil {
		return err
	}

	sealed, err := Seal(payload.Bytes(), key, nonce)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create credential store: %w", err)
	}

	blob := append(nonce, sealed...)
	path := filepath.Join(dir, registry+credExt)
	if err := os.WriteFile(path, blob, 0o600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}

	return nil
}

// OpenCredentialFile reads and unseals the credential for registry. A
// missing file is reported distinctly so callers can suggest `creds set`;
// every cryptographic failure collapses into ok=false.
func OpenCredentialFile(dir, registry string, key []byte) (Credential, bool, error) {
	if !utils.IsValidName(registry) {
		return Credential{}, false, fmt.Errorf("%w: %q", rerrors.ErrInvalidRegistryName, registry)
	}

	blob, err := os.ReadFile(filepath.Join(dir, registry+credExt))
	if err != nil {
		if os.IsNotExist(err) {
			return Credential{}, false, rerrors.ErrCredentialNotFound
		}
		return Credential{}, false, fmt.Errorf("failed to read credential file: %w", err)
	}

	if len(blob) < NonceSize {
		return Credential{}, false, nil
	}

	payload, ok := Open(blob[NonceSize:], key, blob[:NonceSize])
	if !ok {
		return Credential{}, false, nil
	}

	var cred Credential
	if err := toml.Unmarshal(payload, &cred); err != nil {
		return Credential{}, false, nil
	}

	return cred, true, nil
}

// ListCredentialFiles returns the registry names with sealed credentials
// in dir, optionally filtered by a doublestar glob pattern. An empty
// pattern lists everything.
func ListCredentialFiles(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credential store: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), credExt) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), credExt)
		if pattern != "" {
			matched, err := doublestar.Match(pattern, name)
			if err != nil {
				return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
			}
			if !matched {
				continue
			}
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// RemoveCredentialFile deletes the sealed credential for registry.
func RemoveCredentialFile(dir, registry string) error {
	if !utils.IsValidName(registry) {
		return fmt.Errorf("%w: %q", rerrors.ErrInvalidRegistryName, registry)
	}

	err := os.Remove(filepath.Join(dir, registry+credExt))
	if err != nil {
		if os.IsNotExist(err) {
			return rerrors.ErrCredentialNotFound
		}
		return fmt.Errorf("failed to remove credential file: %w", err)
	}
	return nil
}
