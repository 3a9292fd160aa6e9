package creds

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"

	rerrors "github.com/rewahq/rewa/internal/errors"
)

// CreateStoreKey generates a new random 256-bit store key.
func CreateStoreKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("failed to generate store key: %w", err)
	}
	return key, nil
}

// SaveStoreKey writes the store key to path with owner-only permissions.
func SaveStoreKey(path string, key []byte) error {
	if len(key) != KeySize {
		return fmt.Errorf("%w: expected %d bytes, got %d", rerrors.ErrInvalidKeyLength, KeySize, len(key))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create key directory: %w", err)
	}
	if err := os.WriteFile(path, key, 0o600); err != nil {
		return fmt.Errorf("failed to save store key: %w", err)
	}
	return nil
}

// LoadStoreKey reads and validates the store key at path.
func LoadStoreKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, rerrors.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read store key: %w", err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", rerrors.ErrInvalidKeyLength, KeySize, len(key))
	}
	return key, nil
}
