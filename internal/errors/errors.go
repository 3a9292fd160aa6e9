package errors

import (
	"errors"
	"fmt"
)

// Archive errors indicate problems reading or materializing a toolchain archive.
var (
	// ErrNotCompressed indicates the input buffer is not a validly compressed stream.
	ErrNotCompressed = errors.New("input is not a valid compressed stream")

	// ErrArchiveFormat indicates the decompressed container is structurally invalid.
	ErrArchiveFormat = errors.New("archive structure is invalid")

	// ErrExtract indicates an accepted archive entry could not be written to disk.
	ErrExtract = errors.New("failed to write archive entry")
)

// Cryptographic errors indicate failures sealing credential material.
var (
	// ErrInvalidKeyLength indicates the store key has an inadmissible length.
	ErrInvalidKeyLength = errors.New("invalid store key length")

	// ErrInvalidNonceLength indicates the nonce is not 96 bits.
	ErrInvalidNonceLength = errors.New("nonce must be exactly 12 bytes")

	// ErrKeyNotFound indicates the store key file could not be located.
	ErrKeyNotFound = errors.New("store key not found")
)

// Store errors indicate issues with the credential store on disk.
var (
	// ErrCredentialNotFound indicates no sealed credential exists for the registry.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrInvalidRegistryName indicates the registry name contains disallowed characters.
	ErrInvalidRegistryName = errors.New("invalid registry name")

	// ErrStoreNotInitialized indicates the credential store has not been set up.
	ErrStoreNotInitialized = errors.New("credential store has not been initialized")
)

// Toolchain errors indicate issues with the managed toolchain directory.
var (
	// ErrToolchainNotFound indicates the named toolchain is not installed.
	ErrToolchainNotFound = errors.New("toolchain not found")

	// ErrToolchainExists indicates a toolchain with that name is already installed.
	ErrToolchainExists = errors.New("toolchain already installed")

	// ErrInvalidToolchainName indicates the toolchain name contains disallowed characters.
	ErrInvalidToolchainName = errors.New("invalid toolchain name")
)

// QuietExit signals that the process should exit with the given code
// without printing any further diagnostics.
type QuietExit struct {
	Code int
}

func (e QuietExit) Error() string {
	return fmt.Sprintf("exit with %d", e.Code)
}
