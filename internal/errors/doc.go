// Package errors provides typed error values for the rewa application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Archive errors: decompression, container parsing, and entry
//     materialization failures (ErrNotCompressed, ErrArchiveFormat,
//     ErrExtract)
//   - Cryptographic errors: inadmissible key or nonce material
//     (ErrInvalidKeyLength, ErrInvalidNonceLength)
//   - Store errors: credential store state (ErrCredentialNotFound,
//     ErrStoreNotInitialized)
//   - Toolchain errors: managed toolchain directory state
//     (ErrToolchainNotFound, ErrToolchainExists)
//
// Note that a failed credential decryption is deliberately NOT an error in
// this taxonomy: creds.Open collapses every failure into an absent result
// so callers cannot distinguish a tag mismatch from a malformed blob.
//
// QuietExit is the one non-sentinel type: it carries an exit code up to
// main without any message of its own.
package errors
