// Package creds seals and opens registry credentials for rewa.
//
// # Sealing
//
// Credentials are encrypted with AES-256-GCM under a random 256-bit store
// key kept in a 0600 file in the user's data directory. The codec itself
// (Seal/Open) takes the 96-bit nonce out-of-band and never embeds it in
// the sealed blob; the file store is the codec's caller and prepends a
// fresh random nonce to each credential file, so the on-disk layout is
//
//	nonce (12 bytes) ‖ ciphertext ‖ tag (16 bytes)
//
// # Failure shape
//
// Open collapses every decryption failure — tag mismatch, truncated blob,
// wrong key — into an absent result. Distinguishing these would hand an
// attacker a decryption oracle, so the loss of diagnostic detail is
// deliberate. Callers that need diagnostics must log context before
// calling.
//
// The package performs no key derivation or rotation; the store key is
// random material generated once by `rewa creds init`.
package creds
