package creds

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	rerrors "github.com/rewahq/rewa/internal/errors"
)

// NonceSize is the AEAD nonce length in bytes (96 bits).
const NonceSize = 12

// KeySize is the store key length in bytes (AES-256).
const KeySize = 32

// Seal encrypts plaintext under key and nonce with AES-256-GCM and returns
// ciphertext with the authentication tag appended. Associated data is not
// used. The nonce is NOT embedded in the result; the caller owns the
// nonce/ciphertext pairing and must never reuse a nonce with the same key.
func Seal(plaintext, key, nonce []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: got %d bytes", rerrors.ErrInvalidNonceLength, len(nonce))
	}
	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// Open verifies and decrypts a sealed blob produced by Seal. Every failure
// mode (tag mismatch, truncated blob, wrong key or nonce) collapses into
// ok=false with no further detail, so callers cannot be used as a
// decryption oracle. Callers needing diagnostics must log before calling.
func Open(sealed, key, nonce []byte) ([]byte, bool) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, false
	}
	if len(nonce) != aead.NonceSize() {
		return nil, false
	}
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, false
	}
	return plaintext, true
}

// NewNonce returns a fresh random 96-bit nonce.
func NewNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return nonce, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", rerrors.ErrInvalidKeyLength, KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rerrors.ErrInvalidKeyLength, err)
	}
	return cipher.NewGCM(block)
}
