package creds

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	rerrors "github.com/rewahq/rewa/internal/errors"
)

func TestSealOpenCredentialFile(t *testing.T) {
	dir := t.TempDir()
	key := testKey(t)
	cred := Credential{Username: "deploy", Secret: "t0ps3cret"}

	if err := SealCredentialFile(dir, "pypi", key, cred); err != nil {
		t.Fatalf("SealCredentialFile failed: %v", err)
	}

	// The file on disk must never contain the plaintext.
	blob, err := os.ReadFile(filepath.Join(dir, "pypi.cred"))
	if err != nil {
		t.Fatalf("Expected credential file to exist: %v", err)
	}
	if bytes.Contains(blob, []byte("t0ps3cret")) {
		t.Errorf("Sealed file contains the plaintext secret")
	}

	got, ok, err := OpenCredentialFile(dir, "pypi", key)
	if err != nil {
		t.Fatalf("OpenCredentialFile failed: %v", err)
	}
	if !ok {
		t.Fatalf("Expected credential to unseal")
	}
	if got != cred {
		t.Errorf("Round trip mismatch: got %+v, want %+v", got, cred)
	}
}

func TestOpenCredentialFileWrongKey(t *testing.T) {
	dir := t.TempDir()

	if err := SealCredentialFile(dir, "pypi", testKey(t), Credential{Username: "u", Secret: "s"}); err != nil {
		t.Fatalf("SealCredentialFile failed: %v", err)
	}

	_, ok, err := OpenCredentialFile(dir, "pypi", testKey(t))
	if err != nil {
		t.Fatalf("Wrong key must not be a distinguishable error, got: %v", err)
	}
	if ok {
		t.Errorf("Credential unsealed with the wrong key")
	}
}

func TestOpenCredentialFileTruncated(t *testing.T) {
	dir := t.TempDir()
	key := testKey(t)

	if err := os.WriteFile(filepath.Join(dir, "pypi.cred"), []byte{1, 2, 3}, 0o600); err != nil {
		t.Fatalf("Failed to write truncated file: %v", err)
	}

	_, ok, err := OpenCredentialFile(dir, "pypi", key)
	if err != nil {
		t.Fatalf("Truncated blob must not be a distinguishable error, got: %v", err)
	}
	if ok {
		t.Errorf("Truncated blob unsealed")
	}
}

func TestOpenCredentialFileMissing(t *testing.T) {
	_, _, err := OpenCredentialFile(t.TempDir(), "nope", testKey(t))
	if !errors.Is(err, rerrors.ErrCredentialNotFound) {
		t.Errorf("Expected ErrCredentialNotFound, got: %v", err)
	}
}

func TestSealCredentialFileRejectsBadName(t *testing.T) {
	dir := t.TempDir()
	key := testKey(t)

	for _, name := range []string{"", "../escape", "a/b", ".hidden"} {
		err := SealCredentialFile(dir, name, key, Credential{})
		if !errors.Is(err, rerrors.ErrInvalidRegistryName) {
			t.Errorf("Expected ErrInvalidRegistryName for %q, got: %v", name, err)
		}
	}
}

func TestSealCredentialFileFreshNoncePerWrite(t *testing.T) {
	dir := t.TempDir()
	key := testKey(t)
	cred := Credential{Username: "u", Secret: "s"}

	if err := SealCredentialFile(dir, "pypi", key, cred); err != nil {
		t.Fatalf("SealCredentialFile failed: %v", err)
	}
	first, _ := os.ReadFile(filepath.Join(dir, "pypi.cred"))

	if err := SealCredentialFile(dir, "pypi", key, cred); err != nil {
		t.Fatalf("SealCredentialFile failed: %v", err)
	}
	second, _ := os.ReadFile(filepath.Join(dir, "pypi.cred"))

	if reflect.DeepEqual(first[:NonceSize], second[:NonceSize]) {
		t.Errorf("Re-sealing reused the nonce")
	}
}

func TestListCredentialFiles(t *testing.T) {
	dir := t.TempDir()
	key := testKey(t)

	for _, name := range []string{"pypi", "company-prod", "company-staging"} {
		if err := SealCredentialFile(dir, name, key, Credential{Username: "u", Secret: "s"}); err != nil {
			t.Fatalf("SealCredentialFile failed: %v", err)
		}
	}
	// A stray non-credential file must be ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("Failed to write stray file: %v", err)
	}

	all, err := ListCredentialFiles(dir, "")
	if err != nil {
		t.Fatalf("ListCredentialFiles failed: %v", err)
	}
	want := []string{"company-prod", "company-staging", "pypi"}
	if !reflect.DeepEqual(all, want) {
		t.Errorf("Expected %v, got %v", want, all)
	}

	filtered, err := ListCredentialFiles(dir, "company-*")
	if err != nil {
		t.Fatalf("ListCredentialFiles with pattern failed: %v", err)
	}
	want = []string{"company-prod", "company-staging"}
	if !reflect.DeepEqual(filtered, want) {
		t.Errorf("Expected %v, got %v", want, filtered)
	}
}

func TestListCredentialFilesEmptyStore(t *testing.T) {
	names, err := ListCredentialFiles(filepath.Join(t.TempDir(), "does-not-exist"), "")
	if err != nil {
		t.Fatalf("Expected no error for missing store, got: %v", err)
	}
	if names != nil {
		t.Errorf("Expected nil, got %v", names)
	}
}

func TestRemoveCredentialFile(t *testing.T) {
	dir := t.TempDir()
	key := testKey(t)

	if err := SealCredentialFile(dir, "pypi", key, Credential{Username: "u", Secret: "s"}); err != nil {
		t.Fatalf("SealCredentialFile failed: %v", err)
	}
	if err := RemoveCredentialFile(dir, "pypi"); err != nil {
		t.Fatalf("RemoveCredentialFile failed: %v", err)
	}
	if err := RemoveCredentialFile(dir, "pypi"); !errors.Is(err, rerrors.ErrCredentialNotFound) {
		t.Errorf("Expected ErrCredentialNotFound on second removal, got: %v", err)
	}
}

func TestStoreKeyRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store", "rewa.key")
	key := testKey(t)

	if err := SaveStoreKey(path, key); err != nil {
		t.Fatalf("SaveStoreKey failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected key file to exist: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("Expected key file mode 0600, got %o", info.Mode().Perm())
	}

	loaded, err := LoadStoreKey(path)
	if err != nil {
		t.Fatalf("LoadStoreKey failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, key) {
		t.Errorf("Loaded key differs from saved key")
	}
}

func TestLoadStoreKeyMissing(t *testing.T) {
	_, err := LoadStoreKey(filepath.Join(t.TempDir(), "missing.key"))
	if !errors.Is(err, rerrors.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got: %v", err)
	}
}

func TestLoadStoreKeyBadLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.key")
	if err := os.WriteFile(path, []byte("too short"), 0o600); err != nil {
		t.Fatalf("Failed to write key file: %v", err)
	}

	_, err := LoadStoreKey(path)
	if !errors.Is(err, rerrors.ErrInvalidKeyLength) {
		t.Errorf("Expected ErrInvalidKeyLength, got: %v", err)
	}
}
