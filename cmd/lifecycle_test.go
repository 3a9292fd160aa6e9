package cmd

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/rewahq/rewa/internal/configs"
	rerrors "github.com/rewahq/rewa/internal/errors"
)

// withTempSettings redirects the user settings to a throwaway directory
// for the duration of the test.
func withTempSettings(t *testing.T) *configs.UserSettings {
	t.Helper()
	orig := configs.UserRewaSettings
	base := t.TempDir()
	configs.UserRewaSettings = &configs.UserSettings{
		ToolchainsPath:  filepath.Join(base, "toolchains"),
		CredsPath:       filepath.Join(base, "creds"),
		StoreKeyPath:    filepath.Join(base, "keys", "store.key"),
		UserConfigsPath: filepath.Join(base, "config"),
		Username:        "tester",
	}
	t.Cleanup(func() { configs.UserRewaSettings = orig })
	return configs.UserRewaSettings
}

// runCommand executes a command group from a clean flag state.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	ResetCommandState(cmd)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// expectQuietExit fails the test unless err carries the given exit code.
func expectQuietExit(t *testing.T, err error, code int) {
	t.Helper()
	var quiet rerrors.QuietExit
	if !errors.As(err, &quiet) {
		t.Fatalf("Expected a quiet exit, got: %v", err)
	}
	if quiet.Code != code {
		t.Errorf("Expected exit code %d, got %d", code, quiet.Code)
	}
}

// writeToolchainArchive writes a small gzip-compressed tarball with a
// single top-level directory, the shape release archives come in.
func writeToolchainArchive(t *testing.T, dir string) string {
	t.Helper()
	var tarBuf bytes.Buffer
	tw := tar.NewWriter(&tarBuf)
	files := map[string]string{
		"demo-1.0/bin/demo":  "#!/bin/sh\n",
		"demo-1.0/README.md": "docs",
	}
	for name, content := range files {
		hdr := &tar.Header{Name: name, Typeflag: tar.TypeReg, Mode: 0o755, Size: int64(len(content))}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("Failed to write tar header: %v", err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write tar content: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Failed to close tar writer: %v", err)
	}

	var gzBuf bytes.Buffer
	gz := gzip.NewWriter(&gzBuf)
	if _, err := gz.Write(tarBuf.Bytes()); err != nil {
		t.Fatalf("Failed to gzip: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("Failed to close gzip writer: %v", err)
	}

	path := filepath.Join(dir, "demo-1.0.tar.gz")
	if err := os.WriteFile(path, gzBuf.Bytes(), 0o644); err != nil {
		t.Fatalf("Failed to write archive: %v", err)
	}
	return path
}

func TestCredsLifecycle(t *testing.T) {
	settings := withTempSettings(t)
	credsCmd := GetCredsCmd()

	if err := runCommand(t, credsCmd, "init", "-q"); err != nil {
		t.Fatalf("creds init failed: %v", err)
	}
	key, err := os.ReadFile(settings.StoreKeyPath)
	if err != nil {
		t.Fatalf("Expected store key to exist: %v", err)
	}
	if len(key) != 32 {
		t.Errorf("Expected a 32-byte store key, got %d bytes", len(key))
	}

	if err := runCommand(t, credsCmd, "set", "pypi", "--username", "alice", "--secret", "hunter2", "-q"); err != nil {
		t.Fatalf("creds set failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(settings.CredsPath, "pypi.cred")); err != nil {
		t.Fatalf("Expected sealed credential file: %v", err)
	}

	if err := runCommand(t, credsCmd, "get", "pypi", "--show-secret"); err != nil {
		t.Fatalf("creds get failed: %v", err)
	}
	if err := runCommand(t, credsCmd, "list"); err != nil {
		t.Fatalf("creds list failed: %v", err)
	}

	if err := runCommand(t, credsCmd, "remove", "pypi", "-q"); err != nil {
		t.Fatalf("creds remove failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(settings.CredsPath, "pypi.cred")); !os.IsNotExist(err) {
		t.Errorf("Expected credential file to be gone")
	}

	expectQuietExit(t, runCommand(t, credsCmd, "get", "pypi"), 1)
}

func TestCredsInitRefusesToOverwriteWithoutForce(t *testing.T) {
	settings := withTempSettings(t)
	credsCmd := GetCredsCmd()

	if err := runCommand(t, credsCmd, "init", "-q"); err != nil {
		t.Fatalf("creds init failed: %v", err)
	}
	first, err := os.ReadFile(settings.StoreKeyPath)
	if err != nil {
		t.Fatalf("Expected store key to exist: %v", err)
	}

	expectQuietExit(t, runCommand(t, credsCmd, "init", "-q"), 1)

	if err := runCommand(t, credsCmd, "init", "--force", "-q"); err != nil {
		t.Fatalf("creds init --force failed: %v", err)
	}
	second, err := os.ReadFile(settings.StoreKeyPath)
	if err != nil {
		t.Fatalf("Expected replaced store key to exist: %v", err)
	}
	if bytes.Equal(first, second) {
		t.Errorf("Expected --force to generate a fresh store key")
	}
}

func TestToolchainLifecycle(t *testing.T) {
	settings := withTempSettings(t)
	toolchainCmd := GetToolchainCmd()
	archivePath := writeToolchainArchive(t, t.TempDir())

	if err := runCommand(t, toolchainCmd, "install", "demo", archivePath, "-q"); err != nil {
		t.Fatalf("toolchain install failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(settings.ToolchainsPath, "demo", "bin", "demo")); err != nil {
		t.Fatalf("Expected extracted binary: %v", err)
	}

	expectQuietExit(t, runCommand(t, toolchainCmd, "install", "demo", archivePath, "-q"), 1)

	if err := runCommand(t, toolchainCmd, "install", "demo", archivePath, "--force", "-q"); err != nil {
		t.Fatalf("toolchain install --force failed: %v", err)
	}
	if err := runCommand(t, toolchainCmd, "list"); err != nil {
		t.Fatalf("toolchain list failed: %v", err)
	}

	if err := runCommand(t, toolchainCmd, "remove", "demo", "-q"); err != nil {
		t.Fatalf("toolchain remove failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(settings.ToolchainsPath, "demo")); !os.IsNotExist(err) {
		t.Errorf("Expected toolchain directory to be gone")
	}

	expectQuietExit(t, runCommand(t, toolchainCmd, "remove", "demo", "-q"), 1)
}

func TestReqFmtThroughGroupCommand(t *testing.T) {
	reqCmd := GetReqCmd()
	ResetCommandState(reqCmd)

	var out bytes.Buffer
	reqCmd.SetOut(&out)
	reqCmd.SetErr(&out)
	reqCmd.SetArgs([]string{"fmt", "foo", "--specifier", ">=1.0.0"})

	if err := reqCmd.Execute(); err != nil {
		t.Fatalf("req fmt failed: %v", err)
	}
	if got := out.String(); got != "foo>=1.0.0\n" {
		t.Errorf("Expected %q, got %q", "foo>=1.0.0\n", got)
	}
}
