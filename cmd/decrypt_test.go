package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/envcrypt/internal/errors"
)

// encryptFixture encrypts content as .env in dir with testKey and removes the plaintext.
func encryptFixture(t *testing.T, dir, content string) {
	t.Helper()
	envPath := writeEnvFile(t, dir, ".env", content)
	if output, err := runCLI(t, "encrypt", "--dir", dir, "--key", testKey); err != nil {
		t.Fatalf("Encrypt failed: %v\nOutput: %s", err, output)
	}
	if err := os.Remove(envPath); err != nil {
		t.Fatalf("Failed to remove plaintext: %v", err)
	}
}

func TestDecryptCommand_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	content := "DB_HOST=localhost\nDB_PASSWORD=s3cr3t\n"
	encryptFixture(t, dir, content)

	output, err := runCLI(t, "decrypt", "--dir", dir, "--key", testKey)
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "Decrypted") {
		t.Errorf("Expected success message, got: %s", output)
	}

	envPath := filepath.Join(dir, ".env")
	if got := readFile(t, envPath); got != content {
		t.Errorf("Expected %q, got %q", content, got)
	}

	info, err := os.Stat(envPath)
	if err != nil {
		t.Fatalf("Failed to stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0644 {
		t.Errorf("Expected mode 0644, got %o", perm)
	}
}

func TestDecryptCommand_MissingKey(t *testing.T) {
	dir := t.TempDir()
	encryptFixture(t, dir, "A=1")

	output, err := runCLI(t, "decrypt", "--dir", dir)
	if !errors.Is(err, kerrors.ErrMissingKey) {
		t.Fatalf("Expected ErrMissingKey, got %v", err)
	}
	if !strings.Contains(output, "--key-stdin") {
		t.Errorf("Expected key hint, got: %s", output)
	}
}

func TestDecryptCommand_MissingEncryptedFile(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "decrypt", "--dir", dir, "--key", testKey, "--env", "staging")
	if !errors.Is(err, kerrors.ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestDecryptCommand_MalformedRecord(t *testing.T) {
	dir := t.TempDir()
	writeEnvFile(t, dir, ".env.encrypted", "this is not a record")

	output, err := runCLI(t, "decrypt", "--dir", dir, "--key", testKey)
	if !errors.Is(err, kerrors.ErrMalformedRecord) {
		t.Fatalf("Expected ErrMalformedRecord, got %v", err)
	}
	if !strings.Contains(output, "<iv_hex>:<ciphertext_hex>") {
		t.Errorf("Expected record format hint, got: %s", output)
	}
}

func TestDecryptCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	encryptFixture(t, dir, "A=1")
	existing := writeEnvFile(t, dir, ".env", "LOCAL=1")

	_, err := runCLI(t, "decrypt", "--dir", dir, "--key", testKey)
	if !errors.Is(err, kerrors.ErrFileExists) {
		t.Fatalf("Expected ErrFileExists, got %v", err)
	}
	if got := readFile(t, existing); got != "LOCAL=1" {
		t.Errorf("Existing file was modified: %q", got)
	}

	output, err := runCLI(t, "decrypt", "--dir", dir, "--key", testKey, "--force")
	if err != nil {
		t.Fatalf("Decrypt with --force failed: %v", err)
	}
	if !strings.Contains(output, "Overwrote") {
		t.Errorf("Expected overwrite notice, got: %s", output)
	}
	if got := readFile(t, existing); got != "A=1" {
		t.Errorf("Expected decrypted content, got %q", got)
	}
}

func TestDecryptCommand_Filename(t *testing.T) {
	dir := t.TempDir()
	encryptFixture(t, dir, "A=1")

	if _, err := runCLI(t, "decrypt", "--dir", dir, "--key", testKey, "--filename", ".env.local"); err != nil {
		t.Fatalf("Command failed: %v", err)
	}

	if got := readFile(t, filepath.Join(dir, ".env.local")); got != "A=1" {
		t.Errorf("Expected decrypted content, got %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, ".env")); !os.IsNotExist(err) {
		t.Errorf("Expected .env not to be written")
	}
}

func TestDecryptCommand_DryRun(t *testing.T) {
	dir := t.TempDir()
	encryptFixture(t, dir, "A=1")

	output, err := runCLI(t, "decrypt", "--dir", dir, "--key", testKey, "--dry-run")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(output, "Key verified") {
		t.Errorf("Expected dry-run message, got: %s", output)
	}
	if _, err := os.Stat(filepath.Join(dir, ".env")); !os.IsNotExist(err) {
		t.Errorf("Dry run wrote the decrypted file")
	}
}

func TestDecryptCommand_KeyFromStdin(t *testing.T) {
	dir := t.TempDir()
	encryptFixture(t, dir, "A=1")
	withStdin(t, testKey+"\r\n")

	if output, err := runCLI(t, "decrypt", "--dir", dir, "--key-stdin"); err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}
	if got := readFile(t, filepath.Join(dir, ".env")); got != "A=1" {
		t.Errorf("Expected decrypted content, got %q", got)
	}
}
