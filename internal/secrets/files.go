package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/envcrypt/internal/errors"
)

// EncryptedSuffix is appended to an env file name to form its encrypted counterpart.
const EncryptedSuffix = ".encrypted"

// File permissions for written output.
const (
	EncryptedFileMode os.FileMode = 0600
	// #nosec G306 -- decrypted .env files need to be editable and readable by tooling.
	DecryptedFileMode os.FileMode = 0644
)

// EnvFileName returns ".env" for an empty environment name and
// ".env.<env>" otherwise.
func EnvFileName(env string) string {
	var b strings.Builder
	for _, part := range []string{"env", strings.TrimSpace(env)} {
		if part == "" {
			continue
		}
		b.WriteString(".")
		b.WriteString(part)
	}
	return b.String()
}

// EnvFilePath joins the environment's file name onto dir.
func EnvFilePath(dir, env string) string {
	return filepath.Join(dir, EnvFileName(env))
}

// EncryptedFileName returns the path of the encrypted file for path.
func EncryptedFileName(path string) string {
	return path + EncryptedSuffix
}

// ReadEnvFile reads the whole file, returning ErrFileNotFound when it does not exist.
func ReadEnvFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return data, nil
}

// WriteEnvFile writes data to path. Unless force is set, an existing file is
// left untouched and ErrFileExists is returned. The existence check and the
// write are not atomic.
func WriteEnvFile(path string, data []byte, force bool, perm os.FileMode) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", kerrors.ErrFileExists, path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("failed to write to %s: %w", path, err)
	}

	return nil
}
