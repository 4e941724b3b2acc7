package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/envcrypt/internal/errors"
	"github.com/PolarWolf314/envcrypt/internal/secrets"
)

// FileName is the name of the optional per-directory config file.
const FileName = ".envcrypt.toml"

// Config holds defaults for the encrypt and decrypt commands.
// Command-line flags take precedence over every field.
type Config struct {
	// Cipher is the cipher identifier, e.g. "aes-256-cbc".
	Cipher string `toml:"cipher"`

	// Env is the default environment name. Empty means ".env".
	Env string `toml:"env"`

	// AuditLog is a JSON Lines file that records each operation.
	// Relative paths are resolved against the config's directory. Empty disables auditing.
	AuditLog string `toml:"audit_log,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{Cipher: secrets.DefaultCipher}
}

// Path returns the config file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads dir/.envcrypt.toml. A missing file yields Default().
func Load(dir string) (*Config, error) {
	config := Default()

	configPath := Path(dir)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	meta, err := LoadTOML(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidConfig, configPath, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s: unknown keys: %s", kerrors.ErrInvalidConfig, configPath, strings.Join(keys, ", "))
	}

	if config.Cipher == "" {
		config.Cipher = secrets.DefaultCipher
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", kerrors.ErrInvalidConfig, configPath, err)
	}

	return config, nil
}

// Save writes config to dir/.envcrypt.toml.
func Save(dir string, config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	if err := SaveTOML(Path(dir), config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// Validate checks that the cipher identifier is supported.
func (c *Config) Validate() error {
	_, err := secrets.LookupCipher(c.Cipher)
	return err
}

// AuditLogPath returns the absolute audit log path, or "" when auditing is off.
func (c *Config) AuditLogPath(dir string) string {
	if c.AuditLog == "" {
		return ""
	}
	if filepath.IsAbs(c.AuditLog) {
		return c.AuditLog
	}
	return filepath.Join(dir, c.AuditLog)
}
