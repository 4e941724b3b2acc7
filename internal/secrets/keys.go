package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/envcrypt/internal/errors"
)

// KeyPrefix marks a key argument as base64-encoded binary.
const KeyPrefix = "base64:"

// Key is resolved key material ready to hand to the codec.
type Key struct {
	Secret []byte

	// Generated is true when no key was supplied and Secret was freshly
	// generated. It is the only copy and must be shown to the user.
	Generated bool
}

// Encoded returns the secret in the form accepted by --key.
func (k *Key) Encoded() string {
	return EncodeKey(k.Secret)
}

// GenerateSecret returns size random bytes from crypto/rand.
func GenerateSecret(size int) ([]byte, error) {
	secret := make([]byte, size)
	if _, err := rand.Read(secret); err != nil {
		return nil, err
	}

	return secret, nil
}

// EncodeKey renders a secret as "base64:<std base64>".
func EncodeKey(secret []byte) string {
	return KeyPrefix + base64.StdEncoding.EncodeToString(secret)
}

// ParseKey converts a key argument into a secret. Arguments starting with
// "base64:" are decoded; anything else is used as its raw bytes.
// The length is not checked here.
func ParseKey(raw string) ([]byte, error) {
	encoded, ok := strings.CutPrefix(raw, KeyPrefix)
	if !ok {
		return []byte(raw), nil
	}

	secret, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		// Accept keys that were copied without their trailing '='.
		var rawErr error
		secret, rawErr = base64.RawStdEncoding.DecodeString(encoded)
		if rawErr != nil {
			return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidKeyEncoding, err)
		}
	}

	return secret, nil
}

// ResolveKey parses raw, or generates a size-byte secret when raw is empty.
func ResolveKey(raw string, size int) (*Key, error) {
	if raw == "" {
		secret, err := GenerateSecret(size)
		if err != nil {
			return nil, fmt.Errorf("failed to generate key: %w", err)
		}
		return &Key{Secret: secret, Generated: true}, nil
	}

	secret, err := ParseKey(raw)
	if err != nil {
		return nil, err
	}
	return &Key{Secret: secret}, nil
}

// RequireKey parses raw and fails with ErrMissingKey when it is empty.
// Decryption never generates a key.
func RequireKey(raw string) (*Key, error) {
	if raw == "" {
		return nil, kerrors.ErrMissingKey
	}

	secret, err := ParseKey(raw)
	if err != nil {
		return nil, err
	}
	return &Key{Secret: secret}, nil
}

// KeyFromBytes wraps already-decoded key material unchanged.
func KeyFromBytes(secret []byte) *Key {
	return &Key{Secret: secret}
}
