package workflows

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/envcrypt/internal/errors"
)

// Operation is one of the two transforms envcrypt performs.
type Operation int

const (
	OperationEncrypt Operation = iota + 1
	OperationDecrypt
)

// String returns the command name of the operation.
func (op Operation) String() string {
	switch op {
	case OperationEncrypt:
		return "encrypt"
	case OperationDecrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// ParseOperation maps a command name to its Operation.
func ParseOperation(name string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "encrypt":
		return OperationEncrypt, nil
	case "decrypt":
		return OperationDecrypt, nil
	case "":
		return 0, fmt.Errorf("%w: command is required", kerrors.ErrUnknownOperation)
	default:
		return 0, fmt.Errorf("%w: %q", kerrors.ErrUnknownOperation, name)
	}
}

// Options configures the encrypt and decrypt workflows.
type Options struct {
	// Dir is the directory holding the env files. Defaults to the working directory.
	Dir string

	// Env selects ".env.<Env>"; empty selects ".env".
	Env string

	// Key is the key argument: "base64:<data>" or a raw string.
	// Encrypt generates a key when it is empty; decrypt requires it.
	Key string

	// Cipher is the cipher identifier. Empty selects aes-256-cbc.
	Cipher string

	// Output overrides the decrypted file path. Relative paths are
	// resolved against Dir. Ignored by encrypt.
	Output string

	// Force allows overwriting an existing output file.
	Force bool

	// DryRun performs every check without writing the output file.
	DryRun bool

	// AuditLog is the audit log path. Empty disables auditing.
	AuditLog string
}

func (o Options) dir() string {
	if o.Dir == "" {
		return "."
	}
	return o.Dir
}

// Result contains the outcome of an encrypt or decrypt operation.
type Result struct {
	Operation Operation

	// SourceFile is the file that was read.
	SourceFile string

	// OutputFile is the file that was written, or would be in a dry run.
	OutputFile string

	// Cipher is the normalized cipher identifier that was used.
	Cipher string

	// GeneratedKey holds the "base64:" form of a key generated by encrypt.
	// It is the only copy of the key.
	GeneratedKey string

	// DryRun indicates whether this was a dry-run (no files modified).
	DryRun bool

	// OutputExists reports whether OutputFile existed beforehand.
	OutputExists bool
}

// Run dispatches op to its workflow.
func Run(ctx context.Context, op Operation, opts Options) (*Result, error) {
	switch op {
	case OperationEncrypt:
		return Encrypt(ctx, opts)
	case OperationDecrypt:
		return Decrypt(ctx, opts)
	default:
		return nil, fmt.Errorf("%w: %s", kerrors.ErrUnknownOperation, op)
	}
}

func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
