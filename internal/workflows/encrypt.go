package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/envcrypt/internal/audit"
	kerrors "github.com/PolarWolf314/envcrypt/internal/errors"
	"github.com/PolarWolf314/envcrypt/internal/secrets"
	"github.com/PolarWolf314/envcrypt/internal/utils"
)

// Encrypt encrypts the environment's env file into "<file>.encrypted".
//
// When opts.Key is empty a new key of the cipher's size is generated and
// returned in Result.GeneratedKey; the caller must show it to the user.
//
// Returns ErrFileNotFound if the env file does not exist.
// Returns ErrFileExists if the encrypted file exists and Force is not set.
// Returns ErrUnknownCipher or ErrCipherInit for an unusable cipher or key.
func Encrypt(ctx context.Context, opts Options) (*Result, error) {
	c, err := secrets.LookupCipher(opts.Cipher)
	if err != nil {
		return nil, err
	}

	source := secrets.EnvFilePath(opts.dir(), opts.Env)
	output := secrets.EncryptedFileName(source)

	result := &Result{
		Operation:    OperationEncrypt,
		SourceFile:   source,
		OutputFile:   output,
		Cipher:       c.Name,
		DryRun:       opts.DryRun,
		OutputExists: utils.FileExists(output),
	}

	plaintext, err := secrets.ReadEnvFile(source)
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		if result.OutputExists && !opts.Force {
			return nil, fmt.Errorf("%w: %s (use --force to overwrite)", kerrors.ErrFileExists, output)
		}
		return result, nil
	}

	key, err := secrets.ResolveKey(opts.Key, c.KeySize)
	if err != nil {
		return nil, err
	}

	record, err := secrets.Encrypt(plaintext, key.Secret, c.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrEncryptFailed, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := secrets.WriteEnvFile(output, []byte(record), opts.Force, secrets.EncryptedFileMode); err != nil {
		return nil, err
	}

	if key.Generated {
		result.GeneratedKey = key.Encoded()
	}

	audit.Log(opts.AuditLog, audit.Entry{
		Operation:    OperationEncrypt.String(),
		Env:          opts.Env,
		Cipher:       c.Name,
		Source:       source,
		Output:       output,
		KeyGenerated: key.Generated,
	})

	return result, nil
}
