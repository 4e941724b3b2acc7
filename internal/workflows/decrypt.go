package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/envcrypt/internal/audit"
	kerrors "github.com/PolarWolf314/envcrypt/internal/errors"
	"github.com/PolarWolf314/envcrypt/internal/secrets"
	"github.com/PolarWolf314/envcrypt/internal/utils"
)

// Decrypt decrypts "<file>.encrypted" back into the environment's env file,
// or into opts.Output when set.
//
// The key is checked before any file is touched. A dry run decrypts in
// memory, which verifies the key, but writes nothing.
//
// Returns ErrMissingKey if opts.Key is empty.
// Returns ErrFileNotFound if the encrypted file does not exist.
// Returns ErrMalformedRecord if the encrypted file is not a valid record.
// Returns ErrDecryptFailed if the key is wrong or the ciphertext is corrupt.
// Returns ErrFileExists if the output file exists and Force is not set.
func Decrypt(ctx context.Context, opts Options) (*Result, error) {
	key, err := secrets.RequireKey(opts.Key)
	if err != nil {
		return nil, err
	}

	c, err := secrets.LookupCipher(opts.Cipher)
	if err != nil {
		return nil, err
	}

	envFile := secrets.EnvFilePath(opts.dir(), opts.Env)
	source := secrets.EncryptedFileName(envFile)
	output := envFile
	if opts.Output != "" {
		output = resolvePath(opts.dir(), opts.Output)
	}

	result := &Result{
		Operation:    OperationDecrypt,
		SourceFile:   source,
		OutputFile:   output,
		Cipher:       c.Name,
		DryRun:       opts.DryRun,
		OutputExists: utils.FileExists(output),
	}

	data, err := secrets.ReadEnvFile(source)
	if err != nil {
		return nil, err
	}

	plaintext, err := secrets.Decrypt(string(data), key.Secret, c.Name)
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		if result.OutputExists && !opts.Force {
			return nil, fmt.Errorf("%w: %s (use --force to overwrite)", kerrors.ErrFileExists, output)
		}
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := secrets.WriteEnvFile(output, plaintext, opts.Force, secrets.DecryptedFileMode); err != nil {
		return nil, err
	}

	audit.Log(opts.AuditLog, audit.Entry{
		Operation: OperationDecrypt.String(),
		Env:       opts.Env,
		Cipher:    c.Name,
		Source:    source,
		Output:    output,
	})

	return result, nil
}
