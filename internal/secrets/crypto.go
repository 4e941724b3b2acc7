package secrets

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/envcrypt/internal/errors"
)

// Encrypt encrypts plaintext in CBC mode under secret and returns the record
// as "<iv_hex>:<ciphertext_hex>". Every call draws a fresh random IV.
func Encrypt(plaintext, secret []byte, cipherID string) (string, error) {
	c, err := LookupCipher(cipherID)
	if err != nil {
		return "", err
	}

	iv := make([]byte, c.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("failed to generate iv: %w", err)
	}

	record, err := encryptWithIV(c, plaintext, secret, iv)
	if err != nil {
		return "", err
	}
	return record.String(), nil
}

func encryptWithIV(c Cipher, plaintext, secret, iv []byte) (*Record, error) {
	block, err := c.block(secret)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, c.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return &Record{IV: iv, Ciphertext: ciphertext}, nil
}

// Decrypt reverses Encrypt. A record that does not parse returns
// ErrMalformedRecord; a wrong key or corrupted ciphertext returns
// ErrDecryptFailed once padding validation fails.
//
// CBC is not authenticated: a wrong key occasionally yields valid padding
// and garbage plaintext instead of an error.
func Decrypt(record string, secret []byte, cipherID string) ([]byte, error) {
	c, err := LookupCipher(cipherID)
	if err != nil {
		return nil, err
	}

	r, err := ParseRecord(record)
	if err != nil {
		return nil, err
	}
	if len(r.IV) != c.BlockSize {
		return nil, fmt.Errorf("%w: iv is %d bytes, %s needs %d", kerrors.ErrMalformedRecord, len(r.IV), c.Name, c.BlockSize)
	}

	block, err := c.block(secret)
	if err != nil {
		return nil, err
	}

	if len(r.Ciphertext)%c.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not a multiple of the block size", kerrors.ErrDecryptFailed)
	}

	plaintext := make([]byte, len(r.Ciphertext))
	cipher.NewCBCDecrypter(block, r.IV).CryptBlocks(plaintext, r.Ciphertext)

	return pkcs7Unpad(plaintext, c.BlockSize)
}
