package secrets

import (
	"bytes"
	"fmt"

	kerrors "github.com/PolarWolf314/envcrypt/internal/errors"
)

// pkcs7Pad always appends between 1 and blockSize bytes, so a
// block-aligned input gains a full block of padding.
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data), len(data)+n)
	copy(out, data)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: invalid padded length %d", kerrors.ErrDecryptFailed, len(data))
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: bad padding", kerrors.ErrDecryptFailed)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: bad padding", kerrors.ErrDecryptFailed)
		}
	}

	return data[:len(data)-n], nil
}
