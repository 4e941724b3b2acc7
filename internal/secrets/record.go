package secrets

import (
	"encoding/hex"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/envcrypt/internal/errors"
)

// recordSeparator splits the IV from the ciphertext in a Record.
const recordSeparator = ":"

// Record is the on-disk form of an encrypted file: hex(iv):hex(ciphertext).
type Record struct {
	IV         []byte
	Ciphertext []byte
}

// String encodes the record as lowercase hex fields joined by a colon.
func (r Record) String() string {
	return hex.EncodeToString(r.IV) + recordSeparator + hex.EncodeToString(r.Ciphertext)
}

// ParseRecord decodes "<iv_hex>:<ciphertext_hex>". Surrounding whitespace is
// ignored. Anything other than exactly two non-empty hex fields is
// rejected with ErrMalformedRecord.
func ParseRecord(s string) (*Record, error) {
	fields := strings.Split(strings.TrimSpace(s), recordSeparator)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: expected 2 colon-separated fields, got %d", kerrors.ErrMalformedRecord, len(fields))
	}
	if fields[0] == "" || fields[1] == "" {
		return nil, fmt.Errorf("%w: empty field", kerrors.ErrMalformedRecord)
	}

	iv, err := hex.DecodeString(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: iv is not hex: %v", kerrors.ErrMalformedRecord, err)
	}
	ciphertext, err := hex.DecodeString(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext is not hex: %v", kerrors.ErrMalformedRecord, err)
	}

	return &Record{IV: iv, Ciphertext: ciphertext}, nil
}
