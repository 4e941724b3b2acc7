package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/envcrypt/internal/errors"

	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/cast5"
)

// DefaultCipher is used when neither a flag nor the config names a cipher.
const DefaultCipher = "aes-256-cbc"

// Cipher describes a CBC-mode block cipher by its identifier.
type Cipher struct {
	Name      string
	KeySize   int
	BlockSize int

	newBlock func(key []byte) (cipher.Block, error)
}

func newAES(key []byte) (cipher.Block, error) {
	return aes.NewCipher(key)
}

func newBlowfish(key []byte) (cipher.Block, error) {
	return blowfish.NewCipher(key)
}

func newCAST5(key []byte) (cipher.Block, error) {
	return cast5.NewCipher(key)
}

var supportedCiphers = map[string]Cipher{
	"aes-128-cbc": {Name: "aes-128-cbc", KeySize: 16, BlockSize: aes.BlockSize, newBlock: newAES},
	"aes-192-cbc": {Name: "aes-192-cbc", KeySize: 24, BlockSize: aes.BlockSize, newBlock: newAES},
	"aes-256-cbc": {Name: "aes-256-cbc", KeySize: 32, BlockSize: aes.BlockSize, newBlock: newAES},
	// Blowfish accepts 4 to 56 byte keys; bf-cbc pins it to 128 bits.
	"bf-cbc":    {Name: "bf-cbc", KeySize: 16, BlockSize: blowfish.BlockSize, newBlock: newBlowfish},
	"cast5-cbc": {Name: "cast5-cbc", KeySize: cast5.KeySize, BlockSize: cast5.BlockSize, newBlock: newCAST5},
}

// LookupCipher returns the cipher for an identifier such as "aes-256-cbc".
// An empty identifier selects DefaultCipher.
func LookupCipher(id string) (Cipher, error) {
	name := strings.ToLower(strings.TrimSpace(id))
	if name == "" {
		name = DefaultCipher
	}

	c, ok := supportedCiphers[name]
	if !ok {
		return Cipher{}, fmt.Errorf("%w: %q (supported: %s)", kerrors.ErrUnknownCipher, id, strings.Join(SupportedCiphers(), ", "))
	}
	return c, nil
}

// SupportedCiphers lists the accepted cipher identifiers in a stable order.
func SupportedCiphers() []string {
	return []string{"aes-128-cbc", "aes-192-cbc", "aes-256-cbc", "bf-cbc", "cast5-cbc"}
}

// block validates the key length and creates the underlying block cipher.
// Errors from the primitive itself are reported as ErrCipherInit too.
func (c Cipher) block(key []byte) (cipher.Block, error) {
	if len(key) != c.KeySize {
		return nil, fmt.Errorf("%w: key is %d bytes, %s needs %d", kerrors.ErrCipherInit, len(key), c.Name, c.KeySize)
	}

	b, err := c.newBlock(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrCipherInit, err)
	}
	return b, nil
}
