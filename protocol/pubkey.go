package protocol

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/terracoremate/hivekit/codec"
	"github.com/terracoremate/hivekit/keys"
)

// NullPublicKey is the textual sentinel of the all-zero public key.
const NullPublicKey PublicKey = keys.AddressPrefix + nullKeyBody

const nullKeyBody = "1111111111111111111111111111111114T1Anm"

// PublicKey is a prefixed, checksummed public key in text form. Keys are
// compared and hashed by their text, so PublicKey is usable as a map key.
type PublicKey string

// IsNull reports whether k denotes the null key, under any address prefix.
func (k PublicKey) IsNull() bool {
	if k == "" {
		return true
	}
	prefix, ok := strings.CutSuffix(string(k), nullKeyBody)
	return ok && prefix != "" && strings.TrimFunc(prefix, unicode.IsUpper) == ""
}

func (k PublicKey) String() string { return string(k) }

// Decode returns the 33-byte compressed point. The null key decodes to
// 33 zero bytes without touching the base58 payload.
func (k PublicKey) Decode() ([]byte, error) {
	if k.IsNull() {
		return make([]byte, keys.PublicKeyLen), nil
	}
	b, err := keys.DecodePublicKey(string(k), keys.AddressPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	if len(b) != keys.PublicKeyLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidPublicKey, len(b))
	}
	return b, nil
}

// Validate decodes k and checks that it is a point on the curve.
func (k PublicKey) Validate() error {
	if k.IsNull() {
		return nil
	}
	if _, err := keys.ParsePublicKey(string(k), keys.AddressPrefix); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return nil
}

func (k PublicKey) MarshalHive(e *codec.Encoder) error {
	b, err := k.Decode()
	if err != nil {
		return err
	}
	e.WriteRaw(b)
	return nil
}
