package keys

import (
	"bytes"
	"fmt"
	"strings"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"
)

// AddressPrefix is the Hive public key prefix.
const AddressPrefix = "STM"

// PublicKeyLen is the length of a compressed secp256k1 point.
const PublicKeyLen = 33

// EncodePublicKey renders a compressed public key as
// prefix + base58(key || RIPEMD160(key)[:4]).
func EncodePublicKey(compressed []byte, prefix string) string {
	sum := ripemd(compressed)
	buf := make([]byte, 0, len(compressed)+checksumLen)
	buf = append(buf, compressed...)
	buf = append(buf, sum[:checksumLen]...)
	return prefix + base58.Encode(buf)
}

// DecodePublicKey strips prefix from text, base58-decodes the rest and
// verifies the RIPEMD160 checksum. It returns the key bytes.
func DecodePublicKey(text, prefix string) ([]byte, error) {
	if !strings.HasPrefix(text, prefix) {
		return nil, fmt.Errorf("%w: want %q", ErrInvalidPrefix, prefix)
	}
	raw, err := base58.Decode(text[len(prefix):])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	if len(raw) <= checksumLen {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrInvalidEncoding, len(raw))
	}

	payload, check := raw[:len(raw)-checksumLen], raw[len(raw)-checksumLen:]
	sum := ripemd(payload)
	if !bytes.Equal(sum[:checksumLen], check) {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}

// ParsePublicKey decodes text and checks the result is a point on the curve.
func ParsePublicKey(text, prefix string) (*ec.PublicKey, error) {
	b, err := DecodePublicKey(text, prefix)
	if err != nil {
		return nil, err
	}
	if len(b) != PublicKeyLen {
		return nil, fmt.Errorf("%w: public key is %d bytes", ErrInvalidKey, len(b))
	}
	pub, err := ec.PublicKeyFromBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return pub, nil
}

// PublicKeyFromPrivate derives the prefixed public key of a raw private key.
func PublicKeyFromPrivate(raw []byte, prefix string) (string, error) {
	if len(raw) != PrivateKeyLen {
		return "", fmt.Errorf("%w: private key is %d bytes", ErrInvalidKey, len(raw))
	}
	priv, _ := ec.PrivateKeyFromBytes(raw)
	return EncodePublicKey(priv.PubKey().Compressed(), prefix), nil
}

func ripemd(b []byte) []byte {
	h := ripemd160.New()
	h.Write(b)
	return h.Sum(nil)
}
