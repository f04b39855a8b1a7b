// Package keys converts Hive key material between its textual encodings
// (WIF private keys, prefixed public keys) and raw bytes.
package keys

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"
)

const checksumLen = 4

// Base58CheckEncode prepends version to payload, appends the first four
// bytes of SHA256(SHA256(versioned)) and base58-encodes the result.
func Base58CheckEncode(version byte, payload []byte) string {
	buf := make([]byte, 0, 1+len(payload)+checksumLen)
	buf = append(buf, version)
	buf = append(buf, payload...)
	sum := doubleSHA256(buf)
	buf = append(buf, sum[:checksumLen]...)
	return base58.Encode(buf)
}

// Base58CheckDecode reverses Base58CheckEncode. It verifies the checksum and
// returns the payload without the leading version byte.
func Base58CheckDecode(text string) ([]byte, error) {
	raw, err := base58.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	if len(raw) < 1+checksumLen {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrInvalidEncoding, len(raw))
	}

	payload, check := raw[:len(raw)-checksumLen], raw[len(raw)-checksumLen:]
	sum := doubleSHA256(payload)
	if !bytes.Equal(sum[:checksumLen], check) {
		return nil, ErrChecksumMismatch
	}
	return payload[1:], nil
}

func doubleSHA256(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}
