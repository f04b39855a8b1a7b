package keys

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// PrivateKeyVersion is the Base58Check version byte of WIF private keys.
const PrivateKeyVersion = 0x80

// PrivateKeyLen is the length of a raw secp256k1 private key.
const PrivateKeyLen = 32

// DecodePrivateKey decodes private key text into raw key bytes.
//
// Accepted forms:
//   - all-hex text, decoded directly
//   - WIF starting with '5' or '6'
//   - compressed WIF starting with 'K' or 'L' (the trailing flag byte is dropped)
func DecodePrivateKey(text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty", ErrUnsupportedKeyFormat)
	}
	if isHex(text) {
		b, err := hex.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedKeyFormat, err)
		}
		return b, nil
	}

	switch text[0] {
	case '5', '6':
		return Base58CheckDecode(text)
	case 'K', 'L':
		b, err := Base58CheckDecode(text)
		if err != nil {
			return nil, err
		}
		if len(b) == 0 {
			return nil, fmt.Errorf("%w: empty payload", ErrInvalidEncoding)
		}
		return b[:len(b)-1], nil
	default:
		return nil, fmt.Errorf("%w: leading %q", ErrUnsupportedKeyFormat, text[0])
	}
}

// EncodePrivateKey encodes raw key bytes as an uncompressed WIF.
func EncodePrivateKey(raw []byte) string {
	return Base58CheckEncode(PrivateKeyVersion, raw)
}

// ValidatePrivateKey reports whether text decodes to a 32-byte private key.
func ValidatePrivateKey(text string) bool {
	b, err := DecodePrivateKey(text)
	return err == nil && len(b) == PrivateKeyLen
}

func isHex(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F')
	}) < 0
}
