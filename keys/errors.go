package keys

import "errors"

var (
	// ErrUnsupportedKeyFormat indicates private key text in no recognised encoding.
	ErrUnsupportedKeyFormat = errors.New("keys: unsupported key format")

	// ErrChecksumMismatch indicates an embedded checksum that does not match the payload.
	ErrChecksumMismatch = errors.New("keys: checksum mismatch")

	// ErrInvalidPrefix indicates a public key without the expected address prefix.
	ErrInvalidPrefix = errors.New("keys: invalid public key prefix")

	// ErrInvalidEncoding indicates text that is not valid base58 or is too short.
	ErrInvalidEncoding = errors.New("keys: invalid encoding")

	// ErrInvalidKey indicates key bytes of the wrong length or off the curve.
	ErrInvalidKey = errors.New("keys: invalid key")
)
