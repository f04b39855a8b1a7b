package protocol

import "errors"

var (
	// ErrInvalidAsset indicates malformed asset text or an unknown symbol.
	ErrInvalidAsset = errors.New("protocol: invalid asset")

	// ErrInvalidPublicKey indicates public key text that cannot be decoded.
	ErrInvalidPublicKey = errors.New("protocol: invalid public key")

	// ErrUnknownOperation indicates an operation name or tag outside the catalog.
	ErrUnknownOperation = errors.New("protocol: unknown operation")

	// ErrDeprecatedOperation indicates a tag kept only as a numbering placeholder.
	ErrDeprecatedOperation = errors.New("protocol: deprecated operation")

	// ErrNilOperation indicates a nil operation in an operation list.
	ErrNilOperation = errors.New("protocol: nil operation")
)
