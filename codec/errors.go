package codec

import "errors"

var (
	// ErrMissingRequiredField indicates a required record field was nil at encode time.
	ErrMissingRequiredField = errors.New("codec: missing required field")

	// ErrTimeOutOfRange indicates a timestamp that does not fit in uint32 seconds.
	ErrTimeOutOfRange = errors.New("codec: time out of range")

	// ErrNilRecord indicates a nil record or marshaler was passed for encoding.
	ErrNilRecord = errors.New("codec: nil record")
)
