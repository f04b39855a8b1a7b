package tx

import (
	"errors"
	"strings"
)

var (
	// ErrTransientUpstream indicates a head-state failure that is worth retrying.
	ErrTransientUpstream = errors.New("tx: transient upstream fault")

	// ErrHeadState indicates a non-retryable failure fetching head state.
	ErrHeadState = errors.New("tx: head state unavailable")

	// ErrInvalidHeadBlockID indicates a head block id that is not hex or is too short.
	ErrInvalidHeadBlockID = errors.New("tx: invalid head block id")

	// ErrSigningFailed indicates serialization, digest or signature generation failed.
	ErrSigningFailed = errors.New("tx: signing failed")

	// ErrInvalidSignature indicates a signature that is malformed or does not recover.
	ErrInvalidSignature = errors.New("tx: invalid signature")

	// ErrInvalidChainID indicates a chain id that is not 32 bytes of hex.
	ErrInvalidChainID = errors.New("tx: invalid chain id")

	// ErrNoOperations indicates a build request with no operations.
	ErrNoOperations = errors.New("tx: no operations")

	// ErrNoKeys indicates a build request with no signing keys.
	ErrNoKeys = errors.New("tx: no signing keys")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("tx: required parameter is nil")
)

// transientMarker is the message nodes return for faults that clear on retry.
const transientMarker = "Internal Error"

// IsTransient reports whether err is an upstream fault worth retrying.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrTransientUpstream) || strings.Contains(err.Error(), transientMarker)
}
