package action

import "errors"

var (
	// ErrInvalidAction indicates an action with a missing or malformed field.
	ErrInvalidAction = errors.New("action: invalid action")

	// ErrUnsupportedRole indicates a role that cannot authorize custom actions.
	ErrUnsupportedRole = errors.New("action: role cannot authorize custom actions")

	// ErrInvalidAmount indicates a zero, negative or non-finite quantity.
	ErrInvalidAmount = errors.New("action: invalid amount")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("action: required parameter is nil")
)
