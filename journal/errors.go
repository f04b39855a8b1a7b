package journal

import "errors"

var (
	// ErrNotFound indicates no journal entry exists for the transaction id.
	ErrNotFound = errors.New("journal: entry not found")

	// ErrDuplicate indicates an entry with this transaction id already exists.
	ErrDuplicate = errors.New("journal: duplicate entry")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("journal: required parameter is nil")

	// ErrInvalidID indicates a transaction id that is not 40 hex characters.
	ErrInvalidID = errors.New("journal: invalid transaction id")
)
