// Package journal records signed transactions and their broadcast outcome
// in a local bbolt database.
package journal

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/terracoremate/hivekit/tx"
)

// Status is the lifecycle state of a journaled transaction.
type Status uint8

const (
	StatusSigned Status = iota
	StatusBroadcast
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSigned:
		return "signed"
	case StatusBroadcast:
		return "broadcast"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Entry is one journaled transaction.
type Entry struct {
	ID       string
	Account  string
	Ops      []string
	Created  time.Time
	Status   Status
	BlockNum uint32
	Error    string
	Raw      []byte // RPC JSON of the signed body
}

// NewEntry captures a signed transaction for account at time now.
func NewEntry(account string, signed *tx.SignedTransaction, now time.Time) (*Entry, error) {
	if signed == nil || signed.Tx == nil {
		return nil, fmt.Errorf("%w: signed transaction", ErrNilParam)
	}
	raw, err := json.Marshal(signed.Tx)
	if err != nil {
		return nil, fmt.Errorf("journal: encode transaction: %w", err)
	}
	return &Entry{
		ID:      signed.ID,
		Account: account,
		Ops:     signed.Tx.Operations.Names(),
		Created: now.UTC(),
		Status:  StatusSigned,
		Raw:     raw,
	}, nil
}

// validateID checks that id is a 20-byte hex transaction id.
func validateID(id string) error {
	b, err := hex.DecodeString(id)
	if err != nil || len(b) != 20 {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}
