package action

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/terracoremate/hivekit/journal"
	"github.com/terracoremate/hivekit/network"
	"github.com/terracoremate/hivekit/protocol"
	"github.com/terracoremate/hivekit/tx"
	"github.com/terracoremate/hivekit/wallet"
)

const logModule = "action"

// Signer builds and signs a transaction from operations and keys.
type Signer interface {
	BuildAndSign(ctx context.Context, ops []protocol.Operation, keys [][]byte) (*tx.SignedTransaction, error)
}

// Broadcaster hands a signed transaction to the network.
type Broadcaster interface {
	BroadcastTransaction(ctx context.Context, signed *tx.SignedTransaction) (*network.BroadcastResult, error)
}

// Journal records submitted transactions.
type Journal interface {
	Put(e *journal.Entry) error
	MarkBroadcast(id string, blockNum uint32) error
	MarkFailed(id string, reason string) error
}

// Compile-time interface checks.
var (
	_ Signer      = (*tx.Builder)(nil)
	_ Broadcaster = (*network.RPCClient)(nil)
	_ Journal     = (*journal.Store)(nil)
)

// Receipt reports where a submitted action landed.
type Receipt struct {
	TxID     string
	BlockNum uint32
}

// Submitter signs actions with account keys and broadcasts them.
// Journal is optional.
type Submitter struct {
	Signer      Signer
	Broadcaster Broadcaster
	Journal     Journal
	Now         func() time.Time
}

// Prepare signs a with the account key for its role without broadcasting.
// The raw key is wiped once signing returns.
func Prepare(ctx context.Context, signer Signer, account *wallet.Account, a *Action) (*tx.SignedTransaction, error) {
	if signer == nil || account == nil || a == nil {
		return nil, ErrNilParam
	}
	if a.Account != account.Username {
		return nil, fmt.Errorf("%w: action for %q signed by %q", ErrInvalidAction, a.Account, account.Username)
	}
	op, err := a.Operation()
	if err != nil {
		return nil, err
	}
	key, err := account.PrivateKey(a.Role)
	if err != nil {
		return nil, err
	}
	defer clear(key)

	return signer.BuildAndSign(ctx, []protocol.Operation{op}, [][]byte{key})
}

// Submit signs a and broadcasts it through b.
func Submit(ctx context.Context, signer Signer, b Broadcaster, account *wallet.Account, a *Action) (*Receipt, error) {
	s := &Submitter{Signer: signer, Broadcaster: b}
	return s.Submit(ctx, account, a)
}

// Submit signs a, journals it when a journal is configured, and broadcasts it.
// The journal entry is marked with the broadcast outcome.
func (s *Submitter) Submit(ctx context.Context, account *wallet.Account, a *Action) (*Receipt, error) {
	if s.Broadcaster == nil {
		return nil, fmt.Errorf("%w: broadcaster", ErrNilParam)
	}
	fields := log.Fields{"module": logModule}
	if a != nil {
		fields["account"] = a.Account
		fields["action"] = a.ID
	}

	signed, err := Prepare(ctx, s.Signer, account, a)
	if err != nil {
		log.WithFields(fields).WithError(err).Warn("action not executed")
		return nil, err
	}
	fields["txid"] = signed.ID

	if s.Journal != nil {
		entry, err := journal.NewEntry(account.Username, signed, s.now())
		if err != nil {
			return nil, err
		}
		if err := s.Journal.Put(entry); err != nil && !errors.Is(err, journal.ErrDuplicate) {
			return nil, fmt.Errorf("action: journal: %w", err)
		}
	}

	res, err := s.Broadcaster.BroadcastTransaction(ctx, signed)
	if err != nil {
		log.WithFields(fields).WithError(err).Warn("broadcast failed")
		s.mark(signed.ID, func(j Journal) error { return j.MarkFailed(signed.ID, err.Error()) })
		return nil, err
	}

	s.mark(signed.ID, func(j Journal) error { return j.MarkBroadcast(signed.ID, res.BlockNum) })
	fields["block"] = res.BlockNum
	log.WithFields(fields).Info("action broadcast")
	return &Receipt{TxID: signed.ID, BlockNum: res.BlockNum}, nil
}

// mark updates the journal, logging rather than failing on error.
func (s *Submitter) mark(id string, fn func(Journal) error) {
	if s.Journal == nil {
		return
	}
	if err := fn(s.Journal); err != nil {
		log.WithFields(log.Fields{"module": logModule, "txid": id}).WithError(err).Warn("journal update failed")
	}
}

func (s *Submitter) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
