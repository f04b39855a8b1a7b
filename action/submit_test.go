package action

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terracoremate/hivekit/journal"
	"github.com/terracoremate/hivekit/network"
	"github.com/terracoremate/hivekit/protocol"
	"github.com/terracoremate/hivekit/tx"
	"github.com/terracoremate/hivekit/wallet"
)

const (
	goldenWIF  = "5KQwrPbwdL6PhXujxW37FSSQZ1JiwsST4cqQzDeyXtP79zkvFD3"
	goldenTxID = "2275164671a1ebacaa788855b8eb8feba1108e64"
	goldenSig  = "207661c988452e4c974789543f8465d3e0be68d47503dd7faa59ff927d63e893c402a21f4ad492e8b9e3dba6d79d6e5e5a485c8f41a3e6b0717299b648c92a2965"
)

func goldenChain() *network.MockChainService {
	return &network.MockChainService{
		HeadStateFn: func(context.Context) (*tx.HeadState, error) {
			return &tx.HeadState{
				HeadBlockNumber: 0x010085f6,
				HeadBlockID:     "010085f685abf4dc0000000000000000000000ff",
				Time:            time.Date(2016, 4, 6, 8, 24, 27, 0, time.UTC),
			}, nil
		},
	}
}

func goldenAccount(t *testing.T) *wallet.Account {
	t.Helper()
	a, err := wallet.NewAccount("alice")
	require.NoError(t, err)
	require.NoError(t, a.SetKey(wallet.Posting, goldenWIF))
	return a
}

// goldenAction reproduces the fixed custom_json used by the signing vectors.
func goldenAction(t *testing.T) *Action {
	t.Helper()
	params := NewParams()
	params.Add("target", "bob")
	a, err := BuildGenericAction("alice", IDBattle, wallet.Posting, params)
	require.NoError(t, err)
	a.NoWatermark = true
	return a
}

// recordingSigner captures the keys it was handed.
type recordingSigner struct {
	keys [][]byte
	err  error
}

func (s *recordingSigner) BuildAndSign(_ context.Context, ops []protocol.Operation, keys [][]byte) (*tx.SignedTransaction, error) {
	s.keys = keys
	if s.err != nil {
		return nil, s.err
	}
	return &tx.SignedTransaction{Tx: &tx.Body{Operations: ops}, ID: goldenTxID}, nil
}

func TestPrepare_Golden(t *testing.T) {
	chain := goldenChain()
	signer := tx.NewBuilder(chain, tx.Options{})

	signed, err := Prepare(context.Background(), signer, goldenAccount(t), goldenAction(t))
	require.NoError(t, err)
	assert.Equal(t, goldenTxID, signed.ID)
	assert.Equal(t, []string{goldenSig}, signed.Tx.Signatures)
}

func TestPrepare_WipesKey(t *testing.T) {
	signer := &recordingSigner{}
	_, err := Prepare(context.Background(), signer, goldenAccount(t), goldenAction(t))
	require.NoError(t, err)
	require.Len(t, signer.keys, 1)
	assert.Equal(t, make([]byte, 32), signer.keys[0])
}

func TestPrepare_Errors(t *testing.T) {
	signer := &recordingSigner{}
	account := goldenAccount(t)

	_, err := Prepare(context.Background(), nil, account, goldenAction(t))
	assert.ErrorIs(t, err, ErrNilParam)

	other := goldenAction(t)
	other.Account = "bob"
	_, err = Prepare(context.Background(), signer, account, other)
	assert.ErrorIs(t, err, ErrInvalidAction)

	active, err := BuildGenericAction("alice", "x", wallet.Active, nil)
	require.NoError(t, err)
	_, err = Prepare(context.Background(), signer, account, active)
	assert.ErrorIs(t, err, wallet.ErrKeyNotFound)
}

func TestSubmit_BroadcastsAndJournals(t *testing.T) {
	store, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer store.Close()

	chain := goldenChain()
	var broadcast *tx.SignedTransaction
	chain.BroadcastTransactionFn = func(_ context.Context, signed *tx.SignedTransaction) (*network.BroadcastResult, error) {
		broadcast = signed
		return &network.BroadcastResult{ID: signed.ID, BlockNum: 777}, nil
	}

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s := &Submitter{
		Signer:      tx.NewBuilder(chain, tx.Options{}),
		Broadcaster: chain,
		Journal:     store,
		Now:         func() time.Time { return now },
	}
	receipt, err := s.Submit(context.Background(), goldenAccount(t), goldenAction(t))
	require.NoError(t, err)
	assert.Equal(t, &Receipt{TxID: goldenTxID, BlockNum: 777}, receipt)
	require.NotNil(t, broadcast)
	assert.Equal(t, goldenTxID, broadcast.ID)

	entry, err := store.Get(goldenTxID)
	require.NoError(t, err)
	assert.Equal(t, journal.StatusBroadcast, entry.Status)
	assert.Equal(t, uint32(777), entry.BlockNum)
	assert.Equal(t, "alice", entry.Account)
	assert.Equal(t, []string{"custom_json"}, entry.Ops)
	assert.True(t, now.Equal(entry.Created))
}

func TestSubmit_BroadcastFailureMarksJournal(t *testing.T) {
	store, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer store.Close()

	chain := goldenChain()
	chain.BroadcastTransactionFn = func(context.Context, *tx.SignedTransaction) (*network.BroadcastResult, error) {
		return nil, network.ErrBroadcastRejected
	}

	s := &Submitter{Signer: tx.NewBuilder(chain, tx.Options{}), Broadcaster: chain, Journal: store}
	_, err = s.Submit(context.Background(), goldenAccount(t), goldenAction(t))
	assert.ErrorIs(t, err, network.ErrBroadcastRejected)

	entry, err := store.Get(goldenTxID)
	require.NoError(t, err)
	assert.Equal(t, journal.StatusFailed, entry.Status)
	assert.Contains(t, entry.Error, "broadcast rejected")
}

func TestSubmit_WithoutJournal(t *testing.T) {
	chain := goldenChain()
	chain.BroadcastTransactionFn = func(_ context.Context, signed *tx.SignedTransaction) (*network.BroadcastResult, error) {
		return &network.BroadcastResult{ID: signed.ID, BlockNum: 1}, nil
	}

	receipt, err := Submit(context.Background(), tx.NewBuilder(chain, tx.Options{}), chain, goldenAccount(t), goldenAction(t))
	require.NoError(t, err)
	assert.Equal(t, goldenTxID, receipt.TxID)
}

func TestSubmit_SignFailureLogsAndSkipsBroadcast(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	chain := &network.MockChainService{
		BroadcastTransactionFn: func(context.Context, *tx.SignedTransaction) (*network.BroadcastResult, error) {
			t.Fatal("broadcast must not be called")
			return nil, nil
		},
	}
	signer := &recordingSigner{err: errors.New("head state unavailable")}

	_, err := Submit(context.Background(), signer, chain, goldenAccount(t), goldenAction(t))
	require.Error(t, err)

	var found bool
	for _, e := range hook.AllEntries() {
		if e.Message == "action not executed" {
			found = true
			assert.Equal(t, logrus.WarnLevel, e.Level)
			assert.Equal(t, "alice", e.Data["account"])
			assert.Equal(t, IDBattle, e.Data["action"])
		}
	}
	assert.True(t, found)
}

func TestSubmit_NilBroadcaster(t *testing.T) {
	s := &Submitter{Signer: &recordingSigner{}}
	_, err := s.Submit(context.Background(), goldenAccount(t), goldenAction(t))
	assert.ErrorIs(t, err, ErrNilParam)
}
