package journal

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terracoremate/hivekit/protocol"
	"github.com/terracoremate/hivekit/tx"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func tempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "journal", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testEntry(seq int) *Entry {
	return &Entry{
		ID:      fmt.Sprintf("%040x", seq),
		Account: "alice",
		Ops:     []string{"custom_json"},
		Created: baseTime.Add(time.Duration(seq) * time.Second),
		Status:  StatusSigned,
		Raw:     []byte(`{"ref_block_num":1}`),
	}
}

func TestStore_PutAndGet(t *testing.T) {
	store := tempStore(t)
	e := testEntry(1)
	require.NoError(t, store.Put(e))

	got, err := store.Get(e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, "alice", got.Account)
	assert.Equal(t, []string{"custom_json"}, got.Ops)
	assert.True(t, e.Created.Equal(got.Created))
	assert.Equal(t, StatusSigned, got.Status)
	assert.Equal(t, e.Raw, got.Raw)
}

func TestStore_Duplicate(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Put(testEntry(1)))
	assert.ErrorIs(t, store.Put(testEntry(1)), ErrDuplicate)
}

func TestStore_NotFound(t *testing.T) {
	store := tempStore(t)
	_, err := store.Get(testEntry(9).ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.MarkBroadcast(testEntry(9).ID, 1), ErrNotFound)
}

func TestStore_InvalidInput(t *testing.T) {
	store := tempStore(t)
	assert.ErrorIs(t, store.Put(nil), ErrNilParam)
	assert.ErrorIs(t, store.Put(&Entry{ID: "xyz"}), ErrInvalidID)
	_, err := store.Get("abcd")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestStore_MarkBroadcastAndFailed(t *testing.T) {
	store := tempStore(t)
	e := testEntry(1)
	require.NoError(t, store.Put(e))

	require.NoError(t, store.MarkFailed(e.ID, "missing required posting authority"))
	got, err := store.Get(e.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, got.Status)
	assert.Equal(t, "missing required posting authority", got.Error)

	require.NoError(t, store.MarkBroadcast(e.ID, 4242))
	got, err = store.Get(e.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusBroadcast, got.Status)
	assert.Equal(t, uint32(4242), got.BlockNum)
	assert.Empty(t, got.Error)
}

func TestStore_RecentNewestFirst(t *testing.T) {
	store := tempStore(t)
	for _, seq := range []int{3, 1, 5, 2, 4} {
		require.NoError(t, store.Put(testEntry(seq)))
	}

	recent, err := store.Recent(3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, testEntry(5).ID, recent[0].ID)
	assert.Equal(t, testEntry(4).ID, recent[1].ID)
	assert.Equal(t, testEntry(3).ID, recent[2].ID)

	all, err := store.Recent(100)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	none, err := store.Recent(0)
	require.NoError(t, err)
	assert.Empty(t, none)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestStore_Persistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store1, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store1.Put(testEntry(7)))
	require.NoError(t, store1.Close())

	store2, err := Open(dbPath)
	require.NoError(t, err)
	defer store2.Close()

	got, err := store2.Get(testEntry(7).ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Account)
}

func TestNewEntry(t *testing.T) {
	body := &tx.Body{
		RefBlockNum:    34294,
		RefBlockPrefix: 3707022213,
		Expiration:     protocol.NewTime(baseTime),
		Operations: protocol.Operations{&protocol.Vote{
			Voter: "alice", Author: "bob", Permlink: "post", Weight: 10000,
		}},
		Signatures: []string{"20aa"},
	}
	signed := &tx.SignedTransaction{Tx: body, ID: fmt.Sprintf("%040x", 1)}

	e, err := NewEntry("alice", signed, baseTime.In(time.FixedZone("X", 3600)))
	require.NoError(t, err)
	assert.Equal(t, signed.ID, e.ID)
	assert.Equal(t, []string{"vote"}, e.Ops)
	assert.Equal(t, time.UTC, e.Created.Location())
	assert.Equal(t, StatusSigned, e.Status)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(e.Raw, &raw))
	assert.Equal(t, float64(34294), raw["ref_block_num"])
	assert.Equal(t, []interface{}{"20aa"}, raw["signatures"])

	_, err = NewEntry("alice", nil, baseTime)
	assert.ErrorIs(t, err, ErrNilParam)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "signed", StatusSigned.String())
	assert.Equal(t, "broadcast", StatusBroadcast.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "status(9)", Status(9).String())
}
