package journal

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var (
	bucketTxs       = []byte("txs")
	bucketTxsByTime = []byte("txs_by_time")
)

// Store wraps a bbolt database holding journal entries.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates the journal database at dbPath.
// The parent directory is created if it does not exist.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("journal: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("journal: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketTxs, bucketTxsByTime} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("journal: create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// timeKey orders entries by creation time, breaking ties by id.
func timeKey(e *Entry) []byte {
	k := make([]byte, 8, 8+len(e.ID))
	binary.BigEndian.PutUint64(k, uint64(e.Created.UnixNano()))
	return append(k, e.ID...)
}

func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// Put stores a new entry. Returns ErrDuplicate if the id is already journaled.
func (s *Store) Put(e *Entry) error {
	if e == nil {
		return fmt.Errorf("%w: entry", ErrNilParam)
	}
	if err := validateID(e.ID); err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketTxs)
		if b.Get([]byte(e.ID)) != nil {
			return fmt.Errorf("%w: %s", ErrDuplicate, e.ID)
		}
		data, err := encodeGob(e)
		if err != nil {
			return fmt.Errorf("journal: encode entry: %w", err)
		}
		if err := b.Put([]byte(e.ID), data); err != nil {
			return fmt.Errorf("journal: put entry: %w", err)
		}
		if err := tx.Bucket(bucketTxsByTime).Put(timeKey(e), []byte(e.ID)); err != nil {
			return fmt.Errorf("journal: put time index: %w", err)
		}
		return nil
	})
}

// Get retrieves an entry by transaction id.
func (s *Store) Get(id string) (*Entry, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var e Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketTxs).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if err := decodeGob(data, &e); err != nil {
			return fmt.Errorf("journal: decode entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// update applies fn to the stored entry for id and writes it back.
func (s *Store) update(id string, fn func(*Entry)) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketTxs)
		data := b.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		var e Entry
		if err := decodeGob(data, &e); err != nil {
			return fmt.Errorf("journal: decode entry: %w", err)
		}
		fn(&e)
		out, err := encodeGob(&e)
		if err != nil {
			return fmt.Errorf("journal: encode entry: %w", err)
		}
		return b.Put([]byte(id), out)
	})
}

// MarkBroadcast records that the node included id in blockNum.
func (s *Store) MarkBroadcast(id string, blockNum uint32) error {
	return s.update(id, func(e *Entry) {
		e.Status = StatusBroadcast
		e.BlockNum = blockNum
		e.Error = ""
	})
}

// MarkFailed records that broadcasting id failed with reason.
func (s *Store) MarkFailed(id string, reason string) error {
	return s.update(id, func(e *Entry) {
		e.Status = StatusFailed
		e.Error = reason
	})
}

// Recent returns up to n entries, newest first.
func (s *Store) Recent(n int) ([]*Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	var out []*Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		txs := tx.Bucket(bucketTxs)
		c := tx.Bucket(bucketTxsByTime).Cursor()
		for k, id := c.Last(); k != nil && len(out) < n; k, id = c.Prev() {
			data := txs.Get(id)
			if data == nil {
				continue
			}
			var e Entry
			if err := decodeGob(data, &e); err != nil {
				return fmt.Errorf("journal: decode entry: %w", err)
			}
			out = append(out, &e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of journaled entries.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketTxs).Stats().KeyN
		return nil
	})
	return n, err
}
