package kmerstore

import (
	"encoding/binary"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"dbgwalk-core/kmer"
)

const countPrefix = 'c'

var metaKSizeKey = []byte("m/ksize")

// BadgerStore is a persistent count table. Keys are 'c' + big-endian
// canonical hash, values are big-endian uint64 counts, so iteration runs in
// ascending hash order.
type BadgerStore struct {
	db *badger.DB
	k  int

	mu      sync.Mutex
	readErr error
}

// OpenBadger opens or creates a table at path; an empty path keeps it in
// memory. k <= 0 adopts the k recorded in an existing table.
func OpenBadger(path string, k int) (*BadgerStore, error) {
	return openBadger(path, k, k)
}

// OpenBadgerAdopting opens a table at path with whatever k it records, and
// creates it with k when it is new.
func OpenBadgerAdopting(path string, k int) (*BadgerStore, error) {
	return openBadger(path, 0, k)
}

func openBadger(path string, want, fresh int) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.DetectConflicts = false // single writer
	opts.Logger = nil
	opts.MetricsEnabled = false
	if path == "" {
		opts.InMemory = true
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open badger store %q", path)
	}
	s := &BadgerStore{db: db}
	if err := s.initKSize(want, fresh); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// initKSize checks want (0 accepts any) against the recorded k, recording
// fresh on a new table.
func (s *BadgerStore) initKSize(want, fresh int) error {
	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(metaKSizeKey)
		if err == badger.ErrKeyNotFound {
			if _, ferr := kmer.NewFactory(fresh); ferr != nil {
				return ferr
			}
			s.k = fresh
			return txn.Set(metaKSizeKey, encodeCount(uint64(fresh)))
		}
		if err != nil {
			return errors.Wrap(err, "read k")
		}
		var stored int
		if err := item.Value(func(v []byte) error {
			stored = int(binary.BigEndian.Uint64(v))
			return nil
		}); err != nil {
			return errors.Wrap(err, "read k")
		}
		if want > 0 && want != stored {
			return errors.Wrapf(ErrKSizeMismatch, "requested %d, stored %d", want, stored)
		}
		s.k = stored
		return nil
	})
}

func (s *BadgerStore) KSize() int { return s.k }

// Count returns the stored count, or 0 if absent. Read failures are logged,
// reported as absent and kept for Err.
func (s *BadgerStore) Count(km kmer.Kmer) uint64 {
	var c uint64
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		c, err = getCount(txn, countKey(km.Canonical()))
		return err
	})
	if err != nil {
		s.noteReadErr("count lookup", err)
		return 0
	}
	return c
}

func (s *BadgerStore) noteReadErr(op string, err error) {
	klog.Errorf("kmerstore: %s: %v", op, err)
	s.mu.Lock()
	if s.readErr == nil {
		s.readErr = err
	}
	s.mu.Unlock()
}

// Err returns the first read error swallowed by Count or Len.
func (s *BadgerStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readErr
}

// AddBatch adds counts in as few transactions as badger allows.
func (s *BadgerStore) AddBatch(counts map[uint64]uint64) error {
	txn := s.db.NewTransaction(true)
	for h, n := range counts {
		key := countKey(h)
		cur, err := getCount(txn, key)
		if err != nil {
			txn.Discard()
			return err
		}
		val := encodeCount(cur + n)
		err = txn.Set(key, val)
		if err == badger.ErrTxnTooBig {
			if err := txn.Commit(); err != nil {
				return errors.Wrap(err, "commit counts")
			}
			txn = s.db.NewTransaction(true)
			err = txn.Set(key, val)
		}
		if err != nil {
			txn.Discard()
			return errors.Wrap(err, "set count")
		}
	}
	return errors.Wrap(txn.Commit(), "commit counts")
}

func (s *BadgerStore) ForEach(fn func(hash, count uint64) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   256,
			Prefix:         []byte{countPrefix},
		})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			h := binary.BigEndian.Uint64(item.Key()[1:])
			var c uint64
			if err := item.Value(func(v []byte) error {
				c = binary.BigEndian.Uint64(v)
				return nil
			}); err != nil {
				return err
			}
			if err := fn(h, c); err != nil {
				return err
			}
		}
		return nil
	})
}

// Len counts stored k-mers. A failed scan is logged, reported as 0 and kept
// for Err.
func (s *BadgerStore) Len() int {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte{countPrefix}})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		s.noteReadErr("len", err)
		return 0
	}
	return n
}

func (s *BadgerStore) Close() error { return s.db.Close() }

func getCount(txn *badger.Txn, key []byte) (uint64, error) {
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "get count")
	}
	var c uint64
	err = item.Value(func(v []byte) error {
		c = binary.BigEndian.Uint64(v)
		return nil
	})
	return c, err
}

func countKey(h uint64) []byte {
	key := make([]byte, 9)
	key[0] = countPrefix
	binary.BigEndian.PutUint64(key[1:], h)
	return key
}

func encodeCount(c uint64) []byte {
	v := make([]byte, 8)
	binary.BigEndian.PutUint64(v, c)
	return v
}
