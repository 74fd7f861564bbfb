package kmerstore

import (
	"sync"

	"dbgwalk-core/kmer"
)

// MemoryStore is a map-backed count table. Reads may run concurrently with
// each other and with AddBatch.
type MemoryStore struct {
	k      int
	mu     sync.RWMutex
	counts map[uint64]uint64
}

// NewMemoryStore returns an empty table for k-mers of length k.
func NewMemoryStore(k int) (*MemoryStore, error) {
	if _, err := kmer.NewFactory(k); err != nil {
		return nil, err
	}
	return &MemoryStore{k: k, counts: make(map[uint64]uint64, 1<<12)}, nil
}

func (m *MemoryStore) KSize() int { return m.k }

func (m *MemoryStore) Count(km kmer.Kmer) uint64 {
	m.mu.RLock()
	c := m.counts[km.Canonical()]
	m.mu.RUnlock()
	return c
}

func (m *MemoryStore) AddBatch(counts map[uint64]uint64) error {
	m.mu.Lock()
	for h, n := range counts {
		m.counts[h] += n
	}
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) ForEach(fn func(hash, count uint64) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for h, c := range m.counts {
		if err := fn(h, c); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.counts)
}

func (m *MemoryStore) Close() error { return nil }
