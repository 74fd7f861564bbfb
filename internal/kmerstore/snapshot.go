package kmerstore

import (
	"bufio"
	"io"
	"os"
	"sort"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// A snapshot is a zstd stream holding one CBOR header followed by N
// entries in ascending hash order.
const (
	snapshotMagic   = "dbgwalk-counts"
	snapshotVersion = 1
)

var ErrBadSnapshot = errors.New("kmerstore: not a count snapshot")

type snapshotHeader struct {
	Magic   string `cbor:"magic"`
	Version int    `cbor:"version"`
	K       int    `cbor:"k"`
	N       int    `cbor:"n"`
}

type snapshotEntry struct {
	Hash  uint64 `cbor:"h"`
	Count uint64 `cbor:"c"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("kmerstore: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("kmerstore: CBOR decoder initialization failed: " + err.Error())
	}
}

// SaveSnapshot writes every entry of s to w. Equal tables produce equal
// bytes.
func SaveSnapshot(w io.Writer, s Store) error {
	entries := make([]snapshotEntry, 0, s.Len())
	if err := s.ForEach(func(h, c uint64) error {
		entries = append(entries, snapshotEntry{Hash: h, Count: c})
		return nil
	}); err != nil {
		return errors.Wrap(err, "collect counts")
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Hash < entries[j].Hash })

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return errors.Wrap(err, "zstd writer")
	}
	enc := encMode.NewEncoder(zw)
	hdr := snapshotHeader{Magic: snapshotMagic, Version: snapshotVersion, K: s.KSize(), N: len(entries)}
	if err := enc.Encode(hdr); err != nil {
		zw.Close()
		return errors.Wrap(err, "encode snapshot header")
	}
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			zw.Close()
			return errors.Wrap(err, "encode snapshot entry")
		}
	}
	return errors.Wrap(zw.Close(), "flush snapshot")
}

// LoadSnapshot reads a snapshot into a new MemoryStore.
func LoadSnapshot(r io.Reader) (*MemoryStore, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "zstd reader")
	}
	defer zr.Close()

	dec := decMode.NewDecoder(zr)
	var hdr snapshotHeader
	if err := dec.Decode(&hdr); err != nil {
		return nil, errors.Wrap(ErrBadSnapshot, err.Error())
	}
	if hdr.Magic != snapshotMagic {
		return nil, ErrBadSnapshot
	}
	if hdr.Version != snapshotVersion {
		return nil, errors.Wrapf(ErrBadSnapshot, "unsupported version %d", hdr.Version)
	}
	m, err := NewMemoryStore(hdr.K)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot header")
	}
	for i := 0; i < hdr.N; i++ {
		var e snapshotEntry
		if err := dec.Decode(&e); err != nil {
			return nil, errors.Wrapf(err, "decode entry %d of %d", i, hdr.N)
		}
		m.counts[e.Hash] = e.Count
	}
	return m, nil
}

func SaveSnapshotFile(path string, s Store) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create snapshot")
	}
	bw := bufio.NewWriterSize(f, 1<<20)
	if err := SaveSnapshot(bw, s); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return errors.Wrap(err, "write snapshot")
	}
	return errors.Wrap(f.Close(), "close snapshot")
}

func LoadSnapshotFile(path string) (*MemoryStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open snapshot")
	}
	defer f.Close()
	return LoadSnapshot(bufio.NewReaderSize(f, 1<<20))
}
