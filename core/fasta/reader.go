// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"
)

// Record is a parsed FASTA sequence, or a window of one.
// Offset is the 0-based start of Seq within the full record.
type Record struct {
	ID     string
	Offset int
	Seq    []byte
}

// StreamPath opens path (gzip and "-" handled by Open) and streams it
// through Stream.
func StreamPath(ctx context.Context, path string, chunkSize, overlap int, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return Stream(ctx, rc, chunkSize, overlap, emit)
}

// Stream parses FASTA from r and calls emit per record, or per window when
// chunkSize > 0. Consecutive windows share overlap bases, so with
// overlap = k-1 every k-mer of a record lies in exactly one window.
//
// chunkSize <= 0            → whole record as one Record
// overlap < 0               → treated as 0
// overlap >= chunkSize      → whole record as one Record
//
// Cancellation via ctx is honored between lines and between windows.
// A non-nil error from emit stops the scan and is returned.
func Stream(ctx context.Context, r io.Reader, chunkSize, overlap int, emit func(Record) error) error {
	if overlap < 0 {
		overlap = 0
	}
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id   string
		seen bool
		seq  = make([]byte, 0, 1<<20)
	)

	flush := func() error {
		if !seen {
			return nil
		}
		step := chunkSize - overlap
		if chunkSize <= 0 || chunkSize >= len(seq) || step <= 0 {
			return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
		}
		for off := 0; off < len(seq); off += step {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			end := off + chunkSize
			if end > len(seq) {
				end = len(seq)
			}
			if err := emit(Record{ID: id, Offset: off, Seq: append([]byte(nil), seq[off:end]...)}); err != nil {
				return err
			}
			if end == len(seq) {
				break
			}
		}
		return nil
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			seq = seq[:0]
			id = parseHeaderID(line[1:])
			seen = true
			continue
		}
		seen = true
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "fasta scan")
	}
	return flush()
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
