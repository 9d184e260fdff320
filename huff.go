package huff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/deepteams/huff/internal/archive"
	"github.com/deepteams/huff/internal/pool"
)

// Errors reported for invalid archives. Header parsing and bitstream
// failures both wrap ErrMalformedArchive.
var (
	ErrMalformedArchive = archive.ErrMalformed
	ErrTooManySymbols   = archive.ErrTooManySymbols
)

// Info describes an archive's header without decoding its payload.
type Info struct {
	Symbols        int    // distinct symbols in the frequency table
	OriginalLength uint32 // byte count of the original input
	HeaderSize     int    // frequency table + terminator + length field
	PayloadSize    int    // packed bitstream, including padding bits
}

// ArchiveSize returns the total archive size in bytes.
func (i *Info) ArchiveSize() int {
	return i.HeaderSize + i.PayloadSize
}

// Stat reads an archive header from r and returns its properties. The
// payload is sized but not decoded.
func Stat(r io.Reader) (*Info, error) {
	data, n, err := readAll(r)
	if data != nil {
		defer pool.Put(data)
	}
	if err != nil {
		return nil, fmt.Errorf("huff: reading archive: %w", err)
	}
	data = data[:n]

	br := bytes.NewReader(data)
	seq, origLen, err := archive.ReadHeader(br)
	if err != nil {
		return nil, fmt.Errorf("huff: %w", err)
	}

	headerSize := len(data) - br.Len()
	return &Info{
		Symbols:        seq.Len(),
		OriginalLength: origLen,
		HeaderSize:     headerSize,
		PayloadSize:    br.Len(),
	}, nil
}

// readAll reads all of r into a pooled buffer, returning the buffer and
// the number of valid bytes. The caller owns the buffer and must return
// it with pool.Put. If r implements Len() int (e.g. *bytes.Reader), a
// single exact-sized buffer is used instead of repeated growth.
func readAll(r io.Reader) ([]byte, int, error) {
	if lr, ok := r.(interface{ Len() int }); ok {
		n := lr.Len()
		if n > 0 {
			buf := pool.Get(n)
			_, err := io.ReadFull(r, buf)
			return buf, n, err
		}
	}

	buf := pool.Get(pool.Size64K)
	total := 0
	for {
		if total == len(buf) {
			next := pool.Get(2 * len(buf))
			copy(next, buf)
			pool.Put(buf)
			buf = next
		}
		n, err := r.Read(buf[total:])
		total += n
		if err == io.EOF {
			return buf, total, nil
		}
		if err != nil {
			return buf, total, err
		}
	}
}
