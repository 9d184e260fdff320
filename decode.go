package huff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/deepteams/huff/internal/archive"
	"github.com/deepteams/huff/internal/huffman"
	"github.com/deepteams/huff/internal/pool"
)

// Decompress decodes a complete archive and returns the original bytes.
func Decompress(data []byte) ([]byte, error) {
	r := bytes.NewReader(data)

	seq, origLen, err := archive.ReadHeader(r)
	if err != nil {
		return nil, fmt.Errorf("huff: %w", err)
	}
	if origLen == 0 {
		return []byte{}, nil
	}
	if seq.Len() == 0 {
		return nil, fmt.Errorf("huff: %w: empty symbol table for %d symbols",
			ErrMalformedArchive, origLen)
	}

	// Re-sort so tree construction sees the same ordering the writer used.
	seq.Sort()
	root := huffman.BuildTree(seq)

	// Every non-degenerate symbol costs at least one bit, so a length
	// claim beyond 8x the remaining payload cannot be satisfied. Checked
	// up front to refuse the output allocation for forged headers.
	if !root.Leaf() && uint64(origLen) > 8*uint64(r.Len()) {
		return nil, fmt.Errorf("huff: %w: length %d exceeds payload capacity",
			ErrMalformedArchive, origLen)
	}

	out := make([]byte, origLen)

	// Degenerate single-symbol archive: the root is itself a leaf and the
	// bitstream carries no bits. A generic walk would never consume input
	// and never terminate, so the symbol is repeated from the length alone.
	if root.Leaf() {
		for i := range out {
			out[i] = root.Symbol
		}
		return out, nil
	}

	// Walk root-to-leaf once per output symbol, MSB-first: bit 0 descends
	// Low, bit 1 descends High. Decoding stops after origLen symbols;
	// remaining bits are padding and are ignored.
	br := bitio.NewReader(r)
	for i := range out {
		n := root
		for !n.Leaf() {
			bit, err := br.ReadBool()
			if err != nil {
				return nil, fmt.Errorf("huff: %w: bitstream truncated at symbol %d of %d",
					ErrMalformedArchive, i, origLen)
			}
			if bit {
				n = n.High
			} else {
				n = n.Low
			}
		}
		out[i] = n.Symbol
	}
	return out, nil
}

// Decode reads a complete archive from r and returns the original bytes.
func Decode(r io.Reader) ([]byte, error) {
	data, n, err := readAll(r)
	if data != nil {
		defer pool.Put(data)
	}
	if err != nil {
		return nil, fmt.Errorf("huff: reading archive: %w", err)
	}
	return Decompress(data[:n])
}
