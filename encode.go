package huff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/deepteams/huff/internal/archive"
	"github.com/deepteams/huff/internal/huffman"
)

// Compress encodes data and returns the complete archive: frequency
// table, terminator, original length, and the packed bitstream.
//
// Empty input is valid and yields a header-only archive that Decompress
// turns back into empty output.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(archive.HeaderSize(256) + len(data)/2)
	if err := Encode(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode compresses data and writes the archive to w.
func Encode(w io.Writer, data []byte) error {
	seq, total := huffman.CountFrequencies(data)
	seq.Sort()

	if err := archive.WriteHeader(w, seq, total); err != nil {
		return fmt.Errorf("huff: writing header: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	codes := huffman.BuildCodes(huffman.BuildTree(seq))

	// Per-symbol lookup for the packing loop. Every byte that occurs in
	// data has an entry; the degenerate single-symbol code is zero-length
	// and emits nothing.
	var table [256][]byte
	for _, c := range codes {
		table[c.Symbol] = c.Bits
	}

	// The writer packs bits MSB-first with no separators between codes;
	// boundaries are recovered at decode time from the tree alone. Writing
	// bit by bit keeps codes of any length intact, up to the 255-bit worst
	// case of a fully skewed tree.
	bw := bitio.NewWriter(w)
	for _, b := range data {
		for _, bit := range table[b] {
			if err := bw.WriteBool(bit == 1); err != nil {
				return fmt.Errorf("huff: writing bitstream: %w", err)
			}
		}
	}
	// Close pads the final partial byte with zero bits; the decoder stops
	// at the header length and never reads the padding as symbols.
	if err := bw.Close(); err != nil {
		return fmt.Errorf("huff: flushing bitstream: %w", err)
	}
	return nil
}
