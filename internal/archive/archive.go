// Package archive reads and writes the .huf container format.
//
// An archive is laid out as:
//
//	(symbol u8, frequency u32)*   frequency table, ascending (freq, symbol)
//	(0x00,      0x00000000)       terminator pair
//	length u32                    original input length in bytes
//	bitstream                     packed Huffman codes, MSB-first
//
// All multi-byte integers are little-endian. A frequency of zero never
// appears in the table proper, which is what makes the terminator
// unambiguous; the length field caps inputs at 2^32-1 bytes.
package archive

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/deepteams/huff/internal/huffman"
)

// Errors returned by ReadHeader.
var (
	ErrMalformed       = errors.New("archive: malformed header")
	ErrTooManySymbols  = errors.New("archive: symbol table exceeds alphabet size")
	ErrDuplicateSymbol = errors.New("archive: duplicate symbol in table")
)

// entrySize is the on-disk size of one (symbol, frequency) pair.
const entrySize = 5

// maxEntries is the alphabet size: a valid table cannot list more
// distinct symbols than there are byte values.
const maxEntries = 256

// WriteHeader writes the frequency table for the sequence s (which must
// already be sorted ascending by frequency, ties by symbol), the
// terminator pair, and the original symbol count.
func WriteHeader(w io.Writer, s *huffman.Seq, origLen uint32) error {
	var buf [entrySize]byte
	for i := 0; i < s.Len(); i++ {
		n := s.At(i)
		buf[0] = n.Symbol
		binary.LittleEndian.PutUint32(buf[1:], n.Freq)
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}

	// Terminator: zero symbol, zero frequency.
	clear(buf[:])
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}

	binary.LittleEndian.PutUint32(buf[:4], origLen)
	_, err := w.Write(buf[:4])
	return err
}

// ReadHeader parses the frequency table and length field from r, leaving
// r positioned at the first bitstream byte. The returned sequence is in
// on-disk order; callers re-sort it before tree building so the build
// matches the writer's pre-build ordering exactly.
func ReadHeader(r io.Reader) (*huffman.Seq, uint32, error) {
	s := huffman.NewSeq()
	var seen [256]bool
	var buf [entrySize]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, 0, fmt.Errorf("%w: missing table terminator", ErrMalformed)
			}
			return nil, 0, err
		}
		freq := binary.LittleEndian.Uint32(buf[1:])
		if freq == 0 {
			break // terminator pair, discarded
		}
		if s.Len() >= maxEntries {
			return nil, 0, ErrTooManySymbols
		}
		if seen[buf[0]] {
			return nil, 0, fmt.Errorf("%w: 0x%02x", ErrDuplicateSymbol, buf[0])
		}
		seen[buf[0]] = true
		s.Push(&huffman.Node{Symbol: buf[0], Freq: freq})
	}

	if _, err := io.ReadFull(r, buf[:4]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, 0, fmt.Errorf("%w: truncated length field", ErrMalformed)
		}
		return nil, 0, err
	}
	origLen := binary.LittleEndian.Uint32(buf[:4])
	return s, origLen, nil
}

// HeaderSize returns the encoded header size in bytes for a table of
// numSymbols entries: the table itself, the terminator, and the length
// field.
func HeaderSize(numSymbols int) int {
	return (numSymbols+1)*entrySize + 4
}
