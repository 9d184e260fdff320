// Package huff implements a byte-oriented Huffman compressor and
// decompressor.
//
// The compressor counts symbol frequencies in a single pass, builds an
// optimal prefix code from them, and packs the input into a bitstream.
// The archive is self-describing: its header stores the frequency table,
// so decompression rebuilds the identical tree from the archive alone.
//
// Basic usage:
//
//	packed, err := huff.Compress(data)
//	...
//	orig, err := huff.Decompress(packed)
//
// Encode and Decode provide io.Writer/io.Reader flavored equivalents, and
// Stat inspects an archive's header without decoding the payload.
package huff
