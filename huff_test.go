package huff

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, input []byte) []byte {
	t.Helper()
	packed, err := Compress(input)
	require.NoError(t, err)
	got, err := Decompress(packed)
	require.NoError(t, err)
	require.Equal(t, input, got)
	return packed
}

func TestRoundTrip_Text(t *testing.T) {
	roundTrip(t, []byte("the quick brown fox jumps over the lazy dog"))
}

func TestRoundTrip_AllByteValues(t *testing.T) {
	input := make([]byte, 0, 256*3)
	for i := 0; i < 256; i++ {
		for j := 0; j <= i%3; j++ {
			input = append(input, byte(i))
		}
	}
	roundTrip(t, input)
}

func TestRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, size := range []int{1, 2, 17, 1000, 65537} {
		input := make([]byte, size)
		rng.Read(input)
		roundTrip(t, input)
	}
}

func TestRoundTrip_SkewedDistribution(t *testing.T) {
	// Fibonacci-weighted symbols produce a fully skewed tree with the
	// longest codes this input size permits.
	var input []byte
	a, b := 1, 1
	for sym := 0; sym < 32 && a < 1<<20; sym++ {
		for i := 0; i < a; i++ {
			input = append(input, byte(sym))
		}
		a, b = b, a+b
	}
	roundTrip(t, input)
}

func TestCompress_KnownArchive(t *testing.T) {
	// "AAAAABBBCC": A=1, B=01, C=00. Bitstream 11111 01 01 01 00 00
	// packs MSB-first into 0xFA 0xA0.
	packed := roundTrip(t, []byte("AAAAABBBCC"))

	want := []byte{
		'C', 0x02, 0x00, 0x00, 0x00,
		'B', 0x03, 0x00, 0x00, 0x00,
		'A', 0x05, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00,
		0x0a, 0x00, 0x00, 0x00,
		0xfa, 0xa0,
	}
	require.Equal(t, want, packed)
}

func TestCompress_HeaderLengthField(t *testing.T) {
	packed, err := Compress([]byte("AAAAABBBCC"))
	require.NoError(t, err)

	// Three entries and the terminator precede the 4-byte length field.
	lengthOff := 4 * 5
	require.Equal(t, uint32(10), binary.LittleEndian.Uint32(packed[lengthOff:]))
}

func TestRoundTrip_SingleSymbol(t *testing.T) {
	// Degenerate one-leaf tree: code length 0, so the archive carries no
	// bitstream at all and decoding consumes no bits.
	input := []byte("ZZZZZ")
	packed := roundTrip(t, input)

	info, err := Stat(bytes.NewReader(packed))
	require.NoError(t, err)
	require.Equal(t, 1, info.Symbols)
	require.Equal(t, uint32(5), info.OriginalLength)
	require.Equal(t, 0, info.PayloadSize)
}

func TestDecompress_SelfDescribing(t *testing.T) {
	// Only the archive bytes are available; the output must match the
	// header's recorded length exactly.
	input := bytes.Repeat([]byte("abcabcabd"), 101)
	packed, err := Compress(input)
	require.NoError(t, err)

	info, err := Stat(bytes.NewReader(packed))
	require.NoError(t, err)

	got, err := Decompress(packed)
	require.NoError(t, err)
	require.Equal(t, int(info.OriginalLength), len(got))
}

func TestEncodeDecode_Writers(t *testing.T) {
	input := []byte("streaming flavored API round-trip")

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, input))

	got, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, input, got)
}

func TestStat(t *testing.T) {
	packed, err := Compress([]byte("AAAAABBBCC"))
	require.NoError(t, err)

	info, err := Stat(bytes.NewReader(packed))
	require.NoError(t, err)
	require.Equal(t, 3, info.Symbols)
	require.Equal(t, uint32(10), info.OriginalLength)
	require.Equal(t, 24, info.HeaderSize)
	require.Equal(t, 2, info.PayloadSize)
	require.Equal(t, len(packed), info.ArchiveSize())
}

func TestStat_Malformed(t *testing.T) {
	_, err := Stat(bytes.NewReader([]byte{0x41, 0x01}))
	require.ErrorIs(t, err, ErrMalformedArchive)
}
