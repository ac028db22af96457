package codec

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPayloads() map[string][]byte {
	random := make([]byte, 8192)
	rand.New(rand.NewSource(42)).Read(random)

	return map[string][]byte{
		"one byte":   {0x42},
		"repetitive": bytes.Repeat([]byte("abcdefgh"), 512),
		"random":     random,
	}
}

func roundTrip(t *testing.T, algo Algorithm, level int, payload []byte) {
	t.Helper()

	enc, err := NewEncoder(algo, level, nil)
	require.NoError(t, err)
	defer enc.Close()

	dec, err := NewDecoder(algo, nil)
	require.NoError(t, err)
	defer dec.Close()

	bound := enc.CompressedLenBound(len(payload))
	require.GreaterOrEqual(t, bound, 1)

	compressed := make([]byte, bound)
	n, err := enc.Compress(payload, compressed)
	require.NoError(t, err)
	require.Positive(t, n)
	require.LessOrEqual(t, n, bound)

	out := make([]byte, len(payload))
	m, err := dec.Decompress(compressed[:n], out)
	require.NoError(t, err)
	require.Equal(t, len(payload), m)
	require.Equal(t, payload, out[:m])
}

func TestRoundTripAllAlgorithmsAllLevels(t *testing.T) {
	for name, payload := range testPayloads() {
		for _, algo := range Algorithms() {
			for _, level := range algo.Levels() {
				t.Run(name+"/"+algo.String(), func(t *testing.T) {
					roundTrip(t, algo, level, payload)
				})
			}
		}
	}
}

func TestRoundTripLZ4NegativeLevels(t *testing.T) {
	payload := bytes.Repeat([]byte("negative levels use the fast path "), 64)
	for level := -9; level <= -1; level++ {
		roundTrip(t, LZ4, level, payload)
	}
}

func TestNewEncoderRejectsUnknownAlgorithm(t *testing.T) {
	for _, algo := range []Algorithm{0, 99} {
		_, err := NewEncoder(algo, 0, nil)
		require.ErrorIs(t, err, ErrUnknownAlgorithm)

		_, err = NewDecoder(algo, nil)
		require.ErrorIs(t, err, ErrUnknownAlgorithm)
	}
}

func TestNewEncoderRejectsInvalidLevels(t *testing.T) {
	tests := []struct {
		algo  Algorithm
		level int
	}{
		{Copy, 1},
		{Snappy, -1},
		{XZ, 1},
		{LZ4, 10},
		{LZ4, -10},
		{Zstd, 0},
		{Zstd, 13},
		{Zstd, -8},
		{Brotli, 0},
		{Brotli, 9},
		{S2, 3},
		{S2, -1},
	}
	for _, tt := range tests {
		_, err := NewEncoder(tt.algo, tt.level, nil)
		require.ErrorIs(t, err, ErrInvalidLevel, "%s level %d", tt.algo, tt.level)
	}
}

func TestCompressedLenBoundCoversWorstCase(t *testing.T) {
	// Incompressible input expands under every real algorithm; the bound has
	// to cover that expansion at every size it is asked about.
	sizes := []int{1, 63, 4096, 100_000}
	for _, algo := range Algorithms() {
		enc, err := NewEncoder(algo, algo.Levels()[0], nil)
		require.NoError(t, err)

		for _, size := range sizes {
			payload := make([]byte, size)
			rand.New(rand.NewSource(int64(size))).Read(payload)

			dst := make([]byte, enc.CompressedLenBound(size))
			n, err := enc.Compress(payload, dst)
			require.NoError(t, err, "%s size %d", algo, size)
			require.LessOrEqual(t, n, len(dst))
		}

		require.NoError(t, enc.Close())
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name string
		want Algorithm
		ok   bool
	}{
		{"zstd", Zstd, true},
		{"ZSTD", Zstd, true},
		{" lz4 ", LZ4, true},
		{"brotli", Brotli, true},
		{"copy", Copy, true},
		{"snappy", Snappy, true},
		{"xz", XZ, true},
		{"s2", S2, true},
		{"gzip", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.name)
		if !tt.ok {
			require.ErrorIs(t, err, ErrUnknownAlgorithm, "name %q", tt.name)
			continue
		}
		require.NoError(t, err, "name %q", tt.name)
		require.Equal(t, tt.want, got)
	}
}

func TestFromExtension(t *testing.T) {
	for _, algo := range Algorithms() {
		got, ok := FromExtension(algo.Extension())
		require.True(t, ok)
		require.Equal(t, algo, got)
	}

	_, ok := FromExtension("gz")
	require.False(t, ok)
}

func TestAlgorithmString(t *testing.T) {
	require.Equal(t, "zstd", Zstd.String())
	require.Equal(t, "unknown", Algorithm(0).String())
	require.Equal(t, "unknown", Algorithm(99).String())
}

func TestLevelDomains(t *testing.T) {
	zstd := Zstd.Levels()
	require.Len(t, zstd, 19)
	require.Equal(t, -7, zstd[0])
	require.Equal(t, 12, zstd[len(zstd)-1])
	require.NotContains(t, zstd, 0)

	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, LZ4.Levels())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, Brotli.Levels())
	require.Equal(t, []int{0, 1, 2}, S2.Levels())
	require.Equal(t, []int{0}, Copy.Levels())
	require.Equal(t, []int{0}, Snappy.Levels())
	require.Equal(t, []int{0}, XZ.Levels())
}

func TestCopyCodecShortBuffer(t *testing.T) {
	enc, err := NewEncoder(Copy, 0, nil)
	require.NoError(t, err)

	_, err = enc.Compress([]byte("payload"), make([]byte, 3))
	require.ErrorIs(t, err, ErrShortBuffer)
}

func TestNewLevelTiers(t *testing.T) {
	tests := []struct {
		raw       int
		tier      Tier
		magnitude int
	}{
		{-3, TierFast, 3},
		{0, TierDefault, 0},
		{5, TierHigh, 5},
	}
	for _, tt := range tests {
		l := NewLevel(tt.raw)
		require.Equal(t, tt.tier, l.Tier, "raw %d", tt.raw)
		require.Equal(t, tt.magnitude, l.Magnitude, "raw %d", tt.raw)
		require.Equal(t, tt.raw, l.Raw, "raw %d", tt.raw)
	}
}

func TestErrorsAreSentinels(t *testing.T) {
	_, err := NewEncoder(Zstd, 100, nil)
	require.True(t, errors.Is(err, ErrInvalidLevel))
	require.Contains(t, err.Error(), "zstd")
}
