package frame

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/packbench/packbench/codec"
)

func newCodec(t *testing.T, algo codec.Algorithm, level int) (codec.Encoder, codec.Decoder) {
	t.Helper()

	enc, err := codec.NewEncoder(algo, level, nil)
	require.NoError(t, err)
	t.Cleanup(func() { enc.Close() })

	dec, err := codec.NewDecoder(algo, nil)
	require.NoError(t, err)
	t.Cleanup(func() { dec.Close() })

	return enc, dec
}

func TestRoundTrip(t *testing.T) {
	payload := make([]byte, 100_000)
	rand.New(rand.NewSource(7)).Read(payload)
	copy(payload, bytes.Repeat([]byte("compressible prefix "), 500))

	tests := []struct {
		name      string
		algo      codec.Algorithm
		level     int
		chunkSize int
		input     []byte
	}{
		{"zstd default chunks", codec.Zstd, 3, DefaultChunkSize, payload},
		{"lz4 small chunks", codec.LZ4, 0, 512, payload},
		{"snappy chunk size one", codec.Snappy, 0, 1, payload[:300]},
		{"copy exact multiple", codec.Copy, 0, 100, payload[:1000]},
		{"s2 trailing partial chunk", codec.S2, 1, 4096, payload[:10_000+123]},
		{"empty input", codec.Zstd, 1, DefaultChunkSize, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, dec := newCodec(t, tt.algo, tt.level)

			var compressed bytes.Buffer
			require.NoError(t, Compress(&compressed, bytes.NewReader(tt.input), tt.chunkSize, enc))

			if len(tt.input) == 0 {
				require.Zero(t, compressed.Len())
			}

			var out bytes.Buffer
			require.NoError(t, Decompress(&out, &compressed, dec))
			require.Equal(t, tt.input, out.Bytes()[:len(tt.input)])
			require.Equal(t, len(tt.input), out.Len())
		})
	}
}

func TestCompressRejectsInvalidChunkSize(t *testing.T) {
	enc, _ := newCodec(t, codec.Copy, 0)

	for _, size := range []int{0, -1, MaxChunkSize + 1} {
		err := Compress(&bytes.Buffer{}, bytes.NewReader([]byte("x")), size, enc)
		require.ErrorIs(t, err, ErrChunkSize, "chunk size %d", size)
	}
}

func TestDecompressTruncatedHeader(t *testing.T) {
	_, dec := newCodec(t, codec.Copy, 0)

	err := Decompress(&bytes.Buffer{}, bytes.NewReader([]byte{1, 2, 3}), dec)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestDecompressTruncatedPayload(t *testing.T) {
	enc, dec := newCodec(t, codec.Zstd, 1)

	input := bytes.Repeat([]byte("payload "), 1000)
	var compressed bytes.Buffer
	require.NoError(t, Compress(&compressed, bytes.NewReader(input), DefaultChunkSize, enc))

	cut := compressed.Bytes()[:compressed.Len()-5]
	err := Decompress(&bytes.Buffer{}, bytes.NewReader(cut), dec)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestDecompressOversizedCompressedLen(t *testing.T) {
	_, dec := newCodec(t, codec.Copy, 0)

	// Header promises far more payload than follows.
	var frame bytes.Buffer
	var header [HeaderSize]byte
	binary.LittleEndian.PutUint32(header[0:4], 4)
	binary.LittleEndian.PutUint32(header[4:8], 1<<20)
	frame.Write(header[:])
	frame.WriteString("data")

	err := Decompress(&bytes.Buffer{}, &frame, dec)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestDecompressIntegrityMismatch(t *testing.T) {
	_, dec := newCodec(t, codec.Copy, 0)

	// A handcrafted frame whose header length does not match what the codec
	// produces: the copy codec yields exactly compressedLen bytes, so any
	// other uncompressedLen is a violation.
	var frame bytes.Buffer
	var header [HeaderSize]byte
	binary.LittleEndian.PutUint32(header[0:4], 5)
	binary.LittleEndian.PutUint32(header[4:8], 3)
	frame.Write(header[:])
	frame.WriteString("abc")

	err := Decompress(&bytes.Buffer{}, &frame, dec)
	require.ErrorIs(t, err, ErrIntegrity)
}

func TestDecompressFromSpillPath(t *testing.T) {
	enc, dec := newCodec(t, codec.Zstd, 3)

	input := bytes.Repeat([]byte("spill path exercises the refill boundary "), 2000)
	var compressed bytes.Buffer
	require.NoError(t, Compress(&compressed, bytes.NewReader(input), DefaultChunkSize, enc))

	// A 16-byte reader buffer cannot hold any payload, forcing every frame
	// through the spill buffer.
	var out bytes.Buffer
	src := bufio.NewReaderSize(&compressed, 16)
	require.NoError(t, DecompressFrom(&out, src, dec))
	require.Equal(t, input, out.Bytes())
}

func TestDecompressMultipleFrames(t *testing.T) {
	enc, dec := newCodec(t, codec.LZ4, 4)

	input := bytes.Repeat([]byte("0123456789abcdef"), 8192) // 128 KiB, 8 chunks
	var compressed bytes.Buffer
	require.NoError(t, Compress(&compressed, bytes.NewReader(input), DefaultChunkSize, enc))
	require.Greater(t, compressed.Len(), 8*HeaderSize)

	var out bytes.Buffer
	require.NoError(t, Decompress(&out, &compressed, dec))
	require.Equal(t, input, out.Bytes())
}
