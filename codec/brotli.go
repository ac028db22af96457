package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
)

// brotliEncoder performs one-shot buffer compression by streaming each block
// through a writer into a fixed-capacity slice. A fresh writer is created per
// block and finished before Compress returns, so no encoder state outlives
// the call.
type brotliEncoder struct {
	quality int
}

// CompressedLenBound is deliberately generous: the encoder's true worst case
// is the raw size plus a few bytes of metablock framing per 16 KiB, which the
// library does not export.
func (e brotliEncoder) CompressedLenBound(uncompressedLen int) int {
	return uncompressedLen + uncompressedLen>>2 + 1024
}

func (e brotliEncoder) Compress(src, dst []byte) (int, error) {
	sw := newSliceWriter(dst)
	w := brotli.NewWriterOptions(sw, brotli.WriterOptions{Quality: e.quality})
	if _, err := w.Write(src); err != nil {
		return 0, fmt.Errorf("brotli compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("brotli compression failed: %w", err)
	}

	return sw.Len(), nil
}

func (e brotliEncoder) Close() error {
	return nil
}

type brotliDecoder struct{}

func (brotliDecoder) Decompress(src, dst []byte) (int, error) {
	r := brotli.NewReader(bytes.NewReader(src))
	n, err := io.ReadFull(r, dst)
	if err != nil {
		return 0, fmt.Errorf("brotli decompression failed: %w", err)
	}
	// The header communicates the exact decompressed length; output past dst
	// means the stream and the header disagree.
	var extra [1]byte
	if m, _ := r.Read(extra[:]); m > 0 {
		return 0, fmt.Errorf("brotli decompression failed: output exceeds expected %d bytes", len(dst))
	}

	return n, nil
}

func (brotliDecoder) Close() error {
	return nil
}
