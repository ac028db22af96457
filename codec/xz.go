package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// xzCodec adapts the xz stream API to block semantics: each block carries a
// complete xz stream, written through a bounded in-memory cursor. Writer and
// reader instances are created per block and finished before the call
// returns.
type xzCodec struct{}

// CompressedLenBound mirrors lzma_stream_buffer_bound: raw LZMA2 worst case
// plus container overhead.
func (xzCodec) CompressedLenBound(uncompressedLen int) int {
	return uncompressedLen + uncompressedLen/3 + 4096
}

func (xzCodec) Compress(src, dst []byte) (int, error) {
	sw := newSliceWriter(dst)
	w, err := xz.NewWriter(sw)
	if err != nil {
		return 0, fmt.Errorf("xz compression failed: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		return 0, fmt.Errorf("xz compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("xz compression failed: %w", err)
	}

	return sw.Len(), nil
}

func (xzCodec) Decompress(src, dst []byte) (int, error) {
	r, err := xz.NewReader(bytes.NewReader(src))
	if err != nil {
		return 0, fmt.Errorf("xz decompression failed: %w", err)
	}
	n, err := io.ReadFull(r, dst)
	if err != nil {
		return 0, fmt.Errorf("xz decompression failed: %w", err)
	}
	var extra [1]byte
	if m, _ := r.Read(extra[:]); m > 0 {
		return 0, fmt.Errorf("xz decompression failed: output exceeds expected %d bytes", len(dst))
	}

	return n, nil
}

func (xzCodec) Close() error {
	return nil
}
