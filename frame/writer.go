package frame

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/packbench/packbench/codec"
)

// Compress reads src in chunks of up to chunkSize bytes and writes one frame
// per chunk to dst, until a read yields no bytes.
//
// The scratch buffer is sized once from the encoder's bound for a full chunk
// and never grows; a compressed block that would exceed it is a violation of
// the encoder's bound contract and surfaces as an error from the encoder.
func Compress(dst io.Writer, src io.Reader, chunkSize int, enc codec.Encoder) error {
	if chunkSize <= 0 || chunkSize > MaxChunkSize {
		return fmt.Errorf("%w: %d", ErrChunkSize, chunkSize)
	}

	chunk := make([]byte, chunkSize)
	scratch := make([]byte, enc.CompressedLenBound(chunkSize))
	var header [HeaderSize]byte

	for {
		n, err := io.ReadFull(src, chunk)
		if n > 0 {
			m, cerr := enc.Compress(chunk[:n], scratch)
			if cerr != nil {
				return fmt.Errorf("compress chunk: %w", cerr)
			}

			binary.LittleEndian.PutUint32(header[0:4], uint32(n))
			binary.LittleEndian.PutUint32(header[4:8], uint32(m))
			if _, werr := dst.Write(header[:]); werr != nil {
				return fmt.Errorf("write frame header: %w", werr)
			}
			if _, werr := dst.Write(scratch[:m]); werr != nil {
				return fmt.Errorf("write frame payload: %w", werr)
			}
		}

		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read chunk: %w", err)
		}
	}
}
