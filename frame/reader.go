package frame

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/packbench/packbench/codec"
)

// readBufferSize is the buffered reader capacity used by Decompress. Frames
// no larger than this decode straight out of the reader's internal buffer.
const readBufferSize = 1 << 20

// Decompress reads frames from src until end of input and writes the
// decompressed chunks to dst.
func Decompress(dst io.Writer, src io.Reader, dec codec.Decoder) error {
	return DecompressFrom(dst, bufio.NewReaderSize(src, readBufferSize), dec)
}

// DecompressFrom is Decompress over a caller-supplied buffered reader.
//
// When a whole payload is already present in the reader's internal buffer it
// is decoded in place via Peek/Discard; a payload spanning a refill boundary
// is first accumulated into a spill buffer. Both buffers are reused across
// frames.
func DecompressFrom(dst io.Writer, src *bufio.Reader, dec codec.Decoder) error {
	var (
		header [HeaderSize]byte
		spill  []byte
		out    []byte
	)

	for {
		if _, err := io.ReadFull(src, header[:]); err != nil {
			if err == io.EOF {
				return nil
			}
			if err == io.ErrUnexpectedEOF {
				return fmt.Errorf("%w: partial header", ErrTruncated)
			}

			return fmt.Errorf("read frame header: %w", err)
		}

		uncompressedLen := int(binary.LittleEndian.Uint32(header[0:4]))
		compressedLen := int(binary.LittleEndian.Uint32(header[4:8]))

		if cap(out) < uncompressedLen {
			out = make([]byte, uncompressedLen)
		}
		out = out[:uncompressedLen]

		var payload []byte
		buffered := src.Buffered() >= compressedLen
		if buffered {
			p, err := src.Peek(compressedLen)
			if err != nil {
				return fmt.Errorf("read frame payload: %w", err)
			}
			payload = p
		} else {
			if cap(spill) < compressedLen {
				spill = make([]byte, compressedLen)
			}
			spill = spill[:compressedLen]
			if _, err := io.ReadFull(src, spill); err != nil {
				if err == io.EOF || err == io.ErrUnexpectedEOF {
					return fmt.Errorf("%w: partial payload", ErrTruncated)
				}

				return fmt.Errorf("read frame payload: %w", err)
			}
			payload = spill
		}

		n, derr := dec.Decompress(payload, out)
		if buffered {
			if _, err := src.Discard(compressedLen); err != nil {
				return fmt.Errorf("read frame payload: %w", err)
			}
		}
		if derr != nil {
			return fmt.Errorf("decompress frame: %w", derr)
		}
		if n != uncompressedLen {
			return fmt.Errorf("%w: header declares %d bytes, codec produced %d", ErrIntegrity, uncompressedLen, n)
		}

		if _, err := dst.Write(out); err != nil {
			return fmt.Errorf("write chunk: %w", err)
		}
	}
}
