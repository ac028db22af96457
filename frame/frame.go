// Package frame implements the chunked on-disk container format: a sequence
// of independently compressed frames, each an 8-byte little-endian header
// (uncompressed length, compressed length as u32) followed by the compressed
// payload. There is no file-level header, footer or checksum, and the format
// does not record which algorithm produced it; that binding is external.
//
// Framing every chunk explicitly, instead of relying on each library's
// native streaming container, gives every codec the same independent
// chunk-at-a-time semantics — bounded memory, dictionary reuse per chunk —
// at a cost of 8 bytes per chunk.
package frame

import "errors"

// DefaultChunkSize is the raw chunk size used when none is configured.
const DefaultChunkSize = 16 * 1024

// HeaderSize is the fixed per-frame overhead in bytes.
const HeaderSize = 8

// MaxChunkSize caps chunk sizes so that frame lengths always fit the u32
// header fields.
const MaxChunkSize = 1 << 30

var (
	// ErrIntegrity reports a frame whose decompressed length does not match
	// the length recorded in its header. The data is inconsistent — wrong
	// dictionary, wrong algorithm or corruption — and the whole operation
	// aborts; this is never retried.
	ErrIntegrity = errors.New("frame integrity violation: decompressed length mismatch")

	// ErrTruncated reports an input that ends inside a frame header or
	// payload.
	ErrTruncated = errors.New("truncated frame")

	// ErrChunkSize reports a chunk size outside (0, MaxChunkSize].
	ErrChunkSize = errors.New("invalid chunk size")
)
