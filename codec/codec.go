package codec

import (
	"errors"
	"fmt"
)

// Encoder compresses independent blocks of data into caller-supplied buffers.
//
// Implementations wrap heterogeneous compression libraries — some block
// oriented with explicit size bounds, some stream oriented with incremental
// output — behind one block-at-a-time contract so that framing and benchmark
// logic never needs to know which kind it is driving.
type Encoder interface {
	// CompressedLenBound returns an upper bound on the compressed size of an
	// input of uncompressedLen bytes under the current configuration. The
	// bound is never smaller than any output Compress can produce for an
	// input of that length; callers size scratch buffers from it once per
	// run, not per block.
	CompressedLenBound(uncompressedLen int) int

	// Compress compresses all of src into dst and returns the number of
	// bytes written. The caller guarantees
	// len(dst) >= CompressedLenBound(len(src)).
	Compress(src, dst []byte) (int, error)

	// Close releases any native resources held by the encoder, such as a
	// prepared dictionary. Pure-Go encoders are no-ops. Close must be called
	// on every exit path once the encoder is no longer needed.
	Close() error
}

// Decoder decompresses blocks produced by the matching Encoder.
type Decoder interface {
	// Decompress decompresses src into dst and returns the number of bytes
	// written. The caller pre-sizes dst to the expected decompressed length.
	Decompress(src, dst []byte) (int, error)

	// Close releases any native resources held by the decoder.
	Close() error
}

var (
	// ErrUnknownAlgorithm reports an algorithm value outside the supported set.
	ErrUnknownAlgorithm = errors.New("unknown compression algorithm")

	// ErrInvalidLevel reports a compression level outside the algorithm's
	// supported domain.
	ErrInvalidLevel = errors.New("unsupported compression level")

	// ErrShortBuffer reports a destination buffer smaller than the codec's
	// output. With correctly bounded buffers this indicates a codec contract
	// violation, not a recoverable condition.
	ErrShortBuffer = errors.New("destination buffer too small")
)

// NewEncoder returns a ready-to-use encoder for the given algorithm, level
// and optional preset dictionary.
//
// The level is validated against the algorithm's domain before any I/O
// happens; an out-of-domain level is a configuration error. Algorithms
// without dictionary support accept a dictionary and ignore it.
func NewEncoder(algo Algorithm, level int, dict *Dictionary) (Encoder, error) {
	if !algo.known() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(algo))
	}
	if !algo.ValidLevel(level) {
		return nil, fmt.Errorf("%w: %s does not support level %d", ErrInvalidLevel, algo, level)
	}

	switch algo {
	case Copy:
		return copyCodec{}, nil
	case LZ4:
		return newLZ4Encoder(NewLevel(level)), nil
	case Zstd:
		return newZstdEncoder(level, dict)
	case Brotli:
		return brotliEncoder{quality: level}, nil
	case Snappy:
		return snappyCodec{}, nil
	case XZ:
		return xzCodec{}, nil
	case S2:
		return s2Codec{tier: level}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(algo))
	}
}

// NewDecoder returns a ready-to-use decoder for the given algorithm and
// optional preset dictionary. The dictionary must be the one the data was
// compressed with for the dictionary-capable algorithms.
func NewDecoder(algo Algorithm, dict *Dictionary) (Decoder, error) {
	if !algo.known() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(algo))
	}

	switch algo {
	case Copy:
		return copyCodec{}, nil
	case LZ4:
		return lz4Decoder{}, nil
	case Zstd:
		return newZstdDecoder(dict)
	case Brotli:
		return brotliDecoder{}, nil
	case Snappy:
		return snappyCodec{}, nil
	case XZ:
		return xzCodec{}, nil
	case S2:
		return s2Codec{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(algo))
	}
}
