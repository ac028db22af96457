package codec

// copyCodec passes data through unchanged.
type copyCodec struct{}

func (copyCodec) CompressedLenBound(uncompressedLen int) int {
	return uncompressedLen
}

func (copyCodec) Compress(src, dst []byte) (int, error) {
	if len(dst) < len(src) {
		return 0, ErrShortBuffer
	}

	return copy(dst, src), nil
}

func (copyCodec) Decompress(src, dst []byte) (int, error) {
	if len(dst) < len(src) {
		return 0, ErrShortBuffer
	}

	return copy(dst, src), nil
}

func (copyCodec) Close() error {
	return nil
}
