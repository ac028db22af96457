package codec

import "github.com/golang/snappy"

// snappyCodec compresses blocks with snappy's raw block format.
type snappyCodec struct{}

func (snappyCodec) CompressedLenBound(uncompressedLen int) int {
	return snappy.MaxEncodedLen(uncompressedLen)
}

func (snappyCodec) Compress(src, dst []byte) (int, error) {
	return moveToDst(snappy.Encode(dst, src), dst)
}

func (snappyCodec) Decompress(src, dst []byte) (int, error) {
	out, err := snappy.Decode(dst, src)
	if err != nil {
		return 0, err
	}

	return moveToDst(out, dst)
}

func (snappyCodec) Close() error {
	return nil
}
