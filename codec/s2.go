package codec

import "github.com/klauspost/compress/s2"

// S2 quality tiers.
const (
	s2TierDefault = 0
	s2TierBetter  = 1
	s2TierBest    = 2
)

// s2Codec compresses blocks with one of s2's three quality tiers. The tier
// only matters for compression; decompression is tier-agnostic.
type s2Codec struct {
	tier int
}

func (c s2Codec) CompressedLenBound(uncompressedLen int) int {
	return s2.MaxEncodedLen(uncompressedLen)
}

func (c s2Codec) Compress(src, dst []byte) (int, error) {
	var out []byte
	switch c.tier {
	case s2TierBest:
		out = s2.EncodeBest(dst, src)
	case s2TierBetter:
		out = s2.EncodeBetter(dst, src)
	default:
		out = s2.Encode(dst, src)
	}

	return moveToDst(out, dst)
}

func (c s2Codec) Decompress(src, dst []byte) (int, error) {
	out, err := s2.Decode(dst, src)
	if err != nil {
		return 0, err
	}

	return moveToDst(out, dst)
}

func (c s2Codec) Close() error {
	return nil
}
