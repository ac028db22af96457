package codec

import (
	"github.com/pierrec/lz4/v4"
)

// lz4HCLevels maps magnitudes 1..9 of the high-compression tier onto the
// library's level flags.
var lz4HCLevels = [...]lz4.CompressionLevel{
	lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4, lz4.Level5,
	lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
}

// lz4Encoder compresses blocks with either the fast or the high-compression
// LZ4 block mode. The fast and default tiers both map to the fast block
// compressor: the block API has no acceleration factor, so a negative
// level's magnitude is ignored.
type lz4Encoder struct {
	fast *lz4.Compressor
	hc   *lz4.CompressorHC
}

func newLZ4Encoder(level Level) *lz4Encoder {
	if level.Tier == TierHigh {
		return &lz4Encoder{hc: &lz4.CompressorHC{Level: lz4HCLevels[level.Magnitude-1]}}
	}

	return &lz4Encoder{fast: &lz4.Compressor{}}
}

func (e *lz4Encoder) CompressedLenBound(uncompressedLen int) int {
	return lz4.CompressBlockBound(uncompressedLen)
}

func (e *lz4Encoder) Compress(src, dst []byte) (int, error) {
	if e.hc != nil {
		return e.hc.CompressBlock(src, dst)
	}

	return e.fast.CompressBlock(src, dst)
}

func (e *lz4Encoder) Close() error {
	return nil
}

type lz4Decoder struct{}

func (lz4Decoder) Decompress(src, dst []byte) (int, error) {
	return lz4.UncompressBlock(src, dst)
}

func (lz4Decoder) Close() error {
	return nil
}
