package codec

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// zstdEncoder compresses blocks with libzstd's bulk mode. With a dictionary
// attached it compresses against a prepared CDict, built once per run and
// reused for every block; the CDict is a native resource released by Close.
type zstdEncoder struct {
	level int
	cdict *gozstd.CDict
}

func newZstdEncoder(level int, dict *Dictionary) (*zstdEncoder, error) {
	e := &zstdEncoder{level: level}
	if dict != nil {
		cd, err := gozstd.NewCDictLevel(dict.Bytes(), level)
		if err != nil {
			return nil, fmt.Errorf("prepare zstd compression dictionary: %w", err)
		}
		e.cdict = cd
	}

	return e, nil
}

// CompressedLenBound mirrors ZSTD_COMPRESSBOUND; gozstd does not export it.
func (e *zstdEncoder) CompressedLenBound(uncompressedLen int) int {
	margin := 0
	if uncompressedLen < 128<<10 {
		margin = ((128 << 10) - uncompressedLen) >> 11
	}

	return uncompressedLen + uncompressedLen>>8 + margin
}

func (e *zstdEncoder) Compress(src, dst []byte) (int, error) {
	var out []byte
	if e.cdict != nil {
		out = gozstd.CompressDict(dst[:0], src, e.cdict)
	} else {
		out = gozstd.CompressLevel(dst[:0], src, e.level)
	}

	return moveToDst(out, dst)
}

func (e *zstdEncoder) Close() error {
	if e.cdict != nil {
		e.cdict.Release()
		e.cdict = nil
	}

	return nil
}

// zstdDecoder mirrors zstdEncoder on the decompression side, holding the
// prepared DDict when a dictionary is in play.
type zstdDecoder struct {
	ddict *gozstd.DDict
}

func newZstdDecoder(dict *Dictionary) (*zstdDecoder, error) {
	d := &zstdDecoder{}
	if dict != nil {
		dd, err := gozstd.NewDDict(dict.Bytes())
		if err != nil {
			return nil, fmt.Errorf("prepare zstd decompression dictionary: %w", err)
		}
		d.ddict = dd
	}

	return d, nil
}

func (d *zstdDecoder) Decompress(src, dst []byte) (int, error) {
	var (
		out []byte
		err error
	)
	if d.ddict != nil {
		out, err = gozstd.DecompressDict(dst[:0], src, d.ddict)
	} else {
		out, err = gozstd.Decompress(dst[:0], src)
	}
	if err != nil {
		return 0, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return moveToDst(out, dst)
}

func (d *zstdDecoder) Close() error {
	if d.ddict != nil {
		d.ddict.Release()
		d.ddict = nil
	}

	return nil
}
