package codec

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Dictionary is an immutable preset dictionary, shared read-only across every
// block of a run. Dictionary-capable algorithms build their own prepared
// representation from these bytes once and reuse it; the rest ignore it.
type Dictionary struct {
	data []byte
}

// NewDictionary wraps raw dictionary bytes.
func NewDictionary(data []byte) *Dictionary {
	return &Dictionary{data: data}
}

// LoadDictionary reads at most maxLen bytes from the start of the file at
// path. The dictionary is truncated to min(maxLen, file size) bytes.
func LoadDictionary(path string, maxLen int64) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat dictionary %s: %w", path, err)
	}

	data := make([]byte, min(maxLen, info.Size()))
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}

	return &Dictionary{data: data}, nil
}

// Bytes returns the raw dictionary contents. Callers must not modify them.
func (d *Dictionary) Bytes() []byte {
	return d.data
}

// Len returns the dictionary length in bytes.
func (d *Dictionary) Len() int {
	return len(d.data)
}

// ID returns a stable fingerprint of the dictionary contents, used to
// identify the dictionary in logs.
func (d *Dictionary) ID() uint64 {
	return xxhash.Sum64(d.data)
}
