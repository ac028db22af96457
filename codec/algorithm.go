package codec

import (
	"fmt"
	"strings"
)

// Algorithm identifies one of the supported compression algorithms.
// The set is closed; an Algorithm is selected once per run and never changes.
type Algorithm uint8

const (
	// Copy passes data through unchanged. Useful as a baseline.
	Copy Algorithm = iota + 1
	// LZ4 block mode via pierrec/lz4.
	LZ4
	// Zstd bulk mode via gozstd, with optional prepared dictionaries.
	Zstd
	// Brotli one-shot buffer mode via andybalholm/brotli.
	Brotli
	// Snappy raw block mode via golang/snappy.
	Snappy
	// XZ streams each block through the xz container via ulikunitz/xz.
	XZ
	// S2 block mode via klauspost/compress, with three quality tiers.
	S2
)

// Algorithms returns every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{Copy, LZ4, Zstd, Brotli, Snappy, XZ, S2}
}

func (a Algorithm) known() bool {
	return a >= Copy && a <= S2
}

func (a Algorithm) String() string {
	switch a {
	case Copy:
		return "copy"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	case Brotli:
		return "brotli"
	case Snappy:
		return "snappy"
	case XZ:
		return "xz"
	case S2:
		return "s2"
	default:
		return "unknown"
	}
}

// Extension returns the file extension token appended to compressed output
// and used to resolve the algorithm of an input file.
func (a Algorithm) Extension() string {
	switch a {
	case Copy:
		return "bak"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	case Brotli:
		return "br"
	case Snappy:
		return "sz"
	case XZ:
		return "xz"
	case S2:
		return "s2"
	default:
		return ""
	}
}

// Levels returns the algorithm's full compression-level domain in sweep
// order. Single-level algorithms report {0}.
func (a Algorithm) Levels() []int {
	switch a {
	case Zstd:
		levels := make([]int, 0, 19)
		for l := -7; l <= -1; l++ {
			levels = append(levels, l)
		}
		for l := 1; l <= 12; l++ {
			levels = append(levels, l)
		}
		return levels
	case LZ4:
		// Negative levels all alias the fast block mode, so the sweep covers
		// the fast mode once (level 0) plus the HC levels.
		levels := make([]int, 0, 10)
		for l := 0; l <= 9; l++ {
			levels = append(levels, l)
		}
		return levels
	case Brotli:
		levels := make([]int, 0, 8)
		for l := 1; l <= 8; l++ {
			levels = append(levels, l)
		}
		return levels
	case S2:
		return []int{s2TierDefault, s2TierBetter, s2TierBest}
	default:
		return []int{0}
	}
}

// ValidLevel reports whether level is inside the algorithm's supported
// domain. LZ4 additionally accepts -9..-1: negative levels select the fast
// tier with the magnitude ignored, since the block API exposes no
// acceleration factor.
func (a Algorithm) ValidLevel(level int) bool {
	switch a {
	case Copy, Snappy, XZ:
		return level == 0
	case LZ4:
		return level >= -9 && level <= 9
	case Zstd:
		return (level >= -7 && level <= -1) || (level >= 1 && level <= 12)
	case Brotli:
		return level >= 1 && level <= 8
	case S2:
		return level >= s2TierDefault && level <= s2TierBest
	default:
		return false
	}
}

// ParseAlgorithm resolves an algorithm from its name, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, a := range Algorithms() {
		if a.String() == lower {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// FromExtension resolves an algorithm from its file extension token
// (without the leading dot).
func FromExtension(ext string) (Algorithm, bool) {
	for _, a := range Algorithms() {
		if a.Extension() == ext {
			return a, true
		}
	}

	return 0, false
}
