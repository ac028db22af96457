package bench

import (
	"fmt"

	"github.com/packbench/packbench/codec"
	"github.com/packbench/packbench/frame"
)

type sweepConfig struct {
	chunkSize     int
	dict          *codec.Dictionary
	stopThreshold float64
	progress      func(Result)
}

// Option configures a RunMany sweep.
type Option func(*sweepConfig) error

// WithChunkSize sets the raw chunk size for every benchmarked configuration.
func WithChunkSize(n int) Option {
	return func(c *sweepConfig) error {
		if n <= 0 || n > frame.MaxChunkSize {
			return fmt.Errorf("%w: %d", frame.ErrChunkSize, n)
		}
		c.chunkSize = n

		return nil
	}
}

// WithDictionary attaches a preset dictionary to every benchmarked
// configuration.
func WithDictionary(d *codec.Dictionary) Option {
	return func(c *sweepConfig) error {
		c.dict = d
		return nil
	}
}

// WithStopThreshold enables the diminishing-returns cutoff: once raising the
// level shrinks the compressed output by less than threshold (a fraction,
// e.g. 0.001 for 0.1%), the remaining levels of that algorithm are skipped.
func WithStopThreshold(threshold float64) Option {
	return func(c *sweepConfig) error {
		if threshold < 0 {
			return fmt.Errorf("stop threshold must be non-negative, got %g", threshold)
		}
		c.stopThreshold = threshold

		return nil
	}
}

// WithProgress registers a callback invoked with each Result as it is
// produced, so callers can report long sweeps incrementally.
func WithProgress(fn func(Result)) Option {
	return func(c *sweepConfig) error {
		c.progress = fn
		return nil
	}
}

// RunMany benchmarks every (algorithm, level) combination over the supplied
// algorithms' full level domains and returns one Result per combination, in
// sweep order.
func RunMany(input []byte, algorithms []codec.Algorithm, opts ...Option) ([]Result, error) {
	cfg := sweepConfig{chunkSize: frame.DefaultChunkSize}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	var results []Result
	for _, algo := range algorithms {
		var prev uint64
		for _, level := range algo.Levels() {
			res, err := Run(input, Config{
				Algorithm:  algo,
				Level:      level,
				ChunkSize:  cfg.chunkSize,
				Dictionary: cfg.dict,
			})
			if err != nil {
				return results, err
			}
			results = append(results, res)
			if cfg.progress != nil {
				cfg.progress(res)
			}

			cur := res.Compression.OutputLen
			if cfg.stopThreshold > 0 && prev > 0 && improvedLessThan(prev, cur, cfg.stopThreshold) {
				break
			}
			prev = cur
		}
	}

	return results, nil
}

// improvedLessThan reports whether going from prev to cur shrank the output
// by less than threshold, as a fraction of prev.
func improvedLessThan(prev, cur uint64, threshold float64) bool {
	if cur >= prev {
		return true
	}

	return float64(prev-cur)/float64(prev) < threshold
}
