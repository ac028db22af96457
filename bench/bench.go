// Package bench measures compression performance: single-configuration
// benchmarks pairing a compression and a decompression leg, and
// multi-configuration sweeps across algorithms and their level domains.
package bench

import (
	"bytes"
	"fmt"
	"math"

	"github.com/packbench/packbench/codec"
	"github.com/packbench/packbench/frame"
)

// Config is one benchmark configuration, built once per invocation and
// passed by value; there is no process-wide state.
type Config struct {
	Algorithm  codec.Algorithm
	Level      int
	ChunkSize  int
	Dictionary *codec.Dictionary
}

// Result pairs the compression and decompression measurements of one
// (algorithm, level) combination. It is immutable once constructed.
type Result struct {
	Algorithm     codec.Algorithm
	Level         int
	Compression   Measurement
	Decompression Measurement
}

// Ratio is compressed size over uncompressed size, rounded to 3 decimals.
func (r Result) Ratio() float64 {
	return round3(r.Compression.Ratio())
}

// InverseRatio is the space-savings factor 1/ratio, rounded to 3 decimals.
func (r Result) InverseRatio() float64 {
	ratio := r.Compression.Ratio()
	if ratio == 0 {
		return 0
	}

	return round3(1 / ratio)
}

// CompressionSpeedMBps is the compression-side input throughput in MB/s,
// rounded to 0.1.
func (r Result) CompressionSpeedMBps() float64 {
	return math.Round(r.Compression.InputThroughput()/100_000) / 10
}

// DecompressionSpeedMBps is the decompression-side output throughput in
// MB/s, rounded to 0.1.
func (r Result) DecompressionSpeedMBps() float64 {
	return math.Round(r.Decompression.OutputThroughput()/100_000) / 10
}

// String renders one fixed-width report row.
func (r Result) String() string {
	return fmt.Sprintf(
		"%-10s lev. %3d:  %10s => %10s (%5.1f%%, %5.2fx),  compr.: %7.1f MB/s, decompr.: %7.1f MB/s",
		r.Algorithm, r.Level,
		formatBytes(r.Compression.InputLen), formatBytes(r.Compression.OutputLen),
		r.Compression.Ratio()*100, r.InverseRatio(),
		r.CompressionSpeedMBps(), r.DecompressionSpeedMBps(),
	)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// formatBytes renders a byte count with a binary unit suffix.
func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// Run benchmarks a single configuration.
//
// The whole input is materialized in memory and compressed into an in-memory
// buffer so that disk I/O stays out of the timed region; decompression
// streams into a counting sink. The two legs are measured independently.
func Run(input []byte, cfg Config) (Result, error) {
	enc, err := codec.NewEncoder(cfg.Algorithm, cfg.Level, cfg.Dictionary)
	if err != nil {
		return Result{}, err
	}
	defer enc.Close()

	dec, err := codec.NewDecoder(cfg.Algorithm, cfg.Dictionary)
	if err != nil {
		return Result{}, err
	}
	defer dec.Close()

	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = frame.DefaultChunkSize
	}

	compressed := bytes.NewBuffer(make([]byte, 0, len(input)))
	cin := NewCountingReader(bytes.NewReader(input))
	cout := NewCountingWriter(compressed)
	cm, err := Measure(cin, cout, func() error {
		return frame.Compress(cout, cin, chunkSize, enc)
	})
	if err != nil {
		return Result{}, fmt.Errorf("benchmark compression: %w", err)
	}

	din := NewCountingReader(bytes.NewReader(compressed.Bytes()))
	dout := Discard()
	dm, err := Measure(din, dout, func() error {
		return frame.Decompress(dout, din, dec)
	})
	if err != nil {
		return Result{}, fmt.Errorf("benchmark decompression: %w", err)
	}

	return Result{
		Algorithm:     cfg.Algorithm,
		Level:         cfg.Level,
		Compression:   cm,
		Decompression: dm,
	}, nil
}
