package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/packbench/packbench/bench"
)

var reportHeader = []string{
	"algorithm",
	"level",
	"uncompressed_len",
	"compressed_len",
	"ratio",
	"inv_ratio",
	"compression_speed_mbps",
	"decompression_speed_mbps",
}

// writeReport saves benchmark results as a CSV file, one row per
// algorithm/level combination.
func writeReport(path string, results []bench.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(reportHeader); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Algorithm.String(),
			strconv.Itoa(r.Level),
			strconv.FormatUint(r.Compression.InputLen, 10),
			strconv.FormatUint(r.Compression.OutputLen, 10),
			strconv.FormatFloat(r.Ratio(), 'f', 3, 64),
			strconv.FormatFloat(r.InverseRatio(), 'f', 3, 64),
			strconv.FormatFloat(r.CompressionSpeedMBps(), 'f', 1, 64),
			strconv.FormatFloat(r.DecompressionSpeedMBps(), 'f', 1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}
