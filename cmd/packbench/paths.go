package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/packbench/packbench/codec"
)

// compressedPath derives the compressed output path by appending the
// algorithm-specific extension to the input path.
func compressedPath(inputPath string, algo codec.Algorithm) string {
	return inputPath + "." + algo.Extension()
}

// decompressedPath derives the decompressed output path by stripping the last
// extension from the input path.
func decompressedPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
}

// resolveAlgorithm resolves the algorithm either from an explicit name or,
// when the name is empty, from the file extension of the input path.
func resolveAlgorithm(name, inputPath string) (codec.Algorithm, error) {
	if name != "" {
		return codec.ParseAlgorithm(name)
	}

	ext := strings.TrimPrefix(filepath.Ext(inputPath), ".")
	if ext == "" {
		return 0, fmt.Errorf("%s has no extension to determine the algorithm from; pass -a", inputPath)
	}

	algo, ok := codec.FromExtension(ext)
	if !ok {
		return 0, fmt.Errorf("%w: extension %q", codec.ErrUnknownAlgorithm, ext)
	}

	return algo, nil
}
