package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/packbench/packbench/codec"
)

func TestCompressedPath(t *testing.T) {
	require.Equal(t, "data.log.zstd", compressedPath("data.log", codec.Zstd))
	require.Equal(t, "archive.br", compressedPath("archive", codec.Brotli))
	require.Equal(t, "/tmp/input.bin.lz4", compressedPath("/tmp/input.bin", codec.LZ4))
}

func TestDecompressedPath(t *testing.T) {
	require.Equal(t, "data.log", decompressedPath("data.log.zstd"))
	require.Equal(t, "archive", decompressedPath("archive.br"))
	require.Equal(t, "noext", decompressedPath("noext"))
}

func TestResolveAlgorithm(t *testing.T) {
	algo, err := resolveAlgorithm("lz4", "anything.zstd")
	require.NoError(t, err)
	require.Equal(t, codec.LZ4, algo)

	algo, err = resolveAlgorithm("", "data.log.zstd")
	require.NoError(t, err)
	require.Equal(t, codec.Zstd, algo)

	_, err = resolveAlgorithm("", "data.unknown")
	require.ErrorIs(t, err, codec.ErrUnknownAlgorithm)

	_, err = resolveAlgorithm("", "noext")
	require.Error(t, err)
}

func TestParseAlgorithmList(t *testing.T) {
	algorithms, err := parseAlgorithmList("lz4,zstd, snappy")
	require.NoError(t, err)
	require.Equal(t, []codec.Algorithm{codec.LZ4, codec.Zstd, codec.Snappy}, algorithms)

	_, err = parseAlgorithmList("lz4,bogus")
	require.ErrorIs(t, err, codec.ErrUnknownAlgorithm)
}
