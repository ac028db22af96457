// Package codec provides a uniform block-compression contract over a closed
// set of interchangeable algorithms.
//
// The two capability interfaces, Encoder and Decoder, hide whether the
// underlying library is block oriented (lz4, snappy, s2, zstd bulk) or
// stream oriented (brotli, xz): every implementation compresses one
// caller-supplied block into one caller-supplied buffer, sized from
// CompressedLenBound. NewEncoder and NewDecoder map an (algorithm, level,
// dictionary) selection onto a concrete implementation, validating the level
// against the algorithm's domain first.
//
// Preset dictionaries are supported by Zstd, which prepares native CDict and
// DDict structures once per run; Close releases them. All other algorithms
// accept a dictionary and ignore it.
package codec
