// Package testutil provides testing utilities for hashcode.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating seeded pseudo-random byte corpora and
// for splitting them into chunks to exercise incremental hashing.
//
// # Random Corpora
//
//	rng := testutil.NewRNG(seed)
//	corpus := rng.Bytes(200)
//
// # Chunk Splits
//
//	for _, chunk := range rng.Chunks(corpus) {
//		code.Append(chunk)
//	}
package testutil
