// Package farmhash implements a streaming version of FarmHash
// (farmhashna::Hash64 by Geoff Pike), producing 64-bit digests that are
// bit-exact with the reference one-shot implementation regardless of how
// the input is split across Append calls.
//
// FarmHash is a fast, non-cryptographic fingerprinting hash. Do not use it
// where an adversary controls the input and collisions matter.
//
// # Streaming Usage
//
//	c := farmhash.New()
//	c.Append(header)
//	c.Append(body)
//	digest := c.Sum64()
//
// A Code is a single-use computation: after Sum64 it must not be appended
// to or finalized again. Create a fresh Code per computation.
//
// # One-Shot Usage
//
//	digest := farmhash.Sum64(data)
//
// Sum64 avoids the staging buffer entirely and is the faster choice when
// the whole input is already contiguous. It returns the same digest as the
// streaming path for identical bytes.
//
// # Implementation Notes
//
// Input is staged in a 64-byte buffer. Whenever the buffer saturates, the
// block is folded into five 64-bit mixing registers; the registers are
// seeded lazily, on the first saturation, so inputs of 64 bytes or less
// never touch them and finalize through cheaper length-specialized paths
// (0..16, 17..32, 33..64 bytes). Longer inputs finalize by rotating the
// buffered tail into chronological order and running one modified mix
// pass. The three short paths and the long path are independent hash
// functions; only determinism within a path is guaranteed.
package farmhash
