// Package hashcode provides a generic "hash this value" mechanism: a
// decomposition protocol that reduces arbitrary values to ordered byte
// runs, and interchangeable streaming hash algorithms that consume them.
//
// # Quick Start
//
//	type Point struct{ X, Y int32 }
//
//	func (p Point) AppendHash(s hashcode.Sink) {
//		hashcode.AppendInteger(s, p.X)
//		hashcode.AppendInteger(s, p.Y)
//	}
//
//	digest := hashcode.Sum64(Point{3, 4})
//
// Sum64 uses FarmHash (package farmhash) by default. Any algorithm
// implementing Code can be substituted:
//
//	digest := hashcode.Sum64With(func() hashcode.Code { return fnv1a.New() }, v)
//
// # Decomposition Rules
//
// The Append* helpers define a canonical byte encoding per kind of value:
//
//   - Integers: little-endian at the type's width.
//   - Booleans: a single byte, 0 or 1.
//   - Floats: the IEEE 754 bit pattern, with negative zero normalized to
//     positive zero so that equal values hash equally.
//   - Strings, byte slices and generic slices: the elements followed by
//     the length. Appending the length keeps {"ab","c"} and {"a","bc"}
//     from colliding when fields are hashed in sequence.
//   - Structs and tuples: fields in declaration order, each decomposed
//     recursively.
//
// Because per-element integer encoding concatenates to the same bytes as
// the slice's contents, hashing a slice element-wise and hashing it as one
// contiguous run produce the same digest.
//
// # Type-Invariant Hashing
//
// Some types shortcut their decomposition through representation details:
// an interned string may hash its pool pointer instead of its contents.
// Wrapping a computation with Invariant marks it as type-invariant;
// implementations of InvariantHashable then decompose to their logical
// value so that logically equal values of different representations hash
// identically. See TypeInvariant.
//
// # Algorithms
//
// Three algorithms ship with the module, all satisfying the same
// append-then-finalize contract: farmhash (buffered 64-byte block mixer,
// the default), fnv1a (one word of state, byte-at-a-time), and identity
// (records the raw byte stream, for debugging). Cross-algorithm and
// cross-path digests are unrelated; only determinism within one algorithm
// is guaranteed.
package hashcode
