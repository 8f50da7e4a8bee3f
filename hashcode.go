package hashcode

import "github.com/hupe1980/hashcode/farmhash"

// Sink consumes the byte runs produced by decomposing a value. It is the
// only operation the decomposition protocol needs from an algorithm.
type Sink interface {
	// Append ingests raw bytes. Digests must be independent of how a byte
	// sequence is split across Append calls. Implementations must not
	// retain p.
	Append(p []byte)
}

// Code is one streaming hash computation: a Sink that can be finalized
// into a 64-bit digest. A Code is single-use; Sum64 must be called at most
// once, and no method may be called after it.
type Code interface {
	Sink
	Sum64() uint64
}

// Hashable is the extension point of the decomposition protocol: a type
// that knows how to reduce itself to byte runs on a Sink. Implementations
// decompose their logical fields in a fixed order using the Append*
// helpers; they must not finalize the sink.
type Hashable interface {
	AppendHash(s Sink)
}

// InvariantHashable is implemented in addition to Hashable by types whose
// ordinary decomposition depends on representation details (interned
// pointers, small-value encodings). AppendInvariantHash must decompose the
// logical value only, so that equal values of different representations
// hash equally. It is used when the sink is type-invariant; see Invariant.
type InvariantHashable interface {
	AppendInvariantHash(s Sink)
}

// AppendValue decomposes v into s, routing through AppendInvariantHash
// when the sink demands type-invariant decomposition and v supports it.
func AppendValue(s Sink, v Hashable) {
	if iv, ok := v.(InvariantHashable); ok && TypeInvariant(s) {
		iv.AppendInvariantHash(s)
		return
	}
	v.AppendHash(s)
}

// Sum64 computes the digest of v using the default algorithm, FarmHash.
// Each call runs a fresh single-use computation.
func Sum64(v Hashable) uint64 {
	c := farmhash.New()
	AppendValue(c, v)
	return c.Sum64()
}

// Sum64With computes the digest of v using a fresh Code from newCode.
// Useful for hash tables parameterized over the algorithm.
func Sum64With(newCode func() Code, v Hashable) uint64 {
	c := newCode()
	AppendValue(c, v)
	return c.Sum64()
}
