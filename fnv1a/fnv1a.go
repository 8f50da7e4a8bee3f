// Package fnv1a implements the 64-bit FNV-1a hash with the same streaming
// contract as package farmhash: Append raw bytes, then Sum64 once.
//
// FNV-1a mixes one byte at a time and keeps its entire state in a single
// word, so there is no buffering and no separate finalization step. It is
// included as the simple baseline the block-mixing algorithms are measured
// against.
package fnv1a

const (
	offsetBasis = 14695981039346656037
	prime       = 1099511628211
)

// Code is a streaming FNV-1a 64 computation. The zero value is not ready
// for use; call New.
type Code struct {
	state uint64
}

// New returns a Code seeded with the FNV-1a offset basis.
func New() *Code {
	return &Code{state: offsetBasis}
}

// Append folds p into the state one byte at a time.
func (c *Code) Append(p []byte) {
	h := c.state
	for _, b := range p {
		h = (h ^ uint64(b)) * prime
	}
	c.state = h
}

// Sum64 returns the current digest. Unlike farmhash, FNV-1a has no
// finalization step, so Sum64 is non-destructive; for a consistent usage
// discipline across algorithms, treat it as one-shot anyway.
func (c *Code) Sum64() uint64 {
	return c.state
}

// Sum64 computes the FNV-1a 64 digest of p in one shot.
func Sum64(p []byte) uint64 {
	h := uint64(offsetBasis)
	for _, b := range p {
		h = (h ^ uint64(b)) * prime
	}
	return h
}
