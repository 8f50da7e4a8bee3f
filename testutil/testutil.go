package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// FillBytes fills dst with pseudo-random bytes.
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) FillBytes(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Read(dst) //nolint:errcheck // never fails
}

// Bytes returns a pseudo-random corpus of n bytes.
func (r *RNG) Bytes(n int) []byte {
	b := make([]byte, n)
	r.FillBytes(b)
	return b
}

// Chunks splits p into a random number of non-empty, contiguous chunks
// whose concatenation is p. The chunks alias p. Used to exercise
// incremental hashing across arbitrary append boundaries.
func (r *RNG) Chunks(p []byte) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	var chunks [][]byte
	for len(p) > 0 {
		n := 1 + r.rand.Intn(len(p))
		chunks = append(chunks, p[:n])
		p = p[n:]
	}
	return chunks
}

// SplitAt splits p into the two chunks p[:i] and p[i:].
func SplitAt(p []byte, i int) ([]byte, []byte) {
	return p[:i], p[i:]
}

// Pattern returns the n-byte sequence 0x00, 0x01, ... wrapping at 256.
// Deterministic data for boundary-length tests.
func Pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
