package farmhash

// State is the heavyweight accumulator for one streaming computation: five
// 64-bit mixing registers and a 64-byte staging buffer. The registers are
// meaningless until initialize has run, which happens the first time the
// buffer saturates. A State must not be shared between computations.
type State struct {
	x, y   uint64
	z      uint64
	v0, v1 uint64
	w0, w1 uint64

	// buf stages unmixed input. During mix it doubles as the source block
	// being folded into the registers.
	buf [64]byte
}

// Code is the cursor for one streaming computation over a State. Its two
// fields dominate the algorithm's control flow, so they live apart from
// the larger State to keep branch-deciding values local.
//
// Invariant: n is the number of staged bytes in state.buf. After the first
// Append it stays in 1..64; it is 0 only while no input has been seen.
type Code struct {
	state *State

	n     int
	mixed bool
}

// New returns a Code bound to a fresh State, ready for one computation.
func New() *Code {
	return &Code{state: new(State)}
}

// Append stages p into the buffer, folding 64-byte blocks into the mixing
// registers whenever the buffer saturates. Digests are independent of how
// the input is split across Append calls.
func (c *Code) Append(p []byte) {
	s := c.state
	remaining := len(s.buf) - c.n
	if len(p) <= remaining {
		copy(s.buf[c.n:], p)
		c.n += len(p)
		return
	}

	// Saturating case: fill the buffer exactly, mix, then stream whole
	// blocks through the buffer until only a tail of 1..64 bytes is left.
	copy(s.buf[c.n:], p[:remaining])
	p = p[remaining:]
	if !c.mixed {
		s.initialize()
		c.mixed = true
	}
	s.mix()
	for len(p) > 64 {
		copy(s.buf[:], p[:64])
		p = p[64:]
		s.mix()
	}
	// The tail is never empty: the loop above leaves 1..64 bytes, and the
	// finalizer relies on that.
	copy(s.buf[:], p)
	c.n = len(p)
}

// Sum64 finalizes the computation and returns the digest. It must be
// called at most once; neither it nor Append may be used afterwards.
func (c *Code) Sum64() uint64 {
	if !c.mixed {
		// The buffer holds the entire input, so the short-string paths
		// apply. They never touch the mixing registers.
		s := c.state.buf[:c.n]
		if c.n <= 32 {
			if c.n <= 16 {
				return hashLen0to16(s)
			}
			return hashLen17to32(s)
		}
		return hashLen33to64(s)
	}
	return c.state.finalMix(c.n)
}

// initialize seeds the mixing registers and folds in the first buffered
// word. It must run exactly once, before the first mix.
func (s *State) initialize() {
	s.x = seed
	s.y = s.x*k1 + 113
	s.z = shiftMix(s.y*k2+113) * k2
	s.v0, s.v1 = 0, 0
	s.w0, s.w1 = 0, 0
	s.x = s.x*k2 + fetch64(s.buf[:])
}

// mix folds the 64 bytes in buf into the registers. Straight-line
// arithmetic, no early exits.
func (s *State) mix() {
	s.x = rotate(s.x+s.y+s.v0+fetch64(s.buf[8:]), 37) * k1
	s.y = rotate(s.y+s.v1+fetch64(s.buf[48:]), 42) * k1
	s.x ^= s.w1
	s.y += s.v0 + fetch64(s.buf[40:])
	s.z = rotate(s.z+s.w0, 33) * k1
	s.v0, s.v1 = weakHash32(s.buf[:], s.v1*k1, s.x+s.w0)
	s.w0, s.w1 = weakHash32(s.buf[32:], s.z+s.w1, s.y+fetch64(s.buf[16:]))
	s.z, s.x = s.x, s.z
}

// finalMix computes the digest from the registers and the n-byte unmixed
// tail, 0 < n <= 64. The reference final mix reads the last 64 bytes of
// input in order; buf holds them as a circular buffer, so it is rotated
// first to restore chronological order.
func (s *State) finalMix(n int) uint64 {
	var tmp [64]byte
	copy(tmp[:], s.buf[n:])
	copy(tmp[64-n:], s.buf[:n])
	s.buf = tmp

	mul := k1 + ((s.z & 0xff) << 1)
	s.w0 += uint64((n - 1) & 63)
	s.v0 += s.w0
	s.w0 += s.v0
	s.x = rotate(s.x+s.y+s.v0+fetch64(s.buf[8:]), 37) * mul
	s.y = rotate(s.y+s.v1+fetch64(s.buf[48:]), 42) * mul
	s.x ^= s.w1 * 9
	s.y += s.v0*9 + fetch64(s.buf[40:])
	s.z = rotate(s.z+s.w0, 33) * mul
	s.v0, s.v1 = weakHash32(s.buf[:], s.v1*mul, s.x+s.w0)
	s.w0, s.w1 = weakHash32(s.buf[32:], s.z+s.w1, s.y+fetch64(s.buf[16:]))
	s.z, s.x = s.x, s.z
	return hashLen16(
		hashLen16(s.v0, s.w0, mul)+shiftMix(s.y)*k0+s.z,
		hashLen16(s.v1, s.w1, mul)+s.x,
		mul)
}
