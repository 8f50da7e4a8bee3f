package farmhash

import "unsafe"

// Sum64 computes the FarmHash digest of p in one shot, reading blocks
// straight from the input instead of staging them. It produces the same
// digest as the streaming Code for identical bytes and serves as the
// reference baseline in tests and benchmarks.
func Sum64(p []byte) uint64 {
	n := len(p)
	if n <= 32 {
		if n <= 16 {
			return hashLen0to16(p)
		}
		return hashLen17to32(p)
	}
	if n <= 64 {
		return hashLen33to64(p)
	}

	// For n > 64, the hash is computed over whole 64-byte blocks, with the
	// final (possibly overlapping) 64 bytes handled by a modified last
	// round.
	x := uint64(seed)
	y := x*k1 + 113
	z := shiftMix(y*k2+113) * k2
	var v0, v1, w0, w1 uint64
	x = x*k2 + fetch64(p)

	last64 := p[n-64:]
	for {
		x = rotate(x+y+v0+fetch64(p[8:]), 37) * k1
		y = rotate(y+v1+fetch64(p[48:]), 42) * k1
		x ^= w1
		y += v0 + fetch64(p[40:])
		z = rotate(z+w0, 33) * k1
		v0, v1 = weakHash32(p, v1*k1, x+w0)
		w0, w1 = weakHash32(p[32:], z+w1, y+fetch64(p[16:]))
		z, x = x, z
		p = p[64:]
		if len(p) <= 64 {
			break
		}
	}

	s := last64
	mul := k1 + ((z & 0xff) << 1)
	w0 += uint64((n - 1) & 63)
	v0 += w0
	w0 += v0
	x = rotate(x+y+v0+fetch64(s[8:]), 37) * mul
	y = rotate(y+v1+fetch64(s[48:]), 42) * mul
	x ^= w1 * 9
	y += v0*9 + fetch64(s[40:])
	z = rotate(z+w0, 33) * mul
	v0, v1 = weakHash32(s, v1*mul, x+w0)
	w0, w1 = weakHash32(s[32:], z+w1, y+fetch64(s[16:]))
	z, x = x, z
	return hashLen16(
		hashLen16(v0, w0, mul)+shiftMix(y)*k0+z,
		hashLen16(v1, w1, mul)+x,
		mul)
}

// SumString64 is Sum64 for strings, without copying the contents.
func SumString64(s string) uint64 {
	return Sum64(unsafe.Slice(unsafe.StringData(s), len(s)))
}
