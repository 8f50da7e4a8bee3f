package farmhash

import (
	"encoding/binary"
	"math/bits"
)

// Some primes between 2^63 and 2^64 for various uses.
const (
	k0 = 0xc3a5c85c97cb3127
	k1 = 0xb492b66fbe98f273
	k2 = 0x9ae16a3b2f90404f
)

const seed = 81

func fetch64(p []byte) uint64 {
	return binary.LittleEndian.Uint64(p)
}

func fetch32(p []byte) uint32 {
	return binary.LittleEndian.Uint32(p)
}

func shiftMix(v uint64) uint64 {
	return v ^ (v >> 47)
}

// rotate rotates v right by k bits.
func rotate(v uint64, k int) uint64 {
	return bits.RotateLeft64(v, -k)
}

// hashLen16 is a Murmur-inspired 128-to-64-bit compression step.
func hashLen16(u, v, mul uint64) uint64 {
	a := (u ^ v) * mul
	a ^= a >> 47
	b := (v ^ a) * mul
	b ^= b >> 47
	b *= mul
	return b
}

func hashLen0to16(s []byte) uint64 {
	n := len(s)
	if n >= 8 {
		mul := k2 + uint64(n)*2
		a := fetch64(s) + k2
		b := fetch64(s[n-8:])
		c := rotate(b, 37)*mul + a
		d := (rotate(a, 25) + b) * mul
		return hashLen16(c, d, mul)
	}
	if n >= 4 {
		mul := k2 + uint64(n)*2
		a := uint64(fetch32(s))
		return hashLen16(uint64(n)+(a<<3), uint64(fetch32(s[n-4:])), mul)
	}
	if n > 0 {
		a := uint32(s[0])
		b := uint32(s[n>>1])
		c := uint32(s[n-1])
		y := a + (b << 8)
		z := uint32(n) + (c << 2)
		return shiftMix(uint64(y)*k2^uint64(z)*k0) * k2
	}
	return k2
}

func hashLen17to32(s []byte) uint64 {
	n := len(s)
	mul := k2 + uint64(n)*2
	a := fetch64(s) * k1
	b := fetch64(s[8:])
	c := fetch64(s[n-8:]) * mul
	d := fetch64(s[n-16:]) * k2
	return hashLen16(rotate(a+b, 43)+rotate(c, 30)+d,
		a+rotate(b+k2, 18)+c, mul)
}

func hashLen33to64(s []byte) uint64 {
	n := len(s)
	mul := k2 + uint64(n)*2
	a := fetch64(s) * k2
	b := fetch64(s[8:])
	c := fetch64(s[n-8:]) * mul
	d := fetch64(s[n-16:]) * k2
	y := rotate(a+b, 43) + rotate(c, 30) + d
	z := hashLen16(y, a+rotate(b+k2, 18)+c, mul)
	e := fetch64(s[16:]) * mul
	f := fetch64(s[24:])
	g := (y + fetch64(s[n-32:])) * mul
	h := (z + fetch64(s[n-24:])) * mul
	return hashLen16(rotate(e+f, 43)+rotate(g, 30)+h,
		e+rotate(f+a, 18)+g, mul)
}

// weakHash32 combines two 64-bit accumulators with the first 32 bytes of
// block. len(block) must be at least 32.
func weakHash32(block []byte, a, b uint64) (uint64, uint64) {
	w0 := fetch64(block)
	w1 := fetch64(block[8:])
	w2 := fetch64(block[16:])
	w3 := fetch64(block[24:])

	a += w0
	b = rotate(b+a+w3, 21)
	c := a
	a += w1
	a += w2
	b += rotate(a, 44)
	return a + w3, b + c
}
