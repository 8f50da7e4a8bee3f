// Package identity implements a debug hasher whose "digest" is the exact
// sequence of bytes that was appended. Hashing a value through it shows
// precisely what the decomposition protocol fed to the algorithm, which
// makes it useful for diagnosing unexpected digest differences.
package identity

// Code accumulates appended bytes verbatim.
type Code struct {
	input []byte
}

// New returns an empty Code.
func New() *Code {
	return new(Code)
}

// Append records p.
func (c *Code) Append(p []byte) {
	c.input = append(c.input, p...)
}

// Sum returns the recorded input. The returned slice aliases the Code's
// internal storage; the computation is over once Sum is called.
func (c *Code) Sum() []byte {
	return c.input
}
