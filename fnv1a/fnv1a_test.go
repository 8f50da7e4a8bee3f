package fnv1a

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hashcode/testutil"
)

func TestKnownVectors(t *testing.T) {
	// Published FNV-1a 64 test vectors.
	tests := []struct {
		in   string
		want uint64
	}{
		{"", 0xcbf29ce484222325},
		{"a", 0xaf63dc4c8601ec8c},
		{"foobar", 0x85944171f73967e8},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Sum64([]byte(tt.in)))

			c := New()
			c.Append([]byte(tt.in))
			assert.Equal(t, tt.want, c.Sum64())
		})
	}
}

func TestChunkingInvariance(t *testing.T) {
	rng := testutil.NewRNG(4711)
	corpus := rng.Bytes(200)
	want := Sum64(corpus)

	for trial := 0; trial < 16; trial++ {
		c := New()
		for _, chunk := range rng.Chunks(corpus) {
			c.Append(chunk)
		}
		require.Equal(t, want, c.Sum64(), "trial %d", trial)
	}
}

func TestEmptyAppendIsNoOp(t *testing.T) {
	c := New()
	c.Append(nil)
	assert.Equal(t, Sum64(nil), c.Sum64())
}
