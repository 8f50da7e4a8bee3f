package farmhash

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hashcode/testutil"
)

// Lengths that straddle every branch in the finalizer and the buffer
// overflow logic: the 8/4/byte-wise sub-paths of the short path, the
// medium and long paths, the everMixed flip at 64/65, and multi-block
// inputs.
var boundaryLens = []int{0, 1, 4, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 65, 128, 129}

func TestEmptyDigest(t *testing.T) {
	// The digest of no input is the prime k2, with no other mixing.
	const want = uint64(0x9ae16a3b2f90404f)

	assert.Equal(t, want, Sum64(nil))
	assert.Equal(t, want, Sum64([]byte{}))
	assert.Equal(t, want, New().Sum64())
}

func TestKnownDigests(t *testing.T) {
	// Digests cross-checked against an independent farmhashna port
	// (dgryski/go-farm), one per finalizer path plus multi-block inputs.
	// In particular the >64-byte cases pin the seeded register values
	// (x = seed*k2 + first word, y = seed*k1 + 113), which must wrap
	// modulo 2^64 at runtime.
	tests := []struct {
		name  string
		input []byte
		want  uint64
	}{
		{name: "a", input: []byte("a"), want: 0xb3454265b6df75e3},
		{name: "abc", input: []byte("abc"), want: 0x24a5b3a074e7f369},
		{name: "hello world", input: []byte("hello world"), want: 0x588fb7478bd6b01b},
		{name: "len 16", input: []byte("0123456789abcdef"), want: 0x54b961e5dc834067},
		{name: "len 25", input: testutil.Pattern(25), want: 0xb49fc64083cc4c3e},
		{name: "len 40", input: testutil.Pattern(40), want: 0x08f45b937b49468c},
		{name: "len 63", input: testutil.Pattern(63), want: 0x01c1f788a248076f},
		{name: "len 64", input: testutil.Pattern(64), want: 0xf58504bb53decc4b},
		{name: "len 65", input: testutil.Pattern(65), want: 0xc6a3282c3e793dbe},
		{name: "len 128", input: testutil.Pattern(128), want: 0x1c484c95f0ea5dd3},
		{name: "len 200", input: testutil.Pattern(200), want: 0x074c7fcc26d66fb3},
		{name: "len 1000", input: testutil.Pattern(1000), want: 0x6f7979adc223bce4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sum64(tt.input))

			c := New()
			c.Append(tt.input)
			assert.Equal(t, tt.want, c.Sum64())
		})
	}
}

func TestSingleByteDiffersFromEmpty(t *testing.T) {
	assert.NotEqual(t, Sum64(nil), Sum64([]byte{0}))
	assert.NotEqual(t, Sum64(nil), Sum64([]byte{0xff}))
}

func TestStreamingMatchesDirect(t *testing.T) {
	rng := testutil.NewRNG(1)

	for n := 0; n <= 256; n++ {
		corpus := rng.Bytes(n)

		c := New()
		c.Append(corpus)

		assert.Equal(t, Sum64(corpus), c.Sum64(), "length %d", n)
	}

	for _, n := range []int{1000, 4096, 1 << 16} {
		corpus := rng.Bytes(n)

		c := New()
		c.Append(corpus)

		assert.Equal(t, Sum64(corpus), c.Sum64(), "length %d", n)
	}
}

func TestChunkingInvariance(t *testing.T) {
	for _, n := range boundaryLens {
		t.Run(fmt.Sprintf("len=%d", n), func(t *testing.T) {
			corpus := testutil.Pattern(n)
			want := Sum64(corpus)

			// Every two-chunk split.
			for i := 0; i <= n; i++ {
				head, tail := testutil.SplitAt(corpus, i)
				c := New()
				c.Append(head)
				c.Append(tail)
				require.Equal(t, want, c.Sum64(), "split at %d", i)
			}

			// One byte at a time.
			c := New()
			for i := 0; i < n; i++ {
				c.Append(corpus[i : i+1])
			}
			require.Equal(t, want, c.Sum64(), "byte-at-a-time")
		})
	}
}

func TestRandomChunkingInvariance(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for _, n := range []int{65, 200, 1000, 5000} {
		corpus := rng.Bytes(n)
		want := Sum64(corpus)

		for trial := 0; trial < 32; trial++ {
			c := New()
			for _, chunk := range rng.Chunks(corpus) {
				c.Append(chunk)
			}
			require.Equal(t, want, c.Sum64(), "length %d trial %d", n, trial)
		}
	}
}

func TestBlockBoundary(t *testing.T) {
	// 64 bytes is the exact saturation point: a single 64-byte append must
	// stay on the short path and agree with any chunked feeding of the
	// same bytes.
	corpus := testutil.Pattern(64)

	one := New()
	one.Append(corpus)

	two := New()
	two.Append(corpus[:13])
	two.Append(corpus[13:])

	assert.Equal(t, one.Sum64(), two.Sum64())
	assert.Equal(t, Sum64(corpus), one.Sum64())
}

func TestMixedFlipsPastBlockSize(t *testing.T) {
	zeros64 := make([]byte, 64)
	zeros65 := make([]byte, 65)

	c64 := New()
	c64.Append(zeros64)
	assert.False(t, c64.mixed, "64 bytes must not saturate the buffer")

	c65 := New()
	c65.Append(zeros65)
	assert.True(t, c65.mixed, "65 bytes must trigger a mix")

	assert.NotEqual(t, c64.Sum64(), c65.Sum64())
}

func TestEmptyAppendsAreNoOps(t *testing.T) {
	corpus := testutil.Pattern(129)

	c := New()
	c.Append(nil)
	c.Append(corpus[:64])
	c.Append(nil)
	c.Append(corpus[64:])
	c.Append([]byte{})

	assert.Equal(t, Sum64(corpus), c.Sum64())
}

func TestSingleByteAppends200(t *testing.T) {
	rng := testutil.NewRNG(99)
	corpus := rng.Bytes(200)

	one := New()
	one.Append(corpus)

	single := New()
	for i := range corpus {
		single.Append(corpus[i : i+1])
	}

	assert.Equal(t, one.Sum64(), single.Sum64())
	assert.Equal(t, Sum64(corpus), one.Sum64())
}

func TestDeterminismAcrossRuns(t *testing.T) {
	rng := testutil.NewRNG(7)
	corpus := rng.Bytes(300)

	a := New()
	a.Append(corpus)
	b := New()
	b.Append(corpus)

	assert.Equal(t, a.Sum64(), b.Sum64())
}

func TestParallelDeterminism(t *testing.T) {
	// One Code per goroutine, zero synchronization.
	rng := testutil.NewRNG(13)
	corpus := rng.Bytes(10_000)
	want := Sum64(corpus)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			c := New()
			for _, chunk := range testutil.NewRNG(int64(i)).Chunks(corpus) {
				c.Append(chunk)
			}
			if got := c.Sum64(); got != want {
				return fmt.Errorf("digest mismatch: got %#x, want %#x", got, want)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestSumString64(t *testing.T) {
	assert.Equal(t, Sum64([]byte("hello, world")), SumString64("hello, world"))
	assert.Equal(t, Sum64(nil), SumString64(""))
}

func BenchmarkAppend(b *testing.B) {
	rng := testutil.NewRNG(1)
	for _, n := range []int{8, 64, 1024, 64 * 1024} {
		corpus := rng.Bytes(n)
		b.Run(fmt.Sprintf("size=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				c := New()
				c.Append(corpus)
				_ = c.Sum64()
			}
		})
	}
}

func BenchmarkSum64(b *testing.B) {
	rng := testutil.NewRNG(1)
	for _, n := range []int{8, 64, 1024, 64 * 1024} {
		corpus := rng.Bytes(n)
		b.Run(fmt.Sprintf("size=%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Sum64(corpus)
			}
		})
	}
}
