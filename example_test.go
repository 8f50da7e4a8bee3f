package hashcode_test

import (
	"bytes"
	"fmt"

	"github.com/hupe1980/hashcode"
	"github.com/hupe1980/hashcode/fnv1a"
	"github.com/hupe1980/hashcode/identity"
)

type point struct{ x, y int32 }

func (p point) AppendHash(s hashcode.Sink) {
	hashcode.AppendInteger(s, p.x)
	hashcode.AppendInteger(s, p.y)
}

func ExampleSum64() {
	a := hashcode.Sum64(point{3, 4})
	b := hashcode.Sum64(point{3, 4})
	c := hashcode.Sum64(point{4, 3})

	fmt.Println(a == b)
	fmt.Println(a == c)
	// Output:
	// true
	// false
}

func ExampleSum64With() {
	newFNV := func() hashcode.Code { return fnv1a.New() }

	a := hashcode.Sum64With(newFNV, point{3, 4})
	b := hashcode.Sum64With(newFNV, point{3, 4})

	fmt.Println(a == b)
	// Output: true
}

func ExampleAppendValue() {
	// The identity hasher records the exact byte runs a value decomposes
	// into, which is handy for debugging digest mismatches.
	c := identity.New()
	hashcode.AppendValue(c, point{1, 2})

	fmt.Println(bytes.Equal(c.Sum(), []byte{1, 0, 0, 0, 2, 0, 0, 0}))
	// Output: true
}
