package hashcode

import (
	"encoding/binary"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// AppendUint8 appends v as one byte.
func AppendUint8(s Sink, v uint8) {
	s.Append([]byte{v})
}

// AppendUint16 appends v as 2 little-endian bytes.
func AppendUint16(s Sink, v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	s.Append(buf[:])
}

// AppendUint32 appends v as 4 little-endian bytes.
func AppendUint32(s Sink, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	s.Append(buf[:])
}

// AppendUint64 appends v as 8 little-endian bytes.
func AppendUint64(s Sink, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	s.Append(buf[:])
}

// AppendInteger appends v little-endian at the width of its type, so that
// element-wise hashing of an integer slice appends exactly the bytes of
// its contiguous representation.
func AppendInteger[T constraints.Integer](s Sink, v T) {
	switch unsafe.Sizeof(v) {
	case 1:
		AppendUint8(s, uint8(v))
	case 2:
		AppendUint16(s, uint16(v))
	case 4:
		AppendUint32(s, uint32(v))
	default:
		AppendUint64(s, uint64(v))
	}
}

// AppendBool appends a single byte, 1 for true and 0 for false.
func AppendBool(s Sink, v bool) {
	if v {
		AppendUint8(s, 1)
	} else {
		AppendUint8(s, 0)
	}
}

// AppendFloat32 appends the IEEE 754 bit pattern of v, normalizing
// negative zero to positive zero so that equal values hash equally.
func AppendFloat32(s Sink, v float32) {
	if v == 0 {
		v = 0 // collapses -0
	}
	AppendUint32(s, math.Float32bits(v))
}

// AppendFloat64 appends the IEEE 754 bit pattern of v, normalizing
// negative zero to positive zero so that equal values hash equally.
func AppendFloat64(s Sink, v float64) {
	if v == 0 {
		v = 0 // collapses -0
	}
	AppendUint64(s, math.Float64bits(v))
}

// AppendBytes appends the contents of p followed by its length. Use
// Sink.Append directly to append raw bytes without the length suffix.
func AppendBytes(s Sink, p []byte) {
	s.Append(p)
	AppendUint64(s, uint64(len(p)))
}

// AppendString appends the contents of v followed by its length. The
// contents are appended without copying. A string and a byte slice with
// equal contents hash equally.
func AppendString(s Sink, v string) {
	s.Append(unsafe.Slice(unsafe.StringData(v), len(v)))
	AppendUint64(s, uint64(len(v)))
}

// AppendSlice appends each element of v using elem, followed by the
// length. The length is appended last so that prefixes of a slice produce
// distinct digests from the slice itself.
func AppendSlice[T any](s Sink, v []T, elem func(Sink, T)) {
	for i := range v {
		elem(s, v[i])
	}
	AppendUint64(s, uint64(len(v)))
}

// AppendIntegers appends the elements of v little-endian at their width,
// followed by the length. Equivalent to AppendSlice with AppendInteger.
func AppendIntegers[T constraints.Integer](s Sink, v []T) {
	for i := range v {
		AppendInteger(s, v[i])
	}
	AppendUint64(s, uint64(len(v)))
}

// AppendValues appends each element of v in order via AppendValue,
// followed by the length.
func AppendValues[T Hashable](s Sink, v []T) {
	for i := range v {
		AppendValue(s, v[i])
	}
	AppendUint64(s, uint64(len(v)))
}
