// convert_test.go -- Test harness for runtime conversion
//
// (c) 2025 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package endian_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/opencoff/endian"
	tt "github.com/opencoff/endian/internal/testtypes"
)

type hidden struct {
	a uint16
	b int8
	c uint32
	d float32
}

func TestConvertUnexported(t *testing.T) {
	assert := newAsserter(t)

	h := hidden{a: 0x0102, b: -1, c: 0x03040506, d: 2.5}
	x := h

	err := endian.Convert(&x, endian.OpToBE)
	assert(err == nil, "convert: %s", err)
	assert(x.a == endian.ToBE(h.a), "a: %x", x.a)
	assert(x.b == -1, "b changed")
	assert(x.c == endian.ToBE(h.c), "c: %x", x.c)
	assert(x.d == endian.ToBE(h.d), "d: %v", x.d)

	err = endian.Convert(&x, endian.OpFromBE)
	assert(err == nil, "convert back: %s", err)
	assert(x == h, "round trip: %+v", x)
}

func TestConvertSequences(t *testing.T) {
	assert := newAsserter(t)

	s := []uint32{1, 2, 0xdeadbeef}
	err := endian.Convert(&s, endian.OpToLE)
	assert(err == nil, "slice: %s", err)
	for i, v := range []uint32{1, 2, 0xdeadbeef} {
		assert(s[i] == endian.ToLE(v), "slice %d: %x", i, s[i])
	}

	a := [2][2]int64{{1, -1}, {1 << 40, -(1 << 40)}}
	b := a
	err = endian.Convert(&b, endian.OpToBE)
	assert(err == nil, "array: %s", err)
	for i := range a {
		for j := range a[i] {
			assert(b[i][j] == endian.ToBE(a[i][j]), "array %d,%d: %x", i, j, b[i][j])
		}
	}

	// a bare number works too
	n := uint64(0x0102030405060708)
	err = endian.Convert(&n, endian.OpToBE)
	assert(err == nil, "number: %s", err)
	assert(n == endian.ToBE(uint64(0x0102030405060708)), "number: %x", n)
}

type padded struct {
	A uint16
	_ uint16
	B uint32
}

func TestConvertBlank(t *testing.T) {
	assert := newAsserter(t)

	var p padded
	copy(bytesOf(&p), []byte{1, 2, 3, 4, 5, 6, 7, 8})
	err := endian.Convert(&p, endian.OpToBE)
	assert(err == nil, "convert: %s", err)

	b := bytesOf(&p)
	assert(b[2] == 3 && b[3] == 4, "blank field touched: %x", b)
	if !endian.IsBigEndian() {
		assert(byteEq(b, []byte{2, 1, 3, 4, 8, 7, 6, 5}), "padded: %x", b)
	}
}

// counts calls to its methods
type counted uint32

var calls int

func (c counted) ToBE() counted   { calls++; return c + 1 }
func (c counted) ToLE() counted   { calls++; return c + 2 }
func (c counted) FromBE() counted { calls++; return c + 3 }
func (c counted) FromLE() counted { calls++; return c + 4 }

func TestConvertMethods(t *testing.T) {
	assert := newAsserter(t)

	v := struct {
		X [3]counted
		S tt.Simple
	}{S: simple}

	calls = 0
	err := endian.Convert(&v, endian.OpFromLE)
	assert(err == nil, "convert: %s", err)
	assert(calls == 3, "methods called %d times", calls)
	for i := range v.X {
		assert(v.X[i] == 4, "elem %d: %d", i, v.X[i])
	}
	assert(v.S == simple.FromLE(), "simple: %+v", v.S)
}

func TestConvertUnsupported(t *testing.T) {
	assert := newAsserter(t)

	v := struct {
		A uint32
		N struct {
			B uint16
			S string
		}
	}{A: 0x01020304}
	v.N.B = 0x0506

	err := endian.Convert(&v, endian.OpToBE)
	assert(errors.Is(err, endian.ErrUnsupported), "string accepted: %v", err)
	assert(v.A == 0x01020304 && v.N.B == 0x0506, "value modified: %+v", v)

	for _, x := range []any{
		&struct{ P *int }{},
		&struct{ M map[int]int }{},
		&struct{ I any }{},
		&struct{ F func() }{},
		&[]chan int{},
	} {
		err := endian.Convert(x, endian.OpToLE)
		assert(errors.Is(err, endian.ErrUnsupported), "%T accepted: %v", x, err)
	}
}

func TestConvertArgs(t *testing.T) {
	assert := newAsserter(t)

	var n uint32
	err := endian.Convert(n, endian.OpToBE)
	assert(errors.Is(err, endian.ErrNotPointer), "value accepted: %v", err)
	assert(strings.HasPrefix(err.Error(), "endian: convert: "), "unwrapped error: %s", err)

	var np *uint32
	err = endian.Convert(np, endian.OpToBE)
	assert(errors.Is(err, endian.ErrNotPointer), "nil accepted: %v", err)

	err = endian.Convert(nil, endian.OpToBE)
	assert(errors.Is(err, endian.ErrNotPointer), "untyped nil accepted: %v", err)

	err = endian.Convert(&n, endian.Op(42))
	assert(errors.Is(err, endian.ErrBadOp), "bad op accepted: %v", err)
}

type node struct {
	V    uint16
	Kids []node
}

func TestConvertRecursive(t *testing.T) {
	assert := newAsserter(t)

	n := node{V: 0x0102, Kids: []node{{V: 0x0304}, {V: 0x0506, Kids: []node{{V: 0x0708}}}}}
	err := endian.Convert(&n, endian.OpToBE)
	assert(err == nil, "convert: %s", err)

	assert(n.V == endian.ToBE(uint16(0x0102)), "root: %x", n.V)
	assert(n.Kids[1].V == endian.ToBE(uint16(0x0506)), "kid: %x", n.Kids[1].V)
	assert(n.Kids[1].Kids[0].V == endian.ToBE(uint16(0x0708)), "grandkid: %x", n.Kids[1].Kids[0].V)
}
