// slice_test.go -- Test harness for sequence conversions
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
	"testing"

	"github.com/opencoff/endian"
	"github.com/opencoff/endian/internal/testtypes"
)

var sliceVals = [8]int32{1, 512, 196608, 67108864, 83886080, 393216, 1792, 8}

func TestSliceBE(t *testing.T) {
	assert := newAsserter(t)

	exp := [][4]byte{
		{0, 0, 0, 1},
		{0, 0, 2, 0},
		{0, 3, 0, 0},
		{4, 0, 0, 0},
		{5, 0, 0, 0},
		{0, 6, 0, 0},
		{0, 0, 7, 0},
		{0, 0, 0, 8},
	}

	src := sliceVals
	s := endian.SliceToBE(src[:])
	assert(len(s) == len(exp), "len changed: %d", len(s))
	for i := range s {
		assert(byteEq(bytesOf(&s[i]), exp[i][:]), "BE %d: %x, exp %x", i, bytesOf(&s[i]), exp[i])
	}

	// in place: the backing array is changed too
	assert(src[0] == s[0], "not in place")
	endian.SliceFromBE(s)
	assert(src == sliceVals, "BE round trip: %v", src)
}

func TestSliceLE(t *testing.T) {
	assert := newAsserter(t)

	exp := [][4]byte{
		{1, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 3, 0},
		{0, 0, 0, 4},
		{0, 0, 0, 5},
		{0, 0, 6, 0},
		{0, 7, 0, 0},
		{8, 0, 0, 0},
	}

	src := sliceVals
	s := endian.SliceToLE(src[:])
	for i := range s {
		assert(byteEq(bytesOf(&s[i]), exp[i][:]), "LE %d: %x, exp %x", i, bytesOf(&s[i]), exp[i])
	}

	be := sliceVals
	endian.SliceFromBE(endian.SliceToBE(be[:]))
	endian.SliceFromLE(s)
	assert(be == src, "from BE %v != from LE %v", be, src)
}

func TestApplySlice(t *testing.T) {
	assert := newAsserter(t)

	for _, op := range endian.Ops {
		a := sliceVals
		b := sliceVals

		endian.ApplySlice(op, a[:])
		for i := range b {
			b[i] = endian.Apply(op, b[i])
		}
		assert(a == b, "%s: slice %v, elementwise %v", op, a, b)

		endian.ApplySlice(op.Inverse(), a[:])
		assert(a == sliceVals, "%s: inverse %v", op, a)
	}

	// empty and nil slices are fine
	assert(len(endian.ApplySlice(endian.OpToBE, []uint64{})) == 0, "empty slice")
	assert(endian.SliceToLE[uint16](nil) == nil, "nil slice")

	defer func() {
		assert(recover() != nil, "bad op didn't panic")
	}()
	endian.ApplySlice(endian.Op(200), []uint32{1})
}

func TestConvertSlice(t *testing.T) {
	assert := newAsserter(t)

	orig := []testtypes.Simple{
		{A: 0x0102, B: 0x0304, C: 0x05060708, D: 0x090a0b0c0d0e0f10},
		{A: 1, B: 2, C: 3, D: 4},
		{A: 0xffff, B: 0, C: 0xdeadbeef, D: 0},
	}

	for _, op := range endian.Ops {
		s := make([]testtypes.Simple, len(orig))
		copy(s, orig)

		r := endian.ConvertSlice(s, op)
		assert(&r[0] == &s[0], "%s: not in place", op)
		for i := range s {
			var want testtypes.Simple
			switch op {
			case endian.OpToBE:
				want = orig[i].ToBE()
			case endian.OpToLE:
				want = orig[i].ToLE()
			case endian.OpFromBE:
				want = orig[i].FromBE()
			case endian.OpFromLE:
				want = orig[i].FromLE()
			}
			assert(s[i] == want, "%s: elem %d: %+v, want %+v", op, i, s[i], want)
		}

		endian.ConvertSlice(s, op.Inverse())
		for i := range s {
			assert(s[i] == orig[i], "%s: elem %d not restored", op, i)
		}
	}
}

func Benchmark_SliceToBE(b *testing.B) {
	s := make([]uint64, 4096)
	b.SetBytes(int64(len(s) * 8))
	for i := 0; i < b.N; i++ {
		endian.SliceToBE(s)
	}
}
