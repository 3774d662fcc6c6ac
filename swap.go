// swap.go -- unconditional byte reversal
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

package endian

import (
	"math/bits"
	"unsafe"
)

// Swap reverses the bytes of v regardless of host order. Floats and named
// types are reinterpreted in place as an unsigned integer of the same size.
func Swap[T Number](v T) T {
	swapAt(unsafe.Pointer(&v), unsafe.Sizeof(v))
	return v
}

// SwapComplex reverses the bytes of the real and imaginary parts of v.
func SwapComplex[T Complex](v T) T {
	p := unsafe.Pointer(&v)
	half := unsafe.Sizeof(v) / 2
	swapAt(p, half)
	swapAt(unsafe.Add(p, half), half)
	return v
}

// swapAt reverses sz bytes at p; 1 byte (and unknown) sizes are left alone.
func swapAt(p unsafe.Pointer, sz uintptr) {
	switch sz {
	case 2:
		x := (*uint16)(p)
		*x = bits.ReverseBytes16(*x)
	case 4:
		x := (*uint32)(p)
		*x = bits.ReverseBytes32(*x)
	case 8:
		x := (*uint64)(p)
		*x = bits.ReverseBytes64(*x)
	}
}
