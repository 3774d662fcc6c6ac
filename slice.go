// slice.go -- in place conversion of sequences
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

// SliceToBE converts every element of s to big-endian in place and returns s.
func SliceToBE[T Number](s []T) []T {
	if !bigEndian {
		swapSlice(s)
	}
	return s
}

// SliceToLE converts every element of s to little-endian in place and returns s.
func SliceToLE[T Number](s []T) []T {
	if bigEndian {
		swapSlice(s)
	}
	return s
}

// SliceFromBE converts every element of s from big-endian in place and returns s.
func SliceFromBE[T Number](s []T) []T {
	return SliceToBE(s)
}

// SliceFromLE converts every element of s from little-endian in place and returns s.
func SliceFromLE[T Number](s []T) []T {
	return SliceToLE(s)
}

// ApplySlice performs op on every element of s in place.
func ApplySlice[T Number](op Op, s []T) []T {
	if !op.valid() {
		panic("endian: unknown op " + op.String())
	}
	if op.swaps() {
		swapSlice(s)
	}
	return s
}

// ConvertSlice calls the method named by op on every element of s and
// stores the result back in place. Element order is preserved.
func ConvertSlice[T Endian[T]](s []T, op Op) []T {
	var fp func(T) T

	switch op {
	case OpToBE:
		fp = func(x T) T { return x.ToBE() }
	case OpToLE:
		fp = func(x T) T { return x.ToLE() }
	case OpFromBE:
		fp = func(x T) T { return x.FromBE() }
	case OpFromLE:
		fp = func(x T) T { return x.FromLE() }
	default:
		panic("endian: unknown op " + op.String())
	}

	for i := range s {
		s[i] = fp(s[i])
	}
	return s
}

func swapSlice[T Number](s []T) {
	for i := range s {
		s[i] = Swap(s[i])
	}
}
