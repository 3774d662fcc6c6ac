// endian.go -- byte order conversion for numbers and composite types
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

// Package endian converts values between host byte order and an explicit
// big-endian or little-endian order.
//
// Leaf types (every fixed width integer and float, including named types
// such as enumerations) are converted by the generic functions ToBE, ToLE,
// FromBE and FromLE. Composite types implement Endian[T]; those methods are
// normally produced by the code generator in cmd/endian:
//
//	//go:generate go run github.com/opencoff/endian/cmd/endian generate -t Header
//
// The generated methods apply the same operation to every field in
// declaration order. Arrays are converted element by element, zero sized
// types are left as is.
//
// Types without generated methods can be converted at runtime with
// Convert(); it walks the value using reflection.
package endian

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the set of leaf types: every integer and float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Complex is the set of complex types; each half is converted on its own.
type Complex interface {
	constraints.Complex
}

// Endian is implemented by composite types whose byte order can be
// converted. Every method returns the converted value; the receiver is
// not modified.
type Endian[T any] interface {
	// ToBE converts from host order to big-endian
	ToBE() T

	// ToLE converts from host order to little-endian
	ToLE() T

	// FromBE converts from big-endian to host order
	FromBE() T

	// FromLE converts from little-endian to host order
	FromLE() T
}

// Op names one of the four conversions.
type Op uint8

const (
	OpToBE Op = iota
	OpToLE
	OpFromBE
	OpFromLE
)

// Ops lists all conversions in the order the generated methods appear.
var Ops = []Op{OpToBE, OpToLE, OpFromBE, OpFromLE}

var opNames = [...]string{
	OpToBE:   "ToBE",
	OpToLE:   "ToLE",
	OpFromBE: "FromBE",
	OpFromLE: "FromLE",
}

var opAlias = map[string]Op{
	"tobe":    OpToBE,
	"tole":    OpToLE,
	"frombe":  OpFromBE,
	"fromle":  OpFromLE,
	"to-be":   OpToBE,
	"to-le":   OpToLE,
	"from-be": OpFromBE,
	"from-le": OpFromLE,
	"htobe":   OpToBE,
	"htole":   OpToLE,
	"betoh":   OpFromBE,
	"letoh":   OpFromLE,
}

// String returns the method name of the op
func (o Op) String() string {
	if o.valid() {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Inverse returns the op that undoes o
func (o Op) Inverse() Op {
	switch o {
	case OpToBE:
		return OpFromBE
	case OpFromBE:
		return OpToBE
	case OpToLE:
		return OpFromLE
	case OpFromLE:
		return OpToLE
	}
	return o
}

// ParseOp parses an op name; method names match case-insensitively and
// the short forms to-be, from-le, htobe, letoh etc. are accepted.
func ParseOp(s string) (Op, error) {
	if o, ok := opAlias[strings.ToLower(strings.TrimSpace(s))]; ok {
		return o, nil
	}
	return 0, fmt.Errorf("endian: %q: %w", s, ErrBadOp)
}

func (o Op) valid() bool {
	return o <= OpFromLE
}

// swaps returns true if o reverses bytes on this host
func (o Op) swaps() bool {
	switch o {
	case OpToBE, OpFromBE:
		return !bigEndian
	default:
		return bigEndian
	}
}

// ToBE converts v from host order to big-endian.
func ToBE[T Number](v T) T {
	if bigEndian {
		return v
	}
	return Swap(v)
}

// ToLE converts v from host order to little-endian.
func ToLE[T Number](v T) T {
	if bigEndian {
		return Swap(v)
	}
	return v
}

// FromBE converts v from big-endian to host order.
func FromBE[T Number](v T) T {
	return ToBE(v)
}

// FromLE converts v from little-endian to host order.
func FromLE[T Number](v T) T {
	return ToLE(v)
}

// Apply performs op on v. It panics on an unknown op.
func Apply[T Number](op Op, v T) T {
	switch op {
	case OpToBE:
		return ToBE(v)
	case OpToLE:
		return ToLE(v)
	case OpFromBE:
		return FromBE(v)
	case OpFromLE:
		return FromLE(v)
	}
	panic(fmt.Sprintf("endian: unknown op %d", uint8(op)))
}

// ToBEComplex converts both halves of v from host order to big-endian.
func ToBEComplex[T Complex](v T) T {
	if bigEndian {
		return v
	}
	return SwapComplex(v)
}

// ToLEComplex converts both halves of v from host order to little-endian.
func ToLEComplex[T Complex](v T) T {
	if bigEndian {
		return SwapComplex(v)
	}
	return v
}

// FromBEComplex converts both halves of v from big-endian to host order.
func FromBEComplex[T Complex](v T) T {
	return ToBEComplex(v)
}

// FromLEComplex converts both halves of v from little-endian to host order.
func FromLEComplex[T Complex](v T) T {
	return ToLEComplex(v)
}

// vim: noexpandtab:ts=8:sw=8:tw=92:
