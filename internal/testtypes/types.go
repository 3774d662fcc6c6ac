// types.go -- fixture types for the endian tests
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

// Package testtypes holds one type for every shape the generator
// handles. types_endian.go is generated; the generator tests compare a
// fresh run against it.
package testtypes

import (
	"github.com/opencoff/endian"
)

//go:generate go run github.com/opencoff/endian/cmd/endian generate -t Simple,Nested,NotC,Tuple,Zst,ZsTuple,ComplexZero,Color,Words,Pair,Record -o types_endian.go

// Simple has no padding: 16 bytes.
type Simple struct {
	A uint16
	B uint16
	C uint32
	D uint64
}

// Nested embeds another generated type: 24 bytes.
type Nested struct {
	A uint64
	B Simple
}

// NotC has unexported fields and lots of padding.
type NotC struct {
	a uint8
	b uint16
	c uint8
	d uint32
	e uint8
	f uint64
}

// NewNotC returns a NotC with the given field values
func NewNotC(a uint8, b uint16, c uint8, d uint32, e uint8, f uint64) NotC {
	return NotC{a, b, c, d, e, f}
}

// Fields returns the fields of n in declaration order
func (n NotC) Fields() (uint8, uint16, uint8, uint32, uint8, uint64) {
	return n.a, n.b, n.c, n.d, n.e, n.f
}

type Seq uint64
type Port int32
type Code uint16
type Tag int8

// Tuple is made only of embedded (positional) fields.
type Tuple struct {
	Seq
	Port
	Code
	Tag
}

// Zst and friends occupy no memory.
type Zst struct{}

type ZsTuple struct {
	Zst
}

type ComplexZero struct {
	A Zst
	B ZsTuple
}

// Color is an integer backed enumeration.
type Color uint16

const (
	Red   Color = 0x0001
	Green Color = 0x0200
	Blue  Color = 0x0300
)

// Valid returns true if c is one of the declared colors
func (c Color) Valid() bool {
	switch c {
	case Red, Green, Blue:
		return true
	}
	return false
}

// Words is a named fixed size array.
type Words [4]uint32

// Pair is generic over one composite and one numeric type.
type Pair[K endian.Endian[K], V endian.Number] struct {
	Key K
	Val V
	N   uint32
}

// Record exercises every field rule in one type.
type Record struct {
	Magic  [4]byte
	Hdr    Simple
	Color  Color
	Flags  bool
	Temp   float64
	Z      complex64
	Grid   [2][3]int16
	Words  Words
	Stamps [2]Nested
	Meta   struct {
		Len  uint32
		Kind uint8
	}
	_ [3]byte
}
