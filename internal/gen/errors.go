// errors.go - errors reported by the generator
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
//

package gen

import (
	"errors"
)

var (
	ErrNoTypes     = errors.New("gen: no types to generate")
	ErrNoPackage   = errors.New("gen: no Go package found")
	ErrNoType      = errors.New("no such type")
	ErrNotType     = errors.New("not a defined type")
	ErrNoMethods   = errors.New("does not implement endian.Endian")
	ErrUnsupported = errors.New("has no fixed byte order")
	ErrConstraint  = errors.New("needs the endian methods or a numeric type set")
)
