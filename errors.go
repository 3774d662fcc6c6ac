// errors.go - list of all exportable errors in this module
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

package endian

import (
	"errors"
)

var (
	ErrBadOp       = errors.New("unknown conversion")
	ErrNotPointer  = errors.New("not a non-nil pointer")
	ErrUnsupported = errors.New("type has no fixed byte order")
	ErrBadLayout   = errors.New("malformed record layout")
	ErrShortRecord = errors.New("data is not a whole number of records")
)
