// encdec.go  - handy wrappers for flipping fixed width fields in a buffer
//
// (c) 2024- Sudhi Herle <sudhi@herle.net>
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
	"encoding/binary"
)

// Each helper reads a field in one order, writes it back in the other and
// returns the rest of the buffer.

func flip16(b []byte) []byte {
	be := binary.BigEndian
	le := binary.LittleEndian

	be.PutUint16(b, le.Uint16(b[:2]))
	return b[2:]
}

func flip32(b []byte) []byte {
	be := binary.BigEndian
	le := binary.LittleEndian

	be.PutUint32(b, le.Uint32(b[:4]))
	return b[4:]
}

func flip64(b []byte) []byte {
	be := binary.BigEndian
	le := binary.LittleEndian

	be.PutUint64(b, le.Uint64(b[:8]))
	return b[8:]
}

// flipN flips a field of width w; 1 byte fields are skipped over.
func flipN(b []byte, w int) []byte {
	switch w {
	case 2:
		return flip16(b)
	case 4:
		return flip32(b)
	case 8:
		return flip64(b)
	}
	return b[w:]
}

// vim: noexpandtab:ts=8:sw=8:tw=92:
