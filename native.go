// native.go -- host byte order
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
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

var bigEndian = cpu.IsBigEndian

// IsBigEndian returns true if the host is big-endian
func IsBigEndian() bool {
	return bigEndian
}

// Native returns the host byte order
func Native() binary.ByteOrder {
	if bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
