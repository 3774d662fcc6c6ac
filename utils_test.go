// utils_test.go -- Test harness utilities for endian
//
// (c) 2016 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// External test package: the fixtures in internal/testtypes import endian.
package endian_test

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"unsafe"
)

func newAsserter(t *testing.T) func(cond bool, msg string, args ...interface{}) {
	return func(cond bool, msg string, args ...interface{}) {
		if cond {
			return
		}

		_, file, line, ok := runtime.Caller(1)
		if !ok {
			file = "???"
			line = 0
		}

		s := fmt.Sprintf(msg, args...)
		t.Fatalf("%s: %d: Assertion failed: %s\n", file, line, s)
	}
}

// bytesOf returns the in-memory bytes of *v
func bytesOf[T any](v *T) []byte {
	var z T
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(z))
}

// reversed returns true if the n bytes at a[off:] are the n bytes at
// b[off:] in reverse order
func reversed(a, b []byte, off, n int) bool {
	for i := 0; i < n; i++ {
		if a[off+i] != b[off+n-1-i] {
			return false
		}
	}
	return true
}

// Return true if two byte arrays are equal
func byteEq(x, y []byte) bool {
	return bytes.Equal(x, y)
}

func randRead(b []byte) []byte {
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("can't read %d bytes of random data: %s", len(b), err))
	}
	return b
}

// mkfile writes b to a new file in t's temp dir and returns its name
func mkfile(t *testing.T, nm string, b []byte) string {
	t.Helper()

	fn := filepath.Join(t.TempDir(), nm)
	if err := os.WriteFile(fn, b, 0600); err != nil {
		t.Fatalf("create %s: %s", fn, err)
	}
	return fn
}

// vim: noexpandtab:ts=8:sw=8:tw=92:
