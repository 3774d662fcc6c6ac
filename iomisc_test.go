// iomisc_test.go -- Test harness for file swapping
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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/opencoff/endian"
)

// swapped returns a swapped copy of b
func swapped(t *testing.T, l *endian.Layout, b []byte) []byte {
	c := append([]byte{}, b...)
	if err := l.Swap(c); err != nil {
		t.Fatalf("swap: %s", err)
	}
	return c
}

func TestSwapFile(t *testing.T) {
	assert := newAsserter(t)

	l, err := endian.ParseLayout("u16,u16,u32,u64,pad3,[3]u8,i16")
	assert(err == nil, "layout: %s", err)
	assert(l.Size() == 24, "size %d", l.Size())

	data := randRead(make([]byte, 1000*l.Size()))
	exp := swapped(t, l, data)
	fn := mkfile(t, "recs.dat", data)

	// buffer sizes smaller than, equal to and not a multiple of a record
	for _, bsz := range []uint64{0, 1, 24, 100, 4096, 1 << 20} {
		var out bytes.Buffer

		sz, err := endian.SwapFile(&out, fn, l, bsz)
		assert(err == nil, "bufsize %d: %s", bsz, err)
		assert(sz == uint64(len(data)), "bufsize %d: size %d, want %d", bsz, sz, len(data))
		assert(byteEq(out.Bytes(), exp), "bufsize %d: output mismatch", bsz)
	}
}

// the buffer is sized by the file, not by the requested block size
func TestSwapFileBigBuffer(t *testing.T) {
	assert := newAsserter(t)

	l, err := endian.ParseLayout("u64,u32,i16,[2]u8")
	assert(err == nil, "layout: %s", err)

	data := randRead(make([]byte, 3*l.Size()))
	fn := mkfile(t, "small.dat", data)

	var out bytes.Buffer
	sz, err := endian.SwapFile(&out, fn, l, 1<<40)
	assert(err == nil, "swap: %s", err)
	assert(sz == uint64(len(data)), "size %d", sz)
	assert(byteEq(out.Bytes(), swapped(t, l, data)), "output mismatch")

	var before, after runtime.MemStats

	out.Reset()
	runtime.ReadMemStats(&before)
	_, err = endian.SwapFile(&out, fn, l, 1<<30)
	runtime.ReadMemStats(&after)
	assert(err == nil, "swap: %s", err)

	n := after.TotalAlloc - before.TotalAlloc
	assert(n < 1<<20, "1G block size on a %d byte file allocated %d bytes", len(data), n)
}

func TestSwapFileErrors(t *testing.T) {
	assert := newAsserter(t)

	l, err := endian.ParseLayout("u32,u32")
	assert(err == nil, "layout: %s", err)

	var out bytes.Buffer

	fn := mkfile(t, "short.dat", make([]byte, 20))
	_, err = endian.SwapFile(&out, fn, l, 0)
	assert(errors.Is(err, endian.ErrShortRecord), "short file accepted: %v", err)
	assert(out.Len() == 0, "short file: wrote %d bytes", out.Len())

	fn = mkfile(t, "empty.dat", nil)
	sz, err := endian.SwapFile(&out, fn, l, 0)
	assert(err == nil, "empty file: %s", err)
	assert(sz == 0 && out.Len() == 0, "empty file: %d bytes", sz)

	fn = mkfile(t, "two.dat", make([]byte, 16))
	_, err = endian.SwapFile(&out, fn, nil, 0)
	assert(errors.Is(err, endian.ErrBadLayout), "nil layout: %v", err)
	_, err = endian.SwapFile(&out, fn, &endian.Layout{}, 0)
	assert(errors.Is(err, endian.ErrBadLayout), "zero layout: %v", err)

	dst := filepath.Join(t.TempDir(), "out.dat")
	_, err = endian.SwapFileTo(dst, fn, nil, true, 0)
	assert(errors.Is(err, endian.ErrBadLayout), "nil layout to file: %v", err)
	_, err = os.Stat(dst)
	assert(errors.Is(err, os.ErrNotExist), "output created for a bad layout: %v", err)

	_, err = endian.SwapFile(&out, filepath.Join(t.TempDir(), "nope"), l, 0)
	assert(errors.Is(err, os.ErrNotExist), "missing file: %v", err)
}

func TestSwapFileTo(t *testing.T) {
	assert := newAsserter(t)

	l, err := endian.ParseLayout("f64,c64,i32,u16,u8,bool")
	assert(err == nil, "layout: %s", err)

	data := randRead(make([]byte, 333*l.Size()))
	src := mkfile(t, "in.dat", data)
	dst := filepath.Join(filepath.Dir(src), "out.dat")

	sz, err := endian.SwapFileTo(dst, src, l, false, 512)
	assert(err == nil, "swap to %s: %s", dst, err)
	assert(sz == uint64(len(data)), "size %d", sz)

	out, err := os.ReadFile(dst)
	assert(err == nil, "read %s: %s", dst, err)
	assert(byteEq(out, swapped(t, l, data)), "output mismatch")

	// existing output needs --overwrite
	_, err = endian.SwapFileTo(dst, src, l, false, 0)
	assert(err != nil, "overwrote %s", dst)

	// swap the output in place; that restores the input
	_, err = endian.SwapFileTo(dst, dst, l, true, 0)
	assert(err == nil, "swap in place: %s", err)

	out, err = os.ReadFile(dst)
	assert(err == nil, "read %s: %s", dst, err)
	assert(byteEq(out, data), "in place swap mismatch")
}

func Benchmark_SwapFile(b *testing.B) {
	l, err := endian.ParseLayout("u16,u16,u32,u64")
	if err != nil {
		b.Fatalf("%s", err)
	}

	data := make([]byte, 4096*l.Size())
	fn := filepath.Join(b.TempDir(), "bench.dat")
	if err := os.WriteFile(fn, data, 0600); err != nil {
		b.Fatalf("%s", err)
	}

	var out bytes.Buffer
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		out.Reset()
		if _, err := endian.SwapFile(&out, fn, l, 0); err != nil {
			b.Fatalf("%s", err)
		}
	}
}
