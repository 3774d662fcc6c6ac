// iomisc.go -- misc i/o functions
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

package endian

import (
	"fmt"
	"io"
	"os"

	"github.com/opencoff/go-fio"
	"github.com/opencoff/go-mmap"
)

// default I/O buffer for SwapFile
const _BufSize = 64 * 1024

// SwapFile reads the records of file fn, swaps every field as described
// by l and writes the result to wr. bufsize is the size of the output
// buffer; it is rounded down to a whole number of records. It returns
// the number of bytes processed.
func SwapFile(wr io.Writer, fn string, l *Layout, bufsize uint64) (uint64, error) {
	fd, err := os.Open(fn)
	if err != nil {
		return 0, fmt.Errorf("endian: can't open %s: %w", fn, err)
	}

	defer fd.Close()
	return swapFd(wr, fd, l, bufsize)
}

func swapFd(wr io.Writer, fd *os.File, l *Layout, bufsize uint64) (uint64, error) {
	fn := fd.Name()
	if l == nil || l.size == 0 {
		return 0, fmt.Errorf("endian: %s: empty layout: %w", fn, ErrBadLayout)
	}

	st, err := fd.Stat()
	if err != nil {
		return 0, fmt.Errorf("endian: %s: %w", fn, err)
	}

	rsz := uint64(l.Size())
	fsz := uint64(st.Size())
	if fsz%rsz != 0 {
		return 0, fmt.Errorf("endian: %s: %d bytes, record size %d: %w", fn, fsz, rsz, ErrShortRecord)
	} else if fsz == 0 {
		return 0, nil
	}

	if bufsize == 0 {
		bufsize = _BufSize
	}

	// never more than the file; always whole records
	bufsize = min(bufsize, fsz)
	bufsize = max(bufsize-(bufsize%rsz), rsz)

	buf := make([]byte, 0, bufsize)
	flush := func() error {
		if err := l.Swap(buf); err != nil {
			return err
		}
		if err := fullwrite(buf, wr); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	sz, err := mmap.Reader(fd, func(b []byte) error {
		for len(b) > 0 {
			n := copy(buf[len(buf):cap(buf)], b)
			buf = buf[:len(buf)+n]
			b = b[n:]

			if len(buf) == cap(buf) {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("endian: %s: %w", fn, err)
	}

	if len(buf) > 0 {
		if err := flush(); err != nil {
			return 0, fmt.Errorf("endian: %s: %w", fn, err)
		}
	}

	return uint64(sz), nil
}

// SwapFileTo is SwapFile writing to the file dst. The output is written
// to a temporary file and renamed into place only when complete; an
// existing dst is replaced only if ovwrite is set. dst may be the same
// file as src.
func SwapFileTo(dst, src string, l *Layout, ovwrite bool, bufsize uint64) (uint64, error) {
	if l == nil || l.size == 0 {
		return 0, fmt.Errorf("endian: %s: empty layout: %w", src, ErrBadLayout)
	}

	// src stays readable through fd even if dst replaces it
	fd, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("endian: can't open %s: %w", src, err)
	}

	defer fd.Close()

	var mode os.FileMode = 0644
	if st, err := fd.Stat(); err == nil {
		mode = st.Mode().Perm()
	}

	var opts uint32
	if ovwrite {
		opts |= fio.OPT_OVERWRITE
	}
	sf, err := fio.NewSafeFile(dst, opts, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return 0, err
	}
	defer sf.Abort()

	sz, err := swapFd(sf, fd, l, bufsize)
	if err != nil {
		return 0, err
	}

	return sz, sf.Close()
}

// write all bytes of buf to wr
func fullwrite(buf []byte, wr io.Writer) error {
	for len(buf) > 0 {
		n, err := wr.Write(buf)
		if err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}

// vim: noexpandtab:ts=8:sw=8:tw=92:
