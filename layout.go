// layout.go -- fixed size record layouts
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
	"fmt"
	"strconv"
	"strings"
)

// Layout describes one fixed size record as an ordered list of fields.
// It is the runtime counterpart of a struct declaration when all that is
// known about a binary file is the width of each field.
type Layout struct {
	fields []field
	size   int
}

type field struct {
	name  string // canonical type name
	width int    // bytes per element
	count int    // number of elements
	pad   bool
}

// leaf types known to ParseLayout; complex types are two elements
var leafTypes = map[string]field{
	"u8":   {width: 1, count: 1},
	"i8":   {width: 1, count: 1},
	"byte": {width: 1, count: 1},
	"bool": {width: 1, count: 1},
	"u16":  {width: 2, count: 1},
	"i16":  {width: 2, count: 1},
	"u32":  {width: 4, count: 1},
	"i32":  {width: 4, count: 1},
	"f32":  {width: 4, count: 1},
	"u64":  {width: 8, count: 1},
	"i64":  {width: 8, count: 1},
	"f64":  {width: 8, count: 1},
	"c64":  {width: 4, count: 2},
	"c128": {width: 8, count: 2},
}

// ParseLayout parses a comma separated list of fields, e.g.
//
//	u16,u16,u32,[4]u8,f64,pad3
//
// Each field is a type name (u8, i8, byte, bool, u16, i16, u32, i32,
// f32, u64, i64, f64, c64, c128) optionally prefixed by an array count
// "[N]". "padN" is N bytes that are never swapped.
func ParseLayout(s string) (*Layout, error) {
	l := &Layout{}

	for _, tok := range strings.Split(s, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if len(tok) == 0 {
			return nil, fmt.Errorf("endian: layout %q: empty field: %w", s, ErrBadLayout)
		}

		f, err := parseField(tok)
		if err != nil {
			return nil, fmt.Errorf("endian: layout %q: %s: %w", s, tok, err)
		}
		l.fields = append(l.fields, f)
		l.size += f.width * f.count
	}

	if l.size == 0 {
		return nil, fmt.Errorf("endian: layout %q: zero sized record: %w", s, ErrBadLayout)
	}
	return l, nil
}

func parseField(tok string) (field, error) {
	n := 1
	if tok[0] == '[' {
		i := strings.IndexByte(tok, ']')
		if i < 0 {
			return field{}, ErrBadLayout
		}

		v, err := strconv.ParseUint(tok[1:i], 10, 31)
		if err != nil {
			return field{}, ErrBadLayout
		}
		n, tok = int(v), tok[i+1:]
	}

	if w, ok := strings.CutPrefix(tok, "pad"); ok {
		v, err := strconv.ParseUint(w, 10, 31)
		if err != nil || v == 0 {
			return field{}, ErrBadLayout
		}
		return field{name: tok, width: int(v), count: n, pad: true}, nil
	}

	f, ok := leafTypes[tok]
	if !ok {
		return field{}, ErrBadLayout
	}
	f.name = tok
	f.count *= n
	return f, nil
}

// Size returns the length of one record in bytes
func (l *Layout) Size() int {
	return l.size
}

// String returns the layout in the form accepted by ParseLayout
func (l *Layout) String() string {
	var sb strings.Builder

	for i, f := range l.fields {
		if i > 0 {
			sb.WriteByte(',')
		}

		n := f.count
		if strings.HasPrefix(f.name, "c") {
			n /= 2
		}
		if n != 1 {
			fmt.Fprintf(&sb, "[%d]", n)
		}
		sb.WriteString(f.name)
	}
	return sb.String()
}

// Swap reverses the bytes of every field of every record in b, in place.
// Swapping twice restores the original. len(b) must be a multiple of
// Size().
func (l *Layout) Swap(b []byte) error {
	if l == nil || l.size == 0 {
		return fmt.Errorf("endian: empty layout: %w", ErrBadLayout)
	}
	if len(b)%l.size != 0 {
		return fmt.Errorf("endian: %d bytes, record size %d: %w", len(b), l.size, ErrShortRecord)
	}

	for len(b) > 0 {
		for _, f := range l.fields {
			if f.pad || f.width == 1 {
				b = b[f.width*f.count:]
				continue
			}
			for i := 0; i < f.count; i++ {
				b = flipN(b, f.width)
			}
		}
	}
	return nil
}

// vim: noexpandtab:ts=8:sw=8:tw=92:
