// convert.go -- runtime conversion of arbitrary values via reflection
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
	"reflect"
	"unsafe"
)

// Convert performs op on the value pointed to by ptr, in place.
//
// Numbers are converted, bools and zero sized values are left alone,
// arrays and slices are converted element by element and structs field by
// field (blank fields are padding and are skipped). A type that implements
// Endian[T] is converted through its own methods.
//
// The whole type is validated before anything is modified: a value that
// contains a string, map, pointer, interface, channel or func is rejected
// with ErrUnsupported and left untouched.
func Convert(ptr any, op Op) error {
	if !op.valid() {
		return fmt.Errorf("endian: convert: %w", ErrBadOp)
	}

	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("endian: convert: %w", ErrNotPointer)
	}

	v := rv.Elem()
	t := v.Type()
	if err := check(t, t.String(), make(map[reflect.Type]bool)); err != nil {
		return fmt.Errorf("endian: convert: %w", err)
	}

	convert(v, op)
	return nil
}

// check verifies that every leaf reachable from t has a fixed byte order
func check(t reflect.Type, path string, seen map[reflect.Type]bool) error {
	if hasMethods(t) {
		return nil
	}

	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return nil

	case reflect.Array, reflect.Slice:
		return check(t.Elem(), path+"[]", seen)

	case reflect.Struct:
		if seen[t] {
			return nil
		}
		seen[t] = true
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Name == "_" {
				continue
			}
			if err := check(f.Type, path+"."+f.Name, seen); err != nil {
				return err
			}
		}
		return nil
	}

	return fmt.Errorf("%s: %s: %w", path, t.Kind(), ErrUnsupported)
}

// convert performs op on the addressable value v
func convert(v reflect.Value, op Op) {
	t := v.Type()
	if t.Size() == 0 {
		return
	}

	if hasMethods(t) {
		r := v.MethodByName(op.String()).Call(nil)
		v.Set(r[0])
		return
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		if op.swaps() {
			swapAt(unsafe.Pointer(v.UnsafeAddr()), t.Size())
		}

	case reflect.Complex64, reflect.Complex128:
		if op.swaps() {
			p := unsafe.Pointer(v.UnsafeAddr())
			half := t.Size() / 2
			swapAt(p, half)
			swapAt(unsafe.Add(p, half), half)
		}

	case reflect.Array, reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			convert(v.Index(i), op)
		}

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).Name == "_" {
				continue
			}
			convert(settable(v.Field(i)), op)
		}
	}
}

// settable returns an alias of f that can be set and have its methods
// called even when f is an unexported field.
func settable(f reflect.Value) reflect.Value {
	if f.CanSet() {
		return f
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
}

// hasMethods returns true if values of t have all four Endian methods
// and each returns t.
func hasMethods(t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return false
	}

	for _, op := range Ops {
		m, ok := t.MethodByName(op.String())
		if !ok {
			return false
		}

		// value methods: receiver is the first input
		mt := m.Type
		if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0) != t {
			return false
		}
	}
	return true
}

// vim: noexpandtab:ts=8:sw=8:tw=92:
