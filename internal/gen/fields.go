// fields.go -- per field conversion statements
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

package gen

import (
	"fmt"
	"go/types"

	"github.com/opencoff/endian"
)

// convert returns the statements that perform op on the expression x of
// type t. path names x in error messages. depth is the array nesting
// level and picks the loop variable.
//
// An empty result means x is left as is (bytes, bools, zero sized values).
func (g *Generator) convert(op endian.Op, x string, t types.Type, path string, depth int) ([]string, error) {
	t = types.Unalias(t)
	if zeroSized(t) {
		return nil, nil
	}

	switch t := t.(type) {
	case *types.Named:
		if g.implements(t) {
			return []string{fmt.Sprintf("%s = %s.%s()", x, x, op)}, nil
		}
		return g.named(op, x, t, path, depth)

	case *types.TypeParam:
		return g.typeParam(op, x, t, path)

	case *types.Basic:
		return g.basic(op, x, t, path)

	case *types.Array:
		return g.array(op, x, t, path, depth)

	case *types.Struct:
		return g.fields(op, x, t, path, depth)
	}

	return nil, g.unsupported(path, t)
}

// named types without methods: numbers and arrays are converted through
// their underlying type; structs must bring their own methods.
func (g *Generator) named(op endian.Op, x string, t *types.Named, path string, depth int) ([]string, error) {
	switch u := t.Underlying().(type) {
	case *types.Basic:
		return g.basic(op, x, u, path)

	case *types.Array:
		return g.array(op, x, u, path, depth)

	case *types.Struct:
		obj := t.Obj()
		if obj.Pkg() == g.pkg {
			return nil, fmt.Errorf("%s: %s %w; add it to the list of types", path, obj.Name(), ErrNoMethods)
		}
		return nil, fmt.Errorf("%s: %s %w", path, g.typeString(t), ErrNoMethods)
	}

	return nil, g.unsupported(path, t)
}

func (g *Generator) typeParam(op endian.Op, x string, t *types.TypeParam, path string) ([]string, error) {
	iface, ok := t.Constraint().Underlying().(*types.Interface)
	if !ok {
		return nil, g.unsupported(path, t)
	}

	if ifaceMethods(iface, t) {
		return []string{fmt.Sprintf("%s = %s.%s()", x, x, op)}, nil
	}

	if numericSet(iface) {
		return []string{fmt.Sprintf("%s = %s(%s)", x, g.fn(op.String()), x)}, nil
	}

	return nil, fmt.Errorf("%s: type parameter %s: constraint %s: %w", path, t.Obj().Name(),
		g.typeString(t.Constraint()), ErrConstraint)
}

func (g *Generator) basic(op endian.Op, x string, t *types.Basic, path string) ([]string, error) {
	switch t.Kind() {
	case types.Bool, types.Int8, types.Uint8:
		return nil, nil
	}

	info := t.Info()
	switch {
	case info&types.IsComplex != 0:
		return []string{fmt.Sprintf("%s = %s(%s)", x, g.fn(op.String()+"Complex"), x)}, nil

	case info&(types.IsInteger|types.IsFloat) != 0:
		return []string{fmt.Sprintf("%s = %s(%s)", x, g.fn(op.String()), x)}, nil
	}

	return nil, g.unsupported(path, t)
}

func (g *Generator) array(op endian.Op, x string, t *types.Array, path string, depth int) ([]string, error) {
	iv := fmt.Sprintf("i%d", depth)
	body, err := g.convert(op, fmt.Sprintf("%s[%s]", x, iv), t.Elem(), path+"[]", depth+1)
	if err != nil || len(body) == 0 {
		return nil, err
	}

	stmts := make([]string, 0, len(body)+2)
	stmts = append(stmts, fmt.Sprintf("for %s := range %s {", iv, x))
	stmts = append(stmts, body...)
	stmts = append(stmts, "}")
	return stmts, nil
}

// fields converts every field in declaration order; blank fields are
// padding.
func (g *Generator) fields(op endian.Op, x string, t *types.Struct, path string, depth int) ([]string, error) {
	var stmts []string

	for i := 0; i < t.NumFields(); i++ {
		f := t.Field(i)
		if f.Name() == "_" {
			continue
		}

		body, err := g.convert(op, x+"."+f.Name(), f.Type(), path+"."+f.Name(), depth)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, body...)
	}
	return stmts, nil
}

// implements returns true if t has the four methods or will get them in
// this run. Interfaces never qualify: their zero value is nil.
func (g *Generator) implements(t *types.Named) bool {
	if types.IsInterface(t) {
		return false
	}

	obj := t.Obj()
	if obj.Pkg() == g.pkg && g.batch[obj.Name()] {
		return true
	}

	ms := types.NewMethodSet(t)
	for _, op := range endian.Ops {
		sel := ms.Lookup(g.pkg, op.String())
		if sel == nil {
			return false
		}

		sig, ok := sel.Obj().Type().(*types.Signature)
		if !ok || !endianSig(sig, t) {
			return false
		}
	}
	return true
}

func (g *Generator) unsupported(path string, t types.Type) error {
	return fmt.Errorf("%s: %s: %w", path, g.typeString(t), ErrUnsupported)
}

func (g *Generator) typeString(t types.Type) string {
	return types.TypeString(t, types.RelativeTo(g.pkg))
}

// ifaceMethods returns true if the constraint iface has the four methods
// each returning t
func ifaceMethods(iface *types.Interface, t types.Type) bool {
	for _, op := range endian.Ops {
		found := false
		for i := 0; i < iface.NumMethods(); i++ {
			m := iface.Method(i)
			if m.Name() != op.String() {
				continue
			}

			sig, ok := m.Type().(*types.Signature)
			found = ok && endianSig(sig, t)
			break
		}

		if !found {
			return false
		}
	}
	return true
}

// numericSet returns true if every type in the type set of iface is an
// integer or float.
func numericSet(iface *types.Interface) bool {
	found := false
	for i := 0; i < iface.NumEmbeddeds(); i++ {
		if !numericTerm(iface.EmbeddedType(i)) {
			return false
		}
		found = true
	}
	return found
}

func numericTerm(t types.Type) bool {
	switch t := t.(type) {
	case *types.Union:
		for i := 0; i < t.Len(); i++ {
			if !numericTerm(t.Term(i).Type()) {
				return false
			}
		}
		return t.Len() > 0
	}

	switch u := t.Underlying().(type) {
	case *types.Interface:
		return numericSet(u)
	case *types.Basic:
		return u.Info()&(types.IsInteger|types.IsFloat) != 0
	}
	return false
}

// endianSig returns true for func() t
func endianSig(sig *types.Signature, t types.Type) bool {
	if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}
	return types.Identical(sig.Results().At(0).Type(), t)
}

// zeroSized returns true if values of t occupy no memory
func zeroSized(t types.Type) bool {
	if _, ok := t.(*types.TypeParam); ok {
		return false
	}

	switch u := t.Underlying().(type) {
	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			if !zeroSized(u.Field(i).Type()) {
				return false
			}
		}
		return true

	case *types.Array:
		return u.Len() == 0 || zeroSized(u.Elem())
	}
	return false
}

// vim: noexpandtab:ts=8:sw=8:tw=92:
