// gen.go -- generate Endian methods for composite types
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

// Package gen generates the four endian.Endian methods for named types of
// a type checked package. Each method applies the same conversion to
// every field of the type in declaration order and returns the result.
package gen

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"strings"

	"github.com/opencoff/endian"
	"k8s.io/klog/v2"
)

// EndianPath is the import path of the runtime package used by the
// generated code.
const EndianPath = "github.com/opencoff/endian"

// Options controls one generator run
type Options struct {
	// Types to generate, in output order
	Types []string

	// If set, the generated file carries this //go:build expression
	BuildTag string

	// Command line recorded in the "Code generated" header
	Command string
}

// Generator holds the state for generating methods of one package
type Generator struct {
	pkg  *types.Package
	fset *token.FileSet

	// types in this run; they may refer to each other's methods
	batch map[string]bool

	// import name for the runtime package; empty when generating
	// into the runtime package itself.
	name string
	used bool
}

// New creates a generator for the type checked package pkg. fset is used
// to report positions; it may be nil.
func New(pkg *types.Package, fset *token.FileSet) *Generator {
	g := &Generator{
		pkg:  pkg,
		fset: fset,
	}

	switch {
	case pkg.Path() == EndianPath:
	case pkg.Scope().Lookup("endian") != nil:
		g.name = "xendian"
	default:
		g.name = "endian"
	}
	return g
}

// Generate returns formatted Go source holding the methods for every
// type named in opt.Types. All errors found are reported together.
func (g *Generator) Generate(opt *Options) ([]byte, error) {
	if len(opt.Types) == 0 {
		return nil, ErrNoTypes
	}

	klog.V(1).InfoS("generating", "package", g.pkg.Path(), "types", opt.Types)

	g.used = false
	g.batch = make(map[string]bool)
	for _, nm := range opt.Types {
		g.batch[nm] = true
	}

	var errs []error
	fd := &fileData{
		Command:  opt.Command,
		BuildTag: opt.BuildTag,
		Package:  g.pkg.Name(),
	}

	for _, nm := range opt.Types {
		ts, err := g.typeSpec(nm)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fd.Types = append(fd.Types, ts)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if g.used && len(g.name) > 0 {
		fd.Import = fmt.Sprintf("%q", EndianPath)
		if g.name != "endian" {
			fd.Import = g.name + " " + fd.Import
		}
	}

	return render(fd)
}

// method docs; %s is the type name
var opDoc = map[endian.Op]string{
	endian.OpToBE:   "converts %s from host order to big-endian.",
	endian.OpToLE:   "converts %s from host order to little-endian.",
	endian.OpFromBE: "converts %s from big-endian to host order.",
	endian.OpFromLE: "converts %s from little-endian to host order.",
}

func (g *Generator) typeSpec(nm string) (*typeSpec, error) {
	obj := g.pkg.Scope().Lookup(nm)
	if obj == nil {
		return nil, fmt.Errorf("%s: %s: %w", g.pkg.Path(), nm, ErrNoType)
	}

	tn, ok := obj.(*types.TypeName)
	if !ok || tn.IsAlias() {
		return nil, fmt.Errorf("%s: %s: %w", g.pos(obj), nm, ErrNotType)
	}

	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%s: %s: %w", g.pos(obj), nm, ErrNotType)
	}

	ts := &typeSpec{
		Name: nm,
		Recv: nm + typeParams(named),
	}

	// the type's own methods are what we are generating; start from the
	// underlying type so they are not called recursively.
	for _, op := range endian.Ops {
		body, err := g.convert(op, "v", named.Underlying(), nm, 0)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", g.pos(obj), err)
		}

		ts.Methods = append(ts.Methods, &method{
			Name: op.String(),
			Recv: ts.Recv,
			Doc:  fmt.Sprintf(opDoc[op], nm),
			Body: body,
		})
	}

	klog.V(2).InfoS("type", "name", nm, "recv", ts.Recv, "stmts", len(ts.Methods[0].Body))
	return ts, nil
}

func (g *Generator) pos(obj types.Object) string {
	if g.fset == nil || !obj.Pos().IsValid() {
		return obj.Name()
	}
	return g.fset.Position(obj.Pos()).String()
}

// qualified name of a function in the runtime package
func (g *Generator) fn(name string) string {
	g.used = true
	if len(g.name) == 0 {
		return name
	}
	return g.name + "." + name
}

// type parameter list for a receiver, e.g. "[A, B]"
func typeParams(n *types.Named) string {
	tps := n.TypeParams()
	if tps.Len() == 0 {
		return ""
	}

	names := make([]string, tps.Len())
	for i := range names {
		names[i] = tps.At(i).Obj().Name()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
