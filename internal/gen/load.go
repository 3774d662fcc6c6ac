// load.go -- load and type check the package to generate for
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
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
	"k8s.io/klog/v2"
)

// Load type checks the package in dir using the build tags in tags.
//
// Type errors are logged but not fatal: the package usually contains a
// previously generated file that may be stale.
func Load(dir string, tags []string) (*types.Package, *token.FileSet, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
		Dir: dir,
	}
	if len(tags) > 0 {
		cfg.BuildFlags = []string{fmt.Sprintf("-tags=%s", strings.Join(tags, ","))}
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, nil, fmt.Errorf("gen: load %s: %w", dir, err)
	}

	if len(pkgs) != 1 || pkgs[0].Types == nil {
		return nil, nil, fmt.Errorf("gen: %s: %w", dir, ErrNoPackage)
	}

	pkg := pkgs[0]
	for _, e := range pkg.Errors {
		klog.V(1).InfoS("type check", "package", pkg.PkgPath, "err", e.Error())
	}

	klog.V(1).InfoS("loaded", "package", pkg.PkgPath, "files", len(pkg.GoFiles))
	return pkg.Types, pkg.Fset, nil
}
