package analyze

import (
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"

	"golang.org/x/tools/go/packages"

	"github.com/rsinukov/activityresult/bundle"
)

// Program is the result of loading a set of package patterns.
type Program struct {
	Fset *token.FileSet
	// Roots are the packages matched by the load patterns.
	Roots []*packages.Package
	// Bundle is the runtime container package, nil if it is not reachable.
	Bundle *types.Package

	byPath map[string]*types.Package
	byName map[string][]*types.Package
}

func newProgram(fset *token.FileSet) *Program {
	return &Program{
		Fset:   fset,
		byPath: make(map[string]*types.Package),
		byName: make(map[string][]*types.Package),
	}
}

// NewProgram builds a Program over already type-checked packages. Loader.Load
// is the usual way to obtain one.
func NewProgram(fset *token.FileSet, pkgs ...*types.Package) *Program {
	p := newProgram(fset)

	var visit func(pkg *types.Package)
	visit = func(pkg *types.Package) {
		if p.byPath[pkg.Path()] != nil {
			return
		}

		p.index(pkg)

		for _, imp := range pkg.Imports() {
			visit(imp)
		}
	}

	for _, pkg := range pkgs {
		visit(pkg)
	}

	p.Bundle = p.byPath[bundle.ImportPath]

	return p
}

// NewProgramFromRoots builds a Program whose roots are pkgs, indexing
// everything they import.
func NewProgramFromRoots(fset *token.FileSet, roots ...*packages.Package) *Program {
	typed := make([]*types.Package, 0, len(roots))
	for _, r := range roots {
		if r.Types != nil {
			typed = append(typed, r.Types)
		}
	}

	p := NewProgram(fset, typed...)
	p.Roots = roots

	return p
}

// index records pkg in the path and name lookups.
func (p *Program) index(pkg *types.Package) {
	if pkg == nil {
		return
	}

	if _, ok := p.byPath[pkg.Path()]; ok {
		return
	}

	p.byPath[pkg.Path()] = pkg
	p.byName[pkg.Name()] = append(p.byName[pkg.Name()], pkg)

	sort.Slice(p.byName[pkg.Name()], func(i, j int) bool {
		return p.byName[pkg.Name()][i].Path() < p.byName[pkg.Name()][j].Path()
	})
}

// PackageByPath returns the loaded package with the given import path.
func (p *Program) PackageByPath(path string) *types.Package {
	return p.byPath[path]
}

// PackagesByName returns every loaded package with the given name, sorted by path.
func (p *Program) PackagesByName(name string) []*types.Package {
	return p.byName[name]
}

// PackageNames returns the distinct names of every loaded package, sorted.
func (p *Program) PackageNames() []string {
	names := make([]string, 0, len(p.byName))
	for n := range p.byName {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

// Declaration is one type declaration carrying a result directive.
type Declaration struct {
	Package *packages.Package
	File    *ast.File
	Spec    *ast.TypeSpec
	Doc     *ast.CommentGroup
	Object  *types.TypeName
	// Scope is the file scope, used to resolve directive type expressions.
	Scope *types.Scope
	// Filename is the file holding the declaration.
	Filename string
}

// QualifiedName returns "pkg/path.Name".
func (d *Declaration) QualifiedName() string {
	return d.Package.PkgPath + "." + d.Spec.Name.Name
}

// SimpleName returns the declared type name.
func (d *Declaration) SimpleName() string {
	return d.Spec.Name.Name
}

// Dir returns the directory of the declaring file.
func (d *Declaration) Dir() string {
	return filepath.Dir(d.Filename)
}
