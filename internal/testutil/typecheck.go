// Package testutil type-checks small in-memory Go sources for tests.
package testutil

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/rsinukov/activityresult/bundle"
)

// BundleSource mirrors the exported shape of the bundle package.
const BundleSource = `package bundle

type Bundle struct{ values map[string]any }

type Intent struct{ extras *Bundle }

type Size struct{ Width, Height int }

type CharSequence interface{ String() string }

type Parcelable interface{ MarshalParcel() ([]byte, error) }

type Serializable interface{ MarshalBinary() ([]byte, error) }

type EmptyMarshaler struct{}

func (EmptyMarshaler) Put(string, any, *Bundle) {}

func (EmptyMarshaler) Get(string, *Bundle) any { return nil }
`

// Universe is a set of in-memory packages keyed by import path.
type Universe struct {
	Fset    *token.FileSet
	sources map[string]string
	checked map[string]*types.Package
	files   map[string]*ast.File
	infos   map[string]*types.Info
	std     types.Importer
}

// NewUniverse returns a Universe that already knows the bundle package.
func NewUniverse() *Universe {
	fset := token.NewFileSet()

	return &Universe{
		Fset:    fset,
		sources: map[string]string{bundle.ImportPath: BundleSource},
		checked: make(map[string]*types.Package),
		files:   make(map[string]*ast.File),
		infos:   make(map[string]*types.Info),
		std:     importer.ForCompiler(fset, "source", nil),
	}
}

// Add registers src under path.
func (u *Universe) Add(path, src string) *Universe {
	u.sources[path] = src
	return u
}

// Import implements types.Importer.
func (u *Universe) Import(path string) (*types.Package, error) {
	if pkg, ok := u.checked[path]; ok {
		return pkg, nil
	}

	src, ok := u.sources[path]
	if !ok {
		return u.std.Import(path)
	}

	f, err := parser.ParseFile(u.Fset, path+".go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	info := &types.Info{
		Defs:   make(map[*ast.Ident]types.Object),
		Scopes: make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: u}

	pkg, err := conf.Check(path, u.Fset, []*ast.File{f}, info)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}

	u.checked[path] = pkg
	u.files[path] = f
	u.infos[path] = info

	return pkg, nil
}

// Package type-checks path and fails the test on error.
func (u *Universe) Package(t testing.TB, path string) *types.Package {
	t.Helper()

	pkg, err := u.Import(path)
	require.NoError(t, err)

	return pkg
}

// File returns the parsed file of path. Package must have been called.
func (u *Universe) File(path string) *ast.File {
	return u.files[path]
}

// FileScope returns the file scope of path. Package must have been called.
func (u *Universe) FileScope(path string) *types.Scope {
	return u.infos[path].Scopes[u.files[path]]
}

// Lookup returns the type declared as name in path.
func (u *Universe) Lookup(t testing.TB, path, name string) types.Type {
	t.Helper()

	obj := u.Package(t, path).Scope().Lookup(name)
	require.NotNil(t, obj, "%s.%s not found", path, name)

	return obj.Type()
}

// LoadedPackage returns path as a *packages.Package, shaped like the result
// of packages.Load with analyze.LoadMode.
func (u *Universe) LoadedPackage(t testing.TB, path string) *packages.Package {
	t.Helper()

	pkg := u.Package(t, path)
	file := u.files[path]

	return &packages.Package{
		ID:              path,
		Name:            pkg.Name(),
		PkgPath:         path,
		CompiledGoFiles: []string{u.Fset.Position(file.Pos()).Filename},
		Syntax:          []*ast.File{file},
		Types:           pkg,
		TypesInfo:       u.infos[path],
		Fset:            u.Fset,
	}
}
