package analyze

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"regexp"
	"strings"

	"github.com/rsinukov/activityresult/internal/match"
)

// pathQualified matches "import/path.Name" forms, which are not valid Go
// expressions and are rewritten to placeholder identifiers before parsing.
var pathQualified = regexp.MustCompile(`([A-Za-z0-9_.~\-]+(?:/[A-Za-z0-9_.~\-]+)+)\.([A-Za-z_][A-Za-z0-9_]*)`)

const placeholderPrefix = "__pkg"

// TypeResolver evaluates type expressions written in directives.
//
// Supported forms:
//   - "int", "Point" (universe or declaring package scope)
//   - "geo.Point" (file import, or the single loaded package named geo)
//   - "example.com/app/geo.Point" (full import path)
//   - "*T", "[]T", "map[K]V" over any of the above
type TypeResolver struct {
	prog *Program
}

// NewTypeResolver creates a resolver backed by prog's package index.
func NewTypeResolver(prog *Program) *TypeResolver {
	return &TypeResolver{prog: prog}
}

// Resolve evaluates expr. scope is the file scope of the declaring file; pkg
// the declaring package, used when scope is nil.
func (r *TypeResolver) Resolve(expr string, scope *types.Scope, pkg *types.Package) (types.Type, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty type expression")
	}

	paths := make(map[string]string)
	rewritten := pathQualified.ReplaceAllStringFunc(expr, func(m string) string {
		sub := pathQualified.FindStringSubmatch(m)
		id := fmt.Sprintf("%s%d", placeholderPrefix, len(paths))
		paths[id] = sub[1]

		return id + "." + sub[2]
	})

	node, err := parser.ParseExpr(rewritten)
	if err != nil {
		return nil, fmt.Errorf("parsing type %q: %w", expr, err)
	}

	if scope == nil && pkg != nil {
		scope = pkg.Scope()
	}

	if scope == nil {
		scope = types.Universe
	}

	ev := &evaluator{resolver: r, scope: scope, paths: paths}

	t, err := ev.eval(node)
	if err != nil {
		return nil, fmt.Errorf("type %q: %w", expr, err)
	}

	return t, nil
}

type evaluator struct {
	resolver *TypeResolver
	scope    *types.Scope
	paths    map[string]string
}

func (e *evaluator) eval(node ast.Expr) (types.Type, error) {
	switch n := node.(type) {
	case *ast.ParenExpr:
		return e.eval(n.X)

	case *ast.Ident:
		_, obj := e.scope.LookupParent(n.Name, token.NoPos)
		if obj == nil {
			return nil, fmt.Errorf("undefined: %s%s", n.Name, match.DidYouMean(n.Name, typeNames(e.scope)))
		}

		return typeOf(obj, n.Name)

	case *ast.SelectorExpr:
		x, ok := n.X.(*ast.Ident)
		if !ok {
			return nil, fmt.Errorf("unsupported qualifier %T", n.X)
		}

		pkg, err := e.lookupPackage(x.Name)
		if err != nil {
			return nil, err
		}

		obj := pkg.Scope().Lookup(n.Sel.Name)
		if obj == nil {
			return nil, fmt.Errorf("undefined: %s.%s%s", pkg.Path(), n.Sel.Name,
				match.DidYouMean(x.Name+"."+n.Sel.Name, qualified(x.Name, typeNames(pkg.Scope()))))
		}

		return typeOf(obj, pkg.Path()+"."+n.Sel.Name)

	case *ast.StarExpr:
		elem, err := e.eval(n.X)
		if err != nil {
			return nil, err
		}

		return types.NewPointer(elem), nil

	case *ast.ArrayType:
		if n.Len != nil {
			return nil, fmt.Errorf("fixed-size arrays are not supported, use a slice")
		}

		elem, err := e.eval(n.Elt)
		if err != nil {
			return nil, err
		}

		return types.NewSlice(elem), nil

	case *ast.MapType:
		key, err := e.eval(n.Key)
		if err != nil {
			return nil, err
		}

		val, err := e.eval(n.Value)
		if err != nil {
			return nil, err
		}

		if !types.Comparable(key) {
			return nil, fmt.Errorf("invalid map key type %s", key)
		}

		return types.NewMap(key, val), nil

	default:
		return nil, fmt.Errorf("unsupported type expression %T", node)
	}
}

// lookupPackage resolves a package qualifier: placeholder for a full path,
// then the file's imports, then the unique loaded package with that name.
func (e *evaluator) lookupPackage(name string) (*types.Package, error) {
	if path, ok := e.paths[name]; ok {
		pkg := e.resolver.prog.PackageByPath(path)
		if pkg == nil {
			return nil, fmt.Errorf("package %q is not loaded", path)
		}

		return pkg, nil
	}

	if _, obj := e.scope.LookupParent(name, token.NoPos); obj != nil {
		if pn, ok := obj.(*types.PkgName); ok {
			return pn.Imported(), nil
		}
	}

	candidates := e.resolver.prog.PackagesByName(name)

	switch len(candidates) {
	case 0:
		return nil, fmt.Errorf("unknown package %q%s", name, match.DidYouMean(name, e.packageNames()))
	case 1:
		return candidates[0], nil
	default:
		paths := make([]string, 0, len(candidates))
		for _, c := range candidates {
			paths = append(paths, c.Path())
		}

		return nil, fmt.Errorf("package name %q is ambiguous (%s), use the full import path", name, strings.Join(paths, ", "))
	}
}

// packageNames lists the names usable as qualifiers from the current scope.
func (e *evaluator) packageNames() []string {
	names := e.resolver.prog.PackageNames()

	for s := e.scope; s != nil; s = s.Parent() {
		for _, n := range s.Names() {
			if _, ok := s.Lookup(n).(*types.PkgName); ok {
				names = append(names, n)
			}
		}
	}

	return names
}

// typeNames lists the type names visible from scope, walking its parents.
func typeNames(scope *types.Scope) []string {
	var names []string

	for s := scope; s != nil; s = s.Parent() {
		for _, n := range s.Names() {
			if _, ok := s.Lookup(n).(*types.TypeName); ok {
				names = append(names, n)
			}
		}
	}

	return names
}

// qualified prefixes every name with qualifier, as the directive wrote it.
func qualified(qualifier string, names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = qualifier + "." + n
	}

	return out
}

func typeOf(obj types.Object, name string) (types.Type, error) {
	if obj == nil {
		return nil, fmt.Errorf("undefined: %s", name)
	}

	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s is not a type", name)
	}

	t := tn.Type()
	if named, ok := types.Unalias(t).(*types.Named); ok && named.TypeParams().Len() > 0 {
		return nil, fmt.Errorf("generic type %s is not supported", name)
	}

	return t, nil
}
