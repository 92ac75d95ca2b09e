package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/rsinukov/activityresult/bundle"
	"github.com/rsinukov/activityresult/internal/annotation"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports |
	packages.NeedDeps

// GeneratedSuffix is the filename suffix of generated result files.
const GeneratedSuffix = "_result_gen.go"

// LoaderConfig configures package loading.
type LoaderConfig struct {
	// Dir is the working directory for the underlying go list invocation.
	Dir string
	// BuildFlags are passed through to the build system (e.g. -tags).
	BuildFlags []string
}

// Loader loads Go packages and discovers annotated declarations.
type Loader struct {
	config LoaderConfig
	logger *zap.Logger
}

// NewLoader creates a new Loader. A nil logger disables logging.
func NewLoader(config LoaderConfig, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Loader{config: config, logger: logger}
}

// Load loads the packages matching patterns. The bundle package is loaded
// alongside so directive types may reference it even when the annotated
// package does not import it yet.
//
// Listing and parse errors abort loading. Type errors are logged and
// tolerated: stale generated files must not block regeneration.
func (l *Loader) Load(patterns ...string) (*Program, error) {
	if len(patterns) == 0 {
		return nil, errors.New("no package patterns given")
	}

	fset := token.NewFileSet()
	cfg := &packages.Config{
		Mode:       LoadMode,
		Dir:        l.config.Dir,
		BuildFlags: l.config.BuildFlags,
		Fset:       fset,
	}

	pkgs, err := packages.Load(cfg, append(patterns, bundle.ImportPath)...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	prog := newProgram(fset)

	var errs []error

	for _, pkg := range pkgs {
		if pkg.PkgPath == bundle.ImportPath && !matchesBundle(patterns) {
			if len(pkg.Errors) > 0 {
				l.logger.Debug("bundle package unavailable", zap.Any("errors", pkg.Errors))
				continue
			}

			prog.Bundle = pkg.Types

			continue
		}

		prog.Roots = append(prog.Roots, pkg)

		for _, e := range pkg.Errors {
			if e.Kind == packages.TypeError {
				l.logger.Warn("type error", zap.String("package", pkg.PkgPath), zap.String("error", e.Error()))
				continue
			}

			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		prog.index(pkg.Types)

		if pkg.PkgPath == bundle.ImportPath && prog.Bundle == nil && len(pkg.Errors) == 0 {
			prog.Bundle = pkg.Types
		}
	})

	sort.Slice(prog.Roots, func(i, j int) bool {
		return prog.Roots[i].PkgPath < prog.Roots[j].PkgPath
	})

	l.logger.Debug("packages loaded",
		zap.Int("roots", len(prog.Roots)),
		zap.Int("indexed", len(prog.byPath)),
		zap.Bool("bundle", prog.Bundle != nil))

	return prog, nil
}

func matchesBundle(patterns []string) bool {
	for _, p := range patterns {
		if p == bundle.ImportPath {
			return true
		}
	}

	return false
}

// Scan returns every annotated type declaration of the root packages in
// package path, file and source order.
func Scan(prog *Program) []*Declaration {
	var decls []*Declaration

	for _, pkg := range prog.Roots {
		decls = append(decls, scanPackage(prog.Fset, pkg)...)
	}

	return decls
}

func scanPackage(fset *token.FileSet, pkg *packages.Package) []*Declaration {
	if pkg.Types == nil || pkg.TypesInfo == nil {
		return nil
	}

	var decls []*Declaration

	for _, file := range pkg.Syntax {
		filename := fset.Position(file.Pos()).Filename
		if strings.HasSuffix(filename, GeneratedSuffix) {
			continue
		}

		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				doc := declDoc(genDecl, typeSpec)
				if !annotation.HasDirective(doc) {
					continue
				}

				obj, _ := pkg.TypesInfo.Defs[typeSpec.Name].(*types.TypeName)

				decls = append(decls, &Declaration{
					Package:  pkg,
					File:     file,
					Spec:     typeSpec,
					Doc:      doc,
					Object:   obj,
					Scope:    pkg.TypesInfo.Scopes[file],
					Filename: filename,
				})
			}
		}
	}

	return decls
}

// declDoc returns the comment group documenting spec. An ungrouped
// declaration keeps its doc comment on the GenDecl.
func declDoc(genDecl *ast.GenDecl, spec *ast.TypeSpec) *ast.CommentGroup {
	if spec.Doc != nil {
		return spec.Doc
	}

	if len(genDecl.Specs) == 1 {
		return genDecl.Doc
	}

	return nil
}
