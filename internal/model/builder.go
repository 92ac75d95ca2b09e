package model

import (
	"errors"
	"go/token"
	"go/types"

	"github.com/rsinukov/activityresult/internal/analyze"
	"github.com/rsinukov/activityresult/internal/annotation"
	"github.com/rsinukov/activityresult/internal/diagnostic"
	"github.com/rsinukov/activityresult/internal/marshaler"
)

// TypeResolver evaluates directive type expressions.
type TypeResolver interface {
	Resolve(expr string, scope *types.Scope, pkg *types.Package) (types.Type, error)
}

// Source is everything Build needs about one annotated declaration.
type Source struct {
	Info  ClassInfo
	Fset  *token.FileSet
	Group *annotation.Group
	// Scope is the declaring file scope.
	Scope *types.Scope
}

// SourceFromDeclaration parses the directives of decl.
func SourceFromDeclaration(fset *token.FileSet, decl *analyze.Declaration) (*Source, error) {
	group, err := annotation.Parse(fset, decl.Doc, decl.QualifiedName())
	if err != nil {
		return nil, err
	}

	if group == nil {
		group = &annotation.Group{}
	}

	return &Source{
		Info: ClassInfo{
			Package:       decl.Package.Types,
			Dir:           decl.Dir(),
			QualifiedName: decl.QualifiedName(),
			SimpleName:    decl.SimpleName(),
			Pos:           fset.Position(decl.Spec.Pos()),
		},
		Fset:  fset,
		Group: group,
		Scope: decl.Scope,
	}, nil
}

// Build resolves every directive entry into a FieldDescriptor and validates
// the resulting model.
func Build(src *Source, resolver TypeResolver) (*DeclaringClass, error) {
	class := src.Info.QualifiedName
	fields := make([]*FieldDescriptor, 0, len(src.Group.Entries))

	for _, e := range src.Group.Entries {
		var pos token.Position
		if src.Fset != nil && e.Pos.IsValid() {
			pos = src.Fset.Position(e.Pos)
		}

		t, err := resolver.Resolve(e.Type, src.Scope, src.Info.Package)
		if err != nil {
			return nil, diagnostic.Errorf(diagnostic.CodeInvalidAnnotation, class, e.Name, "%v", err).At(pos)
		}

		if err := checkAccessible(t, src.Info.Package); err != nil {
			return nil, diagnostic.Errorf(diagnostic.CodeInvalidAnnotation, class, e.Name, "%v", err).At(pos)
		}

		f := &FieldDescriptor{
			Name:     e.Name,
			Type:     t,
			Required: e.IsRequired(),
			Pos:      pos,
		}

		if e.Marshaler != "" {
			mt, err := resolver.Resolve(e.Marshaler, src.Scope, src.Info.Package)
			if err != nil {
				return nil, diagnostic.Errorf(diagnostic.CodeInvalidMarshaler, class, e.Name, "%v", err).At(pos)
			}

			m, err := marshaler.Validate(mt, t, class, e.Name)
			if err != nil {
				var de *diagnostic.Error
				if errors.As(err, &de) {
					de.At(pos)
				}

				return nil, err
			}

			f.Marshaler = m
		}

		fields = append(fields, f)
	}

	return NewDeclaringClass(src.Info, fields)
}

func duplicate(class string, f *FieldDescriptor) error {
	return diagnostic.Errorf(diagnostic.CodeDuplicateFieldName, class, f.Name,
		"duplicate name %s in %s", f.Name, class).At(f.Pos)
}
