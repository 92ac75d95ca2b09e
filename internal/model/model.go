package model

import (
	"go/token"
	"go/types"
	"slices"
	"strings"

	"github.com/rsinukov/activityresult/internal/common"
	"github.com/rsinukov/activityresult/internal/diagnostic"
	"github.com/rsinukov/activityresult/internal/marshaler"
)

// ResultSuffix is appended to the declaring type name to name the generated type.
const ResultSuffix = "Result"

// reservedAccessors are generated method names a field accessor cannot take.
var reservedAccessors = map[string]bool{
	"Intent": true,
	"Build":  true,
}

// FieldDescriptor is one declared result field.
// Equality and ordering use Name only.
type FieldDescriptor struct {
	Name     string
	Type     types.Type
	Required bool
	// Marshaler is nil when the field goes through the resolution table.
	Marshaler *marshaler.Marshaler
	Pos       token.Position
}

// IsArray reports whether the declared type is an unnamed slice.
func (f *FieldDescriptor) IsArray() bool {
	_, ok := types.Unalias(f.Type).(*types.Slice)
	return ok
}

// RawType returns the declared type with one slice level stripped.
func (f *FieldDescriptor) RawType() types.Type {
	if s, ok := types.Unalias(f.Type).(*types.Slice); ok {
		return s.Elem()
	}

	return f.Type
}

// Accessor returns the exported getter and builder setter name, e.g. "UserId".
func (f *FieldDescriptor) Accessor() string {
	return common.Capitalize(f.Name)
}

// Member returns the unexported backing field name, e.g. "userId".
func (f *FieldDescriptor) Member() string {
	return common.Uncapitalize(f.Name)
}

// HasMarshaler reports whether the field uses a custom marshaler.
func (f *FieldDescriptor) HasMarshaler() bool {
	return f.Marshaler != nil
}

// Compare orders descriptors by name.
func Compare(a, b *FieldDescriptor) int {
	return strings.Compare(a.Name, b.Name)
}

// DeclaringClass is the model of one annotated type declaration. It is not
// modified after NewDeclaringClass returns.
type DeclaringClass struct {
	// Package is the declaring package.
	Package *types.Package
	// Dir is the directory generated files are written to.
	Dir string
	// QualifiedName is "pkg/path.Name".
	QualifiedName string
	// SimpleName is the declared type name.
	SimpleName string
	Pos        token.Position

	required []*FieldDescriptor
	optional []*FieldDescriptor
}

// ClassInfo identifies a declaring type.
type ClassInfo struct {
	Package       *types.Package
	Dir           string
	QualifiedName string
	SimpleName    string
	Pos           token.Position
}

// NewDeclaringClass partitions fields into required and optional sets. Names
// must be unique across both sets.
func NewDeclaringClass(info ClassInfo, fields []*FieldDescriptor) (*DeclaringClass, error) {
	c := &DeclaringClass{
		Package:       info.Package,
		Dir:           info.Dir,
		QualifiedName: info.QualifiedName,
		SimpleName:    info.SimpleName,
		Pos:           info.Pos,
	}

	seen := make(map[string]bool, len(fields))
	accessors := make(map[string]string, len(fields))

	for _, f := range fields {
		if seen[f.Name] {
			return nil, duplicate(info.QualifiedName, f)
		}

		seen[f.Name] = true

		acc := f.Accessor()
		if !token.IsExported(acc) || reservedAccessors[acc] {
			return nil, diagnostic.Errorf(diagnostic.CodeInvalidAnnotation, info.QualifiedName, f.Name,
				"name %s cannot be used as accessor %s", f.Name, acc).At(f.Pos)
		}

		if other, ok := accessors[acc]; ok {
			return nil, diagnostic.Errorf(diagnostic.CodeDuplicateFieldName, info.QualifiedName, f.Name,
				"names %s and %s both map to accessor %s in %s", other, f.Name, acc, info.QualifiedName).At(f.Pos)
		}

		accessors[acc] = f.Name

		if f.Required {
			c.required = append(c.required, f)
		} else {
			c.optional = append(c.optional, f)
		}
	}

	slices.SortFunc(c.required, Compare)
	slices.SortFunc(c.optional, Compare)

	return c, nil
}

// Required returns the required fields ordered by name.
func (c *DeclaringClass) Required() []*FieldDescriptor {
	return slices.Clone(c.required)
}

// Optional returns the optional fields ordered by name.
func (c *DeclaringClass) Optional() []*FieldDescriptor {
	return slices.Clone(c.optional)
}

// Fields returns optional fields followed by required fields. Generated
// statements follow this order.
func (c *DeclaringClass) Fields() []*FieldDescriptor {
	all := make([]*FieldDescriptor, 0, len(c.optional)+len(c.required))
	all = append(all, c.optional...)

	return append(all, c.required...)
}

// PkgPath returns the declaring package path.
func (c *DeclaringClass) PkgPath() string {
	if c.Package == nil {
		return ""
	}

	return c.Package.Path()
}

// PkgName returns the declaring package name.
func (c *DeclaringClass) PkgName() string {
	if c.Package == nil {
		return ""
	}

	return c.Package.Name()
}

// ResultName returns the name of the generated result type.
func (c *DeclaringClass) ResultName() string {
	return c.SimpleName + ResultSuffix
}
