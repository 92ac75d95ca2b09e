// Package marshaler validates custom marshaler types declared on result
// fields.
package marshaler

import (
	"go/types"

	"github.com/rsinukov/activityresult/bundle"
	"github.com/rsinukov/activityresult/internal/analyze"
	"github.com/rsinukov/activityresult/internal/diagnostic"
)

// Marshaler is a validated custom marshaler.
type Marshaler struct {
	// Type is the marshaler's declared type.
	Type *types.Named
	// Constructor is the New<Type> function, or nil when the marshaler is
	// built as a composite literal.
	Constructor *types.Func
}

// Name returns the fully qualified marshaler type name.
func (m *Marshaler) Name() string {
	return analyze.QualifiedTypeString(m.Type)
}

// IsEmpty reports whether t is the sentinel bundle.EmptyMarshaler.
func IsEmpty(t types.Type) bool {
	return isBundleNamed(t, "EmptyMarshaler")
}

// Validate checks that t can serve as the marshaler of a field of type
// fieldType. It returns nil, nil for a nil type or the sentinel.
//
// The marshaler must be a declared, exported type, constructible with no
// arguments (an exported New<Type>() or a struct literal), whose pointer
// method set has
//
//	Put(key string, value F, b *bundle.Bundle)
//	Get(key string, b *bundle.Bundle) F
//
// where F is the field type.
func Validate(t, fieldType types.Type, class, field string) (*Marshaler, error) {
	if t == nil || IsEmpty(t) {
		return nil, nil
	}

	name := analyze.QualifiedTypeString(t)

	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, invalid(class, field, "%s is not a declared type", name)
	}

	obj := named.Obj()
	if !obj.Exported() {
		return nil, invalid(class, field, "%s must be exported to be a valid marshaler", name)
	}

	ctor, err := constructor(named)
	if err != nil {
		return nil, invalid(class, field, "%s %v", name, err)
	}

	if err := checkMethods(named, fieldType); err != nil {
		return nil, invalid(class, field, "%s %v", name, err)
	}

	return &Marshaler{Type: named, Constructor: ctor}, nil
}

func invalid(class, field, format string, args ...any) error {
	return diagnostic.Errorf(diagnostic.CodeInvalidMarshaler, class, field, format, args...)
}

func isBundleNamed(t types.Type, name string) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Pkg() != nil && obj.Pkg().Path() == bundle.ImportPath && obj.Name() == name
}

func isBundlePointer(t types.Type) bool {
	ptr, ok := types.Unalias(t).(*types.Pointer)
	return ok && isBundleNamed(ptr.Elem(), "Bundle")
}
