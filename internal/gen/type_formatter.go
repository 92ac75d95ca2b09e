package gen

import (
	"fmt"
	"go/types"

	"github.com/dave/jennifer/jen"
)

// typeCode renders t as a jen type expression. Named types are emitted as
// qualified references so jen manages the import block.
// Panics on type forms the directive resolver never produces.
func typeCode(t types.Type) jen.Code {
	switch tt := t.(type) {
	case *types.Basic:
		return jen.Id(tt.Name())

	case *types.Alias:
		return objectCode(tt.Obj())

	case *types.Named:
		return objectCode(tt.Obj())

	case *types.Pointer:
		return jen.Op("*").Add(typeCode(tt.Elem()))

	case *types.Slice:
		return jen.Index().Add(typeCode(tt.Elem()))

	case *types.Map:
		return jen.Map(typeCode(tt.Key())).Add(typeCode(tt.Elem()))

	default:
		panic(fmt.Sprintf("gen: unsupported type %s", t))
	}
}

func objectCode(obj *types.TypeName) jen.Code {
	if obj.Pkg() == nil {
		return jen.Id(obj.Name())
	}

	return jen.Qual(obj.Pkg().Path(), obj.Name())
}

// elemType returns the element type of a slice or map, looking through
// named types.
func elemType(t types.Type) types.Type {
	switch u := t.Underlying().(type) {
	case *types.Slice:
		return u.Elem()
	case *types.Map:
		return u.Elem()
	default:
		panic(fmt.Sprintf("gen: %s has no element type", t))
	}
}
