package model

import (
	"fmt"
	"go/types"
)

// checkAccessible rejects types the generated file could not name: unexported
// types declared in another package, anywhere inside t.
func checkAccessible(t types.Type, from *types.Package) error {
	switch tt := types.Unalias(t).(type) {
	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() != nil && from != nil && obj.Pkg().Path() != from.Path() && !obj.Exported() {
			return fmt.Errorf("type %s is not exported from package %s", obj.Name(), obj.Pkg().Path())
		}

		return nil
	case *types.Pointer:
		return checkAccessible(tt.Elem(), from)
	case *types.Slice:
		return checkAccessible(tt.Elem(), from)
	case *types.Map:
		if err := checkAccessible(tt.Key(), from); err != nil {
			return err
		}

		return checkAccessible(tt.Elem(), from)
	default:
		return nil
	}
}
