package marshaler

import (
	"errors"
	"fmt"
	"go/types"
)

// constructor finds New<Type>. Without one, only struct types qualify, as
// their zero value can be written as a literal.
func constructor(named *types.Named) (*types.Func, error) {
	obj := named.Obj()
	ctorName := "New" + obj.Name()

	fn, ok := obj.Pkg().Scope().Lookup(ctorName).(*types.Func)
	if !ok {
		if _, isStruct := named.Underlying().(*types.Struct); isStruct {
			return nil, nil
		}

		return nil, fmt.Errorf("must provide a public zero-argument constructor %s or be a struct type", ctorName)
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return nil, fmt.Errorf("%s is not a function", ctorName)
	}

	if sig.Params().Len() != 0 {
		return nil, fmt.Errorf("must provide a public zero-argument constructor, %s takes %d parameters",
			ctorName, sig.Params().Len())
	}

	if sig.Results().Len() != 1 {
		return nil, fmt.Errorf("constructor %s must return exactly one value", ctorName)
	}

	res := types.Unalias(sig.Results().At(0).Type())
	if ptr, ok := res.(*types.Pointer); ok {
		res = types.Unalias(ptr.Elem())
	}

	if !types.Identical(res, named) {
		return nil, fmt.Errorf("constructor %s must return %s or *%s", ctorName, obj.Name(), obj.Name())
	}

	return fn, nil
}

// checkMethods verifies the Put/Get pair against the field type.
func checkMethods(named *types.Named, fieldType types.Type) error {
	ptr := types.NewPointer(named)

	put, err := method(ptr, "Put")
	if err != nil {
		return err
	}

	get, err := method(ptr, "Get")
	if err != nil {
		return err
	}

	putSig := put.Type().(*types.Signature)
	if putSig.Params().Len() != 3 || putSig.Results().Len() != 0 ||
		!isString(putSig.Params().At(0).Type()) || !isBundlePointer(putSig.Params().At(2).Type()) {
		return errors.New("must have method Put(key string, value T, b *bundle.Bundle)")
	}

	getSig := get.Type().(*types.Signature)
	if getSig.Params().Len() != 2 || getSig.Results().Len() != 1 ||
		!isString(getSig.Params().At(0).Type()) || !isBundlePointer(getSig.Params().At(1).Type()) {
		return errors.New("must have method Get(key string, b *bundle.Bundle) T")
	}

	if fieldType == nil {
		return nil
	}

	if v := putSig.Params().At(1).Type(); !types.Identical(v, fieldType) {
		return fmt.Errorf("Put accepts %s, field type is %s", v, fieldType)
	}

	if v := getSig.Results().At(0).Type(); !types.Identical(v, fieldType) {
		return fmt.Errorf("Get returns %s, field type is %s", v, fieldType)
	}

	return nil
}

func method(t types.Type, name string) (*types.Func, error) {
	obj, _, _ := types.LookupFieldOrMethod(t, true, nil, name)

	fn, ok := obj.(*types.Func)
	if !ok {
		return nil, fmt.Errorf("has no method %s", name)
	}

	return fn, nil
}

func isString(t types.Type) bool {
	return types.Identical(t, types.Typ[types.String])
}
