package resolve

import (
	"go/types"

	"github.com/rsinukov/activityresult/bundle"
)

// GoType adapts a go/types type to Type.
type GoType struct {
	T types.Type
}

// NewGoType wraps t, looking through aliases.
func NewGoType(t types.Type) GoType {
	return GoType{T: types.Unalias(t)}
}

func (g GoType) raw() types.Type {
	if s, ok := g.T.(*types.Slice); ok {
		return s.Elem()
	}

	return g.T
}

func (g GoType) RawName() string {
	return types.TypeString(types.Unalias(g.raw()), nil)
}

func (g GoType) IsArray() bool {
	_, ok := g.T.(*types.Slice)
	return ok
}

func (g GoType) String() string {
	return types.TypeString(g.T, nil)
}

// GoChecker implements Checker over go/types. The capability interfaces are
// built from their method signatures, so the bundle package does not need to
// be loaded.
type GoChecker struct {
	parcelable   *types.Interface
	serializable *types.Interface
	stringList   types.Type
	intList      types.Type
}

// NewGoChecker builds the capability interfaces.
func NewGoChecker() *GoChecker {
	bytesErr := types.NewTuple(
		types.NewVar(0, nil, "", types.NewSlice(types.Typ[types.Byte])),
		types.NewVar(0, nil, "", types.Universe.Lookup("error").Type()),
	)

	return &GoChecker{
		parcelable:   methodInterface("MarshalParcel", bytesErr),
		serializable: methodInterface("MarshalBinary", bytesErr),
		stringList:   types.NewSlice(types.Typ[types.String]),
		intList:      types.NewSlice(types.Typ[types.Int]),
	}
}

func methodInterface(name string, results *types.Tuple) *types.Interface {
	sig := types.NewSignatureType(nil, nil, nil, nil, results, false)
	fn := types.NewFunc(0, nil, name, sig)

	return types.NewInterfaceType([]*types.Func{fn}, nil).Complete()
}

// IsAssignable reports whether t has shape s. Types not produced by
// NewGoType never match.
func (c *GoChecker) IsAssignable(t Type, s Shape) bool {
	gt, ok := t.(GoType)
	if !ok || gt.T == nil {
		return false
	}

	typ := gt.T

	switch s {
	case StringList:
		return types.AssignableTo(typ, c.stringList)
	case IntegerList:
		return types.AssignableTo(typ, c.intList)
	case CharSequenceList:
		sl, ok := typ.Underlying().(*types.Slice)
		return ok && isBundleType(sl.Elem(), "CharSequence")
	case Parcelable:
		return types.Implements(typ, c.parcelable)
	case ParcelableList:
		sl, ok := typ.Underlying().(*types.Slice)
		return ok && types.Implements(sl.Elem(), c.parcelable)
	case SparseParcelableArray:
		m, ok := typ.Underlying().(*types.Map)
		return ok && types.Identical(m.Key(), types.Typ[types.Int]) && types.Implements(m.Elem(), c.parcelable)
	case Serializable:
		return types.Implements(typ, c.serializable)
	default:
		return false
	}
}

func isBundleType(t types.Type, name string) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Pkg() != nil && obj.Pkg().Path() == bundle.ImportPath && obj.Name() == name
}
