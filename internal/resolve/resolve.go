package resolve

import (
	"fmt"
	"sort"

	"github.com/rsinukov/activityresult/bundle"
	"github.com/rsinukov/activityresult/internal/diagnostic"
)

// ArraySuffix is appended to a table operation when the field is an unnamed slice.
const ArraySuffix = "Array"

// Type is the view of a field type the engine needs.
type Type interface {
	// RawName is the fully qualified name of the type with one unnamed slice
	// level stripped, e.g. "int" for []int or "example.com/geo.Point".
	RawName() string
	// IsArray reports whether the declared type is an unnamed slice.
	IsArray() bool
	// String is the declared type, used in messages.
	String() string
}

// Checker answers capability questions about a Type.
type Checker interface {
	IsAssignable(t Type, s Shape) bool
}

// Resolution is the outcome of resolving one field type.
type Resolution struct {
	// Op is the accessor suffix: the container has Put<Op> and Get<Op>.
	Op   string
	Rule Rule
	// NeedsCast is set when the read value must be type-asserted back to the
	// field type.
	NeedsCast bool
	// Warning is non-empty when the resolution is valid but discouraged.
	Warning string
}

// table maps raw type names to container operations. Read only.
var table = map[string]string{
	"string":  "String",
	"int":     "Int",
	"int64":   "Long",
	"float64": "Double",
	"int16":   "Short",
	"float32": "Float",
	"byte":    "Byte",
	"uint8":   "Byte",
	"bool":    "Boolean",
	"rune":    "Char",
	"int32":   "Char",

	bundle.ImportPath + ".CharSequence": "CharSequence",
	"*" + bundle.ImportPath + ".Bundle": "Bundle",
	bundle.ImportPath + ".Size":         "Size",
}

// Lookup returns the table operation for a raw type name.
func Lookup(rawName string) (string, bool) {
	op, ok := table[rawName]
	return op, ok
}

// TableNames returns the raw type names known to the table, sorted.
func TableNames() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Resolve picks the container operation for t. The first matching rule wins;
// when none matches the error wraps diagnostic.ErrUnresolvableType.
func Resolve(t Type, c Checker) (Resolution, error) {
	if op, ok := table[t.RawName()]; ok {
		if t.IsArray() {
			op += ArraySuffix
		}

		return Resolution{Op: op, Rule: RuleTable}, nil
	}

	for _, cp := range capabilities {
		if !c.IsAssignable(t, cp.shape) {
			continue
		}

		res := Resolution{Op: cp.op, Rule: cp.rule}

		if cp.rule == RuleSerializable {
			res.NeedsCast = true
			res.Warning = fmt.Sprintf("%s is stored as Serializable; implement bundle.Parcelable for an explicit encoding", t)
		}

		return res, nil
	}

	return Resolution{}, fmt.Errorf("%w: no container operation stores %s", diagnostic.ErrUnresolvableType, t)
}
