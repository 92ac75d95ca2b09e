package resolve

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsinukov/activityresult/internal/testutil"
)

const geoPath = "example.com/geo"

const geoSource = `package geo

import (
	"time"

	"github.com/rsinukov/activityresult/bundle"
)

type Point struct{ X, Y int }

func (Point) MarshalParcel() ([]byte, error) { return nil, nil }

// Region is both Parcelable and Serializable.
type Region struct{ Name string }

func (Region) MarshalParcel() ([]byte, error) { return nil, nil }
func (Region) MarshalBinary() ([]byte, error) { return nil, nil }

// Labels is a named string list that is also Serializable.
type Labels []string

func (Labels) MarshalBinary() ([]byte, error) { return nil, nil }

type Scores []int

type Titles []bundle.CharSequence

type Stringers []interface{ String() string }

type Route []Point

type Byte byte

type Points map[int]Point

type ByName map[string]Point

type Moment = time.Time

type Handle struct{}

func (*Handle) MarshalParcel() ([]byte, error) { return nil, nil }

var (
	When    time.Time
	Ch      chan int
	Any     any
	Fn      func()
	Size    bundle.Size
	Seq     bundle.CharSequence
	Bag     *bundle.Bundle
	Ints    []int
	Strs    []string
	Sizes   []bundle.Size
	Pts     []Point
	PtrPts  []*Point
	Sparse  map[int]Point
	Words   map[int]string
	Alias   Moment
	Handles []*Handle
	Runes   []rune
	Bytes   []byte
	Nested  [][]int
)
`

func geoVar(t *testing.T, u *testutil.Universe, name string) types.Type {
	t.Helper()

	obj := u.Package(t, geoPath).Scope().Lookup(name)
	require.NotNil(t, obj, name)

	return obj.Type()
}

func TestGoChecker_Resolve(t *testing.T) {
	u := testutil.NewUniverse().Add(geoPath, geoSource)
	checker := NewGoChecker()

	tests := []struct {
		name      string
		typ       func(t *testing.T) types.Type
		op        string
		rule      Rule
		needsCast bool
	}{
		{"[]int", func(t *testing.T) types.Type { return geoVar(t, u, "Ints") }, "IntArray", RuleTable, false},
		{"[]string", func(t *testing.T) types.Type { return geoVar(t, u, "Strs") }, "StringArray", RuleTable, false},
		{"[]rune", func(t *testing.T) types.Type { return geoVar(t, u, "Runes") }, "CharArray", RuleTable, false},
		{"[]byte", func(t *testing.T) types.Type { return geoVar(t, u, "Bytes") }, "ByteArray", RuleTable, false},
		{"bundle.Size", func(t *testing.T) types.Type { return geoVar(t, u, "Size") }, "Size", RuleTable, false},
		{"[]bundle.Size", func(t *testing.T) types.Type { return geoVar(t, u, "Sizes") }, "SizeArray", RuleTable, false},
		{"bundle.CharSequence", func(t *testing.T) types.Type { return geoVar(t, u, "Seq") }, "CharSequence", RuleTable, false},
		{"*bundle.Bundle", func(t *testing.T) types.Type { return geoVar(t, u, "Bag") }, "Bundle", RuleTable, false},
		{"Labels", func(t *testing.T) types.Type { return u.Lookup(t, geoPath, "Labels") }, "StringArrayList", RuleStringArrayList, false},
		{"Scores", func(t *testing.T) types.Type { return u.Lookup(t, geoPath, "Scores") }, "IntegerArrayList", RuleIntegerArrayList, false},
		{"Titles", func(t *testing.T) types.Type { return u.Lookup(t, geoPath, "Titles") }, "CharSequenceArrayList", RuleCharSequenceArrayList, false},
		{"Point", func(t *testing.T) types.Type { return u.Lookup(t, geoPath, "Point") }, "Parcelable", RuleParcelable, false},
		{"Region", func(t *testing.T) types.Type { return u.Lookup(t, geoPath, "Region") }, "Parcelable", RuleParcelable, false},
		{"*Handle", func(t *testing.T) types.Type { return types.NewPointer(u.Lookup(t, geoPath, "Handle")) }, "Parcelable", RuleParcelable, false},
		{"[]Point", func(t *testing.T) types.Type { return geoVar(t, u, "Pts") }, "ParcelableArrayList", RuleParcelableArrayList, false},
		{"[]*Point", func(t *testing.T) types.Type { return geoVar(t, u, "PtrPts") }, "ParcelableArrayList", RuleParcelableArrayList, false},
		{"[]*Handle", func(t *testing.T) types.Type { return geoVar(t, u, "Handles") }, "ParcelableArrayList", RuleParcelableArrayList, false},
		{"Route", func(t *testing.T) types.Type { return u.Lookup(t, geoPath, "Route") }, "ParcelableArrayList", RuleParcelableArrayList, false},
		{"map[int]Point", func(t *testing.T) types.Type { return geoVar(t, u, "Sparse") }, "SparseParcelableArray", RuleSparseParcelableArray, false},
		{"Points", func(t *testing.T) types.Type { return u.Lookup(t, geoPath, "Points") }, "SparseParcelableArray", RuleSparseParcelableArray, false},
		{"time.Time", func(t *testing.T) types.Type { return geoVar(t, u, "When") }, "Serializable", RuleSerializable, true},
		{"Moment", func(t *testing.T) types.Type { return geoVar(t, u, "Alias") }, "Serializable", RuleSerializable, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(NewGoType(tt.typ(t)), checker)
			require.NoError(t, err)
			assert.Equal(t, tt.op, res.Op)
			assert.Equal(t, tt.rule, res.Rule)
			assert.Equal(t, tt.needsCast, res.NeedsCast)
		})
	}
}

func TestGoChecker_Unresolvable(t *testing.T) {
	u := testutil.NewUniverse().Add(geoPath, geoSource)
	checker := NewGoChecker()

	for _, name := range []string{"Ch", "Any", "Fn", "Words", "Nested"} {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve(NewGoType(geoVar(t, u, name)), checker)
			require.Error(t, err)
		})
	}

	for _, name := range []string{"Stringers", "ByName", "Handle", "Byte"} {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve(NewGoType(u.Lookup(t, geoPath, name)), checker)
			require.Error(t, err)
		})
	}
}

func TestGoType(t *testing.T) {
	u := testutil.NewUniverse().Add(geoPath, geoSource)

	pts := NewGoType(geoVar(t, u, "Pts"))
	assert.True(t, pts.IsArray())
	assert.Equal(t, "example.com/geo.Point", pts.RawName())
	assert.Equal(t, "[]example.com/geo.Point", pts.String())

	labels := NewGoType(u.Lookup(t, geoPath, "Labels"))
	assert.False(t, labels.IsArray())
	assert.Equal(t, "example.com/geo.Labels", labels.RawName())

	moment := NewGoType(geoVar(t, u, "Alias"))
	assert.Equal(t, "time.Time", moment.RawName())

	assert.False(t, NewGoChecker().IsAssignable(fakeType{raw: "int"}, Parcelable))
}
