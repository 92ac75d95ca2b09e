package plan

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rsinukov/activityresult/internal/diagnostic"
	"github.com/rsinukov/activityresult/internal/marshaler"
	"github.com/rsinukov/activityresult/internal/model"
	"github.com/rsinukov/activityresult/internal/resolve"
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

type Coordinates struct{ Lat, Lng float64 }

type CoordinatesMarshaler struct{}

func (CoordinatesMarshaler) Put(key string, value Coordinates, b *bundle.Bundle) {}
func (CoordinatesMarshaler) Get(key string, b *bundle.Bundle) Coordinates   { return Coordinates{} }

var When time.Time
`

func newClass(t *testing.T, fields ...*model.FieldDescriptor) *model.DeclaringClass {
	t.Helper()

	class, err := model.NewDeclaringClass(model.ClassInfo{
		QualifiedName: geoPath + ".Main",
		SimpleName:    "Main",
	}, fields)
	require.NoError(t, err)

	return class
}

func TestResolver_Resolve(t *testing.T) {
	u := testutil.NewUniverse().Add(geoPath, geoSource)
	geo := u.Package(t, geoPath)

	m, err := marshaler.Validate(u.Lookup(t, geoPath, "CoordinatesMarshaler"), u.Lookup(t, geoPath, "Coordinates"), "Main", "where")
	require.NoError(t, err)

	class := newClass(t,
		&model.FieldDescriptor{Name: "userId", Type: types.Typ[types.Int], Required: true},
		&model.FieldDescriptor{Name: "ids", Type: types.NewSlice(types.Typ[types.Int]), Required: false},
		&model.FieldDescriptor{Name: "origin", Type: u.Lookup(t, geoPath, "Point"), Required: true},
		&model.FieldDescriptor{Name: "at", Type: geo.Scope().Lookup("When").Type(), Required: false},
		&model.FieldDescriptor{Name: "where", Type: u.Lookup(t, geoPath, "Coordinates"), Required: true, Marshaler: m},
	)

	rc, err := NewResolver(nil, nil).Resolve(class)
	require.NoError(t, err)
	require.Len(t, rc.Fields, 5)

	got := make(map[string]ResolvedField)
	order := make([]string, 0, len(rc.Fields))

	for _, f := range rc.Fields {
		got[f.Name] = f
		order = append(order, f.Name)
	}

	assert.Equal(t, []string{"at", "ids", "origin", "userId", "where"}, order)

	assert.Equal(t, "Int", got["userId"].Op())
	assert.Equal(t, StrategyAccessor, got["userId"].Strategy)

	assert.Equal(t, "IntArray", got["ids"].Op())

	assert.Equal(t, "Parcelable", got["origin"].Op())
	assert.Equal(t, StrategyGeneric, got["origin"].Strategy)

	assert.Equal(t, "Serializable", got["at"].Op())
	assert.Equal(t, StrategyCast, got["at"].Strategy)

	assert.Equal(t, "", got["where"].Op())
	assert.Equal(t, StrategyMarshaler, got["where"].Strategy)

	require.Len(t, rc.Diagnostics.Warnings, 1)
	w := rc.Diagnostics.Warnings[0]
	assert.Equal(t, diagnostic.CodeSerializableFallback, w.Code)
	assert.Equal(t, "at", w.Field)
	assert.True(t, rc.Diagnostics.IsValid())

	assert.Len(t, rc.Required(), 3)
	assert.Len(t, rc.Optional(), 2)
}

func TestResolver_Unresolvable(t *testing.T) {
	class := newClass(t,
		&model.FieldDescriptor{Name: "ok", Type: types.Typ[types.String], Required: true},
		&model.FieldDescriptor{Name: "events", Type: types.NewChan(types.SendRecv, types.Typ[types.Int]), Required: true},
	)

	rc, err := NewResolver(resolve.NewGoChecker(), nil).Resolve(class)
	require.Error(t, err)
	assert.Nil(t, rc)
	assert.ErrorIs(t, err, diagnostic.ErrUnresolvableType)
	assert.Contains(t, err.Error(), "chan int")
	assert.Contains(t, err.Error(), "events")
}

func TestExportYAML(t *testing.T) {
	class := newClass(t,
		&model.FieldDescriptor{Name: "userId", Type: types.Typ[types.Int], Required: true},
		&model.FieldDescriptor{Name: "tags", Type: types.NewSlice(types.Typ[types.String])},
	)

	rc, err := NewResolver(nil, nil).Resolve(class)
	require.NoError(t, err)

	out, err := ExportYAML([]*ResolvedClass{rc})
	require.NoError(t, err)

	var reports []ClassReport
	require.NoError(t, yaml.Unmarshal(out, &reports))
	require.Len(t, reports, 1)

	r := reports[0]
	assert.Equal(t, geoPath+".Main", r.Class)
	assert.Equal(t, "MainResult", r.Result)
	assert.Equal(t, []FieldReport{
		{Name: "tags", Type: "[]string", Op: "StringArray", Rule: "Table", Strategy: "accessor"},
		{Name: "userId", Type: "int", Required: true, Op: "Int", Rule: "Table", Strategy: "accessor"},
	}, r.Fields)
}
