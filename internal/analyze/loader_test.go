package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/rsinukov/activityresult/internal/testutil"
)

func TestScan(t *testing.T) {
	u := testutil.NewUniverse().Add(appPath, `package app

// One is documented.
//
//activityresult:result {name: id, type: int}
type One struct{}

type (
	// Two carries its directive inside the group.
	//
	//activityresult:results [{name: a, type: string}]
	Two struct{}

	Three struct{}
)

// Plain has no directive.
type Plain struct{}

//activityresult:result {name: id, type: int}
var notAType int
`)

	pkg := u.LoadedPackage(t, appPath)
	prog := NewProgramFromRoots(u.Fset, pkg)

	decls := Scan(prog)
	require.Len(t, decls, 2)

	assert.Equal(t, "One", decls[0].SimpleName())
	assert.Equal(t, "example.com/app.One", decls[0].QualifiedName())
	assert.Equal(t, "Two", decls[1].SimpleName())

	for _, d := range decls {
		assert.NotNil(t, d.Object)
		assert.NotNil(t, d.Scope)
		assert.NotNil(t, d.Doc)
	}
}

func TestLoader_NoPatterns(t *testing.T) {
	_, err := NewLoader(LoaderConfig{}, nil).Load()
	require.Error(t, err)
}

func TestLoader_Load(t *testing.T) {
	if testing.Short() {
		t.Skip("runs go list")
	}

	loader := NewLoader(LoaderConfig{Dir: "../.."}, zaptest.NewLogger(t))

	prog, err := loader.Load("./examples/profile")
	require.NoError(t, err)

	require.Len(t, prog.Roots, 1)
	assert.Equal(t, "github.com/rsinukov/activityresult/examples/profile", prog.Roots[0].PkgPath)
	assert.NotNil(t, prog.Bundle)
	assert.NotNil(t, prog.PackageByPath("github.com/rsinukov/activityresult/examples/geo"))
	assert.Contains(t, prog.PackageNames(), "geo")

	var names []string
	for _, d := range Scan(prog) {
		names = append(names, d.SimpleName())
	}

	assert.Equal(t, []string{"LoginActivity", "EditProfileActivity", "MapActivity", "ScheduleActivity"}, names)
}

func TestLoader_ListError(t *testing.T) {
	if testing.Short() {
		t.Skip("runs go list")
	}

	_, err := NewLoader(LoaderConfig{Dir: "../.."}, zaptest.NewLogger(t)).Load("./does/not/exist")
	require.Error(t, err)
}

func TestLoader_ToleratesTypeErrors(t *testing.T) {
	if testing.Short() {
		t.Skip("runs go list")
	}

	prog, err := NewLoader(LoaderConfig{}, zaptest.NewLogger(t)).Load("./testdata/pending")
	require.NoError(t, err)

	decls := Scan(prog)
	require.Len(t, decls, 1)
	assert.Equal(t, "Screen", decls[0].SimpleName())
}

func TestLoader_ParseErrorAborts(t *testing.T) {
	if testing.Short() {
		t.Skip("runs go list")
	}

	_, err := NewLoader(LoaderConfig{}, zaptest.NewLogger(t)).Load("./testdata/broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package errors")
}
