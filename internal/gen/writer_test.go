package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	pkgDir := filepath.Join(dir, "app")

	written, err := WriteFiles([]GeneratedFile{
		{Dir: pkgDir, Filename: "a_result_gen.go", Content: []byte("package app\n")},
	}, "")
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(pkgDir, "a_result_gen.go")}, written)

	b, err := os.ReadFile(written[0])
	require.NoError(t, err)
	assert.Equal(t, "package app\n", string(b))

	override := filepath.Join(dir, "out")
	written, err = WriteFiles([]GeneratedFile{
		{Dir: pkgDir, Filename: "b_result_gen.go", Content: []byte("package app\n")},
	}, override)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(override, "b_result_gen.go")}, written)

	_, err = WriteFiles([]GeneratedFile{{Filename: "c_result_gen.go"}}, "")
	require.Error(t, err)
}

func TestWriteDebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeDebugUnformatted(dir, "a_result_gen.go", []byte("broken")))

	b, err := os.ReadFile(filepath.Join(dir, "_a_result_gen.unformatted.go"))
	require.NoError(t, err)
	assert.Equal(t, "broken", string(b))

	require.NoError(t, writeDebugUnformatted("", "a.go", nil))
}

func TestStale(t *testing.T) {
	dir := t.TempDir()

	files := []GeneratedFile{
		{Dir: dir, Filename: "same_result_gen.go", Content: []byte("package app\n")},
		{Dir: dir, Filename: "changed_result_gen.go", Content: []byte("package app\n\nvar x int\n")},
		{Dir: dir, Filename: "missing_result_gen.go", Content: []byte("package app\n")},
	}

	_, err := WriteFiles(files[:2], "")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "changed_result_gen.go"), []byte("package app\n"), filePerm))

	stale, err := Stale(files, "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "changed_result_gen.go"),
		filepath.Join(dir, "missing_result_gen.go"),
	}, stale)
}
