package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes the rejected source to a sidecar file next to
// the intended output. Best effort; the caller ignores the error.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	// The sidecar keeps a .go suffix for highlighting but must not compile
	// into the package, so it is prefixed with an underscore.
	debugName := "_" + strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
