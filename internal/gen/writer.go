package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every generated file into its package directory. When
// outputDir is set it overrides the per-file directory.
func WriteFiles(files []GeneratedFile, outputDir string) ([]string, error) {
	written := make([]string, 0, len(files))

	for _, file := range files {
		dir := file.Dir
		if outputDir != "" {
			dir = outputDir
		}

		if dir == "" {
			return written, fmt.Errorf("no output directory for %s", file.Filename)
		}

		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return written, fmt.Errorf("creating output directory: %w", err)
		}

		outputPath := filepath.Join(dir, file.Filename)

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return written, fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		written = append(written, outputPath)
	}

	return written, nil
}

// Stale returns the paths of files whose on-disk content differs from the
// generated content, including files that do not exist yet.
func Stale(files []GeneratedFile, outputDir string) ([]string, error) {
	var stale []string

	for _, file := range files {
		dir := file.Dir
		if outputDir != "" {
			dir = outputDir
		}

		p := filepath.Join(dir, file.Filename)

		current, err := os.ReadFile(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				stale = append(stale, p)
				continue
			}

			return nil, fmt.Errorf("reading %s: %w", p, err)
		}

		if !bytes.Equal(current, file.Content) {
			stale = append(stale, p)
		}
	}

	return stale, nil
}
