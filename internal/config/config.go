// Package config loads the optional .activityresult.yaml project file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".activityresult.yaml"

// Config holds the settings of a run. Command line flags override it.
type Config struct {
	// Packages are the package patterns to process.
	Packages []string `yaml:"packages"`
	// Tags are build tags used while loading packages.
	Tags []string `yaml:"tags,omitempty"`
	// Dir is the working directory packages are resolved from.
	Dir string `yaml:"dir,omitempty"`
	// OutputDir overrides the declaring package directory of generated files.
	OutputDir string `yaml:"output_dir,omitempty"`
	// Comments enables doc comments in generated code.
	Comments bool `yaml:"comments"`
	// DebugUnformatted keeps rejected source next to the output.
	DebugUnformatted bool `yaml:"debug_unformatted,omitempty"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose,omitempty"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() Config {
	return Config{
		Packages: []string{"./..."},
		Comments: true,
	}
}

// Load reads path over the defaults. A missing DefaultFile is not an error;
// any other missing path is.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultFile {
			return cfg, nil
		}

		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes data into cfg, rejecting unknown keys.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return cfg.Validate()
}

// Validate checks the settings.
func (c Config) Validate() error {
	if len(c.Packages) == 0 {
		return errors.New("packages must list at least one pattern")
	}

	for _, p := range c.Packages {
		if strings.TrimSpace(p) == "" {
			return errors.New("packages must not contain empty patterns")
		}
	}

	for _, tag := range c.Tags {
		if tag == "" || strings.ContainsAny(tag, " ,") {
			return fmt.Errorf("invalid build tag %q", tag)
		}
	}

	return nil
}

// BuildFlags returns the go build flags for the configured tags.
func (c Config) BuildFlags() []string {
	if len(c.Tags) == 0 {
		return nil
	}

	return []string{"-tags=" + strings.Join(c.Tags, ",")}
}
