package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rsinukov/activityresult/internal/analyze"
	"github.com/rsinukov/activityresult/internal/config"
	"github.com/rsinukov/activityresult/internal/diagnostic"
	"github.com/rsinukov/activityresult/internal/gen"
	"github.com/rsinukov/activityresult/internal/processor"
)

// errDiagnostics is returned when at least one class failed.
var errDiagnostics = errors.New("processing reported errors")

// cli holds flag values and state shared by the subcommands.
type cli struct {
	stdout io.Writer
	stderr io.Writer

	configPath       string
	verbose          bool
	tags             []string
	dir              string
	outputDir        string
	noComments       bool
	debugUnformatted bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "activityresult",
		Short: "Generate typed result companions for annotated Go types",
		Long: `activityresult generates a <Name>Result type for every type declaration
carrying an //activityresult:result or //activityresult:results directive.

The generated type stores its fields in a bundle.Intent and reads them back,
and comes with a builder taking the required fields positionally.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", config.DefaultFile, "Path to the config file")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringSliceVar(&c.tags, "tags", nil, "Build tags used while loading packages")
	flags.StringVarP(&c.dir, "dir", "C", "", "Directory package patterns are resolved from")
	flags.StringVarP(&c.outputDir, "out", "o", "", "Write every generated file into this directory")
	flags.BoolVar(&c.noComments, "no-comments", false, "Omit doc comments from generated code")
	flags.BoolVar(&c.debugUnformatted, "debug-unformatted", false, "Keep rejected source next to the output")

	root.AddCommand(c.genCmd(), c.checkCmd(), c.analyzeCmd())

	return root
}

// setup loads the config file, applies flag overrides and builds the logger.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if flags.Changed("verbose") {
		cfg.Verbose = c.verbose
	}

	if flags.Changed("tags") {
		cfg.Tags = c.tags
	}

	if flags.Changed("dir") {
		cfg.Dir = c.dir
	}

	if flags.Changed("out") {
		cfg.OutputDir = c.outputDir
	}

	if flags.Changed("no-comments") {
		cfg.Comments = !c.noComments
	}

	if flags.Changed("debug-unformatted") {
		cfg.DebugUnformatted = c.debugUnformatted
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	c.cfg = cfg

	if c.logger == nil {
		c.logger, err = newLogger(cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return zcfg.Build()
}

// patterns returns the command arguments, or the configured packages.
func (c *cli) patterns(args []string) []string {
	if len(args) > 0 {
		return args
	}

	return c.cfg.Packages
}

func (c *cli) processor(mode processor.Mode) *processor.Processor {
	return processor.New(processor.Config{
		Loader: analyze.LoaderConfig{
			Dir:        c.cfg.Dir,
			BuildFlags: c.cfg.BuildFlags(),
		},
		Generator: gen.GeneratorConfig{
			GenerateComments: c.cfg.Comments,
			DebugUnformatted: c.cfg.DebugUnformatted,
		},
		Mode:      mode,
		OutputDir: c.cfg.OutputDir,
	}, c.logger)
}

// report prints diagnostics to stderr, errors first.
func (c *cli) report(diags diagnostic.Diagnostics) error {
	for _, d := range diags.All() {
		fmt.Fprintf(c.stderr, "%s: %s\n", d.Severity, d)

		if d.Trace != "" && c.cfg.Verbose {
			fmt.Fprintln(c.stderr, d.Trace)
		}
	}

	if diags.HasErrors() {
		return fmt.Errorf("%w: %d error(s)", errDiagnostics, len(diags.Errors))
	}

	return nil
}
