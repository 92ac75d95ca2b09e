package processor

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/rsinukov/activityresult/internal/analyze"
	"github.com/rsinukov/activityresult/internal/diagnostic"
	"github.com/rsinukov/activityresult/internal/gen"
	"github.com/rsinukov/activityresult/internal/model"
	"github.com/rsinukov/activityresult/internal/plan"
	"github.com/rsinukov/activityresult/internal/resolve"
)

// Mode selects what Process does with the generated files.
type Mode int

const (
	// ModeWrite writes generated files to disk.
	ModeWrite Mode = iota
	// ModeDryRun renders files without writing them.
	ModeDryRun
	// ModeCheck renders files and reports those that differ from disk.
	ModeCheck
)

// Config configures a Processor.
type Config struct {
	Loader    analyze.LoaderConfig
	Generator gen.GeneratorConfig
	Mode      Mode
	// OutputDir overrides the declaring package directory when set.
	OutputDir string
	// Checker overrides the capability checker, mostly for tests.
	Checker resolve.Checker
}

// Result is the outcome of a run.
type Result struct {
	// Classes are the classes that resolved, in declaration order.
	Classes []*plan.ResolvedClass
	// Files are the rendered files, one per entry of Classes.
	Files []gen.GeneratedFile
	// Written lists the paths written in ModeWrite.
	Written []string
	// Stale lists the paths that are out of date in ModeCheck.
	Stale       []string
	Diagnostics diagnostic.Diagnostics
}

// Processor runs the generation pipeline.
type Processor struct {
	config    Config
	logger    *zap.Logger
	resolver  *plan.Resolver
	generator *gen.Generator
}

// New creates a Processor. A nil logger disables logging.
func New(config Config, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Processor{
		config:    config,
		logger:    logger,
		resolver:  plan.NewResolver(config.Checker, logger.Named("plan")),
		generator: gen.NewGenerator(config.Generator),
	}
}

// Process loads patterns and processes every annotated declaration. The
// returned error covers loading and writing only; per-class failures are
// reported in Result.Diagnostics.
func (p *Processor) Process(patterns ...string) (*Result, error) {
	prog, err := analyze.NewLoader(p.config.Loader, p.logger.Named("load")).Load(patterns...)
	if err != nil {
		return nil, err
	}

	return p.ProcessProgram(prog)
}

// ProcessProgram processes the annotated declarations of an already loaded
// program.
func (p *Processor) ProcessProgram(prog *analyze.Program) (*Result, error) {
	res := &Result{}

	decls := analyze.Scan(prog)
	p.logger.Info("scanned packages", zap.Int("packages", len(prog.Roots)), zap.Int("classes", len(decls)))

	typeResolver := analyze.NewTypeResolver(prog)
	outputs := make(map[string]string)

	for _, decl := range decls {
		rc, file, err := p.processClass(prog, typeResolver, decl)
		if err == nil {
			err = p.claimOutput(outputs, prog, decl, file)
		}

		if err != nil {
			res.Diagnostics.AddErr(err, decl.QualifiedName())
			p.logger.Warn("class skipped", zap.String("class", decl.QualifiedName()), zap.Error(err))

			continue
		}

		res.Classes = append(res.Classes, rc)
		res.Files = append(res.Files, *file)
		res.Diagnostics.Merge(rc.Diagnostics)
	}

	for _, w := range res.Diagnostics.Warnings {
		p.logger.Warn(w.Message, zap.String("class", w.Class), zap.String("field", w.Field), zap.String("code", string(w.Code)))
	}

	switch p.config.Mode {
	case ModeWrite:
		written, err := gen.WriteFiles(res.Files, p.config.OutputDir)
		res.Written = written

		if err != nil {
			return res, err
		}

		for _, path := range written {
			p.logger.Info("wrote file", zap.String("path", path))
		}

	case ModeCheck:
		stale, err := gen.Stale(res.Files, p.config.OutputDir)
		if err != nil {
			return res, err
		}

		res.Stale = stale

	case ModeDryRun:
	}

	return res, nil
}

// processClass runs one declaration through the pipeline. A panic is
// recovered into an InternalError carrying the stack trace.
func (p *Processor) processClass(
	prog *analyze.Program,
	typeResolver model.TypeResolver,
	decl *analyze.Declaration,
) (rc *plan.ResolvedClass, file *gen.GeneratedFile, err error) {
	class := decl.QualifiedName()

	defer func() {
		if r := recover(); r != nil {
			rc, file = nil, nil
			err = &internalError{
				class: class,
				cause: fmt.Sprint(r),
				trace: string(debug.Stack()),
			}
		}
	}()

	src, err := model.SourceFromDeclaration(prog.Fset, decl)
	if err != nil {
		return nil, nil, err
	}

	dc, err := model.Build(src, typeResolver)
	if err != nil {
		return nil, nil, err
	}

	if err := checkGeneratedNames(prog.Fset, decl, dc.ResultName()); err != nil {
		return nil, nil, err
	}

	rc, err = p.resolver.Resolve(dc)
	if err != nil {
		return nil, nil, err
	}

	file, err = p.generator.GenerateClass(rc)
	if err != nil {
		return nil, nil, diagnostic.Errorf(diagnostic.CodeInternalError, class, "", "%v", err).At(dc.Pos)
	}

	p.logger.Debug("class generated", zap.String("class", class), zap.Int("fields", len(rc.Fields)))

	return rc, file, nil
}
