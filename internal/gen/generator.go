package gen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/rsinukov/activityresult/bundle"
	"github.com/rsinukov/activityresult/internal/analyze"
	"github.com/rsinukov/activityresult/internal/common"
	"github.com/rsinukov/activityresult/internal/plan"
)

// HeaderComment is the first line of every generated file.
const HeaderComment = "Code generated by activityresult. DO NOT EDIT."

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// DebugUnformatted writes a .unformatted.go sidecar next to the intended
	// output when rendering fails.
	DebugUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GenerateComments: true,
	}
}

// Generator renders resolved classes into Go source files.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory of the declaring package.
	Dir string
	// Filename is the name of the file (e.g., "login_activity_result_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Filename returns the generated file name for a declaring type name.
func Filename(simpleName string) string {
	return common.SnakeCase(simpleName) + analyze.GeneratedSuffix
}

// Identifiers returns the package-level names a generated file declares for
// the result type resultName.
func Identifiers(resultName string) []string {
	return []string{
		resultName,
		"new" + resultName,
		resultName + "FromIntent",
		resultName + "Builder",
		"New" + resultName + "Builder",
	}
}

// Generate renders one file per resolved class, in input order.
func (g *Generator) Generate(classes []*plan.ResolvedClass) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(classes))

	for _, rc := range classes {
		file, err := g.GenerateClass(rc)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", rc.Class.QualifiedName, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// GenerateClass renders the companion file of rc.
func (g *Generator) GenerateClass(rc *plan.ResolvedClass) (*GeneratedFile, error) {
	c := rc.Class

	f := jen.NewFilePathName(c.PkgPath(), c.PkgName())
	f.HeaderComment(HeaderComment)
	f.ImportName(bundle.ImportPath, "bundle")

	e := &emitter{config: g.config, rc: rc, name: c.ResultName()}
	e.resultType(f)
	e.constructor(f)
	e.getters(f)
	e.fromIntent(f)
	e.intent(f)
	e.builder(f)

	filename := Filename(c.SimpleName)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		if g.config.DebugUnformatted && c.Dir != "" {
			f.NoFormat = true

			var raw bytes.Buffer
			if rawErr := f.Render(&raw); rawErr == nil {
				_ = writeDebugUnformatted(c.Dir, filename, raw.Bytes())
			}
		}

		return nil, fmt.Errorf("rendering %s: %w", filename, err)
	}

	return &GeneratedFile{
		Dir:      c.Dir,
		Filename: filename,
		Content:  buf.Bytes(),
	}, nil
}

// emitter writes the declarations of one result type.
type emitter struct {
	config GeneratorConfig
	rc     *plan.ResolvedClass
	name   string
}

func (e *emitter) builderName() string {
	return e.name + "Builder"
}

func (e *emitter) comment(f *jen.File, format string, args ...any) {
	if e.config.GenerateComments {
		f.Comment(fmt.Sprintf(format, args...))
	}
}

func (e *emitter) resultType(f *jen.File) {
	fields := make([]jen.Code, 0, len(e.rc.Fields))
	for _, fd := range e.rc.Fields {
		fields = append(fields, jen.Id(fd.Member()).Add(typeCode(fd.Type)))
	}

	e.comment(f, "%s carries the result fields of %s.", e.name, e.rc.Class.SimpleName)
	f.Type().Id(e.name).Struct(fields...)
}

func (e *emitter) constructor(f *jen.File) {
	f.Func().Id("new" + e.name).Params().Op("*").Id(e.name).Block(
		jen.Return(jen.Op("&").Id(e.name).Values()),
	)
}

func (e *emitter) getters(f *jen.File) {
	for _, fd := range e.rc.Fields {
		e.comment(f, "%s returns the %q result.", fd.Accessor(), fd.Name)
		f.Func().Params(jen.Id(idResult).Op("*").Id(e.name)).Id(fd.Accessor()).Params().Add(typeCode(fd.Type)).Block(
			jen.Return(member(fd)),
		)
	}
}

// requiredKeys lists the keys FromIntent checks up front. Marshaled fields are
// left out: their marshaler decides which keys hold the value.
func (e *emitter) requiredKeys() []jen.Code {
	var keys []jen.Code

	for _, fd := range e.rc.Required() {
		if fd.Strategy == plan.StrategyMarshaler {
			continue
		}

		keys = append(keys, jen.Lit(fd.Name))
	}

	return keys
}

func (e *emitter) fromIntent(f *jen.File) {
	body := []jen.Code{
		jen.Id(idExtras).Op(":=").Id(idIntent).Dot("Extras").Call(),
	}

	if keys := e.requiredKeys(); len(keys) > 0 {
		body = append(body, jen.If(
			jen.Id(idErr).Op(":=").Id(idExtras).Dot("Require").Call(keys...),
			jen.Id(idErr).Op("!=").Nil(),
		).Block(
			jen.Return(jen.Nil(), jen.Id(idErr)),
		))
	}

	body = append(body, jen.Line(), jen.Id(idResult).Op(":=").Id("new"+e.name).Call())

	for _, fd := range e.rc.Fields {
		body = append(body, readStmt(fd))
	}

	body = append(body, jen.Line(), jen.Return(jen.Id(idResult), jen.Nil()))

	e.comment(f, "%sFromIntent reads a %s from the extras of intent.", e.name, e.name)

	f.Func().Id(e.name+"FromIntent").
		Params(jen.Id(idIntent).Op("*").Qual(bundle.ImportPath, "Intent")).
		Params(jen.Op("*").Id(e.name), jen.Error()).
		Block(body...)
}

func (e *emitter) intent(f *jen.File) {
	body := []jen.Code{
		jen.Id(idExtras).Op(":=").Qual(bundle.ImportPath, "New").Call(),
	}

	for _, fd := range e.rc.Fields {
		body = append(body, writeStmt(fd))
	}

	body = append(body, jen.Line(), jen.Return(
		jen.Qual(bundle.ImportPath, "NewIntent").Call().Dot("PutExtras").Call(jen.Id(idExtras)),
	))

	e.comment(f, "Intent writes every result field into the extras of a new Intent.")
	f.Func().Params(jen.Id(idResult).Op("*").Id(e.name)).Id("Intent").Params().
		Op("*").Qual(bundle.ImportPath, "Intent").
		Block(body...)
}

func (e *emitter) builder(f *jen.File) {
	builder := e.builderName()

	e.comment(f, "%s assembles a %s.", builder, e.name)
	f.Type().Id(builder).Struct(
		jen.Id("result").Op("*").Id(e.name),
	)

	required := e.rc.Required()
	params := make([]jen.Code, 0, len(required))
	values := jen.Dict{}

	for _, fd := range required {
		params = append(params, jen.Id(fd.Member()).Add(typeCode(fd.Type)))
		values[jen.Id(fd.Member())] = jen.Id(fd.Member())
	}

	e.comment(f, "New%s starts a %s from its required fields.", builder, e.name)
	f.Func().Id("New" + builder).Params(params...).Op("*").Id(builder).Block(
		jen.Return(jen.Op("&").Id(builder).Values(jen.Dict{
			jen.Id("result"): jen.Op("&").Id(e.name).Values(values),
		})),
	)

	for _, fd := range e.rc.Optional() {
		e.comment(f, "%s sets the optional %q result.", fd.Accessor(), fd.Name)
		f.Func().Params(jen.Id(idBuilder).Op("*").Id(builder)).Id(fd.Accessor()).
			Params(jen.Id(idValue).Add(typeCode(fd.Type))).
			Op("*").Id(builder).
			Block(
				jen.Id(idBuilder).Dot("result").Dot(fd.Member()).Op("=").Id(idValue),
				jen.Return(jen.Id(idBuilder)),
			)
	}

	e.comment(f, "Build returns the assembled %s.", e.name)
	f.Func().Params(jen.Id(idBuilder).Op("*").Id(builder)).Id("Build").Params().Op("*").Id(e.name).Block(
		jen.Return(jen.Id(idBuilder).Dot("result")),
	)
}
