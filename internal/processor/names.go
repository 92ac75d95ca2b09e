package processor

import (
	"go/token"
	"path/filepath"
	"strings"

	"github.com/rsinukov/activityresult/internal/analyze"
	"github.com/rsinukov/activityresult/internal/diagnostic"
	"github.com/rsinukov/activityresult/internal/gen"
)

// checkGeneratedNames rejects a class whose generated identifiers are already
// declared in its package. Declarations from earlier generated files do not
// count, they are replaced on write.
func checkGeneratedNames(fset *token.FileSet, decl *analyze.Declaration, resultName string) error {
	pkg := decl.Package.Types
	if pkg == nil {
		return nil
	}

	for _, id := range gen.Identifiers(resultName) {
		obj := pkg.Scope().Lookup(id)
		if obj == nil {
			continue
		}

		at := fset.Position(obj.Pos())
		if strings.HasSuffix(at.Filename, analyze.GeneratedSuffix) {
			continue
		}

		return diagnostic.Errorf(diagnostic.CodeNameCollision, decl.QualifiedName(), "",
			"generated identifier %s is already declared at %s", id, at).At(fset.Position(decl.Spec.Pos()))
	}

	return nil
}

// claimOutput records the output path of file, failing when an earlier class
// of the run already writes to it.
func (p *Processor) claimOutput(
	outputs map[string]string,
	prog *analyze.Program,
	decl *analyze.Declaration,
	file *gen.GeneratedFile,
) error {
	dir := file.Dir
	if p.config.OutputDir != "" {
		dir = p.config.OutputDir
	}

	path := filepath.Join(dir, file.Filename)

	if owner, ok := outputs[path]; ok {
		return diagnostic.Errorf(diagnostic.CodeNameCollision, decl.QualifiedName(), "",
			"output file %s is already generated for %s", path, owner).At(prog.Fset.Position(decl.Spec.Pos()))
	}

	outputs[path] = decl.QualifiedName()

	return nil
}
