package plan

import (
	"go.uber.org/zap"

	"github.com/rsinukov/activityresult/internal/diagnostic"
	"github.com/rsinukov/activityresult/internal/model"
	"github.com/rsinukov/activityresult/internal/resolve"
)

// Resolver resolves declaring classes.
type Resolver struct {
	checker resolve.Checker
	logger  *zap.Logger
}

// NewResolver creates a Resolver. A nil checker defaults to resolve.NewGoChecker,
// a nil logger to a no-op logger.
func NewResolver(checker resolve.Checker, logger *zap.Logger) *Resolver {
	if checker == nil {
		checker = resolve.NewGoChecker()
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Resolver{checker: checker, logger: logger}
}

// Resolve resolves every field of class. It stops at the first field that
// cannot be stored and returns an UnresolvableType *diagnostic.Error.
func (r *Resolver) Resolve(class *model.DeclaringClass) (*ResolvedClass, error) {
	rc := &ResolvedClass{Class: class}

	for _, f := range class.Fields() {
		if f.HasMarshaler() {
			rc.Fields = append(rc.Fields, ResolvedField{FieldDescriptor: f, Strategy: StrategyMarshaler})

			continue
		}

		t := resolve.NewGoType(f.Type)

		res, err := resolve.Resolve(t, r.checker)
		if err != nil {
			return nil, diagnostic.Errorf(diagnostic.CodeUnresolvableType, class.QualifiedName, f.Name,
				"no container operation stores type %s", t).At(f.Pos)
		}

		r.logger.Debug("resolved field",
			zap.String("class", class.QualifiedName),
			zap.String("field", f.Name),
			zap.String("type", t.String()),
			zap.String("op", res.Op),
			zap.Stringer("rule", res.Rule),
		)

		if res.Warning != "" {
			rc.Diagnostics.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticWarning,
				Code:     diagnostic.CodeSerializableFallback,
				Message:  res.Warning,
				Class:    class.QualifiedName,
				Field:    f.Name,
				Pos:      f.Pos,
			})
		}

		rc.Fields = append(rc.Fields, ResolvedField{FieldDescriptor: f, Resolution: res, Strategy: strategyOf(res)})
	}

	return rc, nil
}
