package processor

import (
	"github.com/rsinukov/activityresult/internal/diagnostic"
)

// internalError is an unexpected fault recovered while processing a class.
type internalError struct {
	class string
	cause string
	trace string
}

func (e *internalError) Error() string {
	return "internal error in " + e.class + ": " + e.cause
}

func (e *internalError) Unwrap() error {
	return diagnostic.ErrInternal
}

// Diagnostic converts e, keeping the trace.
func (e *internalError) Diagnostic() diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticError,
		Code:     diagnostic.CodeInternalError,
		Message:  e.cause,
		Class:    e.class,
		Trace:    e.trace,
	}
}
