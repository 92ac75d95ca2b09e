package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
)

// Code identifies a kind of diagnostic.
type Code string

const (
	CodeInvalidAnnotation    Code = "InvalidAnnotation"
	CodeDuplicateFieldName   Code = "DuplicateFieldName"
	CodeInvalidMarshaler     Code = "InvalidMarshaler"
	CodeUnresolvableType     Code = "UnresolvableType"
	CodeNameCollision        Code = "NameCollision"
	CodeInternalError        Code = "InternalError"
	CodeSerializableFallback Code = "SerializableFallback"
)

// Sentinel errors, one per error code. *Error unwraps to these.
var (
	ErrInvalidAnnotation  = errors.New("invalid annotation")
	ErrDuplicateFieldName = errors.New("duplicate field name")
	ErrInvalidMarshaler   = errors.New("invalid marshaler")
	ErrUnresolvableType   = errors.New("unresolvable type")
	ErrNameCollision      = errors.New("generated name collision")
	ErrInternal           = errors.New("internal error")
)

var sentinels = map[Code]error{
	CodeInvalidAnnotation:  ErrInvalidAnnotation,
	CodeDuplicateFieldName: ErrDuplicateFieldName,
	CodeInvalidMarshaler:   ErrInvalidMarshaler,
	CodeUnresolvableType:   ErrUnresolvableType,
	CodeNameCollision:      ErrNameCollision,
	CodeInternalError:      ErrInternal,
}

// Error is a processing failure attributed to a declaring type and field.
type Error struct {
	Code    Code
	Class   string
	Field   string
	Message string
	Pos     token.Position
}

// Errorf builds an *Error with a formatted message.
func Errorf(code Code, class, field, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Class:   class,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// At sets the source position and returns e.
func (e *Error) At(pos token.Position) *Error {
	e.Pos = pos
	return e
}

func (e *Error) Error() string {
	return e.Diagnostic().String()
}

// Unwrap returns the sentinel error for e's code.
func (e *Error) Unwrap() error {
	return sentinels[e.Code]
}

// Diagnostic converts e into an error-severity Diagnostic.
func (e *Error) Diagnostic() Diagnostic {
	return Diagnostic{
		Severity: DiagnosticError,
		Code:     e.Code,
		Message:  e.Message,
		Class:    e.Class,
		Field:    e.Field,
		Pos:      e.Pos,
	}
}
