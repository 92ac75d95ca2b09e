package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}

func TestDiagnostics_AddAndMerge(t *testing.T) {
	var d Diagnostics
	require.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning(CodeSerializableFallback, "use Parcelable", "app.Main", "when")
	assert.True(t, d.IsValid())

	var other Diagnostics
	other.AddError(CodeDuplicateFieldName, "duplicate name id", "app.Main", "id")
	other.AddInfo("", "generated", "app.Main", "")

	d.Merge(other)

	assert.True(t, d.HasErrors())
	assert.Len(t, d.Errors, 1)
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)
	assert.Len(t, d.All(), 3)
	assert.Equal(t, DiagnosticError, d.All()[0].Severity)
	assert.EqualError(t, d.Error(), "[app.Main] id: [DuplicateFieldName] duplicate name id")
}

func TestError_UnwrapsToSentinel(t *testing.T) {
	err := Errorf(CodeInvalidMarshaler, "app.Main", "point", "%s must be exported", "geo.pointMarshaler")
	wrapped := fmt.Errorf("building model: %w", err)

	assert.ErrorIs(t, wrapped, ErrInvalidMarshaler)
	assert.NotErrorIs(t, wrapped, ErrInvalidAnnotation)

	var de *Error
	require.ErrorAs(t, wrapped, &de)
	assert.Equal(t, "point", de.Field)
}

func TestDiagnostics_AddErr(t *testing.T) {
	var d Diagnostics

	d.AddErr(nil, "app.Main")
	assert.Empty(t, d.All())

	pos := token.Position{Filename: "main.go", Line: 3, Column: 1}
	d.AddErr(Errorf(CodeUnresolvableType, "app.Main", "ch", "no bundle operation for chan int").At(pos), "app.Main")
	d.AddErr(errors.New("boom"), "app.Other")

	require.Len(t, d.Errors, 2)
	assert.Equal(t, CodeUnresolvableType, d.Errors[0].Code)
	assert.Equal(t, "main.go:3:1 [app.Main] ch: [UnresolvableType] no bundle operation for chan int", d.Errors[0].String())
	assert.Equal(t, CodeInternalError, d.Errors[1].Code)
	assert.Equal(t, "app.Other", d.Errors[1].Class)
}
