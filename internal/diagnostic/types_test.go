package diagnostic

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndValidity(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning(KindUnresolvedReference, "type is not defined", "Ref.Missing", "")
	d.AddInfo(KindUnsupportedCommandArgument, "note", "CMD", "")
	assert.True(t, d.IsValid())
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)

	d.AddError(KindMalformedInput, "array size must be positive", "Ref.Arr", "")
	assert.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.ErrorIs(t, err, KindMalformedInput)
	assert.Contains(t, err.Error(), "Ref.Arr")
}

func TestDiagnostics_Escalate(t *testing.T) {
	var d Diagnostics
	d.AddWarning(KindUnresolvedReference, "a", "X", "")
	d.AddWarning(KindUnsupportedCommandArgument, "b", "CMD", "T")
	d.AddWarning(KindUnresolvedReference, "c", "Y", "")

	d.Escalate(KindUnresolvedReference)

	require.Len(t, d.Errors, 2)
	assert.Equal(t, DiagnosticError, d.Errors[0].Severity)
	assert.Equal(t, "X", d.Errors[0].Subject)
	assert.Equal(t, "Y", d.Errors[1].Subject)
	require.Len(t, d.Warnings, 1)
	assert.Equal(t, "CMD", d.Warnings[0].Subject)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddWarning(KindUnresolvedReference, "a", "X", "")
	b.AddWarning(KindUnresolvedReference, "b", "Y", "")
	b.AddError(KindNameCollision, "dup", "Z", "")

	a.Merge(b)
	assert.Len(t, a.Warnings, 2)
	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.WarningsOf(KindUnresolvedReference), 2)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Kind:    KindUnsupportedCommandArgument,
		Message: "argument type contains an array",
		Subject: "Ref.sendBuff.SEND",
		Related: "Ref.Telemetry",
	}

	assert.Equal(t,
		"[Ref.sendBuff.SEND] Ref.Telemetry: [unsupported_command_argument] argument type contains an array",
		d.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "[sg.Sample]: channel is not defined (did you mean sg.Samples?)",
		Diagnostic{Message: "channel is not defined", Subject: "sg.Sample", Suggestions: []string{"sg.Samples"}}.String())
}

func TestDiagnostics_Suggest(t *testing.T) {
	var d Diagnostics
	d.Suggest([]string{"ignored"})
	assert.Empty(t, d.Warnings)

	d.AddWarning(KindUnresolvedReference, "a", "X", "")
	d.AddWarning(KindUnresolvedReference, "b", "Y", "")
	d.Suggest([]string{"Z"})
	d.Suggest(nil)

	assert.Nil(t, d.Warnings[0].Suggestions)
	assert.Equal(t, []string{"Z"}, d.Warnings[1].Suggestions)
}

func TestError_KindMatching(t *testing.T) {
	err := fmt.Errorf("resolving: %w", Malformed("Ref.Arr", "array size %d must be positive", 0))

	assert.ErrorIs(t, err, KindMalformedInput)
	assert.NotErrorIs(t, err, KindNameCollision)
	assert.Equal(t, KindMalformedInput, KindOf(err))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, "malformed_input: Ref.Arr: array size 0 must be positive",
		errors.Unwrap(err).Error())

	var de *Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Ref.Arr", de.Name)
}
