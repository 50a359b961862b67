package ui

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"fprime-yamcs-mdb/internal/diagnostic"
)

func TestFormatError(t *testing.T) {
	tests := []struct {
		name     string
		opts     ErrorOptions
		contains []string
	}{
		{
			name: "error with context",
			opts: ErrorOptions{
				Severity: diagnostic.DiagnosticError,
				Context:  "generation failed",
				Problem:  "boom",
			},
			contains: []string{"✗ GENERATION FAILED: boom"},
		},
		{
			name: "warning with suggestions",
			opts: ErrorOptions{
				Severity:    diagnostic.DiagnosticWarning,
				Problem:     "unknown channel",
				Suggestions: []string{"sg.Samples", "sg.Telemetry"},
			},
			contains: []string{"⚠ unknown channel", "Did you mean: sg.Samples, sg.Telemetry?"},
		},
		{
			name: "help commands",
			opts: ErrorOptions{
				Problem:      "note",
				HelpCommands: []string{"Run: something"},
			},
			contains: []string{"ℹ note", "→ Run: something"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.NoColor = true
			out := FormatError(tt.opts)

			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestFormatDiagnostic(t *testing.T) {
	d := diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticWarning,
		Kind:        diagnostic.KindUnresolvedReference,
		Message:     "packet Signals refers to unknown channel",
		Subject:     "sg.Missing",
		Suggestions: []string{"sg.Samples"},
	}

	out := FormatDiagnostic(d, true)
	assert.Equal(t,
		"⚠ UNRESOLVED REFERENCE: [sg.Missing] packet Signals refers to unknown channel\n   Did you mean: sg.Samples?\n",
		out)
}

func TestWriteDiagnostics_Order(t *testing.T) {
	var diags diagnostic.Diagnostics
	diags.AddWarning(diagnostic.KindUnsupportedCommandArgument, "second", "B", "")
	diags.AddError(diagnostic.KindNameCollision, "first", "A", "")

	var buf bytes.Buffer
	WriteDiagnostics(&buf, diags, true)

	out := buf.String()
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("first")), bytes.Index(buf.Bytes(), []byte("second")))
	assert.Contains(t, out, "NAME COLLISION")
	assert.Contains(t, out, "UNSUPPORTED COMMAND ARGUMENT")
}

func TestFormatFailure(t *testing.T) {
	err := fmt.Errorf("strict mode: %w", &diagnostic.Error{
		Kind: diagnostic.KindUnresolvedReference, Name: "ch", Message: "missing",
	})

	out := FormatFailure(err, true)
	assert.Contains(t, out, "GENERATION FAILED")
	assert.Contains(t, out, "inspect")

	out = FormatFailure(errors.New("plain"), true)
	assert.Contains(t, out, "plain")
	assert.NotContains(t, out, "→")
}

func TestFormatSuccess(t *testing.T) {
	assert.Equal(t, "✓ done", FormatSuccess("done", true))

	var buf bytes.Buffer
	WriteSuccess(&buf, "wrote 6 files", true)
	assert.Equal(t, "✓ wrote 6 files\n", buf.String())
}

func TestTable_Render(t *testing.T) {
	var buf bytes.Buffer

	table := NewTable(&buf, []string{"KIND", "COUNT"}, true)
	table.AddRow("primitive", "6")
	table.AddRow("command", "3")
	table.Render()

	assert.Equal(t, "KIND       COUNT\nprimitive  6\ncommand    3\n", buf.String())
}

func TestTable_NoHeaders(t *testing.T) {
	var buf bytes.Buffer

	NewTable(&buf, nil, true).Render()
	assert.Empty(t, buf.String())
}
