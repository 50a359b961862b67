package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"fprime-yamcs-mdb/internal/diagnostic"
)

// ErrorOptions configures the error message formatting
type ErrorOptions struct {
	Severity     diagnostic.DiagnosticSeverity
	Context      string
	Problem      string
	Suggestions  []string
	HelpCommands []string
	NoColor      bool
}

// FormatError creates a standardized message with suggestions and help commands
//
// Example output:
//
//	⚠ UNRESOLVED REFERENCE: [sg.Missing] Signals: packet Signals refers to unknown channel
//	   Did you mean: sg.Samples?
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	var headerColor *color.Color

	var symbol string

	switch opts.Severity {
	case diagnostic.DiagnosticError:
		headerColor = color.New(color.FgRed, color.Bold)
		symbol = "✗"
	case diagnostic.DiagnosticWarning:
		headerColor = color.New(color.FgYellow, color.Bold)
		symbol = "⚠"
	default:
		headerColor = color.New(color.FgCyan)
		symbol = "ℹ"
	}

	if opts.NoColor {
		headerColor.DisableColor()
	}

	if opts.Context != "" {
		headerColor.Fprintf(&b, "%s %s: %s\n", symbol, strings.ToUpper(opts.Context), opts.Problem)
	} else {
		headerColor.Fprintf(&b, "%s %s\n", symbol, opts.Problem)
	}

	if len(opts.Suggestions) > 0 {
		yellow := color.New(color.FgYellow)
		if opts.NoColor {
			yellow.DisableColor()
		}

		yellow.Fprintf(&b, "   Did you mean: %s?\n", strings.Join(opts.Suggestions, ", "))
	}

	if len(opts.HelpCommands) > 0 {
		cyan := color.New(color.FgCyan)
		if opts.NoColor {
			cyan.DisableColor()
		}

		for _, cmd := range opts.HelpCommands {
			cyan.Fprintf(&b, "   → %s\n", cmd)
		}
	}

	return b.String()
}

// FormatDiagnostic renders one diagnostic.
func FormatDiagnostic(d diagnostic.Diagnostic, noColor bool) string {
	problem := d.Message
	if d.Subject != "" {
		problem = "[" + d.Subject + "] " + problem
	}

	return FormatError(ErrorOptions{
		Severity:    d.Severity,
		Context:     strings.ReplaceAll(string(d.Kind), "_", " "),
		Problem:     problem,
		Suggestions: d.Suggestions,
		NoColor:     noColor,
	})
}

// WriteDiagnostics writes errors, then warnings, then infos.
func WriteDiagnostics(w io.Writer, diags diagnostic.Diagnostics, noColor bool) {
	for _, group := range [][]diagnostic.Diagnostic{diags.Errors, diags.Warnings, diags.Infos} {
		for _, d := range group {
			fmt.Fprint(w, FormatDiagnostic(d, noColor))
		}
	}
}

// FormatFailure renders a fatal error returned by the pipeline.
func FormatFailure(err error, noColor bool) string {
	opts := ErrorOptions{
		Severity: diagnostic.DiagnosticError,
		Context:  "generation failed",
		Problem:  err.Error(),
		NoColor:  noColor,
	}

	switch diagnostic.KindOf(err) {
	case diagnostic.KindUnresolvedReference:
		opts.HelpCommands = []string{"Review references: fprime-yamcs-mdb inspect <artifacts-dir> <topology-dir>"}
	case diagnostic.KindMalformedInput, diagnostic.KindNameCollision:
		opts.HelpCommands = []string{"Regenerate the dictionary with the F Prime build and retry"}
	}

	return FormatError(opts)
}

// FormatSuccess creates a success message
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}

	return green.Sprintf("✓ %s", message)
}

// WriteSuccess writes a success message to the writer
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}
