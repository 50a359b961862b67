package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"fprime-yamcs-mdb/internal/common"
)

// Diagnostics holds all diagnostic information from a generation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Kind is the category of the finding.
	Kind Kind
	// Message is the human-readable description.
	Message string
	// Subject is the qualified name the finding is about (type, channel, command or packet).
	Subject string
	// Related names a second entity involved, e.g. the offending argument type.
	Related string
	// Suggestions are known names close to an unresolved one.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(kind Kind, message, subject, related string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Kind:     kind,
		Message:  message,
		Subject:  subject,
		Related:  related,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(kind Kind, message, subject, related string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Kind:     kind,
		Message:  message,
		Subject:  subject,
		Related:  related,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(kind Kind, message, subject, related string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Kind:     kind,
		Message:  message,
		Subject:  subject,
		Related:  related,
	})
}

// Suggest attaches suggestions to the most recently added warning.
func (d *Diagnostics) Suggest(suggestions []string) {
	if len(d.Warnings) == 0 || len(suggestions) == 0 {
		return
	}

	d.Warnings[len(d.Warnings)-1].Suggestions = suggestions
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// WarningsOf returns the warnings of the given kind, in the order they were added.
func (d *Diagnostics) WarningsOf(kind Kind) []Diagnostic {
	var out []Diagnostic

	for _, w := range d.Warnings {
		if w.Kind == kind {
			out = append(out, w)
		}
	}

	return out
}

// Escalate moves every warning of the given kind into the error list.
func (d *Diagnostics) Escalate(kind Kind) {
	kept := d.Warnings[:0]

	for _, w := range d.Warnings {
		if w.Kind != kind {
			kept = append(kept, w)
			continue
		}

		w.Severity = DiagnosticError
		d.Errors = append(d.Errors, w)
	}

	d.Warnings = kept
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
// The first error's kind is kept so callers can still match on it.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	first := d.Errors[0]

	return &Error{
		Kind:    first.Kind,
		Name:    first.Subject,
		Message: strings.Join(parts, "; "),
		Cause:   errors.New(first.Message),
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Subject != "" {
		prefix = append(prefix, "["+d.Subject+"]")
	}

	if d.Related != "" {
		prefix = append(prefix, d.Related)
	}

	msg := d.Message
	if d.Kind != "" {
		msg = fmt.Sprintf("[%s] %s", d.Kind, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
