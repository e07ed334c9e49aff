package diag

import (
	"fmt"

	"github.com/pebble-lang/pebble/internal/source"
)

// Stage identifies which compiler phase produced the diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
	StageLoader Stage = "loader"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic. Lexer codes are prefixed
// with LEXER_, parser codes with SYNTAX_.
type Code string

// Diagnostic is a compiler diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     source.Span
	Filename string
	Help     string
}

// Location renders file:line:col for the start of the diagnostic.
func (d Diagnostic) Location() string {
	if d.Filename != "" {
		return fmt.Sprintf("%s:%s", d.Filename, d.Span.Start)
	}
	return d.Span.Start.String()
}

// Error implements error so a single diagnostic can be returned directly.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Location(), d.Message)
}

// WithHelp adds help text to the diagnostic.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

// WithFilename attributes the diagnostic to a file.
func (d Diagnostic) WithFilename(name string) Diagnostic {
	d.Filename = name
	return d
}
