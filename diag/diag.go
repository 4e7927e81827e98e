// Package diag provides diagnostic formatting infrastructure. It separates
// rendering from the scanner and parser, allowing diagnostics to be rendered
// in multiple formats (text, JSON) for different consumers.
//
// The package defines a Formatter interface and provides two
// implementations:
//   - TextFormatter: formats diagnostics for command-line output with a
//     source excerpt and carets under every piece of the location
//   - JSONFormatter: formats diagnostics as structured JSON
package diag

import (
	"github.com/veldt-lang/veldt/source"
)

// Severity classifies a diagnostic.
type Severity uint8

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	}
	return "unknown"
}

// Diagnostic is a message tied to a location in the source. The location is
// a Range, so a diagnostic can point at a split span; an empty Range means
// the location is unknown.
type Diagnostic struct {
	Severity Severity
	Message  string
	Location source.Range
}

// New returns an error diagnostic at the location of x.
func New(severity Severity, message string, x source.Ranged) Diagnostic {
	return Diagnostic{Severity: severity, Message: message, Location: x.Range()}
}

// Formatter formats diagnostics for output in different formats.
type Formatter interface {
	// Format formats a single diagnostic.
	Format(d Diagnostic) string

	// FormatAll formats multiple diagnostics.
	FormatAll(ds []Diagnostic) string
}
