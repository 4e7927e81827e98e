// Package veldt bundles the pieces of the veldt front end: a scanner and
// parser producing location-carrying tokens and syntax trees, and diagnostic
// formatting that points back at the original text.
package veldt

import (
	"fmt"

	"github.com/veldt-lang/veldt/diag"
	"github.com/veldt-lang/veldt/scanner"
	"github.com/veldt-lang/veldt/source"
	"github.com/veldt-lang/veldt/syntax"
)

// ScanString tokenizes src. The filename is carried as opaque data on every
// token position for diagnostics.
func ScanString(src, filename string) []scanner.Token {
	return scanner.New(src, filename).ScanAll()
}

// ParseString scans and parses a single expression from src.
func ParseString(src, filename string) (syntax.Expr, error) {
	return syntax.Parse(src, filename)
}

// Check scans and parses src and reports every diagnostic found: one per
// malformed token, plus the parse error if parsing fails.
func Check(src, filename string) []diag.Diagnostic {
	var diagnostics []diag.Diagnostic

	tokens := ScanString(src, filename)
	for _, tok := range tokens {
		if tok.Type == scanner.ILLEGAL {
			diagnostics = append(diagnostics, diag.Diagnostic{
				Severity: diag.Error,
				Message:  fmt.Sprintf("malformed token %q", tok.Text),
				Location: tok.Range(),
			})
		}
	}

	if _, err := syntax.ParseTokens(tokens); err != nil {
		diagnostics = append(diagnostics, ErrorDiagnostic(err))
	}

	return diagnostics
}

// ErrorDiagnostic converts an error into a diagnostic, keeping the location
// when the error carries one.
func ErrorDiagnostic(err error) diag.Diagnostic {
	d := diag.Diagnostic{Severity: diag.Error, Message: err.Error()}
	if ranged, ok := err.(source.Ranged); ok {
		if perr, isParse := err.(*syntax.ParseError); isParse {
			d.Message = perr.Message
		}
		d.Location = ranged.Range()
	}
	return d
}
