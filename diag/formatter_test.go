package diag

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/veldt-lang/veldt/scanner"
	"github.com/veldt-lang/veldt/source"
	"github.com/veldt-lang/veldt/syntax"
)

// locate scans src and returns the range of the first token, as a convenient
// way to build realistic locations.
func locate(t *testing.T, src string) source.Range {
	t.Helper()
	tokens := scanner.New(src, "main.vt").ScanAll()
	assert.True(t, len(tokens) > 1)
	return tokens[0].Range()
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "info", Info.String())
}

func TestTextFormatHeader(t *testing.T) {
	d := Diagnostic{
		Severity: Error,
		Message:  "unknown name",
		Location: locate(t, "foo + 1"),
	}

	got := NewTextFormatter().Format(d)
	assert.Equal(t, "main.vt:1,1-4: error: unknown name", got)
}

func TestTextFormatWithoutLocation(t *testing.T) {
	d := Diagnostic{Severity: Warning, Message: "something happened"}
	got := NewTextFormatter().Format(d)
	assert.Equal(t, "warning: something happened", got)
}

func TestTextFormatExcerpt(t *testing.T) {
	src := "let x = foo + 1"
	tokens := scanner.New(src, "main.vt").ScanAll()
	foo := tokens[3] // let, x, =, foo

	d := Diagnostic{Severity: Error, Message: "unknown name", Location: foo.Range()}
	got := NewTextFormatter(WithSource(src)).Format(d)

	want := strings.Join([]string{
		"main.vt:1,9-12: error: unknown name",
		" 1 | let x = foo + 1",
		"   |         ^^^",
	}, "\n")
	assert.Equal(t, want, got)
}

// TestTextFormatSplitLocation checks that every piece of a split location is
// underlined, with the gaps left unmarked.
func TestTextFormatSplitLocation(t *testing.T) {
	src := "Foo.Bar"
	d := Diagnostic{Severity: Error, Message: "unknown module", Location: locate(t, src)}

	got := NewTextFormatter(WithSource(src)).Format(d)
	want := strings.Join([]string{
		"main.vt:1,1-8: error: unknown module",
		" 1 | Foo.Bar",
		"   | ^^^",
		" 1 | Foo.Bar",
		"   |     ^^^",
	}, "\n")
	assert.Equal(t, want, got)
}

// TestTextFormatTabAlignment checks that carets line up with the reported
// columns when the excerpt line contains tabs.
func TestTextFormatTabAlignment(t *testing.T) {
	src := "\tfoo"
	d := Diagnostic{Severity: Error, Message: "unknown name", Location: locate(t, src)}

	got := NewTextFormatter(WithSource(src)).Format(d)
	want := strings.Join([]string{
		"main.vt:1,9-12: error: unknown name",
		" 1 |         foo",
		"   |         ^^^",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatAll(t *testing.T) {
	tf := NewTextFormatter()
	assert.Equal(t, "", tf.FormatAll(nil))

	ds := []Diagnostic{
		{Severity: Error, Message: "first"},
		{Severity: Warning, Message: "second"},
	}
	assert.Equal(t, "error: first\n\nwarning: second", tf.FormatAll(ds))
}

func TestParseErrorToDiagnostic(t *testing.T) {
	src := "1 +"
	_, err := syntax.Parse(src, "main.vt")
	assert.Error(t, err)

	perr, ok := err.(*syntax.ParseError)
	assert.True(t, ok)

	d := New(Error, perr.Message, perr)
	got := NewTextFormatter(WithSource(src)).Format(d)
	assert.True(t, strings.Contains(got, "error: unexpected end of input"), "got %q", got)
}

func TestJSONFormat(t *testing.T) {
	d := Diagnostic{
		Severity: Error,
		Message:  "unknown module",
		Location: locate(t, "Foo.Bar"),
	}

	var decoded DiagnosticJSON
	assert.NoError(t, json.Unmarshal([]byte(NewJSONFormatter().Format(d)), &decoded))

	assert.Equal(t, "error", decoded.Severity)
	assert.Equal(t, "unknown module", decoded.Message)
	assert.Equal(t, "main.vt:1,1-8", decoded.Location)
	assert.Equal(t, []IntervalJSON{
		{Filename: "main.vt", StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 4},
		{Filename: "main.vt", StartLine: 1, StartColumn: 5, EndLine: 1, EndColumn: 8},
	}, decoded.Intervals)
}

func TestJSONFormatAll(t *testing.T) {
	ds := []Diagnostic{
		{Severity: Error, Message: "first"},
		{Severity: Info, Message: "second"},
	}

	var decoded []DiagnosticJSON
	assert.NoError(t, json.Unmarshal([]byte(NewJSONFormatter().FormatAll(ds)), &decoded))
	assert.Equal(t, 2, len(decoded))
	assert.Equal(t, "info", decoded[1].Severity)
	assert.Equal(t, "", decoded[0].Location)
}
