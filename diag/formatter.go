package diag

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/veldt-lang/veldt/source"
)

// TextFormatter formats diagnostics for command-line output.
type TextFormatter struct {
	src string // Optional source text for excerpts
}

// TextFormatterOption is an option for configuring TextFormatter.
type TextFormatterOption func(*TextFormatter)

// WithSource sets the source text used to render excerpts under each
// diagnostic.
func WithSource(src string) TextFormatterOption {
	return func(tf *TextFormatter) {
		tf.src = src
	}
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(opts ...TextFormatterOption) *TextFormatter {
	tf := &TextFormatter{}
	for _, opt := range opts {
		opt(tf)
	}
	return tf
}

// Format formats a single diagnostic as a "location: severity: message"
// header followed, when source text is available, by an excerpt with carets
// under every interval of the location.
func (tf *TextFormatter) Format(d Diagnostic) string {
	var buf bytes.Buffer

	if loc := d.Location.String(); loc != "" {
		buf.WriteString(loc)
		buf.WriteString(": ")
	}
	buf.WriteString(d.Severity.String())
	buf.WriteString(": ")
	buf.WriteString(d.Message)

	if tf.src != "" && !d.Location.Empty() {
		buf.WriteByte('\n')
		tf.writeExcerpt(&buf, d.Location)
	}

	return buf.String()
}

// FormatAll formats multiple diagnostics, separating them with blank lines.
func (tf *TextFormatter) FormatAll(ds []Diagnostic) string {
	if len(ds) == 0 {
		return ""
	}

	var buf bytes.Buffer
	for i, d := range ds {
		buf.WriteString(tf.Format(d))
		if i < len(ds)-1 {
			buf.WriteString("\n\n")
		}
	}
	return buf.String()
}

// writeExcerpt renders the source line of each interval with a gutter and a
// caret run under the covered columns. Split locations produce one block per
// piece, so the gaps between the pieces stay unmarked.
func (tf *TextFormatter) writeExcerpt(buf *bytes.Buffer, r source.Range) {
	lines := strings.Split(tf.src, "\n")

	last, _ := r.Last()
	gutter := len(fmt.Sprint(last.Line))

	for _, iv := range r {
		lineno := iv.Start.Line
		if lineno < 1 || lineno > len(lines) {
			continue
		}
		line := lines[lineno-1]

		prefix, covered := splitLineAt(line, iv)

		fmt.Fprintf(buf, " %*d | %s\n", gutter, lineno, expandTabs(line, 1))
		fmt.Fprintf(buf, " %s | %s%s\n",
			strings.Repeat(" ", gutter),
			strings.Repeat(" ", runewidth.StringWidth(expandTabs(prefix, 1))),
			carets(covered, prefix),
		)
	}
}

// splitLineAt splits a source line into the text before the interval and the
// text the interval covers on that line, by replaying column advancement.
func splitLineAt(line string, iv source.Interval) (prefix, covered string) {
	col := 1
	from, to := len(line), len(line)
	for idx, r := range line {
		if col >= iv.Start.Column && from == len(line) {
			from = idx
		}
		endCol := iv.End.Column
		if iv.End.Line > iv.Start.Line {
			endCol = int(^uint(0) >> 1) // covers to end of line
		}
		if col >= endCol && to == len(line) {
			to = idx
			break
		}
		col = advanceColumn(col, r)
	}
	if from > to {
		from = to
	}
	return line[:from], line[from:to]
}

func advanceColumn(col int, r rune) int {
	if r == '\t' {
		return (col+source.Tabstop-1)/source.Tabstop*source.Tabstop + 1
	}
	return col + 1
}

// carets returns the caret run for the covered text, at least one caret so
// empty intervals still point somewhere.
func carets(covered, prefix string) string {
	w := runewidth.StringWidth(expandTabsFrom(covered, prefix))
	if w < 1 {
		w = 1
	}
	return strings.Repeat("^", w)
}

// expandTabs expands tabs to spaces at the package tabstop, starting at the
// given column, so excerpts align with the columns diagnostics report.
func expandTabs(s string, col int) string {
	var out strings.Builder
	for _, r := range s {
		if r == '\t' {
			next := advanceColumn(col, r)
			out.WriteString(strings.Repeat(" ", next-col))
			col = next
			continue
		}
		out.WriteRune(r)
		col = advanceColumn(col, r)
	}
	return out.String()
}

// expandTabsFrom expands tabs in s as if it started right after prefix.
func expandTabsFrom(s, prefix string) string {
	col := 1
	for _, r := range prefix {
		col = advanceColumn(col, r)
	}
	return expandTabs(s, col)
}

// JSONFormatter formats diagnostics as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// DiagnosticJSON represents a diagnostic in JSON form.
type DiagnosticJSON struct {
	Severity  string         `json:"severity"`
	Message   string         `json:"message"`
	Location  string         `json:"location,omitempty"`
	Intervals []IntervalJSON `json:"intervals,omitempty"`
}

// IntervalJSON represents one covered interval in JSON form.
type IntervalJSON struct {
	Filename    string `json:"filename,omitempty"`
	StartLine   int    `json:"startLine"`
	StartColumn int    `json:"startColumn"`
	EndLine     int    `json:"endLine"`
	EndColumn   int    `json:"endColumn"`
}

// Format formats a single diagnostic as JSON.
func (jf *JSONFormatter) Format(d Diagnostic) string {
	data, _ := json.Marshal(jf.toJSON(d))
	return string(data)
}

// FormatAll formats multiple diagnostics as an indented JSON array.
func (jf *JSONFormatter) FormatAll(ds []Diagnostic) string {
	out := make([]DiagnosticJSON, 0, len(ds))
	for _, d := range ds {
		out = append(out, jf.toJSON(d))
	}
	data, _ := json.MarshalIndent(out, "", "  ")
	return string(data)
}

func (jf *JSONFormatter) toJSON(d Diagnostic) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity: d.Severity.String(),
		Message:  d.Message,
		Location: d.Location.String(),
	}
	for _, iv := range d.Location {
		out.Intervals = append(out.Intervals, IntervalJSON{
			Filename:    iv.Start.Filename,
			StartLine:   iv.Start.Line,
			StartColumn: iv.Start.Column,
			EndLine:     iv.End.Line,
			EndColumn:   iv.End.Column,
		})
	}
	return out
}
