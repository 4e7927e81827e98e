// Package source tracks where tokens, lexemes and syntax nodes came from in
// the original text, so diagnostics can point precisely at user code.
//
// The package is built from three layered value types:
//
//   - Position: a single point in one named source.
//   - Interval: a contiguous half-open span between two Positions.
//   - Range: an ordered, disjoint sequence of Intervals, the general
//     location type, able to represent split spans such as the pieces of a
//     qualified name.
//
// All three are immutable values. A scanner advances a Position per consumed
// character and wraps consumed spans as Intervals; a parser fuses Intervals
// and Ranges bottom-up into per-node Ranges via the Ranged capability.
package source

import (
	"fmt"
	"strings"
)

// Tabstop is the fixed column alignment used when advancing past a tab.
const Tabstop = 8

// Position represents a single point in a source.
//
// Offset is the 1-based character (rune) index within the source and is the
// sole identity-bearing coordinate: two Positions compare equal or ordered
// only by (Filename, Offset). Line and Column are advisory display data kept
// in sync by Advance and must not be relied upon for identity.
type Position struct {
	Filename string
	Offset   int // Character offset (1-indexed)
	Line     int // Line number (1-indexed)
	Column   int // Column number (1-indexed)
}

// Start returns the Position at the beginning of the named source.
func Start(filename string) Position {
	return Position{Filename: filename, Offset: 1, Line: 1, Column: 1}
}

// Valid reports whether the Position satisfies the Position invariant.
func (p Position) Valid() bool {
	return p.Offset > 0 && p.Line >= 1 && p.Column >= 1
}

// Compare orders two Positions by (Filename, Offset) only.
// It returns -1 if p is before q, 0 if they denote the same point, 1 otherwise.
func (p Position) Compare(q Position) int {
	if c := strings.Compare(p.Filename, q.Filename); c != 0 {
		return c
	}
	switch {
	case p.Offset < q.Offset:
		return -1
	case p.Offset > q.Offset:
		return 1
	}
	return 0
}

// Before reports whether p is strictly before q.
func (p Position) Before(q Position) bool { return p.Compare(q) < 0 }

// Same reports whether p and q denote the same point. Unlike ==, it ignores
// the advisory Line and Column fields.
func (p Position) Same(q Position) bool { return p.Compare(q) == 0 }

// Advance returns the Position one character past p, where r is the
// character consumed. The offset always advances by one; a tab moves the
// column to the next multiple of Tabstop plus one, a newline starts a fresh
// line, and any other character advances the column by one.
func (p Position) Advance(r rune) Position {
	p.Offset++
	switch r {
	case '\t':
		p.Column = (p.Column+Tabstop-1)/Tabstop*Tabstop + 1
	case '\n':
		p.Line++
		p.Column = 1
	default:
		p.Column++
	}
	return p
}

// AdvanceString folds Advance over the characters of s, left to right.
func (p Position) AdvanceString(s string) Position {
	for _, r := range s {
		p = p.Advance(r)
	}
	return p
}

// Backup undoes a single Advance for a character that was neither a tab nor
// a newline. Backing up over a tab or newline is a caller error; the result
// is unspecified.
func (p Position) Backup() Position {
	p.Offset--
	p.Column--
	return p
}

// String renders the position as "line,col", or "file:line,col" when the
// source name is non-empty.
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d,%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d,%d", p.Line, p.Column)
}

// GoString returns a Go-syntax representation of the position.
func (p Position) GoString() string {
	return fmt.Sprintf("Position{Filename: %q, Offset: %d, Line: %d, Column: %d}", p.Filename, p.Offset, p.Line, p.Column)
}

func minPos(p, q Position) Position {
	if q.Before(p) {
		return q
	}
	return p
}

func maxPos(p, q Position) Position {
	if p.Before(q) {
		return q
	}
	return p
}
