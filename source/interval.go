package source

import (
	"fmt"
	"unicode/utf8"
)

// Interval represents a contiguous half-open span [Start, End) between two
// Positions of the same source. End is excluded from the span.
type Interval struct {
	Start Position
	End   Position
}

// NewInterval returns the interval between two positions, ordering them so
// the result is valid.
func NewInterval(p1, p2 Position) Interval {
	return Interval{Start: minPos(p1, p2), End: maxPos(p1, p2)}
}

// Valid reports whether both endpoints satisfy the Position invariant and
// Start does not come after End.
func (i Interval) Valid() bool {
	return i.Start.Valid() && i.End.Valid() && !i.End.Before(i.Start)
}

// Len returns the number of characters covered by the interval.
func (i Interval) Len() int {
	return i.End.Offset - i.Start.Offset
}

// Empty reports whether the interval covers no characters.
func (i Interval) Empty() bool { return i.Len() == 0 }

// Fuse returns the minimal interval covering both i1 and i2, closing any gap
// between them. Both intervals must belong to the same source; this is not
// checked.
func Fuse(i1, i2 Interval) Interval {
	return Interval{
		Start: minPos(i1.Start, i2.Start),
		End:   maxPos(i1.End, i2.End),
	}
}

// Take returns the sub-interval covering the prefix s, where s is the
// literal text starting at i.Start. The character length of s must not
// exceed i.Len(); a longer prefix indicates scanner bookkeeping gone wrong
// and panics with an internal error.
func Take(s string, i Interval) Interval {
	return Interval{Start: i.Start, End: splitPoint(s, i)}
}

// Drop returns the sub-interval remaining after the prefix s, under the same
// precondition as Take. For any valid split,
// Fuse(Take(s, i), Drop(s, i)) == i.
func Drop(s string, i Interval) Interval {
	return Interval{Start: splitPoint(s, i), End: i.End}
}

func splitPoint(s string, i Interval) Position {
	if utf8.RuneCountInString(s) > i.Len() {
		panic(fmt.Sprintf("internal error: prefix %q is longer than interval %v", s, i))
	}
	return i.Start.AdvanceString(s)
}

// String renders the interval as "file:l1,c1-l2,c2", omitting the file
// prefix when the source name is empty and collapsing to "l1,c1-c2" when
// both endpoints share a line.
func (i Interval) String() string {
	prefix := ""
	if i.Start.Filename != "" {
		prefix = i.Start.Filename + ":"
	}
	if i.Start.Line == i.End.Line {
		return fmt.Sprintf("%s%d,%d-%d", prefix, i.Start.Line, i.Start.Column, i.End.Column)
	}
	return fmt.Sprintf("%s%d,%d-%d,%d", prefix, i.Start.Line, i.Start.Column, i.End.Line, i.End.Column)
}
