package source

import "golang.org/x/exp/slices"

// Range is an ordered sequence of disjoint, non-adjacent Intervals. It is
// the general location type: unlike a single Interval it can represent split
// spans, such as the pieces of a qualified name.
//
// A Range is canonical when it is empty, or when every element is a valid
// Interval and each interval's End is strictly before the next interval's
// Start. Every operation in this package produces canonical Ranges from
// canonical inputs. The empty Range means "no location known".
type Range []Interval

// NoRange is the empty Range.
var NoRange Range

// Valid reports whether the Range is canonical: empty, or all intervals
// valid and strictly separated.
func (r Range) Valid() bool {
	for k, iv := range r {
		if !iv.Valid() {
			return false
		}
		if k > 0 && !r[k-1].End.Before(iv.Start) {
			return false
		}
	}
	return true
}

// Empty reports whether no location is known.
func (r Range) Empty() bool { return len(r) == 0 }

// NewRange returns the one-interval Range between two positions, ordering
// them as needed.
func NewRange(p1, p2 Position) Range {
	return Range{NewInterval(p1, p2)}
}

// FromInterval returns the Range covering exactly i.
func FromInterval(i Interval) Range {
	return Range{i}
}

// Interval returns the outer bound [first.Start, last.End) of the Range: a
// single interval that may span gaps not actually covered. It reports false
// for an empty Range.
func (r Range) Interval() (Interval, bool) {
	if len(r) == 0 {
		return Interval{}, false
	}
	return Interval{Start: r[0].Start, End: r[len(r)-1].End}, true
}

// First returns the start of the first interval, or false if the Range is
// empty.
func (r Range) First() (Position, bool) {
	if len(r) == 0 {
		return Position{}, false
	}
	return r[0].Start, true
}

// Last returns the end of the last interval, or false if the Range is empty.
func (r Range) Last() (Position, bool) {
	if len(r) == 0 {
		return Position{}, false
	}
	return r[len(r)-1].End, true
}

// FuseRanges merges two canonical Ranges into one canonical Range covering
// exactly the union of positions in a and b. Unlike Fuse on intervals it
// preserves gaps between non-overlapping inputs; overlapping or touching
// runs coalesce transitively. NoRange is the identity element.
//
// The merge is a single sweep over both sorted sequences with a
// pending-merge carry, O(len(a)+len(b)).
func FuseRanges(a, b Range) Range {
	if len(a) == 0 {
		return slices.Clone(b)
	}
	if len(b) == 0 {
		return slices.Clone(a)
	}

	out := make(Range, 0, len(a)+len(b))

	// Clone so replacing a head with a fused carry cannot touch the inputs.
	as, bs := slices.Clone(a), slices.Clone(b)

	for len(as) > 0 && len(bs) > 0 {
		i, j := as[0], bs[0]
		switch {
		case i.End.Before(j.Start):
			// i is strictly before j: emit it unchanged.
			out = append(out, i)
			as = as[1:]
		case j.End.Before(i.Start):
			out = append(out, j)
			bs = bs[1:]
		default:
			// Overlap or touch. The interval that ends earlier is consumed;
			// the fused interval replaces the other head so it can keep
			// absorbing subsequent intervals from the consumed side.
			f := Fuse(i, j)
			if i.End.Before(j.End) {
				as = as[1:]
				bs[0] = f
			} else {
				bs = bs[1:]
				as[0] = f
			}
		}
	}

	out = append(out, as...)
	out = append(out, bs...)
	return out
}

// String renders the Range as its outer bound, or the empty string when no
// location is known.
func (r Range) String() string {
	iv, ok := r.Interval()
	if !ok {
		return ""
	}
	return iv.String()
}
