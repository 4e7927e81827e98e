package source

// Ranged is implemented by any value that knows its location in the source.
type Ranged interface {
	Range() Range
}

// RangeSetter is implemented by values whose location can be replaced.
// After SetRange(r), Range() must report r.
type RangeSetter interface {
	SetRange(Range)
}

// WithRange is an embeddable struct implementing Ranged and RangeSetter.
// Syntax-tree node types embed it to carry their location.
type WithRange struct {
	rng Range
}

// Range returns the stored location.
func (w WithRange) Range() Range { return w.rng }

// SetRange replaces the stored location.
func (w *WithRange) SetRange(r Range) { w.rng = r }

// FuseRanged returns the fused location of the given parts, folding
// FuseRanges right to left. It is the default location of an aggregate: a
// pair fuses both components, larger tuples reduce to nested pairs.
func FuseRanged(parts ...Ranged) Range {
	r := NoRange
	for k := len(parts) - 1; k >= 0; k-- {
		r = FuseRanges(parts[k].Range(), r)
	}
	return r
}

// RangeOfSlice returns the fused location of a sequence of elements,
// folding FuseRanges right to left. An empty sequence yields NoRange.
func RangeOfSlice[T Ranged](xs []T) Range {
	r := NoRange
	for k := len(xs) - 1; k >= 0; k-- {
		r = FuseRanges(xs[k].Range(), r)
	}
	return r
}

// CopyRange copies src's location onto dst.
func CopyRange(dst RangeSetter, src Ranged) {
	dst.SetRange(src.Range())
}
