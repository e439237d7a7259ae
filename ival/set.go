package ival

// Union returns the hull of i and j.
func (i Interval) Union(j Interval) Interval {
	return Interval{fmin(i.L, j.L), fmax(i.U, j.U)}
}

// Intersection returns the intersection of i and j, or Empty if they are disjoint.
func (i Interval) Intersection(j Interval) Interval {
	if r, ok := i.IntersectionStrict(j); ok {
		return r
	}
	return Empty
}

// IntersectionStrict returns the intersection of i and j and true, or false
// if they are disjoint.
func (i Interval) IntersectionStrict(j Interval) (Interval, bool) {
	r := Interval{fmax(i.L, j.L), fmin(i.U, j.U)}
	if r.L > r.U {
		return Interval{}, false
	}
	return r, true
}

// Min returns the bound-wise minimum [min(i.L, j.L), min(i.U, j.U)].
func (i Interval) Min(j Interval) Interval {
	return Interval{fmin(i.L, j.L), fmin(i.U, j.U)}
}

// Max returns the bound-wise maximum [max(i.L, j.L), max(i.U, j.U)].
func (i Interval) Max(j Interval) Interval {
	return Interval{fmax(i.L, j.L), fmax(i.U, j.U)}
}

// Norm returns the width i.U - i.L. It is negative for malformed intervals.
func (i Interval) Norm() float64 {
	return i.U - i.L
}

// NonZero returns false only if both bounds are exactly zero.
func (i Interval) NonZero() bool {
	return !(i.L == 0 && i.U == 0)
}

// Equal returns true if both bounds are equal. There is no tolerance, and
// Empty is not equal to itself.
func (i Interval) Equal(j Interval) bool {
	return i.L == j.L && i.U == j.U
}

// NotEqual returns !i.Equal(j).
func (i Interval) NotEqual(j Interval) bool {
	return !i.Equal(j)
}

// SubsetEq returns true if i is included in j.
func (i Interval) SubsetEq(j Interval) bool {
	return i.L >= j.L && i.U <= j.U
}

// SupsetEq returns true if i includes j.
func (i Interval) SupsetEq(j Interval) bool {
	return j.L >= i.L && j.U <= i.U
}

// Subset returns true if i lies strictly inside j, on both sides.
func (i Interval) Subset(j Interval) bool {
	return i.L > j.L && i.U < j.U
}

// Supset returns true if j lies strictly inside i, on both sides.
func (i Interval) Supset(j Interval) bool {
	return j.L > i.L && j.U < i.U
}
