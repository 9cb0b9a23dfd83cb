package view

// Range is an immutable [start, end] window into a stream's address space.
// Construct one with NewRange; a different window needs a new Range.
type Range struct {
	start int64
	end   int64
}

// NewRange builds a Range from two absolute positions. Reversed bounds are
// swapped so that start <= end always holds, and negative positions are
// clamped to zero.
func NewRange(start, end int64) Range {
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if end < 0 {
		end = 0
	}
	return Range{start: start, end: end}
}

// Start returns the inclusive lower bound.
func (r Range) Start() int64 { return r.start }

// End returns the inclusive upper bound.
func (r Range) End() int64 { return r.end }

// Len returns the number of addressable offsets, end - start.
func (r Range) Len() int64 { return r.end - r.start }

// Contains reports whether pos lies within [start, end].
func (r Range) Contains(pos int64) bool {
	return pos >= r.start && pos <= r.end
}
