package buf

import "math"

// AddInt64 adds a and b, returning ok = false when the result would overflow int64.
func AddInt64(a, b int64) (int64, bool) {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return 0, false
	case b < 0 && a < math.MinInt64-b:
		return 0, false
	default:
		return a + b, true
	}
}

// ApplyDelta applies a signed delta to a non-negative stream position.
// It returns ok = false when the result would be negative or the addition
// would overflow. Note that delta = math.MinInt64 always fails: it has no
// positive counterpart, so it can never produce a valid position.
func ApplyDelta(pos, delta int64) (int64, bool) {
	if pos < 0 {
		return 0, false
	}
	result, ok := AddInt64(pos, delta)
	if !ok || result < 0 {
		return 0, false
	}
	return result, true
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int64) ([]byte, bool) {
	if off < 0 || n < 0 || off > int64(len(b)) {
		return nil, false
	}
	end, ok := AddInt64(off, n)
	if !ok || end > int64(len(b)) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int64) bool {
	_, ok := Slice(b, off, n)
	return ok
}
