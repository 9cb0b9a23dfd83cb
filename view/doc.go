// Package view provides a range-constrained window over a seekable byte
// stream.
//
// # Overview
//
// A Constrained view wraps an io.ReadSeeker together with an absolute
// [start, end] Range and clamps every read, write, and seek to that window.
// Positions reported by the view are offsets relative to the range start,
// while the underlying stream keeps operating on absolute positions. All
// offset arithmetic is checked; out-of-range targets produce errors instead
// of wrapping.
//
// Views are transient: create one per operation or scope, use it, and let it
// go. The view borrows the stream for its own lifetime and guarantees that
// after any successful operation the stream position lies inside the range.
//
//	v, err := view.New(f, view.NewRange(0x1000, 0x2000))
//	if err != nil {
//	    return err
//	}
//	n, err := v.Read(buf) // never reads past 0x2000
package view
