package view

import (
	"fmt"
	"io"

	"github.com/joshuapare/hexkit/internal/buf"
	"github.com/joshuapare/hexkit/internal/seekutil"
)

// Constrained clamps reads, writes, and seeks on a seekable stream to a
// Range. Offsets reported by the view are relative to the range start.
//
// The view borrows the stream: after any successful operation the stream's
// absolute position lies inside the range. When an operation fails, the
// stream position is unspecified and the caller must re-seek before relying
// on it.
type Constrained struct {
	s io.ReadSeeker
	r Range
}

// New wraps s in a view constrained to r. If the stream's current position
// is outside r it is seeked to the range start; otherwise it is left alone.
func New(s io.ReadSeeker, r Range) (*Constrained, error) {
	pos, err := seekutil.Position(s)
	if err != nil {
		return nil, err
	}
	if !r.Contains(pos) {
		if _, err := s.Seek(r.Start(), io.SeekStart); err != nil {
			return nil, err
		}
	}
	return NewUnchecked(s, r), nil
}

// NewUnchecked wraps s without probing its position. The caller asserts the
// stream already sits inside r.
func NewUnchecked(s io.ReadSeeker, r Range) *Constrained {
	return &Constrained{s: s, r: r}
}

// Inner returns the wrapped stream.
func (c *Constrained) Inner() io.ReadSeeker { return c.s }

// Range returns the view's window.
func (c *Constrained) Range() Range { return c.r }

// Limit returns the number of addressable offsets in the view.
func (c *Constrained) Limit() int64 { return c.r.Len() }

// PositionFromOffset converts a view offset into an absolute stream
// position. ok is false when the addition overflows.
func (c *Constrained) PositionFromOffset(offset int64) (int64, bool) {
	if offset < 0 {
		return 0, false
	}
	return buf.AddInt64(c.r.Start(), offset)
}

// PositionIntoOffset converts an absolute stream position into a view
// offset, failing when the position lies outside the range.
func (c *Constrained) PositionIntoOffset(position int64) (int64, error) {
	switch {
	case position < c.r.Start():
		return 0, ErrOutOfLowerBounds
	case position > c.r.End():
		return 0, ErrOutOfUpperBounds
	default:
		return position - c.r.Start(), nil
	}
}

// remaining returns how many bytes may still be consumed before the range
// end, based on the stream's live position.
func (c *Constrained) remaining() (int64, error) {
	pos, err := seekutil.Position(c.s)
	if err != nil {
		return 0, err
	}
	offset, err := c.PositionIntoOffset(pos)
	if err != nil {
		return 0, err
	}
	return c.r.Len() - offset, nil
}

// Read reads into p, never past the range end. At the end of the window it
// returns (0, io.EOF).
func (c *Constrained) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	remaining, err := c.remaining()
	if err != nil {
		return 0, err
	}
	max := remaining
	if int64(len(p)) < max {
		max = int64(len(p))
	}
	if max == 0 {
		return 0, io.EOF
	}
	return c.s.Read(p[:max])
}

// Write writes the prefix of p that fits before the range end. At exactly
// the range end it reports (0, nil); when only part of p fits, the short
// count is returned with a nil error. This intentionally relaxes the
// io.Writer short-write convention: callers that need whole-buffer writes
// must compare the count to len(p) and treat a shortfall as out of capacity.
// The underlying stream must implement io.Writer.
func (c *Constrained) Write(p []byte) (int, error) {
	w, ok := c.s.(io.Writer)
	if !ok {
		return 0, ErrNotWritable
	}
	pos, err := seekutil.Position(c.s)
	if err != nil {
		return 0, err
	}
	if pos >= c.r.End() {
		return 0, nil
	}
	remaining, err := c.remaining()
	if err != nil {
		return 0, err
	}
	max := remaining
	if int64(len(p)) < max {
		max = int64(len(p))
	}
	return w.Write(p[:max])
}

// Seek moves the view's offset. io.SeekStart is relative to the range start
// (negative offsets are rejected), io.SeekCurrent to the stream's live
// position, io.SeekEnd to the range end. Targets past the range end clamp to
// the end; targets past the stream's true length clamp to that length. All
// arithmetic is checked and a negative or overflowing target yields
// ErrInvalidSeek. The returned offset is derived from the stream's actual
// resulting position, not the requested target.
func (c *Constrained) Seek(offset int64, whence int) (int64, error) {
	var base, delta int64
	switch whence {
	case io.SeekCurrent:
		pos, err := seekutil.Position(c.s)
		if err != nil {
			return 0, err
		}
		base, delta = pos, offset
	case io.SeekEnd:
		base, delta = c.r.End(), offset
	case io.SeekStart:
		if offset < 0 {
			return 0, ErrInvalidSeek
		}
		b, ok := buf.AddInt64(c.r.Start(), offset)
		if !ok {
			return 0, ErrInvalidSeek
		}
		base, delta = b, 0
	default:
		return 0, fmt.Errorf("view: invalid whence %d", whence)
	}

	target, ok := buf.ApplyDelta(base, delta)
	if !ok {
		return 0, ErrInvalidSeek
	}
	// Never grant access past the window, and never past the stream's real
	// length when the range overshoots the stream.
	if target > c.r.End() {
		target = c.r.End()
	}
	length, err := seekutil.Length(c.s)
	if err != nil {
		return 0, err
	}
	if target > length {
		target = length
	}

	resulting, err := c.s.Seek(target, io.SeekStart)
	if err != nil {
		return 0, err
	}
	return c.PositionIntoOffset(resulting)
}
