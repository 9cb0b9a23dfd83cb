package store

import (
	"fmt"
	"io"

	"github.com/joshuapare/hexkit/internal/buf"
)

// Mem is an in-memory seekable byte store. Writes past the current end
// zero-fill the gap and grow the buffer; Truncate shrinks or zero-extends.
// The zero value is an empty store ready for use.
type Mem struct {
	data []byte
	pos  int64
}

// NewMem returns a store owning data. The caller must not use data
// afterwards.
func NewMem(data []byte) *Mem {
	return &Mem{data: data}
}

// Bytes returns the store's current contents. The slice is valid until the
// next Write or Truncate.
func (m *Mem) Bytes() []byte { return m.data }

// Size returns the store's current length.
func (m *Mem) Size() int64 { return int64(len(m.data)) }

// Read reads from the current position, returning io.EOF at the end.
func (m *Mem) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.data)) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, m.data[m.pos:])
	m.pos += int64(n)
	return n, nil
}

// ReadAt reads len(p) bytes starting at off without moving the position.
// It implements io.ReaderAt: a short read returns io.EOF.
func (m *Mem) ReadAt(p []byte, off int64) (int, error) {
	if src, ok := buf.Slice(m.data, off, int64(len(p))); ok {
		return copy(p, src), nil
	}
	if off < 0 || off > int64(len(m.data)) {
		return 0, fmt.Errorf("store: invalid read offset %d", off)
	}
	return copy(p, m.data[off:]), io.EOF
}

// Write writes at the current position, growing the buffer as needed. A
// position beyond the end zero-fills the gap first.
func (m *Mem) Write(p []byte) (int, error) {
	if gap := m.pos - int64(len(m.data)); gap > 0 {
		m.data = append(m.data, make([]byte, gap)...)
	}
	n := copy(m.data[m.pos:], p)
	if n < len(p) {
		m.data = append(m.data, p[n:]...)
		n = len(p)
	}
	m.pos += int64(n)
	return n, nil
}

// Seek sets the position. Seeking past the end is allowed; seeking before
// the start is not.
func (m *Mem) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = m.pos
	case io.SeekEnd:
		base = int64(len(m.data))
	default:
		return 0, fmt.Errorf("store: invalid whence %d", whence)
	}
	pos, ok := buf.ApplyDelta(base, offset)
	if !ok {
		return 0, ErrInvalidSeek
	}
	m.pos = pos
	return pos, nil
}

// Truncate resizes the store to size bytes, zero-extending when growing.
// A position beyond the new end is clamped to the end.
func (m *Mem) Truncate(size int64) error {
	if size < 0 {
		return ErrInvalidSize
	}
	switch {
	case size < int64(len(m.data)):
		m.data = m.data[:size]
	case size > int64(len(m.data)):
		m.data = append(m.data, make([]byte, size-int64(len(m.data)))...)
	}
	if m.pos > size {
		m.pos = size
	}
	return nil
}
