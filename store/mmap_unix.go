//go:build unix

package store

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/hexkit/internal/buf"
)

// MMap is a memory-mapped read-write file store. The mapping is shared, so
// writes land in the file's pages directly; Sync flushes them to disk. The
// store has a fixed size: writes past the mapping are short and report
// io.ErrShortWrite.
type MMap struct {
	f    *os.File
	data []byte
	pos  int64
}

// OpenMMap maps the file at path for in-place editing.
func OpenMMap(path string) (*MMap, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &MMap{f: f}, nil
	}
	if size > int64(^uint(0)>>1) {
		f.Close()
		return nil, fmt.Errorf("store: file too large to map (%d bytes)", size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &MMap{f: f, data: data}, nil
}

// Size returns the mapped length.
func (m *MMap) Size() int64 { return int64(len(m.data)) }

// Read reads from the current position, returning io.EOF at the end of the
// mapping.
func (m *MMap) Read(p []byte) (int, error) {
	if m.f == nil {
		return 0, ErrClosed
	}
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
func (m *MMap) ReadAt(p []byte, off int64) (int, error) {
	if m.f == nil {
		return 0, ErrClosed
	}
	if src, ok := buf.Slice(m.data, off, int64(len(p))); ok {
		return copy(p, src), nil
	}
	if off < 0 || off > int64(len(m.data)) {
		return 0, fmt.Errorf("store: invalid read offset %d", off)
	}
	return copy(p, m.data[off:]), io.EOF
}

// Write writes at the current position. The mapping cannot grow: when p
// does not fit, the fitting prefix is written and io.ErrShortWrite is
// returned.
func (m *MMap) Write(p []byte) (int, error) {
	if m.f == nil {
		return 0, ErrClosed
	}
	if m.pos >= int64(len(m.data)) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.ErrShortWrite
	}
	n := copy(m.data[m.pos:], p)
	m.pos += int64(n)
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Seek sets the position. Seeking past the mapping is allowed; reads there
// return io.EOF and writes are short.
func (m *MMap) Seek(offset int64, whence int) (int64, error) {
	if m.f == nil {
		return 0, ErrClosed
	}
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

// Sync flushes written pages to disk.
func (m *MMap) Sync() error {
	if m.f == nil {
		return ErrClosed
	}
	if len(m.data) == 0 {
		return nil
	}
	return unix.Msync(m.data, unix.MS_SYNC)
}

// Close unmaps the file and closes it. Close is idempotent.
func (m *MMap) Close() error {
	if m.f == nil {
		return nil
	}
	var unmapErr error
	if m.data != nil {
		unmapErr = unix.Munmap(m.data)
		if errors.Is(unmapErr, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			unmapErr = nil
		}
		m.data = nil
	}
	closeErr := m.f.Close()
	m.f = nil
	if unmapErr != nil {
		return unmapErr
	}
	return closeErr
}
