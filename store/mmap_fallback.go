//go:build !unix

package store

import "os"

// MMap falls back to plain file I/O on platforms without mmap support. The
// API matches the unix implementation; writes go through the file directly.
type MMap struct {
	f *os.File
}

// OpenMMap opens the file at path for in-place editing.
func OpenMMap(path string) (*MMap, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return &MMap{f: f}, nil
}

// Size returns the file's current length.
func (m *MMap) Size() int64 {
	if m.f == nil {
		return 0
	}
	info, err := m.f.Stat()
	if err != nil {
		return 0
	}
	return info.Size()
}

func (m *MMap) Read(p []byte) (int, error) {
	if m.f == nil {
		return 0, ErrClosed
	}
	return m.f.Read(p)
}

func (m *MMap) ReadAt(p []byte, off int64) (int, error) {
	if m.f == nil {
		return 0, ErrClosed
	}
	return m.f.ReadAt(p, off)
}

func (m *MMap) Write(p []byte) (int, error) {
	if m.f == nil {
		return 0, ErrClosed
	}
	return m.f.Write(p)
}

func (m *MMap) Seek(offset int64, whence int) (int64, error) {
	if m.f == nil {
		return 0, ErrClosed
	}
	return m.f.Seek(offset, whence)
}

// Sync flushes pending writes to disk.
func (m *MMap) Sync() error {
	if m.f == nil {
		return ErrClosed
	}
	return m.f.Sync()
}

// Close closes the file. Close is idempotent.
func (m *MMap) Close() error {
	if m.f == nil {
		return nil
	}
	err := m.f.Close()
	m.f = nil
	return err
}
