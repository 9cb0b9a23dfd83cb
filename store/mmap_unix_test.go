//go:build unix

package store

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newMappedFile(t *testing.T, contents []byte) *MMap {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapped.bin")
	require.NoError(t, os.WriteFile(path, contents, 0o644))
	m, err := OpenMMap(path)
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestMMapReadWriteSeek(t *testing.T) {
	m := newMappedFile(t, []byte("ABCDEFGH"))
	require.Equal(t, int64(8), m.Size())

	buf := make([]byte, 4)
	_, err := io.ReadFull(m, buf)
	require.NoError(t, err)
	require.Equal(t, []byte("ABCD"), buf)

	_, err = m.Seek(2, io.SeekStart)
	require.NoError(t, err)
	n, err := m.Write([]byte("xy"))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = m.Seek(0, io.SeekStart)
	require.NoError(t, err)
	all := make([]byte, 8)
	_, err = io.ReadFull(m, all)
	require.NoError(t, err)
	require.Equal(t, []byte("ABxyEFGH"), all)
}

func TestMMapWritesReachDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapped.bin")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))

	m, err := OpenMMap(path)
	require.NoError(t, err)

	_, err = m.Seek(4, io.SeekStart)
	require.NoError(t, err)
	_, err = m.Write([]byte("XX"))
	require.NoError(t, err)
	require.NoError(t, m.Sync())
	require.NoError(t, m.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("0123XX6789"), data)
}

func TestMMapCannotGrow(t *testing.T) {
	m := newMappedFile(t, []byte("abcd"))

	_, err := m.Seek(2, io.SeekStart)
	require.NoError(t, err)
	n, err := m.Write([]byte("wxyz"))
	require.Equal(t, 2, n)
	require.ErrorIs(t, err, io.ErrShortWrite)

	// Exactly at the end: nothing fits.
	n, err = m.Write([]byte("a"))
	require.Equal(t, 0, n)
	require.ErrorIs(t, err, io.ErrShortWrite)
}

func TestMMapCloseIdempotent(t *testing.T) {
	m := newMappedFile(t, []byte("abcd"))
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	_, err := m.Read(make([]byte, 1))
	require.ErrorIs(t, err, ErrClosed)
}

func TestMMapEmptyFile(t *testing.T) {
	m := newMappedFile(t, nil)
	require.Equal(t, int64(0), m.Size())

	n, err := m.Read(make([]byte, 1))
	require.Equal(t, 0, n)
	require.Equal(t, io.EOF, err)
	require.NoError(t, m.Sync())
}

func TestMMapReadAt(t *testing.T) {
	m := newMappedFile(t, []byte("abcdef"))

	p := make([]byte, 2)
	n, err := m.ReadAt(p, 3)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte("de"), p)

	n, err = m.ReadAt(p, 5)
	require.Equal(t, 1, n)
	require.Equal(t, io.EOF, err)

	require.NoError(t, m.Close())
	_, err = m.ReadAt(p, 0)
	require.ErrorIs(t, err, ErrClosed)
}
