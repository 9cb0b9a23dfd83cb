package edit

import (
	"io"

	"github.com/joshuapare/hexkit/internal/buf"
	"github.com/joshuapare/hexkit/internal/seekutil"
)

// ByteEdit is a fixed-length in-place byte substitution: NewData replaces
// the bytes at Position. The overwritten bytes are captured on the first
// successful Apply so Unapply can restore them. An edit whose end would
// reach or exceed the store's current length is rejected; ByteEdit never
// grows the store.
type ByteEdit struct {
	Position int64
	NewData  []byte

	// prev holds the pre-edit bytes; nil until the first successful Apply.
	prev []byte
}

// NewByteEdit builds an unapplied edit that writes data at position.
func NewByteEdit(position int64, data []byte) *ByteEdit {
	return &ByteEdit{Position: position, NewData: data}
}

// Previous returns the bytes captured by the first successful Apply, or nil
// if the edit has never been applied.
func (e *ByteEdit) Previous() []byte { return e.prev }

// Apply writes NewData at Position, capturing the overwritten bytes first.
// It fails with ErrInvalidEdit, mutating nothing, when the edit would reach
// or exceed the store's current length.
func (e *ByteEdit) Apply(rw io.ReadWriteSeeker, _ any) error {
	length, err := seekutil.Length(rw)
	if err != nil {
		return err
	}
	end, ok := buf.AddInt64(e.Position, int64(len(e.NewData)))
	if e.Position < 0 || !ok || end >= length {
		return ErrInvalidEdit
	}

	if _, err := rw.Seek(e.Position, io.SeekStart); err != nil {
		return err
	}
	if e.prev == nil {
		prev := make([]byte, len(e.NewData))
		if _, err := io.ReadFull(rw, prev); err != nil {
			return err
		}
		if _, err := rw.Seek(e.Position, io.SeekStart); err != nil {
			return err
		}
		e.prev = prev
	}
	if _, err := rw.Write(e.NewData); err != nil {
		return err
	}
	return nil
}

// Unapply restores the bytes captured by Apply.
func (e *ByteEdit) Unapply(rw io.ReadWriteSeeker, _ any) error {
	if _, err := rw.Seek(e.Position, io.SeekStart); err != nil {
		return err
	}
	if _, err := rw.Write(e.prev); err != nil {
		return err
	}
	return nil
}

// MemoryUsage reports the retained bytes: the position word plus both byte
// slices.
func (e *ByteEdit) MemoryUsage() int {
	return 8 + len(e.NewData) + len(e.prev)
}
