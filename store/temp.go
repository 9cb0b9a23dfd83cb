package store

import (
	"io"
	"os"
)

// CopyTemp spools the contents of r into a new temporary file and returns
// it positioned at the start. This is the usual way to edit without
// touching the original until SaveTo: copy the source into a temp store,
// edit that, then stream it back out.
//
// The caller owns the file and should Close it and remove f.Name() when
// done.
func CopyTemp(r io.Reader) (*os.File, error) {
	f, err := os.CreateTemp("", "hexkit-*")
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, err
	}
	return f, nil
}
