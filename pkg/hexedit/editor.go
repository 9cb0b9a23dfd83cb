package hexedit

import (
	"errors"
	"io"

	"github.com/joshuapare/hexkit/edit"
	"github.com/joshuapare/hexkit/internal/seekutil"
	"github.com/joshuapare/hexkit/view"
)

// ErrDetached indicates use of an editor after Detach returned its store.
var ErrDetached = errors.New("hexedit: editor is detached from its store")

// Editor combines one byte store with one undo/redo log.
//
// The editor writes to the store directly; hand it a copy when the original
// must stay untouched until SaveTo.
type Editor struct {
	store io.ReadWriteSeeker
	log   *edit.Log
}

// New returns an editor owning store. The store must not be used by anyone
// else until Detach hands it back.
func New(store io.ReadWriteSeeker) *Editor {
	return &Editor{store: store, log: edit.NewLog()}
}

// Detach returns the store and renders the editor unusable. The action log
// survives and stays readable through History.
func (e *Editor) Detach() io.ReadWriteSeeker {
	s := e.store
	e.store = nil
	return s
}

// History returns the editor's action log.
func (e *Editor) History() *edit.Log { return e.log }

// Position returns the store's current absolute position.
func (e *Editor) Position() (int64, error) {
	if e.store == nil {
		return 0, ErrDetached
	}
	return seekutil.Position(e.store)
}

// Length returns the store's total length via seek probes, restoring the
// prior position.
func (e *Editor) Length() (int64, error) {
	if e.store == nil {
		return 0, ErrDetached
	}
	return seekutil.Length(e.store)
}

// AddAction applies a and records it in the history. On failure nothing is
// recorded and the caller still holds the action.
func (e *Editor) AddAction(a edit.Action, ctx any) error {
	if e.store == nil {
		return ErrDetached
	}
	return e.log.Add(a, e.store, ctx)
}

// Edit replaces len(data) bytes at position with data, undoably.
func (e *Editor) Edit(position int64, data []byte, ctx any) error {
	return e.AddAction(edit.NewByteEdit(position, data), ctx)
}

// Undo reverses the most recent edit. It returns (false, nil) when there is
// nothing to undo.
func (e *Editor) Undo(ctx any) (bool, error) {
	if e.store == nil {
		return false, ErrDetached
	}
	return e.log.Undo(e.store, ctx)
}

// Redo re-applies the most recently undone edit. It returns (false, nil)
// when there is nothing to redo.
func (e *Editor) Redo(ctx any) (bool, error) {
	if e.store == nil {
		return false, ErrDetached
	}
	return e.log.Redo(e.store, ctx)
}

// Read reads from the store's current position.
func (e *Editor) Read(p []byte) (int, error) {
	if e.store == nil {
		return 0, ErrDetached
	}
	return e.store.Read(p)
}

// Seek moves the store's absolute position.
func (e *Editor) Seek(offset int64, whence int) (int64, error) {
	if e.store == nil {
		return 0, ErrDetached
	}
	return e.store.Seek(offset, whence)
}

// ReadAt seeks to position and fills p exactly, failing with
// io.ErrUnexpectedEOF when the store runs out first.
func (e *Editor) ReadAt(position int64, p []byte) error {
	if _, err := e.Seek(position, io.SeekStart); err != nil {
		return err
	}
	_, err := io.ReadFull(e, p)
	return err
}

// ReadAmount reads up to amount bytes from the current position. Fewer
// bytes than requested is not an error; it means the store was exhausted.
func (e *Editor) ReadAmount(amount int) ([]byte, error) {
	if e.store == nil {
		return nil, ErrDetached
	}
	buffer := make([]byte, 0, amount)
	for len(buffer) < amount {
		n, err := e.store.Read(buffer[len(buffer):amount])
		buffer = buffer[:len(buffer)+n]
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
	}
	return buffer, nil
}

// ReadAmountAt seeks to position and reads up to amount bytes.
func (e *Editor) ReadAmountAt(position int64, amount int) ([]byte, error) {
	if _, err := e.Seek(position, io.SeekStart); err != nil {
		return nil, err
	}
	return e.ReadAmount(amount)
}

// View returns a transient constrained window over the store. The view
// borrows the store: do not use the editor until the view is discarded.
func (e *Editor) View(r view.Range) (*view.Constrained, error) {
	if e.store == nil {
		return nil, ErrDetached
	}
	return view.New(e.store, r)
}

// SaveTo seeks the store to the start and streams every byte to w. This is
// the only path that externalizes edits. Copying starts wherever w
// currently is; SaveTo does not seek the destination.
func (e *Editor) SaveTo(w io.Writer) (int64, error) {
	if e.store == nil {
		return 0, ErrDetached
	}
	if _, err := e.store.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return io.Copy(w, e.store)
}
