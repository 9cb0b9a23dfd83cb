package edit

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hexkit/store"
)

// flakyAction fails Apply/Unapply on demand, for cursor semantics tests.
type flakyAction struct {
	failApply   bool
	failUnapply bool
}

var errFlaky = errors.New("flaky")

func (f *flakyAction) Apply(io.ReadWriteSeeker, any) error {
	if f.failApply {
		return errFlaky
	}
	return nil
}

func (f *flakyAction) Unapply(io.ReadWriteSeeker, any) error {
	if f.failUnapply {
		return errFlaky
	}
	return nil
}

func (f *flakyAction) MemoryUsage() int { return 1 }

func TestLogAddUndoRedo(t *testing.T) {
	st := store.NewMem([]byte("ABCDEFGHIJ"))
	l := NewLog()

	require.NoError(t, l.Add(NewByteEdit(0, []byte("xx")), st, nil))
	require.NoError(t, l.Add(NewByteEdit(4, []byte("yy")), st, nil))
	require.Equal(t, []byte("xxCDyyGHIJ"), st.Bytes())
	require.Equal(t, 2, l.PastLen())
	require.Equal(t, 0, l.FutureLen())

	undone, err := l.Undo(st, nil)
	require.NoError(t, err)
	require.True(t, undone)
	require.Equal(t, []byte("xxCDEFGHIJ"), st.Bytes())
	require.Equal(t, 1, l.PastLen())
	require.Equal(t, 1, l.FutureLen())

	redone, err := l.Redo(st, nil)
	require.NoError(t, err)
	require.True(t, redone)
	require.Equal(t, []byte("xxCDyyGHIJ"), st.Bytes())
	require.Equal(t, 2, l.PastLen())
}

func TestLogFullUndoRestoresOriginal(t *testing.T) {
	original := []byte("The quick brown fox jumps over the lazy dog")
	st := store.NewMem(append([]byte(nil), original...))
	l := NewLog()

	edits := []*ByteEdit{
		NewByteEdit(0, []byte("the")),
		NewByteEdit(4, []byte("QUICK")),
		NewByteEdit(16, []byte("ox")),
		NewByteEdit(4, []byte("thick")),
	}
	for _, e := range edits {
		require.NoError(t, l.Add(e, st, nil))
	}
	require.NotEqual(t, original, st.Bytes())

	for !l.IsPastEmpty() {
		undone, err := l.Undo(st, nil)
		require.NoError(t, err)
		require.True(t, undone)
	}
	require.Equal(t, original, st.Bytes())

	// Nothing left to undo: a clean no-op, not an error.
	undone, err := l.Undo(st, nil)
	require.NoError(t, err)
	require.False(t, undone)
}

func TestLogNoopOnEmpty(t *testing.T) {
	st := store.NewMem([]byte("ABCDEFGHIJ"))
	l := NewLog()

	undone, err := l.Undo(st, nil)
	require.NoError(t, err)
	require.False(t, undone)

	redone, err := l.Redo(st, nil)
	require.NoError(t, err)
	require.False(t, redone)
}

func TestLogAddDiscardsFuture(t *testing.T) {
	st := store.NewMem([]byte("ABCDEFGHIJ"))
	l := NewLog()

	require.NoError(t, l.Add(NewByteEdit(0, []byte("11")), st, nil))
	require.NoError(t, l.Add(NewByteEdit(2, []byte("22")), st, nil))
	require.NoError(t, l.Add(NewByteEdit(4, []byte("33")), st, nil))

	_, err := l.Undo(st, nil)
	require.NoError(t, err)
	_, err = l.Undo(st, nil)
	require.NoError(t, err)
	require.Equal(t, 2, l.FutureLen())

	// A new edit after undos drops the entire redo branch.
	require.NoError(t, l.Add(NewByteEdit(6, []byte("44")), st, nil))
	require.Equal(t, 0, l.FutureLen())
	require.Equal(t, 2, l.PastLen())

	redone, err := l.Redo(st, nil)
	require.NoError(t, err)
	require.False(t, redone)
}

func TestLogFailedAddChangesNothing(t *testing.T) {
	st := store.NewMem([]byte("ABCDEFGHIJ"))
	l := NewLog()
	require.NoError(t, l.Add(NewByteEdit(0, []byte("x")), st, nil))
	_, err := l.Undo(st, nil)
	require.NoError(t, err)
	require.Equal(t, 1, l.FutureLen())

	// Rejected edit: the log keeps its future and the caller keeps the
	// action.
	rejected := NewByteEdit(100, []byte("zz"))
	err = l.Add(rejected, st, nil)
	require.ErrorIs(t, err, ErrInvalidEdit)
	require.Equal(t, 1, l.FutureLen())
	require.Equal(t, 0, l.PastLen())
	require.Nil(t, rejected.Previous())
}

func TestLogFailedUndoKeepsCursor(t *testing.T) {
	st := store.NewMem([]byte("ABCDEFGHIJ"))
	l := NewLog()
	a := &flakyAction{failUnapply: true}
	require.NoError(t, l.Add(a, st, nil))

	_, err := l.Undo(st, nil)
	require.ErrorIs(t, err, errFlaky)
	require.Equal(t, 1, l.PastLen())

	// The cursor did not move, so the same undo can be retried.
	a.failUnapply = false
	undone, err := l.Undo(st, nil)
	require.NoError(t, err)
	require.True(t, undone)
	require.Equal(t, 0, l.PastLen())
}

func TestLogFailedRedoKeepsCursor(t *testing.T) {
	st := store.NewMem([]byte("ABCDEFGHIJ"))
	l := NewLog()
	a := &flakyAction{}
	require.NoError(t, l.Add(a, st, nil))
	_, err := l.Undo(st, nil)
	require.NoError(t, err)

	a.failApply = true
	_, err = l.Redo(st, nil)
	require.ErrorIs(t, err, errFlaky)
	require.Equal(t, 1, l.FutureLen())

	a.failApply = false
	redone, err := l.Redo(st, nil)
	require.NoError(t, err)
	require.True(t, redone)
	require.True(t, l.IsFutureEmpty())
}

func TestLogMemoryUsageCountsPastAndFuture(t *testing.T) {
	st := store.NewMem([]byte("ABCDEFGHIJ"))
	l := NewLog()
	require.NoError(t, l.Add(NewByteEdit(0, []byte("ab")), st, nil)) // 8+2+2
	require.NoError(t, l.Add(NewByteEdit(2, []byte("cd")), st, nil)) // 8+2+2
	require.Equal(t, 24, l.MemoryUsage())

	// Undone actions still count; there is no eviction.
	_, err := l.Undo(st, nil)
	require.NoError(t, err)
	require.Equal(t, 24, l.MemoryUsage())
}

func TestLogContextThreading(t *testing.T) {
	st := store.NewMem([]byte("ABCDEFGHIJ"))
	l := NewLog()
	d := &testDeps{}

	a := &ctxAction{}
	require.NoError(t, l.Add(a, st, d))
	_, err := l.Undo(st, d)
	require.NoError(t, err)
	require.Equal(t, 2, d.calls)
}

// testDeps stands in for caller-supplied dependencies threaded as ctx.
type testDeps struct{ calls int }

type ctxAction struct{}

func (ctxAction) Apply(_ io.ReadWriteSeeker, ctx any) error {
	ctx.(*testDeps).calls++
	return nil
}

func (ctxAction) Unapply(_ io.ReadWriteSeeker, ctx any) error {
	ctx.(*testDeps).calls++
	return nil
}

func (ctxAction) MemoryUsage() int { return 0 }
