package edit

import "io"

// Log is a linear undo/redo history. Entries [0, cursor) are the past:
// applied actions in replay order. Entries [cursor, len) are the future:
// previously undone actions preserved for redo. Adding a new action while
// the future is non-empty discards the future permanently.
//
// A Log owns every action added to it and assumes exclusive access to the
// store it is replayed against; concurrent use requires external locking.
type Log struct {
	actions []Action
	cursor  int
}

// NewLog returns an empty history.
func NewLog() *Log {
	return &Log{}
}

// NewLogCapacity returns an empty history with room for n actions.
func NewLogCapacity(n int) *Log {
	return &Log{actions: make([]Action, 0, n)}
}

// Len returns the total number of actions, past and future.
func (l *Log) Len() int { return len(l.actions) }

// IsEmpty reports whether the log holds no actions at all.
func (l *Log) IsEmpty() bool { return len(l.actions) == 0 }

// PastLen returns the number of applied (undoable) actions.
func (l *Log) PastLen() int { return l.cursor }

// FutureLen returns the number of undone (redoable) actions.
func (l *Log) FutureLen() int { return len(l.actions) - l.cursor }

// IsPastEmpty reports whether there is nothing to undo.
func (l *Log) IsPastEmpty() bool { return l.PastLen() == 0 }

// IsFutureEmpty reports whether there is nothing to redo.
func (l *Log) IsFutureEmpty() bool { return l.FutureLen() == 0 }

// ClearFuture drops every undone action, breaking any redo path.
func (l *Log) ClearFuture() {
	for i := l.cursor; i < len(l.actions); i++ {
		l.actions[i] = nil
	}
	l.actions = l.actions[:l.cursor]
}

// Add applies a against rw and, on success, discards the future, appends a,
// and advances the cursor. On failure the log is unchanged and the caller
// still holds the unconsumed action.
func (l *Log) Add(a Action, rw io.ReadWriteSeeker, ctx any) error {
	if err := a.Apply(rw, ctx); err != nil {
		return err
	}
	l.ClearFuture()
	l.actions = append(l.actions, a)
	l.cursor++
	return nil
}

// Undo reverses the most recent past action. It returns (false, nil) when
// there is nothing to undo. The cursor moves only after a successful
// Unapply, so a failed undo may be retried: repeated attempts have a better
// chance of reaching a consistent state than assuming the failure is
// permanent.
func (l *Log) Undo(rw io.ReadWriteSeeker, ctx any) (bool, error) {
	if l.IsPastEmpty() {
		return false, nil
	}
	if err := l.actions[l.cursor-1].Unapply(rw, ctx); err != nil {
		return false, err
	}
	l.cursor--
	return true, nil
}

// Redo re-applies the first future action. It returns (false, nil) when
// there is nothing to redo. The cursor moves only after a successful Apply.
func (l *Log) Redo(rw io.ReadWriteSeeker, ctx any) (bool, error) {
	if l.IsFutureEmpty() {
		return false, nil
	}
	if err := l.actions[l.cursor].Apply(rw, ctx); err != nil {
		return false, err
	}
	l.cursor++
	return true, nil
}

// MemoryUsage sums the reported usage of every action, past and future
// alike. The log never evicts on its own.
func (l *Log) MemoryUsage() int {
	total := 0
	for _, a := range l.actions {
		total += a.MemoryUsage()
	}
	return total
}
