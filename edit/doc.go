// Package edit provides reversible byte-level edit actions and the
// undo/redo log that replays them.
//
// # Overview
//
// An Action is a reversible edit on a seekable byte store: Apply performs
// it, Unapply exactly reverses it, and MemoryUsage reports the bytes it
// retains for history accounting. ByteEdit is the concrete action used by
// hex-editor-style tools: a fixed-length, in-place byte substitution that
// captures the overwritten bytes on first apply so it can restore them
// later. Edits never change the store's length.
//
// # The Log
//
// A Log is a linear history of applied actions split by a cursor into past
// (undoable) and future (redoable) halves. Adding a new action while the
// future is non-empty permanently discards the future: there is no branch
// recovery.
//
//	log := edit.NewLog()
//	err := log.Add(edit.NewByteEdit(0x10, []byte{0xde, 0xad}), store, nil)
//	...
//	undone, err := log.Undo(store, nil)
//
// Every Apply and Unapply receives an auxiliary ctx value threaded through
// unchanged. Custom actions can use it to reach caller-supplied
// dependencies without widening the Action contract; ByteEdit ignores it.
package edit
