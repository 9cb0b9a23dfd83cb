/*
Package hexedit is the high-level entry point for byte-oriented, undoable
editing of a seekable store.

# Quick Start

	st := store.NewMem([]byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
	ed := hexedit.New(st)

	if err := ed.Edit(1, []byte("ZDX"), nil); err != nil {
	    log.Fatal(err)
	}

	data, _ := ed.ReadAmountAt(0, 10) // "AZDXEFGHIJ"

	undone, _ := ed.Undo(nil) // back to "ABCDEFGHIJ"

# Model

An Editor owns exactly one store (anything implementing io.ReadWriteSeeker:
a *store.Mem, an *os.File, a *store.MMap) and one edit.Log. Edits are added
as reversible actions and replayed by the log; the store's length never
changes. Until SaveTo streams the bytes out, edits exist only inside the
wrapped store — give the editor a copy (see store.CopyTemp) when the
original must stay untouched.

The editor is fully synchronous and single-owner: it assumes exclusive
access to the store for its lifetime, performs no internal locking, and
surfaces every I/O failure immediately without retrying.

# Context values

AddAction, Edit, Undo, and Redo take a ctx value handed through verbatim to
every Action. Pass nil unless a custom action needs caller-supplied
dependencies.
*/
package hexedit
