package edit

import "io"

// Action is a reversible edit on a seekable byte store.
//
// ctx is an auxiliary per-call value passed through by the caller of the
// Log; the Log itself never inspects it.
type Action interface {
	// Apply performs the edit. A failed Apply must leave the store's bytes
	// unmodified.
	Apply(rw io.ReadWriteSeeker, ctx any) error

	// Unapply reverses the edit. It assumes a prior successful Apply;
	// calling it otherwise is a precondition violation and the resulting
	// bytes are undefined.
	Unapply(rw io.ReadWriteSeeker, ctx any) error

	// MemoryUsage reports approximately how many bytes the action retains,
	// for history-size accounting.
	MemoryUsage() int
}
