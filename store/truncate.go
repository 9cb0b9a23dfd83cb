package store

// Truncator is the optional resize capability of a store: it changes the
// store's reported length, shrinking or zero-extending as needed.
// *os.File satisfies it natively.
type Truncator interface {
	Truncate(size int64) error
}
