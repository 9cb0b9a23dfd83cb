package edit

import "errors"

var (
	// ErrInvalidEdit indicates an edit that would reach or exceed the
	// store's current length. The store may never grow.
	ErrInvalidEdit = errors.New("edit: edit would reach past end of store")
)
