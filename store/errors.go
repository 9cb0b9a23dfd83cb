package store

import "errors"

var (
	// ErrInvalidSeek indicates a seek to a negative or overflowing position.
	ErrInvalidSeek = errors.New("store: invalid seek target")

	// ErrInvalidSize indicates a negative truncate size.
	ErrInvalidSize = errors.New("store: invalid size")

	// ErrClosed indicates use of a store after Close.
	ErrClosed = errors.New("store: already closed")
)
