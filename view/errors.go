package view

import "errors"

var (
	// ErrOutOfLowerBounds indicates an absolute position below the range start.
	ErrOutOfLowerBounds = errors.New("view: position below range start")

	// ErrOutOfUpperBounds indicates an absolute position above the range end.
	ErrOutOfUpperBounds = errors.New("view: position above range end")

	// ErrInvalidSeek indicates a seek target that is negative or overflows.
	ErrInvalidSeek = errors.New("view: invalid seek target")

	// ErrNotWritable indicates a write through a view over a read-only stream.
	ErrNotWritable = errors.New("view: underlying stream is not writable")
)
