// Package seekutil derives stream positions and lengths from io.Seeker
// using relative seek probes only.
package seekutil

import "io"

// Position returns the current absolute position of s.
func Position(s io.Seeker) (int64, error) {
	return s.Seek(0, io.SeekCurrent)
}

// Length returns the total length of s using seek probes. On success the
// prior position is restored, unless it already equals the length, in which
// case the restoring seek is skipped. On error the resulting position is
// unspecified.
func Length(s io.Seeker) (int64, error) {
	pos, err := Position(s)
	if err != nil {
		return 0, err
	}
	length, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if pos != length {
		if _, err := s.Seek(pos, io.SeekStart); err != nil {
			return 0, err
		}
	}
	return length, nil
}
