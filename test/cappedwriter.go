// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.


package test

import (
	"fmt"
)

// CappedWriter keeps the first size bytes written to it and discards the
// rest. Useful when only the start of a long output, like a log tail, is of
// interest.
type CappedWriter struct {
	buffer []byte
	size   int
}

// NewCappedWriter returns a CappedWriter that keeps at most size bytes. The
// size must be positive.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: capped writer size must be positive (%d)", size)
	}
	return &CappedWriter{buffer: make([]byte, 0, size), size: size}, nil
}

// Write implements the io.Writer interface. It never returns an error. The
// number of bytes kept is returned, which will be short once the cap is
// reached.
func (w *CappedWriter) Write(p []byte) (int, error) {
	n := min(len(p), w.size-len(w.buffer))
	w.buffer = append(w.buffer, p[:n]...)
	return n, nil
}

// String returns the bytes kept so far.
func (w *CappedWriter) String() string {
	return string(w.buffer)
}

// Reset discards everything kept so far. The cap applies afresh.
func (w *CappedWriter) Reset() {
	w.buffer = w.buffer[:0]
}
