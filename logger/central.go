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


package logger

import (
	"io"
)

// the application log. the machine, playmode and GUIs all write to it and the
// -log flag echoes it to the terminal
var central = NewLogger(256)

// Log adds an entry to the application log.
func Log(perm Permission, tag, detail string) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the application log.
func Logf(perm Permission, tag, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// SetEcho writes every new entry in the application log to output. A nil
// writer stops the echo.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}

// Tail writes the most recent entries in the application log to output. Used
// to show what led up to a fatal machine error.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}
