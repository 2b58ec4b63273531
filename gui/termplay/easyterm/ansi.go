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


package easyterm

import (
	"fmt"
	"image/color"
)

// Pen returns the control sequence that sets the foreground colour.
func Pen(c color.RGBA) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Paper returns the control sequence that sets the background colour.
func Paper(c color.RGBA) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// MoveCursor returns the control sequence that moves the cursor to the row
// and column. The top-left of the terminal is row 1, column 1.
func MoveCursor(row int, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}
