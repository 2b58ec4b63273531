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


package termplay

import (
	"image/color"
	"strings"

	"github.com/jetsetilly/gopher8/gui/termplay/easyterm"
	"github.com/jetsetilly/gopher8/hardware/display"
)

// each character cell shows two rows of pixels. the upper half block is drawn
// in the pen colour (the upper pixel) over the paper colour (the lower pixel)
const halfBlock = '▀'

// render the framebuffer as a string of control sequences and half block
// characters. the string begins with the sequence to move the cursor to the
// top-left of the terminal. the width of each pixel is doubled so that pixels
// are closer to square in most terminal fonts
func render(pixels []uint8, fg color.RGBA, bg color.RGBA) string {
	pen := [2]string{easyterm.Pen(bg), easyterm.Pen(fg)}
	paper := [2]string{easyterm.Paper(bg), easyterm.Paper(fg)}

	s := strings.Builder{}
	s.WriteString(easyterm.CursorHome)

	for y := 0; y < display.Height; y += 2 {
		// the colour is only changed when it differs from the previous cell
		lastUpper := -1
		lastLower := -1

		for x := 0; x < display.Width; x++ {
			upper := lit(pixels[y*display.Width+x])
			lower := lit(pixels[(y+1)*display.Width+x])
			if upper != lastUpper {
				s.WriteString(pen[upper])
				lastUpper = upper
			}
			if lower != lastLower {
				s.WriteString(paper[lower])
				lastLower = lower
			}
			s.WriteRune(halfBlock)
			s.WriteRune(halfBlock)
		}

		s.WriteString(easyterm.NormalPen)
		s.WriteString("\r\n")
	}

	return s.String()
}

func lit(p uint8) int {
	if p != 0 {
		return 1
	}
	return 0
}
