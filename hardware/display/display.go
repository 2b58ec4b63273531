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

package display

import (
	"strings"
)

// Dimensions of the framebuffer.
const (
	Width  = 64
	Height = 32
)

// Display is the framebuffer and dirty flag.
type Display struct {
	pixels [Width * Height]uint8
	dirty  bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{}
}

// Clear all pixels. The dirty flag is set.
func (dsp *Display) Clear() {
	clear(dsp.pixels[:])
	dsp.dirty = true
}

// Draw a sprite at column x and row y. Each byte of the sprite is one row of
// eight pixels, most significant bit leftmost. The x and y coordinates and
// any pixel falling beyond the edge of the framebuffer are wrapped.
//
// Returns true if any pixel was turned off by the draw (a collision). The
// dirty flag is set even if the sprite is empty.
func (dsp *Display) Draw(x uint8, y uint8, sprite []uint8) bool {
	var collision bool

	for row, b := range sprite {
		py := (int(y) + row) % Height
		for bit := range 8 {
			if b&(0x80>>bit) == 0 {
				continue
			}
			px := (int(x) + bit) % Width
			idx := py*Width + px
			if dsp.pixels[idx] == 1 {
				collision = true
			}
			dsp.pixels[idx] ^= 1
		}
	}

	dsp.dirty = true

	return collision
}

// Pixel returns the value of the pixel at column x and row y. Coordinates
// are wrapped.
func (dsp *Display) Pixel(x int, y int) uint8 {
	x = ((x % Width) + Width) % Width
	y = ((y % Height) + Height) % Height
	return dsp.pixels[y*Width+x]
}

// Pixels returns a copy of the framebuffer.
func (dsp *Display) Pixels() []uint8 {
	c := make([]uint8, len(dsp.pixels))
	copy(c, dsp.pixels[:])
	return c
}

// CopyPixels copies the framebuffer into dst, which should be at least
// Width*Height bytes long. Returns the number of bytes copied.
func (dsp *Display) CopyPixels(dst []uint8) int {
	return copy(dst, dsp.pixels[:])
}

// Dirty returns true if the framebuffer has changed since the last call to
// ClearDirty().
func (dsp *Display) Dirty() bool {
	return dsp.dirty
}

// ClearDirty resets the dirty flag.
func (dsp *Display) ClearDirty() {
	dsp.dirty = false
}

// String returns the framebuffer as rows of '#' and '.' characters.
func (dsp *Display) String() string {
	s := strings.Builder{}
	s.Grow((Width + 1) * Height)
	for y := range Height {
		for x := range Width {
			if dsp.pixels[y*Width+x] == 1 {
				s.WriteByte('#')
			} else {
				s.WriteByte('.')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}
