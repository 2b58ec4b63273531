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


package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// Screen implements the gui.Renderer interface.
type Screen struct {
	digest [sha1.Size]byte

	// length of pixels array contains enough room for the previous frame's
	// digest value
	pixels []byte

	frames int
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen() *Screen {
	return &Screen{
		pixels: make([]byte, sha1.Size+display.Width*display.Height),
	}
}

// Hash implements the Digest interface.
func (dig *Screen) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Screen) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames that have contributed to the digest.
func (dig *Screen) Frames() int {
	return dig.frames
}

// Present implements the gui.Renderer interface.
func (dig *Screen) Present(pixels []uint8) error {
	if len(pixels) != display.Width*display.Height {
		return fmt.Errorf("digest: framebuffer is the wrong size (%d)", len(pixels))
	}

	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the screen data
	n := copy(dig.pixels, dig.digest[:])
	for i, p := range pixels {
		// normalise pixel values. any non-zero value is a lit pixel
		if p != 0 {
			dig.pixels[n+i] = 1
		} else {
			dig.pixels[n+i] = 0
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++

	return nil
}
