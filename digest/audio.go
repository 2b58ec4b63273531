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
	"encoding/binary"
	"fmt"
)

// Audio implements the gui.AudioMixer interface. The digest is of the tone
// edges and the machine cycle on which they occurred.
type Audio struct {
	digest [sha1.Size]byte
	buffer [sha1.Size + 9]byte
	cycles func() uint64
	toneOn bool
	edges  int
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// cycles function returns the current machine cycle.
func NewAudio(cycles func() uint64) *Audio {
	return &Audio{cycles: cycles}
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.edges = 0
}

// Edges returns the number of tone edges that have contributed to the digest.
func (dig *Audio) Edges() int {
	return dig.edges
}

// SetTone implements the gui.AudioMixer interface.
func (dig *Audio) SetTone(on bool) error {
	if on == dig.toneOn {
		return nil
	}
	dig.toneOn = on

	n := copy(dig.buffer[:], dig.digest[:])
	binary.LittleEndian.PutUint64(dig.buffer[n:], dig.cycles())
	if on {
		dig.buffer[n+8] = 1
	} else {
		dig.buffer[n+8] = 0
	}

	dig.digest = sha1.Sum(dig.buffer[:])
	dig.edges++

	return nil
}

// EndMixing implements the gui.AudioMixer interface.
func (dig *Audio) EndMixing() error {
	return nil
}
