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

package keypad

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// NumKeys is the number of keys in the matrix.
const NumKeys = 16

// NoKey is returned by FirstPressed() when no key is pressed.
const NoKey = -1

// Keypad is the state of every key. The zero value is ready to use, with all
// keys released.
type Keypad struct {
	keys [NumKeys]atomic.Bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Set the state of a key. Only the low nibble of key is used.
func (kp *Keypad) Set(key uint8, pressed bool) {
	kp.keys[key&0x0f].Store(pressed)
}

// IsPressed returns true if the key is pressed. Only the low nibble of key is
// used.
func (kp *Keypad) IsPressed(key uint8) bool {
	return kp.keys[key&0x0f].Load()
}

// FirstPressed returns the lowest numbered key that is pressed or NoKey.
func (kp *Keypad) FirstPressed() int {
	for k := range kp.keys {
		if kp.keys[k].Load() {
			return k
		}
	}
	return NoKey
}

func (kp *Keypad) String() string {
	s := strings.Builder{}
	for k := range kp.keys {
		if kp.keys[k].Load() {
			s.WriteString(fmt.Sprintf("%X", k))
		} else {
			s.WriteByte('-')
		}
	}
	return s.String()
}
