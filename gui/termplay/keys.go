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
	"strings"
	"time"

	"github.com/jetsetilly/gopher8/gui/termplay/easyterm"
)

// the terminal does not report when a key is released. a key is considered
// to be released when it has not been seen for this long. the value must be
// longer than the keyboard's initial repeat delay
const keyHold = 600 * time.Millisecond

// names of keys that are not represented by a single character. the names
// are the same as those used by the SDL GUI
const (
	keyEscape = "Escape"
	keyF1     = "F1"
	keyF2     = "F2"
	keyF12    = "F12"
)

// decodeKeys converts the bytes read from the terminal into a list of key
// names. the interrupt key is returned as a separate bool.
func decodeKeys(b []byte) (keys []string, interrupt bool, suspend bool) {
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case easyterm.KeyInterrupt:
			interrupt = true

		case easyterm.KeySuspend:
			suspend = true

		case easyterm.KeyEsc:
			// a lone escape character is the escape key. otherwise it is the
			// start of a sequence for a function key
			if i+1 >= len(b) {
				keys = append(keys, keyEscape)
				continue
			}

			seq := string(b[i+1:])
			switch {
			case strings.HasPrefix(seq, "OP"):
				keys = append(keys, keyF1)
				i += 2
			case strings.HasPrefix(seq, "OQ"):
				keys = append(keys, keyF2)
				i += 2
			case strings.HasPrefix(seq, "[24~"):
				keys = append(keys, keyF12)
				i += 4
			case b[i+1] == easyterm.EscCursor || b[i+1] == easyterm.EscFunction:
				// unsupported sequence. skip to the final byte of the sequence
				i++
				for i+1 < len(b) && !isFinal(b[i+1]) {
					i++
				}
				i++
			default:
				keys = append(keys, keyEscape)
			}

		default:
			c := b[i]
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
			if c > ' ' && c < 0x7f {
				keys = append(keys, string(c))
			}
		}
	}

	return keys, interrupt, suspend
}

// the final byte of a control sequence is in the range 0x40 to 0x7e
func isFinal(c byte) bool {
	return c >= 0x40 && c <= 0x7e
}

// heldKeys tracks keys that are considered to be held down.
type heldKeys struct {
	seen map[string]time.Time
}

func newHeldKeys() *heldKeys {
	return &heldKeys{seen: make(map[string]time.Time)}
}

// press returns true if the key was not already held.
func (h *heldKeys) press(key string, now time.Time) bool {
	_, held := h.seen[key]
	h.seen[key] = now
	return !held
}

// expire returns the keys that have not been seen within the hold period. the
// returned keys are no longer considered to be held.
func (h *heldKeys) expire(now time.Time) []string {
	var released []string
	for k, t := range h.seen {
		if now.Sub(t) >= keyHold {
			released = append(released, k)
			delete(h.seen, k)
		}
	}
	return released
}

// releaseAll returns all held keys.
func (h *heldKeys) releaseAll() []string {
	var released []string
	for k := range h.seen {
		released = append(released, k)
	}
	clear(h.seen)
	return released
}
