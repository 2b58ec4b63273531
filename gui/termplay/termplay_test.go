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
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/gui/termplay/easyterm"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestRender(t *testing.T) {
	fg := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	bg := color.RGBA{A: 0xff}

	pixels := make([]uint8, display.Width*display.Height)
	s := render(pixels, fg, bg)

	test.ExpectSuccess(t, strings.HasPrefix(s, easyterm.CursorHome))
	test.ExpectEquality(t, strings.Count(s, "\r\n"), display.Height/2)
	test.ExpectEquality(t, strings.Count(s, string(halfBlock)), display.Width*display.Height)

	// an empty screen only uses the background colour
	test.ExpectFailure(t, strings.Contains(s, easyterm.Pen(fg)))

	// a lit pixel on the top row causes the foreground pen to be used
	pixels[0] = 1
	s = render(pixels, fg, bg)
	test.ExpectSuccess(t, strings.Contains(s, easyterm.Pen(fg)))
	test.ExpectFailure(t, strings.Contains(s, easyterm.Paper(fg)))

	// and on the second row the foreground paper
	pixels[display.Width] = 1
	s = render(pixels, fg, bg)
	test.ExpectSuccess(t, strings.Contains(s, easyterm.Paper(fg)))
}

func TestDecodeKeys(t *testing.T) {
	keys, interrupt, suspend := decodeKeys([]byte("qW1"))
	test.DemandEquality(t, len(keys), 3)
	test.ExpectEquality(t, keys[0], "Q")
	test.ExpectEquality(t, keys[1], "W")
	test.ExpectEquality(t, keys[2], "1")
	test.ExpectFailure(t, interrupt)
	test.ExpectFailure(t, suspend)

	keys, _, _ = decodeKeys([]byte{easyterm.KeyEsc})
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0], keyEscape)

	keys, _, _ = decodeKeys([]byte("\x1bOP\x1bOQ\x1b[24~"))
	test.DemandEquality(t, len(keys), 3)
	test.ExpectEquality(t, keys[0], keyF1)
	test.ExpectEquality(t, keys[1], keyF2)
	test.ExpectEquality(t, keys[2], keyF12)

	// cursor keys are not used and are skipped entirely
	keys, _, _ = decodeKeys([]byte("\x1b[Aq"))
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0], "Q")

	_, interrupt, _ = decodeKeys([]byte{easyterm.KeyInterrupt})
	test.ExpectSuccess(t, interrupt)
	_, _, suspend = decodeKeys([]byte{easyterm.KeySuspend})
	test.ExpectSuccess(t, suspend)
}

func TestHeldKeys(t *testing.T) {
	h := newHeldKeys()
	now := time.Now()

	test.ExpectSuccess(t, h.press("Q", now))
	test.ExpectFailure(t, h.press("Q", now.Add(keyHold/2)))
	test.ExpectSuccess(t, h.press("W", now))

	// W has not been seen for the hold period but Q has been seen more
	// recently
	released := h.expire(now.Add(keyHold))
	test.DemandEquality(t, len(released), 1)
	test.ExpectEquality(t, released[0], "W")

	released = h.expire(now.Add(keyHold * 2))
	test.DemandEquality(t, len(released), 1)
	test.ExpectEquality(t, released[0], "Q")

	h.press("A", now)
	h.press("S", now)
	test.ExpectEquality(t, len(h.releaseAll()), 2)
	test.ExpectEquality(t, len(h.expire(now.Add(keyHold*10))), 0)
}
