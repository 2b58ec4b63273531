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

package display_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestDrawAndCollision(t *testing.T) {
	dsp := display.NewDisplay()
	test.ExpectFailure(t, dsp.Dirty())

	sprite := []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0}

	collision := dsp.Draw(0, 0, sprite)
	test.ExpectFailure(t, collision)
	test.ExpectSuccess(t, dsp.Dirty())
	test.ExpectEquality(t, dsp.Pixel(0, 0), 1)
	test.ExpectEquality(t, dsp.Pixel(3, 0), 1)
	test.ExpectEquality(t, dsp.Pixel(4, 0), 0)
	test.ExpectEquality(t, dsp.Pixel(1, 1), 0)

	dsp.ClearDirty()
	test.ExpectFailure(t, dsp.Dirty())

	// drawing the same sprite in the same position erases it
	collision = dsp.Draw(0, 0, sprite)
	test.ExpectSuccess(t, collision)
	test.ExpectSuccess(t, dsp.Dirty())
	for _, p := range dsp.Pixels() {
		test.DemandEquality(t, p, 0)
	}
}

func TestWraparound(t *testing.T) {
	dsp := display.NewDisplay()

	// eight pixels wide sprite at x=60 covers columns 60-63 and 0-3
	dsp.Draw(60, 31, []uint8{0xff, 0x80})
	for x := 60; x < 64; x++ {
		test.ExpectEquality(t, dsp.Pixel(x, 31), 1, x)
	}
	for x := 0; x < 4; x++ {
		test.ExpectEquality(t, dsp.Pixel(x, 31), 1, x)
	}
	test.ExpectEquality(t, dsp.Pixel(4, 31), 0)

	// second row wraps to the top
	test.ExpectEquality(t, dsp.Pixel(60, 0), 1)
	test.ExpectEquality(t, dsp.Pixel(61, 0), 0)

	// coordinates themselves wrap
	dsp.Clear()
	dsp.Draw(64+2, 32+1, []uint8{0x80})
	test.ExpectEquality(t, dsp.Pixel(2, 1), 1)
}

func TestClear(t *testing.T) {
	dsp := display.NewDisplay()
	dsp.Draw(10, 10, []uint8{0xff})
	dsp.ClearDirty()

	dsp.Clear()
	test.ExpectSuccess(t, dsp.Dirty())
	test.ExpectEquality(t, dsp.Pixel(10, 10), 0)

	dsp.ClearDirty()
	test.ExpectFailure(t, dsp.Dirty())
}

func TestString(t *testing.T) {
	dsp := display.NewDisplay()
	dsp.Draw(0, 0, []uint8{0xc0})
	lines := strings.Split(dsp.String(), "\n")
	test.DemandEquality(t, len(lines), display.Height+1)
	test.ExpectEquality(t, lines[0], "##"+strings.Repeat(".", display.Width-2))
	test.ExpectEquality(t, lines[1], strings.Repeat(".", display.Width))
}

func TestCopyPixels(t *testing.T) {
	dsp := display.NewDisplay()
	dsp.Draw(1, 0, []uint8{0x80})
	buf := make([]uint8, display.Width*display.Height)
	test.ExpectEquality(t, dsp.CopyPixels(buf), display.Width*display.Height)
	test.ExpectEquality(t, buf[1], 1)
}
