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


package gui_test

import (
	"image/color"
	"os"
	"testing"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/test"
)

func TestParseColour(t *testing.T) {
	c, err := gui.ParseColour("#ff8000")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff})

	c, err = gui.ParseColour("102030")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff})

	_, err = gui.ParseColour("#fff")
	test.ExpectFailure(t, err)
	_, err = gui.ParseColour("#gggggg")
	test.ExpectFailure(t, err)
}

func TestPreferences(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	p, err := gui.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Scale.Get().(int), gui.DefaultScale)

	// scale is range checked and the existing value is kept on failure
	test.ExpectFailure(t, p.Scale.Set(0))
	test.ExpectFailure(t, p.Scale.Set(gui.MaxScale+1))
	test.ExpectEquality(t, p.Scale.Get().(int), gui.DefaultScale)

	test.ExpectFailure(t, p.Foreground.Set("white"))
	test.ExpectSuccess(t, p.Foreground.Set("#00ff00"))

	fg, bg := p.Colours()
	test.ExpectEquality(t, fg, color.RGBA{G: 0xff, A: 0xff})
	test.ExpectEquality(t, bg, color.RGBA{A: 0xff})

	test.ExpectSuccess(t, p.Save())

	q, err := gui.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Foreground.String(), "#00ff00")
}
