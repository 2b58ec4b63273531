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


package screenshot_test

import (
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/screenshot"
	"github.com/jetsetilly/gopher8/test"
)

var (
	fg = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	bg = color.RGBA{A: 0xff}
)

func TestImage(t *testing.T) {
	pixels := make([]uint8, display.Width*display.Height)
	pixels[0] = 1
	pixels[display.Width+1] = 1

	img, err := screenshot.Image(pixels, 4, fg, bg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), display.Width*4)
	test.ExpectEquality(t, img.Bounds().Dy(), display.Height*4)

	// first pixel covers a four by four block
	test.ExpectEquality(t, img.RGBAAt(0, 0), fg)
	test.ExpectEquality(t, img.RGBAAt(3, 3), fg)
	test.ExpectEquality(t, img.RGBAAt(4, 0), bg)
	test.ExpectEquality(t, img.RGBAAt(4, 4), fg)
	test.ExpectEquality(t, img.RGBAAt(8, 8), bg)

	_, err = screenshot.Image(pixels[1:], 4, fg, bg)
	test.ExpectFailure(t, err)
}

func TestSave(t *testing.T) {
	pixels := make([]uint8, display.Width*display.Height)
	fn := filepath.Join(t.TempDir(), "shot.png")

	test.DemandSuccess(t, screenshot.Save(fn, pixels, 2, fg, bg))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), display.Width*2)

	// existing files are not overwritten
	err = screenshot.Save(fn, pixels, 2, fg, bg)
	test.ExpectSuccess(t, errors.Is(err, screenshot.ErrFileExists))
}
