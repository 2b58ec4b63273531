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


// Package screenshot saves the machine's framebuffer as a PNG file. The
// image is scaled so that it is the same size as the image in the window.
package screenshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"

	"github.com/jetsetilly/gopher8/hardware/display"
	"golang.org/x/image/draw"
)

// ErrFileExists is returned by Save() if the file already exists.
var ErrFileExists = errors.New("file already exists")

// Image returns the framebuffer as an image. Each pixel is scaled to a
// square of scale by scale pixels.
func Image(pixels []uint8, scale int, fg color.Color, bg color.Color) (*image.RGBA, error) {
	if len(pixels) != display.Width*display.Height {
		return nil, fmt.Errorf("screenshot: framebuffer is the wrong size (%d)", len(pixels))
	}
	if scale < 1 {
		scale = 1
	}

	src := image.NewRGBA(image.Rect(0, 0, display.Width, display.Height))
	draw.Draw(src, src.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	for i, p := range pixels {
		if p != 0 {
			src.Set(i%display.Width, i/display.Width, fg)
		}
	}

	if scale == 1 {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, display.Width*scale, display.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst, nil
}

// Save the framebuffer to the named file. An existing file will not be
// overwritten.
func Save(filename string, pixels []uint8, scale int, fg color.Color, bg color.Color) error {
	img, err := Image(pixels, scale, fg, bg)
	if err != nil {
		return err
	}

	_, err = os.Stat(filename)
	if err == nil {
		return fmt.Errorf("screenshot: %w: %s", ErrFileExists, filename)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("screenshot: %w", err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer f.Close()

	err = png.Encode(f, img)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	return nil
}
