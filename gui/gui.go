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


package gui

import "errors"

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	Renderer

	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}

// Renderer implementations display the machine's framebuffer.
//
// The pixels slice has one entry per pixel, arranged in rows of
// display.Width entries. A value of zero is an unlit pixel, any other value
// is lit. The slice must not be retained by the implementation after Present()
// returns.
type Renderer interface {
	Present(pixels []uint8) error
}

// AudioMixer implementations make the tone audible (or otherwise record it)
// while the sound timer is running.
type AudioMixer interface {
	// SetTone is called on the edges of the sound timer. The tone should start
	// when on is true and stop when on is false.
	SetTone(on bool) error

	// EndMixing is called when the emulation is finished and any resources
	// should be released.
	EndMixing() error
}

// ErrUnsupportedFeature is returned if GUI does not support requested
// feature.
var ErrUnsupportedFeature = errors.New("unsupported gui feature")
