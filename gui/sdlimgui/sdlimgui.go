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


// Package sdlimgui is an implementation of the gui.GUI interface using SDL,
// OpenGL 3.2 and dear imgui. It shows the machine's display in a resizable
// window and provides an overlay through which the emulation, tone and GUI
// preferences can be changed while the machine is running.
//
// As with the sdlplay package, the window must be created and serviced on
// the main thread. Present() and SetFeature() can be called from any
// goroutine.
package sdlimgui

import (
	"fmt"
	"io"
	"sync"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/gopher8/assert"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/tone"
	"github.com/jetsetilly/gopher8/userinput"
)

const windowTitle = "Gopher8"

const pixelDepth = 4

// SdlImgui is an implementation of the gui.GUI interface.
type SdlImgui struct {
	context *imgui.Context
	io      imgui.IO

	plt  *platform
	glsl *glsl

	// preferences shown in the overlay. emulation and tone preferences
	// may be nil in which case those sections of the overlay are not shown
	guiPrefs  *gui.Preferences
	emuPrefs  *preferences.Preferences
	tonePrefs *tone.Preferences

	// connects the main thread with the emulation
	events chan userinput.Event

	// feature requests and other functions that must be run on the main
	// thread
	service    chan func()
	serviceErr chan error

	// the goroutine that created the GUI. requests made on this goroutine
	// are serviced immediately
	mainThread uint64

	// written by Present() and copied to the screen texture by Service()
	crit     sync.Mutex
	raw      []uint8
	pixels   []uint8
	newFrame bool

	overlay *overlay
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui.
//
// MUST ONLY be called from the #mainthread
func NewSdlImgui(guiPrefs *gui.Preferences, emuPrefs *preferences.Preferences, tonePrefs *tone.Preferences) (*SdlImgui, error) {
	if guiPrefs == nil {
		return nil, fmt.Errorf("sdlimgui: gui preferences are required")
	}

	img := &SdlImgui{
		context:    imgui.CreateContext(nil),
		io:         imgui.CurrentIO(),
		guiPrefs:   guiPrefs,
		emuPrefs:   emuPrefs,
		tonePrefs:  tonePrefs,
		service:    make(chan func(), 1),
		serviceErr: make(chan error, 1),
		mainThread: assert.GoroutineID(),
		raw:        make([]uint8, display.Width*display.Height),
		pixels:     make([]uint8, display.Width*display.Height*pixelDepth),
	}

	// dear imgui settings are not saved. window positions are fixed
	img.io.SetIniFilename("")
	setKeyMapping(img.io)

	var err error

	img.plt, err = newPlatform(guiPrefs.Scale.Get().(int))
	if err != nil {
		img.context.Destroy()
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	img.glsl, err = newGlsl(img)
	if err != nil {
		_ = img.plt.destroy()
		img.context.Destroy()
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	// preset alpha channel. we never change the value of this channel
	for i := pixelDepth - 1; i < len(img.pixels); i += pixelDepth {
		img.pixels[i] = 255
	}
	img.colourise()

	img.overlay = newOverlay(img)

	guiPrefs.Scale.SetHookPost(func(v prefs.Value) error {
		select {
		case img.service <- func() {
			img.plt.setScaling(v.(int))
		}:
		default:
			return fmt.Errorf("sdlimgui: service queue is full")
		}
		return nil
	})

	logger.Logf(logger.Allow, "sdlimgui", "window created with scale %d", guiPrefs.Scale.Get().(int))

	return img, nil
}

// Destroy implements GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (img *SdlImgui) Destroy(output io.Writer) {
	img.glsl.destroy()
	if err := img.plt.destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	img.context.Destroy()
}

// Present implements the gui.Renderer interface.
func (img *SdlImgui) Present(pixels []uint8) error {
	if len(pixels) != display.Width*display.Height {
		return fmt.Errorf("sdlimgui: framebuffer is the wrong size (%d)", len(pixels))
	}

	img.crit.Lock()
	defer img.crit.Unlock()
	copy(img.raw, pixels)
	img.colourise()

	return nil
}

// colourise converts the most recent frame to RGBA using the current colour
// preferences. the critical section must be locked.
func (img *SdlImgui) colourise() {
	fg, bg := img.guiPrefs.Colours()
	for i, p := range img.raw {
		c := bg
		if p != 0 {
			c = fg
		}
		j := i * pixelDepth
		img.pixels[j] = c.R
		img.pixels[j+1] = c.G
		img.pixels[j+2] = c.B
	}
	img.newFrame = true
}

// events are dropped if the emulation is not keeping up. the main thread
// must never block on the emulation
func (img *SdlImgui) sendEvent(ev userinput.Event) {
	if img.events == nil {
		return
	}
	select {
	case img.events <- ev:
	default:
		logger.Log(logger.Allow, "sdlimgui", "dropped input event")
	}
}
