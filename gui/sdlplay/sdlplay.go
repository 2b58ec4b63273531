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


// Package sdlplay is a simple SDL implementation of the gui.GUI interface.
// It shows the machine's framebuffer in a window and sends keyboard events
// to the emulation over a userinput.Event channel.
//
// Because of the way SDL works, the window must be created and serviced on
// the main thread. The Present() and SetFeature() functions can be called
// from any goroutine. Work that must happen on the main thread is passed to
// the Service() function.
package sdlplay

import (
	"fmt"
	"io"
	"sync"

	"github.com/jetsetilly/gopher8/assert"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

const windowTitle = "Gopher8"

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	prefs *gui.Preferences

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// connects the main thread with the emulation
	events chan userinput.Event

	// feature requests and other functions that must be run on the main
	// thread
	service    chan func()
	serviceErr chan error

	// the goroutine that created the GUI. requests made on this goroutine
	// are serviced immediately
	mainThread uint64

	// pixels is the byte array that we copy to the texture before applying to
	// the renderer. it is written by Present() and read by Service()
	crit     sync.Mutex
	pixels   []byte
	newFrame bool
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(p *gui.Preferences) (*SdlPlay, error) {
	scr := &SdlPlay{
		prefs:      p,
		service:    make(chan func(), 1),
		serviceErr: make(chan error, 1),
		mainThread: assert.GoroutineID(),
		pixels:     make([]byte, display.Width*display.Height*pixelDepth),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// SDL window. window size is set in the setScaling() function
	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// texture is applied to the renderer to show the image. we copy the
	// pixels to it on every new frame
	//
	// texture is the same size as the display. scaling is applied by the
	// renderer in order to fit it in the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		display.Width, display.Height)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// preset alpha channel. we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	err = scr.setScaling(p.Scale.Get().(int))
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// changes to the scale preference (from the command line stack for
	// example) are applied on the main thread
	p.Scale.SetHookPost(func(v prefs.Value) error {
		select {
		case scr.service <- func() {
			if err := scr.setScaling(v.(int)); err != nil {
				logger.Logf(logger.Allow, "sdlplay", "%v", err)
			}
		}:
		default:
			return fmt.Errorf("sdlplay: service queue is full")
		}
		return nil
	})

	setupService()

	logger.Logf(logger.Allow, "sdlplay", "window created with scale %d", p.Scale.Get().(int))

	// note that we've elected not to show the window on startup. window is
	// instead opened on a ReqSetVisibility request

	return scr, nil
}

// Destroy implements GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy(output io.Writer) {
	if err := scr.texture.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	if err := scr.renderer.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	if err := scr.window.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	sdl.Quit()
}

func (scr *SdlPlay) setScaling(scale int) error {
	w := int32(display.Width * scale)
	h := int32(display.Height * scale)
	scr.window.SetSize(w, h)

	// make sure everything drawn through the renderer is correctly scaled
	return scr.renderer.SetScale(float32(scale), float32(scale))
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// Present implements the gui.Renderer interface.
func (scr *SdlPlay) Present(pixels []uint8) error {
	if len(pixels) != display.Width*display.Height {
		return fmt.Errorf("sdlplay: framebuffer is the wrong size (%d)", len(pixels))
	}

	fg, bg := scr.prefs.Colours()

	scr.crit.Lock()
	defer scr.crit.Unlock()

	for i, p := range pixels {
		c := bg
		if p != 0 {
			c = fg
		}
		j := i * pixelDepth
		scr.pixels[j] = c.R
		scr.pixels[j+1] = c.G
		scr.pixels[j+2] = c.B
	}
	scr.newFrame = true

	return nil
}
