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


package sdlplay

import (
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and the
	// emulation has no use for the mouse
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

func keyMod() userinput.KeyMod {
	m := sdl.GetModState()
	switch {
	case m&sdl.KMOD_LALT == sdl.KMOD_LALT || m&sdl.KMOD_RALT == sdl.KMOD_RALT:
		return userinput.KeyModAlt
	case m&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || m&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT:
		return userinput.KeyModShift
	case m&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || m&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL:
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}

// Service implements GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	// loop until there are no more events to retrieve. servicing just one
	// event per call would mean queued key events take longer to resolve
	empty := false
	for !empty {
		// check for SDL events. timing out straight away if there's nothing
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.sendEvent(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			scr.sendEvent(userinput.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
				Mod:    keyMod(),
			})

		case nil:
			// if we have a nil value then the WaitEvent has timed out
			// and we can say that the event queue is empty
			empty = true
		}
	}

	// run any outstanding service functions
	select {
	case f := <-scr.service:
		f()
	default:
	}

	scr.crit.Lock()
	if !scr.newFrame {
		scr.crit.Unlock()
		return
	}
	scr.newFrame = false
	err := scr.texture.Update(nil, scr.pixels, display.Width*pixelDepth)
	scr.crit.Unlock()

	if err != nil {
		logger.Logf(logger.Allow, "sdlplay", "%v", err)
		return
	}

	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		logger.Logf(logger.Allow, "sdlplay", "%v", err)
		return
	}

	scr.renderer.Present()
}

// events are dropped if the emulation is not keeping up. the main thread
// must never block on the emulation
func (scr *SdlPlay) sendEvent(ev userinput.Event) {
	if scr.events == nil {
		return
	}
	select {
	case scr.events <- ev:
	default:
		logger.Log(logger.Allow, "sdlplay", "dropped input event")
	}
}
