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


package sdlimgui

import (
	"strings"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

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
func (img *SdlImgui) Service() {
	// loop until there are no more events to retrieve
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.sendEvent(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			img.serviceKeyboard(ev)

		case *sdl.TextInputEvent:
			if img.overlay.visible {
				img.io.AddInputCharacters(strings.TrimRight(string(ev.Text[:]), "\x00"))
			}

		case *sdl.MouseWheelEvent:
			var deltaX, deltaY float32
			if ev.X > 0 {
				deltaX++
			} else if ev.X < 0 {
				deltaX--
			}
			if ev.Y > 0 {
				deltaY++
			} else if ev.Y < 0 {
				deltaY--
			}
			img.io.AddMouseWheelDelta(deltaX, deltaY)
		}
	}

	// run any outstanding service functions
	select {
	case f := <-img.service:
		f()
	default:
	}

	// the buffer swap does not wait for the monitor when the window is
	// hidden. sleep for a short time so the main thread doesn't spin
	if !img.plt.visible() {
		time.Sleep(time.Millisecond)
		return
	}

	img.crit.Lock()
	if img.newFrame {
		img.newFrame = false
		img.glsl.updateScreen(img.pixels, display.Width, display.Height)
	}
	img.crit.Unlock()

	img.renderFrame()
}

func (img *SdlImgui) renderFrame() {
	img.plt.newFrame(img.io)
	imgui.NewFrame()

	img.drawScreen()
	img.overlay.draw()

	// Render() only creates the draw data. drawing to the framebuffer is
	// done by the glsl type
	imgui.Render()
	img.glsl.preRender()
	img.glsl.render()
	img.plt.postRender()
}

// the screen fills the window. the overlay is drawn on top of it
func (img *SdlImgui) drawScreen() {
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.Vec2{})
	imgui.PushStyleVarFloat(imgui.StyleVarWindowBorderSize, 0)
	defer imgui.PopStyleVarV(2)

	sz := img.plt.displaySize()
	imgui.SetNextWindowPos(imgui.Vec2{X: 0, Y: 0})
	imgui.SetNextWindowSize(imgui.Vec2{X: sz[0], Y: sz[1]})

	imgui.BeginV("##screen", nil, imgui.WindowFlagsNoScrollbar|imgui.WindowFlagsNoDecoration|
		imgui.WindowFlagsNoMove|imgui.WindowFlagsNoSavedSettings|
		imgui.WindowFlagsNoBringToFrontOnFocus)
	imgui.Image(imgui.TextureID(img.glsl.screenTexture), imgui.Vec2{X: sz[0], Y: sz[1]})
	imgui.End()
}

func (img *SdlImgui) serviceKeyboard(ev *sdl.KeyboardEvent) {
	switch ev.Type {
	case sdl.KEYDOWN:
		img.io.KeyPress(int(ev.Keysym.Scancode))
	case sdl.KEYUP:
		img.io.KeyRelease(int(ev.Keysym.Scancode))
	}
	updateKeyModifier(img.io)

	key := sdl.GetKeyName(ev.Keysym.Sym)

	// keys are not forwarded to the emulation while a widget in the overlay
	// is being edited. the exception is the key that closes the overlay
	if img.overlay.visible && imgui.IsAnyItemActive() && key != "F1" {
		return
	}

	img.sendEvent(userinput.EventKeyboard{
		Key:    key,
		Down:   ev.Type == sdl.KEYDOWN,
		Repeat: ev.Repeat != 0,
		Mod:    keyMod(),
	})
}
