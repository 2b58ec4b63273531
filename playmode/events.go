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


package playmode

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/screenshot"
	"github.com/jetsetilly/gopher8/userinput"
)

// service all pending user input events
func (pl *Playmode) eventHandler() error {
	for {
		select {
		case ev := <-pl.userinput:
			if err := pl.userInputHandler(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (pl *Playmode) userInputHandler(ev userinput.Event) error {
	pl.controllers.HandleUserInput(ev, pl.mc.Keypad())

	if pl.controllers.Quit {
		return errQuit
	}

	if pl.controllers.LastKeyHandled {
		return nil
	}

	if kb, ok := ev.(userinput.EventKeyboard); ok {
		return pl.hotkey(kb)
	}

	return nil
}

// keys not consumed by the keypad
func (pl *Playmode) hotkey(ev userinput.EventKeyboard) error {
	if !ev.Down || ev.Repeat {
		return nil
	}

	switch ev.Key {
	case "Escape":
		return errQuit

	case "F1":
		if g, ok := pl.renderer.(gui.GUI); ok {
			err := g.SetFeature(gui.ReqToggleOverlay)
			if err != nil && !errors.Is(err, gui.ErrUnsupportedFeature) {
				return fmt.Errorf("playmode: %w", err)
			}
		}

	case "F2":
		// the reset turns the tone off without a sound edge
		toneOn := pl.mc.ToneOn()
		pl.mc.Reset()
		logger.Log(logger.Allow, "playmode", "machine reset")
		if toneOn {
			return pl.setTone(false)
		}

	case "F12":
		pl.screenshot()
	}

	return nil
}

// failure to save a screenshot is not fatal
func (pl *Playmode) screenshot() {
	scale := gui.DefaultScale
	fg, _ := gui.ParseColour(gui.DefaultForeground)
	bg, _ := gui.ParseColour(gui.DefaultBackground)
	if pl.guiPrefs != nil {
		scale = pl.guiPrefs.Scale.Get().(int)
		fg, bg = pl.guiPrefs.Colours()
	}

	fn := paths.UniqueFilename("screenshot", pl.romName, "png")
	err := screenshot.Save(fn, pl.mc.Display().Pixels(), scale, color.Color(fg), color.Color(bg))
	if err != nil {
		logger.Logf(logger.Allow, "playmode", "screenshot: %v", err)
		return
	}
	logger.Logf(logger.Allow, "playmode", "screenshot saved to %s", fn)
}
