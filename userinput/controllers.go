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


package userinput

// Controllers keeps track of hardware userinput options.
type Controllers struct {
	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the emulation as an input
	LastKeyHandled bool

	// is true if last event was a quit emulation event
	Quit bool
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) {
	// key repeat is meaningless to the keypad. the key is already down
	if ev.Repeat {
		c.LastKeyHandled = false
		return
	}

	// modified keys are left to the GUI and the playmode hotkeys
	if ev.Mod != KeyModNone {
		c.LastKeyHandled = false
		return
	}

	k, ok := KeypadIndex(ev.Key)
	if !ok {
		c.LastKeyHandled = false
		return
	}

	handle.Set(k, ev.Down)
	c.LastKeyHandled = true
}

// HandleUserInput deciphers the Event and forwards it to the keypad via the
// HandleInput interface. Events that are not consumed by the keypad will set
// the LastKeyHandled field to false, allowing the caller to treat them as
// hotkeys.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) {
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventKeyboard:
		c.keyboard(ev, handle)
	}
}
