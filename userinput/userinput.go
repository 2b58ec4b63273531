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

// Event represents all the different type of events that can occur in the
// GUI.
type Event interface{}

// KeyMod identifies the modifier key held down at the time of a keyboard
// event.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventQuit is sent when the native window close button has been pressed or
// when the terminal has received a quit signal.
type EventQuit struct{}

// EventKeyboard is the data that accompanies keyboard events.
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
	Mod    KeyMod
}

// HandleInput conceptualises data being sent to the keypad.
type HandleInput interface {
	Set(key uint8, pressed bool)
}
