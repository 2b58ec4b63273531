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


package userinput_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestKeypadLayout(t *testing.T) {
	expected := map[string]uint8{
		"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
		"q": 0x4, "w": 0x5, "e": 0x6, "r": 0xd,
		"a": 0x7, "s": 0x8, "d": 0x9, "f": 0xe,
		"z": 0xa, "x": 0x0, "c": 0xb, "v": 0xf,
	}

	for key, idx := range expected {
		k, ok := userinput.KeypadIndex(key)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, k, idx)
	}

	_, ok := userinput.KeypadIndex("5")
	test.ExpectFailure(t, ok)
	_, ok = userinput.KeypadIndex("Escape")
	test.ExpectFailure(t, ok)
}

func TestControllers(t *testing.T) {
	kp := keypad.NewKeypad()
	var c userinput.Controllers

	c.HandleUserInput(userinput.EventKeyboard{Key: "Q", Down: true}, kp)
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectSuccess(t, kp.IsPressed(0x4))

	// repeat events do not alter the keypad
	c.HandleUserInput(userinput.EventKeyboard{Key: "Q", Down: false, Repeat: true}, kp)
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectSuccess(t, kp.IsPressed(0x4))

	c.HandleUserInput(userinput.EventKeyboard{Key: "Q", Down: false}, kp)
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectFailure(t, kp.IsPressed(0x4))

	// modified keys and unmapped keys are not consumed
	c.HandleUserInput(userinput.EventKeyboard{Key: "Q", Down: true, Mod: userinput.KeyModCtrl}, kp)
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectFailure(t, kp.IsPressed(0x4))

	c.HandleUserInput(userinput.EventKeyboard{Key: "F12", Down: true}, kp)
	test.ExpectFailure(t, c.LastKeyHandled)

	test.ExpectFailure(t, c.Quit)
	c.HandleUserInput(userinput.EventQuit{}, kp)
	test.ExpectSuccess(t, c.Quit)
}
