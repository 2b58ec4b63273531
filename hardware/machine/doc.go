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

// Package machine is the interpreter at the heart of the emulation. It owns
// all machine state: memory, registers, call stack, timers, framebuffer and
// key matrix.
//
// A Machine is created with NewMachine() and a program is given to it with
// Load(). Each call to Step() executes exactly one instruction:
//
//	m := machine.NewMachine(env)
//	err := m.Load(rom)
//	for err == nil {
//		err = m.Step()
//	}
//
// Errors returned by Step() are fatal and the machine should not be stepped
// again without a call to Reset() or Load(). The sentinel errors can be
// checked for with errors.Is(). An unrecognised instruction is not fatal. It
// is logged and skipped.
//
// After every instruction the delay and sound timers are decremented. The
// changes in tone state caused by the sound timer are available through
// SoundEdge() until the next call to Step().
//
// The framebuffer is available through Display(). The presenting code should
// check the dirty flag and clear it once the framebuffer has been rendered.
//
// The key matrix is available through Keypad(). Key state can be written
// from any goroutine. Step() must not be called concurrently.
package machine
