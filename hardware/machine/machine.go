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

package machine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/opcode"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
)

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// NumRegisters is the number of general purpose registers, V0 to VF.
const NumRegisters = 16

// Machine is the complete state of the interpreter.
type Machine struct {
	env *environment.Environment

	Mem    *memory.Memory
	Timers timers.Timers

	dsp *display.Display
	kp  *keypad.Keypad

	// general purpose registers. VF (register 15) is also written by some
	// instructions as a flag
	V [NumRegisters]uint8

	// index register
	I uint16

	// program counter
	PC uint16

	// call stack and the number of entries in use
	Stack [StackDepth]uint16
	SP    int

	// the most recently executed instruction
	LastOpcode opcode.Opcode

	// number of unrecognised instructions encountered since the last reset
	UnknownOpcodes int

	// number of instructions executed since the last reset
	Cycles uint64

	// the tone state change caused by the most recent step
	soundEdge timers.SoundEdge

	// the most recently loaded program. kept so that Reset() can restore it
	rom []uint8
}

// NewMachine is the preferred method of initialisation for the Machine type.
// The environment is used for random numbers and as the log permission. The
// machine begins in the power-on state with no program loaded.
func NewMachine(env *environment.Environment) *Machine {
	m := &Machine{
		env: env,
		Mem: memory.NewMemory(),
		dsp: display.NewDisplay(),
		kp:  keypad.NewKeypad(),
	}
	m.Reset()
	return m
}

func (m *Machine) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%04x I=%04x SP=%d %s\n", m.PC, m.I, m.SP, m.Timers.String()))
	for i, v := range m.V {
		s.WriteString(fmt.Sprintf("V%X=%02x", i, v))
		if i < len(m.V)-1 {
			s.WriteByte(' ')
		}
	}
	return s.String()
}

// Reset the machine to the power-on state. The framebuffer is cleared (and
// marked as dirty) and the most recently loaded program is restored.
//
// Key state is not changed by a reset because it reflects the state of the
// physical keys.
func (m *Machine) Reset() {
	m.Mem.Reset()
	if m.rom != nil {
		// the size of the ROM has already been checked
		_ = m.Mem.LoadProgram(m.rom)
	}

	m.V = [NumRegisters]uint8{}
	m.I = 0
	m.PC = memory.ProgramOrigin
	m.Stack = [StackDepth]uint16{}
	m.SP = 0
	m.LastOpcode = 0
	m.UnknownOpcodes = 0
	m.Cycles = 0

	m.Timers.Reset()
	m.soundEdge = timers.SoundNone

	m.dsp.Clear()
}

// Load a program into memory and reset the machine. The previous program is
// retained if the new program is too large.
func (m *Machine) Load(rom []uint8) error {
	if len(rom) > memory.MaxProgramSize {
		return fmt.Errorf("machine: %w: %d bytes (max %d)", ErrROMSize, len(rom), memory.MaxProgramSize)
	}

	m.rom = make([]uint8, len(rom))
	copy(m.rom, rom)
	m.Reset()

	return nil
}

// Display returns the framebuffer.
func (m *Machine) Display() *display.Display {
	return m.dsp
}

// Keypad returns the key matrix.
func (m *Machine) Keypad() *keypad.Keypad {
	return m.kp
}

// SoundEdge returns the change in tone state caused by the most recent call
// to Step().
func (m *Machine) SoundEdge() timers.SoundEdge {
	return m.soundEdge
}

// ToneOn returns true if the tone should be sounding.
func (m *Machine) ToneOn() bool {
	return m.Timers.ToneOn()
}

// Beeping returns true if the most recent call to Step() took the sound timer
// from one to zero.
func (m *Machine) Beeping() bool {
	return m.Timers.Beeped()
}

// Step executes one instruction and then decrements the timers. A returned
// error is fatal.
func (m *Machine) Step() error {
	hi, err := m.Mem.Read(m.PC)
	if err != nil {
		return fmt.Errorf("machine: %w: %w", ErrFetch, err)
	}
	lo, err := m.Mem.Read(m.PC + 1)
	if err != nil {
		return fmt.Errorf("machine: %w: %w", ErrFetch, err)
	}

	op := opcode.Compose(hi, lo)
	m.LastOpcode = op

	if err := m.execute(op); err != nil {
		return err
	}

	m.Cycles++

	m.soundEdge = m.Timers.Tick()
	if m.Timers.Beeped() && m.logBeep() {
		logger.Log(m.perm(), "machine", "BEEP")
	}

	return nil
}

// whether the expiry of the sound timer should be logged
func (m *Machine) logBeep() bool {
	if m.env == nil || m.env.Prefs == nil {
		return true
	}
	return m.env.Prefs.LogBeep.Get().(bool)
}

// the permission used when logging. a nil environment is always allowed to
// log
func (m *Machine) perm() logger.Permission {
	if m.env == nil {
		return logger.Allow
	}
	return m.env
}

// random byte from the environment
func (m *Machine) random() uint8 {
	if m.env == nil || m.env.Random == nil {
		return 0
	}
	return m.env.Random.Byte()
}

// read from memory on behalf of an instruction
func (m *Machine) read(address uint16) (uint8, error) {
	v, err := m.Mem.Read(address)
	if err != nil {
		return 0, fmt.Errorf("machine: %w: %s: %w", ErrMemoryAccess, m.LastOpcode, err)
	}
	return v, nil
}

// write to memory on behalf of an instruction
func (m *Machine) write(address uint16, value uint8) error {
	if err := m.Mem.Write(address, value); err != nil {
		return fmt.Errorf("machine: %w: %s: %w", ErrMemoryAccess, m.LastOpcode, err)
	}
	return nil
}

// IsFatal returns true if the error is one of the errors that can be returned
// by Step() or Load().
func IsFatal(err error) bool {
	return errors.Is(err, ErrStackOverflow) ||
		errors.Is(err, ErrStackUnderflow) ||
		errors.Is(err, ErrFetch) ||
		errors.Is(err, ErrMemoryAccess) ||
		errors.Is(err, ErrROMSize)
}
