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
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/opcode"
	"github.com/jetsetilly/gopher8/logger"
)

// execute the instruction. dispatch is on the instruction class and then, for
// the classes that need it, on the low nibble or low byte. every handler is
// responsible for advancing the program counter
func (m *Machine) execute(op opcode.Opcode) error {
	switch op.Class() {
	case 0x0:
		switch op {
		case 0x00e0:
			m.dsp.Clear()
			m.next()
		case 0x00ee:
			return m.ret()
		default:
			m.unknown(op)
		}

	case 0x1:
		m.PC = op.NNN()

	case 0x2:
		return m.call(op.NNN())

	case 0x3:
		m.skipIf(m.V[op.X()] == op.NN())

	case 0x4:
		m.skipIf(m.V[op.X()] != op.NN())

	case 0x5:
		if op.N() != 0 {
			m.unknown(op)
			break // switch
		}
		m.skipIf(m.V[op.X()] == m.V[op.Y()])

	case 0x6:
		m.V[op.X()] = op.NN()
		m.next()

	case 0x7:
		m.V[op.X()] += op.NN()
		m.next()

	case 0x8:
		m.arithmetic(op)

	case 0x9:
		if op.N() != 0 {
			m.unknown(op)
			break // switch
		}
		m.skipIf(m.V[op.X()] != m.V[op.Y()])

	case 0xa:
		m.I = op.NNN()
		m.next()

	case 0xb:
		m.PC = op.NNN() + uint16(m.V[0])

	case 0xc:
		m.V[op.X()] = m.random() & op.NN()
		m.next()

	case 0xd:
		return m.draw(op)

	case 0xe:
		switch op.NN() {
		case 0x9e:
			m.skipIf(m.kp.IsPressed(m.V[op.X()]))
		case 0xa1:
			m.skipIf(!m.kp.IsPressed(m.V[op.X()]))
		default:
			m.unknown(op)
		}

	case 0xf:
		return m.misc(op)
	}

	return nil
}

// advance to the next instruction
func (m *Machine) next() {
	m.PC += 2
}

// skip the next instruction if the condition is true
func (m *Machine) skipIf(cond bool) {
	if cond {
		m.PC += 4
	} else {
		m.PC += 2
	}
}

// unrecognised instructions are logged and skipped
func (m *Machine) unknown(op opcode.Opcode) {
	logger.Logf(m.perm(), "machine", "unknown opcode %s at %#04x", op, m.PC)
	m.UnknownOpcodes++
	m.next()
}

// the address of the call instruction is pushed to the stack. ret() pops it
// and continues from the instruction after it
func (m *Machine) call(address uint16) error {
	if m.SP >= StackDepth {
		return fmt.Errorf("machine: %w: call to %#04x from %#04x", ErrStackOverflow, address, m.PC)
	}
	m.Stack[m.SP] = m.PC
	m.SP++
	m.PC = address
	return nil
}

func (m *Machine) ret() error {
	if m.SP == 0 {
		return fmt.Errorf("machine: %w: return from %#04x", ErrStackUnderflow, m.PC)
	}
	m.SP--
	m.PC = m.Stack[m.SP]
	m.next()
	return nil
}

// the 8XYN instructions. the result is calculated from the operand values
// before VF is written so that the flag is the final value of VF when X is 0xF
func (m *Machine) arithmetic(op opcode.Opcode) {
	x := op.X()
	vx := m.V[x]
	vy := m.V[op.Y()]

	switch op.N() {
	case 0x0:
		m.V[x] = vy
	case 0x1:
		m.V[x] = vx | vy
	case 0x2:
		m.V[x] = vx & vy
	case 0x3:
		m.V[x] = vx ^ vy
	case 0x4:
		m.V[x] = vx + vy
		m.V[0xf] = flag(uint16(vx)+uint16(vy) > 0xff)
	case 0x5:
		m.V[x] = vx - vy
		m.V[0xf] = flag(vx >= vy)
	case 0x6:
		m.V[x] = vx >> 1
		m.V[0xf] = vx & 0x01
	case 0x7:
		m.V[x] = vy - vx
		m.V[0xf] = flag(vy >= vx)
	case 0xe:
		m.V[x] = vx << 1
		m.V[0xf] = vx >> 7
	default:
		m.unknown(op)
		return
	}

	m.next()
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// draw N rows of the sprite at I to the position given by VX and VY. VF is
// set to one if any pixel is erased
func (m *Machine) draw(op opcode.Opcode) error {
	sprite := make([]uint8, op.N())
	for row := range sprite {
		v, err := m.read(m.I + uint16(row))
		if err != nil {
			return err
		}
		sprite[row] = v
	}

	m.V[0xf] = flag(m.dsp.Draw(m.V[op.X()], m.V[op.Y()], sprite))
	m.next()

	return nil
}

// the FXNN instructions
func (m *Machine) misc(op opcode.Opcode) error {
	x := op.X()

	switch op.NN() {
	case 0x07:
		m.V[x] = m.Timers.Delay

	case 0x0a:
		// the program counter is not advanced until a key is pressed. the
		// instruction is executed again on the next step and the timers
		// continue to run in the meantime
		k := m.kp.FirstPressed()
		if k == keypad.NoKey {
			return nil
		}
		m.V[x] = uint8(k)

	case 0x15:
		m.Timers.Delay = m.V[x]

	case 0x18:
		m.Timers.Sound = m.V[x]

	case 0x1e:
		m.I += uint16(m.V[x])

	case 0x29:
		m.I = memory.GlyphAddress(m.V[x])

	case 0x33:
		v := m.V[x]
		for i, d := range []uint8{v / 100, (v / 10) % 10, v % 10} {
			if err := m.write(m.I+uint16(i), d); err != nil {
				return err
			}
		}

	case 0x55:
		for i := range int(x) + 1 {
			if err := m.write(m.I+uint16(i), m.V[i]); err != nil {
				return err
			}
		}

	case 0x65:
		for i := range int(x) + 1 {
			v, err := m.read(m.I + uint16(i))
			if err != nil {
				return err
			}
			m.V[i] = v
		}

	default:
		m.unknown(op)
		return nil
	}

	m.next()

	return nil
}
