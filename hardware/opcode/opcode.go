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

// Package opcode defines the 16 bit instruction word and the fields that can
// be extracted from it.
//
// Instructions are stored in memory big-endian. The fields are named after
// the conventional nibble notation:
//
//	C X Y N
//	    NN
//	  NNN
//
// Where C is the instruction class (the top nibble).
package opcode

import "fmt"

// Opcode is a single instruction word.
type Opcode uint16

// Compose creates an Opcode from two bytes in memory order.
func Compose(hi uint8, lo uint8) Opcode {
	return Opcode(uint16(hi)<<8 | uint16(lo))
}

func (op Opcode) String() string {
	return fmt.Sprintf("%04X", uint16(op))
}

// Class returns the top nibble of the opcode.
func (op Opcode) Class() uint8 {
	return uint8(op >> 12)
}

// X returns the second nibble. Usually the index of a register.
func (op Opcode) X() uint8 {
	return uint8(op>>8) & 0x0f
}

// Y returns the third nibble. Usually the index of a register.
func (op Opcode) Y() uint8 {
	return uint8(op>>4) & 0x0f
}

// N returns the lowest nibble.
func (op Opcode) N() uint8 {
	return uint8(op) & 0x0f
}

// NN returns the lowest byte.
func (op Opcode) NN() uint8 {
	return uint8(op)
}

// NNN returns the lowest 12 bits. Usually an address.
func (op Opcode) NNN() uint16 {
	return uint16(op) & 0x0fff
}
