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

package memory

import (
	"errors"
	"fmt"
)

// Size of the address space in bytes.
const Size = 4096

// ProgramOrigin is the address at which programs are loaded and at which
// execution begins.
const ProgramOrigin = uint16(0x200)

// MaxProgramSize is the largest program that can be loaded.
const MaxProgramSize = Size - int(ProgramOrigin)

// Sentinel errors returned by the memory package.
var (
	ErrAddress     = errors.New("address out of range")
	ErrProgramSize = errors.New("program too large")
)

// Memory is the complete address space of the machine.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font is written to memory.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset clears all memory and restores the font.
func (mem *Memory) Reset() {
	clear(mem.data[:])
	copy(mem.data[FontOrigin:], font[:])
}

// Read returns the byte at address.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= Size {
		return 0, fmt.Errorf("memory: read: %w: %#04x", ErrAddress, address)
	}
	return mem.data[address], nil
}

// Write value to address.
func (mem *Memory) Write(address uint16, value uint8) error {
	if int(address) >= Size {
		return fmt.Errorf("memory: write: %w: %#04x", ErrAddress, address)
	}
	mem.data[address] = value
	return nil
}

// LoadProgram copies data into memory at ProgramOrigin. Memory above the
// program is cleared.
func (mem *Memory) LoadProgram(data []uint8) error {
	if len(data) > MaxProgramSize {
		return fmt.Errorf("memory: %w: %d bytes (max %d)", ErrProgramSize, len(data), MaxProgramSize)
	}
	n := copy(mem.data[ProgramOrigin:], data)
	clear(mem.data[int(ProgramOrigin)+n:])
	return nil
}

// Peek returns a copy of the memory from address to address+n. Used by
// diagnostic tools and tests. The returned slice is truncated at the end of
// the address space.
func (mem *Memory) Peek(address uint16, n int) []uint8 {
	if int(address) >= Size {
		return nil
	}
	end := min(int(address)+n, Size)
	c := make([]uint8, end-int(address))
	copy(c, mem.data[address:end])
	return c
}
