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

import "errors"

// Sentinel errors returned by Step() and Load(). All are fatal.
var (
	// a subroutine call was made with the stack already full
	ErrStackOverflow = errors.New("stack overflow")

	// a subroutine return was made with an empty stack
	ErrStackUnderflow = errors.New("stack underflow")

	// the instruction at PC could not be read
	ErrFetch = errors.New("instruction fetch out of bounds")

	// an instruction tried to read or write memory outside of the address
	// space
	ErrMemoryAccess = errors.New("memory access out of bounds")

	// the program is too large for the program area of memory
	ErrROMSize = errors.New("rom too large")
)
