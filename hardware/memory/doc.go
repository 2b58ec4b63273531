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

// Package memory implements the 4096 byte address space of the machine.
//
// The lowest 512 bytes are reserved for the interpreter. The only thing
// stored there is the built-in font, starting at address zero. Programs are
// loaded at ProgramOrigin.
//
// All access is bounds checked. Reading or writing outside of the address
// space returns an error wrapping ErrAddress. Callers should treat this as a
// fatal condition.
package memory
