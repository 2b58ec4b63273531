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

// Package keypad is the 16 key input matrix of the machine.
//
// Keys are identified by their hexadecimal value, 0x0 to 0xF. The state of
// each key is written by the input handler and read by the machine during
// instruction execution. The two sides can run in different goroutines. There
// is no queueing of input events, the most recent write for a key is the
// value seen by the next read.
package keypad
