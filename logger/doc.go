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

// Package logger is the central log for the emulator. Log entries are made up
// of a tag and a detail string. The tag is usually the name of the package or
// area of the emulation making the entry.
//
// Identical entries made consecutively are collapsed into a single entry with
// a repeat count.
//
// The package level functions all operate on the central logger. Additional
// loggers can be created with NewLogger() but this is really only useful for
// testing.
//
// Requests to make a log entry must be accompanied by a Permission. The
// Environment type implements Permission so that logging can be restricted to
// the main emulation instance.
package logger
