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

// Package test contains helper functions that remove common boilerplate from
// tests.
//
// The Expect* functions report a failure with t.Errorf() and allow the test to
// continue. The Demand* functions report with t.Fatalf() and should be used
// when the value is needed by later parts of the test.
//
// The nil value is considered a success by ExpectSuccess() and a failure by
// ExpectFailure(). This is how a nil error is normally interpreted.
//
// The writer types implement io.Writer and are useful for capturing output.
package test
