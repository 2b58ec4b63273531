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

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")

	w.Reset()
	log.Clear()
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "machine", "unknown opcode")
	log.Log(logger.Allow, "machine", "unknown opcode")
	log.Logf(logger.Allow, "machine", "unknown %s", "opcode")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "machine: unknown opcode (repeat x3)\n")

	// newlines are removed
	w.Reset()
	log.Clear()
	log.Log(logger.Allow, "mach\nine", "two\nlines")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "machine: twolines\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

type prohibit struct {
	allow bool
}

func (p prohibit) AllowLogging() bool {
	return p.allow
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibit{allow: false}, "test", "not allowed")
	log.Logf(prohibit{allow: false}, "test", "not %s", "allowed")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(prohibit{allow: true}, "test", "allowed")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: allowed\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	echo := &test.CompareWriter{}

	log.SetEcho(echo)
	log.Log(logger.Allow, "echo", "one")
	log.Log(logger.Allow, "echo", "one")
	test.ExpectSuccess(t, echo.Compare("echo: one\necho: one (repeat x2)\n"))

	echo.Clear()
	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "two")
	test.ExpectEquality(t, echo.String(), "")
}

func TestCentralTail(t *testing.T) {
	logger.Log(logger.Allow, "machine", "unknown opcode 0x5121 at 0x0204")
	logger.Logf(logger.Allow, "machine", "stack underflow at %s", "0x0206")

	// the capped writer shows that the tail is no longer than it should be
	w, err := test.NewCappedWriter(40)
	test.DemandSuccess(t, err)
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "machine: stack underflow at 0x0206\n")

	w.Reset()
	logger.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "machine: unknown opcode 0x5121 at 0x0204")
}
