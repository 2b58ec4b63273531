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


package performance

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/machine"
	"github.com/jetsetilly/gopher8/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := ParseProfileString("cpu, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileNone)

	p, err = ParseProfileString("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "ALL")

	_, err = ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCalcIPS(t *testing.T) {
	ips, ratio := CalcIPS(6000, 2.0, 600)
	test.ExpectEquality(t, ips, 3000.0)
	test.ExpectEquality(t, ratio, 5.0)

	ips, ratio = CalcIPS(100, 0, 600)
	test.ExpectEquality(t, ips, 0.0)
	test.ExpectEquality(t, ratio, 0.0)
}

func newMachine(t *testing.T, program ...uint8) *machine.Machine {
	t.Helper()
	env := environment.NewEnvironment("test", nil)
	env.Normalise()
	mc := machine.NewMachine(env)
	test.DemandSuccess(t, mc.Load(program))
	return mc
}

func TestCheck(t *testing.T) {
	// jump to self
	mc := newMachine(t, 0x12, 0x00)

	out := &strings.Builder{}
	err := check(out, ProfileNone, mc, 600, 0, 50*time.Millisecond)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "instructions/sec"))
	test.ExpectSuccess(t, mc.Cycles > 0)

	err = Check(out, ProfileNone, mc, 600, "not a duration")
	test.ExpectFailure(t, err)
}

func TestCheckFatal(t *testing.T) {
	// return with an empty stack
	mc := newMachine(t, 0x00, 0xee)

	err := check(&strings.Builder{}, ProfileNone, mc, 600, 0, time.Second)
	test.ExpectSuccess(t, errors.Is(err, machine.ErrStackUnderflow))
}
