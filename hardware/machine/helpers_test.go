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

package machine_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/machine"
	"github.com/jetsetilly/gopher8/test"
)

// newMachine returns a machine with the program loaded. the environment is
// not the main emulation so nothing is written to the central log
func newMachine(t *testing.T, program ...uint8) *machine.Machine {
	t.Helper()
	env := environment.NewEnvironment("test", nil)
	env.Normalise()
	m := machine.NewMachine(env)
	test.DemandSuccess(t, m.Load(program))
	return m
}

// step the machine the number of times specified. any error is a testing
// fatality
func step(t *testing.T, m *machine.Machine, n int) {
	t.Helper()
	for range n {
		test.DemandSuccess(t, m.Step())
	}
}
