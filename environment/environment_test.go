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

package environment_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

func TestPermission(t *testing.T) {
	mainEnv := environment.NewEnvironment(environment.MainEmulation, nil)
	test.ExpectSuccess(t, mainEnv.IsMainEmulation())
	test.ExpectSuccess(t, mainEnv.AllowLogging())

	other := environment.NewEnvironment("headless", nil)
	test.ExpectFailure(t, other.IsMainEmulation())

	log := logger.NewLogger(10)
	w := &test.CompareWriter{}
	log.Log(other, "test", "not logged")
	log.Log(mainEnv, "test", "logged")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: logged\n")
}

func TestNormalise(t *testing.T) {
	a := environment.NewEnvironment("a", nil)
	b := environment.NewEnvironment("b", nil)
	a.Normalise()
	b.Normalise()
	for range 32 {
		test.ExpectEquality(t, a.Random.Byte(), b.Random.Byte())
	}
}
