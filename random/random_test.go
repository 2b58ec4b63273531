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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.ZeroSeed = true
	b.ZeroSeed = true
	a.Reset()
	b.Reset()

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Byte(), b.Byte())
		test.ExpectEquality(t, a.IntN(i), b.IntN(i))
	}
}

func TestResetRepeats(t *testing.T) {
	a := random.NewRandom()
	a.ZeroSeed = true
	a.Reset()

	first := make([]uint8, 16)
	for i := range first {
		first[i] = a.Byte()
	}

	a.Reset()
	for i := range first {
		test.ExpectEquality(t, a.Byte(), first[i])
	}
}

func TestRange(t *testing.T) {
	var r random.Random
	for range 1000 {
		n := r.IntN(16)
		test.ExpectSuccess(t, n >= 0 && n < 16)
	}
}
