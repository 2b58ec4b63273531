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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

// initialise base seed
func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Random is a random number generator for the emulation.
type Random struct {
	rng *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	rnd := &Random{}
	rnd.Reset()
	return rnd
}

// Reset the generator. If ZeroSeed is true the sequence of numbers following
// a Reset() is always the same.
func (rnd *Random) Reset() {
	seed := baseSeed
	if rnd.ZeroSeed {
		seed = 0
	}
	rnd.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Byte returns a random value in the range 0 to 255.
func (rnd *Random) Byte() uint8 {
	if rnd.rng == nil {
		rnd.Reset()
	}
	return uint8(rnd.rng.UintN(256))
}

// IntN returns a random value in the range 0 to n-1.
func (rnd *Random) IntN(n int) int {
	if rnd.rng == nil {
		rnd.Reset()
	}
	return rnd.rng.IntN(n)
}
