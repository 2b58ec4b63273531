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

package timers_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/test"
)

func TestDelay(t *testing.T) {
	var tmr timers.Timers
	tmr.Delay = 5

	for i := 4; i >= 0; i-- {
		tmr.Tick()
		test.ExpectEquality(t, tmr.Delay, uint8(i))
	}

	// remains at zero
	tmr.Tick()
	test.ExpectEquality(t, tmr.Delay, 0)
}

func TestSoundEdges(t *testing.T) {
	var tmr timers.Timers
	test.ExpectEquality(t, tmr.Tick(), timers.SoundNone)

	tmr.Sound = 3
	test.ExpectEquality(t, tmr.Tick(), timers.SoundStart)
	test.ExpectSuccess(t, tmr.ToneOn())
	test.ExpectEquality(t, tmr.Tick(), timers.SoundNone)
	test.ExpectFailure(t, tmr.Beeped())

	// one to zero
	test.ExpectEquality(t, tmr.Tick(), timers.SoundNone)
	test.ExpectSuccess(t, tmr.Beeped())
	test.ExpectEquality(t, tmr.Sound, 0)

	test.ExpectEquality(t, tmr.Tick(), timers.SoundEnd)
	test.ExpectFailure(t, tmr.ToneOn())
	test.ExpectFailure(t, tmr.Beeped())

	test.ExpectEquality(t, tmr.Tick(), timers.SoundNone)
}

func TestShortestTone(t *testing.T) {
	var tmr timers.Timers
	tmr.Sound = 1
	test.ExpectEquality(t, tmr.Tick(), timers.SoundStart)
	test.ExpectSuccess(t, tmr.Beeped())
	test.ExpectEquality(t, tmr.Tick(), timers.SoundEnd)
}

func TestExtendedTone(t *testing.T) {
	var tmr timers.Timers
	tmr.Sound = 2
	test.ExpectEquality(t, tmr.Tick(), timers.SoundStart)

	// sound timer rewritten while the tone is on. no new start edge
	tmr.Sound = 2
	test.ExpectEquality(t, tmr.Tick(), timers.SoundNone)
	test.ExpectEquality(t, tmr.Tick(), timers.SoundNone)
	test.ExpectEquality(t, tmr.Tick(), timers.SoundEnd)
}

func TestReset(t *testing.T) {
	var tmr timers.Timers
	tmr.Delay = 10
	tmr.Sound = 10
	tmr.Tick()
	tmr.Reset()
	test.ExpectEquality(t, tmr.Delay, 0)
	test.ExpectEquality(t, tmr.Sound, 0)
	test.ExpectFailure(t, tmr.ToneOn())
	test.ExpectEquality(t, tmr.String(), "DT=00 ST=00")
}
