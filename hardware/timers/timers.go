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

// Package timers implements the delay and sound timers of the machine.
//
// Both timers are eight bit registers that count down to zero, decrementing
// once per call to Tick(). The sound timer additionally reports edges that
// indicate when the tone should be switched on and off.
package timers

import "fmt"

// SoundEdge is returned by Tick() to indicate a change in the tone state.
type SoundEdge int

// List of valid SoundEdge values.
const (
	SoundNone SoundEdge = iota
	SoundStart
	SoundEnd
)

func (e SoundEdge) String() string {
	switch e {
	case SoundStart:
		return "start"
	case SoundEnd:
		return "end"
	}
	return "none"
}

// Timers contains the delay and sound timers. The zero value is ready to use.
type Timers struct {
	Delay uint8
	Sound uint8

	// whether the tone is currently on. the tone is switched on by the first
	// tick that sees a non-zero sound timer and off by the first tick that
	// sees a zero sound timer
	toneOn bool

	// the most recent tick took the sound timer from one to zero
	beeped bool
}

func (tmr *Timers) String() string {
	return fmt.Sprintf("DT=%02x ST=%02x", tmr.Delay, tmr.Sound)
}

// Reset both timers to zero and switch off the tone.
func (tmr *Timers) Reset() {
	*tmr = Timers{}
}

// Tick decrements the timers and returns any change in tone state.
func (tmr *Timers) Tick() SoundEdge {
	edge := SoundNone
	tmr.beeped = false

	if tmr.Delay > 0 {
		tmr.Delay--
	}

	if tmr.Sound > 0 {
		if !tmr.toneOn {
			tmr.toneOn = true
			edge = SoundStart
		}
		if tmr.Sound == 1 {
			tmr.beeped = true
		}
		tmr.Sound--
	} else if tmr.toneOn {
		tmr.toneOn = false
		edge = SoundEnd
	}

	return edge
}

// ToneOn returns true if the tone should currently be sounding.
func (tmr *Timers) ToneOn() bool {
	return tmr.toneOn
}

// Beeped returns true if the most recent call to Tick() took the sound timer
// from one to zero.
func (tmr *Timers) Beeped() bool {
	return tmr.beeped
}
