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
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/hardware/machine"
)

// sentinel error returned by the run loop.
var timedOut = errors.New("performance timed out")

// the number of instructions executed between checks of the timer channel.
// checking the channel every instruction is relatively expensive
const performanceBrake = 1000

// the time allowed for the emulation to settle before measurement begins
const leadTime = 2 * time.Second

// Check the performance of the interpreter using the supplied machine, which
// should already have a program loaded.
//
// Emulation will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument. The cycleRate argument is used to express the result as a multiple
// of the rate the machine would run at normally.
func Check(output io.Writer, profile Profile, mc *machine.Machine, cycleRate int, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	return check(output, profile, mc, cycleRate, leadTime, dur)
}

func check(output io.Writer, profile Profile, mc *machine.Machine, cycleRate int, lead time.Duration, dur time.Duration) error {
	if dur <= 0 {
		return fmt.Errorf("performance: duration must be positive")
	}

	var startCycle uint64

	runner := func() error {
		// signals false when the leadtime has elapsed and true when the
		// measurement period has elapsed
		timerChan := make(chan bool, 1)

		time.AfterFunc(lead, func() {
			timerChan <- false
		})

		brake := 0
		for {
			if err := mc.Step(); err != nil {
				return err
			}

			brake++
			if brake < performanceBrake {
				continue
			}
			brake = 0

			select {
			case v := <-timerChan:
				if v {
					return timedOut
				}

				// leadtime has concluded. the performance measurement has
				// begun and we should record the start cycle
				startCycle = mc.Cycles
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			default:
			}
		}
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	numInstructions := mc.Cycles - startCycle
	ips, ratio := CalcIPS(numInstructions, dur.Seconds(), cycleRate)
	fmt.Fprintf(output, "%.0f instructions/sec (%d instructions in %.2f seconds) %.1fx of %dHz\n",
		ips, numInstructions, dur.Seconds(), ratio, cycleRate)

	return nil
}

// CalcIPS takes the number of instructions and duration (in seconds) and
// returns the instructions-per-second and the ratio of that value to the
// cycle rate.
func CalcIPS(numInstructions uint64, duration float64, cycleRate int) (ips float64, ratio float64) {
	if duration <= 0 {
		return 0, 0
	}
	ips = float64(numInstructions) / duration
	if cycleRate > 0 {
		ratio = ips / float64(cycleRate)
	}
	return ips, ratio
}
