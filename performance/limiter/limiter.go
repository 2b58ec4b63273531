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


// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lmtr, _ := limiter.NewLimiter(60)
//	defer lmtr.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lmtr.Wait()
//		renderImage()
//	}
package limiter

import (
	"fmt"
	"sync/atomic"
	"time"
)

// this is a really rough attempt at rate limiting. probably only any good if
// base performance of the machine is well above the required rate.

// Limiter will trigger rate times per second.
type Limiter struct {
	rate   atomic.Int64
	period atomic.Int64 // time.Duration

	tick chan bool
	quit chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(rate int) (*Limiter, error) {
	lim := &Limiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}

	if err := lim.SetLimit(rate); err != nil {
		return nil, err
	}

	// run ticker concurrently
	go func() {
		t := time.Now()
		adjusted := time.Duration(lim.period.Load())
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			time.Sleep(adjusted)

			// adjust the next sleep period by the error in the previous one
			period := time.Duration(lim.period.Load())
			nt := time.Now()
			adjusted -= nt.Sub(t) - period

			// don't let a long stall (or a change of limit) cause a burst of
			// catch up ticks
			adjusted = min(max(adjusted, 0), period)

			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(rate int) error {
	if rate <= 0 {
		return fmt.Errorf("limiter: rate must be positive (%d)", rate)
	}
	lim.rate.Store(int64(rate))
	lim.period.Store(int64(time.Second) / int64(rate))
	return nil
}

// Rate returns the current limit.
func (lim *Limiter) Rate() int {
	return int(lim.rate.Load())
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	select {
	case <-lim.tick:
	case <-lim.quit:
	}
}

// HasWaited will return true if time has already elapsed and false if it is
// still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the limiter. Any subsequent calls to Wait() will return immediately.
// Stop must not be called more than once.
func (lim *Limiter) Stop() {
	close(lim.quit)
}
