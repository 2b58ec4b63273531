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


package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/test"
)

func TestLimiter(t *testing.T) {
	_, err := limiter.NewLimiter(0)
	test.ExpectFailure(t, err)

	lmtr, err := limiter.NewLimiter(100)
	test.DemandSuccess(t, err)
	defer lmtr.Stop()

	test.ExpectEquality(t, lmtr.Rate(), 100)

	// twenty ticks at 100Hz should take around 200ms. the tolerance is
	// generous because the test machine may be busy
	start := time.Now()
	for range 20 {
		lmtr.Wait()
	}
	elapsed := time.Since(start)
	test.ExpectApproximate(t, elapsed.Seconds(), 0.2, 0.5)

	test.ExpectFailure(t, lmtr.SetLimit(-1))
	test.ExpectEquality(t, lmtr.Rate(), 100)
	test.ExpectSuccess(t, lmtr.SetLimit(1000))
	test.ExpectEquality(t, lmtr.Rate(), 1000)
}

func TestStop(t *testing.T) {
	lmtr, err := limiter.NewLimiter(1)
	test.DemandSuccess(t, err)

	// consume the immediate first tick
	lmtr.Wait()
	lmtr.Stop()

	// wait returns immediately after stop
	start := time.Now()
	lmtr.Wait()
	test.ExpectSuccess(t, time.Since(start) < 500*time.Millisecond)
}
