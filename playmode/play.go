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


package playmode

import (
	"context"
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
)

// Run the emulation until the user quits, the context is cancelled or the
// machine encounters a fatal error. Quitting and cancellation are not errors.
func (pl *Playmode) Run(ctx context.Context) error {
	lmtr, err := limiter.NewLimiter(FrameRate)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}
	defer lmtr.Stop()

	logger.Logf(logger.Allow, "playmode", "running at %dHz", pl.cycleRate())

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := pl.eventHandler(); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}

		if err := pl.batch(); err != nil {
			return fmt.Errorf("playmode: %w", err)
		}

		lmtr.Wait()
	}
}

// RunFor runs the emulation, without pacing, until the specified number of
// instructions have been executed. User input is serviced between batches.
func (pl *Playmode) RunFor(cycles uint64) error {
	end := pl.cycles + cycles

	for pl.cycles < end {
		if err := pl.eventHandler(); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}

		// the final batch may need to be shortened
		n := min(uint64(pl.batchSize()), end-pl.cycles)
		for range n {
			if err := pl.step(); err != nil {
				return fmt.Errorf("playmode: %w", err)
			}
		}

		if err := pl.present(); err != nil {
			return err
		}
	}

	return nil
}
