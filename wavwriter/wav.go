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


// Package wavwriter allows writing of the machine's tone to disk as a WAV
// file. Note that audio data is buffered in memory in its entirety, and
// written to disk when mixing ends.
//
// The WavWriter does not run in real time. The length of each tone and each
// silence is measured with a clock function supplied by the caller, usually
// the emulated time of the driver loop. Recordings of the same ROM and the
// same input are therefore identical.
package wavwriter

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/tone"
	"github.com/youpy/go-wav"
)

const bitDepth = 16

// Clock returns the time elapsed since the start of the emulation.
type Clock func() time.Duration

// WavWriter implements the gui.AudioMixer interface.
type WavWriter struct {
	filename string
	gen      *tone.Generator
	clock    Clock

	buffer []wav.Sample

	// time at which the most recent tone started or stopped
	mark   time.Duration
	toneOn bool

	ints []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, gen *tone.Generator, clock Clock) (*WavWriter, error) {
	if gen == nil {
		return nil, fmt.Errorf("wavwriter: no tone generator")
	}
	if clock == nil {
		return nil, fmt.Errorf("wavwriter: no clock")
	}

	aw := &WavWriter{
		filename: filename,
		gen:      gen,
		clock:    clock,
		buffer:   make([]wav.Sample, 0),
	}

	return aw, nil
}

// number of samples covering the period from the mark to now.
func (aw *WavWriter) samplesSinceMark(now time.Duration) int {
	d := now - aw.mark
	if d <= 0 {
		return 0
	}
	return int(math.Round(d.Seconds() * float64(aw.gen.SampleRate())))
}

// fill buffer with n samples. samples are taken from the tone generator or
// are silent.
func (aw *WavWriter) fill(n int, audible bool) {
	if n <= 0 {
		return
	}

	if cap(aw.ints) < n {
		aw.ints = make([]int, n)
	}
	ints := aw.ints[:n]

	if audible {
		aw.gen.ReadInt(ints, bitDepth)
	} else {
		clear(ints)
	}

	for _, v := range ints {
		w := wav.Sample{}
		w.Values[0] = v
		aw.buffer = append(aw.buffer, w)
	}
}

// SetTone implements the gui.AudioMixer interface.
func (aw *WavWriter) SetTone(on bool) error {
	if on == aw.toneOn {
		return nil
	}

	now := aw.clock()
	aw.fill(aw.samplesSinceMark(now), aw.toneOn)
	aw.mark = now
	aw.toneOn = on

	if on {
		aw.gen.Restart()
	}

	return nil
}

// NumSamples returns the number of samples that have been recorded so far.
func (aw *WavWriter) NumSamples() int {
	return len(aw.buffer)
}

// EndMixing implements the gui.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	// complete the final period. trailing silence is not recorded
	if aw.toneOn {
		if err := aw.SetTone(false); err != nil {
			return err
		}
	}

	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 1, uint32(aw.gen.SampleRate()), bitDepth)
	if enc == nil {
		return fmt.Errorf("wavwriter: bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.WriteSamples(aw.buffer); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
