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


package tone

import (
	"math"
	"sync"

	"github.com/jetsetilly/gopher8/logger"
)

// DefaultSampleRate is the sample rate used by the SDL audio device and the
// WAV writer.
const DefaultSampleRate = 44100

// Generator produces mono sample data for the tone. The frequency, volume and
// sample preferences are consulted every time data is read, so changes to
// the preferences are heard immediately.
type Generator struct {
	crit sync.Mutex

	prefs      *Preferences
	sampleRate int

	// loaded sample. nil if the square wave is being used. sampleName is the
	// value of the sample preference when the sample was loaded
	sample     *Sample
	sampleName string

	// position in the square wave cycle (0.0 to 1.0) or the index into the
	// sample data
	phase float64
}

// NewGenerator is the preferred method of initialisation for the Generator
// type. The Preferences argument can be nil, in which case the default
// square wave is generated.
func NewGenerator(p *Preferences, sampleRate int) *Generator {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	gen := &Generator{
		prefs:      p,
		sampleRate: sampleRate,
	}

	if p != nil {
		gen.loadSample(p.Sample.String())
	}

	return gen
}

// loadSample must be called with the critical section locked (or before the
// generator is shared). failure to load the sample is not fatal: the
// generator falls back to the square wave.
func (gen *Generator) loadSample(filename string) {
	gen.sample = nil
	gen.sampleName = filename
	gen.phase = 0
	if filename == "" {
		return
	}

	s, err := LoadSample(filename)
	if err != nil {
		logger.Logf(logger.Allow, logTag, "using square wave: %v", err)
		return
	}

	if len(s.Data) == 0 || s.SampleRate <= 0 {
		logger.Logf(logger.Allow, logTag, "using square wave: empty sample: %s", filename)
		return
	}

	gen.sample = &s
}

// more than one generator can share the same preferences so a change to the
// sample preference is noticed when data is next read, rather than with a
// preference hook. must be called with the critical section locked
func (gen *Generator) checkSample() {
	if gen.prefs == nil {
		return
	}
	if name := gen.prefs.Sample.String(); name != gen.sampleName {
		gen.loadSample(name)
	}
}

// SampleRate returns the rate at which data is generated.
func (gen *Generator) SampleRate() int {
	return gen.sampleRate
}

// Restart the tone from the beginning of the waveform. Called when the tone
// starts so that every beep sounds the same.
func (gen *Generator) Restart() {
	gen.crit.Lock()
	defer gen.crit.Unlock()
	gen.phase = 0
}

func (gen *Generator) frequency() float64 {
	if gen.prefs == nil {
		return DefaultFrequency
	}
	return gen.prefs.Frequency.Get().(float64)
}

func (gen *Generator) volume() float64 {
	if gen.prefs == nil {
		return DefaultVolume
	}
	return gen.prefs.Volume.Get().(float64)
}

// next must be called with the critical section locked. the volume is passed
// as an argument so that the preference is only read once per buffer.
func (gen *Generator) next(freq float64, vol float64) float64 {
	if gen.sample != nil {
		v := float64(gen.sample.Data[int(gen.phase)])

		// the sample is resampled to the generator's rate by stepping through
		// the data at the ratio of the two rates
		gen.phase += float64(gen.sample.SampleRate) / float64(gen.sampleRate)
		if int(gen.phase) >= len(gen.sample.Data) {
			gen.phase = 0
		}
		return v * vol
	}

	v := vol
	if gen.phase >= 0.5 {
		v = -vol
	}
	gen.phase += freq / float64(gen.sampleRate)
	gen.phase -= math.Floor(gen.phase)
	return v
}

// ReadFloat fills the buffer with sample values in the range -1.0 to 1.0.
func (gen *Generator) ReadFloat(buf []float64) {
	gen.crit.Lock()
	defer gen.crit.Unlock()

	gen.checkSample()
	freq := gen.frequency()
	vol := gen.volume()
	for i := range buf {
		buf[i] = gen.next(freq, vol)
	}
}

// ReadU8 fills the buffer with unsigned 8 bit sample values. Silence is the
// value 128.
func (gen *Generator) ReadU8(buf []uint8) {
	gen.crit.Lock()
	defer gen.crit.Unlock()

	gen.checkSample()
	freq := gen.frequency()
	vol := gen.volume()
	for i := range buf {
		buf[i] = uint8(128 + math.Round(gen.next(freq, vol)*127))
	}
}

// ReadInt fills the buffer with signed sample values of the specified bit
// depth.
func (gen *Generator) ReadInt(buf []int, bitDepth int) {
	gen.crit.Lock()
	defer gen.crit.Unlock()

	scale := float64(int(1)<<(bitDepth-1) - 1)
	gen.checkSample()
	freq := gen.frequency()
	vol := gen.volume()
	for i := range buf {
		buf[i] = int(math.Round(gen.next(freq, vol) * scale))
	}
}
