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


package tone_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/tone"
)

// preferences without a disk. the zero value is usable once defaults are set
func testPrefs(t *testing.T) *tone.Preferences {
	t.Helper()
	p := &tone.Preferences{}
	p.SetDefaults()
	return p
}

func writeTestWAV(t *testing.T, data []int) string {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "sample.wav")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, 8000, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:           data,
		SourceBitDepth: 16,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())

	return fn
}

func TestSquareWave(t *testing.T) {
	p := testPrefs(t)
	test.DemandSuccess(t, p.Frequency.Set(1000.0))
	test.DemandSuccess(t, p.Volume.Set(0.5))

	gen := tone.NewGenerator(p, 8000)
	test.ExpectEquality(t, gen.SampleRate(), 8000)

	// eight samples per cycle. first half high, second half low
	buf := make([]float64, 16)
	gen.ReadFloat(buf)
	for i, v := range buf {
		if i%8 < 4 {
			test.ExpectEquality(t, v, 0.5, i)
		} else {
			test.ExpectEquality(t, v, -0.5, i)
		}
	}

	// restarting puts the wave back at the beginning of the cycle
	gen.ReadFloat(buf[:3])
	gen.Restart()
	gen.ReadFloat(buf[:1])
	test.ExpectEquality(t, buf[0], 0.5)
}

func TestUnsignedOutput(t *testing.T) {
	p := testPrefs(t)
	test.DemandSuccess(t, p.Volume.Set(0.0))

	gen := tone.NewGenerator(p, 8000)
	buf := make([]uint8, 32)
	gen.ReadU8(buf)
	for _, v := range buf {
		test.ExpectEquality(t, v, uint8(128))
	}

	test.DemandSuccess(t, p.Volume.Set(1.0))
	gen.Restart()
	gen.ReadU8(buf[:1])
	test.ExpectEquality(t, buf[0], uint8(255))
}

func TestIntOutput(t *testing.T) {
	p := testPrefs(t)
	test.DemandSuccess(t, p.Volume.Set(1.0))

	gen := tone.NewGenerator(p, 8000)
	buf := make([]int, 1)
	gen.ReadInt(buf, 16)
	test.ExpectEquality(t, buf[0], 32767)
}

func TestLoadWAVSample(t *testing.T) {
	fn := writeTestWAV(t, []int{16384, -16384, 0, 8192})

	s, err := tone.LoadSample(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.SampleRate, 8000)
	test.DemandEquality(t, len(s.Data), 4)
	test.ExpectEquality(t, s.Data[0], float32(0.5))
	test.ExpectEquality(t, s.Data[1], float32(-0.5))
	test.ExpectEquality(t, s.Data[2], float32(0.0))
	test.ExpectEquality(t, s.Data[3], float32(0.25))
}

func TestUnsupportedSample(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sample.ogg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0, 1, 2, 3}, 0o600))

	_, err := tone.LoadSample(fn)
	test.ExpectFailure(t, err)

	_, err = tone.LoadSample(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectFailure(t, err)
}

func TestSampleGenerator(t *testing.T) {
	fn := writeTestWAV(t, []int{16384, -16384})

	p := testPrefs(t)
	test.DemandSuccess(t, p.Volume.Set(1.0))
	test.DemandSuccess(t, p.Sample.Set(fn))

	// the sample rate of the generator matches the sample so the sample data
	// is output unchanged and looped
	gen := tone.NewGenerator(p, 8000)
	buf := make([]float64, 4)
	gen.ReadFloat(buf)
	test.ExpectEquality(t, buf[0], 0.5)
	test.ExpectEquality(t, buf[1], -0.5)
	test.ExpectEquality(t, buf[2], 0.5)
	test.ExpectEquality(t, buf[3], -0.5)

	// clearing the sample preference reverts to the square wave
	test.DemandSuccess(t, p.Sample.Set(""))
	test.DemandSuccess(t, p.Frequency.Set(1000.0))
	gen.ReadFloat(buf)
	test.ExpectEquality(t, buf[0], 1.0)
}
