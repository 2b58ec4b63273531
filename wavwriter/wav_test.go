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


package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/tone"
	"github.com/jetsetilly/gopher8/wavwriter"
)

func TestWavWriter(t *testing.T) {
	var now time.Duration
	clock := func() time.Duration { return now }

	gen := tone.NewGenerator(nil, 8000)
	fn := filepath.Join(t.TempDir(), "tone.wav")

	aw, err := wavwriter.New(fn, gen, clock)
	test.DemandSuccess(t, err)

	// 100ms of silence followed by 250ms of tone and then 100ms of silence
	// and 50ms of tone
	now = 100 * time.Millisecond
	test.ExpectSuccess(t, aw.SetTone(true))
	test.ExpectEquality(t, aw.NumSamples(), 800)

	// setting the same state again has no effect
	now = 200 * time.Millisecond
	test.ExpectSuccess(t, aw.SetTone(true))
	test.ExpectEquality(t, aw.NumSamples(), 800)

	now = 350 * time.Millisecond
	test.ExpectSuccess(t, aw.SetTone(false))
	test.ExpectEquality(t, aw.NumSamples(), 800+2000)

	now = 450 * time.Millisecond
	test.ExpectSuccess(t, aw.SetTone(true))
	now = 500 * time.Millisecond
	test.ExpectSuccess(t, aw.EndMixing())
	test.ExpectEquality(t, aw.NumSamples(), 800+2000+800+400)

	// read the file back with a different WAV library
	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, int(dec.SampleRate), 8000)
	test.ExpectEquality(t, int(dec.NumChans), 1)
	test.ExpectEquality(t, int(dec.BitDepth), 16)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buf.Data), 4000)

	// silence then tone
	test.ExpectEquality(t, buf.Data[0], 0)
	test.ExpectEquality(t, buf.Data[799], 0)
	test.ExpectInequality(t, buf.Data[800], 0)
}

func TestMissingCollaborators(t *testing.T) {
	_, err := wavwriter.New("x.wav", nil, func() time.Duration { return 0 })
	test.ExpectFailure(t, err)
	_, err = wavwriter.New("x.wav", tone.NewGenerator(nil, 0), nil)
	test.ExpectFailure(t, err)
}
