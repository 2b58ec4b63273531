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


package playmode_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/machine"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

type testRenderer struct {
	presents int
	last     []uint8
	requests []gui.FeatureReq
}

func (r *testRenderer) Present(pixels []uint8) error {
	r.presents++
	r.last = append(r.last[:0], pixels...)
	return nil
}

func (r *testRenderer) SetFeature(request gui.FeatureReq, _ ...gui.FeatureReqData) error {
	r.requests = append(r.requests, request)
	return nil
}

type testMixer struct {
	tone  []bool
	ended bool
}

func (m *testMixer) SetTone(on bool) error {
	m.tone = append(m.tone, on)
	return nil
}

func (m *testMixer) EndMixing() error {
	m.ended = true
	return nil
}

func newPlaymode(t *testing.T, prefs *preferences.Preferences, program ...uint8) (*playmode.Playmode, *machine.Machine, *testRenderer) {
	t.Helper()
	env := environment.NewEnvironment("test", prefs)
	env.Normalise()
	mc := machine.NewMachine(env)
	test.DemandSuccess(t, mc.Load(program))

	r := &testRenderer{}
	pl, err := playmode.NewPlaymode(mc, prefs, r)
	test.DemandSuccess(t, err)

	return pl, mc, r
}

func TestMissingCollaborators(t *testing.T) {
	_, err := playmode.NewPlaymode(nil, nil, &testRenderer{})
	test.ExpectFailure(t, err)
	_, err = playmode.NewPlaymode(machine.NewMachine(nil), nil, nil)
	test.ExpectFailure(t, err)
}

func TestPresentation(t *testing.T) {
	// jump to self
	pl, _, r := newPlaymode(t, nil, 0x12, 0x00)

	// the display is dirty at power-on so there is one presentation
	test.DemandSuccess(t, pl.RunFor(100))
	test.ExpectEquality(t, r.presents, 1)
	test.ExpectEquality(t, pl.Frames(), 1)
	test.ExpectEquality(t, len(r.last), display.Width*display.Height)
	test.ExpectEquality(t, pl.Cycles(), uint64(100))
}

func TestBatches(t *testing.T) {
	prefs := &preferences.Preferences{}
	prefs.SetDefaults()

	// clear screen in a loop. every batch dirties the display
	pl, _, r := newPlaymode(t, prefs, 0x00, 0xe0, 0x12, 0x00)

	// the environment is normalised when the playmode is created so the
	// cycle rate is changed afterwards
	test.DemandSuccess(t, prefs.CycleRate.Set(90))

	// ninety instructions per second is one and a half instructions per
	// batch. three instructions is therefore two batches
	test.DemandSuccess(t, pl.RunFor(3))
	test.ExpectEquality(t, r.presents, 2)
	test.ExpectEquality(t, pl.EmulatedTime(), time.Second/30)
}

func TestTone(t *testing.T) {
	// V0=5; ST=V0; jump to self
	pl, mc, _ := newPlaymode(t, nil, 0x60, 0x05, 0xf0, 0x18, 0x12, 0x04)

	mix := &testMixer{}
	pl.AddAudioMixer(mix)

	test.DemandSuccess(t, pl.RunFor(20))
	test.DemandEquality(t, len(mix.tone), 2)
	test.ExpectSuccess(t, mix.tone[0])
	test.ExpectFailure(t, mix.tone[1])
	test.ExpectFailure(t, mc.ToneOn())

	test.DemandSuccess(t, pl.End())
	test.ExpectSuccess(t, mix.ended)
}

func TestKeypadInput(t *testing.T) {
	// wait for key into V0; jump to self
	pl, mc, _ := newPlaymode(t, nil, 0xf0, 0x0a, 0x12, 0x02)

	test.DemandSuccess(t, pl.RunFor(10))
	test.ExpectEquality(t, mc.PC, uint16(0x200))

	pl.UserInput() <- userinput.EventKeyboard{Key: "W", Down: true}
	test.DemandSuccess(t, pl.RunFor(10))
	test.ExpectEquality(t, mc.V[0], uint8(0x5))
	test.ExpectEquality(t, mc.PC, uint16(0x202))
}

func TestHotkeys(t *testing.T) {
	pl, mc, r := newPlaymode(t, nil, 0x60, 0x05, 0x12, 0x02)

	test.DemandSuccess(t, pl.RunFor(10))
	test.ExpectEquality(t, mc.V[0], uint8(0x5))

	// F1 is passed to the GUI
	pl.UserInput() <- userinput.EventKeyboard{Key: "F1", Down: true}
	test.DemandSuccess(t, pl.RunFor(1))
	test.DemandEquality(t, len(r.requests), 1)
	test.ExpectEquality(t, r.requests[0], gui.ReqToggleOverlay)

	// F2 resets the machine. the reset is seen before the batch runs
	pl.UserInput() <- userinput.EventKeyboard{Key: "F2", Down: true}
	test.DemandSuccess(t, pl.RunFor(1))
	test.ExpectEquality(t, mc.Cycles, uint64(1))
	test.ExpectEquality(t, mc.PC, uint16(0x202))
}

func TestResetDuringTone(t *testing.T) {
	// wait for key; V0=255; ST=V0; jump to self
	pl, mc, _ := newPlaymode(t, nil, 0xf0, 0x0a, 0x60, 0xff, 0xf0, 0x18, 0x12, 0x06)

	mix := &testMixer{}
	pl.AddAudioMixer(mix)

	pl.UserInput() <- userinput.EventKeyboard{Key: "1", Down: true}
	test.DemandSuccess(t, pl.RunFor(10))
	test.DemandEquality(t, len(mix.tone), 1)
	test.ExpectSuccess(t, mix.tone[0])
	test.ExpectSuccess(t, mc.ToneOn())

	// the mixers are turned off by the reset. the machine then waits for a
	// key again so no further tone is started
	pl.UserInput() <- userinput.EventKeyboard{Key: "1", Down: false}
	pl.UserInput() <- userinput.EventKeyboard{Key: "F2", Down: true}
	test.DemandSuccess(t, pl.RunFor(100))
	test.DemandEquality(t, len(mix.tone), 2)
	test.ExpectFailure(t, mix.tone[1])
	test.ExpectFailure(t, mc.ToneOn())
	test.ExpectEquality(t, mc.PC, uint16(0x200))
}

func TestQuit(t *testing.T) {
	pl, _, _ := newPlaymode(t, nil, 0x12, 0x00)

	pl.UserInput() <- userinput.EventKeyboard{Key: "Escape", Down: true}
	test.ExpectSuccess(t, pl.Run(context.Background()))

	pl, _, _ = newPlaymode(t, nil, 0x12, 0x00)
	pl.UserInput() <- userinput.EventQuit{}
	test.ExpectSuccess(t, pl.Run(context.Background()))

	pl, _, _ = newPlaymode(t, nil, 0x12, 0x00)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	test.ExpectSuccess(t, pl.Run(ctx))
	test.ExpectSuccess(t, pl.Cycles() > 0)
}

func TestFatalError(t *testing.T) {
	// return with an empty stack
	pl, _, _ := newPlaymode(t, nil, 0x00, 0xee)

	err := pl.Run(context.Background())
	test.ExpectSuccess(t, errors.Is(err, machine.ErrStackUnderflow))

	pl, _, _ = newPlaymode(t, nil, 0x00, 0xee)
	err = pl.RunFor(10)
	test.ExpectSuccess(t, errors.Is(err, machine.ErrStackUnderflow))
}
