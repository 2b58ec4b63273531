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
	"errors"
	"fmt"
	"time"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/machine"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/userinput"
)

// FrameRate is the number of batches of instructions executed per second.
// It is also the maximum number of times per second that the framebuffer is
// presented when the FPS cap is on.
const FrameRate = 60

// sentinel error returned when user input requests the end of emulation.
var errQuit = errors.New("user input quit event")

// Playmode drives a single machine.
type Playmode struct {
	mc       *machine.Machine
	prefs    *preferences.Preferences
	renderer gui.Renderer
	mixers   []gui.AudioMixer

	userinput   chan userinput.Event
	controllers userinput.Controllers

	// optional. used for screenshots
	guiPrefs *gui.Preferences
	romName  string

	// scratch buffer for the framebuffer
	pixels []uint8

	// fraction of an instruction carried over from the previous batch
	carry float64

	// instructions executed since the playmode was created. unlike
	// machine.Cycles this is not affected by a machine reset
	cycles uint64

	// number of times the framebuffer has been presented
	frames int
}

// NewPlaymode is the preferred method of initialisation for the Playmode type.
// The preferences argument can be nil, in which case the default emulation
// preferences are used.
func NewPlaymode(mc *machine.Machine, p *preferences.Preferences, renderer gui.Renderer) (*Playmode, error) {
	if mc == nil {
		return nil, fmt.Errorf("playmode: no machine")
	}
	if renderer == nil {
		return nil, fmt.Errorf("playmode: no renderer")
	}

	pl := &Playmode{
		mc:        mc,
		prefs:     p,
		renderer:  renderer,
		userinput: make(chan userinput.Event, 10),
		pixels:    make([]uint8, display.Width*display.Height),
	}

	return pl, nil
}

// AddAudioMixer adds a mixer to the list of mixers that are told when the tone
// starts and stops.
func (pl *Playmode) AddAudioMixer(mix gui.AudioMixer) {
	pl.mixers = append(pl.mixers, mix)
}

// UserInput returns the channel over which GUIs should send user input. The
// channel should be given to a GUI with the gui.ReqSetEventChan request.
func (pl *Playmode) UserInput() chan userinput.Event {
	return pl.userinput
}

// SetScreenshotInfo sets the information used when saving a screenshot. The
// preferences argument can be nil.
func (pl *Playmode) SetScreenshotInfo(romName string, p *gui.Preferences) {
	pl.romName = romName
	pl.guiPrefs = p
}

// Frames returns the number of times the framebuffer has been presented.
func (pl *Playmode) Frames() int {
	return pl.frames
}

// Cycles returns the number of instructions executed by the playmode. The
// value is not affected by a machine reset.
func (pl *Playmode) Cycles() uint64 {
	return pl.cycles
}

// EmulatedTime returns the amount of time that has passed in the emulation,
// as measured by the number of instructions executed and the cycle rate.
func (pl *Playmode) EmulatedTime() time.Duration {
	return time.Duration(pl.cycles) * time.Second / time.Duration(pl.cycleRate())
}

func (pl *Playmode) cycleRate() int {
	if pl.prefs == nil {
		return preferences.DefaultCycleRate
	}
	return pl.prefs.CycleRate.Get().(int)
}

func (pl *Playmode) fpsCap() bool {
	if pl.prefs == nil {
		return preferences.DefaultFPSCap
	}
	return pl.prefs.FPSCap.Get().(bool)
}

// the number of instructions to execute in the next batch
func (pl *Playmode) batchSize() int {
	pl.carry += float64(pl.cycleRate()) / FrameRate
	n := int(pl.carry)
	pl.carry -= float64(n)
	return n
}

func (pl *Playmode) present() error {
	dsp := pl.mc.Display()
	if !dsp.Dirty() {
		return nil
	}
	dsp.CopyPixels(pl.pixels)
	dsp.ClearDirty()
	pl.frames++
	if err := pl.renderer.Present(pl.pixels); err != nil {
		return fmt.Errorf("playmode: %w", err)
	}
	return nil
}

func (pl *Playmode) setTone(on bool) error {
	for _, mix := range pl.mixers {
		if err := mix.SetTone(on); err != nil {
			return fmt.Errorf("playmode: %w", err)
		}
	}
	return nil
}

// step the machine once and forward any sound edge to the mixers
func (pl *Playmode) step() error {
	if err := pl.mc.Step(); err != nil {
		return err
	}
	pl.cycles++

	switch pl.mc.SoundEdge() {
	case timers.SoundStart:
		return pl.setTone(true)
	case timers.SoundEnd:
		return pl.setTone(false)
	}

	return nil
}

// batch runs one batch of instructions. when the FPS cap is off the
// framebuffer is presented after every instruction that changes it
func (pl *Playmode) batch() error {
	capped := pl.fpsCap()

	for range pl.batchSize() {
		if err := pl.step(); err != nil {
			return err
		}
		if !capped {
			if err := pl.present(); err != nil {
				return err
			}
		}
	}

	return pl.present()
}

// End the emulation. Mixers are told to stop mixing. Must be called once
// Run() or RunFor() have returned and the playmode is no longer required.
func (pl *Playmode) End() error {
	var errs []error
	for _, mix := range pl.mixers {
		if err := mix.SetTone(false); err != nil {
			errs = append(errs, err)
		}
		if err := mix.EndMixing(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("playmode: %w", err)
	}
	return nil
}
