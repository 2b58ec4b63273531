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


// Package sdlaudio plays the machine's tone through an SDL audio device.
//
// The audio device is fed from a background goroutine. While the tone is on
// the goroutine keeps the device's queue topped up with data from the tone
// generator. When the tone is turned off the queue is cleared so that the
// tone stops immediately.
package sdlaudio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/tone"

	"github.com/veandco/go-sdl2/sdl"
)

// the buffer length is important to get right. we don't want it to be long
// because we can introduce unnecessary lag between the sound timer and the
// sound; by the same token we don't want it too short because the device
// will underflow between top ups.
//
// the following value has been discovered through trial and error. the precise
// value is not critical.
const bufferLength = 512

// the number of buffers that are kept queued while the tone is on
const queueDepth = 3

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	gen    *tone.Generator
	buffer []uint8

	toneOn atomic.Bool

	// serialises access to the queue between the top up goroutine and
	// SetTone()
	crit sync.Mutex

	quit chan bool
	done chan bool
}

// NewAudio is the preferred method of initialisation for the Audio Type. The
// SDL audio subsystem is initialised if necessary, so the audio device can be
// used with GUIs that do not otherwise use SDL.
func NewAudio(gen *tone.Generator) (*Audio, error) {
	if sdl.WasInit(sdl.INIT_AUDIO) == 0 {
		if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
			return nil, fmt.Errorf("sdlaudio: %w", err)
		}
	}

	aud := &Audio{
		gen:    gen,
		buffer: make([]uint8, bufferLength),
		quit:   make(chan bool),
		done:   make(chan bool),
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(gen.SampleRate()),
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, fmt.Errorf("sdlaudio: %w", err)
	}
	aud.spec = actualSpec

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	go func() {
		defer close(aud.done)

		rate := float64(bufferLength) / float64(gen.SampleRate())
		tck := time.NewTicker(time.Duration(rate * float64(time.Second)))
		defer tck.Stop()

		for {
			select {
			case <-aud.quit:
				return
			case <-tck.C:
				if aud.toneOn.Load() {
					if err := aud.topUp(); err != nil {
						logger.Logf(logger.Allow, "sdlaudio", "%v", err)
					}
				}
			}
		}
	}()

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// topUp queues data until the queue is queueDepth buffers long.
func (aud *Audio) topUp() error {
	aud.crit.Lock()
	defer aud.crit.Unlock()

	// the tone may have been turned off while waiting for the lock
	if !aud.toneOn.Load() {
		return nil
	}

	for sdl.GetQueuedAudioSize(aud.id) < uint32(bufferLength*queueDepth) {
		aud.gen.ReadU8(aud.buffer)
		if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
			return fmt.Errorf("sdlaudio: %w", err)
		}
	}

	return nil
}

// SetTone implements the gui.AudioMixer interface.
func (aud *Audio) SetTone(on bool) error {
	if aud.toneOn.Swap(on) == on {
		return nil
	}

	if on {
		aud.gen.Restart()
		return aud.topUp()
	}

	aud.crit.Lock()
	defer aud.crit.Unlock()
	sdl.ClearQueuedAudio(aud.id)

	return nil
}

// EndMixing implements the gui.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	aud.toneOn.Store(false)
	close(aud.quit)
	<-aud.done

	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)

	return nil
}
