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


// Package termplay is an implementation of the gui.GUI interface that draws
// the framebuffer in a terminal. Each character cell shows two pixels, one
// above the other, by drawing the upper half block character in 24-bit
// colour.
//
// The terminal is put into cbreak mode so that key presses are available
// immediately. Terminals do not report key releases so a key is considered
// released when it has not been seen for a short period. Holding a key down
// therefore depends on the keyboard's auto-repeat.
package termplay

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/termplay/easyterm"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// how often held keys are checked for release
const expireFreq = 50 * time.Millisecond

// TermPlay implements the gui.GUI interface.
type TermPlay struct {
	term easyterm.Terminal

	prefs *gui.Preferences

	// critical section protects the output terminal and the fields below
	crit    sync.Mutex
	events  chan userinput.Event
	visible bool

	held *heldKeys

	quit chan bool
	done chan bool
}

// NewTermPlay is the preferred method of initialisation for the TermPlay type.
// The terminal must have room for the framebuffer.
func NewTermPlay(p *gui.Preferences) (*TermPlay, error) {
	trm := &TermPlay{
		prefs: p,
		held:  newHeldKeys(),
		quit:  make(chan bool),
		done:  make(chan bool),
	}

	err := trm.term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("termplay: %w", err)
	}

	geom := trm.term.Geometry()
	if geom.Cols < display.Width*2 || geom.Rows < display.Height/2 {
		trm.term.CleanUp()
		return nil, fmt.Errorf("termplay: terminal must be at least %dx%d (is %dx%d)",
			display.Width*2, display.Height/2, geom.Cols, geom.Rows)
	}

	err = trm.term.CBreakMode()
	if err != nil {
		trm.term.CleanUp()
		return nil, fmt.Errorf("termplay: %w", err)
	}

	go trm.inputLoop()

	logger.Logf(logger.Allow, "termplay", "terminal is %dx%d", geom.Cols, geom.Rows)

	return trm, nil
}

// the input loop reads from the terminal in a separate goroutine because the
// read cannot be interrupted
func (trm *TermPlay) inputLoop() {
	defer close(trm.done)

	input := make(chan []byte)
	go func() {
		for {
			b := make([]byte, 32)
			n, err := trm.term.Read(b)
			if err != nil {
				return
			}
			input <- b[:n]
		}
	}()

	cont := make(chan os.Signal, 1)
	signal.Notify(cont, syscall.SIGCONT)
	defer signal.Stop(cont)

	tck := time.NewTicker(expireFreq)
	defer tck.Stop()

	for {
		select {
		case <-trm.quit:
			return

		case <-cont:
			// returning from suspension
			_ = trm.term.CBreakMode()
			trm.crit.Lock()
			if trm.visible {
				trm.term.Print("%s%s", easyterm.HideCursor, easyterm.ClearScreen)
			}
			trm.crit.Unlock()

		case b := <-input:
			keys, interrupt, suspend := decodeKeys(b)
			if interrupt {
				trm.sendEvent(userinput.EventQuit{})
			}
			if suspend {
				trm.suspend()
			}

			now := time.Now()
			for _, k := range keys {
				repeat := !trm.held.press(k, now)
				trm.sendEvent(userinput.EventKeyboard{Key: k, Down: true, Repeat: repeat})
			}

		case now := <-tck.C:
			for _, k := range trm.held.expire(now) {
				trm.sendEvent(userinput.EventKeyboard{Key: k, Down: false})
			}
		}
	}
}

func (trm *TermPlay) suspend() {
	// release all keys before suspending so that nothing is left held when
	// the process continues
	for _, k := range trm.held.releaseAll() {
		trm.sendEvent(userinput.EventKeyboard{Key: k, Down: false})
	}

	trm.crit.Lock()
	trm.term.Print("%s%s", easyterm.NormalPen, easyterm.ShowCursor)
	trm.crit.Unlock()

	_ = trm.term.CanonicalMode()
	if err := easyterm.SuspendProcess(); err != nil {
		logger.Logf(logger.Allow, "termplay", "%v", err)
	}
}

func (trm *TermPlay) sendEvent(ev userinput.Event) {
	trm.crit.Lock()
	events := trm.events
	trm.crit.Unlock()

	if events == nil {
		return
	}

	select {
	case events <- ev:
	default:
		logger.Log(logger.Allow, "termplay", "dropped input event")
	}
}

// Service implements GuiCreator interface. The terminal does not need to be
// serviced by the main thread.
func (trm *TermPlay) Service() {
	time.Sleep(time.Millisecond)
}

// Destroy implements GuiCreator interface.
func (trm *TermPlay) Destroy(output io.Writer) {
	close(trm.quit)
	<-trm.done

	trm.crit.Lock()
	defer trm.crit.Unlock()

	trm.term.Print("%s%s%s", easyterm.NormalPen, easyterm.ShowCursor, easyterm.MoveCursor(display.Height/2+1, 1))
	trm.term.CleanUp()
}

// Present implements the gui.Renderer interface.
func (trm *TermPlay) Present(pixels []uint8) error {
	if len(pixels) != display.Width*display.Height {
		return fmt.Errorf("termplay: framebuffer is the wrong size (%d)", len(pixels))
	}

	fg, bg := trm.prefs.Colours()
	s := render(pixels, fg, bg)

	trm.crit.Lock()
	defer trm.crit.Unlock()

	if !trm.visible {
		return nil
	}

	if _, err := io.WriteString(&trm.term, s); err != nil {
		return fmt.Errorf("termplay: %w", err)
	}

	return nil
}

// SetFeature implements the gui.GUI interface.
func (trm *TermPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (err error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("termplay: %s: %v", request, r)
		}
	}()

	trm.crit.Lock()
	defer trm.crit.Unlock()

	switch request {
	case gui.ReqSetEventChan:
		trm.events = args[0].(chan userinput.Event)

	case gui.ReqSetVisibility:
		trm.visible = args[0].(bool)
		if trm.visible {
			trm.term.Print("%s%s", easyterm.HideCursor, easyterm.ClearScreen)
		} else {
			trm.term.Print("%s%s", easyterm.NormalPen, easyterm.ShowCursor)
		}

	case gui.ReqSetTitle:
		// xterm compatible window title
		trm.term.Print("\x1b]0;%s\x07", args[0].(string))

	default:
		return fmt.Errorf("termplay: %w: %s", gui.ErrUnsupportedFeature, request)
	}

	return nil
}
