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


package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/gui/sdlimgui"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/termplay"
	"github.com/jetsetilly/gopher8/hardware/machine"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/regression"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/screenshot"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/tone"
	"github.com/jetsetilly/gopher8/version"
	"github.com/jetsetilly/gopher8/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the play mode cancels the emulation
	// gracefully so that audio recordings are completed.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// the creator will have returned a typed nil value which
				// does not compare equal to nil once stored in the interface
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "HEADLESS", "PERFORMANCE", "REGRESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "HEADLESS":
		err = headless(md, os.Stdout)

	case "PERFORMANCE":
		err = perform(md, os.Stdout)

	case "REGRESS":
		var dbFile string
		dbFile, err = paths.ResourcePath("", regression.DefaultDBFile)
		if err == nil {
			err = regress(md, os.Stdout, dbFile)
		}

	case "VERSION":
		fmt.Println(version.Version())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func setLogEcho(echo bool) {
	if echo {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}
}

// loadProgram returns the loader for the single program file named on the
// command line.
func loadProgram(md *modalflag.Modes) (romloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return romloader.Loader{}, fmt.Errorf("program file required for %s mode", md)
	case 1:
	default:
		return romloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	ld := romloader.NewLoader(md.GetArg(0))
	err := ld.Load()
	if err != nil {
		return romloader.Loader{}, err
	}

	// the filename may have changed if the program was found in an archive
	if !ld.IsRecognised() {
		logger.Logf(logger.Allow, "gopher8", "unrecognised file extension: %s", ld.Filename)
	}
	logger.Logf(logger.Allow, "gopher8", "loaded %s (%d bytes, sha1 %s)", ld.ShortName(), len(ld.Data), ld.Hash)

	return ld, nil
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	guiType := md.AddString("gui", "IMGUI", "gui to use: IMGUI, SDL, TERM")
	scale := md.AddInt("scale", 0, "size of machine pixels (zero uses the scale preference)")
	wav := md.AddString("wav", "", "record audio to wav file")
	mute := md.AddBool("mute", false, "do not open the audio device")
	prefsOverride := md.AddString("prefs", "", "preferences for this session (key::value; key::value)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	ld, err := loadProgram(md)
	if err != nil {
		return err
	}

	// values on the command line stack are consumed as each preferences
	// group is loaded. anything left over was not recognised
	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Printf("! unused preferences: %s\n", unused)
			}
		}()
	}

	emuPrefs, err := preferences.NewPreferences()
	if err != nil {
		return err
	}
	guiPrefs, err := gui.NewPreferences()
	if err != nil {
		return err
	}
	tonePrefs, err := tone.NewPreferences()
	if err != nil {
		return err
	}

	if *scale > 0 {
		err = guiPrefs.Scale.Set(*scale)
		if err != nil {
			return err
		}
	}

	if stats != nil && *stats {
		stop := statsview.Launch(os.Stdout)
		defer stop()
	}

	env := environment.NewEnvironment(environment.MainEmulation, emuPrefs)
	mc := machine.NewMachine(env)
	err = mc.Load(ld.Data)
	if err != nil {
		return err
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		switch strings.ToUpper(*guiType) {
		case "IMGUI":
			return sdlimgui.NewSdlImgui(guiPrefs, emuPrefs, tonePrefs)
		case "SDL":
			return sdlplay.NewSdlPlay(guiPrefs)
		case "TERM":
			return termplay.NewTermPlay(guiPrefs)
		}
		return nil, fmt.Errorf("unknown gui type (%s)", *guiType)
	}

	// wait for creator result
	var scr gui.GUI
	select {
	case g := <-sync.creation:
		scr = g.(gui.GUI)
	case err := <-sync.creationError:
		return err
	}

	// turn off fallback ctrl-c handling. ctrl-c now cancels the emulation
	// which allows the audio mixers to finish
	sync.state <- stateRequest{req: reqNoIntSig}

	pl, err := playmode.NewPlaymode(mc, emuPrefs, scr)
	if err != nil {
		return err
	}
	pl.SetScreenshotInfo(ld.ShortName(), guiPrefs)

	if !*mute {
		aud, err := sdlaudio.NewAudio(tone.NewGenerator(tonePrefs, tone.DefaultSampleRate))
		if err != nil {
			// the emulation is perfectly usable without sound
			logger.Logf(logger.Allow, "gopher8", "no audio: %v", err)
		} else {
			pl.AddAudioMixer(aud)
		}
	}

	// the wav writer is driven by emulated time so the recording is the same
	// however quickly the emulation runs
	if *wav != "" {
		aw, err := wavwriter.New(*wav, tone.NewGenerator(tonePrefs, tone.DefaultSampleRate), pl.EmulatedTime)
		if err != nil {
			return err
		}
		pl.AddAudioMixer(aw)
	}

	err = scr.SetFeature(gui.ReqSetEventChan, pl.UserInput())
	if err != nil {
		return err
	}
	err = scr.SetFeature(gui.ReqSetTitle, ld.ShortName())
	if err != nil {
		return err
	}
	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err = errors.Join(pl.Run(ctx), pl.End())
	if err != nil {
		// the machine state is useful when the program has caused a fatal
		// error
		if machine.IsFatal(err) {
			fmt.Println(mc.String())
			logger.Tail(os.Stdout, 10)
		}
		return err
	}

	return nil
}

func headless(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cycles := md.AddInt("cycles", 6000, "number of instructions to execute")
	wav := md.AddString("wav", "", "record audio to wav file")
	shot := md.AddString("screenshot", "", "save final frame to PNG file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	if *cycles <= 0 {
		return fmt.Errorf("number of cycles must be positive")
	}

	ld, err := loadProgram(md)
	if err != nil {
		return err
	}

	// headless runs must produce the same result every time so the default
	// preferences are used and the random source is zero seeded
	env := environment.NewEnvironment(environment.MainEmulation, nil)
	env.Normalise()

	mc := machine.NewMachine(env)
	err = mc.Load(ld.Data)
	if err != nil {
		return err
	}

	scr := digest.NewScreen()
	pl, err := playmode.NewPlaymode(mc, nil, scr)
	if err != nil {
		return err
	}

	aud := digest.NewAudio(pl.Cycles)
	pl.AddAudioMixer(aud)

	if *wav != "" {
		aw, err := wavwriter.New(*wav, tone.NewGenerator(nil, tone.DefaultSampleRate), pl.EmulatedTime)
		if err != nil {
			return err
		}
		pl.AddAudioMixer(aw)
	}

	err = errors.Join(pl.RunFor(uint64(*cycles)), pl.End())
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "screen: %s (%d frames)\n", scr.Hash(), scr.Frames())
	fmt.Fprintf(output, "audio: %s (%d edges)\n", aud.Hash(), aud.Edges())

	if *shot != "" {
		fg, _ := gui.ParseColour(gui.DefaultForeground)
		bg, _ := gui.ParseColour(gui.DefaultBackground)
		err = screenshot.Save(*shot, mc.Display().Pixels(), gui.DefaultScale, fg, bg)
		if err != nil {
			return err
		}
	}

	return nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (with an additional 2s lead time)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")
	cycleRate := md.AddInt("cyclerate", preferences.DefaultCycleRate, "cycle rate the result is compared with")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	ld, err := loadProgram(md)
	if err != nil {
		return err
	}

	env := environment.NewEnvironment(environment.MainEmulation, nil)
	env.Normalise()

	mc := machine.NewMachine(env)
	err = mc.Load(ld.Data)
	if err != nil {
		return err
	}

	return performance.Check(output, prf, mc, *cycleRate, *duration)
}

func regress(md *modalflag.Modes, output io.Writer, dbFile string) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")
		failOnError := md.AddBool("fail", false, "stop at the first entry that returns an error")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		return regression.RegressRun(output, dbFile, *verbose, *failOnError, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

		return regression.RegressList(output, dbFile)

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

		// use stdin for confirmation unless the yes flag has been given
		var confirmation io.Reader = os.Stdin
		if *answerYes {
			confirmation = strings.NewReader("y")
		}

		return regression.RegressDelete(output, dbFile, confirmation, md.GetArg(0))

	case "ADD":
		return regressAdd(md, output, dbFile)
	}

	return nil
}

func regressAdd(md *modalflag.Modes, output io.Writer, dbFile string) error {
	md.NewMode()

	mode := md.AddString("mode", "both", "digest to compare: SCREEN, AUDIO, BOTH")
	cycles := md.AddInt("cycles", 6000, "number of instructions to execute")
	notes := md.AddString("notes", "", "additional annotation for the database")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	dm, err := regression.ParseDigestMode(*mode)
	if err != nil {
		return err
	}

	ld, err := loadProgram(md)
	if err != nil {
		return err
	}

	reg := &regression.DigestRegression{
		Loader: ld,
		Mode:   dm,
		Cycles: *cycles,
		Notes:  *notes,
	}

	err = regression.RegressAdd(output, dbFile, reg)
	if err != nil {
		return fmt.Errorf("error adding regression test: %w", err)
	}

	return nil
}
