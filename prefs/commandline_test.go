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


package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	for _, c := range []struct {
		pushed   string
		unused   string
		comments string
	}{
		{"emulation.cyclerate::900", "emulation.cyclerate::900", "single entry"},
		{"  gui.scale ::  8 ", "gui.scale::8", "whitespace is trimmed"},
		{"tone.volume::0.5; emulation.fpscap::false", "emulation.fpscap::false; tone.volume::0.5", "sorted by key"},
		{"gui.scale", "", "no separator"},
		{"gui.scale;tone.frequency::220", "tone.frequency::220", "one bad entry"},
	} {
		prefs.PushCommandLineStack(c.pushed)
		test.ExpectEquality(t, prefs.PopCommandLineStack(), c.unused, c.comments)
	}
}

func TestCommandLineGet(t *testing.T) {
	prefs.PushCommandLineStack("gui.foreground::#00ff00; gui_background")

	ok, _ := prefs.GetCommandLinePref("gui_background")
	test.ExpectFailure(t, ok)

	ok, v := prefs.GetCommandLinePref("gui.foreground")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "#00ff00")

	// entries are used up by a successful get
	ok, _ = prefs.GetCommandLinePref("gui.foreground")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineGroups(t *testing.T) {
	prefs.PushCommandLineStack("gui.scale::4")
	prefs.PushCommandLineStack("gui.scale::12")

	// only the top group is consulted
	ok, v := prefs.GetCommandLinePref("gui.scale")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "12")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "gui.scale::4")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineOverridesDisk(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	var rate prefs.Int
	var scale prefs.Int
	test.DemandSuccess(t, rate.Set(600))
	test.DemandSuccess(t, scale.Set(10))
	test.DemandSuccess(t, dsk.Add("emulation.cyclerate", &rate))
	test.DemandSuccess(t, dsk.Add("gui.scale", &scale))

	prefs.PushCommandLineStack("emulation.cyclerate::900; tone.volume::0.1")
	test.ExpectSuccess(t, dsk.Load(true))

	test.ExpectEquality(t, rate.Get().(int), 900)
	test.ExpectEquality(t, scale.Get().(int), 10)

	// the tone preferences were never loaded so the entry is left over
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "tone.volume::0.1")
}
