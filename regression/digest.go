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


package regression

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/database"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/machine"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/romloader"
)

const digestEntryType = "digest"

const (
	digestFieldFilename int = iota
	digestFieldHash
	digestFieldMode
	digestFieldCycles
	digestFieldScreen
	digestFieldAudio
	digestFieldNotes
	numDigestFields
)

// DigestRegression is the regression entry for a program that is run for a
// fixed number of cycles.
type DigestRegression struct {
	Loader romloader.Loader
	Mode   DigestMode
	Cycles int
	Notes  string

	screenDigest string
	audioDigest  string
}

func deserialiseDigestEntry(fields []string) (database.Entry, error) {
	if len(fields) != numDigestFields {
		return nil, fmt.Errorf("digest entry: wrong number of fields (%d)", len(fields))
	}

	reg := &DigestRegression{}

	reg.Loader = romloader.NewLoader(fields[digestFieldFilename])
	reg.Loader.Hash = fields[digestFieldHash]

	var err error

	reg.Mode, err = ParseDigestMode(fields[digestFieldMode])
	if err != nil {
		return nil, fmt.Errorf("digest entry: %w", err)
	}

	reg.Cycles, err = strconv.Atoi(fields[digestFieldCycles])
	if err != nil {
		return nil, fmt.Errorf("digest entry: invalid cycles field (%s)", fields[digestFieldCycles])
	}

	reg.screenDigest = fields[digestFieldScreen]
	reg.audioDigest = fields[digestFieldAudio]
	reg.Notes = fields[digestFieldNotes]

	return reg, nil
}

// EntryType implements the database.Entry interface.
func (reg DigestRegression) EntryType() string {
	return digestEntryType
}

// String implements the database.Entry interface.
func (reg DigestRegression) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "[%s] %s [%d cycles]", reg.Mode, reg.Loader.ShortName(), reg.Cycles)
	if reg.Notes != "" {
		fmt.Fprintf(&s, " [%s]", reg.Notes)
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg *DigestRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		reg.Loader.Filename,
		reg.Loader.Hash,
		reg.Mode.String(),
		strconv.Itoa(reg.Cycles),
		reg.screenDigest,
		reg.audioDigest,
		reg.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg DigestRegression) CleanUp() error {
	return nil
}

// the fields of the entry cannot contain the database field separator
func (reg DigestRegression) validate() error {
	if strings.ContainsAny(reg.Loader.Filename, ",\n") {
		return fmt.Errorf("digest entry: filename cannot contain commas or newlines")
	}
	if strings.ContainsAny(reg.Notes, ",\n") {
		return fmt.Errorf("digest entry: notes cannot contain commas or newlines")
	}
	if reg.Cycles <= 0 {
		return fmt.Errorf("digest entry: number of cycles must be positive")
	}
	if reg.Mode == DigestUndefined {
		return fmt.Errorf("digest entry: digest mode is undefined")
	}
	return nil
}

// regress implements the Regressor interface.
func (reg *DigestRegression) regress(newRegression bool) (bool, string, error) {
	if newRegression {
		if err := reg.validate(); err != nil {
			return false, "", err
		}
	}

	screen, audio, err := runDigest(&reg.Loader, reg.Cycles)
	if err != nil {
		return false, "", err
	}

	if newRegression {
		reg.screenDigest = screen
		reg.audioDigest = audio
		return true, "", nil
	}

	if reg.Mode != DigestAudioOnly && screen != reg.screenDigest {
		return false, "screen digest mismatch", nil
	}
	if reg.Mode != DigestScreenOnly && audio != reg.audioDigest {
		return false, "audio digest mismatch", nil
	}

	return true, "", nil
}

// runDigest runs the program in the same way as the HEADLESS mode. The
// program is reloaded from disk and checked against the loader's hash.
func runDigest(ld *romloader.Loader, cycles int) (string, string, error) {
	if err := ld.Load(); err != nil {
		return "", "", err
	}

	env := environment.NewEnvironment(environment.MainEmulation, nil)
	env.Normalise()

	mc := machine.NewMachine(env)
	if err := mc.Load(ld.Data); err != nil {
		return "", "", err
	}

	scr := digest.NewScreen()
	pl, err := playmode.NewPlaymode(mc, nil, scr)
	if err != nil {
		return "", "", err
	}

	aud := digest.NewAudio(pl.Cycles)
	pl.AddAudioMixer(aud)

	if err := errors.Join(pl.RunFor(uint64(cycles)), pl.End()); err != nil {
		return "", "", err
	}

	return scr.Hash(), aud.Hash(), nil
}
