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

package preferences

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Default values for the emulation preferences.
const (
	DefaultCycleRate = 600
	DefaultFPSCap    = true
	DefaultLogBeep   = true
)

// limits of the cycle rate preference
const (
	MinCycleRate = 60
	MaxCycleRate = 10000
)

// Preferences defines and collates the preference values used by the
// emulation.
type Preferences struct {
	dsk *prefs.Disk

	// number of instructions executed per second. the timers are decremented
	// once per instruction
	CycleRate prefs.Int

	// limit presentation of the display to 60 frames per second
	FPSCap prefs.Bool

	// add an entry to the log every time the sound timer expires
	LogBeep prefs.Bool
}

func (p *Preferences) String() string {
	return fmt.Sprintf("cyclerate=%s fpscap=%s logbeep=%s", p.CycleRate.String(), p.FPSCap.String(), p.LogBeep.String())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preference values are loaded from the preferences file.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.CycleRate.SetHookPre(func(v prefs.Value) error {
		r := v.(int)
		if r < MinCycleRate || r > MaxCycleRate {
			return fmt.Errorf("preferences: cycle rate must be between %d and %d", MinCycleRate, MaxCycleRate)
		}
		return nil
	})

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	err = p.dsk.Add("emulation.cyclerate", &p.CycleRate)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("emulation.fpscap", &p.FPSCap)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("emulation.logbeep", &p.LogBeep)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	err = p.dsk.Load(true)
	if err != nil && !errors.Is(err, prefs.NoPrefsFile) {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all emulation preferences to their default values.
func (p *Preferences) SetDefaults() {
	// errors are not possible with the default values
	_ = p.CycleRate.Set(DefaultCycleRate)
	_ = p.FPSCap.Set(DefaultFPSCap)
	_ = p.LogBeep.Set(DefaultLogBeep)
}

// Load emulation preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current emulation preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
