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


package tone

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Default values for the tone preferences.
const (
	DefaultFrequency = 440.0
	DefaultVolume    = 0.25
	DefaultSample    = ""
)

// limits of the frequency preference.
const (
	MinFrequency = 20.0
	MaxFrequency = 8000.0
)

// Preferences for the tone generator.
type Preferences struct {
	dsk *prefs.Disk

	// frequency of the square wave in Hz
	Frequency prefs.Float

	// volume in the range 0.0 to 1.0. applies to the square wave and to the
	// sample
	Volume prefs.Float

	// path to a WAV or MP3 file. if the value is empty then the square wave
	// is used
	Sample prefs.String
}

func (p *Preferences) String() string {
	return fmt.Sprintf("frequency=%s volume=%s sample=%q", p.Frequency.String(), p.Volume.String(), p.Sample.String())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Frequency.SetHookPre(func(v prefs.Value) error {
		f := v.(float64)
		if f < MinFrequency || f > MaxFrequency {
			return fmt.Errorf("tone: frequency must be between %.0f and %.0f", MinFrequency, MaxFrequency)
		}
		return nil
	})

	p.Volume.SetHookPre(func(v prefs.Value) error {
		f := v.(float64)
		if f < 0.0 || f > 1.0 {
			return fmt.Errorf("tone: volume must be between 0.0 and 1.0")
		}
		return nil
	})

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("tone: %w", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("tone: %w", err)
	}

	err = p.dsk.Add("tone.frequency", &p.Frequency)
	if err != nil {
		return nil, fmt.Errorf("tone: %w", err)
	}
	err = p.dsk.Add("tone.volume", &p.Volume)
	if err != nil {
		return nil, fmt.Errorf("tone: %w", err)
	}
	err = p.dsk.Add("tone.sample", &p.Sample)
	if err != nil {
		return nil, fmt.Errorf("tone: %w", err)
	}

	err = p.dsk.Load(true)
	if err != nil && !errors.Is(err, prefs.NoPrefsFile) {
		return nil, fmt.Errorf("tone: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all tone preferences to their default values.
func (p *Preferences) SetDefaults() {
	// errors are not possible with the default values
	_ = p.Frequency.Set(DefaultFrequency)
	_ = p.Volume.Set(DefaultVolume)
	_ = p.Sample.Set(DefaultSample)
}

// Load tone preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current tone preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
