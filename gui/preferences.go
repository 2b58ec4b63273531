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


package gui

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Default values for the GUI preferences.
const (
	DefaultScale      = 10
	DefaultForeground = "#ffffff"
	DefaultBackground = "#000000"
)

// limits of the scale preference.
const (
	MinScale = 1
	MaxScale = 40
)

// Preferences are the preference values shared by all GUI implementations.
type Preferences struct {
	dsk *prefs.Disk

	// the size of a single machine pixel in screen pixels (or terminal cells
	// in the case of the terminal GUI)
	Scale prefs.Int

	// colours of lit and unlit pixels. format is #rrggbb
	Foreground prefs.String
	Background prefs.String
}

func (p *Preferences) String() string {
	return fmt.Sprintf("scale=%s fg=%s bg=%s", p.Scale.String(), p.Foreground.String(), p.Background.String())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Scale.SetHookPre(func(v prefs.Value) error {
		s := v.(int)
		if s < MinScale || s > MaxScale {
			return fmt.Errorf("gui: scale must be between %d and %d", MinScale, MaxScale)
		}
		return nil
	})

	colourHook := func(v prefs.Value) error {
		_, err := ParseColour(v.(string))
		return err
	}
	p.Foreground.SetHookPre(colourHook)
	p.Background.SetHookPre(colourHook)

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("gui: %w", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("gui: %w", err)
	}

	err = p.dsk.Add("gui.scale", &p.Scale)
	if err != nil {
		return nil, fmt.Errorf("gui: %w", err)
	}
	err = p.dsk.Add("gui.foreground", &p.Foreground)
	if err != nil {
		return nil, fmt.Errorf("gui: %w", err)
	}
	err = p.dsk.Add("gui.background", &p.Background)
	if err != nil {
		return nil, fmt.Errorf("gui: %w", err)
	}

	err = p.dsk.Load(true)
	if err != nil && !errors.Is(err, prefs.NoPrefsFile) {
		return nil, fmt.Errorf("gui: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all GUI preferences to their default values.
func (p *Preferences) SetDefaults() {
	// errors are not possible with the default values
	_ = p.Scale.Set(DefaultScale)
	_ = p.Foreground.Set(DefaultForeground)
	_ = p.Background.Set(DefaultBackground)
}

// Load GUI preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current GUI preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// Colours returns the foreground and background colours. Invalid values
// (which should not be possible because of the preference hooks) are
// replaced by the default colours.
func (p *Preferences) Colours() (color.RGBA, color.RGBA) {
	fg, err := ParseColour(p.Foreground.String())
	if err != nil {
		fg, _ = ParseColour(DefaultForeground)
	}
	bg, err := ParseColour(p.Background.String())
	if err != nil {
		bg, _ = ParseColour(DefaultBackground)
	}
	return fg, bg
}

// ParseColour converts a string of the form #rrggbb to a color.RGBA value.
// The leading hash is optional.
func ParseColour(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("gui: colour must be in the form #rrggbb")
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("gui: colour: %w", err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
