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


package sdlimgui

import (
	"errors"
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/tone"
)

// overlay is a dear imgui window drawn over the screen. it allows the
// preferences to be changed while the emulation is running.
type overlay struct {
	img *SdlImgui

	visible bool

	// text fields are edited in these buffers and committed to the
	// preferences when enter is pressed
	foreground string
	background string
	sample     string

	// result of the most recent change or save. shown at the bottom of the
	// window
	status string
}

func newOverlay(img *SdlImgui) *overlay {
	return &overlay{img: img}
}

func (ovl *overlay) toggle() {
	ovl.visible = !ovl.visible
	if ovl.visible {
		ovl.refresh()
	}
}

func (ovl *overlay) refresh() {
	ovl.foreground = ovl.img.guiPrefs.Foreground.String()
	ovl.background = ovl.img.guiPrefs.Background.String()
	if ovl.img.tonePrefs != nil {
		ovl.sample = ovl.img.tonePrefs.Sample.String()
	}
	ovl.status = ""
}

// result of a preference change is logged and shown in the window
func (ovl *overlay) result(err error) {
	if err != nil {
		ovl.status = err.Error()
		logger.Logf(logger.Allow, "sdlimgui", "%v", err)
		return
	}
	ovl.status = ""
}

func (ovl *overlay) draw() {
	if !ovl.visible {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 10}, imgui.ConditionAppearing, imgui.Vec2{})
	if !imgui.BeginV("Preferences", &ovl.visible, imgui.WindowFlagsAlwaysAutoResize|imgui.WindowFlagsNoSavedSettings) {
		imgui.End()
		return
	}
	defer imgui.End()

	if ovl.img.emuPrefs != nil {
		ovl.drawEmulation(ovl.img.emuPrefs)
		imgui.Separator()
	}

	if ovl.img.tonePrefs != nil {
		ovl.drawTone(ovl.img.tonePrefs)
		imgui.Separator()
	}

	ovl.drawGUI(ovl.img.guiPrefs)
	imgui.Separator()

	if imgui.Button("Save") {
		ovl.result(ovl.save())
		if ovl.status == "" {
			ovl.status = "preferences saved"
		}
	}
	imgui.SameLine()
	if imgui.Button("Defaults") {
		ovl.setDefaults()
	}

	if ovl.status != "" {
		imgui.Spacing()
		imgui.Text(ovl.status)
	}
}

func (ovl *overlay) drawEmulation(p *preferences.Preferences) {
	imgui.Text("Emulation")

	rate := int32(p.CycleRate.Get().(int))
	if imgui.SliderInt("cycle rate", &rate, preferences.MinCycleRate, preferences.MaxCycleRate) {
		ovl.result(p.CycleRate.Set(int(rate)))
	}

	fpsCap := p.FPSCap.Get().(bool)
	if imgui.Checkbox("limit to 60fps", &fpsCap) {
		ovl.result(p.FPSCap.Set(fpsCap))
	}

	logBeep := p.LogBeep.Get().(bool)
	if imgui.Checkbox("log beeps", &logBeep) {
		ovl.result(p.LogBeep.Set(logBeep))
	}
}

func (ovl *overlay) drawTone(p *tone.Preferences) {
	imgui.Text("Tone")

	freq := float32(p.Frequency.Get().(float64))
	if imgui.SliderFloatV("frequency", &freq, tone.MinFrequency, tone.MaxFrequency, "%.0fHz", imgui.SliderFlagsNone) {
		ovl.result(p.Frequency.Set(float64(freq)))
	}

	vol := float32(p.Volume.Get().(float64))
	if imgui.SliderFloatV("volume", &vol, 0.0, 1.0, "%.2f", imgui.SliderFlagsNone) {
		ovl.result(p.Volume.Set(float64(vol)))
	}

	if imgui.InputTextV("sample", &ovl.sample, imgui.InputTextFlagsEnterReturnsTrue, nil) {
		ovl.result(p.Sample.Set(ovl.sample))
	}
}

func (ovl *overlay) drawGUI(p *gui.Preferences) {
	imgui.Text("Display")

	scale := int32(p.Scale.Get().(int))
	if imgui.SliderInt("scale", &scale, gui.MinScale, gui.MaxScale) {
		ovl.result(p.Scale.Set(int(scale)))
	}

	if imgui.InputTextV("foreground", &ovl.foreground, imgui.InputTextFlagsEnterReturnsTrue, nil) {
		ovl.result(ovl.setColour(&p.Foreground, ovl.foreground))
	}
	if imgui.InputTextV("background", &ovl.background, imgui.InputTextFlagsEnterReturnsTrue, nil) {
		ovl.result(ovl.setColour(&p.Background, ovl.background))
	}
}

// setColour changes the colour preference and redraws the most recent frame
// with the new colour.
func (ovl *overlay) setColour(p *prefs.String, s string) error {
	if err := p.Set(s); err != nil {
		return err
	}
	ovl.img.crit.Lock()
	ovl.img.colourise()
	ovl.img.crit.Unlock()
	return nil
}

func (ovl *overlay) save() error {
	var errs []error
	if ovl.img.emuPrefs != nil {
		errs = append(errs, ovl.img.emuPrefs.Save())
	}
	if ovl.img.tonePrefs != nil {
		errs = append(errs, ovl.img.tonePrefs.Save())
	}
	errs = append(errs, ovl.img.guiPrefs.Save())
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("sdlimgui: %w", err)
	}
	return nil
}

func (ovl *overlay) setDefaults() {
	if ovl.img.emuPrefs != nil {
		ovl.img.emuPrefs.SetDefaults()
	}
	if ovl.img.tonePrefs != nil {
		ovl.img.tonePrefs.SetDefaults()
	}
	ovl.img.guiPrefs.SetDefaults()

	ovl.img.crit.Lock()
	ovl.img.colourise()
	ovl.img.crit.Unlock()

	ovl.refresh()
}
