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
	"fmt"

	"github.com/jetsetilly/gopher8/assert"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/userinput"
)

// SetFeature implements the gui.GUI interface. The request is serviced on the
// main thread and the function waits for the result.
func (img *SdlImgui) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	if assert.GoroutineID() == img.mainThread {
		return img.serviceFeatureRequest(request, args)
	}
	img.service <- func() {
		img.serviceErr <- img.serviceFeatureRequest(request, args)
	}
	return <-img.serviceErr
}

func (img *SdlImgui) serviceFeatureRequest(request gui.FeatureReq, args []gui.FeatureReqData) (err error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sdlimgui: %s: %v", request, r)
		}
	}()

	switch request {
	case gui.ReqSetEventChan:
		img.events = args[0].(chan userinput.Event)

	case gui.ReqSetVisibility:
		if args[0].(bool) {
			img.plt.window.Show()
		} else {
			img.plt.window.Hide()
		}

	case gui.ReqSetTitle:
		img.plt.window.SetTitle(fmt.Sprintf("%s - %s", windowTitle, args[0].(string)))

	case gui.ReqToggleOverlay:
		img.overlay.toggle()

	default:
		return fmt.Errorf("sdlimgui: %w: %s", gui.ErrUnsupportedFeature, request)
	}

	return nil
}
