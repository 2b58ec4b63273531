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


package sdlplay

import (
	"fmt"

	"github.com/jetsetilly/gopher8/assert"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/userinput"
)

// SetFeature implements the gui.GUI interface. The request is serviced on the
// main thread and the function waits for the result.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	if assert.GoroutineID() == scr.mainThread {
		return scr.serviceFeatureRequest(request, args)
	}
	scr.service <- func() {
		scr.serviceErr <- scr.serviceFeatureRequest(request, args)
	}
	return <-scr.serviceErr
}

func (scr *SdlPlay) serviceFeatureRequest(request gui.FeatureReq, args []gui.FeatureReqData) (err error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sdlplay: %s: %v", request, r)
		}
	}()

	switch request {
	case gui.ReqSetEventChan:
		scr.events = args[0].(chan userinput.Event)

	case gui.ReqSetVisibility:
		scr.showWindow(args[0].(bool))

	case gui.ReqSetTitle:
		scr.window.SetTitle(fmt.Sprintf("%s - %s", windowTitle, args[0].(string)))

	default:
		return fmt.Errorf("sdlplay: %w: %s", gui.ErrUnsupportedFeature, request)
	}

	return nil
}
