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


// Package version reports the name and version of the application. Version
// information comes from the linker (the number variable) or from the
// build information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher8"

// set with -ldflags "-X github.com/jetsetilly/gopher8/version.number=v0.1.0"
var number string

// Info describes the build of the application.
type Info struct {
	// the version number. "unreleased" if there is VCS information but no
	// version number and "local" if there is neither
	Version string

	// the VCS revision. suffixed with "+dirty" if the source had been
	// modified but not committed at the time of the build
	Revision string

	// the version of Go used to build the application
	GoVersion string

	// true if the version is a numbered release
	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s) %s", ApplicationName, inf.Version, inf.Revision, inf.GoVersion)
}

// Version returns the build information for the application.
func Version() Info {
	return fromBuildInfo(number, debug.ReadBuildInfo)
}

func fromBuildInfo(number string, read func() (*debug.BuildInfo, bool)) Info {
	var inf Info
	var vcs bool
	var modified bool

	if bi, ok := read(); ok {
		inf.GoVersion = bi.GoVersion
		for _, v := range bi.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				inf.Revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if inf.Revision == "" {
		inf.Revision = "no revision information"
	} else if modified {
		inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
	}

	switch {
	case number != "":
		inf.Version = number
		inf.Release = true
	case vcs:
		inf.Version = "unreleased"
	default:
		inf.Version = "local"
	}

	return inf
}
