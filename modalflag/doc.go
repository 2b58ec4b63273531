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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different flags
// for each mode.
//
// Arguments are given to NewArgs() and then processed with Parse(). Flags are
// added before each call to Parse() with the Add*() functions:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "HEADLESS", "PERFORMANCE")
//	verbose := md.AddBool("log", false, "echo log to stdout")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// If sub-modes have been added, Parse() will check the first argument after
// the flags against the list of sub-modes. The first sub-mode in the list is
// the default and is selected if the argument does not match. Sub-mode
// comparisons are case insensitive. The selected mode is returned by Mode().
//
// The flags for the selected mode are then added after a call to NewMode()
// and Parse() is called again. This can be repeated as deep as required.
// Path() returns the list of modes encountered so far.
//
// Non-flag arguments that remain after the most recent Parse() are available
// through RemainingArgs() and GetArg().
package modalflag
