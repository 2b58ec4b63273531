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

// Package prefs facilitates the storage of preferential values in the Gopher8
// system. It is a generalised system and can be used for any purpose.
//
// Values are represented by the Bool, Int, Float, String and Generic types.
// Each type has a Set() and a Get() function. The Set() function will accept a
// string representation of the value in addition to the native type, which is
// how values are restored from disk.
//
// Disk instances associate a preference value with a key. The keys and their
// values are written to a file with the Save() function and restored with the
// Load() function. The file format is simple:
//
//	key :: value
//
// Preference files are shared between Disk instances. Saving a Disk will not
// remove keys in the file that it does not know about.
//
// Values can be overridden from the command line. PushCommandLineStack()
// takes a string of the form "key::value; key::value" and those values are
// applied the next time a Disk with the key is loaded.
package prefs
