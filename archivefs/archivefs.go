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


// Package archivefs allows files inside zip archives to be addressed with an
// ordinary looking path. For example, the path
//
//	roms/collection.zip/games/pong.ch8
//
// refers to the file games/pong.ch8 inside the archive roms/collection.zip.
// Paths that do not pass through an archive are treated normally.
package archivefs

// Open the named file, which may be inside an archive, and return its
// contents.
func Open(filename string) ([]byte, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, err
	}
	defer afs.Close()
	return afs.Read()
}
