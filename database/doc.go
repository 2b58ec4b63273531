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


// Package database is a very simple way of storing structured and arbitrary
// entries in a flat text file. Each line of the file is an entry. The first
// two fields of every line are the key and the entry type ID. The remaining
// fields belong to the entry itself.
//
// Entry types must be registered with RegisterEntryType() before the file is
// read. This happens in the init function passed to StartSession().
//
//	db, err := database.StartSession(path, database.ActivityModifying, initFunc)
//	if err != nil {
//		return err
//	}
//	defer db.EndSession(true)
//
// Changes are only written to disk if EndSession() is called with the commit
// flag set and the session was started with an activity that allows it.
package database
