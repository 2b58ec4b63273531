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


package database

import (
	"errors"
)

// ErrSelectEmpty is returned by SelectKeys() if no entry was matched.
var ErrSelectEmpty = errors.New("database: select empty")

// SelectAll entries in the database. onSelect can be nil.
//
// Returns the last entry selected or an error with the last entry selected
// before the error occurred.
func (db Session) SelectAll(onSelect func(int, Entry) error) (Entry, error) {
	return db.SelectKeys(onSelect)
}

// SelectKeys matches entries with the specified key(s). If the list of keys
// is empty then all keys are matched. Keys that are not in the database are
// skipped. onSelect can be nil.
//
// Returns the last entry selected or an error with the last entry selected
// before the error occurred.
func (db Session) SelectKeys(onSelect func(int, Entry) error, keys ...int) (Entry, error) {
	var entry Entry

	if onSelect == nil {
		onSelect = func(_ int, _ Entry) error { return nil }
	}

	keyList := keys
	if len(keys) == 0 {
		keyList = db.SortedKeyList()
	}

	for _, k := range keyList {
		ent, ok := db.entries[k]
		if !ok {
			continue
		}
		entry = ent
		if err := onSelect(k, entry); err != nil {
			return entry, err
		}
	}

	if entry == nil {
		return nil, ErrSelectEmpty
	}

	return entry, nil
}
