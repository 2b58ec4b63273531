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


package regression

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jetsetilly/gopher8/database"
	"github.com/jetsetilly/gopher8/logger"
)

// DefaultDBFile is the name of the regression database in the resource
// directory.
const DefaultDBFile = "regressionDB"

// ErrRegressionFailed is returned by RegressRun() if any entry failed.
var ErrRegressionFailed = errors.New("regression tests failed")

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag indicates that the entry is being added to the database and that
	// the results should be recorded rather than compared. the string is a
	// short explanation of any failure
	regress(newRegression bool) (bool, string, error)
}

// register the entry types that may be found in the database
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(digestEntryType, deserialiseDigestEntry)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer, dbFile string) error {
	db, err := database.StartSession(dbFile, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd runs the regression entry and adds it to the database.
func RegressAdd(output io.Writer, dbFile string, reg Regressor) error {
	db, err := database.StartSession(dbFile, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}

	ok, msg, err := reg.regress(true)
	if err == nil && !ok {
		err = fmt.Errorf("regression: %s", msg)
	}
	if err != nil {
		return errors.Join(err, db.EndSession(false))
	}

	key, err := db.Add(reg)
	if err != nil {
		return errors.Join(err, db.EndSession(false))
	}

	if err := db.EndSession(true); err != nil {
		return err
	}

	fmt.Fprintf(output, "added: %03d %s\n", key, reg)
	logger.Logf(logger.Allow, "regression", "added %s", reg)

	return nil
}

// RegressDelete removes an entry from the database. The confirmation reader
// is read for a yes or no answer.
func RegressDelete(output io.Writer, dbFile string, confirmation io.Reader, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return fmt.Errorf("regression: invalid key (%s)", key)
	}

	db, err := database.StartSession(dbFile, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}

	ent, err := db.Get(v)
	if err != nil {
		return errors.Join(err, db.EndSession(false))
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

	confirm := make([]byte, 1)
	_, err = confirmation.Read(confirm)
	if err != nil && !errors.Is(err, io.EOF) {
		return errors.Join(err, db.EndSession(false))
	}

	if confirm[0] != 'y' && confirm[0] != 'Y' {
		return db.EndSession(false)
	}

	if err := db.Delete(v); err != nil {
		return errors.Join(err, db.EndSession(false))
	}

	if err := db.EndSession(true); err != nil {
		return err
	}

	fmt.Fprintf(output, "deleted test #%03d from regression database\n", v)

	return nil
}

// RegressRun runs the entries in the database. An empty list of keys means
// that every entry is run.
//
// If failOnError is true then the run stops at the first entry that returns
// an error. A failed comparison is not an error in this sense.
func RegressRun(output io.Writer, dbFile string, verbose bool, failOnError bool, filterKeys []string) error {
	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("regression: invalid key (%s)", k)
		}
		keys = append(keys, v)
	}

	db, err := database.StartSession(dbFile, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	var numSucceed, numFail, numError int

	errStop := errors.New("stop")

	onSelect := func(key int, ent database.Entry) error {
		reg, ok := ent.(Regressor)
		if !ok {
			return fmt.Errorf("regression: database entry %03d is not a regressor", key)
		}

		ok, msg, err := reg.regress(false)
		switch {
		case err != nil:
			numError++
			fmt.Fprintf(output, " ERROR: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "        %v\n", err)
			}
			if failOnError {
				return errStop
			}
		case !ok:
			numFail++
			fmt.Fprintf(output, "failure: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "        %s\n", msg)
			}
		default:
			numSucceed++
			fmt.Fprintf(output, "succeed: %03d %s\n", key, reg)
		}

		return nil
	}

	_, err = db.SelectKeys(onSelect, keys...)
	if err != nil && !errors.Is(err, errStop) {
		if errors.Is(err, database.ErrSelectEmpty) {
			fmt.Fprintln(output, "no regression tests selected")
			return nil
		}
		return err
	}

	fmt.Fprintf(output, "regression tests: %d succeed, %d fail", numSucceed, numFail)
	if numError > 0 {
		fmt.Fprintf(output, " [with %d errors]", numError)
	}
	fmt.Fprintln(output)

	if numFail > 0 || numError > 0 {
		return ErrRegressionFailed
	}

	return nil
}
