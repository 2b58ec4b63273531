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


package archivefs_test

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/archivefs"
	"github.com/jetsetilly/gopher8/test"
)

// creates a directory containing a plain file, a sub-directory and a zip
// archive. returns the path to the directory
func testDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "plain.ch8"), []byte{1, 2, 3}, 0o600))
	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, "Sub"), 0o700))

	f, err := os.Create(filepath.Join(dir, "archive.zip"))
	test.DemandSuccess(t, err)
	zw := zip.NewWriter(f)
	for name, data := range map[string]string{
		"b.ch8":       "bb",
		"A.ch8":       "a",
		"inner/c.ch8": "ccc",
	} {
		w, err := zw.Create(name)
		test.DemandSuccess(t, err)
		_, err = w.Write([]byte(data))
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	return dir
}

func TestPath(t *testing.T) {
	dir := testDir(t)

	var afs archivefs.Path
	defer afs.Close()

	test.ExpectFailure(t, afs.Set(filepath.Join(dir, "missing")))
	test.ExpectEquality(t, afs.String(), "")

	test.DemandSuccess(t, afs.Set(dir))
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectFailure(t, afs.InArchive())

	ent, err := afs.List()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(ent), 3)

	// directories first and then case insensitive order
	test.ExpectEquality(t, ent[0].Name, "archive.zip")
	test.ExpectSuccess(t, ent[0].IsArchive)
	test.ExpectEquality(t, ent[1].Name, "Sub")
	test.ExpectEquality(t, ent[2].Name, "plain.ch8")

	// the root of an archive is a directory
	test.DemandSuccess(t, afs.Set(filepath.Join(dir, "archive.zip")))
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	_, err = afs.Read()
	test.ExpectSuccess(t, errors.Is(err, archivefs.ErrIsDir))

	ent, err = afs.List()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(ent), 3)
	test.ExpectEquality(t, ent[0].Name, "inner")
	test.ExpectEquality(t, ent[1].Name, "A.ch8")
	test.ExpectEquality(t, ent[2].Name, "b.ch8")

	// a file inside the archive lists its siblings
	test.DemandSuccess(t, afs.Set(filepath.Join(dir, "archive.zip", "inner", "c.ch8")))
	test.ExpectFailure(t, afs.IsDir())
	ent, err = afs.List()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(ent), 1)
	test.ExpectEquality(t, ent[0].Name, "c.ch8")
}

func TestOpen(t *testing.T) {
	dir := testDir(t)

	b, err := archivefs.Open(filepath.Join(dir, "plain.ch8"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(b), 3)

	b, err = archivefs.Open(filepath.Join(dir, "archive.zip", "inner", "c.ch8"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "ccc")

	_, err = archivefs.Open(filepath.Join(dir, "archive.zip", "missing.ch8"))
	test.ExpectFailure(t, err)

	_, err = archivefs.Open(dir)
	test.ExpectSuccess(t, errors.Is(err, archivefs.ErrIsDir))
}
