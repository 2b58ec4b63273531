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

package romloader_test

import (
	"archive/zip"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

func writeROM(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0600))
	return fn
}

func TestLoad(t *testing.T) {
	fn := writeROM(t, "pong.ch8", []byte{0x12, 0x00})

	ld := romloader.NewLoader(fn)
	test.ExpectEquality(t, ld.ShortName(), "pong")
	test.ExpectSuccess(t, ld.IsRecognised())
	test.ExpectFailure(t, ld.HasLoaded())

	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, len(ld.Data), 2)

	// sha1 of the bytes 0x12 0x00
	test.ExpectEquality(t, len(ld.Hash), 40)

	// hash is checked
	other := romloader.NewLoader(fn)
	other.Hash = ld.Hash
	test.ExpectSuccess(t, other.Load())

	other = romloader.NewLoader(fn)
	other.Hash = "0000000000000000000000000000000000000000"
	err := other.Load()
	test.ExpectSuccess(t, errors.Is(err, romloader.ErrHashMismatch))
}

func TestLoadErrors(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	err := ld.Load()
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))

	fn := writeROM(t, "empty.ch8", []byte{})
	ld = romloader.NewLoader(fn)
	err = ld.Load()
	test.ExpectSuccess(t, errors.Is(err, romloader.ErrEmpty))
}

func TestRecognised(t *testing.T) {
	test.ExpectSuccess(t, romloader.NewLoader("a/b/game.CH8").IsRecognised())
	test.ExpectSuccess(t, romloader.NewLoader("game.c8").IsRecognised())
	test.ExpectFailure(t, romloader.NewLoader("game.txt").IsRecognised())
	test.ExpectEquality(t, romloader.NewLoader("a/b/game.CH8").ShortName(), "game")
}

func writeArchive(t *testing.T, files map[string][]byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "collection.zip")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)

	zw := zip.NewWriter(f)
	for name, data := range files {
		w, err := zw.Create(name)
		test.DemandSuccess(t, err)
		_, err = w.Write(data)
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	return fn
}

func TestLoadFromArchive(t *testing.T) {
	fn := writeArchive(t, map[string][]byte{
		"readme.txt":     []byte("not a program"),
		"pong.ch8":       {0x12, 0x00},
		"extra/maze.ch8": {0x00, 0xe0, 0x12, 0x02},
	})

	// file named explicitly
	ld := romloader.NewLoader(filepath.Join(fn, "extra", "maze.ch8"))
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 4)
	test.ExpectEquality(t, ld.ShortName(), "maze")

	// archive named. the first recognised file in the root is loaded
	ld = romloader.NewLoader(fn)
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 2)
	test.ExpectEquality(t, ld.ShortName(), "pong")
	test.ExpectEquality(t, ld.Filename, filepath.Join(fn, "pong.ch8"))

	// missing file in archive
	ld = romloader.NewLoader(filepath.Join(fn, "missing.ch8"))
	test.ExpectFailure(t, ld.Load())

	// archive without a program
	fn = writeArchive(t, map[string][]byte{"readme.txt": []byte("none")})
	ld = romloader.NewLoader(fn)
	err := ld.Load()
	test.ExpectSuccess(t, errors.Is(err, romloader.ErrNoProgram))
}
