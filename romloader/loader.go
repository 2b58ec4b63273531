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

package romloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/archivefs"
)

// Sentinel errors returned by Load().
var (
	ErrHashMismatch = errors.New("unexpected hash value")
	ErrEmpty        = errors.New("file is empty")
	ErrNoProgram    = errors.New("no program file in archive")
)

// FileExtensions is the list of file extensions that are recognised as
// program files. Files with other extensions can still be loaded.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// Loader is used to specify the program file to load.
type Loader struct {
	// filename of program to load
	Filename string

	// expected hash of the loaded data. the empty string indicates that the
	// hash is unknown and need not be validated. after a successful load the
	// value will be the hash of the loaded data
	Hash string

	// the loaded data. subsequent calls to Load() will not reload the file
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns the filename without the path or extension.
func (ld Loader) ShortName() string {
	n := filepath.Base(ld.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// IsRecognised returns true if the filename has one of the extensions in the
// FileExtensions list. The comparison is case insensitive.
func (ld Loader) IsRecognised() bool {
	ext := strings.ToUpper(filepath.Ext(ld.Filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load the program data from the file. The file can be inside a zip archive.
// If the filename is the archive itself then the first file in the root of
// the archive with a recognised extension is loaded and the Filename field
// is updated to the path of that file.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	data, err := archivefs.Open(ld.Filename)
	if errors.Is(err, archivefs.ErrIsDir) {
		data, err = ld.openArchive()
	}
	if err != nil {
		return fmt.Errorf("romloader: %w", err)
	}

	if len(data) == 0 {
		return fmt.Errorf("romloader: %w: %s", ErrEmpty, ld.Filename)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return fmt.Errorf("romloader: %w: %s", ErrHashMismatch, ld.Filename)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}

func (ld *Loader) openArchive() ([]byte, error) {
	var afs archivefs.Path
	defer afs.Close()

	err := afs.Set(ld.Filename)
	if err != nil {
		return nil, err
	}
	if !afs.InArchive() {
		return nil, fmt.Errorf("%w: %s", archivefs.ErrIsDir, ld.Filename)
	}

	entries, err := afs.List()
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if e.IsDir {
			continue
		}
		if !NewLoader(e.Name).IsRecognised() {
			continue
		}

		fn := filepath.Join(ld.Filename, e.Name)
		data, err := archivefs.Open(fn)
		if err != nil {
			return nil, err
		}
		ld.Filename = fn
		return data, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNoProgram, ld.Filename)
}
