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


package archivefs

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// ErrIsDir is returned by Read() when the path is a directory, or the root
// of an archive.
var ErrIsDir = errors.New("path is a directory")

// Node is a single entry returned by List().
type Node struct {
	Name string

	// an archive is also considered to be a directory
	IsDir     bool
	IsArchive bool
}

func (n Node) String() string {
	return n.Name
}

// Path is a single location in the file system. The zero value is an empty
// path. Close() should be called when the path is no longer required.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// location inside the zip file. paths inside a zip file always use a
	// forward slash as the separator
	inZip string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// IsDir returns true if the path is a directory. The root of an archive is
// treated as a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if the path is inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Close any open archive and reset the path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZip = ""
	if afs.zf != nil {
		_ = afs.zf.Close()
		afs.zf = nil
	}
}

// Set the path. Each element of the path is checked in turn. The first
// element that is a zip file is opened and the remaining elements are looked
// for inside the archive.
func (afs *Path) Set(pth string) error {
	afs.Close()

	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split() loses a leading separator
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	var built string
	for _, l := range lst {
		built = filepath.Join(built, l)

		if afs.zf != nil {
			p := path.Join(afs.inZip, l)

			f, err := afs.zf.Open(p)
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: %w", err)
			}
			fi, err := f.Stat()
			_ = f.Close()
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: %w", err)
			}

			afs.isDir = fi.IsDir()
			afs.inZip = p
			continue
		}

		fi, err := os.Stat(built)
		if err != nil {
			afs.Close()
			return fmt.Errorf("archivefs: %w", err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		afs.zf, err = zip.OpenReader(built)
		if err == nil {
			afs.isDir = true
			continue
		}

		// a file that is not an archive is fine. any other error is not
		if !errors.Is(err, zip.ErrFormat) {
			afs.Close()
			return fmt.Errorf("archivefs: %w", err)
		}
	}

	afs.current = filepath.Clean(built)

	return nil
}

// Read the contents of the file at the current path.
func (afs Path) Read() ([]byte, error) {
	if afs.current == "" {
		return nil, fmt.Errorf("archivefs: path has not been set")
	}
	if afs.isDir {
		return nil, fmt.Errorf("archivefs: %w: %s", ErrIsDir, afs.current)
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(afs.inZip)
		if err != nil {
			return nil, fmt.Errorf("archivefs: %w", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("archivefs: %w", err)
		}
		return b, nil
	}

	b, err := os.ReadFile(afs.current)
	if err != nil {
		return nil, fmt.Errorf("archivefs: %w", err)
	}
	return b, nil
}

// List returns the entries of the current directory. If the path is a file
// then the entries of the directory containing it are returned. Directories
// are listed first and entries are sorted by name without regard to case.
func (afs Path) List() ([]Node, error) {
	var ent []Node

	if afs.zf != nil {
		dir := afs.inZip
		if !afs.isDir {
			dir = path.Dir(dir)
		}
		if dir == "" {
			dir = "."
		}

		d, err := afs.zf.Open(dir)
		if err != nil {
			return nil, fmt.Errorf("archivefs: %w", err)
		}
		defer d.Close()

		rd, ok := d.(interface {
			ReadDir(int) ([]os.DirEntry, error)
		})
		if !ok {
			return nil, fmt.Errorf("archivefs: %w: %s", ErrIsDir, dir)
		}
		entries, err := rd.ReadDir(-1)
		if err != nil {
			return nil, fmt.Errorf("archivefs: %w", err)
		}
		for _, e := range entries {
			ent = append(ent, Node{Name: e.Name(), IsDir: e.IsDir()})
		}
	} else {
		dir := afs.current
		if !afs.isDir {
			dir = filepath.Dir(dir)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("archivefs: %w", err)
		}

		for _, e := range entries {
			// os.Stat() follows links to directories
			p := filepath.Join(dir, e.Name())
			fi, err := os.Stat(p)
			if err != nil {
				continue
			}

			if fi.IsDir() {
				ent = append(ent, Node{Name: e.Name(), IsDir: true})
				continue
			}

			zf, err := zip.OpenReader(p)
			if err == nil {
				_ = zf.Close()
				ent = append(ent, Node{Name: e.Name(), IsDir: true, IsArchive: true})
			} else {
				ent = append(ent, Node{Name: e.Name()})
			}
		}
	}

	slices.SortStableFunc(ent, func(a, b Node) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	return ent, nil
}
