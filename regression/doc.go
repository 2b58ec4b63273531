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


// Package regression facilitates the regression testing of the emulator. A
// regression entry records the digests produced by running a program for a
// fixed number of cycles. Running the entry again at a later date must
// produce the same digests.
//
// Entries are kept in a flat file managed by the database package. The
// RegressAdd(), RegressList(), RegressDelete() and RegressRun() functions
// each take the path of that file.
//
// The DigestMode type specifies whether the screen digest, the audio digest
// or both are compared when the entry is run.
package regression
