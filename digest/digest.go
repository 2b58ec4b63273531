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


// Package digest is used to create hashes of the emulation output. The
// Screen type hashes the sequence of presented frames and the Audio type
// hashes the sequence of tone edges.
//
// Hashes are chained, meaning that the hash of each frame (or edge) depends on
// the hash of every frame (or edge) that came before it. Two runs of the same
// ROM with the same input and the same (zero seeded) random source will
// therefore produce the same digest.
package digest

// Digest implementations should return a cryptographic hash in response to a
// Hash() request. Generation of the hash is achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
