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


// Package tone generates the sound that is heard while the machine's sound
// timer is running.
//
// The machine has no control over the character of the sound. The
// Generator type will produce either a square wave, of a frequency and volume
// specified by the Preferences type, or it will loop a sample that has been
// loaded from a WAV or MP3 file.
//
// A Generator produces mono sample data at a fixed sample rate. Consumers of
// the data (the SDL audio device and the WAV writer) read from the Generator
// in the format they require.
package tone
