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


// Package playmode is the driver loop of the emulation. It steps the machine
// at the cycle rate, presents the framebuffer to a gui.Renderer when it has
// changed, forwards user input to the keypad and switches the tone on and
// off in any attached gui.AudioMixer implementations.
//
// The machine is stepped in batches, one batch per frame. The number of steps
// in a batch is the cycle rate divided by the frame rate, with any fraction
// carried over to the next batch. Run() paces the batches with a limiter.
// RunFor() does not pace the batches and is used for headless emulation.
package playmode
