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

// Package display is the monochrome framebuffer of the machine.
//
// The framebuffer is 64 pixels wide and 32 pixels high. Each pixel is stored
// in a single byte with a value of zero (off) or one (on). The pixel at
// column x and row y is at index y*Width+x.
//
// Sprites are drawn by XORing their bits onto the framebuffer. Sprites that
// extend beyond the right or bottom edge wrap around to the opposite edge.
//
// The dirty flag is set whenever the framebuffer changes. It is cleared by the
// presenting code once the framebuffer has been rendered.
package display
