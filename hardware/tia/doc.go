// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package tia implements the video and audio chip of the VCS. The TIA is
// clocked three times for every CPU cycle and each call to Cycle() advances
// the horizontal clock by one colour clock.
//
// A scanline is 228 colour clocks. The first 68 clocks are the horizontal
// blank, during which nothing is drawn. A write to HMOVE extends the
// horizontal blank by eight clocks and starts the sequence of movement clocks
// that move the objects horizontally. Movement clocks occur every four colour
// clocks and stop for each object when the movement counter matches the
// object's motion value.
//
// A write to WSYNC lowers the CPU's RDY line until the start of the next
// scanline. The state of the RDY line is returned by Cycle(). It is the
// responsibility of the caller to halt and resume the CPU.
//
// At the end of every scanline the FrameManager is notified. Changes to VSYNC
// and VBLANK are forwarded to the FrameManager as they happen.
//
// Of the movable objects only the ball is emulated. Writes to the player and
// missile registers are accepted but have no effect. Collisions between the
// ball and the playfield are latched in CXBLPF.
package tia
