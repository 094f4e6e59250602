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

// Package supercharger implements the tape based cartridge format produced by
// Starpath (originally Arcadia).
//
// The supercharger has 6K of RAM in three 2K banks and a 2K BIOS. Any two of
// the four can be mapped into cartridge space at once, according to the
// banking mode set through the configuration hotspot at $1FF8.
//
// Loading from tape is supported in two ways. "Fastload" images are binary
// files made up of one or more 8448 byte blocks. Each block contains the RAM
// data and a header describing how the data should be loaded. The tape
// hotspot at $1FF9 triggers the loading of the block. The embedding
// application should check FastloadPending() after every CPU instruction and
// call Fastload() if it returns true.
//
// "Soundload" images are recordings of the original cassette tapes in WAV or
// MP3 format. These are loaded by the BIOS exactly as they would be on the
// real hardware, one bit at a time through the tape hotspot. Soundload
// requires the real BIOS, supplied with SetBIOS(). Fastload images work
// without the real BIOS.
//
// The write mechanism of the supercharger is unusual. RAM is written by
// first reading an address in the range $1000 to $10FF, the low byte of the
// address being the value to write, and then reading the target address on
// the fifth distinct address transition after that.
package supercharger
