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

// Package harmony implements the cartridge formats that use the ARM
// processor of the Harmony cartridge: DPC+ and CDF.
//
// Both formats offer data fetchers (DPC+) or data streams (CDF) that feed
// graphics data to the 6507 faster than it could fetch it from ROM, and three
// music streams mixed by the cartridge. Custom ARM code is run by writing to
// the CALLFN register. The ARM is emulated by the thumbulator package.
//
// The music streams are clocked at 20kHz, derived from the CPU cycle count
// supplied through the mapper.CPUAware interface.
package harmony
