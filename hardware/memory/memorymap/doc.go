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

// Package memorymap describes how the 13 bit address space of the 6507 is
// divided between the chips of the console.
//
// Chip select is decided by three address lines. A12 selects the cartridge.
// Otherwise A7 selects the PIA, with A9 choosing between the PIA's RAM and
// its timer/IO registers. Everything else is the TIA.
//
// Each area is mirrored many times over. MapAddress() translates an address
// in any mirror to the primary address of the area. The mapping for reads is
// different to the mapping for writes because the TIA and PIA decode fewer
// address lines for reading than they do for writing.
package memorymap
