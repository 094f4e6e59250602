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

// Package addresses contains the addresses and canonical names of the TIA and
// RIOT registers. The named constants are used by the chip implementations
// when decoding an access. The canonical names are used for logging and
// diagnostics.
//
// The Read and Write arrays are sparse arrays created from the canonical
// maps. They are faster to index than the maps, which is important because
// they are consulted on every chip access.
package addresses
