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

// Package curated is a helper package for the plain Go language error type.
// Curated errors carry the pattern used to create them, which means callers
// can test for a particular class of error without resorting to string
// comparison of the final message.
//
//	const InvalidImage = "cartridge: %s: invalid image (%d bytes)"
//
//	err := curated.Errorf(InvalidImage, "F8", len(data))
//	if curated.Is(err, InvalidImage) {
//		...
//	}
//
// Has() is like Is() but searches the entire chain of wrapped curated errors.
//
// Error messages are normalised on output. Adjacent duplicate prefixes are
// removed so that "cartridge: cartridge: bad data" becomes "cartridge: bad
// data".
package curated
