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

// Package cartridgeloader is used to specify the data that is to be attached
// to the emulated VCS.
//
// The simplest use of the package:
//
//	cl := cartridgeloader.NewLoader("roms/Pitfall.bin", "AUTO")
//	cart, err := cl.Cartridge()
//
// The NewLoader() function sets the mapping according to the filename
// extension unless a mapping is given explicitly. A mapping of "AUTO" means
// that the cartridge type is detected from the data.
//
// Supercharger images use the real BIOS if it can be found in the same
// directory as the image. Otherwise the stub BIOS is used. FA2 images use a
// file next to the image for non-volatile storage.
package cartridgeloader
