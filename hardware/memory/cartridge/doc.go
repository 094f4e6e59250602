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

// Package cartridge implements the mapping of cartridge memory into the VCS
// address space.
//
// Some cartridge types contain additional RAM but the main difference is how
// they map additional ROM into the relatively small address space available
// for cartridges in the VCS. This is called bank-switching. All of these
// differences are handled transparently by the package.
//
// Currently supported cartridge types are listed below. The strings in
// quotation marks are the identifiers that can be used with TypeFromString().
// The long enumeration names (eg. "bankswitch_8k_F8") are also accepted.
//
//	Atari 2k		"2k"
//	Atari 4k		"4k"
//	Atari 8k		"F8"
//	Atari 16k		"F6"
//	Atari 32k		"F4"
//	Atari 64k		"EF"
//	CBS RAM Plus	"FA"
//	CBS extended	"FA2"
//	M-Network		"E7"
//	Parker Bros		"E0"
//	Tigervision		"3F"
//	Tigervision ext	"3E"
//	Activision		"FE"
//	UA Limited		"UA"
//	Pink Panther	"PP"
//	Econobanking	"EB"
//	Megaboy			"F0"
//	Commavid		"CV"
//	DPC (Pitfall2)	"DPC"
//	DPC+			"DPC+"
//	CDF				"CDF"
//	Supercharger	"AR"
//
// Atari formats F8, F6, F4 and EF are automatically given a SuperChip if the
// cartridge image shows evidence of it.
//
// Cartridge types that bank switch on accesses outside of cartridge space
// implement the BusSniffer interface and should be added as a listener to
// the memory bus.
package cartridge
