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

package memorymap

import "fmt"

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case TIA:
		return "TIA"
	case RAM:
		return "RAM"
	case RIOT:
		return "RIOT"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the VCS. RAM and RIOT are both parts of the
// PIA chip.
const (
	Undefined Area = iota
	TIA
	RAM
	RIOT
	Cartridge
)

// IsPIA returns true if the area is served by the PIA chip.
func (a Area) IsPIA() bool {
	return a == RAM || a == RIOT
}

// The origin and memory top for each area of memory.
const (
	OriginTIA  = uint16(0x0000)
	MemtopTIA  = uint16(0x003f)
	OriginRAM  = uint16(0x0080)
	MemtopRAM  = uint16(0x00ff)
	OriginRIOT = uint16(0x0280)
	MemtopRIOT = uint16(0x0297)
	OriginCart = uint16(0x1000)
	MemtopCart = uint16(0x1fff)
)

// Cartridge memory is mirrored in a number of places in the address space.
// The Fxxx mirror is the one most programmers use.
const (
	OriginCartFxxxMirror = uint16(0xf000)
	MemtopCartFxxxMirror = uint16(0xffff)
)

// Memtop is the top most address of memory in the VCS. The 6507 only has 13
// address lines.
const Memtop = uint16(0x1fff)

// The chip select lines.
const (
	SelectCartridge = uint16(0x1000)
	SelectPIA       = uint16(0x0080)
	SelectRIOT      = uint16(0x0200)
)

// Address lines decoded by each chip.
const (
	MaskTIARead   = uint16(0x000f)
	MaskTIAWrite  = uint16(0x003f)
	MaskRIOTRead  = uint16(0x0007)
	MaskRIOTWrite = uint16(0x001f)
	MaskRAM       = uint16(0x007f)
)

// CartridgeBits identifies the bits in an address that are relevant to the
// cartridge address. For example, the following will be true:
//
//	0x1123 & CartridgeBits == 0xf123 & CartridgeBits
const (
	CartridgeBits = OriginCart ^ MemtopCart
)

// MapAddress translates the address argument from mirror space to primary
// space.
func MapAddress(address uint16, read bool) (uint16, Area) {
	address &= Memtop

	// the order of these tests is important
	if address&SelectCartridge == SelectCartridge {
		return address, Cartridge
	}

	if address&SelectPIA == SelectPIA {
		if address&SelectRIOT == SelectRIOT {
			if read {
				return OriginRIOT | (address & MaskRIOTRead), RIOT
			}
			return OriginRIOT | (address & MaskRIOTWrite), RIOT
		}
		return OriginRAM | (address & MaskRAM), RAM
	}

	if read {
		return address & MaskTIARead, TIA
	}
	return address & MaskTIAWrite, TIA
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address, true)
	return area == a
}

// BankDetails is used to identify a cartridge bank.
type BankDetails struct {
	Number int
	IsRAM  bool

	// segment of the cartridge address space the bank is mapped into, for
	// cartridges that divide the address space
	Segment int
}

func (b BankDetails) String() string {
	if b.IsRAM {
		return fmt.Sprintf("%dR", b.Number)
	}
	return fmt.Sprintf("%d", b.Number)
}
