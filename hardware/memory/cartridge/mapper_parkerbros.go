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

package cartridge

import (
	"fmt"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopher2600core/hardware/memory/memorymap"
)

// from bankswitch_sizes.txt:
//
// -E0: Parker Brothers was the main user of this method.  This cart is
// segmented into 4 1K segments.  Each segment can point to one 1K slice of the
// ROM image.  You select the desired 1K slice by accessing 1FE0 to 1FE7 for
// the first 1K (1FE0 selects slice 0, 1FE1 selects slice 1, etc).  1FE8 to
// 1FEF selects the slice for the second 1K, and 1FF0 to 1FF8 selects the slice
// for the third 1K.  The last 1K always points to the last 1K of the ROM image
// so that the cart always starts up in the exact same place.
//
// cartridges:
//   - Montezuma's Revenge
//   - Lord of the Rings
//   - etc.
type parkerBros struct {
	// parkerBros cartridges have 8 banks of 1024 bytes
	bankSize int
	banks    [][]uint8

	// the bank pointed to by each of the four segments. the last segment
	// always points to the last bank
	segment [4]int
}

func newParkerBros(data []uint8) (mapper.CartMapper, error) {
	if len(data) != 8192 {
		return nil, curated.Errorf(InvalidImageError, Bankswitch8kE0, fmt.Sprintf("wrong number of bytes (%d)", len(data)))
	}

	cart := &parkerBros{
		bankSize: 1024,
		banks:    mapper.SplitBanks(data, 1024),
	}

	return cart, nil
}

func (cart *parkerBros) String() string {
	return fmt.Sprintf("%s Banks: %d %d %d %d", cart.Description(), cart.segment[0], cart.segment[1], cart.segment[2], cart.segment[3])
}

// Type implements the mapper.CartMapper interface.
func (cart *parkerBros) Type() mapper.Type {
	return Bankswitch8kE0
}

// Description implements the mapper.CartMapper interface.
func (cart *parkerBros) Description() string {
	return Bankswitch8kE0.Description()
}

// Reset implements the mapper.CartMapper interface.
func (cart *parkerBros) Reset() {
	cart.segment[0] = 4
	cart.segment[1] = 5
	cart.segment[2] = 6
	cart.segment[3] = 7
}

func (cart *parkerBros) bankswitch(addr uint16) bool {
	switch {
	case addr >= 0x0fe0 && addr <= 0x0fe7:
		cart.segment[0] = int(addr - 0x0fe0)
	case addr >= 0x0fe8 && addr <= 0x0fef:
		cart.segment[1] = int(addr - 0x0fe8)
	case addr >= 0x0ff0 && addr <= 0x0ff7:
		cart.segment[2] = int(addr - 0x0ff0)
	default:
		return false
	}
	return true
}

// Read implements the mapper.CartMapper interface.
func (cart *parkerBros) Read(addr uint16) (uint8, error) {
	cart.bankswitch(addr)
	return cart.Peek(addr)
}

// Write implements the mapper.CartMapper interface.
func (cart *parkerBros) Write(addr uint16, _ uint8) error {
	cart.bankswitch(addr)
	return nil
}

// Peek implements the mapper.CartMapper interface.
func (cart *parkerBros) Peek(addr uint16) (uint8, error) {
	seg := int(addr>>10) & 0x03
	return cart.banks[cart.segment[seg]][addr&0x03ff], nil
}

// Poke implements the mapper.CartMapper interface.
func (cart *parkerBros) Poke(addr uint16, data uint8) error {
	seg := int(addr>>10) & 0x03
	cart.banks[cart.segment[seg]][addr&0x03ff] = data
	return nil
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *parkerBros) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *parkerBros) GetBank(addr uint16) memorymap.BankDetails {
	seg := int(addr>>10) & 0x03
	return memorymap.BankDetails{Number: cart.segment[seg], Segment: seg}
}
