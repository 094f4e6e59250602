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
	"math/rand"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopher2600core/hardware/memory/memorymap"
)

// from bankswitch_sizes.txt:
//
// -E7: Only M-Network used this scheme.  This has to be the most complex
// method used in any cart! :-) It allows for the capability of 2K of RAM;
// although it doesn't have to be used (in fact, only one cart used it-
// Burgertime).  This is similar to the 3F type with a few changes.  There are
// now 8 2K banks, instead of 4.
//
// The last 2K in the cart always points to the last 2K of the ROM image, while
// the first 2K is selectable.  You access 1FE0 to 1FE6 to select which 2K
// bank. Note that you cannot select the last 2K of the ROM image into the
// lower 2K of the cart!
//
// Accessing 1FE7 selects 1K of RAM at 1000-17FF instead of ROM!  The 2K of RAM
// is broken up into two 1K sections.  One 1K section is mapped in at 1000-17FF
// if 1FE7 has been accessed.  1000-13FF is the write port, while 1400-17FF is
// the read port.
//
// The second 1K of RAM appears at 1800-19FF.  1800-18FF is the
// write port while 1900-19FF is the read port.  You select which 256 byte
// block appears here by accessing 1FE8 to 1FEB.
//
// Note that the 256-byte banks and the large 1K bank are seperate entities.
// The M-Network carts are about as complex as it gets.
type mnetwork struct {
	// mnetwork cartridges have 8 banks of 2048 bytes
	bankSize int
	banks    [][]uint8

	// the 1K RAM bank
	ram1k [1024]uint8

	// the four 256 byte RAM banks
	ram256 [4][256]uint8

	// the bank in the lower segment
	bank int

	// the lower segment is pointing to the 1K RAM
	ramMapped bool

	// the 256 byte RAM bank visible at $1800
	ramBank int
}

func newMnetwork(data []uint8) (mapper.CartMapper, error) {
	if len(data) != 16384 {
		return nil, curated.Errorf(InvalidImageError, Bankswitch16kE7, fmt.Sprintf("wrong number of bytes (%d)", len(data)))
	}

	cart := &mnetwork{
		bankSize: 2048,
		banks:    mapper.SplitBanks(data, 2048),
	}

	return cart, nil
}

func (cart *mnetwork) String() string {
	if cart.ramMapped {
		return fmt.Sprintf("%s Banks: R %d RAM: %d", cart.Description(), len(cart.banks)-1, cart.ramBank)
	}
	return fmt.Sprintf("%s Banks: %d %d RAM: %d", cart.Description(), cart.bank, len(cart.banks)-1, cart.ramBank)
}

// Type implements the mapper.CartMapper interface.
func (cart *mnetwork) Type() mapper.Type {
	return Bankswitch16kE7
}

// Description implements the mapper.CartMapper interface.
func (cart *mnetwork) Description() string {
	return Bankswitch16kE7.Description()
}

// Reset implements the mapper.CartMapper interface.
func (cart *mnetwork) Reset() {
	cart.bank = 0
	cart.ramMapped = false
	cart.ramBank = 0
}

// Randomize implements the mapper.Randomizer interface.
func (cart *mnetwork) Randomize(rnd *rand.Rand) {
	for i := range cart.ram1k {
		cart.ram1k[i] = uint8(rnd.Intn(0x100))
	}
	for b := range cart.ram256 {
		for i := range cart.ram256[b] {
			cart.ram256[b][i] = uint8(rnd.Intn(0x100))
		}
	}
}

func (cart *mnetwork) bankswitch(addr uint16) bool {
	switch {
	case addr >= 0x0fe0 && addr <= 0x0fe6:
		cart.bank = int(addr - 0x0fe0)
		cart.ramMapped = false
	case addr == 0x0fe7:
		cart.ramMapped = true
	case addr >= 0x0fe8 && addr <= 0x0feb:
		cart.ramBank = int(addr - 0x0fe8)
	default:
		return false
	}
	return true
}

// Read implements the mapper.CartMapper interface.
func (cart *mnetwork) Read(addr uint16) (uint8, error) {
	cart.bankswitch(addr)
	return cart.Peek(addr)
}

// Write implements the mapper.CartMapper interface.
func (cart *mnetwork) Write(addr uint16, data uint8) error {
	if cart.bankswitch(addr) {
		return nil
	}

	if cart.ramMapped && addr <= 0x03ff {
		cart.ram1k[addr] = data
		return nil
	}

	if addr >= 0x0800 && addr <= 0x08ff {
		cart.ram256[cart.ramBank][addr&0xff] = data
	}

	return nil
}

// Peek implements the mapper.CartMapper interface.
func (cart *mnetwork) Peek(addr uint16) (uint8, error) {
	if addr <= 0x07ff {
		if cart.ramMapped {
			return cart.ram1k[addr&0x03ff], nil
		}
		return cart.banks[cart.bank][addr&0x07ff], nil
	}

	if addr >= 0x0800 && addr <= 0x09ff {
		return cart.ram256[cart.ramBank][addr&0xff], nil
	}

	return cart.banks[len(cart.banks)-1][addr&0x07ff], nil
}

// Poke implements the mapper.CartMapper interface.
func (cart *mnetwork) Poke(addr uint16, data uint8) error {
	if addr <= 0x07ff {
		if cart.ramMapped {
			cart.ram1k[addr&0x03ff] = data
		} else {
			cart.banks[cart.bank][addr&0x07ff] = data
		}
		return nil
	}

	if addr >= 0x0800 && addr <= 0x09ff {
		cart.ram256[cart.ramBank][addr&0xff] = data
		return nil
	}

	cart.banks[len(cart.banks)-1][addr&0x07ff] = data
	return nil
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *mnetwork) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *mnetwork) GetBank(addr uint16) memorymap.BankDetails {
	if addr <= 0x07ff {
		if cart.ramMapped {
			return memorymap.BankDetails{IsRAM: true, Segment: 0}
		}
		return memorymap.BankDetails{Number: cart.bank, Segment: 0}
	}
	if addr <= 0x09ff {
		return memorymap.BankDetails{Number: cart.ramBank, IsRAM: true, Segment: 1}
	}
	return memorymap.BankDetails{Number: len(cart.banks) - 1, Segment: 1}
}
