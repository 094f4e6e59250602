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
// 12K:
//
//	-FA: Used only by CBS.  Similar to F8, except you have three 4K banks
//	instead of two.  You select the desired bank via 1FF8, 1FF9, and 1FFA.
//	These carts also have 256 bytes of RAM mapped in at 1000-11FF.  1000-10FF
//	is the write port while 1100-11FF is the read port.
//
// cartridges:
//   - Omega Race
//   - Gorf
type cbs struct {
	// cbs cartridges have 3 banks of 4096 bytes
	bankSize int
	banks    [][]uint8

	ram [256]uint8

	bank int
}

func newCBS(data []uint8) (mapper.CartMapper, error) {
	if len(data) != 12288 {
		return nil, curated.Errorf(InvalidImageError, Bankswitch12kFA, fmt.Sprintf("wrong number of bytes (%d)", len(data)))
	}

	cart := &cbs{
		bankSize: 4096,
		banks:    mapper.SplitBanks(data, 4096),
	}

	return cart, nil
}

func (cart *cbs) String() string {
	return fmt.Sprintf("%s Bank: %d", cart.Description(), cart.bank)
}

// Type implements the mapper.CartMapper interface.
func (cart *cbs) Type() mapper.Type {
	return Bankswitch12kFA
}

// Description implements the mapper.CartMapper interface.
func (cart *cbs) Description() string {
	return Bankswitch12kFA.Description()
}

// Reset implements the mapper.CartMapper interface.
func (cart *cbs) Reset() {
	cart.bank = len(cart.banks) - 1
}

// Randomize implements the mapper.Randomizer interface.
func (cart *cbs) Randomize(rnd *rand.Rand) {
	for i := range cart.ram {
		cart.ram[i] = uint8(rnd.Intn(0x100))
	}
}

func (cart *cbs) bankswitch(addr uint16) bool {
	if addr >= 0x0ff8 && addr <= 0x0ffa {
		cart.bank = int(addr - 0x0ff8)
		return true
	}
	return false
}

// Read implements the mapper.CartMapper interface.
func (cart *cbs) Read(addr uint16) (uint8, error) {
	cart.bankswitch(addr)
	return cart.Peek(addr)
}

// Write implements the mapper.CartMapper interface.
func (cart *cbs) Write(addr uint16, data uint8) error {
	if cart.bankswitch(addr) {
		return nil
	}
	if addr <= 0x00ff {
		cart.ram[addr] = data
	}
	return nil
}

// Peek implements the mapper.CartMapper interface.
func (cart *cbs) Peek(addr uint16) (uint8, error) {
	if addr >= 0x0100 && addr <= 0x01ff {
		return cart.ram[addr-0x0100], nil
	}
	return cart.banks[cart.bank][addr&0x0fff], nil
}

// Poke implements the mapper.CartMapper interface.
func (cart *cbs) Poke(addr uint16, data uint8) error {
	if addr <= 0x01ff {
		cart.ram[addr&0xff] = data
		return nil
	}
	cart.banks[cart.bank][addr&0x0fff] = data
	return nil
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *cbs) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *cbs) GetBank(addr uint16) memorymap.BankDetails {
	return memorymap.BankDetails{Number: cart.bank, IsRAM: addr <= 0x01ff}
}
