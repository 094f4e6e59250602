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

// The Dynacom Megaboy cartridge has sixteen 4K banks. Every access to $1FF0
// selects the next bank, wrapping around after the last bank. Unlike other
// schemes, repeated accesses to the hotspot continue to change the bank.
type megaboy struct {
	bankSize int
	banks    [][]uint8
	bank     int
}

func newMegaboy(data []uint8) (mapper.CartMapper, error) {
	if len(data) != 65536 {
		return nil, curated.Errorf(InvalidImageError, Bankswitch64kF0, fmt.Sprintf("wrong number of bytes (%d)", len(data)))
	}

	cart := &megaboy{
		bankSize: 4096,
		banks:    mapper.SplitBanks(data, 4096),
	}

	return cart, nil
}

func (cart *megaboy) String() string {
	return fmt.Sprintf("%s Bank: %d", cart.Description(), cart.bank)
}

// Type implements the mapper.CartMapper interface.
func (cart *megaboy) Type() mapper.Type {
	return Bankswitch64kF0
}

// Description implements the mapper.CartMapper interface.
func (cart *megaboy) Description() string {
	return Bankswitch64kF0.Description()
}

// Reset implements the mapper.CartMapper interface.
func (cart *megaboy) Reset() {
	cart.bank = len(cart.banks) - 1
}

func (cart *megaboy) bankswitch(addr uint16) {
	if addr == 0x0ff0 {
		cart.bank = (cart.bank + 1) % len(cart.banks)
	}
}

// Read implements the mapper.CartMapper interface.
func (cart *megaboy) Read(addr uint16) (uint8, error) {
	cart.bankswitch(addr)
	return cart.Peek(addr)
}

// Write implements the mapper.CartMapper interface.
func (cart *megaboy) Write(addr uint16, _ uint8) error {
	cart.bankswitch(addr)
	return nil
}

// Peek implements the mapper.CartMapper interface.
func (cart *megaboy) Peek(addr uint16) (uint8, error) {
	return cart.banks[cart.bank][addr&0x0fff], nil
}

// Poke implements the mapper.CartMapper interface.
func (cart *megaboy) Poke(addr uint16, data uint8) error {
	cart.banks[cart.bank][addr&0x0fff] = data
	return nil
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *megaboy) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *megaboy) GetBank(_ uint16) memorymap.BankDetails {
	return memorymap.BankDetails{Number: cart.bank}
}
