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
	"github.com/jetsetilly/gopher2600core/hardware/memory/bus"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopher2600core/hardware/memory/memorymap"
)

// Econobanking (also known as 0840) is an 8K scheme with two 4K banks. An
// access to $0800 (or a mirror) selects the first bank and an access to $0840
// selects the second. Only address lines A6, A11 and A12 are decoded.
type econobanking struct {
	bankSize int
	banks    [][]uint8
	bank     int
}

func newEconobanking(data []uint8) (mapper.CartMapper, error) {
	if len(data) != 8192 {
		return nil, curated.Errorf(InvalidImageError, Bankswitch8kEB, fmt.Sprintf("wrong number of bytes (%d)", len(data)))
	}

	cart := &econobanking{
		bankSize: 4096,
		banks:    mapper.SplitBanks(data, 4096),
	}

	return cart, nil
}

func (cart *econobanking) String() string {
	return fmt.Sprintf("%s Bank: %d", cart.Description(), cart.bank)
}

// Type implements the mapper.CartMapper interface.
func (cart *econobanking) Type() mapper.Type {
	return Bankswitch8kEB
}

// Description implements the mapper.CartMapper interface.
func (cart *econobanking) Description() string {
	return Bankswitch8kEB.Description()
}

// Reset implements the mapper.CartMapper interface.
func (cart *econobanking) Reset() {
	cart.bank = 0
}

// Read implements the mapper.CartMapper interface.
func (cart *econobanking) Read(addr uint16) (uint8, error) {
	return cart.Peek(addr)
}

// Write implements the mapper.CartMapper interface.
func (cart *econobanking) Write(_ uint16, _ uint8) error {
	return nil
}

// Peek implements the mapper.CartMapper interface.
func (cart *econobanking) Peek(addr uint16) (uint8, error) {
	return cart.banks[cart.bank][addr&0x0fff], nil
}

// Poke implements the mapper.CartMapper interface.
func (cart *econobanking) Poke(addr uint16, data uint8) error {
	cart.banks[cart.bank][addr&0x0fff] = data
	return nil
}

// Listen implements the mapper.BusSniffer interface.
func (cart *econobanking) Listen(access bus.Access) {
	switch access.Address & 0x1840 {
	case 0x0800:
		cart.bank = 0
	case 0x0840:
		cart.bank = 1
	}
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *econobanking) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *econobanking) GetBank(_ uint16) memorymap.BankDetails {
	return memorymap.BankDetails{Number: cart.bank}
}
