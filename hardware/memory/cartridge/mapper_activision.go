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

// from bankswitch_sizes.txt:
//
// -FE: Activision used this method on only three games: Decathlon, Robot Tank,
// and the prototype Thwocker. This is very similar to the F8 type except the
// bank is selected by watching the stack. A JSR or RTS accesses $01FE and
// then the high byte of the target address. If bit 5 of that high byte is
// set (the program is calling into $F000-$FFFF) the first bank is selected,
// otherwise ($D000-$DFFF) the second bank is selected.
type activision struct {
	bankSize int
	banks    [][]uint8
	bank     int

	// the previous access was to $01FE
	pending bool
}

func newActivision(data []uint8) (mapper.CartMapper, error) {
	if len(data) != 8192 {
		return nil, curated.Errorf(InvalidImageError, Bankswitch8kFE, fmt.Sprintf("wrong number of bytes (%d)", len(data)))
	}

	cart := &activision{
		bankSize: 4096,
		banks:    mapper.SplitBanks(data, 4096),
	}

	return cart, nil
}

func (cart *activision) String() string {
	return fmt.Sprintf("%s Bank: %d", cart.Description(), cart.bank)
}

// Type implements the mapper.CartMapper interface.
func (cart *activision) Type() mapper.Type {
	return Bankswitch8kFE
}

// Description implements the mapper.CartMapper interface.
func (cart *activision) Description() string {
	return Bankswitch8kFE.Description()
}

// Reset implements the mapper.CartMapper interface.
func (cart *activision) Reset() {
	cart.bank = 0
	cart.pending = false
}

// Read implements the mapper.CartMapper interface.
func (cart *activision) Read(addr uint16) (uint8, error) {
	return cart.Peek(addr)
}

// Write implements the mapper.CartMapper interface.
func (cart *activision) Write(_ uint16, _ uint8) error {
	return nil
}

// Peek implements the mapper.CartMapper interface.
func (cart *activision) Peek(addr uint16) (uint8, error) {
	return cart.banks[cart.bank][addr&0x0fff], nil
}

// Poke implements the mapper.CartMapper interface.
func (cart *activision) Poke(addr uint16, data uint8) error {
	cart.banks[cart.bank][addr&0x0fff] = data
	return nil
}

// Listen implements the mapper.BusSniffer interface.
func (cart *activision) Listen(access bus.Access) {
	if cart.pending {
		if access.Data&0x20 == 0x20 {
			cart.bank = 0
		} else {
			cart.bank = 1
		}
	}
	cart.pending = access.Address&0x1fff == 0x01fe
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *activision) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *activision) GetBank(_ uint16) memorymap.BankDetails {
	return memorymap.BankDetails{Number: cart.bank}
}
