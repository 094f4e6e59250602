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
// -3F: Tigervision was the only user of this intresting method.  This works
// in a similar fashion to the above method; however, there are only 4 2K
// segments instead of 4 1K ones, and the ROM image is broken up into 4 2K
// slices.  As before, the last 2K always points to the last 2K of the image.
// You select the desired bank by performing an STA $3F instruction.  The
// accumulator holds the desired bank number (0-3; only the lower two bits are
// used).  Any STA in the $00-$3F range will change banks.  This appears to
// interfere with the TIA addresses, which it does; however you just use $40 to
// $7F instead! :-)  $3F does not have a corresponding TIA register, so writing
// here has no effect other than switching banks.  Very clever; especially
// since you can implement this with only one chip! (a 74LS173).
//
// cartridges:
//   - Miner2049
//   - River Patrol
type tigervision struct {
	// tigervision cartridges traditionally have 4 of banks of 2048 bytes. but
	// it can theoretically support anything up to 256 banks
	bankSize int
	banks    [][]uint8

	// tigervision cartridges divide memory into two 2k segments
	//  o the last segment always points to the last bank
	//  o the first segment can point to any of the other banks
	segment [2]int
}

// should work with any size cartridge that is a multiple of 2048
func newTigervision(data []uint8) (mapper.CartMapper, error) {
	const bankSize = 2048

	if len(data) == 0 || len(data)%bankSize != 0 {
		return nil, curated.Errorf(InvalidImageError, Bankswitch8k3F, fmt.Sprintf("wrong number of bytes (%d)", len(data)))
	}
	if len(data)/bankSize > 256 {
		return nil, curated.Errorf(InvalidImageError, Bankswitch8k3F, fmt.Sprintf("too many banks (%d)", len(data)/bankSize))
	}

	cart := &tigervision{
		bankSize: bankSize,
		banks:    mapper.SplitBanks(data, bankSize),
	}

	return cart, nil
}

func (cart *tigervision) String() string {
	return fmt.Sprintf("%s Banks: %d %d", cart.Description(), cart.segment[0], cart.segment[1])
}

// Type implements the mapper.CartMapper interface.
func (cart *tigervision) Type() mapper.Type {
	return Bankswitch8k3F
}

// Description implements the mapper.CartMapper interface.
func (cart *tigervision) Description() string {
	return Bankswitch8k3F.Description()
}

// Reset implements the mapper.CartMapper interface.
func (cart *tigervision) Reset() {
	cart.segment[0] = 0
	cart.segment[1] = len(cart.banks) - 1
}

// Read implements the mapper.CartMapper interface.
func (cart *tigervision) Read(addr uint16) (uint8, error) {
	return cart.Peek(addr)
}

// Write implements the mapper.CartMapper interface.
func (cart *tigervision) Write(_ uint16, _ uint8) error {
	return nil
}

// Peek implements the mapper.CartMapper interface.
func (cart *tigervision) Peek(addr uint16) (uint8, error) {
	return cart.banks[cart.segment[(addr>>11)&0x01]][addr&0x07ff], nil
}

// Poke implements the mapper.CartMapper interface.
func (cart *tigervision) Poke(addr uint16, data uint8) error {
	cart.banks[cart.segment[(addr>>11)&0x01]][addr&0x07ff] = data
	return nil
}

// Listen implements the mapper.BusSniffer interface.
//
// Although address 3F is used primarily, in actual fact writing anywhere in
// TIA space with A6 and A7 low is okay. The bank is taken from the value
// being written.
func (cart *tigervision) Listen(access bus.Access) {
	if access.Write && access.Address&0x10c0 == 0x0000 {
		cart.segment[0] = int(access.Data) % len(cart.banks)
	}
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *tigervision) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *tigervision) GetBank(addr uint16) memorymap.BankDetails {
	seg := int(addr>>11) & 0x01
	return memorymap.BankDetails{Number: cart.segment[seg], Segment: seg}
}
