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
	"github.com/jetsetilly/gopher2600core/hardware/memory/bus"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopher2600core/hardware/memory/memorymap"
)

// The Pink Panther prototype (a Wickstead Design cartridge) divides the 4K
// cartridge space into four 1K segments. The arrangement of 1K slices in the
// segments is selected by accessing $30 to $3F in TIA space. The slices are
// mapped into all four segments at once:
//
//	$30, $38: 0,0,1,3
//	$31, $39: 0,1,2,3
//	$32, $3A: 4,5,6,7
//	$33, $3B: 7,4,2,3
//	$34, $3C: 0,0,6,7
//	$35, $3D: 0,1,7,6
//	$36, $3E: 2,3,4,5
//	$37, $3F: 6,0,5,1
//
// The cartridge has 64 bytes of RAM. The read port is at $1000-$103F and the
// write port at $1040-$107F.
//
// In the uppermost segment, the byte at $3FC reads as zero.
type pinkPanther struct {
	bankSize int
	banks    [][]uint8

	ram [64]uint8

	arrangement int
}

var pinkPantherArrangements = [8][4]int{
	{0, 0, 1, 3},
	{0, 1, 2, 3},
	{4, 5, 6, 7},
	{7, 4, 2, 3},
	{0, 0, 6, 7},
	{0, 1, 7, 6},
	{2, 3, 4, 5},
	{6, 0, 5, 1},
}

func newPinkPanther(data []uint8) (mapper.CartMapper, error) {
	if len(data) != 8192 {
		return nil, curated.Errorf(InvalidImageError, Bankswitch8kPP, fmt.Sprintf("wrong number of bytes (%d)", len(data)))
	}

	cart := &pinkPanther{
		bankSize: 1024,
		banks:    mapper.SplitBanks(data, 1024),
	}

	return cart, nil
}

func (cart *pinkPanther) String() string {
	s := pinkPantherArrangements[cart.arrangement]
	return fmt.Sprintf("%s Banks: %d %d %d %d", cart.Description(), s[0], s[1], s[2], s[3])
}

// Type implements the mapper.CartMapper interface.
func (cart *pinkPanther) Type() mapper.Type {
	return Bankswitch8kPP
}

// Description implements the mapper.CartMapper interface.
func (cart *pinkPanther) Description() string {
	return Bankswitch8kPP.Description()
}

// Reset implements the mapper.CartMapper interface.
func (cart *pinkPanther) Reset() {
	cart.arrangement = 0
}

// Randomize implements the mapper.Randomizer interface.
func (cart *pinkPanther) Randomize(rnd *rand.Rand) {
	for i := range cart.ram {
		cart.ram[i] = uint8(rnd.Intn(0x100))
	}
}

// Read implements the mapper.CartMapper interface.
func (cart *pinkPanther) Read(addr uint16) (uint8, error) {
	return cart.Peek(addr)
}

// Write implements the mapper.CartMapper interface.
func (cart *pinkPanther) Write(addr uint16, data uint8) error {
	if addr >= 0x0040 && addr <= 0x007f {
		cart.ram[addr&0x3f] = data
	}
	return nil
}

// Peek implements the mapper.CartMapper interface.
func (cart *pinkPanther) Peek(addr uint16) (uint8, error) {
	if addr <= 0x007f {
		return cart.ram[addr&0x3f], nil
	}
	seg := int(addr>>10) & 0x03
	if seg == 3 && addr&0x03ff == 0x03fc {
		return 0, nil
	}
	return cart.banks[pinkPantherArrangements[cart.arrangement][seg]][addr&0x03ff], nil
}

// Poke implements the mapper.CartMapper interface.
func (cart *pinkPanther) Poke(addr uint16, data uint8) error {
	if addr <= 0x007f {
		cart.ram[addr&0x3f] = data
		return nil
	}
	seg := int(addr>>10) & 0x03
	cart.banks[pinkPantherArrangements[cart.arrangement][seg]][addr&0x03ff] = data
	return nil
}

// Listen implements the mapper.BusSniffer interface.
func (cart *pinkPanther) Listen(access bus.Access) {
	if access.Address&0x1ff0 == 0x0030 {
		cart.arrangement = int(access.Address & 0x07)
	}
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *pinkPanther) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *pinkPanther) GetBank(addr uint16) memorymap.BankDetails {
	if addr <= 0x007f {
		return memorymap.BankDetails{IsRAM: true}
	}
	seg := int(addr>>10) & 0x03
	return memorymap.BankDetails{Number: pinkPantherArrangements[cart.arrangement][seg], Segment: seg}
}
