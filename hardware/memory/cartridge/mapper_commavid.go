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

// Commavid cartridges have 2K of ROM in the upper half of cartridge space and
// 1K of RAM in the lower half. The RAM read port is $1000-$13FF and the write
// port is $1400-$17FF. There is no bank switching.
//
// Some images are 4K in size. In these images the first 1K is the initial
// contents of the RAM and the ROM is in the last 2K.
//
// cartridges:
//   - Magicard
//   - Video Life
type commavid struct {
	rom []uint8
	ram [1024]uint8

	// the initial contents of RAM. restored on reset
	initialRAM []uint8
}

func newCommavid(data []uint8) (mapper.CartMapper, error) {
	cart := &commavid{
		rom: make([]uint8, 2048),
	}

	switch len(data) {
	case 2048:
		copy(cart.rom, data)
	case 4096:
		copy(cart.rom, data[2048:])
		cart.initialRAM = make([]uint8, len(cart.ram))
		copy(cart.initialRAM, data[:1024])
	default:
		return nil, curated.Errorf(InvalidImageError, BankswitchCV, fmt.Sprintf("wrong number of bytes (%d)", len(data)))
	}

	return cart, nil
}

// Type implements the mapper.CartMapper interface.
func (cart *commavid) Type() mapper.Type {
	return BankswitchCV
}

// Description implements the mapper.CartMapper interface.
func (cart *commavid) Description() string {
	return BankswitchCV.Description()
}

// Reset implements the mapper.CartMapper interface.
func (cart *commavid) Reset() {
	if cart.initialRAM != nil {
		copy(cart.ram[:], cart.initialRAM)
	}
}

// Randomize implements the mapper.Randomizer interface.
func (cart *commavid) Randomize(rnd *rand.Rand) {
	if cart.initialRAM != nil {
		return
	}
	for i := range cart.ram {
		cart.ram[i] = uint8(rnd.Intn(0x100))
	}
}

// Read implements the mapper.CartMapper interface.
func (cart *commavid) Read(addr uint16) (uint8, error) {
	return cart.Peek(addr)
}

// Write implements the mapper.CartMapper interface.
func (cart *commavid) Write(addr uint16, data uint8) error {
	if addr >= 0x0400 && addr <= 0x07ff {
		cart.ram[addr&0x03ff] = data
	}
	return nil
}

// Peek implements the mapper.CartMapper interface.
func (cart *commavid) Peek(addr uint16) (uint8, error) {
	if addr <= 0x07ff {
		return cart.ram[addr&0x03ff], nil
	}
	return cart.rom[addr&0x07ff], nil
}

// Poke implements the mapper.CartMapper interface.
func (cart *commavid) Poke(addr uint16, data uint8) error {
	if addr <= 0x07ff {
		cart.ram[addr&0x03ff] = data
		return nil
	}
	cart.rom[addr&0x07ff] = data
	return nil
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *commavid) NumBanks() int {
	return 1
}

// GetBank implements the mapper.CartMapper interface.
func (cart *commavid) GetBank(addr uint16) memorymap.BankDetails {
	return memorymap.BankDetails{IsRAM: addr <= 0x07ff}
}
