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

// 3E extends the tigervision scheme with up to 32K of RAM. Writing to $3F
// selects a ROM bank into the lower 2K segment, as it does with the
// tigervision scheme. Writing to $3E selects a 1K RAM bank into the lower
// segment instead. RAM is read through $1000-$13FF and written through
// $1400-$17FF.
//
// cartridges:
//   - Sokoboo
//   - Boulder Dash
type m3e struct {
	bankSize int
	banks    [][]uint8

	ram [][]uint8

	// the upper segment always points to the last ROM bank
	segment [2]int

	// the lower segment is pointing to a RAM bank
	ramMapped bool
}

const (
	m3eRAMbankSize = 1024
	m3eRAMbanks    = 32
)

func new3e(data []uint8) (mapper.CartMapper, error) {
	const bankSize = 2048

	if len(data) == 0 || len(data)%bankSize != 0 {
		return nil, curated.Errorf(InvalidImageError, Bankswitch3E, fmt.Sprintf("wrong number of bytes (%d)", len(data)))
	}
	if len(data)/bankSize > 256 {
		return nil, curated.Errorf(InvalidImageError, Bankswitch3E, fmt.Sprintf("too many banks (%d)", len(data)/bankSize))
	}

	cart := &m3e{
		bankSize: bankSize,
		banks:    mapper.SplitBanks(data, bankSize),
		ram:      make([][]uint8, m3eRAMbanks),
	}

	for i := range cart.ram {
		cart.ram[i] = make([]uint8, m3eRAMbankSize)
	}

	return cart, nil
}

func (cart *m3e) String() string {
	if cart.ramMapped {
		return fmt.Sprintf("%s Banks: %dR %d", cart.Description(), cart.segment[0], cart.segment[1])
	}
	return fmt.Sprintf("%s Banks: %d %d", cart.Description(), cart.segment[0], cart.segment[1])
}

// Type implements the mapper.CartMapper interface.
func (cart *m3e) Type() mapper.Type {
	return Bankswitch3E
}

// Description implements the mapper.CartMapper interface.
func (cart *m3e) Description() string {
	return Bankswitch3E.Description()
}

// Reset implements the mapper.CartMapper interface.
func (cart *m3e) Reset() {
	cart.segment[0] = 0
	cart.segment[1] = len(cart.banks) - 1
	cart.ramMapped = false
}

// Randomize implements the mapper.Randomizer interface.
func (cart *m3e) Randomize(rnd *rand.Rand) {
	for b := range cart.ram {
		for i := range cart.ram[b] {
			cart.ram[b][i] = uint8(rnd.Intn(0x100))
		}
	}
}

// Read implements the mapper.CartMapper interface.
func (cart *m3e) Read(addr uint16) (uint8, error) {
	return cart.Peek(addr)
}

// Write implements the mapper.CartMapper interface.
func (cart *m3e) Write(addr uint16, data uint8) error {
	if cart.ramMapped && addr >= 0x0400 && addr <= 0x07ff {
		cart.ram[cart.segment[0]][addr&0x03ff] = data
	}
	return nil
}

// Peek implements the mapper.CartMapper interface.
func (cart *m3e) Peek(addr uint16) (uint8, error) {
	if addr <= 0x07ff {
		if cart.ramMapped {
			return cart.ram[cart.segment[0]][addr&0x03ff], nil
		}
		return cart.banks[cart.segment[0]][addr&0x07ff], nil
	}
	return cart.banks[cart.segment[1]][addr&0x07ff], nil
}

// Poke implements the mapper.CartMapper interface.
func (cart *m3e) Poke(addr uint16, data uint8) error {
	if addr <= 0x07ff {
		if cart.ramMapped {
			cart.ram[cart.segment[0]][addr&0x03ff] = data
			return nil
		}
		cart.banks[cart.segment[0]][addr&0x07ff] = data
		return nil
	}
	cart.banks[cart.segment[1]][addr&0x07ff] = data
	return nil
}

// Listen implements the mapper.BusSniffer interface.
func (cart *m3e) Listen(access bus.Access) {
	if !access.Write || access.Address&0x1000 == 0x1000 {
		return
	}

	switch access.Address & 0x00ff {
	case 0x3f:
		cart.segment[0] = int(access.Data) % len(cart.banks)
		cart.ramMapped = false
	case 0x3e:
		cart.segment[0] = int(access.Data) % len(cart.ram)
		cart.ramMapped = true
	}
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *m3e) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *m3e) GetBank(addr uint16) memorymap.BankDetails {
	if addr <= 0x07ff {
		return memorymap.BankDetails{Number: cart.segment[0], IsRAM: cart.ramMapped, Segment: 0}
	}
	return memorymap.BankDetails{Number: cart.segment[1], Segment: 1}
}
