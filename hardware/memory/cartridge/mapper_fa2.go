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
	"os"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopher2600core/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2600core/logger"
)

// FA2 is an extension of the CBS scheme implemented by the Harmony
// cartridge. There are six or seven 4K banks, selected by accessing $1FF5 to
// $1FFB, and 256 bytes of RAM (write port $1000-$10FF and read port
// $1100-$11FF).
//
// Images of 29K include a 1K Harmony driver before the banks. These images
// also support saving and loading the RAM to non-volatile storage. The
// operation is triggered by accessing $1FF4 with the value 1 (load) or 2
// (save) in the last byte of RAM. The last byte of RAM is cleared when the
// operation has completed.
//
// cartridges:
//   - Star Castle
type fa2 struct {
	bankSize int
	banks    [][]uint8

	ram [256]uint8

	bank int

	// nvram is supported by the cartridge image
	nvram bool

	// the file used as non-volatile storage. if empty then the nvram
	// operations have no effect
	nvramPath string
}

const (
	fa2nvramLoad = 0x01
	fa2nvramSave = 0x02
)

func newFA2(data []uint8) (mapper.CartMapper, error) {
	cart := &fa2{
		bankSize: 4096,
	}

	switch len(data) {
	case 29696:
		cart.nvram = true
		cart.banks = mapper.SplitBanks(data[1024:], cart.bankSize)
	case 28672:
		cart.banks = mapper.SplitBanks(data, cart.bankSize)
	case 24576:
		cart.banks = mapper.SplitBanks(data, cart.bankSize)
	default:
		return nil, curated.Errorf(InvalidImageError, BankswitchFA2, fmt.Sprintf("wrong number of bytes (%d)", len(data)))
	}

	return cart, nil
}

func (cart *fa2) String() string {
	return fmt.Sprintf("%s Bank: %d", cart.Description(), cart.bank)
}

// Type implements the mapper.CartMapper interface.
func (cart *fa2) Type() mapper.Type {
	return BankswitchFA2
}

// Description implements the mapper.CartMapper interface.
func (cart *fa2) Description() string {
	return BankswitchFA2.Description()
}

// SetNVRAMPath sets the file used for the non-volatile RAM operations.
func (cart *fa2) SetNVRAMPath(path string) {
	cart.nvramPath = path
}

// Reset implements the mapper.CartMapper interface.
func (cart *fa2) Reset() {
	cart.bank = 0
}

// Randomize implements the mapper.Randomizer interface.
func (cart *fa2) Randomize(rnd *rand.Rand) {
	for i := range cart.ram {
		cart.ram[i] = uint8(rnd.Intn(0x100))
	}
}

func (cart *fa2) bankswitch(addr uint16) bool {
	if addr == 0x0ff4 && cart.nvram {
		switch cart.ram[0xff] {
		case fa2nvramLoad:
			cart.load()
			cart.ram[0xff] = 0x00
		case fa2nvramSave:
			cart.save()
			cart.ram[0xff] = 0x00
		}
		return true
	}

	if addr >= 0x0ff5 && addr <= 0x0ffb {
		b := int(addr - 0x0ff5)
		if b < len(cart.banks) {
			cart.bank = b
		}
		return true
	}

	return false
}

func (cart *fa2) load() {
	if cart.nvramPath == "" {
		return
	}

	d, err := os.ReadFile(cart.nvramPath)
	if err != nil {
		logger.Log(logger.Allow, "FA2", err)
		return
	}

	if len(d) != len(cart.ram) {
		logger.Logf(logger.Allow, "FA2", "%s is not %d bytes in size", cart.nvramPath, len(cart.ram))
		return
	}

	copy(cart.ram[:], d)
}

func (cart *fa2) save() {
	if cart.nvramPath == "" {
		return
	}

	// the flag byte is cleared in the saved data
	d := cart.ram
	d[0xff] = 0x00

	err := os.WriteFile(cart.nvramPath, d[:], 0o600)
	if err != nil {
		logger.Log(logger.Allow, "FA2", err)
	}
}

// Read implements the mapper.CartMapper interface.
func (cart *fa2) Read(addr uint16) (uint8, error) {
	cart.bankswitch(addr)
	return cart.Peek(addr)
}

// Write implements the mapper.CartMapper interface.
func (cart *fa2) Write(addr uint16, data uint8) error {
	if cart.bankswitch(addr) {
		return nil
	}
	if addr <= 0x00ff {
		cart.ram[addr] = data
	}
	return nil
}

// Peek implements the mapper.CartMapper interface.
func (cart *fa2) Peek(addr uint16) (uint8, error) {
	if addr >= 0x0100 && addr <= 0x01ff {
		return cart.ram[addr-0x0100], nil
	}
	return cart.banks[cart.bank][addr&0x0fff], nil
}

// Poke implements the mapper.CartMapper interface.
func (cart *fa2) Poke(addr uint16, data uint8) error {
	if addr <= 0x01ff {
		cart.ram[addr&0xff] = data
		return nil
	}
	cart.banks[cart.bank][addr&0x0fff] = data
	return nil
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *fa2) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *fa2) GetBank(addr uint16) memorymap.BankDetails {
	return memorymap.BankDetails{Number: cart.bank, IsRAM: addr <= 0x01ff}
}
