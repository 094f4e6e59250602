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
// 2K:
//
// -These carts are not bankswitched, however the data repeats twice in the
// 4K address space.
//
// 4K:
//
// -These images are not bankswitched.
//
// 8K:
//
// -F8: This is the 'standard' method to implement 8K carts.  There are two
// addresses which select between two unique 4K sections.  They are 1FF8
// and 1FF9.  Any access to either one of these locations switches banks.
// Accessing 1FF8 switches in the first 4K, and accessing 1FF9 switches in
// the last 4K.  Note that you can only access one 4K at a time!
//
// 16K:
//
// -F6: The 'standard' method for implementing 16K of data.  It is identical
// to the F8 method above, except there are 4 4K banks.  You select which
// 4K bank by accessing 1FF6, 1FF7, 1FF8, and 1FF9.
//
// 32K:
//
// -F4: The 'standard' method for implementing 32K.  Only one cart is known
// to use it- Fatal Run.  Like the F6 method, however there are 8 4K
// banks instead of 4.  You use 1FF4 to 1FFB to select the desired bank.
//
// The EF format extends the method to sixteen banks, selected by accessing
// 1FE0 to 1FEF.
//
// Some carts have extra RAM. The way of doing this for Atari format cartridges
// is with the addition of a "superchip".
//
// Atari's 'Super Chip' is nothing more than a 128-byte RAM chip that maps
// itsself in the first 256 bytes of cart memory.  (1000-10FFh) The first 128
// bytes is the write port, while the second 128 bytes is the read port. The
// difference in addresses is because there is no dedicated address line to the
// cart to differentiate between read and write operations.
type atari struct {
	mappingType mapper.Type

	// atari formats apart from 2k and 4k are divided into banks. 2k and 4k
	// ROMs conceptually have one bank
	bankSize int
	banks    [][]uint8

	// the address of the hotspot that selects bank zero. the remaining
	// hotspots follow on sequentially
	hotspot uint16

	// superchip RAM. nil if the cartridge has no superchip
	ram []uint8

	bank int
}

const superchipRAMsize = 128

// hasEmptyArea returns true if the RAM area of a bank contains two
// identical halves. this is evidence that the cartridge expects a superchip,
// the two halves being the write port and the read port.
//
// for example: the Fatal Run (NTSC) ROM uses FF rather than 00 to fill the
// empty space.
func hasEmptyArea(d []uint8) bool {
	if len(d) < superchipRAMsize*2 {
		return false
	}
	for i := 0; i < superchipRAMsize; i++ {
		if d[i] != d[i+superchipRAMsize] {
			return false
		}
	}
	return true
}

func newAtari(mappingType mapper.Type, data []uint8, size int, bankSize int, hotspot uint16) (*atari, error) {
	if len(data) != size {
		return nil, curated.Errorf(InvalidImageError, mappingType, fmt.Sprintf("wrong number of bytes (%d)", len(data)))
	}

	cart := &atari{
		mappingType: mappingType,
		bankSize:    bankSize,
		banks:       mapper.SplitBanks(data, bankSize),
		hotspot:     hotspot,
	}

	// cartridges with more than one bank are candidates for a superchip
	if len(cart.banks) > 1 {
		superchip := true
		for _, b := range cart.banks {
			superchip = superchip && hasEmptyArea(b)
		}
		if superchip {
			cart.ram = make([]uint8, superchipRAMsize)
		}
	}

	return cart, nil
}

func newAtari2k(data []uint8) (mapper.CartMapper, error) {
	return newAtari(Vanilla2k, data, 2048, 2048, 0)
}

func newAtari4k(data []uint8) (mapper.CartMapper, error) {
	return newAtari(Vanilla4k, data, 4096, 4096, 0)
}

func newAtari8k(data []uint8) (mapper.CartMapper, error) {
	return newAtari(Bankswitch8kF8, data, 8192, 4096, 0x0ff8)
}

func newAtari16k(data []uint8) (mapper.CartMapper, error) {
	return newAtari(Bankswitch16kF6, data, 16384, 4096, 0x0ff6)
}

func newAtari32k(data []uint8) (mapper.CartMapper, error) {
	return newAtari(Bankswitch32kF4, data, 32768, 4096, 0x0ff4)
}

func newAtari64k(data []uint8) (mapper.CartMapper, error) {
	return newAtari(Bankswitch64kEF, data, 65536, 4096, 0x0fe0)
}

func (cart *atari) String() string {
	if len(cart.banks) == 1 {
		return cart.Description()
	}
	return fmt.Sprintf("%s Bank: %d", cart.Description(), cart.bank)
}

// Type implements the mapper.CartMapper interface.
func (cart *atari) Type() mapper.Type {
	return cart.mappingType
}

// Description implements the mapper.CartMapper interface.
func (cart *atari) Description() string {
	return cart.mappingType.Description()
}

// Reset implements the mapper.CartMapper interface.
//
// The start bank is the last bank in the cartridge. Most cartridges are setup
// so that it doesn't matter but at least one cartridge will not boot if the
// start bank is anything other than the last bank.
func (cart *atari) Reset() {
	cart.bank = len(cart.banks) - 1
}

// Randomize implements the mapper.Randomizer interface.
func (cart *atari) Randomize(rnd *rand.Rand) {
	for i := range cart.ram {
		cart.ram[i] = uint8(rnd.Intn(0x100))
	}
}

// bankswitch if the address is a hotspot. returns true if the bank was
// switched.
func (cart *atari) bankswitch(addr uint16) bool {
	if len(cart.banks) == 1 {
		return false
	}
	if addr >= cart.hotspot && addr < cart.hotspot+uint16(len(cart.banks)) {
		cart.bank = int(addr - cart.hotspot)
		return true
	}
	return false
}

// Read implements the mapper.CartMapper interface.
func (cart *atari) Read(addr uint16) (uint8, error) {
	cart.bankswitch(addr)
	return cart.Peek(addr)
}

// Write implements the mapper.CartMapper interface.
func (cart *atari) Write(addr uint16, data uint8) error {
	if cart.bankswitch(addr) {
		return nil
	}
	if cart.ram != nil && addr < superchipRAMsize {
		cart.ram[addr] = data
	}
	return nil
}

// Peek implements the mapper.CartMapper interface.
func (cart *atari) Peek(addr uint16) (uint8, error) {
	if cart.ram != nil && addr >= superchipRAMsize && addr < superchipRAMsize*2 {
		return cart.ram[addr-superchipRAMsize], nil
	}
	return cart.banks[cart.bank][int(addr)%cart.bankSize], nil
}

// Poke implements the mapper.CartMapper interface.
func (cart *atari) Poke(addr uint16, data uint8) error {
	if cart.ram != nil && addr < superchipRAMsize*2 {
		cart.ram[addr%superchipRAMsize] = data
		return nil
	}
	cart.banks[cart.bank][int(addr)%cart.bankSize] = data
	return nil
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *atari) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *atari) GetBank(addr uint16) memorymap.BankDetails {
	// because atari bank switching swaps out the entire memory space, every
	// address points to whatever the current bank is. compare to parker bros.
	// cartridges.
	return memorymap.BankDetails{Number: cart.bank, IsRAM: cart.ram != nil && addr < superchipRAMsize*2}
}
