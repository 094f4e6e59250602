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

package supercharger

import (
	"bytes"
	"fmt"
	"math/rand"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/memory/bus"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopher2600core/hardware/memory/memorymap"
)

// supercharger has 6k of RAM in total.
const (
	numRAMBanks = 3
	bankSize    = 2048
)

// tape defines the operations required by the $fff9 tape loader. With this
// interface, the Supercharger implementation supports both fast-loading
// from a binary file, and "slow" loading from a sound file.
type tape interface {
	load() (uint8, error)
	step()
}

// Supercharger represents a supercharger cartridge.
type Supercharger struct {
	bios []uint8

	// the BIOS is the stub BIOS and not the real BIOS
	stubBIOS bool

	ram [numRAMBanks][]uint8

	registers Registers

	tape tape
}

// NewSupercharger is the preferred method of initialisation for the
// Supercharger type. The data can be fastload data or a WAV or MP3 recording
// of a tape.
func NewSupercharger(data []uint8) (mapper.CartMapper, error) {
	cart := &Supercharger{
		bios:     newStubBIOS(),
		stubBIOS: true,
	}

	for i := range cart.ram {
		cart.ram[i] = make([]uint8, bankSize)
	}

	var err error

	if bytes.HasPrefix(data, []uint8("RIFF")) || bytes.HasPrefix(data, []uint8("ID3")) {
		cart.tape, err = newSoundLoad(cart, data)
	} else {
		cart.tape, err = newFastLoad(cart, data)
	}
	if err != nil {
		return nil, curated.Errorf(mapper.InvalidImageError, mapper.BankswitchAR, err)
	}

	return cart, nil
}

func (cart *Supercharger) String() string {
	return fmt.Sprintf("%s %s", cart.Description(), cart.registers.BankString())
}

// Type implements the mapper.CartMapper interface.
func (cart *Supercharger) Type() mapper.Type {
	return mapper.BankswitchAR
}

// Description implements the mapper.CartMapper interface.
func (cart *Supercharger) Description() string {
	return mapper.BankswitchAR.Description()
}

// SetBIOS replaces the stub BIOS with the real BIOS. The real BIOS is
// required for loading from sound files.
func (cart *Supercharger) SetBIOS(bios []uint8) error {
	if len(bios) != biosSize {
		return curated.Errorf(mapper.InvalidImageError, mapper.BankswitchAR, fmt.Sprintf("BIOS is %d bytes and not %d", len(bios), biosSize))
	}
	cart.bios = make([]uint8, biosSize)
	copy(cart.bios, bios)
	cart.stubBIOS = false
	return nil
}

// Registers returns a copy of the supercharger registers.
func (cart *Supercharger) Registers() Registers {
	return cart.registers
}

// Reset implements the mapper.CartMapper interface.
func (cart *Supercharger) Reset() {
	cart.registers.reset()
}

// Randomize implements the mapper.Randomizer interface.
func (cart *Supercharger) Randomize(rnd *rand.Rand) {
	for b := range cart.ram {
		for i := range cart.ram[b] {
			cart.ram[b][i] = uint8(rnd.Intn(0x100))
		}
	}
}

// segment returns the bank mapped to the address. zero refers to the BIOS
// and one to three refer to the RAM banks.
func (cart *Supercharger) segment(addr uint16) int {
	if addr&0x0800 == 0x0800 {
		return bankingModes[cart.registers.BankingMode][1]
	}
	return bankingModes[cart.registers.BankingMode][0]
}

// Read implements the mapper.CartMapper interface.
func (cart *Supercharger) Read(addr uint16) (uint8, error) {
	addr &= memorymap.CartridgeBits
	bank := cart.segment(addr)

	// the value returned when the control register is read is the value
	// at the address before the bank switch
	if addr == 0x0ff8 {
		v, _ := cart.Peek(addr)
		cart.registers.setConfigByte(cart.registers.Value)
		cart.registers.Delay = 0
		return v, nil
	}

	// tape is loaded whenever the address is touched, although it is not
	// allowed if RAMwrite is false
	if addr == 0x0ff9 {
		if !cart.registers.RAMwrite {
			return 0, nil
		}
		return cart.tape.load()
	}

	// note address to be used as the next value in the control register
	if addr <= 0x00ff && cart.registers.Delay == 0 {
		cart.registers.Value = uint8(addr)
		cart.registers.Delay = writeDelay
	}

	if bank == 0 {
		if !cart.registers.ROMpower {
			return 0, curated.Errorf(mapper.RuntimeError, mapper.BankswitchAR, "ROM is powered off")
		}
		return cart.bios[addr&0x07ff], nil
	}

	if cart.registers.Delay == 1 && cart.registers.RAMwrite {
		cart.ram[bank-1][addr&0x07ff] = cart.registers.Value
		cart.registers.LastWriteAddress = addr
		cart.registers.LastWriteValue = cart.registers.Value
		cart.registers.Delay = 0
	}

	return cart.ram[bank-1][addr&0x07ff], nil
}

// Write implements the mapper.CartMapper interface. The supercharger does not
// respond to the write signal. RAM is written through reads.
func (cart *Supercharger) Write(_ uint16, _ uint8) error {
	return nil
}

// Peek implements the mapper.CartMapper interface.
func (cart *Supercharger) Peek(addr uint16) (uint8, error) {
	bank := cart.segment(addr)
	if bank == 0 {
		return cart.bios[addr&0x07ff], nil
	}
	return cart.ram[bank-1][addr&0x07ff], nil
}

// Poke implements the mapper.CartMapper interface.
func (cart *Supercharger) Poke(addr uint16, data uint8) error {
	bank := cart.segment(addr)
	if bank == 0 {
		cart.bios[addr&0x07ff] = data
		return nil
	}
	cart.ram[bank-1][addr&0x07ff] = data
	return nil
}

// NumBanks implements the mapper.CartMapper interface. The BIOS counts as a
// bank.
func (cart *Supercharger) NumBanks() int {
	return numRAMBanks + 1
}

// GetBank implements the mapper.CartMapper interface.
func (cart *Supercharger) GetBank(addr uint16) memorymap.BankDetails {
	seg := 0
	if addr&0x0800 == 0x0800 {
		seg = 1
	}
	bank := cart.segment(addr)
	return memorymap.BankDetails{Number: bank, IsRAM: bank != 0 && cart.registers.RAMwrite, Segment: seg}
}

// Listen implements the mapper.BusSniffer interface.
func (cart *Supercharger) Listen(access bus.Access) {
	cart.registers.transitionCount(access.Address)
}

// Step implements the mapper.Stepper interface.
func (cart *Supercharger) Step() error {
	cart.tape.step()
	return nil
}
