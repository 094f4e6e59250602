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

package harmony

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/harmony/thumbulator"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopher2600core/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2600core/logger"
)

// the layout of a DPC+ image is:
//
//	3K ARM driver
//	N x 4K banks (the first bank can contain custom ARM code)
//	4K display data
//	1K frequency table
//
// some images omit the ARM driver. the RAM of the ARM is initialised with a
// copy of the driver, the display data and the frequency table.
const (
	dpcPlusDriverSize  = 3072
	dpcPlusBankSize    = 4096
	dpcPlusDisplaySize = 4096
	dpcPlusFreqSize    = 1024

	// offsets into ARM RAM
	dpcPlusDisplayRAM = 0x0c00
	dpcPlusFreqRAM    = 0x1c00
	dpcPlusRAMSize    = 0x2000

	// thumb entry point of the custom ARM code. the first eight bytes of
	// the custom code are a header
	dpcPlusCustomEntry = 0x00000c08 | 0x01
)

const ldaImmediate = 0xa9

// the fractional fetcher count is reset when the low pointer is written in
// some versions of the driver. the md5 sum is of the 3K driver.
var dpcPlusDrivers = map[string]bool{
	"17884ec14f9b1d06fe8d617a1fbdcf47": false,
	"5f80b5a5adbe483addc3f6e6f1b472f8": true,
	"8dd73b44fd11c488326ce507cbeb19d1": true,
	"b328dbdf787400c0f0e2b88b425872a5": false,
}

// dpcPlus implements the mapper.CartMapper interface.
//
// https://atariage.com/forums/topic/163495-harmony-dpc-programming
type dpcPlus struct {
	// the complete image including the driver. this is the ROM of the ARM
	image []uint8

	banks [][]uint8
	bank  int

	ram     []uint8
	display []uint8
	freq    []uint8

	registers dpcPlusRegisters

	// was the last byte read the opcode for "lda <immediate>"
	lda bool

	// parameters for the next function call
	parameters []uint8

	resetFracCountOnLow bool

	arm   *thumbulator.ARM
	music musicClock
}

// NewDPCplus is the preferred method of initialisation for the DPC+ type.
func NewDPCplus(data []uint8) (mapper.CartMapper, error) {
	n := len(data) - dpcPlusDisplaySize - dpcPlusFreqSize
	driverless := false

	if n <= dpcPlusDriverSize || (n-dpcPlusDriverSize)%dpcPlusBankSize != 0 {
		if n <= 0 || n%dpcPlusBankSize != 0 {
			return nil, curated.Errorf(mapper.InvalidImageError, mapper.BankswitchDPCplus, fmt.Sprintf("wrong number of bytes (%d)", len(data)))
		}
		driverless = true
	}

	cart := &dpcPlus{
		parameters: make([]uint8, 0, 8),
	}

	// the image always has space for the driver
	if driverless {
		cart.image = make([]uint8, dpcPlusDriverSize+len(data))
		copy(cart.image[dpcPlusDriverSize:], data)
		logger.Log(logger.Allow, "DPC+", "image has no ARM driver")
	} else {
		cart.image = make([]uint8, len(data))
		copy(cart.image, data)

		sum := fmt.Sprintf("%x", md5.Sum(cart.image[:dpcPlusDriverSize]))
		if v, ok := dpcPlusDrivers[sum]; ok {
			cart.resetFracCountOnLow = v
		} else {
			logger.Logf(logger.Allow, "DPC+", "unrecognised driver (%s)", sum)
		}
	}

	numBanks := (len(cart.image) - dpcPlusDriverSize - dpcPlusDisplaySize - dpcPlusFreqSize) / dpcPlusBankSize
	cart.banks = make([][]uint8, numBanks)
	for k := range cart.banks {
		offset := dpcPlusDriverSize + k*dpcPlusBankSize
		cart.banks[k] = cart.image[offset : offset+dpcPlusBankSize]
	}

	cart.ram = make([]uint8, dpcPlusRAMSize)
	cart.display = cart.ram[dpcPlusDisplayRAM:dpcPlusFreqRAM]
	cart.freq = cart.ram[dpcPlusFreqRAM:]

	cart.arm = thumbulator.NewARM(cart.image, cart.ram, nil)

	return cart, nil
}

func (cart *dpcPlus) String() string {
	return fmt.Sprintf("%s Bank: %d", cart.Description(), cart.bank)
}

// Type implements the mapper.CartMapper interface.
func (cart *dpcPlus) Type() mapper.Type {
	return mapper.BankswitchDPCplus
}

// Description implements the mapper.CartMapper interface.
func (cart *dpcPlus) Description() string {
	return mapper.BankswitchDPCplus.Description()
}

// Registers returns a summary of the register state.
func (cart *dpcPlus) Registers() string {
	return cart.registers.String()
}

// SetCPU implements the mapper.CPUAware interface.
func (cart *dpcPlus) SetCPU(cpu mapper.CPU) {
	cart.music.setCPU(cpu)
}

// Reset implements the mapper.CartMapper interface.
func (cart *dpcPlus) Reset() {
	cart.bank = len(cart.banks) - 1
	cart.registers.reset()
	cart.lda = false
	cart.parameters = cart.parameters[:0]
	cart.music.reset()

	// ARM RAM is reinitialised from the image
	dataOffset := len(cart.image) - dpcPlusDisplaySize - dpcPlusFreqSize
	copy(cart.ram, cart.image[:dpcPlusDriverSize])
	copy(cart.display, cart.image[dataOffset:dataOffset+dpcPlusDisplaySize])
	copy(cart.freq, cart.image[dataOffset+dpcPlusDisplaySize:])
}

// Randomize implements the mapper.Randomizer interface.
func (cart *dpcPlus) Randomize(rnd *rand.Rand) {
	cart.registers.randomize(rnd)
}

// bankswitch on hotspot access.
func (cart *dpcPlus) bankswitch(addr uint16) bool {
	if addr >= 0x0ff6 && addr <= 0x0ffb {
		cart.bank = int(addr-0x0ff6) % len(cart.banks)
		return true
	}
	return false
}

// Read implements the mapper.CartMapper interface.
func (cart *dpcPlus) Read(addr uint16) (uint8, error) {
	if addr <= 0x0027 {
		return cart.readRegister(addr), nil
	}

	// a hotspot read returns the byte at the same address in the new bank
	if cart.bankswitch(addr) {
		return cart.banks[cart.bank][addr], nil
	}

	data := cart.banks[cart.bank][addr]

	// if FastFetch mode is on and the previous byte was the opcode for LDA
	// <immediate> then the operand is the address of a register. only
	// operands below $28 are intercepted
	if cart.registers.FastFetch && cart.lda && data < 0x28 {
		cart.lda = false
		return cart.readRegister(uint16(data)), nil
	}

	cart.lda = cart.registers.FastFetch && data == ldaImmediate

	return data, nil
}

func (cart *dpcPlus) readRegister(addr uint16) uint8 {
	var data uint8

	f := addr & 0x0007

	switch {
	case addr == 0x00:
		cart.registers.RNG.next()
		data = uint8(cart.registers.RNG.Value)
	case addr == 0x01:
		cart.registers.RNG.prev()
		data = uint8(cart.registers.RNG.Value)
	case addr == 0x02:
		data = uint8(cart.registers.RNG.Value >> 8)
	case addr == 0x03:
		data = uint8(cart.registers.RNG.Value >> 16)
	case addr == 0x04:
		data = uint8(cart.registers.RNG.Value >> 24)

	case addr == 0x05:
		// the sum of the three music waveforms. waveforms are 32 byte
		// tables in the display data
		cart.music.clock(cart.registers.MusicFetcher[:])
		for _, m := range cart.registers.MusicFetcher {
			data += cart.display[((m.Waveform<<5)+(m.Count>>27))&0x0fff]
		}

	case addr >= 0x08 && addr <= 0x0f:
		data = cart.display[cart.registers.Fetcher[f].address()]
		cart.registers.Fetcher[f].inc()

	case addr >= 0x10 && addr <= 0x17:
		// windowed data fetcher
		if cart.registers.Fetcher[f].isWindow() {
			data = cart.display[cart.registers.Fetcher[f].address()]
		}
		cart.registers.Fetcher[f].inc()

	case addr >= 0x18 && addr <= 0x1f:
		data = cart.display[cart.registers.FracFetcher[f].address()]
		cart.registers.FracFetcher[f].inc()

	case addr >= 0x20 && addr <= 0x23:
		// window flag
		if cart.registers.Fetcher[f].isWindow() {
			data = 0xff
		}
	}

	return data
}

// Write implements the mapper.CartMapper interface.
func (cart *dpcPlus) Write(addr uint16, data uint8) error {
	if cart.bankswitch(addr) {
		return nil
	}

	if addr < 0x0028 || addr > 0x007f {
		return nil
	}

	f := addr & 0x0007

	switch {
	case addr >= 0x28 && addr <= 0x2f:
		cart.registers.FracFetcher[f].Low = data
		if cart.resetFracCountOnLow {
			cart.registers.FracFetcher[f].Count = 0
		}
	case addr >= 0x30 && addr <= 0x37:
		cart.registers.FracFetcher[f].Hi = data
	case addr >= 0x38 && addr <= 0x3f:
		cart.registers.FracFetcher[f].Increment = data
		cart.registers.FracFetcher[f].Count = 0

	case addr >= 0x40 && addr <= 0x47:
		cart.registers.Fetcher[f].Top = data
	case addr >= 0x48 && addr <= 0x4f:
		cart.registers.Fetcher[f].Bottom = data
	case addr >= 0x50 && addr <= 0x57:
		cart.registers.Fetcher[f].Low = data

	case addr == 0x58:
		cart.registers.FastFetch = data == 0
		if !cart.registers.FastFetch {
			cart.lda = false
		}
	case addr == 0x59:
		if len(cart.parameters) < cap(cart.parameters) {
			cart.parameters = append(cart.parameters, data)
		}
	case addr == 0x5a:
		return cart.callFunction(data)

	case addr >= 0x5d && addr <= 0x5f:
		cart.music.clock(cart.registers.MusicFetcher[:])
		cart.registers.MusicFetcher[addr-0x5d].Waveform = uint32(data & 0x7f)

	case addr >= 0x60 && addr <= 0x67:
		// push. the pointer is decremented before the write
		cart.registers.Fetcher[f].dec()
		cart.display[cart.registers.Fetcher[f].address()] = data

	case addr >= 0x68 && addr <= 0x6f:
		cart.registers.Fetcher[f].Hi = data

	case addr == 0x70:
		cart.registers.RNG.Value = dpcPlusRNGseed
	case addr >= 0x71 && addr <= 0x74:
		shift := (addr - 0x71) * 8
		cart.registers.RNG.Value &^= 0xff << shift
		cart.registers.RNG.Value |= uint32(data) << shift

	case addr >= 0x75 && addr <= 0x77:
		// frequencies are four byte little-endian entries in the
		// frequency table
		cart.music.clock(cart.registers.MusicFetcher[:])
		x := int(data) << 2
		cart.registers.MusicFetcher[addr-0x75].Freq = uint32(cart.freq[x]) |
			uint32(cart.freq[x+1])<<8 | uint32(cart.freq[x+2])<<16 | uint32(cart.freq[x+3])<<24

	case addr >= 0x78 && addr <= 0x7f:
		// queue. the pointer is incremented after the write
		cart.display[cart.registers.Fetcher[f].address()] = data
		cart.registers.Fetcher[f].inc()
	}

	return nil
}

// functions called by writing to CALLFN. the parameters are consumed by the
// function.
func (cart *dpcPlus) callFunction(fn uint8) error {
	defer func() {
		cart.parameters = cart.parameters[:0]
	}()

	switch fn {
	case 0:
		// reset parameters

	case 1:
		// copy ROM to fetcher. the ROM address is relative to the start of
		// the 6507 program
		if len(cart.parameters) < 4 {
			return curated.Errorf(mapper.RuntimeError, mapper.BankswitchDPCplus, "too few parameters for copy from ROM")
		}
		src := dpcPlusDriverSize + (int(cart.parameters[1])<<8 | int(cart.parameters[0]))
		fetcher := cart.registers.Fetcher[cart.parameters[2]&0x07]
		dest := int(fetcher.address())
		for i := 0; i < int(cart.parameters[3]); i++ {
			if src+i >= len(cart.image) {
				return curated.Errorf(mapper.RuntimeError, mapper.BankswitchDPCplus, "copy from ROM is out of range")
			}
			cart.display[(dest+i)&0x0fff] = cart.image[src+i]
		}

	case 2:
		// copy value to fetcher
		if len(cart.parameters) < 4 {
			return curated.Errorf(mapper.RuntimeError, mapper.BankswitchDPCplus, "too few parameters for copy value")
		}
		fetcher := cart.registers.Fetcher[cart.parameters[2]&0x07]
		dest := int(fetcher.address())
		for i := 0; i < int(cart.parameters[3]); i++ {
			cart.display[(dest+i)&0x0fff] = cart.parameters[0]
		}

	case 254, 255:
		// run the custom ARM program
		if err := cart.arm.Run(dpcPlusCustomEntry); err != nil {
			return curated.Errorf(mapper.CoProcError, mapper.BankswitchDPCplus, err)
		}
	}

	return nil
}

// Peek implements the mapper.CartMapper interface.
func (cart *dpcPlus) Peek(addr uint16) (uint8, error) {
	return cart.banks[cart.bank][addr&0x0fff], nil
}

// Poke implements the mapper.CartMapper interface.
func (cart *dpcPlus) Poke(addr uint16, data uint8) error {
	cart.banks[cart.bank][addr&0x0fff] = data
	return nil
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *dpcPlus) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *dpcPlus) GetBank(_ uint16) memorymap.BankDetails {
	return memorymap.BankDetails{Number: cart.bank}
}
