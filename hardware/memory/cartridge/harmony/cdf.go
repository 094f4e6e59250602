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
	"fmt"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/harmony/thumbulator"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopher2600core/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2600core/logger"
)

// the layout of a CDF image is:
//
//	2K ARM driver
//	2K custom ARM code (which may expand into the following banks)
//	N x 4K banks
//
// the ARM RAM is divided into 2K of driver RAM (which holds the data stream
// registers), 4K of data RAM and 2K of variables.
const (
	cdfDriverSize = 2048
	cdfCustomSize = 2048
	cdfBankSize   = 4096

	cdfDataRAM      = 0x0800
	cdfVariablesRAM = 0x1800
	cdfRAMSize      = 0x2000

	cdfCustomEntry = 0x00000808 | 0x01
)

// data stream registers. the numbered data streams are accessed numerically
const (
	cdfDSCOMM = 32
	cdfDSJMP  = 33
)

const jmpAbsolute = 0x4c

// cdf implements the mapper.CartMapper interface.
type cdf struct {
	version cdfVersion

	image []uint8

	banks [][]uint8
	bank  int

	ram  []uint8
	data []uint8

	music [3]musicStream

	fastFetch  bool
	sampleMode bool

	// was the last byte read the opcode for "lda <immediate>"
	fastLDA bool

	// number of operand bytes of a fast jump still to be read
	fastJMP int

	arm   *thumbulator.ARM
	clock musicClock
}

// NewCDF is the preferred method of initialisation for the CDF type.
func NewCDF(data []uint8) (mapper.CartMapper, error) {
	bankLen := len(data) - cdfDriverSize - cdfCustomSize
	if bankLen <= 0 || bankLen%cdfBankSize != 0 {
		return nil, curated.Errorf(mapper.InvalidImageError, mapper.BankswitchCDF, fmt.Sprintf("wrong number of bytes (%d)", len(data)))
	}

	cart := &cdf{
		version: newCDFversion(data),
		image:   make([]uint8, len(data)),
		ram:     make([]uint8, cdfRAMSize),
	}
	copy(cart.image, data)

	cart.banks = make([][]uint8, bankLen/cdfBankSize)
	for k := range cart.banks {
		offset := cdfDriverSize + cdfCustomSize + k*cdfBankSize
		cart.banks[k] = cart.image[offset : offset+cdfBankSize]
	}

	cart.data = cart.ram[cdfDataRAM:cdfVariablesRAM]
	cart.arm = thumbulator.NewARM(cart.image, cart.ram, cart)

	logger.Logf(logger.Allow, "CDF", "version %s", cart.version.name)

	return cart, nil
}

func (cart *cdf) String() string {
	return fmt.Sprintf("%s [%s] Bank: %d", cart.Description(), cart.version.name, cart.bank)
}

// Type implements the mapper.CartMapper interface.
func (cart *cdf) Type() mapper.Type {
	return mapper.BankswitchCDF
}

// Description implements the mapper.CartMapper interface.
func (cart *cdf) Description() string {
	return mapper.BankswitchCDF.Description()
}

// SetCPU implements the mapper.CPUAware interface.
func (cart *cdf) SetCPU(cpu mapper.CPU) {
	cart.clock.setCPU(cpu)
}

// Reset implements the mapper.CartMapper interface.
func (cart *cdf) Reset() {
	cart.bank = len(cart.banks) - 1
	cart.fastFetch = false
	cart.sampleMode = false
	cart.fastLDA = false
	cart.fastJMP = 0
	cart.clock.reset()

	for i := range cart.music {
		cart.music[i] = musicStream{Waveform: 0x1b}
	}

	// driver RAM is a copy of the driver. the rest of RAM is cleared
	for i := range cart.ram {
		cart.ram[i] = 0
	}
	copy(cart.ram, cart.image[:cdfDriverSize])
}

// bankswitch on hotspot access.
func (cart *cdf) bankswitch(addr uint16) bool {
	if addr >= 0x0ff5 && addr <= 0x0ffb {
		cart.bank = int(addr-0x0ff5) % len(cart.banks)
		return true
	}
	return false
}

// Read implements the mapper.CartMapper interface.
func (cart *cdf) Read(addr uint16) (uint8, error) {
	// a hotspot read returns the byte at the same address in the new bank
	if cart.bankswitch(addr) {
		return cart.banks[cart.bank][addr], nil
	}

	data := cart.banks[cart.bank][addr]

	if cart.fastFetch && cart.fastJMP > 0 {
		// a fast jump can be prepared by a phantom read of a JMP opcode. the
		// byte before the first operand byte must be the opcode for the jump
		// to be genuine
		if cart.fastJMP < 2 || (addr > 0 && cart.banks[cart.bank][addr-1] == jmpAbsolute) {
			cart.fastJMP--

			// the operand byte selects the data stream
			reg := int(cart.banks[cart.bank][addr-1+uint16(cart.fastJMP)]) + cdfDSJMP

			jmp := cart.readRegister(cart.version.fetcherBase, reg)
			data = cart.data[jmp>>cdfFetcherShift]
			cart.writeRegister(cart.version.fetcherBase, reg, jmp+(1<<cdfFetcherShift))

			return data, nil
		}
	}
	cart.fastJMP = 0

	if cart.fastFetch && cart.fastLDA {
		cart.fastLDA = false

		if data <= cdfDSCOMM {
			return cart.streamData(int(data)), nil
		}

		if int(data) == cart.version.amplitudeRegister {
			return cart.amplitude(), nil
		}
	}

	cart.fastLDA = cart.fastFetch && data == ldaImmediate

	// only "jmp absolute" instructions with a zero address operand are
	// treated as fast jumps
	if cart.fastFetch && data == jmpAbsolute && int(addr)+2 < len(cart.banks[cart.bank]) &&
		cart.banks[cart.bank][addr+1]&cart.version.fastJMPmask == 0x00 &&
		cart.banks[cart.bank][addr+2] == 0x00 {
		cart.fastJMP = 2
	}

	return data, nil
}

// the value of the music streams. in sample mode the first stream points to
// a table of 4 bit samples, packed two to a byte.
func (cart *cdf) amplitude() uint8 {
	cart.clock.clock(cart.music[:])

	if cart.sampleMode {
		addr := cart.readRegister(cart.version.musicBase, 0)
		addr += cart.music[0].Count >> 21
		data := cart.readARM(addr)
		if cart.music[0].Count&(1<<20) == 0 {
			data >>= 4
		}
		return data & 0x0f
	}

	var data uint8
	for i := range cart.music {
		addr := cart.readRegister(cart.version.musicBase, i)
		addr += cart.music[i].Count >> cart.music[i].Waveform
		data += cart.readARM(addr)
	}
	return data
}

// Write implements the mapper.CartMapper interface.
func (cart *cdf) Write(addr uint16, data uint8) error {
	if cart.bankswitch(addr) {
		return nil
	}

	switch addr {
	case 0x0ff0:
		// DSWRITE. writes to the data RAM at the address in the DSCOMM
		// register and advances the address
		v := cart.readRegister(cart.version.fetcherBase, cdfDSCOMM)
		cart.data[v>>cdfFetcherShift] = data
		cart.writeRegister(cart.version.fetcherBase, cdfDSCOMM, v+(1<<cdfFetcherShift))

	case 0x0ff1:
		// DSPTR. the address is written one byte at a time
		v := cart.readRegister(cart.version.fetcherBase, cdfDSCOMM) << 8
		v &= cdfFetcherMask
		v |= uint32(data) << cdfFetcherShift
		cart.writeRegister(cart.version.fetcherBase, cdfDSCOMM, v)

	case 0x0ff2:
		// SETMODE
		cart.fastFetch = data&0x0f != 0x0f
		cart.sampleMode = data&0xf0 != 0xf0
		if !cart.fastFetch {
			cart.fastLDA = false
			cart.fastJMP = 0
		}

	case 0x0ff3:
		// CALLFN
		if data == 0xfe || data == 0xff {
			if err := cart.arm.Run(cdfCustomEntry); err != nil {
				return curated.Errorf(mapper.CoProcError, mapper.BankswitchCDF, err)
			}
		}
	}

	return nil
}

// the stream registers are little-endian values in the driver RAM
func (cart *cdf) readRegister(base uint32, reg int) uint32 {
	idx := base + uint32(reg)*4
	return uint32(cart.ram[idx]) | uint32(cart.ram[idx+1])<<8 |
		uint32(cart.ram[idx+2])<<16 | uint32(cart.ram[idx+3])<<24
}

func (cart *cdf) writeRegister(base uint32, reg int, v uint32) {
	idx := base + uint32(reg)*4
	cart.ram[idx] = uint8(v)
	cart.ram[idx+1] = uint8(v >> 8)
	cart.ram[idx+2] = uint8(v >> 16)
	cart.ram[idx+3] = uint8(v >> 24)
}

// return the next byte of a data stream and advance the stream by its
// increment
func (cart *cdf) streamData(reg int) uint8 {
	addr := cart.readRegister(cart.version.fetcherBase, reg)
	inc := cart.readRegister(cart.version.incrementBase, reg)

	value := cart.data[addr>>cdfFetcherShift]
	cart.writeRegister(cart.version.fetcherBase, reg, addr+(inc<<cdfIncrementShift))

	return value
}

// read a byte from the memory map of the ARM. unmapped addresses read as
// zero
func (cart *cdf) readARM(addr uint32) uint8 {
	if addr >= thumbulator.RAMOrigin {
		if idx := addr - thumbulator.RAMOrigin; idx < uint32(len(cart.ram)) {
			return cart.ram[idx]
		}
		return 0
	}
	if idx := addr - thumbulator.ROMOrigin; idx < uint32(len(cart.image)) {
		return cart.image[idx]
	}
	return 0
}

// Trap implements the thumbulator.TrapHandler interface. The music functions
// of the driver take the stream number in R2 and the value in R3.
func (cart *cdf) Trap(addr uint32, regs *thumbulator.Registers) (bool, error) {
	switch addr {
	case cart.version.setNote, cart.version.resetWave, cart.version.getWavePtr, cart.version.setWaveSize:
	default:
		return false, nil
	}

	m := regs[2]
	if m >= uint32(len(cart.music)) {
		return false, fmt.Errorf("music stream (%d) out of range", m)
	}

	switch addr {
	case cart.version.setNote:
		cart.clock.clock(cart.music[:])
		cart.music[m].Freq = regs[3]
	case cart.version.resetWave:
		cart.music[m].Count = 0
	case cart.version.getWavePtr:
		cart.clock.clock(cart.music[:])
		regs[2] = cart.music[m].Count
	case cart.version.setWaveSize:
		cart.music[m].Waveform = regs[3]
	}

	return true, nil
}

// Peek implements the mapper.CartMapper interface.
func (cart *cdf) Peek(addr uint16) (uint8, error) {
	return cart.banks[cart.bank][addr&0x0fff], nil
}

// Poke implements the mapper.CartMapper interface.
func (cart *cdf) Poke(addr uint16, data uint8) error {
	cart.banks[cart.bank][addr&0x0fff] = data
	return nil
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *cdf) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *cdf) GetBank(_ uint16) memorymap.BankDetails {
	return memorymap.BankDetails{Number: cart.bank}
}
