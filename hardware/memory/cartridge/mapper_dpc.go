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
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopher2600core/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2600core/hardware/television/specification"
)

// The DPC (Display Processor Chip) was used by Activision for Pitfall II. The
// image is 8K of program data in two 4K banks (selected by accessing $1FF8
// and $1FF9) followed by 2K of display data. Some images have an additional
// 255 bytes at the end which are ignored.
//
// The display data is accessed through eight data fetchers. Reading $1000 to
// $103F returns data from a fetcher or the random number generator, and
// writing to $1040 to $107F sets fetcher registers. The low three bits of the
// address select the fetcher and the next three bits select the function.
//
// Fetchers five to seven can be put into music mode, in which case they are
// clocked by an oscillator rather than by reads. The oscillator runs at
// approximately 20kHz and is derived from the number of CPU cycles that have
// elapsed since the last access.
type dpc struct {
	bankSize int
	banks    [][]uint8
	bank     int

	display []uint8

	fetcher [8]dpcFetcher
	rng     uint8

	cpu mapper.CPU

	// the cpu cycle count at the last music update
	musicCycles uint64

	// fraction of an oscillator clock left over from the previous update
	musicFractional float64
}

type dpcFetcher struct {
	// eleven bit counter
	counter uint16

	top    uint8
	bottom uint8

	// the flag is either 0x00 or 0xff
	flag uint8

	// only used by fetchers five to seven
	musicMode bool
}

const (
	dpcDisplaySize = 2048

	// frequency of the music oscillator
	dpcOscillator = 20000.0
)

// volume of the music output for the combinations of the three music
// fetcher flags
var dpcMusicAmplitudes = [8]uint8{0x00, 0x04, 0x05, 0x09, 0x06, 0x0a, 0x0b, 0x0f}

func newDPC(data []uint8) (mapper.CartMapper, error) {
	if len(data) != 10240 && len(data) != 10495 {
		return nil, curated.Errorf(InvalidImageError, BankswitchDPC, fmt.Sprintf("wrong number of bytes (%d)", len(data)))
	}

	cart := &dpc{
		bankSize: 4096,
		banks:    mapper.SplitBanks(data[:8192], 4096),
		display:  make([]uint8, dpcDisplaySize),
	}
	copy(cart.display, data[8192:8192+dpcDisplaySize])

	return cart, nil
}

func (cart *dpc) String() string {
	return fmt.Sprintf("%s Bank: %d", cart.Description(), cart.bank)
}

// Type implements the mapper.CartMapper interface.
func (cart *dpc) Type() mapper.Type {
	return BankswitchDPC
}

// Description implements the mapper.CartMapper interface.
func (cart *dpc) Description() string {
	return BankswitchDPC.Description()
}

// SetCPU implements the mapper.CPUAware interface.
func (cart *dpc) SetCPU(cpu mapper.CPU) {
	cart.cpu = cpu
	cart.musicCycles = cpu.Cycles()
}

// Reset implements the mapper.CartMapper interface.
func (cart *dpc) Reset() {
	cart.bank = len(cart.banks) - 1
	cart.fetcher = [8]dpcFetcher{}
	cart.rng = 1
	cart.musicFractional = 0
	if cart.cpu != nil {
		cart.musicCycles = cart.cpu.Cycles()
	}
}

func (cart *dpc) bankswitch(addr uint16) bool {
	switch addr {
	case 0x0ff8:
		cart.bank = 0
	case 0x0ff9:
		cart.bank = 1
	default:
		return false
	}
	return true
}

// Read implements the mapper.CartMapper interface.
func (cart *dpc) Read(addr uint16) (uint8, error) {
	if addr <= 0x003f {
		return cart.readRegister(addr), nil
	}
	cart.bankswitch(addr)
	return cart.banks[cart.bank][addr&0x0fff], nil
}

// Write implements the mapper.CartMapper interface.
func (cart *dpc) Write(addr uint16, data uint8) error {
	if addr >= 0x0040 && addr <= 0x007f {
		cart.writeRegister(addr, data)
		return nil
	}
	cart.bankswitch(addr)
	return nil
}

// Peek implements the mapper.CartMapper interface. Peek returns the ROM
// underlying the register addresses rather than the register values.
func (cart *dpc) Peek(addr uint16) (uint8, error) {
	return cart.banks[cart.bank][addr&0x0fff], nil
}

// Poke implements the mapper.CartMapper interface.
func (cart *dpc) Poke(addr uint16, data uint8) error {
	cart.banks[cart.bank][addr&0x0fff] = data
	return nil
}

// NumBanks implements the mapper.CartMapper interface.
func (cart *dpc) NumBanks() int {
	return len(cart.banks)
}

// GetBank implements the mapper.CartMapper interface.
func (cart *dpc) GetBank(_ uint16) memorymap.BankDetails {
	return memorymap.BankDetails{Number: cart.bank}
}

// the random number generator is an eight bit shift register. the input bit
// is the XNOR of bits 7, 5, 4 and 3
func (cart *dpc) clockRNG() {
	b := ((cart.rng >> 7) ^ (cart.rng >> 5) ^ (cart.rng >> 4) ^ (cart.rng >> 3)) & 0x01
	cart.rng = (cart.rng << 1) | (b ^ 0x01)
}

func (cart *dpc) readRegister(addr uint16) uint8 {
	cart.clockRNG()

	f := int(addr & 0x07)
	fn := (addr >> 3) & 0x07

	var data uint8

	switch fn {
	case 0x00:
		if f < 4 {
			data = cart.rng
		} else {
			cart.updateMusic()
			var i int
			if cart.fetcher[5].musicMode && cart.fetcher[5].flag == 0xff {
				i |= 0x01
			}
			if cart.fetcher[6].musicMode && cart.fetcher[6].flag == 0xff {
				i |= 0x02
			}
			if cart.fetcher[7].musicMode && cart.fetcher[7].flag == 0xff {
				i |= 0x04
			}
			data = dpcMusicAmplitudes[i]
		}
	case 0x01:
		data = cart.display[dpcDisplaySize-1-int(cart.fetcher[f].counter)]
	case 0x02:
		data = cart.display[dpcDisplaySize-1-int(cart.fetcher[f].counter)] & cart.fetcher[f].flag
	case 0x07:
		data = cart.fetcher[f].flag
	}

	// fetchers in music mode are clocked by the oscillator and not by reads
	if f < 5 || !cart.fetcher[f].musicMode {
		cart.fetcher[f].clock()
	}

	return data
}

func (f *dpcFetcher) clock() {
	f.counter = (f.counter - 1) & 0x07ff
	switch uint8(f.counter) {
	case f.top:
		f.flag = 0xff
	case f.bottom:
		f.flag = 0x00
	}
}

func (cart *dpc) writeRegister(addr uint16, data uint8) {
	f := int(addr & 0x07)
	fn := (addr >> 3) & 0x07

	switch fn {
	case 0x00:
		cart.fetcher[f].top = data
		cart.fetcher[f].flag = 0x00
	case 0x01:
		cart.fetcher[f].bottom = data
	case 0x02:
		// the low byte of a fetcher in music mode is loaded from the top
		// register and not from the data
		if f >= 5 && cart.fetcher[f].musicMode {
			data = cart.fetcher[f].top
		}
		cart.fetcher[f].counter = (cart.fetcher[f].counter & 0x0700) | uint16(data)
	case 0x03:
		cart.fetcher[f].counter = (uint16(data&0x07) << 8) | (cart.fetcher[f].counter & 0x00ff)
		if f >= 5 {
			cart.updateMusic()
			cart.fetcher[f].musicMode = data&0x10 == 0x10
		}
	case 0x06:
		cart.rng = 1
	}
}

// advance the music fetchers by the number of oscillator clocks that have
// elapsed since the last update
func (cart *dpc) updateMusic() {
	if cart.cpu == nil {
		return
	}

	cycles := cart.cpu.Cycles()
	elapsed := cycles - cart.musicCycles
	cart.musicCycles = cycles

	cart.musicFractional += float64(elapsed) * dpcOscillator / specification.SpecNTSC.ClockHz
	clocks := int(cart.musicFractional)
	cart.musicFractional -= float64(clocks)

	if clocks <= 0 {
		return
	}

	for f := 5; f <= 7; f++ {
		if !cart.fetcher[f].musicMode {
			continue
		}

		top := int(cart.fetcher[f].top) + 1
		low := int(cart.fetcher[f].counter & 0x00ff)
		if cart.fetcher[f].top != 0 {
			low -= clocks % top
			if low < 0 {
				low += top
			}
		} else {
			low = 0
		}

		if low <= int(cart.fetcher[f].bottom) {
			cart.fetcher[f].flag = 0x00
		} else if low <= int(cart.fetcher[f].top) {
			cart.fetcher[f].flag = 0xff
		}

		cart.fetcher[f].counter = (cart.fetcher[f].counter & 0x0700) | uint16(low)
	}
}
