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
	"fmt"

	"github.com/jetsetilly/gopher2600core/hardware/riot/timer"
	"github.com/jetsetilly/gopher2600core/logger"
)

// FastloadTarget is the view of the VCS required to complete a fastload.
type FastloadTarget interface {
	PeekRAM(addr uint16) uint8
	PokeRAM(addr uint16, data uint8)
	SetTimer(interval timer.Interval, value uint8)
	LoadPC(addr uint16)
}

// fastLoad implements the tape interface. It loads data from a binary file
// rather than a sound file.
//
// Format information for fast-loca binary rom mailing list post:
//
// Subject: Re: [stella] Supercharger BIN format
// From: Eckhard Stolberg
// Date: Fri, 08 Jan 1999.
type fastLoad struct {
	cart *Supercharger

	// fastload binaries have a header which controls how the binary is read
	blocks   []fastloadBlock
	blockIdx int

	// the tape hotspot has been accessed and Fastload() should be called
	pending bool
}

// a fastload binary can have several blocks
const (
	fastLoadHeaderOffset = 0x2000
	fastLoadHeaderLen    = 0x100
	fastLoadBlockLen     = fastLoadHeaderOffset + fastLoadHeaderLen
)

// the address in VCS RAM that holds the number of the multiload being
// requested
const multiloadByteAddress = 0xfa

type fastloadBlock struct {
	data []uint8

	// PC address to jump to once loading has finished
	startAddress uint16

	// RAM config to be set adter tape load
	configByte uint8

	// number of pages to load
	numPages uint8

	// we'll use this to check if the correct multiload is being read
	multiload uint8

	// data is loaded according to page table
	pageTable []uint8
}

func newFastLoad(cart *Supercharger, data []uint8) (tape, error) {
	if len(data) == 0 || len(data)%fastLoadBlockLen != 0 {
		return nil, fmt.Errorf("fastload: wrong number of bytes in cartridge data (%d)", len(data))
	}

	fl := &fastLoad{
		cart:   cart,
		blocks: make([]fastloadBlock, len(data)/fastLoadBlockLen),
	}

	for i := range fl.blocks {
		offset := i * fastLoadBlockLen
		fl.blocks[i].data = data[offset : offset+fastLoadHeaderOffset]

		// game header appears after main data
		gameHeader := data[offset+fastLoadHeaderOffset : offset+fastLoadBlockLen]
		fl.blocks[i].startAddress = (uint16(gameHeader[1]) << 8) | uint16(gameHeader[0])
		fl.blocks[i].configByte = gameHeader[2]
		fl.blocks[i].numPages = gameHeader[3]
		fl.blocks[i].multiload = gameHeader[5]
		fl.blocks[i].pageTable = gameHeader[0x10:0x28]

		if fl.blocks[i].numPages > uint8(len(fl.blocks[i].pageTable)) {
			return nil, fmt.Errorf("fastload: block %d: too many pages (%d)", i, fl.blocks[i].numPages)
		}

		logger.Logf(logger.Allow, "supercharger", "fastload block %d: start address: %#04x", i, fl.blocks[i].startAddress)
		logger.Logf(logger.Allow, "supercharger", "fastload block %d: config byte: %#08b", i, fl.blocks[i].configByte)
		logger.Logf(logger.Allow, "supercharger", "fastload block %d: num pages: %d", i, fl.blocks[i].numPages)
		logger.Logf(logger.Allow, "supercharger", "fastload block %d: multiload: %#02x", i, fl.blocks[i].multiload)
	}

	return fl, nil
}

// load implements the tape interface.
func (fl *fastLoad) load() (uint8, error) {
	fl.pending = true
	return 0, nil
}

// step implements the tape interface.
func (fl *fastLoad) step() {
}

// FastloadPending returns true if the tape hotspot has been accessed and the
// fastload is waiting to be completed with Fastload().
func (cart *Supercharger) FastloadPending() bool {
	if fl, ok := cart.tape.(*fastLoad); ok {
		return fl.pending
	}
	return false
}

// Fastload copies the requested block into supercharger RAM and prepares the
// VCS so that execution continues as though the BIOS had loaded the block
// from tape. Should be called at an instruction boundary.
func (cart *Supercharger) Fastload(vcs FastloadTarget) error {
	fl, ok := cart.tape.(*fastLoad)
	if !ok || !fl.pending {
		return nil
	}
	fl.pending = false

	// look up requested multiload address
	m := vcs.PeekRAM(multiloadByteAddress)

	// check whether the block is the one we want to load
	//
	// note the blockIdx we're starting off with so that we can prevent an
	// infinite loop
	startBlockIdx := fl.blockIdx
	for m != fl.blocks[fl.blockIdx].multiload {
		fl.blockIdx++
		if fl.blockIdx >= len(fl.blocks) {
			fl.blockIdx = 0
		}
		if fl.blockIdx == startBlockIdx {
			logger.Logf(logger.Allow, "supercharger", "cannot find multiload %d", m)
			fl.blockIdx = 0
			break // for loop
		}
	}

	blk := fl.blocks[fl.blockIdx]

	if m != 0 {
		logger.Logf(logger.Allow, "supercharger", "loading multiload %d", blk.multiload)
	}

	// copy data to RAM banks
	for i := 0; i < int(blk.numPages); i++ {
		bank := int(blk.pageTable[i] & 0x03)
		page := int(blk.pageTable[i] >> 2)
		if bank >= len(cart.ram) || page > 7 {
			return fmt.Errorf("fastload: illegal page table entry (%#02x)", blk.pageTable[i])
		}
		ramOffset := page * 0x100
		dataOffset := i * 0x100
		copy(cart.ram[bank][ramOffset:ramOffset+0x100], blk.data[dataOffset:dataOffset+0x100])
	}

	// poke values into RAM. these values would be the by-product of the
	// tape-loading process. because we are short-circuiting that process
	// however, by injecting the binary data into supercharger RAM
	// directly, the necessary code will not be run.

	// RAM address 0x80 contains the initial configbyte
	vcs.PokeRAM(0x80, blk.configByte)

	// CMP $fff8
	vcs.PokeRAM(0xfa, 0xcd)
	vcs.PokeRAM(0xfb, 0xf8)
	vcs.PokeRAM(0xfc, 0xff)

	// JMP <absolute address>
	vcs.PokeRAM(0xfd, 0x4c)
	vcs.PokeRAM(0xfe, uint8(blk.startAddress))
	vcs.PokeRAM(0xff, uint8(blk.startAddress>>8))

	// reset timer. in references to real tape loading, the number of ticks
	// is the value at the moment the PC reaches address 0x00fa
	vcs.SetTimer(timer.TIM64T, 0x0a)

	// jump to VCS RAM location 0x00fa. a short bootstrap program has been
	// poked there already
	vcs.LoadPC(0x00fa)

	// set the value to be used in the first instruction of the bootstrap program
	cart.registers.Value = blk.configByte
	cart.registers.Delay = 0

	return nil
}
