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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher2600core/hardware/television/specification"
	"github.com/jetsetilly/gopher2600core/hardware/tia/framemanager"
	"github.com/jetsetilly/gopher2600core/test"
)

// create a 4k image with the program at the start of the cartridge space and
// the reset vector pointing to it. unused bytes are NOPs
func image4k(program ...uint8) []uint8 {
	data := make([]uint8, 4096)
	for i := range data {
		data[i] = 0xea
	}
	copy(data, program)
	data[0x0ffc] = 0x00
	data[0x0ffd] = 0xf0
	return data
}

func newVCS(t *testing.T, typ cartridge.Type, data []uint8) *hardware.VCS {
	t.Helper()
	cart, err := cartridge.NewCartridge(typ, data)
	test.DemandSuccess(t, err)
	vcs, err := hardware.NewVCS(specification.SpecNTSC, cart)
	test.DemandSuccess(t, err)
	return vcs
}

func TestNoCartridge(t *testing.T) {
	_, err := hardware.NewVCS(specification.SpecNTSC, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.NoCartridgeError))
}

func TestStep(t *testing.T) {
	vcs := newVCS(t, cartridge.Vanilla4k, image4k(
		0xa9, 0x42, // LDA #$42
		0x85, 0x80, // STA $80
		0x4c, 0x04, 0xf0, // JMP $F004
	))
	test.ExpectEquality(t, vcs.CPU.PC.Address(), 0xf000)

	test.ExpectSuccess(t, vcs.Step())
	test.ExpectEquality(t, vcs.CPU.A.Value(), 0x42)
	test.ExpectEquality(t, vcs.CPU.Cycles(), uint64(2))

	test.ExpectSuccess(t, vcs.Step())
	test.ExpectEquality(t, vcs.RIOT.RAM[0], 0x42)
	test.ExpectEquality(t, vcs.CPU.Cycles(), uint64(5))

	test.ExpectSuccess(t, vcs.Step())
	test.ExpectEquality(t, vcs.CPU.PC.Address(), 0xf004)

	// three colour clocks for every CPU cycle
	test.ExpectEquality(t, vcs.TIA.Clocks(), vcs.CPU.Cycles()*3)
}

func TestWSYNC(t *testing.T) {
	vcs := newVCS(t, cartridge.Vanilla4k, image4k(
		0x85, 0x02, // STA WSYNC
		0x4c, 0x02, 0xf0, // JMP $F002
	))

	// the step does not complete until the CPU has been released by the TIA
	test.ExpectSuccess(t, vcs.Step())
	test.ExpectFailure(t, vcs.CPU.IsHalted())
	test.ExpectEquality(t, vcs.TIA.FrameManager.Scanline(), 1)
	test.ExpectSuccess(t, vcs.TIA.HClock() < 3)
	test.ExpectEquality(t, vcs.CPU.Cycles(), uint64(specification.HorizClksScanline/3))
}

func TestFrames(t *testing.T) {
	vcs := newVCS(t, cartridge.Vanilla4k, image4k(
		0xa9, 0x02, // LDA #2
		0x85, 0x00, // STA VSYNC
		0x85, 0x02, // STA WSYNC
		0x85, 0x02, // STA WSYNC
		0x85, 0x02, // STA WSYNC
		0xa9, 0x00, // LDA #0
		0x85, 0x00, // STA VSYNC
		0xa2, 0xff, // LDX #255
		0x85, 0x02, // STA WSYNC
		0xca, // DEX
		0xd0, 0xfb, // BNE $F010
		0x4c, 0x00, 0xf0, // JMP $F000
	))

	var clocks []uint64
	vcs.TIA.FrameManager.OnNewFrame = func(_ *framemanager.Surface) {
		clocks = append(clocks, vcs.TIA.Clocks())
	}

	test.ExpectSuccess(t, vcs.RunFrames(4))
	test.DemandEquality(t, len(clocks), 4)
	test.ExpectEquality(t, vcs.TIA.FrameManager.FrameNum(), 4)

	// three lines of VSYNC and 255 lines of the loop
	const lines = 258
	for i := 2; i < len(clocks); i++ {
		test.ExpectEquality(t, clocks[i]-clocks[i-1], uint64(lines*specification.HorizClksScanline))
	}
}

func TestNoVSYNC(t *testing.T) {
	// a program that never writes to VSYNC still produces frames
	vcs := newVCS(t, cartridge.Vanilla4k, make([]uint8, 4096))
	test.ExpectSuccess(t, vcs.RunFrames(2))
	test.ExpectEquality(t, vcs.TIA.FrameManager.FrameNum(), 2)
	test.ExpectInequality(t, vcs.CPU.Cycles(), uint64(0))
}

func TestBankswitching(t *testing.T) {
	data := make([]uint8, 8192)
	for i := 0; i < 4096; i++ {
		data[i] = 0x11
	}
	copy(data[4096:], image4k())

	vcs := newVCS(t, cartridge.Bankswitch8kF8, data)

	// the cartridge starts in the last bank
	v, err := vcs.Bus.Peek(0x1000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xea)

	// peeking a hotspot does not switch banks
	_, err = vcs.Bus.Peek(0x1ff8)
	test.ExpectSuccess(t, err)
	v, _ = vcs.Bus.Peek(0x1000)
	test.ExpectEquality(t, v, 0xea)

	_, err = vcs.Bus.Read(0x1ff8)
	test.ExpectSuccess(t, err)
	v, _ = vcs.Bus.Peek(0x1000)
	test.ExpectEquality(t, v, 0x11)

	// reset returns the cartridge to the starting bank
	test.ExpectSuccess(t, vcs.Reset())
	v, _ = vcs.Bus.Peek(0x1000)
	test.ExpectEquality(t, v, 0xea)
}

func TestZeroState(t *testing.T) {
	vcs := newVCS(t, cartridge.Vanilla4k, image4k())
	vcs.Random.ZeroState = true
	test.ExpectSuccess(t, vcs.Reset())
	for i := range vcs.RIOT.RAM {
		test.DemandEquality(t, vcs.RIOT.RAM[i], 0x00)
	}
}

func TestFastload(t *testing.T) {
	// a single block fastload image. one page of data loaded into the first
	// page of the first RAM bank
	data := make([]uint8, 8448)
	hdr := data[0x2000:]
	hdr[0] = 0x00 // start address lo
	hdr[1] = 0xf0 // start address hi
	hdr[2] = 0x0d // config byte
	hdr[3] = 1    // num pages

	vcs := newVCS(t, cartridge.BankswitchAR, data)

	// the BIOS starts the tape load with an access to $FFF9. the load is
	// completed before the next instruction
	test.ExpectEquality(t, vcs.CPU.PC.Address(), 0xf800)
	test.ExpectSuccess(t, vcs.Step())
	test.ExpectEquality(t, vcs.CPU.PC.Address(), 0x00fa)
	test.ExpectEquality(t, vcs.PeekRAM(0x80), 0x0d)

	// the bootstrap program in VCS RAM jumps to the start address
	test.ExpectSuccess(t, vcs.Step())
	test.ExpectSuccess(t, vcs.Step())
	test.ExpectEquality(t, vcs.CPU.PC.Address(), 0xf000)
}

// cartridge that records the CPU cycle count whenever it is reset
type clockedCart struct {
	cartridge.Cartridge
	cpu         cartridge.CPU
	resetCycles []uint64
}

func (cart *clockedCart) SetCPU(cpu cartridge.CPU) {
	cart.cpu = cpu
}

func (cart *clockedCart) Reset() {
	cart.Cartridge.Reset()
	if cart.cpu != nil {
		cart.resetCycles = append(cart.resetCycles, cart.cpu.Cycles())
	}
}

func TestResetCycleCount(t *testing.T) {
	data := make([]uint8, 8192)
	copy(data, image4k())
	copy(data[4096:], image4k(0x4c, 0x00, 0xf0)) // JMP $F000
	data[0x0ffd] = 0xf1

	c, err := cartridge.NewCartridge(cartridge.Bankswitch8kF8, data)
	test.DemandSuccess(t, err)
	cart := &clockedCart{Cartridge: c}

	vcs, err := hardware.NewVCS(specification.SpecNTSC, cart)
	test.DemandSuccess(t, err)

	for i := 0; i < 100; i++ {
		test.DemandSuccess(t, vcs.Step())
	}
	test.ExpectInequality(t, vcs.CPU.Cycles(), uint64(0))

	// switch to the first bank so that the reset vector differs from the
	// vector of the starting bank
	_, err = vcs.Bus.Read(0x1ff8)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, vcs.Reset())

	// the cartridge sees the cycle count of the reset CPU
	test.DemandEquality(t, len(cart.resetCycles), 2)
	test.ExpectEquality(t, cart.resetCycles[1], uint64(0))

	// the reset vector is read from the starting bank
	test.ExpectEquality(t, vcs.CPU.PC.Address(), 0xf000)

	// attaching a cartridge also resets with a zero cycle count
	for i := 0; i < 10; i++ {
		test.DemandSuccess(t, vcs.Step())
	}
	test.ExpectSuccess(t, vcs.AttachCartridge(cart))
	test.DemandEquality(t, len(cart.resetCycles), 3)
	test.ExpectEquality(t, cart.resetCycles[2], uint64(0))
}
