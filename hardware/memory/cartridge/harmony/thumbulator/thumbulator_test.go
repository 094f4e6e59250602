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

package thumbulator_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/harmony/thumbulator"
	"github.com/jetsetilly/gopher2600core/test"
)

const entry = 0x0800

const bxLR = 0x4770

// program places the Thumb code at the entry address of a 4K ROM.
func program(code ...uint16) ([]uint8, []uint8) {
	rom := make([]uint8, 4096)
	for i, c := range code {
		rom[entry+i*2] = uint8(c)
		rom[entry+i*2+1] = uint8(c >> 8)
	}
	return rom, make([]uint8, 8192)
}

func TestArithmetic(t *testing.T) {
	rom, ram := program(
		0x2005, // MOV r0, #5
		0x2107, // MOV r1, #7
		0x1842, // ADD r2, r0, r1
		0x1a0b, // SUB r3, r1, r0
		0x4341, // MUL r1, r0
		bxLR,
	)
	arm := thumbulator.NewARM(rom, ram, nil)
	test.DemandSuccess(t, arm.Run(entry|0x01))
	test.ExpectEquality(t, arm.Register(2), uint32(12))
	test.ExpectEquality(t, arm.Register(3), uint32(2))
	test.ExpectEquality(t, arm.Register(1), uint32(35))
}

func TestShifts(t *testing.T) {
	rom, ram := program(
		0x2001, // MOV r0, #1
		0x07c1, // LSL r1, r0, #31
		0x110a, // ASR r2, r1, #4
		0x0fcb, // LSR r3, r1, #31
		0x43c4, // MVN r4, r0
		0x4245, // NEG r5, r0
		bxLR,
	)
	arm := thumbulator.NewARM(rom, ram, nil)
	test.DemandSuccess(t, arm.Run(entry))
	test.ExpectEquality(t, arm.Register(1), uint32(0x80000000))
	test.ExpectEquality(t, arm.Register(2), uint32(0xf8000000))
	test.ExpectEquality(t, arm.Register(3), uint32(1))
	test.ExpectEquality(t, arm.Register(4), uint32(0xfffffffe))
	test.ExpectEquality(t, arm.Register(5), uint32(0xffffffff))
}

func TestLoop(t *testing.T) {
	rom, ram := program(
		0x2000, // MOV r0, #0
		0x210a, // MOV r1, #10
		0x3003, // loop: ADD r0, #3
		0x3901, // SUB r1, #1
		0xd1fc, // BNE loop
		bxLR,
	)
	arm := thumbulator.NewARM(rom, ram, nil)
	test.DemandSuccess(t, arm.Run(entry))
	test.ExpectEquality(t, arm.Register(0), uint32(30))
	test.ExpectEquality(t, arm.Register(1), uint32(0))
}

func TestUnsignedCompare(t *testing.T) {
	rom, ram := program(
		0x2001, // MOV r0, #1
		0x2102, // MOV r1, #2
		0x4288, // CMP r0, r1
		0xd301, // BCC skip
		0x22ff, // MOV r2, #255
		bxLR,
		0x2201, // skip: MOV r2, #1
		bxLR,
	)
	arm := thumbulator.NewARM(rom, ram, nil)
	test.DemandSuccess(t, arm.Run(entry))
	test.ExpectEquality(t, arm.Register(2), uint32(1))
}

func TestLoadStore(t *testing.T) {
	rom, ram := program(
		0x4802, // LDR r0, [pc, #8]
		0x2155, // MOV r1, #0x55
		0x7001, // STRB r1, [r0, #0]
		0x7802, // LDRB r2, [r0, #0]
		bxLR,
		0x0000,
		0x0010, 0x4000, // .word 0x40000010
	)
	arm := thumbulator.NewARM(rom, ram, nil)
	test.DemandSuccess(t, arm.Run(entry))
	test.ExpectEquality(t, ram[0x10], uint8(0x55))
	test.ExpectEquality(t, arm.Register(2), uint32(0x55))
}

func TestBranchWithLink(t *testing.T) {
	rom, ram := program(
		0xb500, // PUSH {lr}
		0xf000, // BL func
		0xf805,
		0x3102, // ADD r1, #2
		0xbd00, // POP {pc}
		0x0000,
		0x0000,
		0x0000,
		0x2128, // func: MOV r1, #40
		bxLR,
	)
	arm := thumbulator.NewARM(rom, ram, nil)
	test.DemandSuccess(t, arm.Run(entry))
	test.ExpectEquality(t, arm.Register(1), uint32(42))
	test.ExpectEquality(t, arm.Register(13), uint32(thumbulator.RAMOrigin+8192-0x24))
}

func TestCycleBudget(t *testing.T) {
	rom, ram := program(
		0xe7fe, // loop: B loop
	)
	arm := thumbulator.NewARM(rom, ram, nil)
	err := arm.Run(entry)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, thumbulator.FaultError))
	test.ExpectEquality(t, err.Error(), "thumbulator: cycle budget exceeded (pc 0x00000800)")
	test.ExpectSuccess(t, arm.Cycles() > thumbulator.CycleBudget)
}

func TestUnalignedRead(t *testing.T) {
	rom, ram := program(
		0x2101, // MOV r1, #1
		0x6808, // LDR r0, [r1, #0]
		bxLR,
	)
	arm := thumbulator.NewARM(rom, ram, nil)
	err := arm.Run(entry)
	test.ExpectSuccess(t, curated.Is(err, thumbulator.FaultError))
	test.ExpectEquality(t, err.Error(), "thumbulator: unaligned read (0x00000001)")
}

type trapper struct {
	addr uint32
	fail bool
}

func (tr *trapper) Trap(addr uint32, regs *thumbulator.Registers) (bool, error) {
	tr.addr = addr
	if addr != 0x752 {
		return false, nil
	}
	if tr.fail {
		return false, fmt.Errorf("bad trap")
	}
	regs[2] += regs[3]
	return true, nil
}

var trapProgram = []uint16{
	0xb500, // PUSH {lr}
	0x2203, // MOV r2, #3
	0x2304, // MOV r3, #4
	0x2475, // MOV r4, #0x75
	0x0124, // LSL r4, r4, #4
	0x3402, // ADD r4, #2
	0xf000, // BL veneer
	0xf804,
	0x1c15, // ADD r5, r2, #0
	0xbd00, // POP {pc}
	0x0000,
	0x0000,
	0x4720, // veneer: BX r4
}

func TestTrap(t *testing.T) {
	rom, ram := program(trapProgram...)
	tr := &trapper{}
	arm := thumbulator.NewARM(rom, ram, tr)
	test.DemandSuccess(t, arm.Run(entry))
	test.ExpectEquality(t, arm.Register(5), uint32(7))
	test.ExpectEquality(t, tr.addr, uint32(0x752))
}

func TestTrapError(t *testing.T) {
	rom, ram := program(trapProgram...)
	tr := &trapper{fail: true}
	arm := thumbulator.NewARM(rom, ram, tr)
	err := arm.Run(entry)
	test.ExpectSuccess(t, curated.Is(err, thumbulator.FaultError))
	test.ExpectEquality(t, tr.addr, uint32(0x752))
}
