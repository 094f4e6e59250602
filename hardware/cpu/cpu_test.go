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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/cpu"
	"github.com/jetsetilly/gopher2600core/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2600core/test"
)

// mockMem is a flat 64k memory that records every access.
type mockMem struct {
	data     [0x10000]uint8
	accesses int
	writes   []uint16
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	mem.accesses++
	return mem.data[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.accesses++
	mem.writes = append(mem.writes, address)
	mem.data[address] = data
	return nil
}

func (mem *mockMem) putInstruction(origin uint16, bytes ...uint8) {
	for i, b := range bytes {
		mem.data[origin+uint16(i)] = b
	}
}

const origin = 0x1000

func newCPU(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := &mockMem{}
	mem.data[cpu.Reset] = uint8(origin & 0xff)
	mem.data[cpu.Reset+1] = uint8(origin >> 8)
	mc := cpu.NewCPU(mem)
	test.DemandSuccess(t, mc.Reset())
	test.DemandEquality(t, mc.PC.Address(), origin)
	mem.accesses = 0
	mem.writes = mem.writes[:0]
	return mc, mem
}

// prepare memory so that every addressing mode resolves to an address. if
// cross is true then indexed addressing will cross a page.
func prepareOperands(mc *cpu.CPU, mem *mockMem, defn *instructions.Definition, cross bool) {
	mc.X.Load(0x01)
	mc.Y.Load(0x01)
	mc.SP.Load(0xfd)

	base := uint16(0x2010)
	if cross {
		base = 0x20ff
	}

	// zero page pointers for the indirect modes
	mem.data[0x40] = uint8(base)
	mem.data[0x41] = uint8(base >> 8)
	mem.data[0x42] = uint8(base >> 8)

	// pointer for JMP indirect
	mem.data[base] = 0x00
	mem.data[base+1] = 0x30

	switch defn.Bytes {
	case 1:
		mem.putInstruction(origin, defn.OpCode)
	case 2:
		mem.putInstruction(origin, defn.OpCode, 0x40)
	case 3:
		mem.putInstruction(origin, defn.OpCode, uint8(base), uint8(base>>8))
	}
}

func TestCycleCounts(t *testing.T) {
	for _, defn := range instructions.Definitions {
		if defn == nil || defn.IsBranch() {
			continue
		}

		mc, mem := newCPU(t)
		prepareOperands(mc, mem, defn, false)

		test.DemandSuccess(t, mc.ExecuteInstruction(), defn.Operator)
		test.ExpectEquality(t, mc.LastResult.Cycles, defn.Cycles, defn.String())
		test.ExpectFailure(t, mc.LastResult.PageFault, defn.String())
		test.ExpectSuccess(t, mc.LastResult.Final, defn.String())

		// every cycle is exactly one bus access
		test.ExpectEquality(t, mem.accesses, defn.Cycles, defn.String())
	}
}

func TestPageCrossingCycleCounts(t *testing.T) {
	for _, defn := range instructions.Definitions {
		if defn == nil || defn.IsBranch() {
			continue
		}

		mc, mem := newCPU(t)
		prepareOperands(mc, mem, defn, true)

		test.DemandSuccess(t, mc.ExecuteInstruction(), defn.Operator)

		// only page sensitive instructions in an indexed addressing mode
		// incur the penalty
		expected := defn.Cycles
		if defn.PageSensitive {
			switch defn.AddressingMode {
			case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY, instructions.IndirectIndexed:
				expected++
			}
		}

		test.ExpectEquality(t, mc.LastResult.Cycles, expected, defn.String())
		test.ExpectEquality(t, mc.LastResult.PageFault, expected != defn.Cycles, defn.String())
	}
}

func TestZeroPageIndexWraps(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA $F0,X with X=$20 reads from $10 and not $110
	mem.putInstruction(origin, 0xb5, 0xf0)
	mem.data[0x10] = 0xaa
	mem.data[0x110] = 0xbb
	mc.X.Load(0x20)

	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.A.Value(), 0xaa)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)
}

func TestBranchCycles(t *testing.T) {
	// branch not taken
	mc, mem := newCPU(t)
	mem.putInstruction(origin, 0xd0, 0x10)
	mc.Status.Zero = true
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.LastResult.Cycles, 2)
	test.ExpectEquality(t, mc.PC.Address(), origin+2)

	// branch taken, same page
	mc, mem = newCPU(t)
	mem.putInstruction(origin, 0xd0, 0x10)
	mc.Status.Zero = false
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.LastResult.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Address(), origin+2+0x10)
	test.ExpectFailure(t, mc.LastResult.PageFault)

	// branch taken, backwards across a page boundary
	mc, mem = newCPU(t)
	mem.putInstruction(origin, 0xd0, 0xf0)
	mc.Status.Zero = false
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Address(), origin+2-0x10)
	test.ExpectSuccess(t, mc.LastResult.PageFault)
}

func TestIndirectJumpPageWrap(t *testing.T) {
	mc, mem := newCPU(t)

	// JMP ($10FF) placed away from the pointer page
	mem.putInstruction(0x2000, 0x6c, 0xff, 0x10)
	mem.data[0x10ff] = 0x34
	mem.data[0x1000] = 0x56
	mem.data[0x1100] = 0x99
	mc.PC.Load(0x2000)

	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.PC.Address(), 0x5634)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
}

func TestDecimalMode(t *testing.T) {
	mc, mem := newCPU(t)

	// SED; CLC; LDA #$25; ADC #$48
	mem.putInstruction(origin, 0xf8, 0x18, 0xa9, 0x25, 0x69, 0x48)
	for i := 0; i < 4; i++ {
		test.DemandSuccess(t, mc.ExecuteInstruction())
	}
	test.ExpectEquality(t, mc.A.Value(), 0x73)
	test.ExpectFailure(t, mc.Status.Carry)

	// ADC #$48 again. 73 + 48 = 121
	mem.putInstruction(mc.PC.Address(), 0x69, 0x48)
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.A.Value(), 0x21)
	test.ExpectSuccess(t, mc.Status.Carry)

	// SEC; SBC #$22. 21 - 22 = 99 with borrow
	mem.putInstruction(mc.PC.Address(), 0x38, 0xe9, 0x22)
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.A.Value(), 0x99)
	test.ExpectFailure(t, mc.Status.Carry)
}

func TestCompareAndShift(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA #$10; CMP #$08
	mem.putInstruction(origin, 0xa9, 0x10, 0xc9, 0x08)
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Zero)

	// CMP #$20
	mem.putInstruction(mc.PC.Address(), 0xc9, 0x20)
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)

	// LDA #$81; ASL A
	mem.putInstruction(mc.PC.Address(), 0xa9, 0x81, 0x0a)
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Sign)

	// ROR $80 with carry set. $80 contains $02
	mem.data[0x80] = 0x02
	mem.putInstruction(mc.PC.Address(), 0x66, 0x80)
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mem.data[0x80], 0x81)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)
}

func TestSubroutine(t *testing.T) {
	mc, mem := newCPU(t)

	// JSR $2000
	mem.putInstruction(origin, 0x20, 0x00, 0x20)
	// RTS
	mem.putInstruction(0x2000, 0x60)

	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.PC.Address(), 0x2000)
	test.ExpectEquality(t, mc.SP.Value(), 0xfb)

	// return address is the last byte of the JSR instruction
	test.ExpectEquality(t, mem.data[0x01fd], 0x10)
	test.ExpectEquality(t, mem.data[0x01fc], 0x02)

	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.PC.Address(), origin+3)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func TestStack(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA #$00; PHP; PLA
	mem.putInstruction(origin, 0xa9, 0x00, 0x08, 0x68)
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.DemandSuccess(t, mc.ExecuteInstruction())

	// break and unused bits are set in the pushed value
	test.ExpectEquality(t, mc.A.Value()&0x30, 0x30)
	test.ExpectEquality(t, mc.A.Value()&0x02, 0x02)
}

func TestHaltResume(t *testing.T) {
	mc, mem := newCPU(t)

	// LDA $2010
	mem.putInstruction(origin, 0xad, 0x10, 0x20)
	mem.data[0x2010] = 0x42

	test.DemandSuccess(t, mc.Cycle())
	test.DemandSuccess(t, mc.Cycle())
	test.ExpectFailure(t, mc.IsFetching())

	// halting takes effect immediately and no bus access occurs
	mc.Halt()
	accesses := mem.accesses
	for i := 0; i < 5; i++ {
		test.DemandSuccess(t, mc.Cycle())
	}
	test.ExpectEquality(t, mem.accesses, accesses)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, curated.Is(mc.ExecuteInstruction(), cpu.HaltedError))

	// resuming continues with the next cycle of the instruction
	mc.Resume()
	test.DemandSuccess(t, mc.Cycle())
	test.ExpectFailure(t, mc.IsFetching())
	test.DemandSuccess(t, mc.Cycle())
	test.ExpectSuccess(t, mc.IsFetching())
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)

	// halted cycles count towards the total
	test.ExpectEquality(t, mc.Cycles(), uint64(9))
}

func TestInvalidOpcode(t *testing.T) {
	mc, mem := newCPU(t)
	mem.putInstruction(origin, 0x02)

	err := mc.Cycle()
	test.ExpectSuccess(t, curated.Is(err, cpu.InvalidOpcodeError))

	// with a handler the opcode is skipped
	mc, mem = newCPU(t)
	mem.putInstruction(origin, 0x02, 0xa9, 0x01)

	var called bool
	mc.SetInvalidInstructionHandler(func(opcode uint8, address uint16) error {
		called = true
		test.ExpectEquality(t, opcode, 0x02)
		test.ExpectEquality(t, address, origin)
		return nil
	})

	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectSuccess(t, called)
	test.ExpectEquality(t, mc.LastResult.Cycles, 2)
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.A.Value(), 0x01)
}

func TestBRKLoop(t *testing.T) {
	// all zero memory. the reset vector points to $0000 and so does the IRQ
	// vector. every instruction is a BRK
	mem := &mockMem{}
	mc := cpu.NewCPU(mem)
	test.DemandSuccess(t, mc.Reset())
	test.ExpectEquality(t, mc.PC.Address(), 0x0000)

	for i := 0; i < 10; i++ {
		test.DemandSuccess(t, mc.ExecuteInstruction())
		test.ExpectEquality(t, mc.LastResult.Defn.Operator, instructions.Brk)
		test.ExpectEquality(t, mc.LastResult.Cycles, 7)
		test.ExpectEquality(t, mc.PC.Address(), 0x0000)
		test.ExpectSuccess(t, mc.Status.InterruptDisable)
	}
}

func TestUndocumented(t *testing.T) {
	mc, mem := newCPU(t)

	// LAX $80
	mem.data[0x80] = 0x99
	mem.putInstruction(origin, 0xa7, 0x80)
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.A.Value(), 0x99)
	test.ExpectEquality(t, mc.X.Value(), 0x99)

	// DCP $81. decrements memory and compares with A
	mem.data[0x81] = 0x9a
	mem.putInstruction(mc.PC.Address(), 0xc7, 0x81)
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mem.data[0x81], 0x99)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Carry)

	// SAX $82
	mc.X.Load(0x0f)
	mem.putInstruction(mc.PC.Address(), 0x87, 0x82)
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mem.data[0x82], 0x09)
}

func TestRMWDoubleWrite(t *testing.T) {
	mc, mem := newCPU(t)

	// INC $80. RMW instructions write the unmodified value before the
	// modified value
	mem.putInstruction(origin, 0xe6, 0x80)
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, len(mem.writes), 2)
	test.ExpectEquality(t, mem.data[0x80], 0x01)
}
