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

package cpu

import (
	"github.com/jetsetilly/gopher2600core/hardware/cpu/instructions"
)

// decode returns the second cycle of the instruction. the second and
// subsequent cycles are chosen by the addressing mode and, for the irregular
// instructions, by the operator.
func decode(defn *instructions.Definition) microOp {
	switch defn.AddressingMode {
	case instructions.Implied:
		switch defn.Operator {
		case instructions.Brk:
			return brk2
		case instructions.Rti:
			return rti2
		case instructions.Rts:
			return rts2
		case instructions.Pha, instructions.Php:
			return push2
		case instructions.Pla, instructions.Plp:
			return pull2
		}
		return implied2

	case instructions.Immediate:
		return immediate2

	case instructions.Relative:
		return branch2

	case instructions.Absolute:
		switch defn.Operator {
		case instructions.Jmp:
			return jmpAbsolute2
		case instructions.Jsr:
			return jsr2
		}
		return absolute2

	case instructions.ZeroPage:
		return zeroPage2

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		return zeroPageIndexed2

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		return absoluteIndexed2

	case instructions.Indirect:
		return indirect2

	case instructions.IndexedIndirect:
		return indexedIndirect2

	case instructions.IndirectIndexed:
		return indirectIndexed2
	}

	panic("cpu: unhandled addressing mode")
}

// index returns the value of the index register for the addressing mode.
func (mc *CPU) index() uint8 {
	switch mc.defn.AddressingMode {
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY, instructions.IndirectIndexed:
		return mc.Y.Value()
	}
	return mc.X.Value()
}

// operate is the final cycle (or cycles for RMW instructions) of any
// instruction that accesses memory. the effective address has been placed in
// the address field.
func operate(mc *CPU) error {
	switch mc.defn.Effect {
	case instructions.Write:
		return mc.mem.Write(mc.address, mc.store())

	case instructions.RMW:
		v, err := mc.mem.Read(mc.address)
		if err != nil {
			return err
		}
		mc.data = v
		mc.next = rmwModify
		return nil
	}

	v, err := mc.mem.Read(mc.address)
	if err != nil {
		return err
	}
	mc.executeRead(v)

	return nil
}

// the unmodified value is written back while the modification takes place.
func rmwModify(mc *CPU) error {
	if err := mc.mem.Write(mc.address, mc.data); err != nil {
		return err
	}
	mc.data = mc.executeRMW(mc.data)
	mc.next = rmwWrite
	return nil
}

func rmwWrite(mc *CPU) error {
	return mc.mem.Write(mc.address, mc.data)
}

func implied2(mc *CPU) error {
	if err := mc.dummyRead(); err != nil {
		return err
	}
	mc.executeImplied()
	return nil
}

func immediate2(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.executeRead(v)
	return nil
}

func zeroPage2(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.address = uint16(v)
	mc.next = operate
	return nil
}

func zeroPageIndexed2(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.pointer = v
	mc.next = zeroPageIndexed3
	return nil
}

// the index is added to the zero page address while the unindexed address
// is read. the result never leaves the zero page.
func zeroPageIndexed3(mc *CPU) error {
	if _, err := mc.mem.Read(uint16(mc.pointer)); err != nil {
		return err
	}
	mc.address = uint16(mc.pointer + mc.index())
	mc.next = operate
	return nil
}

func absolute2(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.address = uint16(v)
	mc.next = absolute3
	return nil
}

func absolute3(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.address |= uint16(v) << 8
	mc.next = operate
	return nil
}

func absoluteIndexed2(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.base = uint16(v)
	mc.next = absoluteIndexed3
	return nil
}

func absoluteIndexed3(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.base |= uint16(v) << 8
	mc.address = mc.base + uint16(mc.index())
	mc.pageCrossed = mc.base&0xff00 != mc.address&0xff00
	mc.next = indexedFixup
	return nil
}

// indexedFixup reads from the indexed address before the carry into the high
// byte has been applied. if that is the correct address, and the instruction
// is only reading, then the read is the final cycle of the instruction.
// otherwise the read is a dummy read and the instruction continues with the
// corrected address.
func indexedFixup(mc *CPU) error {
	if !mc.pageCrossed && mc.defn.Effect == instructions.Read {
		return operate(mc)
	}

	if mc.pageCrossed && mc.defn.PageSensitive {
		mc.LastResult.PageFault = true
	}

	unfixed := (mc.base & 0xff00) | (mc.address & 0x00ff)
	if _, err := mc.mem.Read(unfixed); err != nil {
		return err
	}
	mc.next = operate
	return nil
}

func indexedIndirect2(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.pointer = v
	mc.next = indexedIndirect3
	return nil
}

func indexedIndirect3(mc *CPU) error {
	if _, err := mc.mem.Read(uint16(mc.pointer)); err != nil {
		return err
	}
	mc.pointer += mc.X.Value()
	mc.next = indexedIndirect4
	return nil
}

func indexedIndirect4(mc *CPU) error {
	v, err := mc.mem.Read(uint16(mc.pointer))
	if err != nil {
		return err
	}
	mc.address = uint16(v)
	mc.next = indexedIndirect5
	return nil
}

func indexedIndirect5(mc *CPU) error {
	v, err := mc.mem.Read(uint16(mc.pointer + 1))
	if err != nil {
		return err
	}
	mc.address |= uint16(v) << 8
	mc.next = operate
	return nil
}

func indirectIndexed2(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.pointer = v
	mc.next = indirectIndexed3
	return nil
}

func indirectIndexed3(mc *CPU) error {
	v, err := mc.mem.Read(uint16(mc.pointer))
	if err != nil {
		return err
	}
	mc.base = uint16(v)
	mc.next = indirectIndexed4
	return nil
}

func indirectIndexed4(mc *CPU) error {
	v, err := mc.mem.Read(uint16(mc.pointer + 1))
	if err != nil {
		return err
	}
	mc.base |= uint16(v) << 8
	mc.address = mc.base + uint16(mc.Y.Value())
	mc.pageCrossed = mc.base&0xff00 != mc.address&0xff00
	mc.next = indexedFixup
	return nil
}

func jmpAbsolute2(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.address = uint16(v)
	mc.next = jmpAbsolute3
	return nil
}

func jmpAbsolute3(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.address |= uint16(v) << 8
	mc.PC.Load(mc.address)
	return nil
}

func indirect2(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.base = uint16(v)
	mc.next = indirect3
	return nil
}

func indirect3(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.base |= uint16(v) << 8
	mc.next = indirect4
	return nil
}

func indirect4(mc *CPU) error {
	v, err := mc.mem.Read(mc.base)
	if err != nil {
		return err
	}
	mc.address = uint16(v)
	mc.next = indirect5
	return nil
}

// the high byte of the indirect address is read from the same page as the
// low byte. JMP ($10FF) reads the high byte from $1000 and not $1100.
func indirect5(mc *CPU) error {
	hi := (mc.base & 0xff00) | ((mc.base + 1) & 0x00ff)
	v, err := mc.mem.Read(hi)
	if err != nil {
		return err
	}
	mc.address |= uint16(v) << 8
	mc.PC.Load(mc.address)
	return nil
}

func branch2(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	if mc.branchTaken() {
		mc.data = v
		mc.next = branch3
	}
	return nil
}

func branch3(mc *CPU) error {
	if err := mc.dummyRead(); err != nil {
		return err
	}
	pc := mc.PC.Address()
	mc.address = uint16(int32(pc) + int32(int8(mc.data)))
	if pc&0xff00 == mc.address&0xff00 {
		mc.PC.Load(mc.address)
		return nil
	}
	mc.next = branch4
	return nil
}

func branch4(mc *CPU) error {
	mc.LastResult.PageFault = true
	unfixed := (mc.PC.Address() & 0xff00) | (mc.address & 0x00ff)
	if _, err := mc.mem.Read(unfixed); err != nil {
		return err
	}
	mc.PC.Load(mc.address)
	return nil
}

func jsr2(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.address = uint16(v)
	mc.next = jsr3
	return nil
}

// internal operation. the 6502 reads the stack without changing it.
func jsr3(mc *CPU) error {
	if _, err := mc.mem.Read(0x0100 | mc.SP.Address()); err != nil {
		return err
	}
	mc.next = jsr4
	return nil
}

func jsr4(mc *CPU) error {
	if err := mc.push(uint8(mc.PC.Address() >> 8)); err != nil {
		return err
	}
	mc.next = jsr5
	return nil
}

func jsr5(mc *CPU) error {
	if err := mc.push(uint8(mc.PC.Address())); err != nil {
		return err
	}
	mc.next = jsr6
	return nil
}

func jsr6(mc *CPU) error {
	v, err := mc.readOperand()
	if err != nil {
		return err
	}
	mc.address |= uint16(v) << 8
	mc.PC.Load(mc.address)
	return nil
}

func rts2(mc *CPU) error {
	if err := mc.dummyRead(); err != nil {
		return err
	}
	mc.next = rtsStackDummy
	return nil
}

func rts4(mc *CPU) error {
	v, err := mc.pull()
	if err != nil {
		return err
	}
	mc.address = uint16(v)
	mc.next = rts5
	return nil
}

func rts5(mc *CPU) error {
	v, err := mc.pull()
	if err != nil {
		return err
	}
	mc.address |= uint16(v) << 8
	mc.PC.Load(mc.address)
	mc.next = rts6
	return nil
}

func rts6(mc *CPU) error {
	if err := mc.dummyRead(); err != nil {
		return err
	}
	mc.PC.Increment()
	return nil
}

func brk2(mc *CPU) error {
	// the byte following BRK is read and skipped
	if _, err := mc.readOperand(); err != nil {
		return err
	}
	mc.next = brk3
	return nil
}

func brk3(mc *CPU) error {
	if err := mc.push(uint8(mc.PC.Address() >> 8)); err != nil {
		return err
	}
	mc.next = brk4
	return nil
}

func brk4(mc *CPU) error {
	if err := mc.push(uint8(mc.PC.Address())); err != nil {
		return err
	}
	mc.next = brk5
	return nil
}

func brk5(mc *CPU) error {
	sr := mc.Status
	sr.Break = true
	if err := mc.push(sr.Value()); err != nil {
		return err
	}
	mc.Status.InterruptDisable = true
	mc.next = brk6
	return nil
}

func brk6(mc *CPU) error {
	v, err := mc.mem.Read(IRQ)
	if err != nil {
		return err
	}
	mc.address = uint16(v)
	mc.next = brk7
	return nil
}

func brk7(mc *CPU) error {
	v, err := mc.mem.Read(IRQ + 1)
	if err != nil {
		return err
	}
	mc.address |= uint16(v) << 8
	mc.PC.Load(mc.address)
	return nil
}

func rti2(mc *CPU) error {
	if err := mc.dummyRead(); err != nil {
		return err
	}
	mc.next = rtiStackDummy
	return nil
}

func rti4(mc *CPU) error {
	v, err := mc.pull()
	if err != nil {
		return err
	}
	mc.Status.Load(v)
	mc.Status.Break = false
	mc.next = rti5
	return nil
}

func rti5(mc *CPU) error {
	v, err := mc.pull()
	if err != nil {
		return err
	}
	mc.address = uint16(v)
	mc.next = rti6
	return nil
}

func rti6(mc *CPU) error {
	v, err := mc.pull()
	if err != nil {
		return err
	}
	mc.address |= uint16(v) << 8
	mc.PC.Load(mc.address)
	return nil
}

func push2(mc *CPU) error {
	if err := mc.dummyRead(); err != nil {
		return err
	}
	mc.next = push3
	return nil
}

func push3(mc *CPU) error {
	if mc.defn.Operator == instructions.Php {
		sr := mc.Status
		sr.Break = true
		return mc.push(sr.Value())
	}
	return mc.push(mc.A.Value())
}

func pull2(mc *CPU) error {
	if err := mc.dummyRead(); err != nil {
		return err
	}
	mc.next = pullStackDummy
	return nil
}

func pull4(mc *CPU) error {
	v, err := mc.pull()
	if err != nil {
		return err
	}
	if mc.defn.Operator == instructions.Plp {
		mc.Status.Load(v)
		mc.Status.Break = false
	} else {
		mc.A.Load(v)
		mc.setNZ(v)
	}
	return nil
}

// dummy stack reads precede every pull from the stack.

func rtsStackDummy(mc *CPU) error {
	_, err := mc.mem.Read(0x0100 | mc.SP.Address())
	mc.next = rts4
	return err
}

func rtiStackDummy(mc *CPU) error {
	_, err := mc.mem.Read(0x0100 | mc.SP.Address())
	mc.next = rti4
	return err
}

func pullStackDummy(mc *CPU) error {
	_, err := mc.mem.Read(0x0100 | mc.SP.Address())
	mc.next = pull4
	return err
}
