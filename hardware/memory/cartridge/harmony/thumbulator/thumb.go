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

package thumbulator

import (
	"fmt"

	"github.com/jetsetilly/gopher2600core/curated"
)

// the nineteen Thumb instruction formats are decoded in order of the number
// of significant bits in their identifying pattern. the format numbers are
// those used in the ARM7TDMI data sheet.
func (arm *ARM) execute(opcode uint16) error {
	if opcode&0xf000 == 0xf000 {
		// format 19 - Long branch with link
		arm.executeLongBranchWithLink(opcode)
		return nil
	} else if opcode&0xf800 == 0xe000 {
		// format 18 - Unconditional branch
		arm.executeUnconditionalBranch(opcode)
		return nil
	} else if opcode&0xff00 == 0xdf00 {
		// format 17 - Software interrupt
		return arm.undefined(opcode)
	} else if opcode&0xf000 == 0xd000 {
		// format 16 - Conditional branch
		return arm.executeConditionalBranch(opcode)
	} else if opcode&0xf000 == 0xc000 {
		// format 15 - Multiple load/store
		return arm.executeMultipleLoadStore(opcode)
	} else if opcode&0xf600 == 0xb400 {
		// format 14 - Push/pop registers
		return arm.executePushPopRegisters(opcode)
	} else if opcode&0xff00 == 0xb000 {
		// format 13 - Add offset to stack pointer
		arm.executeAddOffsetToSP(opcode)
		return nil
	} else if opcode&0xf000 == 0xa000 {
		// format 12 - Load address
		arm.executeLoadAddress(opcode)
		return nil
	} else if opcode&0xf000 == 0x9000 {
		// format 11 - SP-relative load/store
		return arm.executeSPRelativeLoadStore(opcode)
	} else if opcode&0xf000 == 0x8000 {
		// format 10 - Load/store halfword
		return arm.executeLoadStoreHalfword(opcode)
	} else if opcode&0xe000 == 0x6000 {
		// format 9 - Load/store with immediate offset
		return arm.executeLoadStoreWithImmOffset(opcode)
	} else if opcode&0xf200 == 0x5200 {
		// format 8 - Load/store sign-extended byte/halfword
		return arm.executeLoadStoreSignExtendedByteHalford(opcode)
	} else if opcode&0xf200 == 0x5000 {
		// format 7 - Load/store with register offset
		return arm.executeLoadStoreWithRegisterOffset(opcode)
	} else if opcode&0xf800 == 0x4800 {
		// format 6 - PC-relative load
		return arm.executePCrelativeLoad(opcode)
	} else if opcode&0xfc00 == 0x4400 {
		// format 5 - Hi register operations/branch exchange
		return arm.executeHiRegisterOps(opcode)
	} else if opcode&0xfc00 == 0x4000 {
		// format 4 - ALU operations
		arm.executeALUoperations(opcode)
		return nil
	} else if opcode&0xe000 == 0x2000 {
		// format 3 - Move/compare/add/subtract immediate
		arm.executeMovCmpAddSubImm(opcode)
		return nil
	} else if opcode&0xf800 == 0x1800 {
		// format 2 - Add/subtract
		arm.executeAddSubtract(opcode)
		return nil
	} else if opcode&0xe000 == 0x0000 {
		// format 1 - Move shifted register
		arm.executeMoveShiftedRegister(opcode)
		return nil
	}

	return arm.undefined(opcode)
}

func (arm *ARM) undefined(opcode uint16) error {
	return curated.Errorf(FaultError, fmt.Sprintf("undefined instruction (0x%04x at 0x%08x)", opcode, arm.instructionPC))
}

func (arm *ARM) executeMoveShiftedRegister(opcode uint16) {
	op := (opcode & 0x1800) >> 11
	shift := uint32((opcode & 0x7c0) >> 6)
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07

	src := arm.registers[srcReg]

	switch op {
	case 0b00:
		// LSL. a shift of zero leaves the carry flag unaffected
		if shift > 0 {
			arm.status.carry = (src>>(32-shift))&0x01 == 0x01
			src <<= shift
		}
	case 0b01:
		// LSR. a shift of zero means a shift of 32
		if shift == 0 {
			arm.status.carry = src&0x80000000 == 0x80000000
			src = 0
		} else {
			arm.status.carry = (src>>(shift-1))&0x01 == 0x01
			src >>= shift
		}
	case 0b10:
		// ASR. a shift of zero means a shift of 32
		if shift == 0 {
			arm.status.carry = src&0x80000000 == 0x80000000
			if arm.status.carry {
				src = 0xffffffff
			} else {
				src = 0
			}
		} else {
			arm.status.carry = (src>>(shift-1))&0x01 == 0x01
			src = uint32(int32(src) >> shift)
		}
	}

	arm.registers[destReg] = src
	arm.status.isZero(src)
	arm.status.isNegative(src)
}

func (arm *ARM) executeAddSubtract(opcode uint16) {
	immediate := opcode&0x0400 == 0x0400
	subtract := opcode&0x0200 == 0x0200
	imm := uint32((opcode & 0x01c0) >> 6)
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07

	val := imm
	if !immediate {
		val = arm.registers[imm]
	}

	a := arm.registers[srcReg]
	if subtract {
		arm.status.setCarry(a, ^val, 1)
		arm.status.setOverflow(a, ^val, 1)
		arm.registers[destReg] = a - val
	} else {
		arm.status.setCarry(a, val, 0)
		arm.status.setOverflow(a, val, 0)
		arm.registers[destReg] = a + val
	}

	arm.status.isZero(arm.registers[destReg])
	arm.status.isNegative(arm.registers[destReg])
}

func (arm *ARM) executeMovCmpAddSubImm(opcode uint16) {
	op := (opcode & 0x1800) >> 11
	destReg := (opcode & 0x0700) >> 8
	imm := uint32(opcode & 0x00ff)

	a := arm.registers[destReg]

	switch op {
	case 0b00:
		// MOV does not affect the carry or overflow flags
		arm.registers[destReg] = imm
		arm.status.isZero(imm)
		arm.status.isNegative(imm)
	case 0b01:
		arm.status.setCarry(a, ^imm, 1)
		arm.status.setOverflow(a, ^imm, 1)
		arm.status.isZero(a - imm)
		arm.status.isNegative(a - imm)
	case 0b10:
		arm.status.setCarry(a, imm, 0)
		arm.status.setOverflow(a, imm, 0)
		arm.registers[destReg] = a + imm
		arm.status.isZero(arm.registers[destReg])
		arm.status.isNegative(arm.registers[destReg])
	case 0b11:
		arm.status.setCarry(a, ^imm, 1)
		arm.status.setOverflow(a, ^imm, 1)
		arm.registers[destReg] = a - imm
		arm.status.isZero(arm.registers[destReg])
		arm.status.isNegative(arm.registers[destReg])
	}
}

// shift operations with the shift amount held in a register. the bottom byte
// of the register is the shift amount
func (arm *ARM) shiftByRegister(op uint16, val uint32, shift uint32) uint32 {
	if shift == 0 {
		return val
	}

	switch op {
	case 0b0010:
		// LSL
		if shift < 32 {
			arm.status.carry = (val>>(32-shift))&0x01 == 0x01
			return val << shift
		}
		arm.status.carry = shift == 32 && val&0x01 == 0x01
		return 0
	case 0b0011:
		// LSR
		if shift < 32 {
			arm.status.carry = (val>>(shift-1))&0x01 == 0x01
			return val >> shift
		}
		arm.status.carry = shift == 32 && val&0x80000000 == 0x80000000
		return 0
	case 0b0100:
		// ASR
		if shift < 32 {
			arm.status.carry = (val>>(shift-1))&0x01 == 0x01
			return uint32(int32(val) >> shift)
		}
		arm.status.carry = val&0x80000000 == 0x80000000
		if arm.status.carry {
			return 0xffffffff
		}
		return 0
	case 0b0111:
		// ROR
		shift &= 0x1f
		if shift > 0 {
			val = (val >> shift) | (val << (32 - shift))
		}
		arm.status.carry = val&0x80000000 == 0x80000000
		return val
	}

	return val
}

func (arm *ARM) executeALUoperations(opcode uint16) {
	op := (opcode & 0x03c0) >> 6
	srcReg := (opcode & 0x38) >> 3
	destReg := opcode & 0x07

	a := arm.registers[destReg]
	b := arm.registers[srcReg]

	var r uint32
	write := true

	switch op {
	case 0b0000:
		// AND
		r = a & b
	case 0b0001:
		// EOR
		r = a ^ b
	case 0b0010, 0b0011, 0b0100, 0b0111:
		// LSL, LSR, ASR, ROR
		r = arm.shiftByRegister(op, a, b&0xff)
		arm.cycles++
	case 0b0101:
		// ADC
		var c uint32
		if arm.status.carry {
			c = 1
		}
		arm.status.setCarry(a, b, c)
		arm.status.setOverflow(a, b, c)
		r = a + b + c
	case 0b0110:
		// SBC
		var c uint32
		if arm.status.carry {
			c = 1
		}
		arm.status.setCarry(a, ^b, c)
		arm.status.setOverflow(a, ^b, c)
		r = a - b - 1 + c
	case 0b1000:
		// TST
		r = a & b
		write = false
	case 0b1001:
		// NEG
		arm.status.setCarry(0, ^b, 1)
		arm.status.setOverflow(0, ^b, 1)
		r = -b
	case 0b1010:
		// CMP
		arm.status.setCarry(a, ^b, 1)
		arm.status.setOverflow(a, ^b, 1)
		r = a - b
		write = false
	case 0b1011:
		// CMN
		arm.status.setCarry(a, b, 0)
		arm.status.setOverflow(a, b, 0)
		r = a + b
		write = false
	case 0b1100:
		// ORR
		r = a | b
	case 0b1101:
		// MUL. the number of internal cycles depends on the magnitude of
		// the multiplier
		r = a * b
		switch {
		case a&0xffffff00 == 0 || a&0xffffff00 == 0xffffff00:
			arm.cycles++
		case a&0xffff0000 == 0 || a&0xffff0000 == 0xffff0000:
			arm.cycles += 2
		case a&0xff000000 == 0 || a&0xff000000 == 0xff000000:
			arm.cycles += 3
		default:
			arm.cycles += 4
		}
	case 0b1110:
		// BIC
		r = a &^ b
	case 0b1111:
		// MVN
		r = ^b
	}

	if write {
		arm.registers[destReg] = r
	}
	arm.status.isZero(r)
	arm.status.isNegative(r)
}

func (arm *ARM) executeHiRegisterOps(opcode uint16) error {
	op := (opcode & 0x0300) >> 8
	hi1 := opcode&0x0080 == 0x0080
	hi2 := opcode&0x0040 == 0x0040
	srcReg := (opcode & 0x0038) >> 3
	destReg := opcode & 0x0007

	if hi1 {
		destReg += 8
	}
	if hi2 {
		srcReg += 8
	}

	src := arm.registers[srcReg]

	switch op {
	case 0b00:
		// ADD
		r := arm.registers[destReg] + src
		if destReg == rPC {
			arm.branch(r)
		} else {
			arm.registers[destReg] = r
		}
	case 0b01:
		// CMP
		a := arm.registers[destReg]
		arm.status.setCarry(a, ^src, 1)
		arm.status.setOverflow(a, ^src, 1)
		arm.status.isZero(a - src)
		arm.status.isNegative(a - src)
	case 0b10:
		// MOV
		if destReg == rPC {
			arm.branch(src)
		} else {
			arm.registers[destReg] = src
		}
	case 0b11:
		// BX
		return arm.exchange(src)
	}

	return nil
}

func (arm *ARM) executePCrelativeLoad(opcode uint16) error {
	destReg := (opcode & 0x0700) >> 8
	imm := uint32(opcode&0x00ff) << 2

	// bit one of the PC is forced to zero so that the address is word
	// aligned
	addr := (arm.registers[rPC] &^ 0x02) + imm

	v, err := arm.read32(addr)
	if err != nil {
		return err
	}
	arm.registers[destReg] = v
	arm.cycles += 2

	return nil
}

func (arm *ARM) executeLoadStoreWithRegisterOffset(opcode uint16) error {
	load := opcode&0x0800 == 0x0800
	byteTransfer := opcode&0x0400 == 0x0400
	offsetReg := (opcode & 0x01c0) >> 6
	baseReg := (opcode & 0x0038) >> 3
	reg := opcode & 0x0007

	addr := arm.registers[baseReg] + arm.registers[offsetReg]

	return arm.transfer(addr, reg, load, byteTransfer)
}

// load or store a byte or a word.
func (arm *ARM) transfer(addr uint32, reg uint16, load bool, byteTransfer bool) error {
	if load {
		arm.cycles += 2
		if byteTransfer {
			v, err := arm.read8(addr)
			if err != nil {
				return err
			}
			arm.registers[reg] = uint32(v)
			return nil
		}
		v, err := arm.read32(addr)
		if err != nil {
			return err
		}
		arm.registers[reg] = v
		return nil
	}

	arm.cycles++
	if byteTransfer {
		return arm.write8(addr, uint8(arm.registers[reg]))
	}
	return arm.write32(addr, arm.registers[reg])
}

func (arm *ARM) executeLoadStoreSignExtendedByteHalford(opcode uint16) error {
	hi := opcode&0x0800 == 0x0800
	sign := opcode&0x0400 == 0x0400
	offsetReg := (opcode & 0x01c0) >> 6
	baseReg := (opcode & 0x0038) >> 3
	reg := opcode & 0x0007

	addr := arm.registers[baseReg] + arm.registers[offsetReg]

	if !sign {
		if hi {
			// LDRH
			v, err := arm.read16(addr)
			if err != nil {
				return err
			}
			arm.registers[reg] = uint32(v)
			arm.cycles += 2
			return nil
		}

		// STRH
		arm.cycles++
		return arm.write16(addr, uint16(arm.registers[reg]))
	}

	arm.cycles += 2

	if hi {
		// LDSH
		v, err := arm.read16(addr)
		if err != nil {
			return err
		}
		arm.registers[reg] = uint32(int32(int16(v)))
		return nil
	}

	// LDSB
	v, err := arm.read8(addr)
	if err != nil {
		return err
	}
	arm.registers[reg] = uint32(int32(int8(v)))
	return nil
}

func (arm *ARM) executeLoadStoreWithImmOffset(opcode uint16) error {
	byteTransfer := opcode&0x1000 == 0x1000
	load := opcode&0x0800 == 0x0800
	offset := uint32((opcode & 0x07c0) >> 6)
	baseReg := (opcode & 0x0038) >> 3
	reg := opcode & 0x0007

	// word transfers have a word offset
	if !byteTransfer {
		offset <<= 2
	}

	return arm.transfer(arm.registers[baseReg]+offset, reg, load, byteTransfer)
}

func (arm *ARM) executeLoadStoreHalfword(opcode uint16) error {
	load := opcode&0x0800 == 0x0800
	offset := uint32((opcode&0x07c0)>>6) << 1
	baseReg := (opcode & 0x0038) >> 3
	reg := opcode & 0x0007

	addr := arm.registers[baseReg] + offset

	if load {
		v, err := arm.read16(addr)
		if err != nil {
			return err
		}
		arm.registers[reg] = uint32(v)
		arm.cycles += 2
		return nil
	}

	arm.cycles++
	return arm.write16(addr, uint16(arm.registers[reg]))
}

func (arm *ARM) executeSPRelativeLoadStore(opcode uint16) error {
	load := opcode&0x0800 == 0x0800
	reg := (opcode & 0x0700) >> 8
	offset := uint32(opcode&0x00ff) << 2

	return arm.transfer(arm.registers[rSP]+offset, reg, load, false)
}

func (arm *ARM) executeLoadAddress(opcode uint16) {
	sp := opcode&0x0800 == 0x0800
	destReg := (opcode & 0x0700) >> 8
	offset := uint32(opcode&0x00ff) << 2

	if sp {
		arm.registers[destReg] = arm.registers[rSP] + offset
	} else {
		arm.registers[destReg] = (arm.registers[rPC] &^ 0x02) + offset
	}
}

func (arm *ARM) executeAddOffsetToSP(opcode uint16) {
	negative := opcode&0x0080 == 0x0080
	offset := uint32(opcode&0x007f) << 2

	if negative {
		arm.registers[rSP] -= offset
	} else {
		arm.registers[rSP] += offset
	}
}

func (arm *ARM) executePushPopRegisters(opcode uint16) error {
	pop := opcode&0x0800 == 0x0800
	pclr := opcode&0x0100 == 0x0100
	regList := uint8(opcode & 0x00ff)

	if pop {
		addr := arm.registers[rSP]
		for i := uint16(0); i <= 7; i++ {
			if regList&(0x01<<i) == 0 {
				continue
			}
			v, err := arm.read32(addr)
			if err != nil {
				return err
			}
			arm.registers[i] = v
			addr += 4
			arm.cycles++
		}

		if pclr {
			v, err := arm.read32(addr)
			if err != nil {
				return err
			}
			addr += 4
			arm.registers[rSP] = addr
			arm.cycles++

			// popping the PC does not exchange instruction set
			if v&^0x01 == ExitAddress {
				arm.finished = true
				arm.branched = true
				return nil
			}
			arm.branch(v)
			return nil
		}

		arm.registers[rSP] = addr
		arm.cycles++
		return nil
	}

	// the lowest register is stored at the lowest address
	n := uint32(countBits(regList))
	if pclr {
		n++
	}
	addr := arm.registers[rSP] - (n * 4)
	arm.registers[rSP] = addr

	for i := uint16(0); i <= 7; i++ {
		if regList&(0x01<<i) == 0 {
			continue
		}
		if err := arm.write32(addr, arm.registers[i]); err != nil {
			return err
		}
		addr += 4
		arm.cycles++
	}

	if pclr {
		if err := arm.write32(addr, arm.registers[rLR]); err != nil {
			return err
		}
		arm.cycles++
	}

	return nil
}

func (arm *ARM) executeMultipleLoadStore(opcode uint16) error {
	load := opcode&0x0800 == 0x0800
	baseReg := (opcode & 0x0700) >> 8
	regList := uint8(opcode & 0x00ff)

	addr := arm.registers[baseReg]

	// write back happens before the transfer so that a load of the base
	// register takes precedence
	arm.registers[baseReg] = addr + uint32(countBits(regList))*4

	for i := uint16(0); i <= 7; i++ {
		if regList&(0x01<<i) == 0 {
			continue
		}
		if load {
			v, err := arm.read32(addr)
			if err != nil {
				return err
			}
			arm.registers[i] = v
		} else {
			if err := arm.write32(addr, arm.registers[i]); err != nil {
				return err
			}
		}
		addr += 4
		arm.cycles++
	}

	if load {
		arm.cycles++
	}

	return nil
}

func (arm *ARM) executeConditionalBranch(opcode uint16) error {
	cond := uint8((opcode & 0x0f00) >> 8)
	offset := uint32(opcode & 0x00ff)

	ok, err := arm.status.condition(cond)
	if err != nil {
		return arm.undefined(opcode)
	}
	if !ok {
		return nil
	}

	// two's complement nine bit offset
	offset <<= 1
	if offset&0x100 == 0x100 {
		offset |= 0xfffffe00
	}

	arm.branch(arm.registers[rPC] + offset)
	return nil
}

func (arm *ARM) executeUnconditionalBranch(opcode uint16) {
	offset := uint32(opcode&0x07ff) << 1

	// two's complement twelve bit offset
	if offset&0x800 == 0x800 {
		offset |= 0xfffff000
	}

	arm.branch(arm.registers[rPC] + offset)
}

func (arm *ARM) executeLongBranchWithLink(opcode uint16) {
	low := opcode&0x0800 == 0x0800
	offset := uint32(opcode & 0x07ff)

	if !low {
		// first instruction. the high part of the offset is sign extended
		// and added to the PC
		offset <<= 12
		if offset&0x400000 == 0x400000 {
			offset |= 0xff800000
		}
		arm.registers[rLR] = arm.registers[rPC] + offset
		return
	}

	// second instruction. the return address is the instruction following
	// this one, with bit zero set to indicate Thumb state
	target := arm.registers[rLR] + (offset << 1)
	arm.registers[rLR] = (arm.instructionPC + 2) | 0x01
	arm.branch(target)
}

func countBits(v uint8) int {
	n := 0
	for ; v != 0; v &= v - 1 {
		n++
	}
	return n
}
