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

package instructions

import (
	"fmt"
)

// Definition defines each instruction in the instruction set.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
	Undocumented   bool
}

func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// Definitions is indexed by opcode. A nil entry is an invalid opcode.
var Definitions [256]*Definition

// register a single definition. the number of bytes is implied by the
// addressing mode. page sensitivity is implied by the addressing mode and
// effect category.
func register(opcode uint8, operator Operator, mode AddressingMode, cycles int, effect EffectCategory) *Definition {
	if Definitions[opcode] != nil {
		panic(fmt.Sprintf("instructions: opcode %02x registered twice", opcode))
	}

	defn := &Definition{
		OpCode:         opcode,
		Operator:       operator,
		Bytes:          mode.Bytes(),
		Cycles:         cycles,
		AddressingMode: mode,
		Effect:         effect,
	}

	switch mode {
	case AbsoluteIndexedX, AbsoluteIndexedY, IndirectIndexed:
		defn.PageSensitive = effect == Read
	case Relative:
		defn.PageSensitive = true
	}

	Definitions[opcode] = defn
	return defn
}

func undocumented(opcode uint8, operator Operator, mode AddressingMode, cycles int, effect EffectCategory) {
	register(opcode, operator, mode, cycles, effect).Undocumented = true
}

// the standard arrangement of the eight addressing modes in the ALU group
// of instructions (ORA, AND, EOR, ADC, STA, LDA, CMP, SBC). STA has no
// immediate mode.
func aluGroup(base uint8, operator Operator, effect EffectCategory) {
	if effect == Write {
		register(base|0x04, operator, ZeroPage, 3, effect)
		register(base|0x14, operator, ZeroPageIndexedX, 4, effect)
		register(base|0x0c, operator, Absolute, 4, effect)
		register(base|0x1c, operator, AbsoluteIndexedX, 5, effect)
		register(base|0x18, operator, AbsoluteIndexedY, 5, effect)
		register(base|0x00, operator, IndexedIndirect, 6, effect)
		register(base|0x10, operator, IndirectIndexed, 6, effect)
		return
	}

	register(base|0x08, operator, Immediate, 2, effect)
	register(base|0x04, operator, ZeroPage, 3, effect)
	register(base|0x14, operator, ZeroPageIndexedX, 4, effect)
	register(base|0x0c, operator, Absolute, 4, effect)
	register(base|0x1c, operator, AbsoluteIndexedX, 4, effect)
	register(base|0x18, operator, AbsoluteIndexedY, 4, effect)
	register(base|0x00, operator, IndexedIndirect, 6, effect)
	register(base|0x10, operator, IndirectIndexed, 5, effect)
}

// the arrangement of the shift/rotate and increment/decrement instructions.
func rmwGroup(base uint8, operator Operator) {
	register(base|0x04, operator, ZeroPage, 5, RMW)
	register(base|0x14, operator, ZeroPageIndexedX, 6, RMW)
	register(base|0x0c, operator, Absolute, 6, RMW)
	register(base|0x1c, operator, AbsoluteIndexedX, 7, RMW)
}

// the arrangement of the undocumented RMW-then-ALU instructions.
func undocumentedRMWGroup(base uint8, operator Operator) {
	undocumented(base|0x04, operator, ZeroPage, 5, RMW)
	undocumented(base|0x14, operator, ZeroPageIndexedX, 6, RMW)
	undocumented(base|0x0c, operator, Absolute, 6, RMW)
	undocumented(base|0x1c, operator, AbsoluteIndexedX, 7, RMW)
	undocumented(base|0x18, operator, AbsoluteIndexedY, 7, RMW)
	undocumented(base|0x00, operator, IndexedIndirect, 8, RMW)
	undocumented(base|0x10, operator, IndirectIndexed, 8, RMW)
}

func init() {
	// the ALU group is the only part of the instruction set with a regular
	// encoding. STA immediate ($89) is deliberately left unregistered
	aluGroup(0x01, Ora, Read)
	aluGroup(0x21, And, Read)
	aluGroup(0x41, Eor, Read)
	aluGroup(0x61, Adc, Read)
	aluGroup(0x81, Sta, Write)
	aluGroup(0xa1, Lda, Read)
	aluGroup(0xc1, Cmp, Read)
	aluGroup(0xe1, Sbc, Read)

	// shift and rotate. accumulator forms are implied
	register(0x0a, Asl, Implied, 2, RMW)
	register(0x2a, Rol, Implied, 2, RMW)
	register(0x4a, Lsr, Implied, 2, RMW)
	register(0x6a, Ror, Implied, 2, RMW)
	rmwGroup(0x02, Asl)
	rmwGroup(0x22, Rol)
	rmwGroup(0x42, Lsr)
	rmwGroup(0x62, Ror)

	// increment and decrement memory
	rmwGroup(0xc2, Dec)
	rmwGroup(0xe2, Inc)

	// loads and stores of the index registers
	register(0xa2, Ldx, Immediate, 2, Read)
	register(0xa6, Ldx, ZeroPage, 3, Read)
	register(0xb6, Ldx, ZeroPageIndexedY, 4, Read)
	register(0xae, Ldx, Absolute, 4, Read)
	register(0xbe, Ldx, AbsoluteIndexedY, 4, Read)
	register(0xa0, Ldy, Immediate, 2, Read)
	register(0xa4, Ldy, ZeroPage, 3, Read)
	register(0xb4, Ldy, ZeroPageIndexedX, 4, Read)
	register(0xac, Ldy, Absolute, 4, Read)
	register(0xbc, Ldy, AbsoluteIndexedX, 4, Read)
	register(0x86, Stx, ZeroPage, 3, Write)
	register(0x96, Stx, ZeroPageIndexedY, 4, Write)
	register(0x8e, Stx, Absolute, 4, Write)
	register(0x84, Sty, ZeroPage, 3, Write)
	register(0x94, Sty, ZeroPageIndexedX, 4, Write)
	register(0x8c, Sty, Absolute, 4, Write)

	// compare index registers
	register(0xe0, Cpx, Immediate, 2, Read)
	register(0xe4, Cpx, ZeroPage, 3, Read)
	register(0xec, Cpx, Absolute, 4, Read)
	register(0xc0, Cpy, Immediate, 2, Read)
	register(0xc4, Cpy, ZeroPage, 3, Read)
	register(0xcc, Cpy, Absolute, 4, Read)

	register(0x24, Bit, ZeroPage, 3, Read)
	register(0x2c, Bit, Absolute, 4, Read)

	// branches
	register(0x10, Bpl, Relative, 2, Flow)
	register(0x30, Bmi, Relative, 2, Flow)
	register(0x50, Bvc, Relative, 2, Flow)
	register(0x70, Bvs, Relative, 2, Flow)
	register(0x90, Bcc, Relative, 2, Flow)
	register(0xb0, Bcs, Relative, 2, Flow)
	register(0xd0, Bne, Relative, 2, Flow)
	register(0xf0, Beq, Relative, 2, Flow)

	// jumps and subroutines
	register(0x4c, Jmp, Absolute, 3, Flow)
	register(0x6c, Jmp, Indirect, 5, Flow)
	register(0x20, Jsr, Absolute, 6, Subroutine)
	register(0x60, Rts, Implied, 6, Subroutine)
	register(0x00, Brk, Implied, 7, Interrupt)
	register(0x40, Rti, Implied, 6, Interrupt)

	// flags
	register(0x18, Clc, Implied, 2, Read)
	register(0x38, Sec, Implied, 2, Read)
	register(0x58, Cli, Implied, 2, Read)
	register(0x78, Sei, Implied, 2, Read)
	register(0xb8, Clv, Implied, 2, Read)
	register(0xd8, Cld, Implied, 2, Read)
	register(0xf8, Sed, Implied, 2, Read)

	// transfers
	register(0xaa, Tax, Implied, 2, Read)
	register(0xa8, Tay, Implied, 2, Read)
	register(0xba, Tsx, Implied, 2, Read)
	register(0x8a, Txa, Implied, 2, Read)
	register(0x9a, Txs, Implied, 2, Read)
	register(0x98, Tya, Implied, 2, Read)

	// index register arithmetic
	register(0xca, Dex, Implied, 2, Read)
	register(0x88, Dey, Implied, 2, Read)
	register(0xe8, Inx, Implied, 2, Read)
	register(0xc8, Iny, Implied, 2, Read)

	// stack
	register(0x48, Pha, Implied, 3, Write)
	register(0x08, Php, Implied, 3, Write)
	register(0x68, Pla, Implied, 4, Read)
	register(0x28, Plp, Implied, 4, Read)

	register(0xea, Nop, Implied, 2, Read)

	// undocumented NOPs. $89 is not included because it is the STA
	// immediate slot
	for _, o := range []uint8{0x1a, 0x3a, 0x5a, 0x7a, 0xda, 0xfa} {
		undocumented(o, Nop, Implied, 2, Read)
	}
	for _, o := range []uint8{0x80, 0x82, 0xc2, 0xe2} {
		undocumented(o, Nop, Immediate, 2, Read)
	}
	for _, o := range []uint8{0x04, 0x44, 0x64} {
		undocumented(o, Nop, ZeroPage, 3, Read)
	}
	for _, o := range []uint8{0x14, 0x34, 0x54, 0x74, 0xd4, 0xf4} {
		undocumented(o, Nop, ZeroPageIndexedX, 4, Read)
	}
	undocumented(0x0c, Nop, Absolute, 4, Read)
	for _, o := range []uint8{0x1c, 0x3c, 0x5c, 0x7c, 0xdc, 0xfc} {
		undocumented(o, Nop, AbsoluteIndexedX, 4, Read)
	}

	undocumented(0xa7, Lax, ZeroPage, 3, Read)
	undocumented(0xb7, Lax, ZeroPageIndexedY, 4, Read)
	undocumented(0xaf, Lax, Absolute, 4, Read)
	undocumented(0xbf, Lax, AbsoluteIndexedY, 4, Read)
	undocumented(0xa3, Lax, IndexedIndirect, 6, Read)
	undocumented(0xb3, Lax, IndirectIndexed, 5, Read)

	undocumented(0x87, Sax, ZeroPage, 3, Write)
	undocumented(0x97, Sax, ZeroPageIndexedY, 4, Write)
	undocumented(0x8f, Sax, Absolute, 4, Write)
	undocumented(0x83, Sax, IndexedIndirect, 6, Write)

	undocumentedRMWGroup(0x03, Slo)
	undocumentedRMWGroup(0x23, Rla)
	undocumentedRMWGroup(0x43, Sre)
	undocumentedRMWGroup(0x63, Rra)
	undocumentedRMWGroup(0xc3, Dcp)
	undocumentedRMWGroup(0xe3, Isc)

	undocumented(0x0b, Anc, Immediate, 2, Read)
	undocumented(0x2b, Anc, Immediate, 2, Read)
	undocumented(0x4b, Alr, Immediate, 2, Read)
	undocumented(0x6b, Arr, Immediate, 2, Read)
	undocumented(0xcb, Axs, Immediate, 2, Read)
	undocumented(0xeb, Sbc, Immediate, 2, Read)
}
