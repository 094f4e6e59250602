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

// store returns the value written by a write instruction.
func (mc *CPU) store() uint8 {
	switch mc.defn.Operator {
	case instructions.Sta:
		return mc.A.Value()
	case instructions.Stx:
		return mc.X.Value()
	case instructions.Sty:
		return mc.Y.Value()
	case instructions.Sax:
		return mc.A.Value() & mc.X.Value()
	}
	return 0
}

func (mc *CPU) adc(v uint8) {
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.AddDecimal(v, mc.Status.Carry)
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(v, mc.Status.Carry)
	mc.setNZ(mc.A.Value())
}

func (mc *CPU) sbc(v uint8) {
	if mc.Status.DecimalMode {
		mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.SubtractDecimal(v, mc.Status.Carry)
		return
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(v, mc.Status.Carry)
	mc.setNZ(mc.A.Value())
}

// compare sets the flags as though v had been subtracted from r. carry is set
// when there is no borrow.
func (mc *CPU) compare(r uint8, v uint8) {
	mc.Status.Carry = r >= v
	mc.setNZ(r - v)
}

// executeRead performs the operation of a read instruction on a value that
// has been read from memory or from the instruction stream.
func (mc *CPU) executeRead(v uint8) {
	switch mc.defn.Operator {
	case instructions.Nop:

	case instructions.Lda:
		mc.A.Load(v)
		mc.setNZ(v)

	case instructions.Ldx:
		mc.X.Load(v)
		mc.setNZ(v)

	case instructions.Ldy:
		mc.Y.Load(v)
		mc.setNZ(v)

	case instructions.Lax:
		mc.A.Load(v)
		mc.X.Load(v)
		mc.setNZ(v)

	case instructions.Ora:
		mc.A.ORA(v)
		mc.setNZ(mc.A.Value())

	case instructions.And:
		mc.A.AND(v)
		mc.setNZ(mc.A.Value())

	case instructions.Eor:
		mc.A.EOR(v)
		mc.setNZ(mc.A.Value())

	case instructions.Adc:
		mc.adc(v)

	case instructions.Sbc:
		mc.sbc(v)

	case instructions.Cmp:
		mc.compare(mc.A.Value(), v)

	case instructions.Cpx:
		mc.compare(mc.X.Value(), v)

	case instructions.Cpy:
		mc.compare(mc.Y.Value(), v)

	case instructions.Bit:
		mc.Status.Zero = mc.A.Value()&v == 0
		mc.Status.Sign = v&0x80 == 0x80
		mc.Status.Overflow = v&0x40 == 0x40

	case instructions.Anc:
		mc.A.AND(v)
		mc.setNZ(mc.A.Value())
		mc.Status.Carry = mc.Status.Sign

	case instructions.Alr:
		mc.A.AND(v)
		mc.Status.Carry = mc.A.LSR()
		mc.setNZ(mc.A.Value())

	case instructions.Arr:
		mc.arr(v)

	case instructions.Axs:
		ax := mc.A.Value() & mc.X.Value()
		mc.Status.Carry = ax >= v
		mc.X.Load(ax - v)
		mc.setNZ(mc.X.Value())
	}
}

// the AND/ROR combination has unusual flag behaviour, particularly in decimal
// mode.
func (mc *CPU) arr(v uint8) {
	t := mc.A.Value() & v
	mc.A.Load(t)
	mc.A.ROR(mc.Status.Carry)
	r := mc.A.Value()

	if !mc.Status.DecimalMode {
		mc.setNZ(r)
		mc.Status.Carry = r&0x40 == 0x40
		mc.Status.Overflow = (r>>6)&0x01 != (r>>5)&0x01
		return
	}

	mc.Status.Sign = mc.Status.Carry
	mc.Status.Zero = r == 0
	mc.Status.Overflow = (t^r)&0x40 == 0x40

	if (t&0x0f)+(t&0x01) > 0x05 {
		r = (r & 0xf0) | ((r + 0x06) & 0x0f)
	}
	if uint16(t&0xf0)+uint16(t&0x10) > 0x50 {
		r += 0x60
		mc.Status.Carry = true
	} else {
		mc.Status.Carry = false
	}
	mc.A.Load(r)
}

// executeRMW performs the modification of a read-modify-write instruction.
// the undocumented instructions go on to use the result in an accumulator
// operation.
func (mc *CPU) executeRMW(v uint8) uint8 {
	r := mc.A
	r.Load(v)

	switch mc.defn.Operator {
	case instructions.Asl, instructions.Slo:
		mc.Status.Carry = r.ASL()
	case instructions.Lsr, instructions.Sre:
		mc.Status.Carry = r.LSR()
	case instructions.Rol, instructions.Rla:
		mc.Status.Carry = r.ROL(mc.Status.Carry)
	case instructions.Ror, instructions.Rra:
		mc.Status.Carry = r.ROR(mc.Status.Carry)
	case instructions.Inc, instructions.Isc:
		r.Load(v + 1)
	case instructions.Dec, instructions.Dcp:
		r.Load(v - 1)
	}

	result := r.Value()
	mc.setNZ(result)

	switch mc.defn.Operator {
	case instructions.Slo:
		mc.A.ORA(result)
		mc.setNZ(mc.A.Value())
	case instructions.Rla:
		mc.A.AND(result)
		mc.setNZ(mc.A.Value())
	case instructions.Sre:
		mc.A.EOR(result)
		mc.setNZ(mc.A.Value())
	case instructions.Rra:
		mc.adc(result)
	case instructions.Dcp:
		mc.compare(mc.A.Value(), result)
	case instructions.Isc:
		mc.sbc(result)
	}

	return result
}

// executeImplied performs the operation of an instruction that has no
// operand.
func (mc *CPU) executeImplied() {
	switch mc.defn.Operator {
	case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror:
		mc.A.Load(mc.executeRMW(mc.A.Value()))

	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Sei:
		mc.Status.InterruptDisable = true
	case instructions.Clv:
		mc.Status.Overflow = false
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setNZ(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setNZ(mc.Y.Value())
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setNZ(mc.A.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setNZ(mc.A.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setNZ(mc.X.Value())
	case instructions.Txs:
		// TXS does not affect the flags
		mc.SP.Load(mc.X.Value())

	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.setNZ(mc.X.Value())
	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.setNZ(mc.Y.Value())
	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.setNZ(mc.X.Value())
	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.setNZ(mc.Y.Value())
	}
}

// branchTaken returns true if the condition of the branch instruction is met.
func (mc *CPU) branchTaken() bool {
	switch mc.defn.Operator {
	case instructions.Bpl:
		return !mc.Status.Sign
	case instructions.Bmi:
		return mc.Status.Sign
	case instructions.Bvc:
		return !mc.Status.Overflow
	case instructions.Bvs:
		return mc.Status.Overflow
	case instructions.Bcc:
		return !mc.Status.Carry
	case instructions.Bcs:
		return mc.Status.Carry
	case instructions.Bne:
		return !mc.Status.Zero
	case instructions.Beq:
		return mc.Status.Zero
	}
	return false
}
