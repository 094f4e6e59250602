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

// Operator is the mnemonic of an instruction.
type Operator string

// List of operators. The second group are the undocumented operators that
// are reliable enough on the NMOS 6502 for programs to use.
const (
	Nop Operator = "NOP"
	Adc Operator = "ADC"
	And Operator = "AND"
	Asl Operator = "ASL"
	Bcc Operator = "BCC"
	Bcs Operator = "BCS"
	Beq Operator = "BEQ"
	Bit Operator = "BIT"
	Bmi Operator = "BMI"
	Bne Operator = "BNE"
	Bpl Operator = "BPL"
	Brk Operator = "BRK"
	Bvc Operator = "BVC"
	Bvs Operator = "BVS"
	Clc Operator = "CLC"
	Cld Operator = "CLD"
	Cli Operator = "CLI"
	Clv Operator = "CLV"
	Cmp Operator = "CMP"
	Cpx Operator = "CPX"
	Cpy Operator = "CPY"
	Dec Operator = "DEC"
	Dex Operator = "DEX"
	Dey Operator = "DEY"
	Eor Operator = "EOR"
	Inc Operator = "INC"
	Inx Operator = "INX"
	Iny Operator = "INY"
	Jmp Operator = "JMP"
	Jsr Operator = "JSR"
	Lda Operator = "LDA"
	Ldx Operator = "LDX"
	Ldy Operator = "LDY"
	Lsr Operator = "LSR"
	Ora Operator = "ORA"
	Pha Operator = "PHA"
	Php Operator = "PHP"
	Pla Operator = "PLA"
	Plp Operator = "PLP"
	Rol Operator = "ROL"
	Ror Operator = "ROR"
	Rti Operator = "RTI"
	Rts Operator = "RTS"
	Sbc Operator = "SBC"
	Sec Operator = "SEC"
	Sed Operator = "SED"
	Sei Operator = "SEI"
	Sta Operator = "STA"
	Stx Operator = "STX"
	Sty Operator = "STY"
	Tax Operator = "TAX"
	Tay Operator = "TAY"
	Tsx Operator = "TSX"
	Txa Operator = "TXA"
	Txs Operator = "TXS"
	Tya Operator = "TYA"

	Lax Operator = "LAX"
	Sax Operator = "SAX"
	Dcp Operator = "DCP"
	Isc Operator = "ISC"
	Slo Operator = "SLO"
	Rla Operator = "RLA"
	Sre Operator = "SRE"
	Rra Operator = "RRA"
	Anc Operator = "ANC"
	Alr Operator = "ALR"
	Arr Operator = "ARR"
	Axs Operator = "AXS"
)
