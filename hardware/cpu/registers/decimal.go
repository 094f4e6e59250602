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

package registers

// AddDecimal adds a BCD encoded value to the register. Returns the flags
// as they should be set on the NMOS 6502.
//
// The zero flag is taken from the binary result. The sign and overflow flags
// are taken from the intermediate result, after adjustment of the low nibble
// but before adjustment of the high nibble.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c uint16
	if carry {
		c = 1
	}

	a := uint16(r.value)
	v := uint16(val)

	zero = uint8(a+v+c) == 0

	tmp := (a & 0x0f) + (v & 0x0f) + c
	if tmp > 0x09 {
		tmp += 0x06
	}
	if tmp <= 0x0f {
		tmp = (tmp & 0x0f) + (a & 0xf0) + (v & 0xf0)
	} else {
		tmp = (tmp & 0x0f) + (a & 0xf0) + (v & 0xf0) + 0x10
	}

	sign = tmp&0x80 == 0x80
	overflow = (a^tmp)&0x80 == 0x80 && (a^v)&0x80 == 0x00

	if tmp&0x1f0 > 0x90 {
		tmp += 0x60
	}
	rcarry = tmp&0xff0 > 0xf0

	r.value = uint8(tmp)

	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts a BCD encoded value from the register. Returns
// the flags as they should be set on the NMOS 6502.
//
// All flags are taken from the equivalent binary subtraction. Only the
// value in the register is affected by decimal mode.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var borrow uint16
	if !carry {
		borrow = 1
	}

	a := uint16(r.value)
	v := uint16(val)

	bin := a - v - borrow
	zero = uint8(bin) == 0
	sign = bin&0x80 == 0x80
	overflow = (a^bin)&0x80 == 0x80 && (a^v)&0x80 == 0x80
	rcarry = bin < 0x100

	tmp := (a & 0x0f) - (v & 0x0f) - borrow
	if tmp&0x10 == 0x10 {
		tmp = ((tmp - 0x06) & 0x0f) | ((a & 0xf0) - (v & 0xf0) - 0x10)
	} else {
		tmp = (tmp & 0x0f) | ((a & 0xf0) - (v & 0xf0))
	}
	if tmp&0x100 == 0x100 {
		tmp -= 0x60
	}

	r.value = uint8(tmp)

	return rcarry, zero, overflow, sign
}
