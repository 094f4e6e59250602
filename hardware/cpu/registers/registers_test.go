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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher2600core/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2600core/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "A")
	test.ExpectEquality(t, r.Label(), "A")
	test.ExpectSuccess(t, r.IsZero())

	carry, overflow := r.Add(1, false)
	test.ExpectEquality(t, r.Value(), 1)
	test.ExpectFailure(t, carry)
	test.ExpectFailure(t, overflow)

	r.Load(0x7f)
	carry, overflow = r.Add(1, false)
	test.ExpectEquality(t, r.Value(), 0x80)
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, overflow)
	test.ExpectSuccess(t, r.IsNegative())

	r.Load(0xff)
	carry, overflow = r.Add(1, false)
	test.ExpectEquality(t, r.Value(), 0x00)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)

	// subtract with carry set means no borrow
	r.Load(0x05)
	carry, _ = r.Subtract(0x03, true)
	test.ExpectEquality(t, r.Value(), 0x02)
	test.ExpectSuccess(t, carry)

	r.Load(0x03)
	carry, _ = r.Subtract(0x05, true)
	test.ExpectEquality(t, r.Value(), 0xfe)
	test.ExpectFailure(t, carry)

	r.Load(0x03)
	carry, _ = r.Subtract(0x02, false)
	test.ExpectEquality(t, r.Value(), 0x00)
	test.ExpectSuccess(t, carry)
}

func TestShiftAndRotate(t *testing.T) {
	r := registers.NewRegister(0x81, "A")
	test.ExpectSuccess(t, r.ASL())
	test.ExpectEquality(t, r.Value(), 0x02)

	r.Load(0x81)
	test.ExpectSuccess(t, r.LSR())
	test.ExpectEquality(t, r.Value(), 0x40)

	r.Load(0x80)
	test.ExpectSuccess(t, r.ROL(true))
	test.ExpectEquality(t, r.Value(), 0x01)

	r.Load(0x01)
	test.ExpectSuccess(t, r.ROR(true))
	test.ExpectEquality(t, r.Value(), 0x80)

	r.Load(0x02)
	test.ExpectFailure(t, r.ROR(false))
	test.ExpectEquality(t, r.Value(), 0x01)
}

func TestDecimalAdd(t *testing.T) {
	r := registers.NewRegister(0x25, "A")
	carry, zero, _, _ := r.AddDecimal(0x48, false)
	test.ExpectEquality(t, r.Value(), 0x73)
	test.ExpectFailure(t, carry)
	test.ExpectFailure(t, zero)

	// sum exceeds 99 so carry is set and the value wraps
	r.Load(0x58)
	carry, _, _, _ = r.AddDecimal(0x46, false)
	test.ExpectEquality(t, r.Value(), 0x04)
	test.ExpectSuccess(t, carry)

	r.Load(0x99)
	carry, _, _, _ = r.AddDecimal(0x00, true)
	test.ExpectEquality(t, r.Value(), 0x00)
	test.ExpectSuccess(t, carry)

	// every pair of BCD values that does not exceed 99
	for a := 0; a <= 99; a++ {
		for b := 0; a+b <= 99; b++ {
			r.Load(uint8((a/10)<<4 | a%10))
			carry, _, _, _ := r.AddDecimal(uint8((b/10)<<4|b%10), false)
			s := a + b
			test.ExpectEquality(t, r.Value(), uint8((s/10)<<4|s%10))
			test.ExpectFailure(t, carry)
		}
	}
}

func TestDecimalSubtract(t *testing.T) {
	r := registers.NewRegister(0x46, "A")
	carry, _, _, _ := r.SubtractDecimal(0x12, true)
	test.ExpectEquality(t, r.Value(), 0x34)
	test.ExpectSuccess(t, carry)

	r.Load(0x40)
	carry, _, _, _ = r.SubtractDecimal(0x13, true)
	test.ExpectEquality(t, r.Value(), 0x27)
	test.ExpectSuccess(t, carry)

	r.Load(0x12)
	carry, _, _, _ = r.SubtractDecimal(0x21, true)
	test.ExpectEquality(t, r.Value(), 0x91)
	test.ExpectFailure(t, carry)

	r.Load(0x32)
	carry, zero, _, _ := r.SubtractDecimal(0x31, false)
	test.ExpectEquality(t, r.Value(), 0x00)
	test.ExpectSuccess(t, carry)
	test.ExpectSuccess(t, zero)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.Value(), registers.Unused)
	test.ExpectEquality(t, sr.String(), "sv-bdizc")

	sr.Load(0xff)
	test.ExpectEquality(t, sr.Value(), 0xff)
	test.ExpectEquality(t, sr.String(), "SV-BDIZC")

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), registers.Unused|registers.InterruptDisable)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x10fe)
	pc.Increment()
	test.ExpectEquality(t, pc.Address(), 0x10ff)
	test.ExpectSuccess(t, pc.Add(1))
	test.ExpectEquality(t, pc.Address(), 0x1100)
	test.ExpectSuccess(t, pc.Add(-1))
	test.ExpectEquality(t, pc.Address(), 0x10ff)
	test.ExpectFailure(t, pc.Add(-0x7f))
	test.ExpectEquality(t, pc.Address(), 0x1080)
}
