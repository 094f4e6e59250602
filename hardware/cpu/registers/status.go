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

import (
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags as a string of letters. Upper case letters
// indicate a set flag. The unused bit is always shown as a dash.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	f := func(b bool, c rune) {
		if b {
			s.WriteRune(c - 32)
		} else {
			s.WriteRune(c)
		}
	}

	f(sr.Sign, 's')
	f(sr.Overflow, 'v')
	s.WriteRune('-')
	f(sr.Break, 'b')
	f(sr.DecimalMode, 'd')
	f(sr.InterruptDisable, 'i')
	f(sr.Zero, 'z')
	f(sr.Carry, 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	*sr = StatusRegister{}
	sr.InterruptDisable = true
}

// Value converts the StatusRegister to a byte. The unused bit (bit 5) is
// always set.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= Sign
	}
	if sr.Overflow {
		v |= Overflow
	}
	if sr.Break {
		v |= Break
	}
	if sr.DecimalMode {
		v |= DecimalMode
	}
	if sr.InterruptDisable {
		v |= InterruptDisable
	}
	if sr.Zero {
		v |= Zero
	}
	if sr.Carry {
		v |= Carry
	}

	return v | Unused
}

// Load sets the flags from a byte.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&Sign == Sign
	sr.Overflow = v&Overflow == Overflow
	sr.Break = v&Break == Break
	sr.DecimalMode = v&DecimalMode == DecimalMode
	sr.InterruptDisable = v&InterruptDisable == InterruptDisable
	sr.Zero = v&Zero == Zero
	sr.Carry = v&Carry == Carry
}

// Bit masks for the flags in the status register.
const (
	Carry            uint8 = 0x01
	Zero             uint8 = 0x02
	InterruptDisable uint8 = 0x04
	DecimalMode      uint8 = 0x08
	Break            uint8 = 0x10
	Unused           uint8 = 0x20
	Overflow         uint8 = 0x40
	Sign             uint8 = 0x80
)
