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
	"strings"
)

// the condition flags of the CPSR.
type status struct {
	negative bool
	zero     bool
	overflow bool
	carry    bool
}

func (sr status) String() string {
	s := strings.Builder{}
	if sr.negative {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if sr.zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}
	if sr.overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}
	return s.String()
}

func (sr *status) reset() {
	sr.negative = false
	sr.zero = false
	sr.overflow = false
	sr.carry = false
}

func (sr *status) isNegative(a uint32) {
	sr.negative = a&0x80000000 == 0x80000000
}

func (sr *status) isZero(a uint32) {
	sr.zero = a == 0x00
}

// set the carry flag for the addition a + b + c.
func (sr *status) setCarry(a, b, c uint32) {
	sr.carry = uint64(a)+uint64(b)+uint64(c) > 0xffffffff
}

// set the overflow flag for the addition a + b + c.
func (sr *status) setOverflow(a, b, c uint32) {
	r := a + b + c
	sr.overflow = (a^r)&(b^r)&0x80000000 == 0x80000000
}

// condition returns true if the four bit condition code is satisfied.
func (sr status) condition(cond uint8) (bool, error) {
	switch cond {
	case 0b0000:
		return sr.zero, nil
	case 0b0001:
		return !sr.zero, nil
	case 0b0010:
		return sr.carry, nil
	case 0b0011:
		return !sr.carry, nil
	case 0b0100:
		return sr.negative, nil
	case 0b0101:
		return !sr.negative, nil
	case 0b0110:
		return sr.overflow, nil
	case 0b0111:
		return !sr.overflow, nil
	case 0b1000:
		return sr.carry && !sr.zero, nil
	case 0b1001:
		return !sr.carry || sr.zero, nil
	case 0b1010:
		return sr.negative == sr.overflow, nil
	case 0b1011:
		return sr.negative != sr.overflow, nil
	case 0b1100:
		return !sr.zero && sr.negative == sr.overflow, nil
	case 0b1101:
		return sr.zero || sr.negative != sr.overflow, nil
	}
	return false, fmt.Errorf("undefined condition (%04b)", cond)
}
