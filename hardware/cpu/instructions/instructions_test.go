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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher2600core/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2600core/test"
)

func TestDocumentedCount(t *testing.T) {
	var documented, undocumented int
	for i, defn := range instructions.Definitions {
		if defn == nil {
			continue
		}
		test.ExpectEquality(t, int(defn.OpCode), i)
		if defn.Undocumented {
			undocumented++
		} else {
			documented++
		}
	}
	test.ExpectEquality(t, documented, 151)
	test.ExpectInequality(t, undocumented, 0)
}

func TestIrregularEncodings(t *testing.T) {
	// STA immediate does not exist
	test.ExpectSuccess(t, instructions.Definitions[0x89] == nil)

	// BRK is a valid instruction
	test.DemandSuccess(t, instructions.Definitions[0x00] != nil)
	test.ExpectEquality(t, instructions.Definitions[0x00].Operator, instructions.Brk)
	test.ExpectEquality(t, instructions.Definitions[0x00].Cycles, 7)

	// JAM opcodes are invalid
	for _, o := range []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xb2, 0xd2, 0xf2} {
		test.ExpectSuccess(t, instructions.Definitions[o] == nil, o)
	}

	jmp := instructions.Definitions[0x6c]
	test.DemandSuccess(t, jmp != nil)
	test.ExpectEquality(t, jmp.AddressingMode, instructions.Indirect)
	test.ExpectEquality(t, jmp.Bytes, 3)
}

func TestPageSensitivity(t *testing.T) {
	// read instructions with an indexed mode are page sensitive
	test.ExpectSuccess(t, instructions.Definitions[0xbd].PageSensitive)
	test.ExpectSuccess(t, instructions.Definitions[0xb9].PageSensitive)
	test.ExpectSuccess(t, instructions.Definitions[0xb1].PageSensitive)

	// stores and RMW are not
	test.ExpectFailure(t, instructions.Definitions[0x9d].PageSensitive)
	test.ExpectFailure(t, instructions.Definitions[0x91].PageSensitive)
	test.ExpectFailure(t, instructions.Definitions[0xfe].PageSensitive)

	// zero page indexing never crosses a page
	test.ExpectFailure(t, instructions.Definitions[0xb5].PageSensitive)

	// branches are
	test.ExpectSuccess(t, instructions.Definitions[0xd0].IsBranch())
	test.ExpectSuccess(t, instructions.Definitions[0xd0].PageSensitive)
}
