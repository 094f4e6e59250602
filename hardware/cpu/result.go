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
	"fmt"

	"github.com/jetsetilly/gopher2600core/hardware/cpu/instructions"
)

// Result records the outcome of the most recent instruction.
type Result struct {
	// the address of the opcode
	Address uint16

	Defn *instructions.Definition

	// the operand of the instruction. only valid once Final is true
	InstructionData uint16

	// number of cycles used by the instruction so far
	Cycles int

	// whether an indexed address or branch crossed a page. always false for
	// instructions with a fixed cycle count
	PageFault bool

	// whether the instruction has completed
	Final bool
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x ???", r.Address)
	}

	switch r.Defn.Bytes {
	case 2:
		return fmt.Sprintf("%04x %s %02x (%d)", r.Address, r.Defn.Operator, r.InstructionData, r.Cycles)
	case 3:
		return fmt.Sprintf("%04x %s %04x (%d)", r.Address, r.Defn.Operator, r.InstructionData, r.Cycles)
	}

	return fmt.Sprintf("%04x %s (%d)", r.Address, r.Defn.Operator, r.Cycles)
}
