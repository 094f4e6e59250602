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

// Package cpu emulates the 6507 microprocessor found in the Atari VCS. The
// 6507 is a 6502 with a reduced address bus and no interrupt lines.
//
// Emulation is cycle-by-cycle. Each call to Cycle() performs exactly one bus
// access, whether that be the fetch of an opcode, the read of an operand, a
// dummy read or a write. The IsFetching() function indicates whether the CPU
// is at an instruction boundary.
//
// Other chips can stop the CPU with Halt(). This is how the RDY line is driven
// by the TIA when WSYNC is written to. A halted CPU performs no bus access
// until Resume() is called and then continues with the next cycle of the
// instruction that was in progress.
//
// Undefined opcodes are passed to the function specified with
// SetInvalidInstructionHandler(). If no function has been specified then an
// undefined opcode is an error.
package cpu
