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

// Package thumbulator emulates the Thumb instruction set of the ARM7TDMI
// processor found in the Harmony cartridge. Only Thumb state is emulated.
// Exchanging to ARM state either calls a TrapHandler, which emulates the
// driver function at that address, or ends execution and returns control to
// the 6507.
//
// The memory map is a simplified version of the LPC2103 used by the Harmony.
// ROM (flash) is mapped from ROMOrigin and RAM (SRAM) from RAMOrigin.
// Accesses to the peripheral region are ignored. Any other access is a fault.
//
// A program is given CycleBudget cycles in which to return. A fault aborts
// only the current invocation of Run().
package thumbulator
