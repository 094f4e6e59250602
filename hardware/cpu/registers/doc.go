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

// Package registers implements the three types of register found in the 6507.
// The 8 bit general purpose registers (A, X, Y and the stack pointer) are
// instances of Register. The program counter is a ProgramCounter and the
// status flags are held in a StatusRegister.
//
// The arithmetic functions of the Register type return the carry and overflow
// flags rather than setting a StatusRegister directly. It is up to the CPU to
// decide what to do with them.
package registers
