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

// Package bus connects the CPU to the three chips of the console: the TIA,
// the PIA and the cartridge. Every access made by the CPU passes through the
// Bus type which decides which chip is selected by the address, remembers the
// access and notifies any listeners.
//
// The snapshot of the most recent access is required by cartridges that
// bankswitch by watching the bus rather than by intercepting addresses in
// their own address space. These cartridges implement the Listener interface
// and are registered with AddListener().
//
// Errors raised by a chip are turned into a Trap. If a trap handler has been
// set then the handler is called and the access continues as though the chip
// had returned zero. Without a handler the trap is returned as an error.
//
// The DebuggerBus interface is for tools outside of the normal operation of
// the machine.
package bus
