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

// Package riot implements the PIA 6532 (RAM-I/O-Timer). The 6532 provides
// the 128 bytes of RAM of the VCS, the interval timer and the two I/O ports.
//
// The timer is in the timer package and the I/O system is in the ports
// package. The RAM is selected when address line A9 is clear. Otherwise the
// timer and port registers are selected.
package riot
