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

// Package mapper contains the types shared by all cartridge mapper
// implementations. The package exists so that the mapper implementations in
// the cartridge package and its sub-packages (harmony and supercharger) can
// share definitions without importing each other.
package mapper

import (
	"math/rand"

	"github.com/jetsetilly/gopher2600core/hardware/memory/bus"
	"github.com/jetsetilly/gopher2600core/hardware/memory/memorymap"
)

// CartMapper implementations hold the actual data from the loaded ROM and
// keep track of which banks are mapped to individual addresses.
//
// Addresses supplied to the mapper have the chip select line removed. In other
// words, the address will be in the range 0x0000 to 0x0fff.
type CartMapper interface {
	// Read may trigger bank switching hotspots
	Read(addr uint16) (uint8, error)

	// Write may trigger bank switching hotspots. Writes to ROM are ignored
	Write(addr uint16, data uint8) error

	// Peek returns the byte currently mapped to the address. Peek never
	// triggers a hotspot or changes state
	Peek(addr uint16) (uint8, error)

	// Poke changes the byte currently mapped to the address. Poke will change
	// ROM data and never triggers a hotspot
	Poke(addr uint16, data uint8) error

	// Reset returns the bank mapping to the power-on state
	Reset()

	Type() Type

	// Description is the same string as returned by Type().Description()
	Description() string

	NumBanks() int

	// GetBank returns the bank mapped to the specified address
	GetBank(addr uint16) memorymap.BankDetails
}

// CPU is the view of the 6507 required by some mappers.
type CPU interface {
	LastInstructionAddress() uint16
	Cycles() uint64
}

// BusSniffer is implemented by mappers that bank switch by watching
// accesses made outside of cartridge space.
type BusSniffer interface {
	Listen(access bus.Access)
}

// CPUAware is implemented by mappers that need to know about the state of
// the CPU.
type CPUAware interface {
	SetCPU(cpu CPU)
}

// Stepper is implemented by mappers with hardware that ticks with the CPU
// clock.
type Stepper interface {
	Step() error
}

// Randomizer is implemented by mappers with RAM that should be randomised on
// reset.
type Randomizer interface {
	Randomize(rnd *rand.Rand)
}
