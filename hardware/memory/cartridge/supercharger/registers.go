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

package supercharger

import (
	"fmt"
	"strings"
)

// Registers of the supercharger hardware.
type Registers struct {
	// the data hold register. set by accessing $1000 to $10FF
	Value uint8

	// the number of address transitions before the value is written. zero
	// when there is no pending write. a value of one triggers the write
	Delay int

	// delay is decremented everytime address changes. we therefore need
	// to keep track of what the last address was in order to tell if the
	// address bus has transitioned
	transitionAddress uint16

	// the last value to be written to (not including fff8 writes)
	LastWriteValue   uint8
	LastWriteAddress uint16

	// config byte, raw value
	ConfigByte uint8

	// config byte broken into parts
	WriteDelay  int
	BankingMode int
	RAMwrite    bool
	ROMpower    bool
}

// the number of address transitions between setting the value and writing
// it to RAM, plus one
const writeDelay = 6

func (r *Registers) setConfigByte(v uint8) {
	r.ConfigByte = v
	r.ROMpower = v&0x01 != 0x01
	r.RAMwrite = v&0x02 == 0x02
	r.BankingMode = int((v >> 2) & 0x07)
	r.WriteDelay = int((v >> 5) & 0x07)
}

func (r *Registers) reset() {
	*r = Registers{
		ROMpower: true,
		RAMwrite: true,
	}
}

func (r Registers) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("Value: %#02x  Delay: %d\n", r.Value, r.Delay))
	if r.LastWriteAddress > 0x000 {
		s.WriteString(fmt.Sprintf("   last write %#02x to %#04x\n", r.LastWriteValue, r.LastWriteAddress))
	}
	s.WriteString(fmt.Sprintf("RAM write: %v", r.RAMwrite))
	s.WriteString(fmt.Sprintf("  ROM power: %v\n", r.ROMpower))
	s.WriteString(r.BankString())
	return s.String()
}

// the banks mapped into the lower and upper 2K of cartridge space for each
// banking mode. bank zero is the BIOS and banks one to three are the RAM
// banks.
var bankingModes = [8][2]int{
	{3, 0},
	{1, 0},
	{3, 1},
	{1, 3},
	{3, 0},
	{2, 0},
	{3, 2},
	{2, 3},
}

// BankString is like string but just the bank information.
func (r Registers) BankString() string {
	m := bankingModes[r.BankingMode]
	lower := fmt.Sprintf("%d", m[0])
	upper := "bios"
	if m[1] != 0 {
		upper = fmt.Sprintf("%d", m[1])
	}
	return fmt.Sprintf("banks: [%s, %s]   config-byte: %02x", lower, upper, r.ConfigByte)
}

// Kevin Horton in the "Mostly Inclusive Atari 2600 Mapper / Selected
// Hardware Document" clarifies what is meant by "transition":
//
// "Note that when I say 'transition', I am talking about when one or more
// of the 13 address lines changes."
//
// In other words, if the address hasn't changed then it does not count as
// a transition.
func (r *Registers) transitionCount(addr uint16) {
	if addr != r.transitionAddress {
		if r.Delay > 0 {
			r.Delay--
		}
		r.transitionAddress = addr
	}
}
