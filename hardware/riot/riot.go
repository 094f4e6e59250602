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

package riot

import (
	"strings"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2600core/hardware/riot/ports"
	"github.com/jetsetilly/gopher2600core/hardware/riot/timer"
	"github.com/jetsetilly/gopher2600core/random"
)

// AddressError is returned when an address outside of the PIA is accessed.
const AddressError = "riot: address %#04x is not a PIA address"

// RIOT represents the PIA 6532 found in the VCS.
type RIOT struct {
	RAM   [128]uint8
	Timer *timer.Timer
	Ports *ports.Ports

	rand *random.Random
}

// NewRIOT is the preferred method of initialisation for the RIOT type. The
// random argument is used to initialise RAM on reset and can be nil.
func NewRIOT(rand *random.Random) *RIOT {
	riot := &RIOT{
		Timer: timer.NewTimer(),
		rand:  rand,
	}
	riot.Ports = ports.NewPorts(func() {
		riot.Timer.Edge = true
	})
	riot.Reset()
	return riot
}

func (riot *RIOT) String() string {
	s := strings.Builder{}
	s.WriteString(riot.Timer.String())
	s.WriteString("\n")
	s.WriteString(riot.Ports.String())
	return s.String()
}

// Reset the RIOT to its power-on state. RAM is filled with random values
// unless the random source is in its zero state.
func (riot *RIOT) Reset() {
	for i := range riot.RAM {
		if riot.rand != nil {
			riot.RAM[i] = riot.rand.Uint8()
		} else {
			riot.RAM[i] = 0
		}
	}
	riot.Timer.Reset()
	riot.Ports.Reset()
}

// Step the RIOT forward one CPU cycle.
func (riot *RIOT) Step() {
	riot.Timer.Step()
}

// Read implements the bus.Chip interface.
func (riot *RIOT) Read(address uint16) (uint8, error) {
	address, area := memorymap.MapAddress(address, true)

	if area == memorymap.RAM {
		return riot.RAM[address^memorymap.OriginRAM], nil
	}

	if area != memorymap.RIOT {
		return 0, curated.Errorf(AddressError, address)
	}

	// A2 selects the timer
	if address&0x04 == 0x04 {
		if address&0x01 == 0x01 {
			return riot.Timer.ReadTIMINT(), nil
		}
		return riot.Timer.ReadINTIM(), nil
	}

	switch address & 0x03 {
	case 0:
		return riot.Ports.SWCHA(), nil
	case 1:
		return riot.Ports.SWACNT(), nil
	case 2:
		return riot.Ports.SWCHB(), nil
	}
	return riot.Ports.SWBCNT(), nil
}

// Write implements the bus.Chip interface.
func (riot *RIOT) Write(address uint16, data uint8) error {
	address, area := memorymap.MapAddress(address, false)

	if area == memorymap.RAM {
		riot.RAM[address^memorymap.OriginRAM] = data
		return nil
	}

	if area != memorymap.RIOT {
		return curated.Errorf(AddressError, address)
	}

	// A2 clear selects the ports
	if address&0x04 == 0x00 {
		switch address & 0x03 {
		case 0:
			riot.Ports.WriteSWCHA(data)
		case 1:
			riot.Ports.WriteSWACNT(data)
		case 2:
			riot.Ports.WriteSWCHB(data)
		case 3:
			riot.Ports.WriteSWBCNT(data)
		}
		return nil
	}

	// A4 selects the timer. otherwise the write is to the edge detect
	// control, with A0 selecting the edge
	if address&0x10 == 0x10 {
		riot.Timer.Write(timer.IntervalFromAddress(address), data)
		return nil
	}

	riot.Ports.SetEdgeDetection(address&0x01 == 0x01)

	return nil
}
