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

package ports

import (
	"strings"
)

// Panel represents the console's front control panel. The switches are
// connected to port B.
type Panel struct {
	ports *Ports

	P0Pro         bool
	P1Pro         bool
	Color         bool
	SelectPressed bool
	ResetPressed  bool
}

// NewPanel is the preferred method of initialisation for the Panel type.
func NewPanel(ports *Ports) *Panel {
	pan := &Panel{
		ports: ports,
		Color: true,
	}
	pan.Commit()
	return pan
}

func (pan *Panel) String() string {
	s := strings.Builder{}

	s.WriteString("sel=")
	if pan.SelectPressed {
		s.WriteString("held")
	} else {
		s.WriteString("no")
	}

	s.WriteString(", res=")
	if pan.ResetPressed {
		s.WriteString("held")
	} else {
		s.WriteString("no")
	}

	s.WriteString(", p0=")
	if pan.P0Pro {
		s.WriteString("pro")
	} else {
		s.WriteString("am")
	}

	s.WriteString(", p1=")
	if pan.P1Pro {
		s.WriteString("pro")
	} else {
		s.WriteString("am")
	}

	if pan.Color {
		s.WriteString(", col")
	} else {
		s.WriteString(", b&w")
	}

	return s.String()
}

// Reset releases the select and reset switches.
func (pan *Panel) Reset() {
	pan.SelectPressed = false
	pan.ResetPressed = false
	pan.Commit()
}

// Commit writes the state of the switches to port B. It should be called
// after changing any of the exported fields.
func (pan *Panel) Commit() {
	// bits 2, 4 and 5 are not connected and are always high
	v := uint8(0x34)

	if pan.P0Pro {
		v |= 0x40
	}
	if pan.P1Pro {
		v |= 0x80
	}
	if pan.Color {
		v |= 0x08
	}

	// the select and reset switches are active low
	if !pan.SelectPressed {
		v |= 0x02
	}
	if !pan.ResetPressed {
		v |= 0x01
	}

	pan.ports.SetSWCHB(v)
}
