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
	"fmt"
)

// Ports implements the input/output part of the RIOT (the IO in RIOT). There
// are two eight bit ports. Port A (SWCHA) is connected to the controller
// ports and Port B (SWCHB) is connected to the console's front panel.
//
// Each bit of a port can be an input or an output, as selected by the data
// direction registers SWACNT and SWBCNT. A 1 bit in the data direction
// register means the bit is an output driven by the CPU.
type Ports struct {
	// input lines from the peripherals
	swchaInput uint8
	swchbInput uint8

	// values most recently written by the CPU
	swchaOutput uint8
	swchbOutput uint8

	swacnt uint8
	swbcnt uint8

	// edge detection of PA7. positive edge if true, negative edge otherwise
	edgePositive bool
	edge         func()

	Panel *Panel
}

// NewPorts is the preferred method of initialisation of the Ports type. The
// edge function is called when the selected edge is detected on PA7. It can
// be nil.
func NewPorts(edge func()) *Ports {
	p := &Ports{
		swchaInput: 0xff,
		swchbInput: 0xff,
		edge:       edge,
	}
	p.Panel = NewPanel(p)
	return p
}

// Reset the data direction registers. Input lines are not affected.
func (p *Ports) Reset() {
	p.swchaOutput = 0
	p.swchbOutput = 0
	p.swacnt = 0
	p.swbcnt = 0
	p.edgePositive = false
	p.Panel.Reset()
}

func (p *Ports) String() string {
	return fmt.Sprintf("SWCHA=%#02x SWACNT=%#02x SWCHB=%#02x SWBCNT=%#02x",
		p.SWCHA(), p.swacnt, p.SWCHB(), p.swbcnt)
}

// SWCHA returns the value of port A as seen by the CPU.
func (p *Ports) SWCHA() uint8 {
	return (p.swchaInput & ^p.swacnt) | (p.swchaOutput & p.swacnt)
}

// SWCHB returns the value of port B as seen by the CPU.
func (p *Ports) SWCHB() uint8 {
	return (p.swchbInput & ^p.swbcnt) | (p.swchbOutput & p.swbcnt)
}

// SWACNT returns the data direction register for port A.
func (p *Ports) SWACNT() uint8 {
	return p.swacnt
}

// SWBCNT returns the data direction register for port B.
func (p *Ports) SWBCNT() uint8 {
	return p.swbcnt
}

// SetSWCHA sets the input lines of port A. Joysticks pull lines low, so a
// value of 0xff means no input.
func (p *Ports) SetSWCHA(v uint8) {
	before := p.SWCHA()
	p.swchaInput = v
	p.detectEdge(before, p.SWCHA())
}

// SetSWCHB sets the input lines of port B.
func (p *Ports) SetSWCHB(v uint8) {
	p.swchbInput = v
}

// WriteSWCHA is used by the CPU to write port A.
func (p *Ports) WriteSWCHA(v uint8) {
	before := p.SWCHA()
	p.swchaOutput = v
	p.detectEdge(before, p.SWCHA())
}

// WriteSWACNT is used by the CPU to write the port A data direction register.
func (p *Ports) WriteSWACNT(v uint8) {
	before := p.SWCHA()
	p.swacnt = v
	p.detectEdge(before, p.SWCHA())
}

// WriteSWCHB is used by the CPU to write port B.
func (p *Ports) WriteSWCHB(v uint8) {
	p.swchbOutput = v
}

// WriteSWBCNT is used by the CPU to write the port B data direction register.
func (p *Ports) WriteSWBCNT(v uint8) {
	p.swbcnt = v
}

// SetEdgeDetection selects the edge of PA7 that sets the edge flag of the
// TIMINT register.
func (p *Ports) SetEdgeDetection(positive bool) {
	p.edgePositive = positive
}

func (p *Ports) detectEdge(before uint8, after uint8) {
	if p.edge == nil {
		return
	}
	b := before&0x80 == 0x80
	a := after&0x80 == 0x80
	if b == a {
		return
	}
	if a == p.edgePositive {
		p.edge()
	}
}
