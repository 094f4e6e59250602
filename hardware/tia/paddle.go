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

package tia

import "fmt"

// the number of scanlines it takes to charge the paddle capacitor at maximum
// resistance. at zero resistance the capacitor is charged after one scanline
const paddleMaxChargeLines = 380.0

// Paddle is the potentiometer and capacitor circuit connected to one of the
// INPT0 to INPT3 lines.
type Paddle struct {
	// the position of the paddle, from 0.0 to 1.0
	resistance float64

	charge   float64
	grounded bool
}

func (pdl *Paddle) String() string {
	return fmt.Sprintf("res=%.02f charge=%.02f", pdl.resistance, pdl.charge)
}

// SetResistance sets the position of the paddle. The value is clamped to the
// range 0.0 to 1.0.
func (pdl *Paddle) SetResistance(r float64) {
	if r < 0.0 {
		r = 0.0
	} else if r > 1.0 {
		r = 1.0
	}
	pdl.resistance = r
}

// Resistance returns the current position of the paddle.
func (pdl *Paddle) Resistance() float64 {
	return pdl.resistance
}

func (pdl *Paddle) reset() {
	pdl.charge = 0.0
	pdl.grounded = false
}

// ground (dump) the capacitor. while grounded the capacitor does not charge
func (pdl *Paddle) ground(grounded bool) {
	pdl.grounded = grounded
	if grounded {
		pdl.charge = 0.0
	}
}

// step is called once per scanline
func (pdl *Paddle) step() {
	if pdl.grounded || pdl.charge >= 1.0 {
		return
	}
	pdl.charge += 1.0 / (1.0 + pdl.resistance*paddleMaxChargeLines)
}

// the value of the INPTx register. bit 7 is set once the capacitor is charged
func (pdl *Paddle) value() uint8 {
	if pdl.charge >= 1.0 {
		return 0x80
	}
	return 0x00
}
