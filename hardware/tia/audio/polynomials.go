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

package audio

// bit patterns for the polynomial counters. the 4bit and 5bit patterns are
// the ones used by the TIA. one bit per byte keeps the indexing simple.
var poly4bit = [15]uint8{1, 1, 0, 1, 1, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0}
var poly5bit = [31]uint8{0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 1, 1, 1, 0, 0,
	0, 1, 1, 0, 1, 1, 1, 0, 1, 0, 1, 0, 0, 0, 0, 1}

// the "div by 31" counter is treated as another polynomial. it does not have a
// 50% duty cycle but a 13:18 ratio.
var div31 = [31]uint8{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

// the 9bit polynomial is generated by a linear feedback shift register with
// taps at bits 9 and 5.
var poly9bit [511]uint8

func init() {
	lfsr := uint16(0x1ff)
	for i := range poly9bit {
		poly9bit[i] = uint8(lfsr & 0x01)
		bit := (lfsr ^ (lfsr >> 4)) & 0x01
		lfsr = (lfsr >> 1) | (bit << 8)
	}
}

// volumeMix lookup table is created according to the information in the
// document, "TIA Sounding Off In The Digital Domain", by Chris Brenner. The
// table is indexed by the volume of channel 0 in the low nibble and the volume
// of channel 1 in the high nibble.
var volumeMix [256]int16

func init() {
	const r1 = 1000.0
	const ra = 1.0 / 3750.0
	const rb = 1.0 / 7500.0
	const rc = 1.0 / 15000.0
	const rd = 1.0 / 30000.0

	volumeMix[0] = 0
	for i := 1; i < len(volumeMix); i++ {
		var r2 float32
		if i&0x01 == 0x01 {
			r2 += rd
		}
		if i&0x02 == 0x02 {
			r2 += rc
		}
		if i&0x04 == 0x04 {
			r2 += rb
		}
		if i&0x08 == 0x08 {
			r2 += ra
		}
		if i&0x10 == 0x10 {
			r2 += rd
		}
		if i&0x20 == 0x20 {
			r2 += rc
		}
		if i&0x40 == 0x40 {
			r2 += rb
		}
		if i&0x80 == 0x80 {
			r2 += ra
		}
		r2 = 1.0 / r2
		volumeMix[i] = int16(32768.0*(1.0-r2/(r1+r2)) + 0.5)
	}
}
