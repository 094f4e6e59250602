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

import "fmt"

// Registers of one audio channel.
type Registers struct {
	Control uint8
	Freq    uint8
	Volume  uint8
}

func (reg Registers) String() string {
	return fmt.Sprintf("%04b @ %05b ^ %04b", reg.Control, reg.Freq, reg.Volume)
}

// channel is one of the two identical audio circuits of the TIA.
type channel struct {
	Registers Registers

	// which bit of each polynomial counter to use next
	poly4ct int
	poly5ct int
	poly9ct int
	div3ct  int

	// the frequency divider counts up to the value in the frequency register
	freqCt uint8

	// the 10kHz clocks are produced by dividing the 30kHz clock by three
	prescaleCt int

	// the current output volume. the different tones are achieved by toggling
	// between zero and the volume register
	actualVol uint8
}

func (ch *channel) String() string {
	return ch.Registers.String()
}

func (ch *channel) reset() {
	*ch = channel{}
}

func (ch *channel) setControl(v uint8) {
	ch.Registers.Control = v & 0x0f
	ch.reactAUDCx()
}

func (ch *channel) setFreq(v uint8) {
	ch.Registers.Freq = v & 0x1f
	ch.reactAUDCx()
}

func (ch *channel) setVolume(v uint8) {
	ch.Registers.Volume = v & 0x0f
	ch.reactAUDCx()
}

// changing the value of an AUDx register can affect the output volume
// immediately
func (ch *channel) reactAUDCx() {
	if ch.isVolumeOnly() {
		ch.actualVol = ch.Registers.Volume
	} else if ch.actualVol != 0 {
		ch.actualVol = ch.Registers.Volume
	}
}

// control values of 0x0 and 0xb output the volume register directly
func (ch *channel) isVolumeOnly() bool {
	return ch.Registers.Control == 0x00 || ch.Registers.Control == 0x0b
}

// when bits 2 and 3 of the control register are set the channel uses a 10kHz
// clock rather than the 30kHz clock. control value 0xf is the exception
func (ch *channel) isTenKhz() bool {
	return ch.Registers.Control&0x0c == 0x0c && ch.Registers.Control != 0x0f
}

func (ch *channel) toggle() {
	if ch.actualVol != 0 {
		ch.actualVol = 0
	} else {
		ch.actualVol = ch.Registers.Volume
	}
}

// tick should be called at a frequency of 30kHz.
func (ch *channel) tick() {
	if ch.isVolumeOnly() {
		ch.actualVol = ch.Registers.Volume
		return
	}

	if ch.isTenKhz() {
		ch.prescaleCt++
		if ch.prescaleCt < 3 {
			return
		}
		ch.prescaleCt = 0
	}

	// the frequency divider. the output of the divider clocks the
	// polynomial counters
	if ch.freqCt < ch.Registers.Freq {
		ch.freqCt++
		return
	}
	ch.freqCt = 0

	// the 5-bit polynomial clock toggles volume on change of bit. note the
	// current bit so we can compare
	prevBit5 := poly5bit[ch.poly5ct]

	ch.poly5ct++
	if ch.poly5ct >= len(poly5bit) {
		ch.poly5ct = 0
	}

	control := ch.Registers.Control

	// check whether the polynomial clocks the output
	if (control&0x02 == 0x0) ||
		((control&0x01 == 0x0) && div31[ch.poly5ct] != 0) ||
		((control&0x01 == 0x1) && poly5bit[ch.poly5ct] != 0) ||
		((control&0x0f == 0xf) && poly5bit[ch.poly5ct] != prevBit5) {

		if control&0x04 == 0x04 {
			// pure tone
			if control&0x0f == 0x0f {
				// poly5/div3
				if poly5bit[ch.poly5ct] != prevBit5 {
					ch.div3ct++
					if ch.div3ct == 3 {
						ch.div3ct = 0
						ch.toggle()
					}
				}
			} else {
				ch.toggle()
			}
		} else if control&0x08 == 0x08 {
			if control == 0x08 {
				// poly9
				ch.poly9ct++
				if ch.poly9ct >= len(poly9bit) {
					ch.poly9ct = 0
				}
				if poly9bit[ch.poly9ct] != 0 {
					ch.actualVol = ch.Registers.Volume
				} else {
					ch.actualVol = 0
				}
			} else if control&0x02 != 0 {
				if ch.actualVol != 0 || control&0x01 == 0x01 {
					ch.actualVol = 0
				} else {
					ch.actualVol = ch.Registers.Volume
				}
			} else {
				// poly5. the counter has already been advanced
				if poly5bit[ch.poly5ct] == 1 {
					ch.actualVol = ch.Registers.Volume
				} else {
					ch.actualVol = 0
				}
			}
		} else {
			// poly4
			ch.poly4ct++
			if ch.poly4ct >= len(poly4bit) {
				ch.poly4ct = 0
			}
			if poly4bit[ch.poly4ct] == 1 {
				ch.actualVol = ch.Registers.Volume
			} else {
				ch.actualVol = 0
			}
		}
	}
}
