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

import (
	"strings"
)

// SamplesPerScanline is the number of samples produced every scanline. The
// reference frequency for all sound produced by the TIA is the colour clock
// divided by 114, or twice the scanline frequency.
const SamplesPerScanline = 2

// the horizontal clock values on which the audio is clocked. the two clocks
// are half a scanline apart
const (
	clockA = 9
	clockB = 81
)

// Audio is the implementation of the TIA audio sub-system.
type Audio struct {
	// From the "Stella Programmer's Guide":
	//
	// "There are two audio circuits for generating sound. They are identical but
	// completely independent and can be operated simultaneously [...]"
	Channel0 channel
	Channel1 channel

	// the volume output of each channel at the most recent sample. the
	// output is the average of the volume on every colour clock since the
	// previous sample
	Vol0 uint8
	Vol1 uint8

	sampleSum   [2]int
	sampleSumCt int
}

// NewAudio is the preferred method of initialisation for the Audio sub-system.
func NewAudio() *Audio {
	return &Audio{}
}

// Reset the audio sub-system.
func (au *Audio) Reset() {
	*au = Audio{}
}

func (au *Audio) String() string {
	s := strings.Builder{}
	s.WriteString("ch0: ")
	s.WriteString(au.Channel0.String())
	s.WriteString("  ch1: ")
	s.WriteString(au.Channel1.String())
	return s.String()
}

// Register identifies one of the six audio registers.
type Register int

// List of valid Register values.
const (
	AUDC0 Register = iota
	AUDC1
	AUDF0
	AUDF1
	AUDV0
	AUDV1
)

// Write a value to an audio register.
func (au *Audio) Write(reg Register, value uint8) {
	switch reg {
	case AUDC0:
		au.Channel0.setControl(value)
	case AUDC1:
		au.Channel1.setControl(value)
	case AUDF0:
		au.Channel0.setFreq(value)
	case AUDF1:
		au.Channel1.setFreq(value)
	case AUDV0:
		au.Channel0.setVolume(value)
	case AUDV1:
		au.Channel1.setVolume(value)
	}
}

// Step the audio on one colour clock. The hclock argument is the TIA's
// horizontal clock. Returns true if a new sample is ready.
func (au *Audio) Step(hclock int) bool {
	au.sampleSum[0] += int(au.Channel0.actualVol)
	au.sampleSum[1] += int(au.Channel1.actualVol)
	au.sampleSumCt++

	if hclock != clockA && hclock != clockB {
		return false
	}

	au.Channel0.tick()
	au.Channel1.tick()

	au.Vol0 = uint8(au.sampleSum[0]/au.sampleSumCt) & 0x0f
	au.Vol1 = uint8(au.sampleSum[1]/au.sampleSumCt) & 0x0f
	au.sampleSum[0] = 0
	au.sampleSum[1] = 0
	au.sampleSumCt = 0

	return true
}

// Mix returns the most recent sample of both channels as a single signed
// 16bit value.
func (au *Audio) Mix() int16 {
	return volumeMix[au.Vol0|(au.Vol1<<4)]
}
