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

package audio_test

import (
	"testing"

	"github.com/jetsetilly/gopher2600core/hardware/tia/audio"
	"github.com/jetsetilly/gopher2600core/test"
)

// run the audio for the number of scanlines and return the channel 0 volume
// of every sample
func run(au *audio.Audio, scanlines int) []uint8 {
	var vols []uint8
	for l := 0; l < scanlines; l++ {
		for hclock := 0; hclock < 228; hclock++ {
			if au.Step(hclock) {
				vols = append(vols, au.Vol0)
			}
		}
	}
	return vols
}

func TestSamplesPerScanline(t *testing.T) {
	au := audio.NewAudio()
	test.ExpectEquality(t, len(run(au, 10)), 10*audio.SamplesPerScanline)
}

func TestVolumeOnly(t *testing.T) {
	au := audio.NewAudio()
	au.Write(audio.AUDC0, 0x00)
	au.Write(audio.AUDV0, 0x0f)

	for _, v := range run(au, 4) {
		test.ExpectEquality(t, v, 0x0f)
	}

	// only the low nibble of the volume register is significant
	au.Write(audio.AUDV0, 0xf3)
	test.ExpectEquality(t, au.Channel0.Registers.Volume, 0x03)
	for _, v := range run(au, 4)[1:] {
		test.ExpectEquality(t, v, 0x03)
	}
}

func TestPureTone(t *testing.T) {
	au := audio.NewAudio()
	au.Write(audio.AUDC0, 0x04)
	au.Write(audio.AUDF0, 0x00)
	au.Write(audio.AUDV0, 0x0f)

	// the output toggles on every audio clock
	v := run(au, 4)
	test.DemandEquality(t, len(v), 8)
	for i := range v {
		if i%2 == 0 {
			test.ExpectEquality(t, v[i], 0x00, i)
		} else {
			test.ExpectEquality(t, v[i], 0x0f, i)
		}
	}
}

func TestFrequencyDivider(t *testing.T) {
	au := audio.NewAudio()
	au.Write(audio.AUDC0, 0x04)
	au.Write(audio.AUDF0, 0x01)
	au.Write(audio.AUDV0, 0x0f)

	// with a frequency value of one the output toggles on every other clock
	v := run(au, 4)
	expected := []uint8{0x00, 0x00, 0x0f, 0x0f, 0x00, 0x00, 0x0f, 0x0f}
	test.DemandEquality(t, len(v), len(expected))
	for i := range v {
		test.ExpectEquality(t, v[i], expected[i], i)
	}
}

func TestTenKhz(t *testing.T) {
	au := audio.NewAudio()
	au.Write(audio.AUDC0, 0x0c)
	au.Write(audio.AUDF0, 0x00)
	au.Write(audio.AUDV0, 0x0f)

	// the 10kHz clock is a third of the 30kHz clock
	v := run(au, 6)
	expected := []uint8{0x00, 0x00, 0x00, 0x0f, 0x0f, 0x0f, 0x00, 0x00, 0x00, 0x0f, 0x0f, 0x0f}
	test.DemandEquality(t, len(v), len(expected))
	for i := range v {
		test.ExpectEquality(t, v[i], expected[i], i)
	}
}

func TestMix(t *testing.T) {
	au := audio.NewAudio()
	test.ExpectEquality(t, au.Mix(), 0)

	au.Write(audio.AUDV0, 0x01)
	au.Write(audio.AUDV1, 0x01)
	run(au, 1)
	quiet := au.Mix()
	test.ExpectSuccess(t, quiet > 0)

	au.Write(audio.AUDV0, 0x0f)
	au.Write(audio.AUDV1, 0x0f)
	run(au, 1)
	test.ExpectSuccess(t, au.Mix() > quiet)

	au.Reset()
	test.ExpectEquality(t, au.Mix(), 0)
}
