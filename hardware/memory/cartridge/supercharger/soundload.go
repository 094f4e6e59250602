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
	"math"

	"github.com/jetsetilly/gopher2600core/logger"
)

// tag string used in calls to Log().
const soundloadLogTag = "supercharger: soundload"

// number of calls to load() before the tape starts playing. allows the
// "rewind tape. press play" message to be visible momentarily
const playDelay = 30000

// the rate at which step() is called. once per CPU cycle
const stepFrequency = 1190000.0

// soundLoad implements the tape interface. It loads data from a sound file.
//
// Compared to fastLoad this method is more 'authentic' and uses the BIOS
// correctly.
type soundLoad struct {
	cart *Supercharger

	// mono sample levels
	samples []float32

	// speed of samples in Hz
	sampleRate float64

	// current index of samples array
	idx int

	// is the tape currently playing
	playing   bool
	playDelay int

	// the tape is advanced every regulator calls to step()
	regulator   int
	regulatorCt int
}

func newSoundLoad(cart *Supercharger, data []uint8) (tape, error) {
	pcm, err := getPCM(data)
	if err != nil {
		return nil, fmt.Errorf("soundload: %w", err)
	}

	if len(pcm.data) == 0 || pcm.sampleRate <= 0 {
		return nil, fmt.Errorf("soundload: no sound data")
	}

	tap := &soundLoad{
		cart:       cart,
		samples:    pcm.data,
		sampleRate: pcm.sampleRate,
	}

	// the length of time of each sample in microseconds
	timePerSample := 1000000.0 / tap.sampleRate
	logger.Logf(logger.Allow, soundloadLogTag, "time per sample: %.02fus", timePerSample)

	// number of samples in a cycle for it to be interpreted as a zero or a one
	// values taken from "Atari 2600 Mappers" document by Kevin Horton
	logger.Logf(logger.Allow, soundloadLogTag, "min/opt/max samples for zero-bit: %d/%d/%d",
		int(158.0/timePerSample), int(227.0/timePerSample), int(317.0/timePerSample))
	logger.Logf(logger.Allow, soundloadLogTag, "min/opt/max samples for one-bit: %d/%d/%d",
		int(317.0/timePerSample), int(340.0/timePerSample), int(2450.0/timePerSample))

	tap.regulator = int(math.Round(stepFrequency / tap.sampleRate))
	logger.Logf(logger.Allow, soundloadLogTag, "tape regulator: %d", tap.regulator)

	tap.rewind()

	return tap, nil
}

// load implements the tape interface.
func (tap *soundLoad) load() (uint8, error) {
	if tap.cart.stubBIOS {
		return 0, fmt.Errorf("soundload: the real supercharger BIOS is required to load from tape")
	}

	if !tap.playing {
		if tap.playDelay < playDelay {
			tap.playDelay++
			return 0x00, nil
		}
		tap.playing = true
		tap.playDelay = 0
		logger.Log(logger.Allow, soundloadLogTag, "tape playing")
	}

	if tap.samples[tap.idx] > 0.0 {
		return 0x01, nil
	}
	return 0x00, nil
}

// step implements the tape interface.
func (tap *soundLoad) step() {
	if !tap.playing {
		return
	}

	if tap.regulatorCt <= tap.regulator {
		tap.regulatorCt++
		return
	}
	tap.regulatorCt = 0

	// make sure we don't try to read past end of tape
	if tap.idx >= len(tap.samples)-1 {
		tap.playing = false
		logger.Log(logger.Allow, soundloadLogTag, "tape stopped")
		return
	}
	tap.idx++
}

// rewinding happens instantaneously.
func (tap *soundLoad) rewind() {
	tap.idx = 0
	tap.playing = false
	tap.playDelay = 0
	logger.Log(logger.Allow, soundloadLogTag, "tape rewound")
}

// TapeCounter returns the position of the tape and the total length of the
// tape, in seconds. Returns false if the cartridge was not loaded from a
// sound file.
func (cart *Supercharger) TapeCounter() (float64, float64, bool) {
	tap, ok := cart.tape.(*soundLoad)
	if !ok {
		return 0, 0, false
	}
	return float64(tap.idx) / tap.sampleRate, float64(len(tap.samples)) / tap.sampleRate, true
}

// Rewind the tape to the beginning. Has no effect if the cartridge was not
// loaded from a sound file.
func (cart *Supercharger) Rewind() {
	if tap, ok := cart.tape.(*soundLoad); ok {
		tap.rewind()
	}
}
