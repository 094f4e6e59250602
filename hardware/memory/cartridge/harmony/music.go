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

package harmony

import (
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopher2600core/hardware/television/specification"
)

// frequency at which the music streams are clocked.
const musicClockHz = 20000.0

// musicStream is one of the three music (or sample) streams of the DPC+ and
// CDF cartridges. Count is a 32 bit phase accumulator that has Freq added to
// it on every clock of the 20kHz oscillator.
type musicStream struct {
	Waveform uint32
	Freq     uint32
	Count    uint32
}

// musicClock converts elapsed CPU cycles into clocks of the music
// oscillator. The oscillator is not synchronised with the CPU and so the
// fraction of a clock left over from an update is carried to the next.
type musicClock struct {
	cpu        mapper.CPU
	cycles     uint64
	fractional float64
}

func (m *musicClock) setCPU(cpu mapper.CPU) {
	m.cpu = cpu
	m.cycles = cpu.Cycles()
	m.fractional = 0
}

func (m *musicClock) reset() {
	m.fractional = 0
	if m.cpu != nil {
		m.cycles = m.cpu.Cycles()
	}
}

// clock the streams by the number of whole oscillator clocks that have
// elapsed since the previous call.
func (m *musicClock) clock(streams []musicStream) {
	if m.cpu == nil {
		return
	}

	cycles := m.cpu.Cycles()

	// the cycle counter has gone backwards because the CPU has been reset.
	// resynchronise without clocking the streams
	if cycles < m.cycles {
		m.cycles = cycles
		m.fractional = 0
		return
	}

	elapsed := cycles - m.cycles
	m.cycles = cycles

	m.fractional += float64(elapsed) * musicClockHz / specification.SpecNTSC.ClockHz
	n := uint32(m.fractional)
	m.fractional -= float64(n)

	for i := range streams {
		streams[i].Count += streams[i].Freq * n
	}
}
