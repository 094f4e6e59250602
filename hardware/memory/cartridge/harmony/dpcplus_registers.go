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
	"fmt"
	"math/rand"
	"strings"
)

// the value of the random number generator after a reset. the ASCII values
// for "DPC+"
const dpcPlusRNGseed = 0x2b435044

type dpcPlusRegisters struct {
	Fetcher      [8]dataFetcher
	FracFetcher  [8]fractionalFetcher
	MusicFetcher [3]musicStream

	RNG randomNumberGenerator

	FastFetch bool
}

func (r *dpcPlusRegisters) reset() {
	*r = dpcPlusRegisters{}
	r.RNG.Value = dpcPlusRNGseed
}

func (r *dpcPlusRegisters) randomize(rnd *rand.Rand) {
	for i := range r.Fetcher {
		r.Fetcher[i].Low = uint8(rnd.Intn(0xff))
		r.Fetcher[i].Hi = uint8(rnd.Intn(0xff))
		r.Fetcher[i].Top = uint8(rnd.Intn(0xff))
		r.Fetcher[i].Bottom = uint8(rnd.Intn(0xff))
	}
	for i := range r.FracFetcher {
		r.FracFetcher[i].Low = uint8(rnd.Intn(0xff))
		r.FracFetcher[i].Hi = uint8(rnd.Intn(0xff))
		r.FracFetcher[i].Increment = uint8(rnd.Intn(0xff))
		r.FracFetcher[i].Count = uint8(rnd.Intn(0xff))
	}
	for i := range r.MusicFetcher {
		r.MusicFetcher[i].Waveform = uint32(rnd.Intn(0x7f))
		r.MusicFetcher[i].Freq = rnd.Uint32()
		r.MusicFetcher[i].Count = rnd.Uint32()
	}
	r.RNG.Value = rnd.Uint32()
}

func (r dpcPlusRegisters) String() string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("RNG: %#08x\n", r.RNG.Value))
	s.WriteString(fmt.Sprintf("Fast Fetch: %v\n", r.FastFetch))

	for f := range r.Fetcher {
		s.WriteString(fmt.Sprintf("F%d: l:%#02x h:%#02x t:%#02x b:%#02x\n", f,
			r.Fetcher[f].Low, r.Fetcher[f].Hi, r.Fetcher[f].Top, r.Fetcher[f].Bottom))
	}
	for f := range r.FracFetcher {
		s.WriteString(fmt.Sprintf("FF%d: l:%#02x h:%#02x i:%#02x c:%#02x\n", f,
			r.FracFetcher[f].Low, r.FracFetcher[f].Hi, r.FracFetcher[f].Increment, r.FracFetcher[f].Count))
	}
	for f := range r.MusicFetcher {
		s.WriteString(fmt.Sprintf("M%d: w:%#02x f:%#08x c:%#08x\n", f,
			r.MusicFetcher[f].Waveform, r.MusicFetcher[f].Freq, r.MusicFetcher[f].Count))
	}

	return s.String()
}

type dataFetcher struct {
	Low byte
	Hi  byte

	Top    byte
	Bottom byte
}

// address in the display data of the fetcher.
func (df dataFetcher) address() uint16 {
	return (uint16(df.Hi)<<8 | uint16(df.Low)) & 0x0fff
}

// the window is the range between the top and bottom registers. note that
// the low byte is compared without the hi byte
func (df dataFetcher) isWindow() bool {
	if df.Top > df.Bottom {
		return df.Low > df.Top || df.Low < df.Bottom
	}
	return df.Low > df.Top && df.Low < df.Bottom
}

func (df *dataFetcher) inc() {
	df.Low++
	if df.Low == 0x00 {
		df.Hi++
	}
}

func (df *dataFetcher) dec() {
	df.Low--
	if df.Low == 0xff {
		df.Hi--
	}
}

type fractionalFetcher struct {
	Low byte
	Hi  byte

	Increment byte
	Count     byte
}

func (df fractionalFetcher) address() uint16 {
	return (uint16(df.Hi)<<8 | uint16(df.Low)) & 0x0fff
}

// the pointer is advanced when the count overflows.
func (df *fractionalFetcher) inc() {
	df.Count += df.Increment
	if df.Count < df.Increment {
		df.Low++
		if df.Low == 0x00 {
			df.Hi++
		}
	}
}

type randomNumberGenerator struct {
	Value uint32
}

func (rng *randomNumberGenerator) next() {
	if rng.Value&(1<<10) != 0 {
		rng.Value = 0x10adab1e ^ ((rng.Value >> 11) | (rng.Value << 21))
	} else {
		rng.Value = (rng.Value >> 11) | (rng.Value << 21)
	}
}

// prev is the inverse of next.
func (rng *randomNumberGenerator) prev() {
	if rng.Value&(1<<31) != 0 {
		rng.Value = ((0x10adab1e ^ rng.Value) << 11) | ((0x10adab1e ^ rng.Value) >> 21)
	} else {
		rng.Value = (rng.Value << 11) | (rng.Value >> 21)
	}
}
