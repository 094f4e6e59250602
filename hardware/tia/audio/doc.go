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

// Package audio implements the two audio channels of the TIA. Each channel is
// controlled by three registers: AUDC selects the waveform, AUDF the frequency
// divider and AUDV the volume.
//
// The channels are clocked twice per scanline. A sample is produced on each
// clock and so the sample rate is the colour clock divided by 114, which is
// the same as the CPU clock divided by 38. In practice the specification of
// the television provides the sample rate with the SampleRate() function.
//
// The waveform generation is based on the TIASound.c library by Ron Fries.
package audio
