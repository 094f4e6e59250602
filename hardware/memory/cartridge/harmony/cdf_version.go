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

import "bytes"

// cdfVersion contains the information that differs between CDF versions.
type cdfVersion struct {
	name string

	// the base index for the CDF registers in the driver RAM
	fetcherBase   uint32
	incrementBase uint32
	musicBase     uint32

	// which data fetcher is the amplitude fetcher
	amplitudeRegister int

	// mask for the most-significant byte of a fast jump operand. in the
	// case of CDFJ a fast jump can be triggered with either "4c 00 00" or
	// "4c 01 00"
	fastJMPmask uint8

	// addresses of the driver functions emulated by the trap handler
	setNote     uint32
	resetWave   uint32
	getWavePtr  uint32
	setWaveSize uint32
}

// bits of the data fetcher and increment registers that are significant
const (
	cdfFetcherShift   = 20
	cdfIncrementShift = 12
	cdfFetcherMask    = 0xf0000000
)

// the version byte follows the "CDF" signature.
func newCDFversion(data []uint8) cdfVersion {
	var v uint8
	if idx := bytes.Index(data, []uint8("CDF")); idx >= 0 && idx+3 < len(data) {
		v = data[idx+3]
	}

	switch v {
	case 0x00:
		return cdfVersion{
			name:              "CDF0",
			fetcherBase:       0x06e0,
			incrementBase:     0x0768,
			musicBase:         0x07f0,
			amplitudeRegister: 34,
			fastJMPmask:       0xff,
			setNote:           0x000006e2,
			resetWave:         0x000006e6,
			getWavePtr:        0x000006ea,
			setWaveSize:       0x000006ee,
		}
	case 'J':
		return cdfVersion{
			name:              "CDFJ",
			fetcherBase:       0x0098,
			incrementBase:     0x0124,
			musicBase:         0x01b0,
			amplitudeRegister: 35,
			fastJMPmask:       0xfe,
			setNote:           0x00000752,
			resetWave:         0x00000756,
			getWavePtr:        0x0000075a,
			setWaveSize:       0x0000075e,
		}
	}

	return cdfVersion{
		name:              "CDF1",
		fetcherBase:       0x00a0,
		incrementBase:     0x0128,
		musicBase:         0x01b0,
		amplitudeRegister: 34,
		fastJMPmask:       0xff,
		setNote:           0x00000752,
		resetWave:         0x00000756,
		getWavePtr:        0x0000075a,
		setWaveSize:       0x0000075e,
	}
}
