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

package cartridge

import (
	"bytes"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/mapper"
)

// signature is a sequence of bytes that is characteristic of a cartridge
// type. a cartridge type is considered to be matched if any of its signatures
// occurs at least threshold times.
type signature struct {
	mappingType mapper.Type
	threshold   int
	patterns    [][]uint8
}

var signatures = []signature{
	{
		// STA $3F
		mappingType: Bankswitch8k3F,
		threshold:   2,
		patterns:    [][]uint8{{0x85, 0x3f}},
	},
	{
		// STA $3E; LDA #$00
		mappingType: Bankswitch3E,
		threshold:   1,
		patterns:    [][]uint8{{0x85, 0x3e, 0xa9, 0x00}},
	},
	{
		mappingType: Bankswitch8kE0,
		threshold:   1,
		patterns: [][]uint8{
			{0x8d, 0xe0, 0x1f}, // STA $1FE0
			{0x8d, 0xe0, 0x5f}, // STA $5FE0
			{0x8d, 0xe9, 0xff}, // STA $FFE9
			{0x0c, 0xe0, 0x1f}, // NOP $1FE0
			{0xad, 0xe0, 0x1f}, // LDA $1FE0
			{0xad, 0xe9, 0xff}, // LDA $FFE9
			{0xad, 0xed, 0xff}, // LDA $FFED
			{0xad, 0xf3, 0xbf}, // LDA $BFF3
		},
	},
	{
		mappingType: Bankswitch8kUA,
		threshold:   1,
		patterns: [][]uint8{
			{0x8d, 0x40, 0x02}, // STA $240
			{0xad, 0x40, 0x02}, // LDA $240
			{0xbd, 0x1f, 0x02}, // LDA $21F,X
		},
	},
	{
		mappingType: Bankswitch8kFE,
		threshold:   1,
		patterns: [][]uint8{
			{0x20, 0x00, 0xd0, 0xc6, 0xc5}, // JSR $D000; DEC $C5
			{0x20, 0xc3, 0xf8, 0xa5, 0x82}, // JSR $F8C3; LDA $82
			{0xd0, 0xfb, 0x20, 0x73, 0xfe}, // BNE $FB; JSR $FE73
			{0x20, 0x00, 0xf0, 0x84, 0xd6}, // JSR $F000; STY $D6
		},
	},
	{
		mappingType: Bankswitch16kE7,
		threshold:   1,
		patterns: [][]uint8{
			{0xad, 0xe2, 0xff}, // LDA $FFE2
			{0xad, 0xe5, 0xff}, // LDA $FFE5
			{0xad, 0xe5, 0x1f}, // LDA $1FE5
			{0xad, 0xe7, 0x1f}, // LDA $1FE7
			{0x0c, 0xe7, 0x1f}, // NOP $1FE7
			{0x8d, 0xe7, 0xff}, // STA $FFE7
			{0x8d, 0xe7, 0x1f}, // STA $1FE7
		},
	},
	{
		mappingType: Bankswitch64kEF,
		threshold:   1,
		patterns: [][]uint8{
			{0x0c, 0xe0, 0xff}, // NOP $FFE0
			{0xad, 0xe0, 0xff}, // LDA $FFE0
			{0x0c, 0xe0, 0x1f}, // NOP $1FE0
			{0xad, 0xe0, 0x1f}, // LDA $1FE0
		},
	},
	{
		mappingType: BankswitchDPCplus,
		threshold:   2,
		patterns:    [][]uint8{[]uint8("DPC+")},
	},
	{
		mappingType: BankswitchCDF,
		threshold:   3,
		patterns:    [][]uint8{[]uint8("CDF")},
	},
}

// fingerprints is the result of scanning cartridge data for signatures.
type fingerprints map[mapper.Type]bool

// scan cartridge data once, counting the occurrences of every signature.
func scan(data []uint8) fingerprints {
	counts := make([][]int, len(signatures))
	for s := range signatures {
		counts[s] = make([]int, len(signatures[s].patterns))
	}

	for i := range data {
		for s, sig := range signatures {
			for p, pat := range sig.patterns {
				if data[i] == pat[0] && bytes.HasPrefix(data[i:], pat) {
					counts[s][p]++
				}
			}
		}
	}

	fp := make(fingerprints)
	for s, sig := range signatures {
		for p := range sig.patterns {
			if counts[s][p] >= sig.threshold {
				fp[sig.mappingType] = true
			}
		}
	}

	return fp
}

// supercharger images can be raw fastload data or an audio recording of a
// cassette tape
func fingerprintSupercharger(data []uint8) bool {
	if len(data) > 0 && len(data)%8448 == 0 {
		return true
	}
	return bytes.HasPrefix(data, []uint8("RIFF")) || bytes.HasPrefix(data, []uint8("ID3"))
}

func fingerprint8k(fp fingerprints) mapper.Type {
	if fp[Bankswitch8kE0] {
		return Bankswitch8kE0
	}
	if fp[Bankswitch8k3F] {
		return Bankswitch8k3F
	}
	if fp[Bankswitch8kUA] {
		return Bankswitch8kUA
	}
	if fp[Bankswitch8kFE] {
		return Bankswitch8kFE
	}
	return Bankswitch8kF8
}

func fingerprint16k(fp fingerprints) mapper.Type {
	if fp[Bankswitch16kE7] {
		return Bankswitch16kE7
	}
	return Bankswitch16kF6
}

func fingerprint32k(fp fingerprints) mapper.Type {
	if fp[BankswitchCDF] {
		return BankswitchCDF
	}
	if fp[BankswitchDPCplus] {
		return BankswitchDPCplus
	}
	if fp[Bankswitch8k3F] {
		return Bankswitch8k3F
	}
	return Bankswitch32kF4
}

func fingerprint64k(fp fingerprints) mapper.Type {
	if fp[Bankswitch64kEF] {
		return Bankswitch64kEF
	}
	return Bankswitch64kF0
}

// Detect the cartridge type of the data. The detection is a best guess based
// on the size of the data and the presence of signatures. Ambiguous data is
// resolved in a fixed order of priority for each size.
func Detect(data []uint8) (Type, error) {
	// supercharger tapes are not raw ROM data so test before anything else
	if fingerprintSupercharger(data) {
		return BankswitchAR, nil
	}

	switch len(data) {
	case 2048:
		return Vanilla2k, nil
	case 4096:
		return Vanilla4k, nil
	case 8192:
		return fingerprint8k(scan(data)), nil
	case 10240, 10495:
		return BankswitchDPC, nil
	case 12288:
		return Bankswitch12kFA, nil
	case 16384:
		return fingerprint16k(scan(data)), nil
	case 24576, 28672, 29696:
		if scan(data)[BankswitchDPCplus] {
			return BankswitchDPCplus, nil
		}
		return BankswitchFA2, nil
	case 32768:
		return fingerprint32k(scan(data)), nil
	case 65536:
		return fingerprint64k(scan(data)), nil
	}

	if len(data) > 4096 && len(data)%2048 == 0 {
		fp := scan(data)
		if fp[Bankswitch3E] {
			return Bankswitch3E, nil
		}
		if fp[Bankswitch8k3F] {
			return Bankswitch8k3F, nil
		}
	}

	return 0, curated.Errorf(UnsupportedSizeError, len(data))
}
