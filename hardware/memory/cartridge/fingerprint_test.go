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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher2600core/test"
)

// image of the specified size with the patterns placed at regular intervals.
func signedImage(size int, patterns ...[]uint8) []uint8 {
	data := make([]uint8, size)
	offset := 0x100
	for _, p := range patterns {
		copy(data[offset:], p)
		offset += 0x100
	}
	return data
}

var (
	sigE0      = []uint8{0x8d, 0xe0, 0x1f}
	sig3F      = []uint8{0x85, 0x3f}
	sig3E      = []uint8{0x85, 0x3e, 0xa9, 0x00}
	sigUA      = []uint8{0x8d, 0x40, 0x02}
	sigFE      = []uint8{0x20, 0x00, 0xd0, 0xc6, 0xc5}
	sigE7      = []uint8{0xad, 0xe5, 0xff}
	sigEF      = []uint8{0x0c, 0xe0, 0xff}
	sigDPCplus = []uint8("DPC+")
	sigCDF     = []uint8("CDF")
)

func TestDetect(t *testing.T) {
	for _, tc := range []struct {
		name     string
		data     []uint8
		expected cartridge.Type
	}{
		{name: "2k", data: signedImage(2048), expected: cartridge.Vanilla2k},
		{name: "4k", data: signedImage(4096), expected: cartridge.Vanilla4k},

		{name: "8k", data: signedImage(8192), expected: cartridge.Bankswitch8kF8},
		{name: "8k E0", data: signedImage(8192, sigE0), expected: cartridge.Bankswitch8kE0},
		{name: "8k 3F", data: signedImage(8192, sig3F, sig3F), expected: cartridge.Bankswitch8k3F},
		{name: "8k single 3F", data: signedImage(8192, sig3F), expected: cartridge.Bankswitch8kF8},
		{name: "8k UA", data: signedImage(8192, sigUA), expected: cartridge.Bankswitch8kUA},
		{name: "8k FE", data: signedImage(8192, sigFE), expected: cartridge.Bankswitch8kFE},
		{name: "8k E0 before 3F", data: signedImage(8192, sig3F, sigE0, sig3F), expected: cartridge.Bankswitch8kE0},
		{name: "8k 3F before UA", data: signedImage(8192, sigUA, sig3F, sig3F), expected: cartridge.Bankswitch8k3F},
		{name: "8k UA before FE", data: signedImage(8192, sigFE, sigUA), expected: cartridge.Bankswitch8kUA},

		{name: "DPC", data: signedImage(10240), expected: cartridge.BankswitchDPC},
		{name: "DPC with extra bytes", data: signedImage(10495), expected: cartridge.BankswitchDPC},
		{name: "12k", data: signedImage(12288), expected: cartridge.Bankswitch12kFA},

		{name: "16k", data: signedImage(16384), expected: cartridge.Bankswitch16kF6},
		{name: "16k E7", data: signedImage(16384, sigE7), expected: cartridge.Bankswitch16kE7},

		{name: "24k", data: signedImage(24576), expected: cartridge.BankswitchFA2},
		{name: "28k", data: signedImage(28672), expected: cartridge.BankswitchFA2},
		{name: "29k", data: signedImage(29696), expected: cartridge.BankswitchFA2},
		{name: "29k DPC+", data: signedImage(29696, sigDPCplus, sigDPCplus), expected: cartridge.BankswitchDPCplus},

		{name: "32k", data: signedImage(32768), expected: cartridge.Bankswitch32kF4},
		{name: "32k CDF", data: signedImage(32768, sigCDF, sigCDF, sigCDF), expected: cartridge.BankswitchCDF},
		{name: "32k DPC+", data: signedImage(32768, sigDPCplus, sigDPCplus), expected: cartridge.BankswitchDPCplus},
		{name: "32k CDF before DPC+", data: signedImage(32768, sigDPCplus, sigDPCplus, sigCDF, sigCDF, sigCDF), expected: cartridge.BankswitchCDF},
		{name: "32k 3F", data: signedImage(32768, sig3F, sig3F), expected: cartridge.Bankswitch8k3F},

		{name: "64k", data: signedImage(65536), expected: cartridge.Bankswitch64kF0},
		{name: "64k EF", data: signedImage(65536, sigEF), expected: cartridge.Bankswitch64kEF},

		{name: "large 3F", data: signedImage(131072, sig3F, sig3F), expected: cartridge.Bankswitch8k3F},
		{name: "large 3E", data: signedImage(131072, sig3E), expected: cartridge.Bankswitch3E},
		{name: "large 3E before 3F", data: signedImage(131072, sig3F, sig3F, sig3E), expected: cartridge.Bankswitch3E},

		{name: "supercharger fastload", data: signedImage(8448), expected: cartridge.BankswitchAR},
		{name: "supercharger multiload", data: signedImage(8448 * 3), expected: cartridge.BankswitchAR},
		{name: "supercharger wav", data: append([]uint8("RIFF"), make([]uint8, 100)...), expected: cartridge.BankswitchAR},
		{name: "supercharger mp3", data: append([]uint8("ID3"), make([]uint8, 100)...), expected: cartridge.BankswitchAR},
	} {
		typ, err := cartridge.Detect(tc.data)
		if test.ExpectSuccess(t, err, tc.name) {
			test.ExpectEquality(t, typ, tc.expected, tc.name)
		}
	}
}

func TestDetectUnsupported(t *testing.T) {
	for _, size := range []int{0, 100, 3000, 6144, 131072} {
		_, err := cartridge.Detect(make([]uint8, size))
		test.ExpectFailure(t, err, size)
		test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedSizeError), size)
	}
}

func TestNewCartridgeFromImage(t *testing.T) {
	cart, err := cartridge.NewCartridgeFromImage(signedImage(16384, sigE7))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Type(), cartridge.Bankswitch16kE7)

	cart, err = cartridge.NewCartridgeFromImage(bankedImage(8192, 4096))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Type(), cartridge.Bankswitch8kF8)
}
