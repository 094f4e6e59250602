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
	"github.com/jetsetilly/gopher2600core/hardware/memory/bus"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher2600core/test"
)

// bankedImage creates cartridge data in which every byte of a bank is the
// number of the bank. the first byte of every bank is 0xff so that the data
// does not look like it needs a superchip.
func bankedImage(size int, bankSize int) []uint8 {
	data := make([]uint8, size)
	for i := range data {
		if i%bankSize == 0 {
			data[i] = 0xff
		} else {
			data[i] = uint8(i / bankSize)
		}
	}
	return data
}

func peek(t *testing.T, cart cartridge.Cartridge, addr uint16) uint8 {
	t.Helper()
	v, err := cart.Peek(addr)
	test.ExpectSuccess(t, err)
	return v
}

func read(t *testing.T, cart cartridge.Cartridge, addr uint16) uint8 {
	t.Helper()
	v, err := cart.Read(addr)
	test.ExpectSuccess(t, err)
	return v
}

// listen sends a bus access to the cartridge if it is interested in them.
func listen(cart cartridge.Cartridge, addr uint16, data uint8, write bool) {
	if l, ok := cart.(cartridge.BusSniffer); ok {
		l.Listen(bus.Access{Address: addr, Data: data, Write: write})
	}
}

func TestTypeFromString(t *testing.T) {
	for _, typ := range []cartridge.Type{
		cartridge.Vanilla2k, cartridge.Bankswitch8kF8, cartridge.BankswitchDPCplus, cartridge.BankswitchAR,
	} {
		v, err := cartridge.TypeFromString(typ.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, typ)

		v, err = cartridge.TypeFromString(typ.Name())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, typ)
	}

	v, err := cartridge.TypeFromString("f8")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, cartridge.Bankswitch8kF8)

	v, err = cartridge.TypeFromString("tigervision")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, cartridge.Bankswitch8k3F)

	_, err = cartridge.TypeFromString("XYZ")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnknownTypeError))
}

func TestDescribe(t *testing.T) {
	test.ExpectEquality(t, cartridge.Describe(cartridge.Bankswitch8kF8), "8K Atari (F8)")
	test.ExpectEquality(t, cartridge.Describe(cartridge.Vanilla2k), "Standard 2K cartridge")
}

func TestInvalidImage(t *testing.T) {
	_, err := cartridge.NewCartridge(cartridge.Bankswitch8kF8, make([]uint8, 4096))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridge.InvalidImageError))

	_, err = cartridge.NewCartridge(cartridge.BankswitchDPC, make([]uint8, 8192))
	test.ExpectSuccess(t, curated.Is(err, cartridge.InvalidImageError))

	_, err = cartridge.NewCartridge(cartridge.Bankswitch8kE0, make([]uint8, 100))
	test.ExpectSuccess(t, curated.Is(err, cartridge.InvalidImageError))

	_, err = cartridge.NewCartridgeFromImage(make([]uint8, 100))
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedSizeError))
}

func TestCartridgeCopiesData(t *testing.T) {
	data := bankedImage(4096, 4096)
	cart, err := cartridge.NewCartridge(cartridge.Vanilla4k, data)
	test.DemandSuccess(t, err)

	data[0x100] = 0x99
	test.ExpectEquality(t, peek(t, cart, 0x100), uint8(0x00))
}

func TestVanilla(t *testing.T) {
	cart, err := cartridge.NewCartridge(cartridge.Vanilla2k, bankedImage(2048, 2048))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.NumBanks(), 1)

	// 2K cartridges are mirrored in the 4K cartridge space
	test.ExpectEquality(t, peek(t, cart, 0x0000), peek(t, cart, 0x0800))
	test.ExpectEquality(t, peek(t, cart, 0x0123), peek(t, cart, 0x0923))

	// writes have no effect
	test.ExpectSuccess(t, cart.Write(0x0010, 0x55))
	test.ExpectEquality(t, peek(t, cart, 0x0010), uint8(0x00))
}

func TestAtari8k(t *testing.T) {
	cart, err := cartridge.NewCartridge(cartridge.Bankswitch8kF8, bankedImage(8192, 4096))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cartridge.HasSuperchip(cart))

	// the start bank is the last bank
	test.ExpectEquality(t, cart.GetBank(0x0000).Number, 1)
	test.ExpectEquality(t, peek(t, cart, 0x0200), uint8(1))

	// a write to a hotspot switches banks
	test.ExpectSuccess(t, cart.Write(0x0ff8, 0x00))
	test.ExpectEquality(t, peek(t, cart, 0x0200), uint8(0))

	// as does a read
	read(t, cart, 0x0ff9)
	test.ExpectEquality(t, peek(t, cart, 0x0200), uint8(1))

	// peek does not switch
	peek(t, cart, 0x0ff8)
	test.ExpectEquality(t, cart.GetBank(0x0000).Number, 1)

	// switching is idempotent
	read(t, cart, 0x0ff8)
	read(t, cart, 0x0ff8)
	test.ExpectEquality(t, cart.GetBank(0x0000).Number, 0)

	cart.Reset()
	test.ExpectEquality(t, cart.GetBank(0x0000).Number, 1)
}

func TestAtariLargerSizes(t *testing.T) {
	for _, tc := range []struct {
		typ     cartridge.Type
		size    int
		hotspot uint16
	}{
		{typ: cartridge.Bankswitch16kF6, size: 16384, hotspot: 0x0ff6},
		{typ: cartridge.Bankswitch32kF4, size: 32768, hotspot: 0x0ff4},
		{typ: cartridge.Bankswitch64kEF, size: 65536, hotspot: 0x0fe0},
	} {
		cart, err := cartridge.NewCartridge(tc.typ, bankedImage(tc.size, 4096))
		test.DemandSuccess(t, err, tc.typ)

		n := tc.size / 4096
		test.ExpectEquality(t, cart.NumBanks(), n, tc.typ)
		test.ExpectEquality(t, cart.GetBank(0).Number, n-1, tc.typ)

		for b := 0; b < n; b++ {
			read(t, cart, tc.hotspot+uint16(b))
			test.ExpectEquality(t, peek(t, cart, 0x0400), uint8(b), tc.typ)
		}
	}
}

func TestSuperchip(t *testing.T) {
	// data with empty (zero) areas at the start of every bank
	data := make([]uint8, 16384)
	for i := range data {
		if i%4096 >= 256 {
			data[i] = uint8(i / 4096)
		}
	}

	cart, err := cartridge.NewCartridge(cartridge.Bankswitch16kF6, data)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cartridge.HasSuperchip(cart))

	// write port at $1000 and read port at $1080
	test.ExpectSuccess(t, cart.Write(0x0010, 0x42))
	test.ExpectEquality(t, read(t, cart, 0x0090), uint8(0x42))

	// RAM is independent of the current bank
	read(t, cart, 0x0ff6)
	test.ExpectEquality(t, read(t, cart, 0x0090), uint8(0x42))

	// non-superchip cartridge is not affected by writes
	cart, err = cartridge.NewCartridge(cartridge.Bankswitch16kF6, bankedImage(16384, 4096))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cartridge.HasSuperchip(cart))
	test.ExpectSuccess(t, cart.Write(0x0010, 0x42))
	test.ExpectEquality(t, read(t, cart, 0x0090), uint8(3))
}
