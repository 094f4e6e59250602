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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopher2600core/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2600core/test"
)

const validMemMap = `0000 -> 007f	TIA
0080 -> 00ff	RAM
0100 -> 017f	TIA
0180 -> 01ff	RAM
0200 -> 027f	TIA
0280 -> 02ff	RIOT
0300 -> 037f	TIA
0380 -> 03ff	RIOT
0400 -> 047f	TIA
0480 -> 04ff	RAM
0500 -> 057f	TIA
0580 -> 05ff	RAM
0600 -> 067f	TIA
0680 -> 06ff	RIOT
0700 -> 077f	TIA
0780 -> 07ff	RIOT
0800 -> 087f	TIA
0880 -> 08ff	RAM
0900 -> 097f	TIA
0980 -> 09ff	RAM
0a00 -> 0a7f	TIA
0a80 -> 0aff	RIOT
0b00 -> 0b7f	TIA
0b80 -> 0bff	RIOT
0c00 -> 0c7f	TIA
0c80 -> 0cff	RAM
0d00 -> 0d7f	TIA
0d80 -> 0dff	RAM
0e00 -> 0e7f	TIA
0e80 -> 0eff	RIOT
0f00 -> 0f7f	TIA
0f80 -> 0fff	RIOT
1000 -> 1fff	Cartridge
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestMapAddress(t *testing.T) {
	// cartridge mirrors
	a, area := memorymap.MapAddress(0xf123, true)
	test.ExpectEquality(t, area, memorymap.Cartridge)
	test.ExpectEquality(t, a&memorymap.CartridgeBits, 0x0123)

	// RAM mirror with A8 set
	a, area = memorymap.MapAddress(0x01ab, true)
	test.ExpectEquality(t, area, memorymap.RAM)
	test.ExpectEquality(t, a, 0x00ab)
	test.ExpectSuccess(t, area.IsPIA())

	// timer registers are only decoded on write
	a, area = memorymap.MapAddress(0x0296, false)
	test.ExpectEquality(t, area, memorymap.RIOT)
	test.ExpectEquality(t, a, 0x0296)
	a, _ = memorymap.MapAddress(0x0296, true)
	test.ExpectEquality(t, a, 0x0286)

	// TIA reads decode four address lines and writes decode six
	a, area = memorymap.MapAddress(0x0046, true)
	test.ExpectEquality(t, area, memorymap.TIA)
	test.ExpectEquality(t, a, 0x0006)
	a, _ = memorymap.MapAddress(0x0014, false)
	test.ExpectEquality(t, a, 0x0014)
	test.ExpectFailure(t, area.IsPIA())
}
