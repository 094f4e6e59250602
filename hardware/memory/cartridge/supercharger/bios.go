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
	"os"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/mapper"
)

// BIOSFile is the conventional filename of the supercharger BIOS.
const BIOSFile = "Supercharger BIOS.bin"

const biosSize = 2048

// newStubBIOS creates a minimal BIOS that triggers the tape load and waits.
// sufficient for fastload images, which don't need the BIOS to decode the
// tape.
func newStubBIOS() []uint8 {
	bios := make([]uint8, biosSize)

	code := []uint8{
		0xad, 0xf9, 0xff, // LDA $FFF9
		0x4c, 0x00, 0xf8, // JMP $F800
	}
	copy(bios, code)

	// reset vector
	bios[0x07fc] = 0x00
	bios[0x07fd] = 0xf8

	return bios
}

// LoadBIOS reads the BIOS from the named file.
func LoadBIOS(filename string) ([]uint8, error) {
	d, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(mapper.InvalidImageError, mapper.BankswitchAR, err)
	}
	if len(d) != biosSize {
		return nil, curated.Errorf(mapper.InvalidImageError, mapper.BankswitchAR, fmt.Sprintf("BIOS is %d bytes and not %d", len(d), biosSize))
	}
	return d, nil
}
