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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a multiline string listing every contiguous run of
// addresses in the 13 bit address space and the area it maps to.
func Summary() string {
	s := strings.Builder{}

	_, current := MapAddress(0, true)
	start := uint16(0)

	for a := uint16(1); a <= Memtop; a++ {
		_, area := MapAddress(a, true)
		if area != current {
			fmt.Fprintf(&s, "%04x -> %04x\t%s\n", start, a-1, current)
			current = area
			start = a
		}
	}

	fmt.Fprintf(&s, "%04x -> %04x\t%s\n", start, Memtop, current)

	return s.String()
}
