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

package mapper

// SplitBanks divides cartridge data into banks of bankSize bytes. The data is
// copied so that the banks can be poked without changing the original image.
// Any data left over after the last complete bank is ignored.
func SplitBanks(data []uint8, bankSize int) [][]uint8 {
	n := len(data) / bankSize
	banks := make([][]uint8, n)
	for k := 0; k < n; k++ {
		banks[k] = make([]uint8, bankSize)
		offset := k * bankSize
		copy(banks[k], data[offset:offset+bankSize])
	}
	return banks
}
