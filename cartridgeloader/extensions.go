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

package cartridgeloader

import (
	"sort"
	"strings"
)

// the mapping implied by a file extension. extensions not in the table, and
// the generic extensions, imply automatic detection
var extensionMapping = map[string]string{
	".2K":  "2k",
	".4K":  "4k",
	".F8":  "F8",
	".F6":  "F6",
	".F4":  "F4",
	".FA":  "FA",
	".FA2": "FA2",
	".FE":  "FE",
	".E0":  "E0",
	".E7":  "E7",
	".3F":  "3F",
	".3E":  "3E",
	".EF":  "EF",
	".F0":  "F0",
	".UA":  "UA",
	".CV":  "CV",
	".AR":  "AR",
	".DPC": "DPC",
	".DP+": "DPC+",
	".CDF": "CDF",
	".WAV": "AR",
	".MP3": "AR",
}

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package. The list is sorted.
var FileExtensions = []string{".A26", ".BIN", ".ROM"}

func init() {
	for ext := range extensionMapping {
		FileExtensions = append(FileExtensions, ext)
	}
	sort.Strings(FileExtensions)
}

// mappingFromExtension returns the mapping implied by the filename
// extension. Alphabetic characters in the extension can be in upper or
// lower case.
func mappingFromExtension(ext string) string {
	if m, ok := extensionMapping[strings.ToUpper(ext)]; ok {
		return m
	}
	return "AUTO"
}
