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

package addresses

import "github.com/jetsetilly/gopher2600core/hardware/memory/memorymap"

// CanonicalReadSymbols lists the readable chip addresses and their canonical
// names.
var CanonicalReadSymbols = map[uint16]string{
	// TIA
	CXM0P:  "CXM0P",
	CXM1P:  "CXM1P",
	CXP0FB: "CXP0FB",
	CXP1FB: "CXP1FB",
	CXM0FB: "CXM0FB",
	CXM1FB: "CXM1FB",
	CXBLPF: "CXBLPF",
	CXPPMM: "CXPPMM",
	INPT0:  "INPT0",
	INPT1:  "INPT1",
	INPT2:  "INPT2",
	INPT3:  "INPT3",
	INPT4:  "INPT4",
	INPT5:  "INPT5",

	// RIOT
	SWCHA:  "SWCHA",
	SWACNT: "SWACNT",
	SWCHB:  "SWCHB",
	SWBCNT: "SWBCNT",
	INTIM:  "INTIM",
	TIMINT: "TIMINT",
	0x0286: "INTIM",
	0x0287: "TIMINT",
}

// CanonicalWriteSymbols lists the writable chip addresses and their canonical
// names.
var CanonicalWriteSymbols = map[uint16]string{
	// TIA
	VSYNC:  "VSYNC",
	VBLANK: "VBLANK",
	WSYNC:  "WSYNC",
	RSYNC:  "RSYNC",
	NUSIZ0: "NUSIZ0",
	NUSIZ1: "NUSIZ1",
	COLUP0: "COLUP0",
	COLUP1: "COLUP1",
	COLUPF: "COLUPF",
	COLUBK: "COLUBK",
	CTRLPF: "CTRLPF",
	REFP0:  "REFP0",
	REFP1:  "REFP1",
	PF0:    "PF0",
	PF1:    "PF1",
	PF2:    "PF2",
	RESP0:  "RESP0",
	RESP1:  "RESP1",
	RESM0:  "RESM0",
	RESM1:  "RESM1",
	RESBL:  "RESBL",
	AUDC0:  "AUDC0",
	AUDC1:  "AUDC1",
	AUDF0:  "AUDF0",
	AUDF1:  "AUDF1",
	AUDV0:  "AUDV0",
	AUDV1:  "AUDV1",
	GRP0:   "GRP0",
	GRP1:   "GRP1",
	ENAM0:  "ENAM0",
	ENAM1:  "ENAM1",
	ENABL:  "ENABL",
	HMP0:   "HMP0",
	HMP1:   "HMP1",
	HMM0:   "HMM0",
	HMM1:   "HMM1",
	HMBL:   "HMBL",
	VDELP0: "VDELP0",
	VDELP1: "VDELP1",
	VDELBL: "VDELBL",
	RESMP0: "RESMP0",
	RESMP1: "RESMP1",
	HMOVE:  "HMOVE",
	HMCLR:  "HMCLR",
	CXCLR:  "CXCLR",

	// RIOT
	SWCHA:  "SWCHA",
	SWACNT: "SWACNT",
	SWCHB:  "SWCHB",
	SWBCNT: "SWBCNT",
	TIM1T:  "TIM1T",
	TIM8T:  "TIM8T",
	TIM64T: "TIM64T",
	T1024T: "T1024T",
}

// Read is a sparse array of the canonical names of the readable chip
// addresses. An empty string means the address is not readable.
var Read []string

// Write is a sparse array of the canonical names of the writable chip
// addresses. An empty string means the address is not writable.
var Write []string

func init() {
	Read = make([]string, memorymap.MemtopRIOT+1)
	for k, v := range CanonicalReadSymbols {
		Read[k] = v
	}

	Write = make([]string, memorymap.MemtopRIOT+1)
	for k, v := range CanonicalWriteSymbols {
		Write[k] = v
	}
}

// ReadSymbol returns the canonical name for a read of the address. The
// address can be in any mirror. The empty string is returned for addresses
// that are not chip registers.
func ReadSymbol(address uint16) string {
	a, area := memorymap.MapAddress(address, true)
	if area != memorymap.TIA && area != memorymap.RIOT {
		return ""
	}
	return Read[a]
}

// WriteSymbol returns the canonical name for a write to the address. The
// address can be in any mirror.
func WriteSymbol(address uint16) string {
	a, area := memorymap.MapAddress(address, false)
	if area != memorymap.TIA && area != memorymap.RIOT {
		return ""
	}
	return Write[a]
}
