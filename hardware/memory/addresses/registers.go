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

// TIA read registers. The TIA decodes four address lines on a read.
const (
	CXM0P  uint16 = 0x00
	CXM1P  uint16 = 0x01
	CXP0FB uint16 = 0x02
	CXP1FB uint16 = 0x03
	CXM0FB uint16 = 0x04
	CXM1FB uint16 = 0x05
	CXBLPF uint16 = 0x06
	CXPPMM uint16 = 0x07
	INPT0  uint16 = 0x08
	INPT1  uint16 = 0x09
	INPT2  uint16 = 0x0a
	INPT3  uint16 = 0x0b
	INPT4  uint16 = 0x0c
	INPT5  uint16 = 0x0d
)

// TIA write registers. The TIA decodes six address lines on a write.
const (
	VSYNC  uint16 = 0x00
	VBLANK uint16 = 0x01
	WSYNC  uint16 = 0x02
	RSYNC  uint16 = 0x03
	NUSIZ0 uint16 = 0x04
	NUSIZ1 uint16 = 0x05
	COLUP0 uint16 = 0x06
	COLUP1 uint16 = 0x07
	COLUPF uint16 = 0x08
	COLUBK uint16 = 0x09
	CTRLPF uint16 = 0x0a
	REFP0  uint16 = 0x0b
	REFP1  uint16 = 0x0c
	PF0    uint16 = 0x0d
	PF1    uint16 = 0x0e
	PF2    uint16 = 0x0f
	RESP0  uint16 = 0x10
	RESP1  uint16 = 0x11
	RESM0  uint16 = 0x12
	RESM1  uint16 = 0x13
	RESBL  uint16 = 0x14
	AUDC0  uint16 = 0x15
	AUDC1  uint16 = 0x16
	AUDF0  uint16 = 0x17
	AUDF1  uint16 = 0x18
	AUDV0  uint16 = 0x19
	AUDV1  uint16 = 0x1a
	GRP0   uint16 = 0x1b
	GRP1   uint16 = 0x1c
	ENAM0  uint16 = 0x1d
	ENAM1  uint16 = 0x1e
	ENABL  uint16 = 0x1f
	HMP0   uint16 = 0x20
	HMP1   uint16 = 0x21
	HMM0   uint16 = 0x22
	HMM1   uint16 = 0x23
	HMBL   uint16 = 0x24
	VDELP0 uint16 = 0x25
	VDELP1 uint16 = 0x26
	VDELBL uint16 = 0x27
	RESMP0 uint16 = 0x28
	RESMP1 uint16 = 0x29
	HMOVE  uint16 = 0x2a
	HMCLR  uint16 = 0x2b
	CXCLR  uint16 = 0x2c
)

// RIOT registers. The timer registers are written through TIM1T to T1024T and
// read through INTIM and TIMINT.
const (
	SWCHA  uint16 = 0x0280
	SWACNT uint16 = 0x0281
	SWCHB  uint16 = 0x0282
	SWBCNT uint16 = 0x0283
	INTIM  uint16 = 0x0284
	TIMINT uint16 = 0x0285
	TIM1T  uint16 = 0x0294
	TIM8T  uint16 = 0x0295
	TIM64T uint16 = 0x0296
	T1024T uint16 = 0x0297
)
