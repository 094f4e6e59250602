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

package specification

import (
	"image/color"
	"math"
)

func clamp(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// the min/max values for the Y component of the luminance
const (
	minY = 0.35
	maxY = 1.00
)

// saturation of chroma in final colour
const saturation = 0.3

// hue 1 is "gold" and has the same phase as the colour burst, which is 180
// degrees by definition. the adjustment moves hue 1 from green towards gold
const (
	phiBurst = 180
	phiAdj   = -57.28
)

// phase distance between hues. the NTSC value is from the "VCS Domestic Field
// Service Manual"
const (
	ntscPhase = 26.7
	palPhase  = 16.35
)

func grey(Y float64) color.RGBA {
	g := uint8(Y * 255)
	return color.RGBA{R: g, G: g, B: g, A: 255}
}

func generateNTSC(col uint8) color.RGBA {
	lum := (col & 0x0e) >> 1
	hue := (col & 0xf0) >> 4

	if hue == 0x00 && lum == 0x00 {
		return color.RGBA{A: 255}
	}

	Y := minY + (float64(lum)/8)*(maxY-minY)
	if hue == 0x00 {
		return grey(Y)
	}

	phi := (float64(hue)-1)*-ntscPhase + phiAdj + phiBurst
	phi *= math.Pi / 180

	I := Y * saturation * math.Sin(phi)
	Q := Y * saturation * math.Cos(phi)

	// YIQ to RGB using the NTSC 1953 colorimetry
	R := clamp(Y + (0.956 * I) + (0.619 * Q))
	G := clamp(Y - (0.272 * I) - (0.647 * Q))
	B := clamp(Y - (1.106 * I) + (1.703 * Q))

	return color.RGBA{R: uint8(R * 255), G: uint8(G * 255), B: uint8(B * 255), A: 255}
}

func generatePAL(col uint8) color.RGBA {
	lum := (col & 0x0e) >> 1
	hue := (col & 0xf0) >> 4

	Y := minY + (float64(lum)/8)*(maxY-minY)

	// PAL has no colour for hues 0, 1, 14 and 15
	if hue <= 0x01 || hue >= 0x0e {
		if lum == 0x00 {
			return color.RGBA{A: 255}
		}
		return grey(Y)
	}

	// odd hues run from green to lilac and even hues run from gold to purple
	var phiHue float64
	if hue&0x01 == 0x01 {
		phiHue = float64(hue) * -palPhase
	} else {
		phiHue = (float64(hue) - 2) * palPhase
	}

	phi := (phiHue + phiAdj + phiBurst) * math.Pi / 180

	U := Y * saturation * -math.Sin(phi)
	V := Y * saturation * -math.Cos(phi)

	// YUV to RGB using BT.470
	R := clamp(Y + (1.140 * V))
	G := clamp(Y - (0.395 * U) - (0.581 * V))
	B := clamp(Y + (2.033 * U))

	return color.RGBA{R: uint8(R * 255), G: uint8(G * 255), B: uint8(B * 255), A: 255}
}

// SECAM only uses the luminance bits, which select one of eight fixed colours.
var secam = [8]uint32{0x000000, 0x2121ff, 0xf03c79, 0xff50ff, 0x7fff00, 0x7fffff, 0xffff3f, 0xffffff}

func generateSECAM(col uint8) color.RGBA {
	v := secam[(col&0x0e)>>1]
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}
