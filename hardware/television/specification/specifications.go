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

// Package specification contains the definitions, including colour, of the
// NTSC, PAL and SECAM television protocols supported by the emulation.
package specification

import (
	"image/color"
	"strings"

	"github.com/jetsetilly/gopher2600core/curated"
)

// SpecList is the list of specifications that the television may adopt.
var SpecList = []string{"NTSC", "PAL", "SECAM"}

// UnknownSpecError is returned by SearchSpec() when the requested
// specification is not recognised.
const UnknownSpecError = "specification: unknown specification (%s)"

// Spec is used to define the television specifications.
type Spec struct {
	ID string

	// the colour palette. indexed by the TIA colour value shifted right by
	// one bit
	Colors [128]color.RGBA

	// the number of scanlines in each part of the frame. ScanlinesVBlank
	// includes the three VSYNC scanlines
	//
	// "A typical frame will consists of 3 vertical sync (VSYNC) lines*, 37
	// vertical blank (VBLANK) lines, 192 TV picture lines, and 30 overscan
	// lines."
	ScanlinesVSync    int
	ScanlinesVBlank   int
	ScanlinesVisible  int
	ScanlinesOverscan int

	// the total number of scanlines for the entire frame is the sum of the
	// vblank, visible and overscan portions
	ScanlinesTotal int

	// the scanline at which the VBLANK should be turned off (Top) and turned
	// back on again (Bottom)
	//
	//	Top = VBlank
	//	Bottom = Top + Visible
	ScanlineTop    int
	ScanlineBottom int

	// the frequency of the CPU clock in Hz
	ClockHz float64

	// the number of frames per second implied by the clock and the number of
	// scanlines
	FramesPerSecond float64
}

// GetColor returns the RGB value of a TIA colour value.
func (spec *Spec) GetColor(col uint8) color.RGBA {
	return spec.Colors[col>>1]
}

// SampleRate returns the number of audio samples per second. The TIA
// produces two samples per scanline, or one every 114 colour clocks. The
// colour clock is three times the CPU clock.
func (spec *Spec) SampleRate() int {
	return int(spec.ClockHz * 3 / 114)
}

// From the Stella Programmer's Guide:
//
// "Each scan lines starts with 68 clock counts of horizontal blank (not seen
// on the TV screen) followed by 160 clock counts to fully scan one line of TV
// picture."
//
// Horizontal clock counts are the same for all TV specifications.
const (
	HorizClksHBlank   = 68
	HorizClksVisible  = 160
	HorizClksScanline = 228
)

// The specifications supported by the emulation.
var (
	SpecNTSC  Spec
	SpecPAL   Spec
	SpecSECAM Spec
)

func newSpec(id string, clock float64, vblank int, visible int, overscan int) Spec {
	spec := Spec{
		ID:                id,
		ScanlinesVSync:    3,
		ScanlinesVBlank:   vblank,
		ScanlinesVisible:  visible,
		ScanlinesOverscan: overscan,
		ScanlinesTotal:    vblank + visible + overscan,
		ClockHz:           clock,
	}
	spec.ScanlineTop = spec.ScanlinesVBlank
	spec.ScanlineBottom = spec.ScanlineTop + spec.ScanlinesVisible
	spec.FramesPerSecond = clock / 76 / float64(spec.ScanlinesTotal)
	return spec
}

func init() {
	SpecNTSC = newSpec("NTSC", 1193182, 40, 192, 30)
	SpecPAL = newSpec("PAL", 1182298, 48, 228, 36)
	SpecSECAM = newSpec("SECAM", 1187500, 48, 228, 36)

	for i := range SpecNTSC.Colors {
		col := uint8(i << 1)
		SpecNTSC.Colors[i] = generateNTSC(col)
		SpecPAL.Colors[i] = generatePAL(col)
		SpecSECAM.Colors[i] = generateSECAM(col)
	}
}

// SearchSpec returns the specification with the matching ID. The search is
// not case sensitive.
func SearchSpec(id string) (Spec, error) {
	switch strings.ToUpper(id) {
	case "NTSC":
		return SpecNTSC, nil
	case "PAL":
		return SpecPAL, nil
	case "SECAM":
		return SpecSECAM, nil
	}
	return Spec{}, curated.Errorf(UnknownSpecError, id)
}
