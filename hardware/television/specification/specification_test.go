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

package specification_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/television/specification"
	"github.com/jetsetilly/gopher2600core/test"
)

func TestMetrics(t *testing.T) {
	test.ExpectEquality(t, specification.SpecNTSC.ScanlinesVisible, 192)
	test.ExpectEquality(t, specification.SpecNTSC.ScanlinesVBlank, 40)
	test.ExpectEquality(t, specification.SpecNTSC.ScanlinesOverscan, 30)
	test.ExpectEquality(t, specification.SpecNTSC.ScanlinesTotal, 262)
	test.ExpectEquality(t, specification.SpecNTSC.ScanlineBottom, 232)

	test.ExpectEquality(t, specification.SpecPAL.ScanlinesVisible, 228)
	test.ExpectEquality(t, specification.SpecPAL.ScanlinesVBlank, 48)
	test.ExpectEquality(t, specification.SpecPAL.ScanlinesOverscan, 36)
	test.ExpectEquality(t, specification.SpecPAL.ScanlinesTotal, 312)

	test.ExpectEquality(t, specification.SpecSECAM.ScanlinesTotal, specification.SpecPAL.ScanlinesTotal)

	test.ExpectApproximate(t, specification.SpecNTSC.FramesPerSecond, 59.92, 0.001)
	test.ExpectApproximate(t, specification.SpecPAL.FramesPerSecond, 49.86, 0.001)
}

func TestSampleRate(t *testing.T) {
	test.ExpectEquality(t, specification.SpecNTSC.SampleRate(), 31399)
	test.ExpectEquality(t, specification.SpecPAL.SampleRate(), 31113)
	test.ExpectEquality(t, specification.SpecSECAM.SampleRate(), 31250)
}

func TestSearchSpec(t *testing.T) {
	spec, err := specification.SearchSpec("pal")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, spec.ID, "PAL")

	_, err = specification.SearchSpec("MONO")
	test.ExpectSuccess(t, curated.Is(err, specification.UnknownSpecError))
}

func TestColors(t *testing.T) {
	black := color.RGBA{A: 255}
	test.ExpectEquality(t, specification.SpecNTSC.GetColor(0x00), black)
	test.ExpectEquality(t, specification.SpecNTSC.GetColor(0x01), black)
	test.ExpectEquality(t, specification.SpecPAL.GetColor(0x00), black)
	test.ExpectEquality(t, specification.SpecSECAM.GetColor(0x0e), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	// greys have equal components
	c := specification.SpecNTSC.GetColor(0x08)
	test.ExpectEquality(t, c.R, c.G)
	test.ExpectEquality(t, c.G, c.B)

	// hue 4 is red-ish on NTSC
	c = specification.SpecNTSC.GetColor(0x46)
	test.ExpectInequality(t, c.R, c.B)
}
