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

package main

import (
	"github.com/fogleman/gg"
	"github.com/jetsetilly/gopher2600core/hardware/tia/framemanager"
)

// colour clocks are roughly twice as wide as they are tall
const pixelWidth = 2

// savePNG renders the surface with the palette of its television
// specification.
func savePNG(filename string, s *framemanager.Surface) error {
	img := s.Image()

	dc := gg.NewContext(img.Bounds().Dx()*pixelWidth, img.Bounds().Dy())
	dc.Scale(pixelWidth, 1)
	dc.DrawImage(img, 0, 0)

	return dc.SavePNG(filename)
}
