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

package framemanager

import (
	"image"

	"github.com/jetsetilly/gopher2600core/hardware/television/specification"
)

// Surface is a single frame of TIA output. Each pixel is a TIA colour value.
// The colour value is converted to RGB with the palette of the surface's
// specification.
type Surface struct {
	Spec   specification.Spec
	Width  int
	Height int
	Pixels []uint8
}

// NewSurface is the preferred method of initialisation for the Surface type.
func NewSurface(spec specification.Spec, width int, height int) *Surface {
	return &Surface{
		Spec:   spec,
		Width:  width,
		Height: height,
		Pixels: make([]uint8, width*height),
	}
}

// SetPixel sets the colour value of a pixel. Pixels outside the surface are
// ignored.
func (s *Surface) SetPixel(x int, y int, col uint8) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return
	}
	s.Pixels[y*s.Width+x] = col
}

// Pixel returns the colour value of a pixel.
func (s *Surface) Pixel(x int, y int) uint8 {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return 0
	}
	return s.Pixels[y*s.Width+x]
}

// Image converts the surface to an RGBA image using the palette of the
// surface's specification.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			img.SetRGBA(x, y, s.Spec.GetColor(s.Pixel(x, y)))
		}
	}
	return img
}
