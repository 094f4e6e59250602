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

package tia_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher2600core/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2600core/hardware/television/specification"
	"github.com/jetsetilly/gopher2600core/hardware/tia"
	"github.com/jetsetilly/gopher2600core/hardware/tia/framemanager"
	"github.com/jetsetilly/gopher2600core/test"
)

type frames struct {
	surfaces []*framemanager.Surface
}

func newTIA() (*tia.TIA, *frames) {
	f := &frames{}
	tv := tia.NewTIA(specification.SpecNTSC, nil)
	tv.FrameManager.OnNewFrame = func(s *framemanager.Surface) {
		f.surfaces = append(f.surfaces, s)
	}
	return tv, f
}

func write(t *testing.T, tv *tia.TIA, address uint16, data uint8) {
	t.Helper()
	test.DemandSuccess(t, tv.Write(address, data))
}

func read(t *testing.T, tv *tia.TIA, address uint16) uint8 {
	t.Helper()
	v, err := tv.Read(address)
	test.DemandSuccess(t, err)
	return v
}

func clocks(tv *tia.TIA, n int) {
	for i := 0; i < n; i++ {
		_, _ = tv.Cycle()
	}
}

// run the TIA until the horizontal clock reaches the value
func clockTo(tv *tia.TIA, hclock int) {
	for tv.HClock() != hclock {
		_, _ = tv.Cycle()
	}
}

// put the frame manager into the frame state at the start of a scanline
func startFrame(t *testing.T, tv *tia.TIA) {
	clockTo(tv, 0)
	write(t, tv, addresses.VSYNC, 0x02)
	clocks(tv, 3*specification.HorizClksScanline)
	write(t, tv, addresses.VSYNC, 0x00)
	write(t, tv, addresses.VBLANK, 0x00)
	test.DemandEquality(t, tv.FrameManager.State(), framemanager.Frame)
}

// finalise the frame and return the surface
func endFrame(t *testing.T, tv *tia.TIA, f *frames) *framemanager.Surface {
	write(t, tv, addresses.VSYNC, 0x02)
	test.DemandEquality(t, len(f.surfaces) > 0, true)
	return f.surfaces[len(f.surfaces)-1]
}

func TestScanline(t *testing.T) {
	tv, _ := newTIA()
	test.ExpectEquality(t, tv.FrameManager.Scanline(), 0)

	clocks(tv, specification.HorizClksScanline-1)
	test.ExpectEquality(t, tv.HClock(), specification.HorizClksScanline-1)
	test.ExpectEquality(t, tv.FrameManager.Scanline(), 0)

	clocks(tv, 1)
	test.ExpectEquality(t, tv.HClock(), 0)
	test.ExpectEquality(t, tv.FrameManager.Scanline(), 1)
	test.ExpectEquality(t, tv.Clocks(), uint64(specification.HorizClksScanline))
}

func TestWSYNC(t *testing.T) {
	tv, _ := newTIA()

	clockTo(tv, 100)
	test.ExpectSuccess(t, tv.RDY())
	write(t, tv, addresses.WSYNC, 0x00)
	test.ExpectFailure(t, tv.RDY())

	// RDY stays low until the horizontal clock wraps
	n := 0
	for {
		n++
		rdy, err := tv.Cycle()
		test.DemandSuccess(t, err)
		if rdy {
			break
		}
	}
	test.ExpectEquality(t, n, specification.HorizClksScanline-100)
	test.ExpectEquality(t, tv.HClock(), 0)
}

func TestRSYNC(t *testing.T) {
	tv, _ := newTIA()

	clockTo(tv, 50)
	write(t, tv, addresses.RSYNC, 0x00)
	clocks(tv, 2)
	test.ExpectInequality(t, tv.HClock(), 0)
	clocks(tv, 1)
	test.ExpectEquality(t, tv.HClock(), 0)
	test.ExpectEquality(t, tv.FrameManager.Scanline(), 1)
}

func TestPlayfield(t *testing.T) {
	tv, f := newTIA()
	startFrame(t, tv)

	write(t, tv, addresses.COLUPF, 0x1e)
	write(t, tv, addresses.COLUBK, 0x80)

	// the leftmost playfield pixel only
	write(t, tv, addresses.PF0, 0x10)
	clocks(tv, specification.HorizClksScanline)

	// reflected
	write(t, tv, addresses.CTRLPF, 0x01)
	clocks(tv, specification.HorizClksScanline)

	s := endFrame(t, tv, f)

	for x := 0; x < 4; x++ {
		test.ExpectEquality(t, s.Pixel(x, 0), 0x1e, x)
		test.ExpectEquality(t, s.Pixel(80+x, 0), 0x1e, x)
		test.ExpectEquality(t, s.Pixel(156+x, 0), 0x80, x)

		test.ExpectEquality(t, s.Pixel(x, 1), 0x1e, x)
		test.ExpectEquality(t, s.Pixel(80+x, 1), 0x80, x)
		test.ExpectEquality(t, s.Pixel(156+x, 1), 0x1e, x)
	}
	test.ExpectEquality(t, s.Pixel(4, 0), 0x80)
}

func TestPlayfieldBitOrder(t *testing.T) {
	tv, f := newTIA()
	startFrame(t, tv)
	write(t, tv, addresses.COLUPF, 0x1e)

	// PF1 is drawn most significant bit first. PF2 least significant bit
	// first
	write(t, tv, addresses.PF1, 0x80)
	write(t, tv, addresses.PF2, 0x01)
	clocks(tv, specification.HorizClksScanline)
	s := endFrame(t, tv, f)

	test.ExpectEquality(t, s.Pixel(16, 0), 0x1e)
	test.ExpectEquality(t, s.Pixel(20, 0), 0x00)
	test.ExpectEquality(t, s.Pixel(44, 0), 0x00)
	test.ExpectEquality(t, s.Pixel(48, 0), 0x1e)
}

func TestPlayfieldDelay(t *testing.T) {
	tv, f := newTIA()
	startFrame(t, tv)
	write(t, tv, addresses.COLUPF, 0x1e)

	// write to PF1 when the beam is at pixel 40. the new value is seen on
	// the second colour clock after the write
	clockTo(tv, specification.HorizClksHBlank+40)
	write(t, tv, addresses.PF1, 0xff)
	clocks(tv, specification.HorizClksScanline)
	s := endFrame(t, tv, f)

	test.ExpectEquality(t, s.Pixel(40, 0), 0x00)
	test.ExpectEquality(t, s.Pixel(41, 0), 0x1e)
}

func TestScoreMode(t *testing.T) {
	tv, f := newTIA()
	startFrame(t, tv)
	write(t, tv, addresses.COLUP0, 0x20)
	write(t, tv, addresses.COLUP1, 0x40)
	write(t, tv, addresses.COLUPF, 0x1e)
	write(t, tv, addresses.PF0, 0xf0)
	write(t, tv, addresses.CTRLPF, 0x02)
	clocks(tv, specification.HorizClksScanline)

	// priority disables score mode
	write(t, tv, addresses.CTRLPF, 0x06)
	clocks(tv, specification.HorizClksScanline)
	s := endFrame(t, tv, f)

	test.ExpectEquality(t, s.Pixel(0, 0), 0x20)
	test.ExpectEquality(t, s.Pixel(80, 0), 0x40)
	test.ExpectEquality(t, s.Pixel(0, 1), 0x1e)
	test.ExpectEquality(t, s.Pixel(80, 1), 0x1e)
}

func TestHMOVEBlank(t *testing.T) {
	tv, f := newTIA()
	startFrame(t, tv)

	write(t, tv, addresses.COLUBK, 0x1e)
	clocks(tv, specification.HorizClksScanline)

	// HMOVE at the start of the scanline extends HBLANK by eight pixels
	write(t, tv, addresses.HMOVE, 0x00)
	clocks(tv, specification.HorizClksScanline)

	// the extension lasts for one scanline only
	clocks(tv, specification.HorizClksScanline)

	s := endFrame(t, tv, f)
	test.ExpectEquality(t, s.Pixel(0, 0), 0x1e)
	for x := 0; x < 8; x++ {
		test.ExpectEquality(t, s.Pixel(x, 1), 0x00, x)
	}
	test.ExpectEquality(t, s.Pixel(8, 1), 0x1e)
	test.ExpectEquality(t, s.Pixel(0, 2), 0x1e)
}

// the first visible pixel of the ball on the scanline. -1 if the ball is not
// drawn
func ballPosition(s *framemanager.Surface, y int, col uint8) int {
	for x := 0; x < s.Width; x++ {
		if s.Pixel(x, y) == col {
			return x
		}
	}
	return -1
}

func TestBall(t *testing.T) {
	tv, f := newTIA()
	startFrame(t, tv)

	write(t, tv, addresses.COLUPF, 0x1e)
	write(t, tv, addresses.ENABL, 0x02)

	// RESBL mid-line. rendering starts immediately and the first pixel is
	// drawn four clocks later
	clockTo(tv, specification.HorizClksHBlank+20)
	write(t, tv, addresses.RESBL, 0x00)
	clockTo(tv, 0)

	// the ball is drawn at the same position on the next scanline
	clocks(tv, specification.HorizClksScanline)

	// HMOVE with a motion value of +1 moves the ball one pixel to the left
	write(t, tv, addresses.HMBL, 0x10)
	write(t, tv, addresses.HMOVE, 0x00)
	clocks(tv, specification.HorizClksScanline)

	// HMOVE with no motion moves the ball eight pixels to the right
	write(t, tv, addresses.HMCLR, 0x00)
	write(t, tv, addresses.HMOVE, 0x00)
	clocks(tv, specification.HorizClksScanline)

	s := endFrame(t, tv, f)

	test.ExpectEquality(t, ballPosition(s, 0, 0x1e), 24)
	test.ExpectEquality(t, ballPosition(s, 1, 0x1e), 24)
	test.ExpectEquality(t, ballPosition(s, 2, 0x1e), 23)
	test.ExpectEquality(t, ballPosition(s, 3, 0x1e), 23)

	// width from CTRLPF
	test.ExpectEquality(t, s.Pixel(24, 1), 0x1e)
	test.ExpectEquality(t, s.Pixel(25, 1), 0x00)
}

func TestBallWidth(t *testing.T) {
	tv, f := newTIA()
	startFrame(t, tv)

	write(t, tv, addresses.COLUPF, 0x1e)
	write(t, tv, addresses.ENABL, 0x02)
	write(t, tv, addresses.CTRLPF, 0x30)
	clockTo(tv, specification.HorizClksHBlank+20)
	write(t, tv, addresses.RESBL, 0x00)
	clockTo(tv, 0)
	clocks(tv, specification.HorizClksScanline)
	s := endFrame(t, tv, f)

	for x := 24; x < 32; x++ {
		test.ExpectEquality(t, s.Pixel(x, 1), 0x1e, x)
	}
	test.ExpectEquality(t, s.Pixel(32, 1), 0x00)
}

func TestCollision(t *testing.T) {
	tv, _ := newTIA()
	startFrame(t, tv)

	test.ExpectEquality(t, read(t, tv, addresses.CXBLPF), 0x00)

	write(t, tv, addresses.ENABL, 0x02)
	clockTo(tv, specification.HorizClksHBlank+20)
	write(t, tv, addresses.RESBL, 0x00)
	clocks(tv, specification.HorizClksScanline)

	// no playfield, no collision
	test.ExpectEquality(t, read(t, tv, addresses.CXBLPF), 0x00)

	write(t, tv, addresses.PF1, 0xff)
	clocks(tv, specification.HorizClksScanline)
	test.ExpectEquality(t, read(t, tv, addresses.CXBLPF), 0x80)

	// mirrors of the register are decoded
	test.ExpectEquality(t, read(t, tv, 0x0046), 0x80)

	write(t, tv, addresses.CXCLR, 0x00)
	test.ExpectEquality(t, read(t, tv, addresses.CXBLPF), 0x00)
}

func TestPaddles(t *testing.T) {
	tv, _ := newTIA()

	tv.Paddles[0].SetResistance(0.0)
	tv.Paddles[1].SetResistance(2.0)
	test.ExpectEquality(t, tv.Paddles[1].Resistance(), 1.0)

	// ground the capacitors
	write(t, tv, addresses.VBLANK, 0x80)
	clocks(tv, specification.HorizClksScanline*2)
	test.ExpectEquality(t, read(t, tv, addresses.INPT0), 0x00)
	test.ExpectEquality(t, read(t, tv, addresses.INPT1), 0x00)

	// release the capacitors
	write(t, tv, addresses.VBLANK, 0x00)
	clockTo(tv, 0)
	clocks(tv, specification.HorizClksScanline)
	test.ExpectEquality(t, read(t, tv, addresses.INPT0), 0x80)
	test.ExpectEquality(t, read(t, tv, addresses.INPT1), 0x00)

	clocks(tv, specification.HorizClksScanline*10)
	test.ExpectEquality(t, read(t, tv, addresses.INPT1), 0x00)
}

func TestFireButtons(t *testing.T) {
	tv, _ := newTIA()

	// buttons are active low
	test.ExpectEquality(t, read(t, tv, addresses.INPT4), 0x80)
	tv.SetFire(0, true)
	test.ExpectEquality(t, read(t, tv, addresses.INPT4), 0x00)
	test.ExpectEquality(t, read(t, tv, addresses.INPT5), 0x80)
	tv.SetFire(0, false)
	test.ExpectEquality(t, read(t, tv, addresses.INPT4), 0x80)

	// latched mode
	write(t, tv, addresses.VBLANK, 0x40)
	tv.SetFire(1, true)
	tv.SetFire(1, false)
	test.ExpectEquality(t, read(t, tv, addresses.INPT5), 0x00)

	// turning off latched mode resets the latch
	write(t, tv, addresses.VBLANK, 0x00)
	test.ExpectEquality(t, read(t, tv, addresses.INPT5), 0x80)
}

type mixer struct {
	samples int
	err     error
}

func (m *mixer) SetAudio(sample int16) error {
	m.samples++
	return m.err
}

func TestAudio(t *testing.T) {
	tv, _ := newTIA()
	m := &mixer{}
	tv.AddAudioMixer(m)

	clocks(tv, specification.HorizClksScanline*10)
	test.ExpectEquality(t, m.samples, 20)

	write(t, tv, addresses.AUDV0, 0x0f)
	test.ExpectEquality(t, tv.Audio.Channel0.Registers.Volume, 0x0f)

	m.err = errors.New("test")
	var err error
	for i := 0; i < specification.HorizClksScanline && err == nil; i++ {
		_, err = tv.Cycle()
	}
	test.ExpectFailure(t, err)
}

func TestReset(t *testing.T) {
	tv, _ := newTIA()
	clockTo(tv, 100)
	write(t, tv, addresses.WSYNC, 0x00)
	tv.Reset()
	test.ExpectEquality(t, tv.HClock(), 0)
	test.ExpectSuccess(t, tv.RDY())
	test.ExpectEquality(t, tv.FrameManager.State(), framemanager.WaitForVsyncStart)
}
