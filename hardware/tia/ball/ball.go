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

// Package ball implements the ball object of the TIA. The ball is the simplest
// of the TIA's movable objects but it shares the position counter, render
// latency and HMOVE behaviour of the missile and player objects.
//
// The position counter counts the 160 visible colour clocks of a scanline.
// Rendering is triggered when the counter reaches 156 but the first pixel is
// not drawn until four clocks later. This latency is represented by a render
// counter that starts at -4.
package ball

import (
	"fmt"
	"strings"
)

// number of colour clocks in the visible part of the scanline. the position
// counter wraps at this value
const counterMax = 160

// the value of the position counter that triggers rendering
const renderTrigger = 156

// the render counter starts at this value. pixels are drawn when the counter
// is zero or above
const renderCounterOffset = -4

// the position counter is reset to one of these values by RESBL depending on
// whether the TIA is in HBLANK
const (
	resetCounterHblank  = 159
	resetCounterVisible = 157
)

// Ball represents the ball object.
type Ball struct {
	// position counter. 0 to 159
	counter int

	// rendering of the ball has been triggered. the ball is drawn while the
	// render counter is between zero and the width
	rendering     bool
	renderCounter int

	// width in pixels. one of 1, 2, 4 or 8
	width int

	// width actually used for the current render. differs from width when
	// the starfield effect is active
	effectiveWidth int

	// the ball is visible on the current clock
	visible bool

	// enable bits. the old value is updated from the new value when GRP1 is
	// written. the vertical delay bit selects which of the two is used
	enabledNew  bool
	enabledOld  bool
	verticalDel bool

	// the motion clock at which HMOVE movement stops. the value written to
	// HMBL XOR 8
	hmmClocks int
	moving    bool

	// position counter at the most recent movement tick
	lastMovementTick int
}

// NewBall is the preferred method of initialisation for the Ball type.
func NewBall() *Ball {
	bl := &Ball{}
	bl.Reset()
	return bl
}

// Reset the ball to its power-on state.
func (bl *Ball) Reset() {
	*bl = Ball{
		width:          1,
		effectiveWidth: 1,
		hmmClocks:      0x08,
	}
}

func (bl *Ball) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("pos=%03d w=%d", bl.counter, bl.width))
	if bl.rendering {
		s.WriteString(fmt.Sprintf(" rc=%d", bl.renderCounter))
	}
	if bl.moving {
		s.WriteString(fmt.Sprintf(" hm=%d", bl.hmmClocks))
	}
	if bl.Enabled() {
		s.WriteString(" en")
	}
	if bl.verticalDel {
		s.WriteString(" vdel")
	}
	return s.String()
}

// Counter returns the value of the position counter.
func (bl *Ball) Counter() int {
	return bl.counter
}

// RenderCounter returns the value of the render counter and whether the ball
// is currently being rendered.
func (bl *Ball) RenderCounter() (int, bool) {
	return bl.renderCounter, bl.rendering
}

// Width returns the width of the ball in pixels.
func (bl *Ball) Width() int {
	return bl.width
}

// Enabled returns true if the ball is enabled, taking the vertical delay into
// account.
func (bl *Ball) Enabled() bool {
	if bl.verticalDel {
		return bl.enabledOld
	}
	return bl.enabledNew
}

// IsVisible returns true if a ball pixel is output on the current clock.
func (bl *Ball) IsVisible() bool {
	return bl.visible && bl.Enabled()
}

// Tick the ball on a visible colour clock. The pixelClock argument should be
// true if the tick is the normal pixel clock and not an HMOVE clock.
func (bl *Ball) Tick(pixelClock bool) {
	bl.visible = bl.rendering && bl.renderCounter >= 0

	// the starfield effect occurs when movement clocks and pixel clocks
	// coincide during the visible part of the scanline. "Cosmic Ark" relies
	// on this
	starfield := bl.moving && pixelClock

	if bl.counter == renderTrigger {
		bl.rendering = true
		bl.renderCounter = renderCounterOffset

		delta := (bl.counter + counterMax - bl.lastMovementTick) % 4
		if starfield && delta == 3 && bl.width < 4 {
			bl.renderCounter++
		}

		switch delta {
		case 3:
			if bl.width == 1 {
				bl.effectiveWidth = 2
			} else {
				bl.effectiveWidth = bl.width
			}
		case 2:
			bl.effectiveWidth = 0
		default:
			bl.effectiveWidth = bl.width
		}
	} else if bl.rendering {
		bl.renderCounter++

		w := bl.width
		if starfield {
			w = bl.effectiveWidth
		}
		if bl.renderCounter >= w {
			bl.rendering = false
		}
	}

	bl.counter++
	if bl.counter >= counterMax {
		bl.counter = 0
	}
}

// StartMovement is called when HMOVE is strobed.
func (bl *Ball) StartMovement() {
	bl.moving = true
}

// MovementTick is called on every HMOVE movement clock. The clock argument is
// the value of the TIA's movement ripple counter. Movement stops exactly when
// the clock value matches the value written to HMBL XOR 8. During HBLANK the
// movement clock is an extra tick of the position counter. Returns true if
// the ball is still moving.
func (bl *Ball) MovementTick(clock int, hblank bool) bool {
	bl.lastMovementTick = bl.counter

	if clock == bl.hmmClocks {
		bl.moving = false
	}

	if bl.moving && hblank {
		bl.Tick(false)
	}

	return bl.moving
}

// IsMoving returns true if the ball is receiving HMOVE movement clocks.
func (bl *Ball) IsMoving() bool {
	return bl.moving
}

// ResetPosition is called when RESBL is strobed. Rendering starts immediately
// when the reset happens outside of HBLANK.
func (bl *Ball) ResetPosition(hblank bool) {
	if hblank {
		bl.counter = resetCounterHblank
	} else {
		bl.counter = resetCounterVisible
	}
	bl.rendering = true
	bl.renderCounter = renderCounterOffset + (bl.counter - resetCounterVisible)
}

// SetMotion is called when HMBL is written. Only the upper nibble is
// significant.
func (bl *Ball) SetMotion(value uint8) {
	bl.hmmClocks = int((value>>4)^0x08) & 0x0f
}

// ClearMotion is called when HMCLR is strobed.
func (bl *Ball) ClearMotion() {
	bl.SetMotion(0)
}

// SetWidth is called when CTRLPF is written. The width is taken from bits 4
// and 5.
func (bl *Ball) SetWidth(ctrlpf uint8) {
	bl.width = 1 << ((ctrlpf >> 4) & 0x03)
}

// SetEnable is called when ENABL is written. Only bit 1 is significant.
func (bl *Ball) SetEnable(value uint8) {
	bl.enabledNew = value&0x02 == 0x02
}

// SetVerticalDelay is called when VDELBL is written. Only bit 0 is
// significant.
func (bl *Ball) SetVerticalDelay(value uint8) {
	bl.verticalDel = value&0x01 == 0x01
}

// ShuffleEnable is called when GRP1 is written. The new enable bit is copied
// to the old enable bit.
func (bl *Ball) ShuffleEnable() {
	bl.enabledOld = bl.enabledNew
}
