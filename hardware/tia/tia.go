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

package tia

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher2600core/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2600core/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2600core/hardware/television/specification"
	"github.com/jetsetilly/gopher2600core/hardware/tia/audio"
	"github.com/jetsetilly/gopher2600core/hardware/tia/ball"
	"github.com/jetsetilly/gopher2600core/hardware/tia/delay"
	"github.com/jetsetilly/gopher2600core/hardware/tia/framemanager"
)

// bits of the VSYNC and VBLANK registers.
const (
	vsyncMask         = 0x02
	vblankMask        = 0x02
	vblankLatchMask   = 0x40
	vblankDumpPaddles = 0x80
)

// bits of the CTRLPF register.
const (
	ctrlpfReflect  = 0x01
	ctrlpfScore    = 0x02
	ctrlpfPriority = 0x04
)

// the number of colour clocks of HBLANK added to the scanline by an HMOVE
const hmoveHblankExtension = 8

// RSYNC moves the horizontal clock to this value. the new scanline begins
// three colour clocks later
const rsyncClock = specification.HorizClksScanline - 3

// the number of extra colour clocks before a write to the playfield registers
// is seen
const delayPlayfield = 1

// AudioMixer implementations receive the audio samples produced by the TIA.
type AudioMixer interface {
	SetAudio(sample int16) error
}

// TIA contains all the sub-components of the VCS TIA sub-system.
type TIA struct {
	spec specification.Spec

	FrameManager *framemanager.FrameManager
	Ball         *ball.Ball
	Audio        *audio.Audio

	// the four paddles connected to INPT0 to INPT3
	Paddles [4]Paddle

	delay *delay.Ticker

	// horizontal clock. 0 to 227
	hclock int

	// the HMOVE latch extends HBLANK by eight colour clocks. it is cleared
	// when the horizontal clock wraps
	hmoveLatch bool

	// HMOVE movement clocks occur every four colour clocks. the movement
	// clock is compared to the motion value of each object
	movementInProgress bool
	movementClock      int

	// WSYNC has been written and the CPU's RDY line is low
	wsync bool

	vsync     bool
	vblankReg uint8

	// playfield as a 20 bit value. bit 0 is the leftmost playfield pixel
	playfield uint32
	ctrlpf    uint8

	colup0 uint8
	colup1 uint8
	colupf uint8
	colubk uint8

	// ball/playfield collision latch
	cxblpf bool

	// fire buttons on INPT4 and INPT5 and the latches used when bit 6 of
	// VBLANK is set
	fire      [2]bool
	fireLatch [2]bool

	mixers []AudioMixer

	// number of colour clocks since reset
	clocks uint64
}

// NewTIA is the preferred method of initialisation for the TIA type. The
// factory is used to create the frame surfaces and can be nil.
func NewTIA(spec specification.Spec, factory framemanager.SurfaceFactory) *TIA {
	tia := &TIA{
		spec:         spec,
		FrameManager: framemanager.NewFrameManager(spec, factory),
		Ball:         ball.NewBall(),
		Audio:        audio.NewAudio(),
		delay:        delay.NewTicker("tia"),
	}
	tia.Reset()
	return tia
}

// Reset the TIA to its power-on state. Attached audio mixers are kept.
func (tia *TIA) Reset() {
	tia.FrameManager.Reset()
	tia.Ball.Reset()
	tia.Audio.Reset()
	tia.delay.Drop()

	tia.hclock = 0
	tia.hmoveLatch = false
	tia.movementInProgress = false
	tia.movementClock = 0
	tia.wsync = false
	tia.vsync = false
	tia.vblankReg = 0
	tia.playfield = 0
	tia.ctrlpf = 0
	tia.colup0 = 0
	tia.colup1 = 0
	tia.colupf = 0
	tia.colubk = 0
	tia.cxblpf = false
	tia.fireLatch = [2]bool{}
	tia.clocks = 0

	for i := range tia.Paddles {
		tia.Paddles[i].reset()
	}
}

func (tia *TIA) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("hclock=%03d", tia.hclock))
	if tia.isHblank() {
		s.WriteString(" HBLANK")
	}
	if tia.hmoveLatch {
		s.WriteString(" HMOVE")
	}
	if tia.wsync {
		s.WriteString(" WSYNC")
	}
	s.WriteString("\n")
	s.WriteString(tia.FrameManager.String())
	s.WriteString("\nball: ")
	s.WriteString(tia.Ball.String())
	s.WriteString("\n")
	s.WriteString(tia.Audio.String())
	return s.String()
}

// Spec returns the television specification of the TIA.
func (tia *TIA) Spec() specification.Spec {
	return tia.spec
}

// AddAudioMixer registers an implementation of AudioMixer.
func (tia *TIA) AddAudioMixer(m AudioMixer) {
	tia.mixers = append(tia.mixers, m)
}

// HClock returns the current value of the horizontal clock.
func (tia *TIA) HClock() int {
	return tia.hclock
}

// Clocks returns the number of colour clocks since reset.
func (tia *TIA) Clocks() uint64 {
	return tia.clocks
}

// RDY returns the state of the CPU's RDY line. It is false between a write
// to WSYNC and the start of the next scanline.
func (tia *TIA) RDY() bool {
	return !tia.wsync
}

// SetFire sets the state of the fire button connected to INPT4 (player 0) or
// INPT5 (player 1).
func (tia *TIA) SetFire(player int, pressed bool) {
	if player < 0 || player > 1 {
		return
	}
	tia.fire[player] = pressed
	if pressed && tia.vblankReg&vblankLatchMask == vblankLatchMask {
		tia.fireLatch[player] = true
	}
}

func (tia *TIA) isHblank() bool {
	if tia.hclock < specification.HorizClksHBlank {
		return true
	}
	return tia.hmoveLatch && tia.hclock < specification.HorizClksHBlank+hmoveHblankExtension
}

// Cycle moves the state of the TIA forward one colour clock. Returns the state
// of the CPU's RDY line. An error is returned only if an audio mixer fails.
func (tia *TIA) Cycle() (bool, error) {
	tia.clocks++
	tia.delay.Tick()

	hblank := tia.isHblank()

	// "one extra CLK pulse is sent every 4 CLK"
	if tia.movementInProgress && tia.hclock&0x03 == 0 {
		ct := tia.movementClock
		if ct > 15 {
			ct = 0
		}
		tia.movementInProgress = tia.Ball.MovementTick(ct, hblank)
		tia.movementClock++
	}

	var err error
	if tia.Audio.Step(tia.hclock) {
		sample := tia.Audio.Mix()
		for _, m := range tia.mixers {
			if e := m.SetAudio(sample); e != nil && err == nil {
				err = e
			}
		}
	}

	if !hblank {
		x := tia.hclock - specification.HorizClksHBlank
		tia.Ball.Tick(true)
		tia.FrameManager.SetPixel(x, tia.pixel(x))
	}

	tia.hclock++
	if tia.hclock >= specification.HorizClksScanline {
		tia.newScanline()
	}

	return !tia.wsync, err
}

func (tia *TIA) newScanline() {
	tia.hclock = 0
	tia.wsync = false
	tia.hmoveLatch = false

	for i := range tia.Paddles {
		tia.Paddles[i].step()
	}

	tia.FrameManager.NextLine()
}

// the state of the playfield at the visible pixel x. the right half of the
// screen repeats or reflects the left half
func (tia *TIA) playfieldBit(x int) bool {
	idx := x / 4
	if idx >= 20 {
		idx -= 20
		if tia.ctrlpf&ctrlpfReflect == ctrlpfReflect {
			idx = 19 - idx
		}
	}
	return tia.playfield&(1<<idx) != 0
}

// resolve the colour of the visible pixel x and update the collision latch
func (tia *TIA) pixel(x int) uint8 {
	pf := tia.playfieldBit(x)
	bl := tia.Ball.IsVisible()

	if pf && bl {
		tia.cxblpf = true
	}

	if bl {
		return tia.colupf
	}

	if pf {
		// score mode colours the playfield with the player colours. priority
		// mode disables score mode
		if tia.ctrlpf&(ctrlpfScore|ctrlpfPriority) == ctrlpfScore {
			if x < specification.HorizClksVisible/2 {
				return tia.colup0
			}
			return tia.colup1
		}
		return tia.colupf
	}

	return tia.colubk
}

// PF0 is four bits, in reverse order, PF1 is eight bits in normal order and
// PF2 is eight bits in reverse order
func (tia *TIA) setPF0(data uint8) {
	tia.playfield = (tia.playfield & 0xffff0) | uint32(data>>4)
}

func (tia *TIA) setPF1(data uint8) {
	var v uint32
	for i := 0; i < 8; i++ {
		if data&(0x80>>i) != 0 {
			v |= 1 << i
		}
	}
	tia.playfield = (tia.playfield & 0xff00f) | (v << 4)
}

func (tia *TIA) setPF2(data uint8) {
	tia.playfield = (tia.playfield & 0x00fff) | (uint32(data) << 12)
}

// Read implements the bus.Chip interface.
func (tia *TIA) Read(address uint16) (uint8, error) {
	switch address & memorymap.MaskTIARead {
	case addresses.CXBLPF:
		if tia.cxblpf {
			return 0x80, nil
		}
		return 0x00, nil

	case addresses.INPT0, addresses.INPT1, addresses.INPT2, addresses.INPT3:
		pdl := &tia.Paddles[(address&memorymap.MaskTIARead)-addresses.INPT0]
		return pdl.value(), nil

	case addresses.INPT4:
		return tia.fireValue(0), nil

	case addresses.INPT5:
		return tia.fireValue(1), nil
	}

	// collisions between players and missiles are not emulated
	return 0x00, nil
}

func (tia *TIA) fireValue(player int) uint8 {
	pressed := tia.fire[player]
	if tia.vblankReg&vblankLatchMask == vblankLatchMask {
		if pressed {
			tia.fireLatch[player] = true
		}
		pressed = tia.fireLatch[player]
	}

	// the fire buttons are active low
	if pressed {
		return 0x00
	}
	return 0x80
}

// Write implements the bus.Chip interface.
func (tia *TIA) Write(address uint16, data uint8) error {
	switch address & memorymap.MaskTIAWrite {
	case addresses.VSYNC:
		tia.vsync = data&vsyncMask == vsyncMask
		tia.FrameManager.SetVsync(tia.vsync)

	case addresses.VBLANK:
		tia.vblankReg = data
		tia.FrameManager.SetVblank(data&vblankMask == vblankMask)
		for i := range tia.Paddles {
			tia.Paddles[i].ground(data&vblankDumpPaddles == vblankDumpPaddles)
		}
		if data&vblankLatchMask != vblankLatchMask {
			tia.fireLatch = [2]bool{}
		}

	case addresses.WSYNC:
		tia.wsync = true

	case addresses.RSYNC:
		tia.hclock = rsyncClock

	case addresses.COLUP0:
		tia.colup0 = data & 0xfe

	case addresses.COLUP1:
		tia.colup1 = data & 0xfe

	case addresses.COLUPF:
		tia.colupf = data & 0xfe

	case addresses.COLUBK:
		tia.colubk = data & 0xfe

	case addresses.CTRLPF:
		tia.ctrlpf = data
		tia.Ball.SetWidth(data)

	case addresses.PF0:
		tia.delay.Schedule(delayPlayfield, func() { tia.setPF0(data) }, "PF0")

	case addresses.PF1:
		tia.delay.Schedule(delayPlayfield, func() { tia.setPF1(data) }, "PF1")

	case addresses.PF2:
		tia.delay.Schedule(delayPlayfield, func() { tia.setPF2(data) }, "PF2")

	case addresses.RESBL:
		tia.Ball.ResetPosition(tia.isHblank())

	case addresses.AUDC0:
		tia.Audio.Write(audio.AUDC0, data)

	case addresses.AUDC1:
		tia.Audio.Write(audio.AUDC1, data)

	case addresses.AUDF0:
		tia.Audio.Write(audio.AUDF0, data)

	case addresses.AUDF1:
		tia.Audio.Write(audio.AUDF1, data)

	case addresses.AUDV0:
		tia.Audio.Write(audio.AUDV0, data)

	case addresses.AUDV1:
		tia.Audio.Write(audio.AUDV1, data)

	case addresses.GRP1:
		tia.Ball.ShuffleEnable()

	case addresses.ENABL:
		tia.Ball.SetEnable(data)

	case addresses.HMBL:
		tia.Ball.SetMotion(data)

	case addresses.VDELBL:
		tia.Ball.SetVerticalDelay(data)

	case addresses.HMOVE:
		tia.hmoveLatch = true
		tia.movementInProgress = true
		tia.movementClock = 0
		tia.Ball.StartMovement()

	case addresses.HMCLR:
		tia.Ball.ClearMotion()

	case addresses.CXCLR:
		tia.cxblpf = false
	}

	// the player and missile registers are accepted but have no effect
	return nil
}
