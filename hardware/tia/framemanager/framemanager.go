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

// Package framemanager locates the boundaries of the frames produced by the
// TIA. Frame boundaries are primarily found with the VSYNC signal but ROMs
// that produce irregular or missing VSYNC pulses are handled by falling back
// to counting scanlines.
//
// A Surface is requested from the SurfaceFactory only when a frame starts and
// is handed to the OnNewFrame function when the frame is finalised. Once a
// surface has been handed over the FrameManager never touches it again.
package framemanager

import (
	"fmt"

	"github.com/jetsetilly/gopher2600core/hardware/television/specification"
	"github.com/jetsetilly/gopher2600core/logger"
)

// State of the FrameManager.
type State int

// List of valid State values.
const (
	WaitForVsyncStart State = iota
	WaitForVsyncEnd
	WaitForFrameStart
	Frame
	Overscan
)

func (s State) String() string {
	switch s {
	case WaitForVsyncStart:
		return "waitForVsyncStart"
	case WaitForVsyncEnd:
		return "waitForVsyncEnd"
	case WaitForFrameStart:
		return "waitForFrameStart"
	case Frame:
		return "frame"
	case Overscan:
		return "overscan"
	}
	return "unknown state"
}

// MaxLinesWithoutVsync is the number of scanlines the FrameManager will wait
// for a VSYNC before falling back to detecting the start of the frame by
// counting VBLANK lines.
const MaxLinesWithoutVsync = 50

// VisibleOverscan is the number of overscan lines that are included in the
// frame surface.
const VisibleOverscan = 20

// SurfaceFactory creates a new Surface for a frame.
type SurfaceFactory func() *Surface

// FrameManager is the frame boundary detector.
type FrameManager struct {
	// VblankLines, KernelLines and OverscanLines are taken from the
	// specification
	VblankLines   int
	KernelLines   int
	OverscanLines int

	// OnNewFrame is called when a frame is finalised. Ownership of the
	// surface passes to the function
	OnNewFrame func(*Surface)

	spec    specification.Spec
	factory SurfaceFactory

	state       State
	lineInState int

	// number of scanlines since the most recent change of VSYNC
	linesWithoutVsync int

	vsync  bool
	vblank bool

	// the surface of the frame being built. nil outside of the frame state
	surface *Surface

	// number of frames finalised since reset
	frameNum int
}

// NewFrameManager is the preferred method of initialisation for the
// FrameManager type. A nil factory creates surfaces with NewSurface().
func NewFrameManager(spec specification.Spec, factory SurfaceFactory) *FrameManager {
	fm := &FrameManager{
		VblankLines:   spec.ScanlinesVBlank,
		KernelLines:   spec.ScanlinesVisible,
		OverscanLines: spec.ScanlinesOverscan,
		spec:          spec,
		factory:       factory,
	}

	if fm.factory == nil {
		fm.factory = func() *Surface {
			return NewSurface(fm.spec, specification.HorizClksVisible, fm.Height())
		}
	}

	fm.Reset()

	return fm
}

// Reset the FrameManager. Any partial frame is discarded.
func (fm *FrameManager) Reset() {
	fm.state = WaitForVsyncStart
	fm.lineInState = 0
	fm.linesWithoutVsync = 0
	fm.vsync = false
	fm.vblank = false
	fm.surface = nil
	fm.frameNum = 0
}

func (fm *FrameManager) String() string {
	return fmt.Sprintf("%s line=%d frame=%d", fm.state, fm.lineInState, fm.frameNum)
}

// Height is the number of scanlines in a frame surface.
func (fm *FrameManager) Height() int {
	return fm.KernelLines + VisibleOverscan
}

// State returns the current state of the FrameManager.
func (fm *FrameManager) State() State {
	return fm.state
}

// FrameNum returns the number of frames finalised since reset.
func (fm *FrameManager) FrameNum() int {
	return fm.frameNum
}

// Scanline returns the line in the current state.
func (fm *FrameManager) Scanline() int {
	return fm.lineInState
}

// SetPixel sets the pixel on the current scanline of the current frame
// surface. Pixels outside of the frame state are dropped.
func (fm *FrameManager) SetPixel(x int, col uint8) {
	if fm.state != Frame || fm.surface == nil {
		return
	}
	if fm.vblank {
		col = 0
	}
	fm.surface.SetPixel(x, fm.lineInState, col)
}

// NextLine is called by the TIA at the end of every scanline.
func (fm *FrameManager) NextLine() {
	fm.linesWithoutVsync++

	switch fm.state {
	case WaitForVsyncStart, WaitForVsyncEnd:
		if fm.linesWithoutVsync > MaxLinesWithoutVsync {
			logger.Logf(logger.Allow, "tia", "no VSYNC for %d lines", MaxLinesWithoutVsync)
			fm.setState(WaitForFrameStart)
			return
		}

	case WaitForFrameStart:
		// the frame starts when VBLANK is turned off or after the number of
		// lines required by the specification
		if !fm.vblank || fm.lineInState >= fm.VblankLines-1 {
			fm.setState(Frame)
			return
		}

	case Frame:
		if fm.lineInState >= fm.KernelLines+VisibleOverscan-1 {
			fm.finalise()
			fm.setState(Overscan)
			return
		}

	case Overscan:
		if fm.lineInState >= fm.OverscanLines-VisibleOverscan-1 {
			fm.setState(WaitForVsyncStart)
			return
		}
	}

	fm.lineInState++
}

// SetVsync is called by the TIA when the VSYNC bit is written.
func (fm *FrameManager) SetVsync(vsync bool) {
	if vsync == fm.vsync {
		return
	}
	fm.vsync = vsync
	fm.linesWithoutVsync = 0

	switch fm.state {
	case WaitForVsyncStart, WaitForFrameStart, Overscan:
		if vsync {
			fm.setState(WaitForVsyncEnd)
		}

	case WaitForVsyncEnd:
		if !vsync {
			fm.setState(WaitForFrameStart)
		}

	case Frame:
		if vsync {
			fm.finalise()
			fm.setState(WaitForVsyncEnd)
		}
	}
}

// SetVblank is called by the TIA when the VBLANK bit is written. Turning
// VBLANK off while waiting for the frame to start begins the frame on the
// current scanline.
func (fm *FrameManager) SetVblank(vblank bool) {
	fm.vblank = vblank
	if !vblank && fm.state == WaitForFrameStart {
		fm.setState(Frame)
	}
}

func (fm *FrameManager) setState(state State) {
	if fm.state == state {
		return
	}

	fm.state = state
	fm.lineInState = 0

	switch state {
	case WaitForVsyncStart:
		fm.linesWithoutVsync = 0
	case Frame:
		fm.surface = fm.factory()
	}
}

// hand the surface to the OnNewFrame function. the surface is forgotten
// whether or not there is a function to receive it
func (fm *FrameManager) finalise() {
	surface := fm.surface
	fm.surface = nil
	fm.frameNum++

	if fm.OnNewFrame != nil && surface != nil {
		fm.OnNewFrame(surface)
	}
}
