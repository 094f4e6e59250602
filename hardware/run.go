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

package hardware

// Cycle advances the VCS by one CPU cycle. The order of events is fixed: the
// CPU bus access, three TIA colour clocks, the RIOT timer and finally the
// cartridge's own hardware.
func (vcs *VCS) Cycle() error {
	if err := vcs.CPU.Cycle(); err != nil {
		return err
	}

	// the TIA controls the RDY line of the CPU. a write to WSYNC halts the
	// CPU until the start of the next scanline
	for i := 0; i < 3; i++ {
		rdy, err := vcs.TIA.Cycle()
		if err != nil {
			return err
		}
		if rdy {
			vcs.CPU.Resume()
		} else {
			vcs.CPU.Halt()
		}
	}

	vcs.RIOT.Step()

	if vcs.stepper != nil {
		if err := vcs.stepper.Step(); err != nil {
			return err
		}
	}

	// the supercharger fastload is completed at an instruction boundary
	if vcs.fastload != nil && vcs.CPU.IsFetching() && vcs.fastload.FastloadPending() {
		if err := vcs.fastload.Fastload(vcs); err != nil {
			return err
		}
	}

	return nil
}

// Step advances the VCS by one CPU instruction. If the CPU is halted then the
// VCS is cycled until the CPU is ready and the instruction has completed.
func (vcs *VCS) Step() error {
	executed := false
	for {
		halted := vcs.CPU.IsHalted()
		if err := vcs.Cycle(); err != nil {
			return err
		}
		executed = executed || !halted
		if executed && vcs.CPU.IsFetching() && !vcs.CPU.IsHalted() {
			return nil
		}
	}
}

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every instruction and the emulation stops when it
// returns false or an error. A nil continueCheck runs forever.
func (vcs *VCS) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := vcs.Step(); err != nil {
			return err
		}
		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunFrames runs the emulation until the specified number of frames have been
// completed. Frames are counted by the TIA's FrameManager, which always
// produces frames even if the program never writes to VSYNC.
func (vcs *VCS) RunFrames(numFrames int) error {
	target := vcs.TIA.FrameManager.FrameNum() + numFrames
	for vcs.TIA.FrameManager.FrameNum() < target {
		if err := vcs.Cycle(); err != nil {
			return err
		}
	}
	return nil
}
