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

package thumbulator

import (
	"fmt"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/logger"
)

// FaultError is the pattern for all errors returned by Run().
const FaultError = "thumbulator: %v"

// Memory map.
const (
	ROMOrigin         uint32 = 0x00000000
	RAMOrigin         uint32 = 0x40000000
	PeripheralsOrigin uint32 = 0xe0000000
)

// CycleBudget is the number of cycles a program has to return control to the
// 6507.
const CycleBudget = 500000

// ExitAddress is placed in the link register at the start of Run(). Because
// bit zero is clear, returning to it with BX exchanges to ARM state and so
// ends execution.
const ExitAddress uint32 = ROMOrigin

// NumRegisters is the number of registers visible in Thumb state.
const NumRegisters = 16

// register aliases.
const (
	rSP = 13 + iota
	rLR
	rPC
)

// Registers of the ARM.
type Registers [NumRegisters]uint32

// TrapHandler is called when the program exchanges to ARM state. The
// handler should return true if it emulated a function at the address, in
// which case execution continues from the link register. The handler can
// inspect and alter the registers to read arguments and return results.
//
// If the handler returns false then the address is not a known function and
// the program is considered to have finished.
type TrapHandler interface {
	Trap(addr uint32, regs *Registers) (bool, error)
}

// ARM implements the Thumb state of the ARM7TDMI.
type ARM struct {
	rom []uint8
	ram []uint8

	registers Registers
	status    status

	trap TrapHandler

	// number of cycles consumed by the most recent call to Run()
	cycles int

	// set by the exchange to ARM state when the trap handler has not
	// serviced the address
	finished bool

	// set when the current instruction has written to the PC
	branched bool

	// address of the instruction being executed
	instructionPC uint32
}

// NewARM is the preferred method of initialisation for the ARM type. The rom
// and ram slices are shared with the caller.
func NewARM(rom []uint8, ram []uint8, trap TrapHandler) *ARM {
	arm := &ARM{
		rom:  rom,
		ram:  ram,
		trap: trap,
	}
	logger.Logf(logger.Allow, "ARM7", "rom: %d bytes at %#08x", len(rom), ROMOrigin)
	logger.Logf(logger.Allow, "ARM7", "ram: %d bytes at %#08x", len(ram), RAMOrigin)
	return arm
}

func (arm *ARM) String() string {
	return fmt.Sprintf("R0=%08x R1=%08x R2=%08x R3=%08x SP=%08x LR=%08x PC=%08x %s",
		arm.registers[0], arm.registers[1], arm.registers[2], arm.registers[3],
		arm.registers[rSP], arm.registers[rLR], arm.registers[rPC], arm.status)
}

// Register returns the value of register n.
func (arm *ARM) Register(n int) uint32 {
	return arm.registers[n]
}

// Cycles returns the number of cycles consumed by the most recent call to
// Run().
func (arm *ARM) Cycles() int {
	return arm.cycles
}

// stack origin. the top few words of RAM are reserved by the driver
func (arm *ARM) stackOrigin() uint32 {
	return RAMOrigin + uint32(len(arm.ram)) - 0x24
}

// Run the Thumb program starting at entry. Bit zero of the entry address is
// ignored. Run returns when the program exchanges to ARM state at an address
// not serviced by the TrapHandler.
func (arm *ARM) Run(entry uint32) error {
	for i := range arm.registers {
		arm.registers[i] = 0
	}
	arm.status.reset()
	arm.registers[rSP] = arm.stackOrigin()
	arm.registers[rLR] = ExitAddress
	arm.registers[rPC] = entry &^ 0x01

	arm.cycles = 0
	arm.finished = false

	for !arm.finished {
		if arm.cycles > CycleBudget {
			return curated.Errorf(FaultError, fmt.Sprintf("cycle budget exceeded (pc 0x%08x)", arm.registers[rPC]))
		}

		arm.instructionPC = arm.registers[rPC]

		opcode, err := arm.read16(arm.instructionPC)
		if err != nil {
			return err
		}

		// the PC is two instructions ahead during execution
		arm.registers[rPC] = arm.instructionPC + 4
		arm.branched = false

		// one sequential cycle for the fetch
		arm.cycles++

		err = arm.execute(opcode)
		if err != nil {
			return err
		}

		if !arm.branched {
			arm.registers[rPC] = arm.instructionPC + 2
		}
	}

	return nil
}

// set PC to the target address. the pipeline refill costs two cycles
func (arm *ARM) branch(target uint32) {
	arm.registers[rPC] = target &^ 0x01
	arm.branched = true
	arm.cycles += 2
}

// exchange instruction set. in Thumb state the target address is taken as a
// branch. otherwise the trap handler is given the opportunity to emulate the
// function at the address
func (arm *ARM) exchange(target uint32) error {
	if target&0x01 == 0x01 {
		arm.branch(target)
		return nil
	}

	if arm.trap != nil {
		serviced, err := arm.trap.Trap(target, &arm.registers)
		if err != nil {
			return curated.Errorf(FaultError, err)
		}
		if serviced {
			arm.branch(arm.registers[rLR])
			return nil
		}
	}

	arm.finished = true
	arm.branched = true
	return nil
}

// mapAddress returns the memory area and index for the address. A nil slice
// indicates an access to the peripherals, which are ignored.
func (arm *ARM) mapAddress(addr uint32, write bool) ([]uint8, uint32, error) {
	if addr >= RAMOrigin && addr-RAMOrigin < uint32(len(arm.ram)) {
		return arm.ram, addr - RAMOrigin, nil
	}

	if !write && addr-ROMOrigin < uint32(len(arm.rom)) {
		return arm.rom, addr - ROMOrigin, nil
	}

	if addr >= PeripheralsOrigin {
		return nil, 0, nil
	}

	if write {
		return nil, 0, curated.Errorf(FaultError, fmt.Sprintf("unmapped write (0x%08x)", addr))
	}
	return nil, 0, curated.Errorf(FaultError, fmt.Sprintf("unmapped read (0x%08x)", addr))
}

func (arm *ARM) read8(addr uint32) (uint8, error) {
	mem, idx, err := arm.mapAddress(addr, false)
	if err != nil || mem == nil {
		return 0, err
	}
	return mem[idx], nil
}

func (arm *ARM) read16(addr uint32) (uint16, error) {
	if addr&0x01 != 0 {
		return 0, curated.Errorf(FaultError, fmt.Sprintf("unaligned read (0x%08x)", addr))
	}
	mem, idx, err := arm.mapAddress(addr, false)
	if err != nil || mem == nil {
		return 0, err
	}
	if idx+1 >= uint32(len(mem)) {
		return 0, curated.Errorf(FaultError, fmt.Sprintf("unmapped read (0x%08x)", addr))
	}
	return uint16(mem[idx]) | uint16(mem[idx+1])<<8, nil
}

func (arm *ARM) read32(addr uint32) (uint32, error) {
	if addr&0x03 != 0 {
		return 0, curated.Errorf(FaultError, fmt.Sprintf("unaligned read (0x%08x)", addr))
	}
	mem, idx, err := arm.mapAddress(addr, false)
	if err != nil || mem == nil {
		return 0, err
	}
	if idx+3 >= uint32(len(mem)) {
		return 0, curated.Errorf(FaultError, fmt.Sprintf("unmapped read (0x%08x)", addr))
	}
	return uint32(mem[idx]) | uint32(mem[idx+1])<<8 | uint32(mem[idx+2])<<16 | uint32(mem[idx+3])<<24, nil
}

func (arm *ARM) write8(addr uint32, val uint8) error {
	mem, idx, err := arm.mapAddress(addr, true)
	if err != nil || mem == nil {
		return err
	}
	mem[idx] = val
	return nil
}

func (arm *ARM) write16(addr uint32, val uint16) error {
	if addr&0x01 != 0 {
		return curated.Errorf(FaultError, fmt.Sprintf("unaligned write (0x%08x)", addr))
	}
	mem, idx, err := arm.mapAddress(addr, true)
	if err != nil || mem == nil {
		return err
	}
	if idx+1 >= uint32(len(mem)) {
		return curated.Errorf(FaultError, fmt.Sprintf("unmapped write (0x%08x)", addr))
	}
	mem[idx] = uint8(val)
	mem[idx+1] = uint8(val >> 8)
	return nil
}

func (arm *ARM) write32(addr uint32, val uint32) error {
	if addr&0x03 != 0 {
		return curated.Errorf(FaultError, fmt.Sprintf("unaligned write (0x%08x)", addr))
	}
	mem, idx, err := arm.mapAddress(addr, true)
	if err != nil || mem == nil {
		return err
	}
	if idx+3 >= uint32(len(mem)) {
		return curated.Errorf(FaultError, fmt.Sprintf("unmapped write (0x%08x)", addr))
	}
	mem[idx] = uint8(val)
	mem[idx+1] = uint8(val >> 8)
	mem[idx+2] = uint8(val >> 16)
	mem[idx+3] = uint8(val >> 24)
	return nil
}
