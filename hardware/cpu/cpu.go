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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2600core/hardware/cpu/registers"
)

// Memory is the view of the bus required by the CPU.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Vectors in the address space of the CPU. The 6507 has no NMI line.
const (
	Reset uint16 = 0xfffc
	IRQ   uint16 = 0xfffe
)

// microOp is one cycle of an instruction. Each microOp performs exactly one
// bus access and sets the next field if the instruction requires further
// cycles.
type microOp func(mc *CPU) error

// CPU implements the 6507 found as found in the Atari 2600.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	mem Memory

	// the most recently decoded instruction
	defn *instructions.Definition

	// definition used for invalid opcodes when the handler allows
	// execution to continue
	invalid instructions.Definition

	// the next cycle of the current instruction. nil at an instruction
	// boundary
	next microOp

	// working values of the current instruction
	base        uint16
	address     uint16
	pointer     uint8
	data        uint8
	operand     uint16
	operandLen  int
	pageCrossed bool

	// set by Halt() and cleared by Resume()
	halted bool

	// total number of cycles since reset, including halted cycles
	cycles uint64

	// address of the most recent opcode fetch
	lastInstructionAddress uint16

	// LastResult is updated on every cycle and records the progress of the
	// current or most recent instruction
	LastResult Result

	invalidInstruction func(opcode uint8, address uint16) error
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// Note that the CPU will not be in a usable state until Reset() has been
// called.
func NewCPU(mem Memory) *CPU {
	return &CPU{
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewRegister(0, "SP"),
		Status: registers.NewStatusRegister(),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A, mc.X.Label(), mc.X,
		mc.Y.Label(), mc.Y, mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status,
	)
}

// SetInvalidInstructionHandler specifies the function to call when an
// undefined opcode is encountered. If the function returns nil then the
// opcode is treated as a single byte, two cycle instruction with no effect.
func (mc *CPU) SetInvalidInstructionHandler(f func(opcode uint8, address uint16) error) {
	mc.invalidInstruction = f
}

// Reset the CPU. The PC is loaded from the reset vector.
func (mc *CPU) Reset() error {
	mc.ResetState()
	return mc.LoadPCIndirect(Reset)
}

// ResetState resets the registers and the cycle counter but does not load
// the PC from the reset vector.
func (mc *CPU) ResetState() {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.next = nil
	mc.defn = nil
	mc.halted = false
	mc.cycles = 0
	mc.LastResult = Result{Final: true}
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	lo, err := mc.mem.Read(indirectAddress)
	if err != nil {
		return err
	}
	hi, err := mc.mem.Read(indirectAddress + 1)
	if err != nil {
		return err
	}
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
	return nil
}

// Halt the CPU. Takes effect from the next call to Cycle().
func (mc *CPU) Halt() {
	mc.halted = true
}

// Resume a halted CPU.
func (mc *CPU) Resume() {
	mc.halted = false
}

// IsHalted returns true if the CPU has been halted.
func (mc *CPU) IsHalted() bool {
	return mc.halted
}

// IsFetching returns true if the next call to Cycle() will fetch an opcode.
func (mc *CPU) IsFetching() bool {
	return mc.next == nil
}

// LastInstructionAddress returns the address of the most recently fetched
// opcode.
func (mc *CPU) LastInstructionAddress() uint16 {
	return mc.lastInstructionAddress
}

// Cycles returns the number of cycles since the last reset. Halted cycles
// are included.
func (mc *CPU) Cycles() uint64 {
	return mc.cycles
}

// Cycle advances the CPU by one machine cycle.
func (mc *CPU) Cycle() error {
	mc.cycles++

	if mc.halted {
		return nil
	}

	var err error

	if mc.next == nil {
		err = mc.fetch()
	} else {
		op := mc.next
		mc.next = nil
		mc.LastResult.Cycles++
		err = op(mc)
	}

	if err != nil {
		mc.next = nil
		return err
	}

	if mc.next == nil {
		mc.LastResult.InstructionData = mc.operand
		mc.LastResult.Final = true
	}

	return nil
}

// ExecuteInstruction calls Cycle() until the current instruction has
// completed. If the CPU is at an instruction boundary then a complete
// instruction is executed.
func (mc *CPU) ExecuteInstruction() error {
	if mc.halted {
		return curated.Errorf(HaltedError)
	}

	for {
		if err := mc.Cycle(); err != nil {
			return err
		}
		if mc.IsFetching() {
			return nil
		}
		if mc.halted {
			return curated.Errorf(HaltedError)
		}
	}
}

func (mc *CPU) fetch() error {
	address := mc.PC.Address()
	mc.lastInstructionAddress = address

	opcode, err := mc.mem.Read(address)
	if err != nil {
		return err
	}
	mc.PC.Increment()

	mc.operand = 0
	mc.operandLen = 0
	mc.pageCrossed = false

	defn := instructions.Definitions[opcode]
	if defn == nil {
		if mc.invalidInstruction == nil {
			return curated.Errorf(InvalidOpcodeError, opcode, address)
		}
		if err := mc.invalidInstruction(opcode, address); err != nil {
			return err
		}
		mc.invalid = instructions.Definition{
			OpCode:         opcode,
			Operator:       "???",
			Bytes:          1,
			Cycles:         2,
			AddressingMode: instructions.Implied,
			Effect:         instructions.Read,
			Undocumented:   true,
		}
		defn = &mc.invalid
	}

	mc.defn = defn
	mc.LastResult = Result{
		Address: address,
		Defn:    defn,
		Cycles:  1,
	}
	mc.next = decode(defn)

	return nil
}

// readOperand reads the next byte of the instruction stream.
func (mc *CPU) readOperand() (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Increment()
	mc.operand |= uint16(v) << (8 * mc.operandLen)
	mc.operandLen++
	return v, nil
}

// dummyRead of the next byte of the instruction stream, without incrementing
// the PC.
func (mc *CPU) dummyRead() error {
	_, err := mc.mem.Read(mc.PC.Address())
	return err
}

func (mc *CPU) push(v uint8) error {
	err := mc.mem.Write(0x0100|mc.SP.Address(), v)
	mc.SP.Load(mc.SP.Value() - 1)
	return err
}

func (mc *CPU) pull() (uint8, error) {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.mem.Read(0x0100 | mc.SP.Address())
}

func (mc *CPU) setNZ(v uint8) {
	mc.Status.Zero = v == 0
	mc.Status.Sign = v&0x80 == 0x80
}
