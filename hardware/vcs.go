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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/cpu"
	"github.com/jetsetilly/gopher2600core/hardware/memory/bus"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/supercharger"
	"github.com/jetsetilly/gopher2600core/hardware/riot"
	"github.com/jetsetilly/gopher2600core/hardware/riot/ports"
	"github.com/jetsetilly/gopher2600core/hardware/riot/timer"
	"github.com/jetsetilly/gopher2600core/hardware/television/specification"
	"github.com/jetsetilly/gopher2600core/hardware/tia"
	"github.com/jetsetilly/gopher2600core/logger"
	"github.com/jetsetilly/gopher2600core/random"
)

// NoCartridgeError is returned by NewVCS() when the cartridge is nil.
const NoCartridgeError = "vcs: no cartridge"

// VCS struct is the main container for the emulated components of the VCS.
type VCS struct {
	Spec specification.Spec

	CPU  *cpu.CPU
	Bus  *bus.Bus
	TIA  *tia.TIA
	RIOT *riot.RIOT

	Cart  cartridge.Cartridge
	Panel *ports.Panel

	// source of randomness for the power-on state of RAM. shared with the
	// RIOT. set ZeroState before calling Reset() for a clean power-on state
	Random *random.Random

	// optional interfaces implemented by the attached cartridge. nil if the
	// cartridge does not implement the interface
	stepper  cartridge.Stepper
	sniffer  cartridge.BusSniffer
	fastload *supercharger.Supercharger
}

// NewVCS creates a new VCS and everything associated with the hardware. The
// VCS is reset and ready to run.
func NewVCS(spec specification.Spec, cart cartridge.Cartridge) (*VCS, error) {
	if cart == nil {
		return nil, curated.Errorf(NoCartridgeError)
	}

	vcs := &VCS{
		Spec:   spec,
		Random: random.NewRandom(0),
	}

	vcs.TIA = tia.NewTIA(spec, nil)
	vcs.RIOT = riot.NewRIOT(vcs.Random)
	vcs.Panel = ports.NewPanel(vcs.RIOT.Ports)
	vcs.Bus = bus.NewBus(vcs.TIA, vcs.RIOT, cart)
	vcs.CPU = cpu.NewCPU(vcs.Bus)

	vcs.attach(cart)

	if err := vcs.Reset(); err != nil {
		return nil, err
	}

	return vcs, nil
}

func (vcs *VCS) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %s\n", vcs.Spec.ID, vcs.Cart.Description()))
	s.WriteString(vcs.CPU.String())
	s.WriteString("\n")
	s.WriteString(vcs.TIA.String())
	s.WriteString("\n")
	s.WriteString(vcs.RIOT.String())
	return s.String()
}

// wire the optional cartridge interfaces to the rest of the VCS
func (vcs *VCS) attach(cart cartridge.Cartridge) {
	if vcs.sniffer != nil {
		vcs.Bus.RemoveListener(vcs.sniffer)
	}

	vcs.Cart = cart
	vcs.Bus.AttachCartridge(cart)

	vcs.stepper, _ = cart.(cartridge.Stepper)
	vcs.fastload, _ = cart.(*supercharger.Supercharger)

	vcs.sniffer, _ = cart.(cartridge.BusSniffer)
	if vcs.sniffer != nil {
		vcs.Bus.AddListener(vcs.sniffer)
	}

	if c, ok := cart.(cartridge.CPUAware); ok {
		c.SetCPU(vcs.CPU)
	}
}

// AttachCartridge replaces the cartridge and resets the VCS.
func (vcs *VCS) AttachCartridge(cart cartridge.Cartridge) error {
	if cart == nil {
		return curated.Errorf(NoCartridgeError)
	}
	vcs.attach(cart)
	return vcs.Reset()
}

// SetTrapHandler sets the function that is called when a chip raises an
// error during a CPU access. Without a handler the error stops the emulation.
func (vcs *VCS) SetTrapHandler(f func(bus.Trap)) {
	vcs.Bus.SetTrapHandler(f)
}

// Reset emulates the power-on state of the VCS. The cartridge is returned to
// its starting bank, RAM is randomised and the CPU is loaded with the reset
// vector.
func (vcs *VCS) Reset() error {
	// the cycle counter is reset before the cartridge so that clocked
	// cartridges synchronise with the new count. the reset vector is read
	// once the cartridge is back on its starting bank
	vcs.CPU.ResetState()

	vcs.Cart.Reset()
	if r, ok := vcs.Cart.(cartridge.Randomizer); ok {
		r.Randomize(vcs.Random.Rand())
	}

	vcs.TIA.Reset()
	vcs.RIOT.Reset()
	vcs.Panel.Reset()

	if err := vcs.CPU.LoadPCIndirect(cpu.Reset); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "vcs", "reset: %s with %s", vcs.Spec.ID, vcs.Cart.Description())

	return nil
}

// PeekRAM implements the supercharger.FastloadTarget interface.
func (vcs *VCS) PeekRAM(addr uint16) uint8 {
	return vcs.RIOT.RAM[addr&0x7f]
}

// PokeRAM implements the supercharger.FastloadTarget interface.
func (vcs *VCS) PokeRAM(addr uint16, data uint8) {
	vcs.RIOT.RAM[addr&0x7f] = data
}

// SetTimer implements the supercharger.FastloadTarget interface.
func (vcs *VCS) SetTimer(interval timer.Interval, value uint8) {
	vcs.RIOT.Timer.Write(interval, value)
}

// LoadPC implements the supercharger.FastloadTarget interface.
func (vcs *VCS) LoadPC(addr uint16) {
	vcs.CPU.PC.Load(addr)
}
