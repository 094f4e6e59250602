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

package bus

import (
	"github.com/jetsetilly/gopher2600core/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2600core/hardware/memory/memorymap"
)

// ChipType identifies the chip selected by an access.
type ChipType int

// List of valid ChipType values.
const (
	TIA ChipType = iota
	PIA
	Cartridge
)

func (c ChipType) String() string {
	switch c {
	case TIA:
		return "tia"
	case PIA:
		return "pia"
	case Cartridge:
		return "cartridge"
	}
	return "unknown chip"
}

// Chip is the interface to a chip as seen from the bus. TIA and PIA chips
// receive the 13 bit address. Cartridges receive the address with the chip
// select line removed.
type Chip interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Access is a snapshot of a single bus access.
type Access struct {
	Address uint16
	Data    uint8
	Type    ChipType
	Write   bool
}

// Listener is implemented by anything that needs to see every bus access.
type Listener interface {
	Listen(access Access)
}

// Bus is the chip-select decoder and arbitration point for all CPU accesses.
type Bus struct {
	tia  Chip
	pia  Chip
	cart Chip

	last Access

	listeners []Listener

	trapHandler func(Trap)
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(tia Chip, pia Chip, cart Chip) *Bus {
	return &Bus{
		tia:  tia,
		pia:  pia,
		cart: cart,
	}
}

// AttachCartridge replaces the chip used for cartridge accesses.
func (b *Bus) AttachCartridge(cart Chip) {
	b.cart = cart
}

// AddListener registers a listener. Listeners are notified in the order they
// were added.
func (b *Bus) AddListener(l Listener) {
	b.listeners = append(b.listeners, l)
}

// RemoveListener removes a previously added listener. It is not an error to
// remove a listener that has never been added.
func (b *Bus) RemoveListener(l Listener) {
	for i := range b.listeners {
		if b.listeners[i] == l {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

// SetTrapHandler sets the function to call when a chip raises an error. A nil
// value removes the handler, making every trap fatal.
func (b *Bus) SetTrapHandler(f func(Trap)) {
	b.trapHandler = f
}

// LastAccess returns the snapshot of the most recent access.
func (b *Bus) LastAccess() Access {
	return b.last
}

// chipSelect returns the chip selected by the address. the address returned
// is the address as it should be presented to the chip.
func (b *Bus) chipSelect(address uint16) (Chip, ChipType, uint16) {
	address &= memorymap.Memtop
	if address&memorymap.SelectCartridge == memorymap.SelectCartridge {
		return b.cart, Cartridge, address & memorymap.CartridgeBits
	}
	if address&memorymap.SelectPIA == memorymap.SelectPIA {
		return b.pia, PIA, address
	}
	return b.tia, TIA, address
}

// Read implements the cpu.Memory interface.
func (b *Bus) Read(address uint16) (uint8, error) {
	chip, typ, chipAddress := b.chipSelect(address)

	data, err := chip.Read(chipAddress)
	if err != nil {
		if err := b.trap(typ, chip, err); err != nil {
			return 0, err
		}
		data = 0
	}

	// the TIA only drives some of the data lines. the others float and keep
	// the value of the previous access
	if typ == TIA {
		data = b.floating(chipAddress, data)
	}

	b.notify(Access{
		Address: address & memorymap.Memtop,
		Data:    data,
		Type:    typ,
	})

	return data, nil
}

// Write implements the cpu.Memory interface.
func (b *Bus) Write(address uint16, data uint8) error {
	chip, typ, chipAddress := b.chipSelect(address)

	if err := chip.Write(chipAddress, data); err != nil {
		if err := b.trap(typ, chip, err); err != nil {
			return err
		}
	}

	b.notify(Access{
		Address: address & memorymap.Memtop,
		Data:    data,
		Type:    typ,
		Write:   true,
	})

	return nil
}

// ReadWord reads two consecutive bytes and returns them as a little-endian
// 16 bit value.
func (b *Bus) ReadWord(address uint16) (uint16, error) {
	lo, err := b.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := b.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Peek implements the DebuggerBus interface. Chips that implement
// DebuggerBus are peeked without side effects. Other chips are read normally.
// Listeners do not see the access.
func (b *Bus) Peek(address uint16) (uint8, error) {
	chip, typ, chipAddress := b.chipSelect(address)

	var data uint8
	var err error
	if d, ok := chip.(DebuggerBus); ok {
		data, err = d.Peek(chipAddress)
	} else {
		data, err = chip.Read(chipAddress)
	}
	if err != nil {
		return 0, err
	}

	if typ == TIA {
		data = b.floating(chipAddress, data)
	}

	return data, nil
}

// merge the undriven bits of a TIA read with the data of the previous access
func (b *Bus) floating(chipAddress uint16, data uint8) uint8 {
	mask := addresses.DataMasks[chipAddress&memorymap.MaskTIARead]
	return (data & mask) | (b.last.Data & ^mask)
}

// Poke implements the DebuggerBus interface. Chips that do not implement
// DebuggerBus receive a normal write.
func (b *Bus) Poke(address uint16, data uint8) error {
	chip, _, chipAddress := b.chipSelect(address)
	if d, ok := chip.(DebuggerBus); ok {
		return d.Poke(chipAddress, data)
	}
	return chip.Write(chipAddress, data)
}

func (b *Bus) notify(access Access) {
	b.last = access
	for _, l := range b.listeners {
		l.Listen(access)
	}
}
