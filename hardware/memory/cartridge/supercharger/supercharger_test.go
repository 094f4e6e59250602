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

package supercharger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher2600core/hardware/memory/bus"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/supercharger"
	"github.com/jetsetilly/gopher2600core/hardware/riot/timer"
	"github.com/jetsetilly/gopher2600core/test"
)

type fastloadTarget struct {
	ram      [0x100]uint8
	interval timer.Interval
	value    uint8
	pc       uint16
}

func (tgt *fastloadTarget) PeekRAM(addr uint16) uint8 {
	return tgt.ram[addr&0xff]
}

func (tgt *fastloadTarget) PokeRAM(addr uint16, data uint8) {
	tgt.ram[addr&0xff] = data
}

func (tgt *fastloadTarget) SetTimer(interval timer.Interval, value uint8) {
	tgt.interval = interval
	tgt.value = value
}

func (tgt *fastloadTarget) LoadPC(addr uint16) {
	tgt.pc = addr
}

// fastloadImage creates a single block image with one page of data, loaded
// into the first page of the first RAM bank.
func fastloadImage(configByte uint8) []uint8 {
	data := make([]uint8, 8448)
	for i := 0; i < 0x100; i++ {
		data[i] = uint8(i) ^ 0xa5
	}
	hdr := data[0x2000:]
	hdr[0] = 0x00 // start address lo
	hdr[1] = 0xf0 // start address hi
	hdr[2] = configByte
	hdr[3] = 1 // num pages
	hdr[5] = 0 // multiload
	hdr[0x10] = 0x00
	return data
}

func TestInvalidImage(t *testing.T) {
	_, err := supercharger.NewSupercharger(make([]uint8, 1000))
	test.ExpectFailure(t, err)
}

func TestResetVector(t *testing.T) {
	cart, err := supercharger.NewSupercharger(fastloadImage(0x00))
	test.DemandSuccess(t, err)
	cart.Reset()

	lo, _ := cart.Peek(0x0ffc)
	hi, _ := cart.Peek(0x0ffd)
	test.ExpectEquality(t, lo, uint8(0x00))
	test.ExpectEquality(t, hi, uint8(0xf8))
}

func TestFastload(t *testing.T) {
	c, err := supercharger.NewSupercharger(fastloadImage(0x0d))
	test.DemandSuccess(t, err)
	cart := c.(*supercharger.Supercharger)
	cart.Reset()

	test.ExpectFailure(t, cart.FastloadPending())

	// touching the tape hotspot requests a load
	_, err = cart.Read(0x0ff9)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, cart.FastloadPending())

	var tgt fastloadTarget
	test.ExpectSuccess(t, cart.Fastload(&tgt))
	test.ExpectFailure(t, cart.FastloadPending())

	// bootstrap program
	test.ExpectEquality(t, tgt.ram[0x80], uint8(0x0d))
	test.ExpectEquality(t, tgt.ram[0xfa], uint8(0xcd))
	test.ExpectEquality(t, tgt.ram[0xfb], uint8(0xf8))
	test.ExpectEquality(t, tgt.ram[0xfc], uint8(0xff))
	test.ExpectEquality(t, tgt.ram[0xfd], uint8(0x4c))
	test.ExpectEquality(t, tgt.ram[0xfe], uint8(0x00))
	test.ExpectEquality(t, tgt.ram[0xff], uint8(0xf0))
	test.ExpectEquality(t, tgt.pc, uint16(0x00fa))
	test.ExpectEquality(t, tgt.interval, timer.TIM64T)
	test.ExpectEquality(t, tgt.value, uint8(0x0a))

	// the CMP $FFF8 in the bootstrap program sets the config byte
	_, err = cart.Read(0x0ff8)
	test.ExpectSuccess(t, err)
	regs := cart.Registers()
	test.ExpectEquality(t, regs.ConfigByte, uint8(0x0d))
	test.ExpectEquality(t, regs.BankingMode, 3)
	test.ExpectFailure(t, regs.ROMpower)
	test.ExpectFailure(t, regs.RAMwrite)

	// banking mode three puts the first RAM bank in the lower segment
	for i := uint16(0); i < 0x100; i++ {
		v, _ := cart.Peek(i)
		if !test.ExpectEquality(t, v, uint8(i)^0xa5) {
			break
		}
	}
}

func TestRAMWrite(t *testing.T) {
	c, err := supercharger.NewSupercharger(fastloadImage(0x00))
	test.DemandSuccess(t, err)
	cart := c.(*supercharger.Supercharger)
	cart.Reset()

	// after reset the third RAM bank is in the lower segment and RAM writes
	// are allowed
	_, err = cart.Read(0x0042)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cart.Registers().Value, uint8(0x42))

	// the access of 0x1042 is the first transition
	cart.Listen(busAccess(0x1042))
	cart.Listen(busAccess(0x1001))
	cart.Listen(busAccess(0x1002))

	// repeated address is not a transition
	cart.Listen(busAccess(0x1002))
	cart.Listen(busAccess(0x1003))
	cart.Listen(busAccess(0x1004))
	test.ExpectEquality(t, cart.Registers().Delay, 1)

	_, err = cart.Read(0x0123)
	test.ExpectSuccess(t, err)
	v, _ := cart.Peek(0x0123)
	test.ExpectEquality(t, v, uint8(0x42))
	test.ExpectEquality(t, cart.Registers().LastWriteAddress, uint16(0x0123))
	test.ExpectEquality(t, cart.Registers().Delay, 0)
}

func TestROMPowerOff(t *testing.T) {
	c, err := supercharger.NewSupercharger(fastloadImage(0x00))
	test.DemandSuccess(t, err)
	cart := c.(*supercharger.Supercharger)
	cart.Reset()

	// set config byte to 0x01. ROM power off with the BIOS in the upper
	// segment
	_, _ = cart.Read(0x0001)
	_, _ = cart.Read(0x0ff8)
	test.ExpectFailure(t, cart.Registers().ROMpower)

	_, err = cart.Read(0x0800)
	test.ExpectFailure(t, err)
}

func TestSoundload(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tape.wav")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)

	enc := wav.NewEncoder(f, 44100, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 44100},
		SourceBitDepth: 16,
		Data:           make([]int, 44100),
	}
	for i := range buf.Data {
		if (i/10)%2 == 0 {
			buf.Data[i] = 10000
		} else {
			buf.Data[i] = -10000
		}
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
	test.DemandSuccess(t, f.Close())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	c, err := supercharger.NewSupercharger(data)
	test.DemandSuccess(t, err)
	cart := c.(*supercharger.Supercharger)
	cart.Reset()

	pos, length, ok := cart.TapeCounter()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pos, 0.0)
	test.ExpectApproximate(t, length, 1.0, 0.01)

	// the stub BIOS cannot load from tape
	_, err = cart.Read(0x0ff9)
	test.ExpectFailure(t, err)

	test.ExpectSuccess(t, cart.SetBIOS(make([]uint8, 2048)))
	_, err = cart.Read(0x0ff9)
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, cart.SetBIOS(make([]uint8, 100)))
}

func busAccess(addr uint16) bus.Access {
	return bus.Access{Address: addr}
}
