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

package cartridge

import (
	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/harmony"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/supercharger"
	"github.com/jetsetilly/gopher2600core/logger"
)

// Cartridge is the interface to every cartridge mapper.
type Cartridge = mapper.CartMapper

// Type identifies the mapping scheme of a cartridge.
type Type = mapper.Type

// Optional interfaces implemented by some cartridge mappers.
type (
	CPU        = mapper.CPU
	BusSniffer = mapper.BusSniffer
	CPUAware   = mapper.CPUAware
	Stepper    = mapper.Stepper
	Randomizer = mapper.Randomizer
)

// List of valid Type values.
const (
	Vanilla2k         = mapper.Vanilla2k
	Vanilla4k         = mapper.Vanilla4k
	Bankswitch8kF8    = mapper.Bankswitch8kF8
	Bankswitch8kE0    = mapper.Bankswitch8kE0
	Bankswitch8k3F    = mapper.Bankswitch8k3F
	Bankswitch8kFE    = mapper.Bankswitch8kFE
	Bankswitch8kUA    = mapper.Bankswitch8kUA
	Bankswitch8kPP    = mapper.Bankswitch8kPP
	Bankswitch8kEB    = mapper.Bankswitch8kEB
	Bankswitch12kFA   = mapper.Bankswitch12kFA
	Bankswitch16kF6   = mapper.Bankswitch16kF6
	Bankswitch16kE7   = mapper.Bankswitch16kE7
	BankswitchFA2     = mapper.BankswitchFA2
	Bankswitch32kF4   = mapper.Bankswitch32kF4
	Bankswitch64kF0   = mapper.Bankswitch64kF0
	Bankswitch64kEF   = mapper.Bankswitch64kEF
	BankswitchDPC     = mapper.BankswitchDPC
	BankswitchDPCplus = mapper.BankswitchDPCplus
	BankswitchCDF     = mapper.BankswitchCDF
	Bankswitch3E      = mapper.Bankswitch3E
	BankswitchCV      = mapper.BankswitchCV
	BankswitchAR      = mapper.BankswitchAR
)

// Error patterns raised by the package.
const (
	InvalidImageError    = mapper.InvalidImageError
	UnsupportedSizeError = mapper.UnsupportedSizeError
	UnknownTypeError     = mapper.UnknownTypeError
)

// Describe returns the stable, human readable description of the cartridge
// type.
func Describe(t Type) string {
	return t.Description()
}

// TypeFromString converts a short identifier or long name to a Type.
func TypeFromString(s string) (Type, error) {
	return mapper.TypeFromString(s)
}

// NewCartridge creates a new cartridge of the specified type. The data is
// copied and the caller is free to reuse the data slice.
func NewCartridge(t Type, data []uint8) (Cartridge, error) {
	var cart Cartridge
	var err error

	switch t {
	case Vanilla2k:
		cart, err = newAtari2k(data)
	case Vanilla4k:
		cart, err = newAtari4k(data)
	case Bankswitch8kF8:
		cart, err = newAtari8k(data)
	case Bankswitch16kF6:
		cart, err = newAtari16k(data)
	case Bankswitch32kF4:
		cart, err = newAtari32k(data)
	case Bankswitch64kEF:
		cart, err = newAtari64k(data)
	case Bankswitch8kE0:
		cart, err = newParkerBros(data)
	case Bankswitch8k3F:
		cart, err = newTigervision(data)
	case Bankswitch3E:
		cart, err = new3e(data)
	case Bankswitch8kFE:
		cart, err = newActivision(data)
	case Bankswitch8kUA:
		cart, err = newUA(data)
	case Bankswitch8kPP:
		cart, err = newPinkPanther(data)
	case Bankswitch8kEB:
		cart, err = newEconobanking(data)
	case Bankswitch12kFA:
		cart, err = newCBS(data)
	case BankswitchFA2:
		cart, err = newFA2(data)
	case Bankswitch16kE7:
		cart, err = newMnetwork(data)
	case Bankswitch64kF0:
		cart, err = newMegaboy(data)
	case BankswitchCV:
		cart, err = newCommavid(data)
	case BankswitchDPC:
		cart, err = newDPC(data)
	case BankswitchDPCplus:
		cart, err = harmony.NewDPCplus(data)
	case BankswitchCDF:
		cart, err = harmony.NewCDF(data)
	case BankswitchAR:
		cart, err = supercharger.NewSupercharger(data)
	default:
		return nil, curated.Errorf(UnknownTypeError, t)
	}

	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "cartridge", "%s (%d bytes)", cart.Description(), len(data))
	cart.Reset()

	return cart, nil
}

// NewCartridgeFromImage detects the type of cartridge from the data and
// creates a cartridge of that type.
func NewCartridgeFromImage(data []uint8) (Cartridge, error) {
	t, err := Detect(data)
	if err != nil {
		return nil, err
	}
	return NewCartridge(t, data)
}

// HasSuperchip returns true if the cartridge has a SuperChip.
func HasSuperchip(cart Cartridge) bool {
	if a, ok := cart.(*atari); ok {
		return a.ram != nil
	}
	return false
}
