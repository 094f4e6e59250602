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

package mapper

import (
	"strings"

	"github.com/jetsetilly/gopher2600core/curated"
)

// Type identifies the bank switching method (the mapper) of a cartridge.
type Type int

// List of valid Type values.
const (
	Vanilla2k Type = iota
	Vanilla4k
	Bankswitch8kF8
	Bankswitch8kE0
	Bankswitch8k3F
	Bankswitch8kFE
	Bankswitch8kUA
	Bankswitch8kPP
	Bankswitch8kEB
	Bankswitch12kFA
	Bankswitch16kF6
	Bankswitch16kE7
	BankswitchFA2
	Bankswitch32kF4
	Bankswitch64kF0
	Bankswitch64kEF
	BankswitchDPC
	BankswitchDPCplus
	BankswitchCDF
	Bankswitch3E
	BankswitchCV
	BankswitchAR

	numTypes
)

type typeInfo struct {
	id          string
	name        string
	description string
}

var types = [numTypes]typeInfo{
	Vanilla2k:         {"2k", "vanilla_2k", "Standard 2K cartridge"},
	Vanilla4k:         {"4k", "vanilla_4k", "Standard 4K cartridge"},
	Bankswitch8kF8:    {"F8", "bankswitch_8k_F8", "8K Atari (F8)"},
	Bankswitch8kE0:    {"E0", "bankswitch_8k_E0", "8K Parker Brothers (E0)"},
	Bankswitch8k3F:    {"3F", "bankswitch_8k_3F", "Tigervision (3F)"},
	Bankswitch8kFE:    {"FE", "bankswitch_8k_FE", "8K Activision (FE)"},
	Bankswitch8kUA:    {"UA", "bankswitch_8k_UA", "8K UA Limited (UA)"},
	Bankswitch8kPP:    {"PP", "bankswitch_8k_PP", "8K Pink Panther (PP)"},
	Bankswitch8kEB:    {"EB", "bankswitch_8k_econobanking", "8K Econobanking (0840)"},
	Bankswitch12kFA:   {"FA", "bankswitch_12k_FA", "12K CBS RAM Plus (FA)"},
	Bankswitch16kF6:   {"F6", "bankswitch_16k_F6", "16K Atari (F6)"},
	Bankswitch16kE7:   {"E7", "bankswitch_16k_E7", "16K M Network (E7)"},
	BankswitchFA2:     {"FA2", "bankswitch_FA2", "CBS RAM Plus extended (FA2)"},
	Bankswitch32kF4:   {"F4", "bankswitch_32k_F4", "32K Atari (F4)"},
	Bankswitch64kF0:   {"F0", "bankswitch_64k_F0", "64K Dynacom Megaboy (F0)"},
	Bankswitch64kEF:   {"EF", "bankswitch_64k_EF", "64K Homestar Runner (EF)"},
	BankswitchDPC:     {"DPC", "bankswitch_DPC", "Pitfall II DPC"},
	BankswitchDPCplus: {"DPC+", "bankswitch_DPCplus", "Harmony DPC+"},
	BankswitchCDF:     {"CDF", "bankswitch_CDF", "Harmony CDF"},
	Bankswitch3E:      {"3E", "bankswitch_3E", "Tigervision extended with RAM (3E)"},
	BankswitchCV:      {"CV", "bankswitch_CV", "Commavid (CV)"},
	BankswitchAR:      {"AR", "bankswitch_AR", "Starpath Supercharger (AR)"},
}

// String returns the short identifier of the mapper type. The string can be
// converted back to the Type with TypeFromString().
func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return "unknown"
	}
	return types[t].id
}

// Name returns the long name of the mapper type. The string can also be
// converted back to the Type with TypeFromString().
func (t Type) Name() string {
	if t < 0 || t >= numTypes {
		return "unknown"
	}
	return types[t].name
}

// Description returns a human readable description of the mapper type. The
// string is stable and suitable for use in test fixtures.
func (t Type) Description() string {
	if t < 0 || t >= numTypes {
		return "Unknown cartridge type"
	}
	return types[t].description
}

// TypeFromString converts either the short identifier or the long name of a
// mapper type to a Type. The comparison is case insensitive.
func TypeFromString(s string) (Type, error) {
	s = strings.TrimSpace(s)
	for t := Type(0); t < numTypes; t++ {
		if strings.EqualFold(s, types[t].id) || strings.EqualFold(s, types[t].name) {
			return t, nil
		}
	}

	// alternative identifiers found in the wild
	switch strings.ToUpper(s) {
	case "0840":
		return Bankswitch8kEB, nil
	case "WD":
		return Bankswitch8kPP, nil
	case "CBS":
		return Bankswitch12kFA, nil
	case "MNETWORK":
		return Bankswitch16kE7, nil
	case "PARKERBROS":
		return Bankswitch8kE0, nil
	case "TIGERVISION":
		return Bankswitch8k3F, nil
	case "SUPERCHARGER":
		return BankswitchAR, nil
	}

	return 0, curated.Errorf(UnknownTypeError, s)
}

// AllTypes returns every valid Type in order.
func AllTypes() []Type {
	l := make([]Type, 0, numTypes)
	for t := Type(0); t < numTypes; t++ {
		l = append(l, t)
	}
	return l
}
