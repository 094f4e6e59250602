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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge/supercharger"
	"github.com/jetsetilly/gopher2600core/logger"
)

// Error patterns raised by the package.
const (
	LoadError = "cartridgeloader: %v"
	HashError = "cartridgeloader: unexpected hash value (%s)"
)

// the suffix added to the image filename to create the FA2 non-volatile
// storage filename
const nvramSuffix = ".nvram"

// Loader is used to specify the cartridge to use when creating the VCS. It
// also permits the caller to specify the mapping of the cartridge (if
// necessary. the detector is pretty good).
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// "AUTO" indicates automatic detection
	Mapping string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the file
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The mapping argument will be used to set the Mapping field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field.
func NewLoader(filename string, mapping string) Loader {
	cl := Loader{
		Filename: filename,
	}

	mapping = strings.TrimSpace(strings.ToUpper(mapping))
	if mapping != "AUTO" && mapping != "" {
		cl.Mapping = mapping
	} else {
		cl.Mapping = mappingFromExtension(filepath.Ext(filename))
	}

	return cl
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	s := filepath.Base(cl.Filename)
	return strings.TrimSuffix(s, filepath.Ext(cl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data from the file. If the Hash field is not empty then
// the loaded data must match it.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	d, err := os.ReadFile(cl.Filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	if len(d) == 0 {
		return curated.Errorf(LoadError, fmt.Sprintf("%s is empty", cl.Filename))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(d))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(HashError, cl.Filename)
	}

	cl.Data = d
	cl.Hash = hash

	return nil
}

// Cartridge loads the data, if it hasn't been loaded already, and creates the
// cartridge. The cartridge type is detected from the data if the mapping is
// "AUTO".
func (cl *Loader) Cartridge() (cartridge.Cartridge, error) {
	if err := cl.Load(); err != nil {
		return nil, err
	}

	var cart cartridge.Cartridge
	var err error

	if cl.Mapping == "AUTO" || cl.Mapping == "" {
		cart, err = cartridge.NewCartridgeFromImage(cl.Data)
	} else {
		var t cartridge.Type
		t, err = cartridge.TypeFromString(cl.Mapping)
		if err != nil {
			return nil, err
		}
		cart, err = cartridge.NewCartridge(t, cl.Data)
	}
	if err != nil {
		return nil, err
	}

	switch c := cart.(type) {
	case *supercharger.Supercharger:
		cl.attachBIOS(c)
	case interface{ SetNVRAMPath(string) }:
		c.SetNVRAMPath(cl.Filename + nvramSuffix)
	}

	return cart, nil
}

// look for the supercharger BIOS in the same directory as the image
func (cl *Loader) attachBIOS(cart *supercharger.Supercharger) {
	fn := filepath.Join(filepath.Dir(cl.Filename), supercharger.BIOSFile)
	if _, err := os.Stat(fn); err != nil {
		logger.Logf(logger.Allow, "cartridgeloader", "using stub BIOS: %s not found", supercharger.BIOSFile)
		return
	}

	bios, err := supercharger.LoadBIOS(fn)
	if err == nil {
		err = cart.SetBIOS(bios)
	}
	if err != nil {
		logger.Logf(logger.Allow, "cartridgeloader", "using stub BIOS: %v", err)
		return
	}

	logger.Logf(logger.Allow, "cartridgeloader", "using BIOS: %s", fn)
}
