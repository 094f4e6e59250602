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

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher2600core/cartridgeloader"
	"github.com/jetsetilly/gopher2600core/curated"
	"github.com/jetsetilly/gopher2600core/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher2600core/test"
)

func TestMapping(t *testing.T) {
	cl := cartridgeloader.NewLoader("roms/game.bin", "")
	test.ExpectEquality(t, cl.Mapping, "AUTO")

	cl = cartridgeloader.NewLoader("roms/game.f8", "")
	test.ExpectEquality(t, cl.Mapping, "F8")

	cl = cartridgeloader.NewLoader("roms/game.dp+", "AUTO")
	test.ExpectEquality(t, cl.Mapping, "DPC+")

	cl = cartridgeloader.NewLoader("roms/tape.mp3", "")
	test.ExpectEquality(t, cl.Mapping, "AR")

	// explicit mapping overrides the extension
	cl = cartridgeloader.NewLoader("roms/game.f8", " e0 ")
	test.ExpectEquality(t, cl.Mapping, "E0")

	test.ExpectEquality(t, cl.ShortName(), "game")
}

func writeFile(t *testing.T, name string, data []uint8) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestLoad(t *testing.T) {
	fn := writeFile(t, "game.bin", make([]uint8, 4096))

	cl := cartridgeloader.NewLoader(fn, "")
	test.ExpectFailure(t, cl.HasLoaded())
	test.ExpectSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, len(cl.Data), 4096)

	// sha1 of 4096 zero bytes
	test.ExpectEquality(t, cl.Hash, "1ceaf73df40e531df3bfb26b4fb7cd95fb7bff1d")

	cart, err := cl.Cartridge()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Type(), cartridge.Vanilla4k)
}

func TestHashMismatch(t *testing.T) {
	fn := writeFile(t, "game.bin", make([]uint8, 4096))
	cl := cartridgeloader.NewLoader(fn, "")
	cl.Hash = "0000"
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.HashError))
}

func TestMissingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"), "")
	_, err := cl.Cartridge()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))
}

func TestForcedMapping(t *testing.T) {
	fn := writeFile(t, "game.bin", make([]uint8, 8192))

	cl := cartridgeloader.NewLoader(fn, "E0")
	cart, err := cl.Cartridge()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Type(), cartridge.Bankswitch8kE0)

	cl = cartridgeloader.NewLoader(fn, "XYZ")
	_, err = cl.Cartridge()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnknownTypeError))
}
