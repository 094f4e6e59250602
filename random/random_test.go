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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher2600core/random"
	"github.com/jetsetilly/gopher2600core/test"
)

func TestSeededSequence(t *testing.T) {
	a := random.NewRandom(1234)
	b := random.NewRandom(1234)
	for i := 0; i < 100; i++ {
		test.ExpectEquality(t, a.Intn(256), b.Intn(256))
	}
	test.ExpectEquality(t, a.Seed(), int64(1234))

	ra := a.Rand()
	rb := b.Rand()
	for i := 0; i < 100; i++ {
		test.ExpectEquality(t, ra.Intn(256), rb.Intn(256))
	}
}

func TestZeroState(t *testing.T) {
	r := random.NewRandom(99)
	r.ZeroState = true
	for i := 0; i < 100; i++ {
		test.ExpectEquality(t, r.Uint8(), 0)
	}
	rnd := r.Rand()
	for i := 0; i < 100; i++ {
		test.ExpectEquality(t, rnd.Intn(256), 0)
	}
}

func TestTimeSeed(t *testing.T) {
	r := random.NewRandom(0)
	test.ExpectInequality(t, r.Seed(), int64(0))
}

func TestReseed(t *testing.T) {
	a := random.NewRandom(1)
	b := random.NewRandom(2)
	b.Reseed(1)
	test.ExpectEquality(t, b.Seed(), int64(1))
	for i := 0; i < 100; i++ {
		test.ExpectEquality(t, a.Intn(256), b.Intn(256))
	}
}
