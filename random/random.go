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

package random

import (
	"math/rand"
	"time"
)

// Random wraps a seeded random number generator.
type Random struct {
	seed int64
	rnd  *rand.Rand

	// ZeroState indicates that values returned by Intn() and Uint8() should
	// all be zero. Useful for tests that require a clean power-on state.
	ZeroState bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		seed: seed,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// Reseed the generator. A seed of zero uses the current time.
func (r *Random) Reseed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r.seed = seed
	r.rnd.Seed(seed)
}

// Seed returns the seed used to initialise the generator.
func (r *Random) Seed() int64 {
	return r.seed
}

// Rand returns a new generator seeded with the next value from this
// generator. Components that randomise their state on reset are given their
// own generator so that the order of resets does not matter.
func (r *Random) Rand() *rand.Rand {
	if r.ZeroState {
		return rand.New(zeroSource{})
	}
	return rand.New(rand.NewSource(r.rnd.Int63()))
}

// Intn returns a random number in the range [0,n).
func (r *Random) Intn(n int) int {
	if r.ZeroState {
		return 0
	}
	return r.rnd.Intn(n)
}

// Uint8 returns a random byte.
func (r *Random) Uint8() uint8 {
	return uint8(r.Intn(256))
}

// zeroSource implements rand.Source and only ever returns zero.
type zeroSource struct{}

func (zeroSource) Int63() int64 {
	return 0
}

func (zeroSource) Seed(_ int64) {
}
