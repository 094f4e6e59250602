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
	"fmt"

	"github.com/jetsetilly/gopher2600core/curated"
)

// TrapError is the pattern of the error returned by the bus when a trap
// occurs and there is no trap handler.
const TrapError = "bus: trap: %v"

// Trap describes an error raised by a chip during an access.
type Trap struct {
	// the chip type that raised the error
	Reason ChipType

	// the chip instance that raised the error
	Source any

	Message string
}

// Error implements the go language error interface.
func (t Trap) Error() string {
	return fmt.Sprintf("%s: %s", t.Reason, t.Message)
}

// trap forwards a chip error to the trap handler. if there is no handler then
// the trap is returned as an error.
func (b *Bus) trap(reason ChipType, source any, err error) error {
	t := Trap{
		Reason:  reason,
		Source:  source,
		Message: err.Error(),
	}

	if b.trapHandler == nil {
		return curated.Errorf(TrapError, t)
	}

	b.trapHandler(t)

	return nil
}
