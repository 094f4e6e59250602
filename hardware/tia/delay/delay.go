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

// Package delay conceptualises the short delays between a register write and
// its effect inside the TIA. For example, when a program writes to PF0 the new
// playfield data is not seen immediately. Instead there is a short delay,
// measured in colour clocks, before the write takes effect.
//
// Events are registered with the Schedule function. The function takes the
// delay period, the callback function and a label, useful for identifying the
// event when printing the state of the Ticker. The callback is called once the
// delay period has expired.
package delay

import (
	"fmt"
	"strings"
)

// the maximum number of events that can be pending at once. the longest
// delay in the TIA is a handful of clocks and the CPU can only write once
// every three clocks
const poolSize = 16

type event struct {
	label     string
	remaining int
	payload   func()
}

// Ticker coordinates scheduled events.
type Ticker struct {
	label  string
	events []event
}

// NewTicker is the preferred method of initialisation for the Ticker type.
func NewTicker(label string) *Ticker {
	return &Ticker{
		label:  label,
		events: make([]event, 0, poolSize),
	}
}

func (tck *Ticker) String() string {
	s := strings.Builder{}
	s.WriteString(tck.label)
	for _, ev := range tck.events {
		s.WriteString(fmt.Sprintf("\n  %s -> %d", ev.label, ev.remaining))
	}
	return s.String()
}

// Schedule the payload to run after delay calls to Tick(). A delay of zero
// means the payload runs on the next call to Tick(). A negative delay runs the
// payload immediately.
func (tck *Ticker) Schedule(delay int, payload func(), label string) {
	if delay < 0 {
		payload()
		return
	}
	tck.events = append(tck.events, event{
		label:     label,
		remaining: delay,
		payload:   payload,
	})
}

// Tick moves every pending event forward one cycle. Returns true if any
// payload was run. Payloads run in the order they were scheduled.
func (tck *Ticker) Tick() bool {
	if len(tck.events) == 0 {
		return false
	}

	ran := false

	// events are compacted as they resolve. a payload may schedule a new
	// event, which is appended and not ticked until the next call
	n := len(tck.events)
	keep := tck.events[:0]
	for i := 0; i < n; i++ {
		ev := tck.events[i]
		if ev.remaining == 0 {
			ev.payload()
			ran = true
			continue
		}
		ev.remaining--
		keep = append(keep, ev)
	}
	keep = append(keep, tck.events[n:]...)
	tck.events = keep

	return ran
}

// Pending returns the number of events yet to run.
func (tck *Ticker) Pending() int {
	return len(tck.events)
}

// Drop all pending events without running them.
func (tck *Ticker) Drop() {
	tck.events = tck.events[:0]
}
