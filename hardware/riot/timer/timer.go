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

package timer

import (
	"fmt"
)

// Interval indicates how often (in CPU cycles) the timer value decreases.
// The following rules apply:
//
//   - set to 1, 8, 64 or 1024 depending on which address has been written to
//     by the CPU
//   - changed to 1 once the value underflows
//   - restored to the programmed value when INTIM is read after an underflow
type Interval int

// List of valid Interval values.
const (
	TIM1T  Interval = 1
	TIM8T  Interval = 8
	TIM64T Interval = 64
	T1024T Interval = 1024
)

func (in Interval) String() string {
	switch in {
	case TIM1T:
		return "TIM1T"
	case TIM8T:
		return "TIM8T"
	case TIM64T:
		return "TIM64T"
	case T1024T:
		return "T1024T"
	}
	return "unknown interval"
}

// IntervalFromAddress returns the interval selected by a write to one of the
// timer registers. Only the bottom two bits of the address are significant.
func IntervalFromAddress(address uint16) Interval {
	switch address & 0x03 {
	case 0:
		return TIM1T
	case 1:
		return TIM8T
	case 2:
		return TIM64T
	}
	return T1024T
}

// Bits in the TIMINT register.
const (
	MaskTIMINTUnderflow = uint8(0x80)
	MaskTIMINTEdge      = uint8(0x40)
)

// Timer implements the timer part of the PIA 6532 (the T in RIOT).
type Timer struct {
	// the interval most recently requested by the CPU
	Interval Interval

	// the interval currently in effect. the same as Interval unless the
	// timer has underflowed
	Divider Interval

	// the current value of the INTIM register
	INTIMvalue uint8

	// number of cycles since the last decrement of INTIMvalue
	Ticks int

	// the two bits of the TIMINT register
	Underflow bool
	Edge      bool
}

// NewTimer is the preferred method of initialisation of the Timer type.
func NewTimer() *Timer {
	tmr := &Timer{}
	tmr.Reset()
	return tmr
}

// Reset the timer to the power-on state.
func (tmr *Timer) Reset() {
	tmr.Interval = T1024T
	tmr.Divider = T1024T
	tmr.INTIMvalue = 0
	tmr.Ticks = 0
	tmr.Underflow = false
	tmr.Edge = false
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("INTIM=%#02x ticks=%d intv=%s TIMINT=%#02x",
		tmr.INTIMvalue, tmr.Ticks, tmr.Divider, tmr.TIMINT(),
	)
}

// Write to a timer register. The value is loaded into INTIM and the interval
// is set according to the address.
func (tmr *Timer) Write(interval Interval, value uint8) {
	tmr.Interval = interval
	tmr.Divider = interval
	tmr.INTIMvalue = value
	tmr.Ticks = 0
	tmr.Underflow = false
}

// ReadINTIM returns the value of INTIM. Reading INTIM clears the underflow
// flag and restores the programmed interval.
func (tmr *Timer) ReadINTIM() uint8 {
	if tmr.Underflow {
		tmr.Underflow = false
		tmr.Divider = tmr.Interval
		tmr.Ticks = 0
	}
	return tmr.INTIMvalue
}

// ReadTIMINT returns the value of TIMINT. Reading TIMINT clears the edge
// detection bit.
func (tmr *Timer) ReadTIMINT() uint8 {
	v := tmr.TIMINT()
	tmr.Edge = false
	return v
}

// TIMINT returns the value of the TIMINT register without side effects.
func (tmr *Timer) TIMINT() uint8 {
	var v uint8
	if tmr.Underflow {
		v |= MaskTIMINTUnderflow
	}
	if tmr.Edge {
		v |= MaskTIMINTEdge
	}
	return v
}

// Step the timer forward one cycle.
func (tmr *Timer) Step() {
	tmr.Ticks++
	if tmr.Ticks < int(tmr.Divider) {
		return
	}
	tmr.Ticks = 0

	tmr.INTIMvalue--
	if tmr.INTIMvalue == 0xff {
		tmr.Underflow = true
		tmr.Divider = TIM1T
	}
}
