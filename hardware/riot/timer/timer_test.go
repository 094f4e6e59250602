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

package timer_test

import (
	"testing"

	"github.com/jetsetilly/gopher2600core/hardware/riot/timer"
	"github.com/jetsetilly/gopher2600core/test"
)

func TestDivisors(t *testing.T) {
	for _, intv := range []timer.Interval{timer.TIM1T, timer.TIM8T, timer.TIM64T, timer.T1024T} {
		tmr := timer.NewTimer()
		tmr.Write(intv, 3)

		for i := 0; i < int(intv)-1; i++ {
			tmr.Step()
		}
		test.ExpectEquality(t, tmr.INTIMvalue, 3, intv)
		tmr.Step()
		test.ExpectEquality(t, tmr.INTIMvalue, 2, intv)

		for i := 0; i < int(intv)*2; i++ {
			tmr.Step()
		}
		test.ExpectEquality(t, tmr.INTIMvalue, 0, intv)
		test.ExpectFailure(t, tmr.Underflow, intv)
	}
}

func TestUnderflow(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Write(timer.TIM8T, 1)

	for i := 0; i < 16; i++ {
		tmr.Step()
	}
	test.ExpectEquality(t, tmr.INTIMvalue, 0xff)
	test.ExpectSuccess(t, tmr.Underflow)
	test.ExpectEquality(t, tmr.Divider, timer.TIM1T)
	test.ExpectEquality(t, tmr.TIMINT(), timer.MaskTIMINTUnderflow)

	// after underflow the timer decreases every cycle
	tmr.Step()
	test.ExpectEquality(t, tmr.INTIMvalue, 0xfe)
	tmr.Step()
	test.ExpectEquality(t, tmr.INTIMvalue, 0xfd)

	// reading TIMINT does not clear the underflow flag
	test.ExpectEquality(t, tmr.ReadTIMINT(), timer.MaskTIMINTUnderflow)
	test.ExpectSuccess(t, tmr.Underflow)

	// reading INTIM does and restores the programmed interval
	test.ExpectEquality(t, tmr.ReadINTIM(), 0xfd)
	test.ExpectFailure(t, tmr.Underflow)
	test.ExpectEquality(t, tmr.Divider, timer.TIM8T)
	for i := 0; i < 7; i++ {
		tmr.Step()
	}
	test.ExpectEquality(t, tmr.INTIMvalue, 0xfd)
	tmr.Step()
	test.ExpectEquality(t, tmr.INTIMvalue, 0xfc)
}

func TestWriteClearsUnderflow(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Write(timer.TIM1T, 0)
	tmr.Step()
	test.ExpectSuccess(t, tmr.Underflow)
	tmr.Write(timer.TIM64T, 0x10)
	test.ExpectFailure(t, tmr.Underflow)
	test.ExpectEquality(t, tmr.Divider, timer.TIM64T)
}

func TestIntervalFromAddress(t *testing.T) {
	test.ExpectEquality(t, timer.IntervalFromAddress(0x294), timer.TIM1T)
	test.ExpectEquality(t, timer.IntervalFromAddress(0x295), timer.TIM8T)
	test.ExpectEquality(t, timer.IntervalFromAddress(0x296), timer.TIM64T)
	test.ExpectEquality(t, timer.IntervalFromAddress(0x297), timer.T1024T)
}
