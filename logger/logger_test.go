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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/gopher2600core/logger"
	"github.com/jetsetilly/gopher2600core/test"
)

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	tw := &test.CompareWriter{}

	log := logger.NewLogger(3)
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\n")

	// repeated entries are folded
	tw.Clear()
	log.Log(logger.Allow, "test", "this is a test")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test (repeat x2)\n")

	tw.Clear()
	log.Logf(logger.Allow, "test2", "value %d", 10)
	log.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "test2: value 10\n")

	// a tail longer than the log is capped
	tw.Clear()
	log.Tail(tw, 100)
	test.ExpectEquality(t, tw.String(), "test: this is a test (repeat x2)\ntest2: value 10\n")

	// a negative tail writes nothing
	tw.Clear()
	log.Tail(tw, -1)
	test.ExpectEquality(t, tw.String(), "")

	// log is capped at three entries
	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	test.ExpectEquality(t, log.Len(), 3)
	tw.Clear()
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "test2: value 10\na: 1\nb: 2\n")

	log.Clear()
	test.ExpectEquality(t, log.Len(), 0)
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(10)
	log.Log(deny{}, "test", "not logged")
	test.ExpectEquality(t, log.Len(), 0)
	log.Logf(deny{}, "test", "not logged %d", 1)
	test.ExpectEquality(t, log.Len(), 0)
}

func TestEcho(t *testing.T) {
	tw := &test.CompareWriter{}
	log := logger.NewLogger(10)
	log.SetEcho(tw)
	log.Log(logger.Allow, "echo", "hello")
	test.ExpectEquality(t, tw.String(), "echo: hello\n")
	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "world")
	test.ExpectEquality(t, tw.String(), "echo: hello\n")
}
