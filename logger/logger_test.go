// This file is part of Sixtyfive.
//
// Sixtyfive is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Sixtyfive is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Sixtyfive.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"testing"

	"github.com/jetsetilly/sixtyfive/logger"
	"github.com/jetsetilly/sixtyfive/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the writer buffer before continuing, makes comparisons easier
	// to manage
	tw.Clear()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestRepeatedEntries(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Logf(logger.Allow, "rom", "write ignored at %#04x", 0x10)
	logger.Logf(logger.Allow, "rom", "write ignored at %#04x", 0x10)
	logger.Logf(logger.Allow, "rom", "write ignored at %#04x", 0x10)
	test.ExpectEquality(t, logger.Len(), 1)

	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "rom: write ignored at 0x10 (repeat x3)\n")
}

func TestPermission(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Deny, "test", "should not appear")
	logger.Log(nil, "test", "should not appear")
	test.ExpectEquality(t, logger.Len(), 0)
}

func TestEcho(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}
	logger.SetEcho(tw)
	defer logger.SetEcho(nil)

	logger.Log(logger.Allow, "bus", "attached")
	test.ExpectEquality(t, tw.String(), "bus: attached\n")
}

func TestMaximumEntries(t *testing.T) {
	logger.Clear()
	for i := 0; i < 300; i++ {
		logger.Logf(logger.Allow, "test", "entry %d", i)
	}
	test.ExpectEquality(t, logger.Len(), 256)

	tw := &test.CompareWriter{}
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "test: entry 299\n")
}
