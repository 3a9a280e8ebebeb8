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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/sixtyfive/hardware/memory/memorymap"
	"github.com/jetsetilly/sixtyfive/test"
)

func TestRange(t *testing.T) {
	r := memorymap.NewRange(0x0000, 0x07ff)
	test.ExpectEquality(t, r.Size(), 0x800)
	test.ExpectSuccess(t, r.Contains(0x0000))
	test.ExpectSuccess(t, r.Contains(0x07ff))
	test.ExpectFailure(t, r.Contains(0x0800))
	test.ExpectEquality(t, r.String(), "0000 -> 07ff")

	top := memorymap.NewRange(0x8000, 0xffff)
	test.ExpectEquality(t, top.Size(), 0x8000)
	test.ExpectSuccess(t, top.Contains(0xffff))
	test.ExpectEquality(t, top.Local(0x8000), 0)
	test.ExpectEquality(t, top.Local(0xffff), 0x7fff)

	all := memorymap.NewRange(0x0000, 0xffff)
	test.ExpectEquality(t, all.Size(), 0x10000)

	bad := memorymap.NewRange(0x1000, 0x0fff)
	test.ExpectFailure(t, bad.Valid())
	test.ExpectEquality(t, bad.Size(), 0)
}

func TestOverlaps(t *testing.T) {
	ram := memorymap.RAMRange
	rom := memorymap.ROMRange
	test.ExpectFailure(t, ram.Overlaps(rom))
	test.ExpectFailure(t, rom.Overlaps(ram))

	test.ExpectSuccess(t, ram.Overlaps(memorymap.NewRange(0x07ff, 0x0800)))
	test.ExpectSuccess(t, ram.Overlaps(memorymap.NewRange(0x0100, 0x0200)))
	test.ExpectSuccess(t, memorymap.NewRange(0x0100, 0x0200).Overlaps(ram))
	test.ExpectFailure(t, ram.Overlaps(memorymap.NewRange(0x0800, 0x0fff)))
}
