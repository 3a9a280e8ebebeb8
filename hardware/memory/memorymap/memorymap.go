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

package memorymap

import "fmt"

// Range is a contiguous range of addresses. Both Origin and Memtop are part
// of the range.
type Range struct {
	Origin uint16
	Memtop uint16
}

// NewRange is the preferred method of initialisation for the Range type.
func NewRange(origin uint16, memtop uint16) Range {
	return Range{Origin: origin, Memtop: memtop}
}

func (r Range) String() string {
	return fmt.Sprintf("%04x -> %04x", r.Origin, r.Memtop)
}

// Valid returns false if the memtop of the range is lower than the origin.
func (r Range) Valid() bool {
	return r.Memtop >= r.Origin
}

// Size returns the number of addresses in the range. The result is an int
// because a range covering all of memory has 0x10000 addresses.
func (r Range) Size() int {
	if !r.Valid() {
		return 0
	}
	return int(r.Memtop) - int(r.Origin) + 1
}

// Contains returns true if address is in the range.
func (r Range) Contains(address uint16) bool {
	return address >= r.Origin && address <= r.Memtop
}

// Overlaps returns true if any address is in both ranges.
func (r Range) Overlaps(o Range) bool {
	return r.Origin <= o.Memtop && o.Origin <= r.Memtop
}

// Local translates an address in the range to an address local to the
// range. The address must be in the range.
func (r Range) Local(address uint16) uint16 {
	return address - r.Origin
}

// The default memory map.
const (
	OriginRAM = uint16(0x0000)
	MemtopRAM = uint16(0x07ff)
	OriginROM = uint16(0x8000)
	MemtopROM = uint16(0xffff)
)

// Default ranges for RAM and ROM.
var (
	RAMRange = NewRange(OriginRAM, MemtopRAM)
	ROMRange = NewRange(OriginROM, MemtopROM)
)
