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

package memory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jetsetilly/sixtyfive/hardware/memory/cpubus"
	"github.com/jetsetilly/sixtyfive/hardware/memory/memorymap"
)

// Mapping is a device attached to the bus and the range of addresses it
// responds to.
type Mapping struct {
	Range  memorymap.Range
	Device cpubus.SubComponent
}

func (m Mapping) String() string {
	return fmt.Sprintf("%s  %s", m.Range, m.Device.Label())
}

// Bus routes memory accesses to the device attached at that address.
type Bus struct {
	// sorted by origin. ranges never overlap
	mappings []Mapping
}

// NewBus is the preferred method of initialisation for the Bus type. The bus
// has no attached devices.
func NewBus() *Bus {
	return &Bus{}
}

// Attach device to the bus at the specified range. The range must not be
// larger than the device and must not overlap with any range already
// attached. The bus is unchanged if an error is returned.
func (bus *Bus) Attach(r memorymap.Range, dev cpubus.SubComponent) error {
	if !r.Valid() || r.Size() > dev.Size() {
		return cpubus.OutOfRangeError{Address: r.Memtop}
	}

	for _, m := range bus.mappings {
		if m.Range.Overlaps(r) {
			return cpubus.OverlappingAttachmentError{Range: r, Existing: m.Range}
		}
	}

	i, _ := slices.BinarySearchFunc(bus.mappings, r.Origin, func(m Mapping, origin uint16) int {
		return int(m.Range.Origin) - int(origin)
	})
	bus.mappings = slices.Insert(bus.mappings, i, Mapping{Range: r, Device: dev})

	return nil
}

// find the mapping containing the address. returns false if the address is
// unmapped.
func (bus *Bus) find(address uint16) (Mapping, bool) {
	// index of the first mapping with a memtop at or above the address
	i, _ := slices.BinarySearchFunc(bus.mappings, address, func(m Mapping, address uint16) int {
		return int(m.Range.Memtop) - int(address)
	})
	if i < len(bus.mappings) && bus.mappings[i].Range.Contains(address) {
		return bus.mappings[i], true
	}
	return Mapping{}, false
}

// Read implements the cpubus.Memory interface.
func (bus *Bus) Read(address uint16) (uint8, error) {
	m, ok := bus.find(address)
	if !ok {
		return 0, cpubus.UnmappedAddressError{Address: address}
	}
	return m.Device.Read(m.Range.Local(address))
}

// Write implements the cpubus.Memory interface.
func (bus *Bus) Write(address uint16, data uint8) error {
	m, ok := bus.find(address)
	if !ok {
		return cpubus.UnmappedAddressError{Address: address}
	}
	return m.Device.Write(m.Range.Local(address), data)
}

// Mappings returns a copy of the list of attached devices, in address order.
func (bus *Bus) Mappings() []Mapping {
	return slices.Clone(bus.mappings)
}

// Summary returns a description of the bus. One line per attached device.
func (bus *Bus) Summary() string {
	s := strings.Builder{}
	for _, m := range bus.mappings {
		s.WriteString(m.String())
		s.WriteString("\n")
	}
	return s.String()
}
