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

package cpubus

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/sixtyfive/hardware/memory/memorymap"
)

// AddressError is matched by all errors in this package.
var AddressError = errors.New("address error")

// Sentinel errors for each type of address fault.
var (
	OutOfRange  = errors.New("out of range access")
	Unmapped    = errors.New("unmapped address")
	Overlapping = errors.New("overlapping attachment")
)

// OutOfRangeError is returned when a device (or the bus) is asked for an
// address outside of its valid range.
type OutOfRangeError struct {
	Address uint16
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("%v: 0x%04x", OutOfRange, e.Address)
}

// Is implements the interface required by errors.Is().
func (e OutOfRangeError) Is(target error) bool {
	return target == OutOfRange || target == AddressError
}

// UnmappedAddressError is returned when the bus is asked for an address that
// is not covered by any attached device.
type UnmappedAddressError struct {
	Address uint16
}

func (e UnmappedAddressError) Error() string {
	return fmt.Sprintf("%v: 0x%04x", Unmapped, e.Address)
}

// Is implements the interface required by errors.Is().
func (e UnmappedAddressError) Is(target error) bool {
	return target == Unmapped || target == AddressError
}

// OverlappingAttachmentError is returned when a device is attached to a range
// that overlaps with the range of a device already attached.
type OverlappingAttachmentError struct {
	Range    memorymap.Range
	Existing memorymap.Range
}

func (e OverlappingAttachmentError) Error() string {
	return fmt.Sprintf("%v: %s collides with %s", Overlapping, e.Range, e.Existing)
}

// Is implements the interface required by errors.Is().
func (e OverlappingAttachmentError) Is(target error) bool {
	return target == Overlapping || target == AddressError
}
