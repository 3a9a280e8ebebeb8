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

package cpubus_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/sixtyfive/hardware/memory/cpubus"
	"github.com/jetsetilly/sixtyfive/hardware/memory/memorymap"
	"github.com/jetsetilly/sixtyfive/test"
)

func TestErrorKinds(t *testing.T) {
	var err error

	err = cpubus.OutOfRangeError{Address: 0x0800}
	test.ExpectSuccess(t, errors.Is(err, cpubus.OutOfRange))
	test.ExpectSuccess(t, errors.Is(err, cpubus.AddressError))
	test.ExpectFailure(t, errors.Is(err, cpubus.Unmapped))
	test.ExpectEquality(t, err.Error(), "out of range access: 0x0800")

	err = cpubus.UnmappedAddressError{Address: 0x0900}
	test.ExpectSuccess(t, errors.Is(err, cpubus.Unmapped))
	test.ExpectSuccess(t, errors.Is(err, cpubus.AddressError))
	test.ExpectFailure(t, errors.Is(err, cpubus.Overlapping))

	err = cpubus.OverlappingAttachmentError{
		Range:    memorymap.NewRange(0x0400, 0x0bff),
		Existing: memorymap.NewRange(0x0000, 0x07ff),
	}
	test.ExpectSuccess(t, errors.Is(err, cpubus.Overlapping))
	test.ExpectSuccess(t, errors.Is(err, cpubus.AddressError))
	test.ExpectEquality(t, err.Error(), "overlapping attachment: 0400 -> 0bff collides with 0000 -> 07ff")
}

func TestWrappedErrors(t *testing.T) {
	err := fmt.Errorf("interpreter: %w", cpubus.UnmappedAddressError{Address: 0x1234})

	var unmapped cpubus.UnmappedAddressError
	test.DemandSuccess(t, errors.As(err, &unmapped))
	test.ExpectEquality(t, unmapped.Address, 0x1234)
	test.ExpectSuccess(t, errors.Is(err, cpubus.AddressError))
}
