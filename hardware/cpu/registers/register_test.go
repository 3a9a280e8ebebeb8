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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/sixtyfive/hardware/cpu/registers"
	"github.com/jetsetilly/sixtyfive/test"
)

func TestRegister(t *testing.T) {
	// initialisation
	r8 := registers.NewRegister(0, "A")
	test.ExpectEquality(t, r8.IsZero(), true)
	test.ExpectEquality(t, r8.IsNegative(), false)
	test.ExpectEquality(t, r8.Label(), "A")

	// loading
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), 127)
	test.ExpectEquality(t, r8.IsNegative(), false)
	test.ExpectEquality(t, r8.String(), "7f")

	r8.Load(0x80)
	test.ExpectEquality(t, r8.IsNegative(), true)
	test.ExpectEquality(t, r8.IsZero(), false)
	test.ExpectEquality(t, r8.Address(), 0x0080)

	// increment boundary
	r8.Load(0xff)
	r8.Increment()
	test.ExpectEquality(t, r8.Value(), 0)
	test.ExpectEquality(t, r8.IsZero(), true)
}
