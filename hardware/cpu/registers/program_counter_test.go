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

func TestProgramCounter(t *testing.T) {
	// initialisation
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	// loading & addition
	pc.Load(127)
	test.ExpectEquality(t, pc.Address(), 127)
	test.ExpectEquality(t, pc.Add(2), false)
	test.ExpectEquality(t, pc.Address(), 129)
	test.ExpectEquality(t, pc.String(), "0081")

	// increment
	pc.Increment()
	test.ExpectEquality(t, pc.Address(), 130)
}

func TestProgramCounterWrap(t *testing.T) {
	pc := registers.NewProgramCounter(0xffff)
	pc.Increment()
	test.ExpectEquality(t, pc.Address(), 0x0000)

	pc.Load(0xfffe)
	test.ExpectEquality(t, pc.Add(3), true)
	test.ExpectEquality(t, pc.Address(), 0x0001)
}
