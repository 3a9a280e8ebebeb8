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

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.String(), "sv-bdizc")

	// unused bit is always set in value context
	test.ExpectEquality(t, sr.Value(), 0x20)

	sr.Sign = true
	sr.Zero = true
	test.ExpectEquality(t, sr.String(), "Sv-bdiZc")
	test.ExpectEquality(t, sr.Value(), 0xa2)

	sr.Reset()
	test.ExpectEquality(t, sr.String(), "sv-bdizc")
}

func TestStatusRegisterValue(t *testing.T) {
	var sr registers.StatusRegister

	for v := 0; v <= 0xff; v++ {
		sr.FromValue(uint8(v))

		// bit 5 is not stored so will always be set on the way out
		test.ExpectEquality(t, sr.Value(), uint8(v)|0x20)
	}

	sr.FromValue(0xff)
	test.ExpectEquality(t, sr.String(), "SV-BDIZC")
}
