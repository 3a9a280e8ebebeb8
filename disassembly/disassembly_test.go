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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/sixtyfive/disassembly"
	"github.com/jetsetilly/sixtyfive/test"
)

func TestDisassembly(t *testing.T) {
	dsm := disassembly.FromProgram([]uint8{0xa9, 0x05, 0x8d, 0x00, 0x02, 0xaa, 0x00, 0xff, 0xad, 0x10})
	test.DemandEquality(t, len(dsm.Entries), 6)

	w := &test.CompareWriter{}
	test.DemandSuccess(t, dsm.Write(w))
	test.ExpectSuccess(t, w.Compare(
		"0000  a9 05     LDA #$05\n"+
			"0002  8d 00 02  STA $0200\n"+
			"0005  aa        TAX\n"+
			"0006  00        halt\n"+
			"0007  ff        ???\n"+
			"0008  ad 10     LDA $0010 (incomplete)\n"), w.String())

	test.ExpectSuccess(t, dsm.Entries[3].Result.Halted)
	test.ExpectFailure(t, dsm.Entries[5].Result.Final)
}

func TestEmpty(t *testing.T) {
	dsm := disassembly.FromProgram(nil)
	test.ExpectEquality(t, len(dsm.Entries), 0)
}
