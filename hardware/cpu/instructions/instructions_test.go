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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/sixtyfive/hardware/cpu/instructions"
	"github.com/jetsetilly/sixtyfive/test"
)

func TestDefinitionTable(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	// halt is never defined
	test.ExpectEquality(t, defs[instructions.HaltOpcode] == nil, true)

	for i, defn := range defs {
		if defn == nil {
			continue
		}
		test.ExpectEquality(t, int(defn.OpCode), i)
		test.ExpectEquality(t, defn.Bytes, 1+defn.AddressingMode.OperandBytes(), defn.Operator)
	}

	lda := defs[0xa9]
	test.DemandEquality(t, lda != nil, true)
	test.ExpectEquality(t, lda.Operator, instructions.LDA)
	test.ExpectEquality(t, lda.AddressingMode, instructions.Immediate)
	test.ExpectEquality(t, lda.Bytes, 2)
	test.ExpectEquality(t, lda.String(), "a9 LDA +2bytes [mode=Immediate effect=Read]")

	tax := defs[0xaa]
	test.DemandEquality(t, tax != nil, true)
	test.ExpectEquality(t, tax.Operator, instructions.TAX)
	test.ExpectEquality(t, tax.Bytes, 1)

	sta := defs[0x8d]
	test.DemandEquality(t, sta != nil, true)
	test.ExpectEquality(t, sta.Bytes, 3)
	test.ExpectEquality(t, sta.Effect, instructions.Write)

	test.ExpectEquality(t, defs[0xff] == nil, true)
}

func TestDefinitionTableIsFresh(t *testing.T) {
	a := instructions.GetDefinitions()
	b := instructions.GetDefinitions()
	a[0xa9] = nil
	test.ExpectEquality(t, b[0xa9] != nil, true)
}
