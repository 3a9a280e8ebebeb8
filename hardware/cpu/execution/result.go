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

package execution

import (
	"fmt"

	"github.com/jetsetilly/sixtyfive/hardware/cpu/instructions"
)

// Result records the state/result of the last instruction executed.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the opcode. nil if the opcode was the halt opcode or
	// if no opcode could be fetched
	Defn *instructions.Definition

	// the operand of the instruction as read from the instruction stream.
	// for absolute addressing the two bytes are combined little-endian
	InstructionData uint16

	// the number of bytes read from the instruction stream, including the
	// opcode
	ByteCount int

	// whether the instruction completed
	Final bool

	// whether the instruction halted the interpreter
	Halted bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		if r.Halted {
			return fmt.Sprintf("%04x halt", r.Address)
		}
		return fmt.Sprintf("%04x ???", r.Address)
	}

	var operand string
	switch r.Defn.AddressingMode {
	case instructions.Immediate:
		operand = fmt.Sprintf(" #$%02x", r.InstructionData)
	case instructions.ZeroPage:
		operand = fmt.Sprintf(" $%02x", r.InstructionData)
	case instructions.Absolute:
		operand = fmt.Sprintf(" $%04x", r.InstructionData)
	}

	if !r.Final {
		return fmt.Sprintf("%04x %s%s (incomplete)", r.Address, r.Defn.Operator, operand)
	}
	return fmt.Sprintf("%04x %s%s", r.Address, r.Defn.Operator, operand)
}
