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

package instructions

// AddressingMode describes the method by which an instruction receives its
// operand.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied   AddressingMode = iota
	Immediate                // #$nn
	ZeroPage                 // $nn
	Absolute                 // $nnnn
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case Absolute:
		return "Absolute"
	}
	return "unknown addressing mode"
}

// OperandBytes returns the number of operand bytes that follow the opcode for
// the addressing mode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Immediate, ZeroPage:
		return 1
	case Absolute:
		return 2
	}
	return 0
}
