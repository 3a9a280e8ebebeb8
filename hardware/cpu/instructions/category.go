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

// Category classifies the effect an instruction has on memory.
type Category int

// List of instruction categories.
const (
	// the instruction reads its operand. for ZeroPage and Absolute addressing
	// the operand is the value read from memory
	Read Category = iota

	// the instruction writes to the address given by its operand
	Write

	// the instruction works only on registers
	Register
)

func (e Category) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Register:
		return "Register"
	}
	return "unknown category"
}
