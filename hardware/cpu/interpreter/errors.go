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

package interpreter

import (
	"errors"
	"fmt"
)

// Sentinel errors for the interpreter.
var (
	NoSourceLoaded    = errors.New("no source loaded")
	UnsupportedOpcode = errors.New("unsupported opcode")
	ExpectedParameter = errors.New("expected parameter")
)

// UnsupportedOpcodeError is returned when the fetched opcode has no entry in
// the instruction table.
type UnsupportedOpcodeError struct {
	Opcode uint8
}

func (e UnsupportedOpcodeError) Error() string {
	return fmt.Sprintf("%v: 0x%02x", UnsupportedOpcode, e.Opcode)
}

// Is implements the interface required by errors.Is().
func (e UnsupportedOpcodeError) Is(target error) bool {
	return target == UnsupportedOpcode
}

// ExpectedParameterError is returned when an instruction requires an operand
// byte beyond the end of the instruction stream. Position is the value of the
// program counter at which the operand was expected.
type ExpectedParameterError struct {
	Position uint16
}

func (e ExpectedParameterError) Error() string {
	return fmt.Sprintf("%v: at %04x", ExpectedParameter, e.Position)
}

// Is implements the interface required by errors.Is().
func (e ExpectedParameterError) Is(target error) bool {
	return target == ExpectedParameter
}
