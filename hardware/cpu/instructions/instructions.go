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

import "fmt"

// Operator is the mnemonic of an instruction. Several opcodes can share the
// same operator with different addressing modes.
type Operator string

// List of supported operators.
const (
	LDA Operator = "LDA"
	LDX Operator = "LDX"
	STA Operator = "STA"
	TAX Operator = "TAX"
	TXA Operator = "TXA"
	INX Operator = "INX"
	NOP Operator = "NOP"
)

// HaltOpcode is the reserved opcode that ends interpretation.
const HaltOpcode = uint8(0x00)

// Definition defines each instruction in the instruction set.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	AddressingMode AddressingMode
	Effect         Category
}

func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes [mode=%s effect=%s]", defn.OpCode, defn.Operator, defn.Bytes, defn.AddressingMode, defn.Effect)
}

func define(opcode uint8, operator Operator, mode AddressingMode, effect Category) Definition {
	return Definition{
		OpCode:         opcode,
		Operator:       operator,
		Bytes:          1 + mode.OperandBytes(),
		AddressingMode: mode,
		Effect:         effect,
	}
}

var definitions = []Definition{
	define(0xa9, LDA, Immediate, Read),
	define(0xa5, LDA, ZeroPage, Read),
	define(0xad, LDA, Absolute, Read),
	define(0xa2, LDX, Immediate, Read),
	define(0x85, STA, ZeroPage, Write),
	define(0x8d, STA, Absolute, Write),
	define(0xaa, TAX, Implied, Register),
	define(0x8a, TXA, Implied, Register),
	define(0xe8, INX, Implied, Register),
	define(0xea, NOP, Implied, Register),
}

// GetDefinitions returns a table of instruction definitions indexed by
// opcode. Entries for unsupported opcodes are nil. Each call returns a new
// table.
func GetDefinitions() []*Definition {
	table := make([]*Definition, 256)
	for i := range definitions {
		defn := definitions[i]
		if defn.OpCode == HaltOpcode {
			panic("instructions: halt opcode must not have a definition")
		}
		if table[defn.OpCode] != nil {
			panic(fmt.Sprintf("instructions: duplicate definition for opcode %#02x", defn.OpCode))
		}
		table[defn.OpCode] = &defn
	}
	return table
}
