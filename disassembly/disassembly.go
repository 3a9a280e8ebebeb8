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

package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/sixtyfive/hardware/cpu/execution"
	"github.com/jetsetilly/sixtyfive/hardware/cpu/instructions"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Result execution.Result

	// the bytes of the program that make up the instruction
	Bytes []uint8
}

func (e Entry) String() string {
	b := strings.Builder{}
	for _, v := range e.Bytes {
		b.WriteString(fmt.Sprintf("%02x ", v))
	}

	// the result string begins with the address. the bytes are placed
	// between the address and the instruction
	r := e.Result.String()
	address, instruction, _ := strings.Cut(r, " ")

	return fmt.Sprintf("%s  %-9s %s", address, b.String(), instruction)
}

// Disassembly of a program.
type Disassembly struct {
	defns   []*instructions.Definition
	Entries []Entry
}

// FromProgram disassembles program.
func FromProgram(program []uint8) *Disassembly {
	dsm := &Disassembly{
		defns: instructions.GetDefinitions(),
	}

	for address := 0; address < len(program); {
		e := dsm.decode(program, address)
		dsm.Entries = append(dsm.Entries, e)
		address += len(e.Bytes)
	}

	return dsm
}

func (dsm *Disassembly) decode(program []uint8, address int) Entry {
	opcode := program[address]

	e := Entry{
		Result: execution.Result{
			Address:   uint16(address),
			ByteCount: 1,
			Final:     true,
		},
	}

	if opcode == instructions.HaltOpcode {
		e.Result.Halted = true
		e.Bytes = program[address : address+1]
		return e
	}

	defn := dsm.defns[opcode]
	if defn == nil {
		e.Bytes = program[address : address+1]
		return e
	}
	e.Result.Defn = defn

	for i := range defn.AddressingMode.OperandBytes() {
		a := address + 1 + i
		if a >= len(program) {
			e.Result.Final = false
			break // for loop
		}
		e.Result.InstructionData |= uint16(program[a]) << (8 * i)
		e.Result.ByteCount++
	}

	e.Bytes = program[address : address+e.Result.ByteCount]

	return e
}

// Write the disassembly to output. One instruction per line.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := io.WriteString(output, e.String()); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
		if _, err := io.WriteString(output, "\n"); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
	}
	return nil
}
