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

// Package interpreter executes a stream of 6502 machine code against a CPU.
//
// The instruction stream is a slice of bytes given to the interpreter with
// the Load() function. The program counter of the CPU is the index into the
// stream of the next byte to be read. The stream is never modified by the
// interpreter.
//
// The CPU is not owned by the interpreter. It is passed to Interpret() and
// Step() for the duration of the call:
//
//	it := interpreter.NewInterpreter(bus)
//	it.Load([]uint8{0xa9, 0x05, 0xaa, 0x00})
//	err := it.Interpret(mc)
//
// Interpretation ends without error when the halt opcode (0x00) is fetched or
// when the end of the stream is reached. In both cases the program counter is
// left pointing at the halting position.
//
// Every opcode is looked up in a table of 256 entries. Opcodes without an
// entry cause an UnsupportedOpcodeError and the CPU is left untouched. An
// instruction that cannot read all of its operand bytes from the stream
// causes an ExpectedParameterError. Registers and flags are only changed once
// all reads for the instruction have succeeded.
//
// Instructions that refer to memory do so through the cpubus.Memory given to
// NewInterpreter(). In the full machine this is the Bus.
package interpreter
