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

// Package cpu contains the register set of the emulated 6502 family
// microprocessor. The CPU type holds the accumulator, the two index registers,
// the program counter and the status register.
//
// The CPU type does not execute instructions itself. That is the job of the
// interpreter package, which is handed the CPU for the duration of a call:
//
//	mc := cpu.NewCPU(nil)
//	interp := interpreter.NewInterpreter(mem)
//	interp.Load(program)
//	err := interp.Interpret(mc)
//
// Flag updates are made with UpdateZeroFlag() and UpdateNegativeFlag(). They
// should be called with the value of the register that has just been changed
// by an instruction.
package cpu
