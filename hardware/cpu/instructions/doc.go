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

// Package instructions defines the table of instruction definitions. Each
// entry describes an opcode: the operator, the addressing mode, the number of
// bytes the instruction occupies and the effect category.
//
// The table is the extension point for the instruction set. Adding an
// instruction means adding a Definition to the table and, if the operator is
// new, a handler for the operator in the interpreter package. Opcodes without
// a definition are unsupported.
//
// Opcode 0x00 is reserved for halting and never has a definition.
package instructions
