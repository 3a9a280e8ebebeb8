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

// Package disassembly converts a program into a list of instructions.
//
// Disassembly is linear. Every byte of the program is visited once, starting
// at the first byte, and each instruction is decoded using the same
// definitions as the interpreter. Bytes that do not decode to a supported
// instruction are shown as unknown and disassembly continues from the next
// byte. The halt opcode is listed but does not end the disassembly.
//
// Unlike interpretation, disassembly never touches memory and never fails.
package disassembly
