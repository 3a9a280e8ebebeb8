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

// Package registers implements the three types of registers found in the
// 6502 family of CPUs: the program counter, the status register and the 8 bit
// register type used for the accumulator and the index registers.
//
// The 8 bit Register type defines loading and the tests required for status
// updates: is the value zero and is the number negative.
//
// The program counter by comparison is 16 bits wide and defines load,
// increment and add operations. All arithmetic on the program counter wraps
// at the 16 bit boundary.
//
// The status register is implemented as a series of flags. Setting of flags
// is done directly. For instance, in the CPU, we might have this sequence of
// function calls:
//
//	a.Load(10)
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
package registers
