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

// Package memorymap describes address ranges and the default memory map of
// the emulated machine.
//
// Ranges are described by an origin and a memtop. Both addresses are included
// in the range. Using an inclusive memtop means that a range can extend to
// the very top of the 16 bit address space.
//
// The default memory map is:
//
//	0x0000 -> 0x07ff	RAM
//	0x0800 -> 0x7fff	unmapped
//	0x8000 -> 0xffff	ROM
package memorymap
