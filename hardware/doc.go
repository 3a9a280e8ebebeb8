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

// Package hardware is the base package for the emulated machine. The Machine
// type wires together the CPU, RAM, ROM, the Bus that connects them and the
// Interpreter that runs programs on the CPU.
//
// The memory map of the machine is described in the memorymap package.
//
// Programs are given to the machine as a slice of bytes and are run from the
// start of the slice:
//
//	m, err := hardware.NewMachine(nil)
//	err = m.Run([]uint8{0xa9, 0x05, 0x8d, 0x00, 0x02, 0x00})
//
// The sub-packages of hardware contain the implementations of the individual
// components.
package hardware
