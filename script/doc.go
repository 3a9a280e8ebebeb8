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

// Package script allows a Machine to be controlled by a Lua script. The Lua
// implementation is provided by "github.com/yuin/gopher-lua".
//
// The following global functions are available to the script:
//
//	load(hex)	load a program given as a hex string. see the program package
//	run()		run the loaded program until it halts
//	step()		execute one instruction. returns a description of the
//			instruction and whether the program has halted
//	reset()		reset the CPU and clear RAM
//	reg(name)	value of register A, X, Y, PC or SR
//	flag(name)	value of status flag N (or S), V, B, D, I, Z or C
//	pc()		value of the program counter
//	peek(addr)	read a byte from memory through the bus
//	poke(addr, v)	write a byte to memory through the bus
//	log(tag, detail) add an entry to the central log
//	print(...)	write arguments to the script output
//
// Errors from the machine are raised as Lua errors and so can be caught with
// pcall().
package script
