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

// Package memory implements the memory devices of the emulated machine and
// the bus that connects them to the CPU.
//
// RAM and ROM are fixed size devices implementing the cpubus.SubComponent
// interface. They know nothing about where in the address space they are
// attached. Addresses given to them are local to the device.
//
// The Bus maps address ranges to devices. A device is attached with the
// Attach() function and from then on any access to an address in that range
// is routed to the device, with the address translated to the device's local
// address space:
//
//	bus := memory.NewBus()
//	err := bus.Attach(memorymap.RAMRange, memory.NewRAM())
//
// Accesses to addresses that have not been attached to a device fail with a
// cpubus.UnmappedAddressError. The Bus implements the cpubus.Memory interface
// and is the only way the interpreter accesses memory.
package memory
