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

package memory

import (
	"github.com/jetsetilly/sixtyfive/hardware/memory/cpubus"
)

// RAMSize is the number of bytes in the RAM device.
const RAMSize = 0x0800

// RAM is a readable and writable memory device.
type RAM struct {
	memory [RAMSize]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

func (ram *RAM) String() string {
	return hexDump(ram.memory[:])
}

// Summary returns a hex dump of the rows of RAM that contain a non-zero
// byte.
func (ram *RAM) Summary() string {
	return hexDumpNonZero(ram.memory[:])
}

// Label implements the cpubus.SubComponent interface.
func (ram *RAM) Label() string {
	return "RAM"
}

// Size implements the cpubus.SubComponent interface.
func (ram *RAM) Size() int {
	return RAMSize
}

// Read implements the cpubus.SubComponent interface.
func (ram *RAM) Read(address uint16) (uint8, error) {
	if int(address) >= RAMSize {
		return 0, cpubus.OutOfRangeError{Address: address}
	}
	return ram.memory[address], nil
}

// Write implements the cpubus.SubComponent interface.
func (ram *RAM) Write(address uint16, data uint8) error {
	if int(address) >= RAMSize {
		return cpubus.OutOfRangeError{Address: address}
	}
	ram.memory[address] = data
	return nil
}

// Load copies data into RAM starting at offset. If the data does not fit
// then nothing is copied and the error reports the first address beyond the
// end of RAM.
func (ram *RAM) Load(offset uint16, data []uint8) error {
	if err := checkLoad(offset, len(data), RAMSize); err != nil {
		return err
	}
	copy(ram.memory[offset:], data)
	return nil
}

// Dump returns a copy of the contents of RAM.
func (ram *RAM) Dump() [RAMSize]uint8 {
	return ram.memory
}

// Reset sets all bytes in RAM to zero.
func (ram *RAM) Reset() {
	clear(ram.memory[:])
}

// checkLoad returns an error if length bytes starting at offset cannot fit in
// a device of size bytes. The address in the error is the first address that
// is beyond the end of the device.
func checkLoad(offset uint16, length int, size int) error {
	if int(offset)+length > size {
		return cpubus.OutOfRangeError{Address: uint16(size)}
	}
	return nil
}
