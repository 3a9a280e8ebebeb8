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
	"github.com/jetsetilly/sixtyfive/logger"
)

// ROMSize is the number of bytes in the ROM device.
const ROMSize = 0x8000

// ROM is a read-only memory device. Writes through the cpubus.Writer
// interface are ignored but the address is still checked. The contents of
// ROM can be set with the Load() function.
type ROM struct {
	memory [ROMSize]uint8

	// permission for logging of ignored writes
	perm logger.Permission
}

// NewROM is the preferred method of initialisation for the ROM type. Ignored
// writes are logged if the logger.Permission allows it. A nil permission
// means ignored writes are never logged.
func NewROM(perm logger.Permission) *ROM {
	return &ROM{
		perm: perm,
	}
}

func (rom *ROM) String() string {
	return hexDump(rom.memory[:])
}

// Label implements the cpubus.SubComponent interface.
func (rom *ROM) Label() string {
	return "ROM"
}

// Size implements the cpubus.SubComponent interface.
func (rom *ROM) Size() int {
	return ROMSize
}

// Read implements the cpubus.SubComponent interface.
func (rom *ROM) Read(address uint16) (uint8, error) {
	if int(address) >= ROMSize {
		return 0, cpubus.OutOfRangeError{Address: address}
	}
	return rom.memory[address], nil
}

// Write implements the cpubus.SubComponent interface. The write is ignored.
func (rom *ROM) Write(address uint16, data uint8) error {
	if int(address) >= ROMSize {
		return cpubus.OutOfRangeError{Address: address}
	}
	logger.Logf(rom.perm, "rom", "ignored write of %02x to %04x", data, address)
	return nil
}

// Load copies data into ROM starting at offset. If the data does not fit
// then nothing is copied and the error reports the first address beyond the
// end of ROM.
func (rom *ROM) Load(offset uint16, data []uint8) error {
	if err := checkLoad(offset, len(data), ROMSize); err != nil {
		return err
	}
	copy(rom.memory[offset:], data)
	return nil
}

// Dump returns a copy of the contents of ROM.
func (rom *ROM) Dump() [ROMSize]uint8 {
	return rom.memory
}
