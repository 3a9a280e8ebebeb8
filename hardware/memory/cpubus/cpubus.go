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

package cpubus

// Reader is implemented by devices that can be read one byte at a time.
// Read must fail with OutOfRangeError for addresses outside the device.
type Reader interface {
	Read(address uint16) (uint8, error)
}

// Writer is implemented by devices that can be written one byte at a time.
// Write must fail with OutOfRangeError for addresses outside the device.
type Writer interface {
	Write(address uint16, data uint8) error
}

// SubComponent is the set of capabilities a device must implement to be
// attached to the bus.
type SubComponent interface {
	Reader
	Writer

	// the number of addressable bytes in the device
	Size() int

	// name of device. used for logging and summaries
	Label() string
}

// Memory defines the operations for the memory system when accessed from the
// CPU. The Bus type implements this interface and maps the address to the
// correct device, meaning that CPU access need not care which device it is
// reading from or writing to.
type Memory interface {
	Reader
	Writer
}
