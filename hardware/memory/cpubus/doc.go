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

// Package cpubus defines the capability contract between the CPU side of the
// emulation and the memory devices attached to the bus.
//
// A device attachable to the bus implements the SubComponent interface. The
// Reader and Writer interfaces are the two halves of that contract and can be
// used on their own where only one capability is needed.
//
// Addresses given to a SubComponent are always local to the device. That is,
// address zero is the first byte of the device regardless of where the device
// is attached.
//
// Failures are reported with the error types in this package. All of them
// match the AddressError sentinel with errors.Is() in addition to their own
// sentinel, so a caller can test for any address fault in a single check.
package cpubus
