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

// Package logger is the central log for the emulation. There is only ever one
// log and it is accessed through the package level functions.
//
// Entries are made with a tag and a detail string. The tag identifies the
// part of the emulation making the entry:
//
//	logger.Log(logger.Allow, "bus", "attached RAM")
//	logger.Logf(logger.Allow, "interpreter", "halted at %#04x", pc)
//
// Adjacent entries with the same tag and detail are collapsed into a single
// entry with a repeat count.
//
// The Permission argument allows a caller to suppress logging without
// wrapping every call in a conditional. For example, the preferences type
// can implement Permission so that logging is controlled by a preference
// value.
package logger
