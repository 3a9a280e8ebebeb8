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

// Package program converts the textual and file representations of a program
// into the byte stream accepted by the interpreter.
//
// Hex strings are a list of bytes separated by white space or commas. Each
// byte can optionally be prefixed with $ or 0x:
//
//	a9 05 aa 00
//	$a9,$05,$aa,$00
//
// A hex string without any separators is read two digits at a time.
package program
