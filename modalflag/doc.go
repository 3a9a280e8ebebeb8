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

// Package modalflag wraps the flag package of the standard library so that a
// command line can be split into modes, each mode having its own set of flags.
//
// Arguments are given with NewArgs() and the flags for the first mode are
// added before calling Parse(). If sub-modes were added with AddSubModes()
// then Parse() consumes the mode name if one is present, or chooses the
// default mode if it is not. Flags for the selected mode can then be added and
// Parse() called again:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	md.NewMode()
//	hex := md.AddString("hex", "", "program as hex string")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//	case "STEP":
//	}
//
// Mode names are not case sensitive. Help is printed to the Output writer when
// the -help flag is found and Parse() returns ParseHelp.
package modalflag
