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

package interpreter

// State of the interpreter.
type State int

// List of valid interpreter states.
const (
	// no instruction stream has been loaded
	Unloaded State = iota

	// an instruction stream has been loaded but not yet run
	Ready

	// the interpreter is part way through the stream. the state after a
	// successful call to Step() that did not halt
	Running

	// the halt opcode or the end of stream has been reached, or an error
	// has occurred
	Halted
)

func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Halted:
		return "halted"
	}
	return "unknown state"
}
