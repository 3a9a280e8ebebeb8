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

// Package prefs implements typed preference values. A preference value can
// be set with a value of its own type or with a string representation of
// that type, which makes preferences suitable for setting from the command
// line or from a script.
//
// Hook functions can be attached to a preference and are called before
// (SetHookPre) and after (SetHookPost) the value changes. An error returned
// by the pre hook prevents the change.
//
// Values are stored atomically and can be read and written from different
// goroutines.
//
// The command line stack allows preferences to be specified on the command
// line as a single string of key/value pairs:
//
//	hardware.randomstate::true; hardware.trace::false
//
// Preference groups take values from the top of the stack with the
// GetCommandLinePref() function.
package prefs
