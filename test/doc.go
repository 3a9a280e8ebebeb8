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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions record a failure with t.Errorf() and return a bool
// indicating whether the expectation was met. The Demand functions are the
// same except that a failure is fatal for the test.
//
// The ExpectSuccess and ExpectFailure functions treat values in a generic
// way:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// Note that nil is a success value. This is because of how errors are
// usually returned (nil to indicate no error).
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output for comparison with an expected string.
package test
