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
	"fmt"
	"slices"
	"strings"
)

// hexDump returns a formatted view of data, 16 bytes per row. The row label
// is the local address of the first byte in the row.
func hexDump(data []uint8) string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < len(data); y += 16 {
		s.WriteString(fmt.Sprintf("%04x |", y))
		for x := y; x < y+16 && x < len(data); x++ {
			s.WriteString(fmt.Sprintf(" %02x", data[x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// hexDumpNonZero is like hexDump but rows that contain only zero bytes are
// omitted. Returns the empty string if all bytes are zero.
func hexDumpNonZero(data []uint8) string {
	s := strings.Builder{}
	for y := 0; y < len(data); y += 16 {
		row := data[y:min(y+16, len(data))]
		if !slices.ContainsFunc(row, func(v uint8) bool { return v != 0 }) {
			continue
		}
		s.WriteString(fmt.Sprintf("%04x |", y))
		for _, v := range row {
			s.WriteString(fmt.Sprintf(" %02x", v))
		}
		s.WriteString("\n")
	}
	return s.String()
}
