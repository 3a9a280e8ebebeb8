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

package program

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MaxSize is the largest program that can be addressed by the program
// counter.
const MaxSize = 0x10000

// Sentinel errors returned by the package.
var (
	BadHex   = errors.New("bad hex")
	TooLarge = errors.New("program too large")
)

// ParseHex converts a string of hex bytes into a program.
func ParseHex(s string) ([]uint8, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	// a single unseparated run of digits
	if len(fields) == 1 && len(strings.TrimPrefix(fields[0], "0x")) > 2 && !strings.HasPrefix(fields[0], "$") {
		f := strings.TrimPrefix(fields[0], "0x")
		if len(f)%2 != 0 {
			return nil, fmt.Errorf("program: %w: odd number of digits", BadHex)
		}
		fields = fields[:0]
		for i := 0; i < len(f); i += 2 {
			fields = append(fields, f[i:i+2])
		}
	}

	p := make([]uint8, 0, len(fields))
	for _, f := range fields {
		v, err := parseByte(f)
		if err != nil {
			return nil, err
		}
		p = append(p, v)
	}

	if len(p) > MaxSize {
		return nil, fmt.Errorf("program: %w: %d bytes", TooLarge, len(p))
	}

	return p, nil
}

func parseByte(s string) (uint8, error) {
	t := s
	if strings.HasPrefix(t, "$") {
		t = t[1:]
	} else if strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X") {
		t = t[2:]
	}
	v, err := strconv.ParseUint(t, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("program: %w: %q", BadHex, s)
	}
	return uint8(v), nil
}

// Load reads a raw binary program from a file. The contents of the file are
// not interpreted in any way.
func Load(filename string) ([]uint8, error) {
	p, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("program: %w", err)
	}
	if len(p) > MaxSize {
		return nil, fmt.Errorf("program: %w: %d bytes", TooLarge, len(p))
	}
	return p, nil
}
