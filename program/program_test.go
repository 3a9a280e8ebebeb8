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

package program_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/jetsetilly/sixtyfive/program"
	"github.com/jetsetilly/sixtyfive/test"
)

func TestParseHex(t *testing.T) {
	expected := []uint8{0xa9, 0x05, 0xaa, 0x00}

	for _, s := range []string{
		"a9 05 aa 00",
		"A9 05 AA 00",
		"$a9,$05,$aa,$00",
		"0xa9, 0x05, 0xaa, 0x00",
		"a905aa00",
		"0xa905aa00",
		"  a9\t05\naa 00  ",
	} {
		p, err := program.ParseHex(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectSuccess(t, slices.Equal(p, expected), s)
	}

	p, err := program.ParseHex("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(p), 0)

	p, err = program.ParseHex("ea")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, slices.Equal(p, []uint8{0xea}))
}

func TestParseHexErrors(t *testing.T) {
	for _, s := range []string{
		"a9 g5",
		"a9 105",
		"a905a",
		"$",
	} {
		_, err := program.ParseHex(s)
		test.ExpectSuccess(t, errors.Is(err, program.BadHex), s)
	}
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "program.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0xa9, 0x05, 0x00}, 0o644))

	p, err := program.Load(fn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, slices.Equal(p, []uint8{0xa9, 0x05, 0x00}))

	_, err = program.Load(filepath.Join(t.TempDir(), "missing.bin"))
	test.ExpectFailure(t, err)

	big := filepath.Join(t.TempDir(), "big.bin")
	test.DemandSuccess(t, os.WriteFile(big, make([]byte, program.MaxSize+1), 0o644))
	_, err = program.Load(big)
	test.ExpectSuccess(t, errors.Is(err, program.TooLarge))
}
