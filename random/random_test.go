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

package random_test

import (
	"testing"

	"github.com/jetsetilly/sixtyfive/random"
	"github.com/jetsetilly/sixtyfive/test"
)

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom()
	a.ZeroSeed = true
	b := random.NewRandom()
	b.ZeroSeed = true

	for i := 0; i < 100; i++ {
		test.ExpectEquality(t, a.Intn(0x100), b.Intn(0x100))
	}

	// reseeding restarts the sequence
	a.Reseed()
	first := a.Intn(0x10000)
	a.Reseed()
	test.ExpectEquality(t, a.Intn(0x10000), first)
}

func TestRange(t *testing.T) {
	r := random.NewRandom()
	for i := 0; i < 1000; i++ {
		v := r.Intn(0xff)
		if v < 0 || v >= 0xff {
			t.Fatalf("value out of range: %d", v)
		}
	}
}
