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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = time.Now().UnixNano()
}

// Random is a random number generator for the emulation.
type Random struct {
	// use zero seed rather than the random base seed. this is only really
	// useful for instances where random numbers must be predictable
	ZeroSeed bool

	rnd *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

// Reseed restarts the sequence of random numbers. If ZeroSeed is true the
// sequence will be the same every time.
func (rnd *Random) Reseed() {
	if rnd.ZeroSeed {
		rnd.rnd = rand.New(rand.NewSource(0))
		return
	}
	rnd.rnd = rand.New(rand.NewSource(baseSeed))
}

// Intn returns a non-negative pseudo-random number in [0,n). Panics if n <= 0
// in the same way as rand.Intn().
func (rnd *Random) Intn(n int) int {
	if rnd.rnd == nil {
		rnd.Reseed()
	}
	return rnd.rnd.Intn(n)
}
