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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/sixtyfive/hardware/cpu/registers"
	"github.com/jetsetilly/sixtyfive/hardware/instance"
)

// CPU implements the register set of the 6502.
type CPU struct {
	instance *instance.Instance

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	Status registers.StatusRegister
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// instance argument can be nil.
func NewCPU(instance *instance.Instance) *CPU {
	return &CPU{
		instance: instance,
		PC:       registers.NewProgramCounter(0),
		A:        registers.NewRegister(0, "A"),
		X:        registers.NewRegister(0, "X"),
		Y:        registers.NewRegister(0, "Y"),
		Status:   registers.NewStatusRegister(),
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.Status.Label(), mc.Status)
}

// Reset CPU registers and flags. If the RandomState preference is set then
// the registers are loaded with random values.
func (mc *CPU) Reset() {
	// checking for instance == nil because it's possible for NewCPU to be
	// called with a nil instance (test package)
	if mc.instance != nil && mc.instance.Prefs.RandomState.Get().(bool) {
		mc.PC.Load(uint16(mc.instance.Random.Intn(0x10000)))
		mc.A.Load(uint8(mc.instance.Random.Intn(0x100)))
		mc.X.Load(uint8(mc.instance.Random.Intn(0x100)))
		mc.Y.Load(uint8(mc.instance.Random.Intn(0x100)))
		mc.Status.FromValue(uint8(mc.instance.Random.Intn(0x100)))
	} else {
		mc.PC.Load(0)
		mc.A.Load(0)
		mc.X.Load(0)
		mc.Y.Load(0)
		mc.Status.Reset()
	}

	mc.UpdateZeroFlag(mc.A.Value())
	mc.UpdateNegativeFlag(mc.A.Value())
}

// UpdateZeroFlag sets the Zero flag if value is zero and clears it otherwise.
func (mc *CPU) UpdateZeroFlag(value uint8) {
	mc.Status.Zero = value == 0
}

// UpdateNegativeFlag sets the Sign flag if bit 7 of value is set and clears it
// otherwise.
func (mc *CPU) UpdateNegativeFlag(value uint8) {
	mc.Status.Sign = value&0x80 == 0x80
}
