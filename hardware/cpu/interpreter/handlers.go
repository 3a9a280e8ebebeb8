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

import (
	"github.com/jetsetilly/sixtyfive/hardware/cpu"
	"github.com/jetsetilly/sixtyfive/hardware/cpu/instructions"
)

// handler performs the effect of an instruction. The operand has already been
// read from the instruction stream.
type handler func(it *Interpreter, mc *cpu.CPU, defn *instructions.Definition, operand uint16) error

// handlers for each operator. every operator in the instructions package
// must have an entry.
var handlers = map[instructions.Operator]handler{
	instructions.LDA: func(it *Interpreter, mc *cpu.CPU, defn *instructions.Definition, operand uint16) error {
		v, err := it.value(defn, operand)
		if err != nil {
			return err
		}
		mc.A.Load(v)
		mc.UpdateZeroFlag(mc.A.Value())
		mc.UpdateNegativeFlag(mc.A.Value())
		return nil
	},

	instructions.LDX: func(it *Interpreter, mc *cpu.CPU, defn *instructions.Definition, operand uint16) error {
		v, err := it.value(defn, operand)
		if err != nil {
			return err
		}
		mc.X.Load(v)
		mc.UpdateZeroFlag(mc.X.Value())
		mc.UpdateNegativeFlag(mc.X.Value())
		return nil
	},

	instructions.STA: func(it *Interpreter, mc *cpu.CPU, _ *instructions.Definition, operand uint16) error {
		return it.mem.Write(operand, mc.A.Value())
	},

	instructions.TAX: func(_ *Interpreter, mc *cpu.CPU, _ *instructions.Definition, _ uint16) error {
		mc.X.Load(mc.A.Value())
		mc.UpdateZeroFlag(mc.X.Value())
		mc.UpdateNegativeFlag(mc.X.Value())
		return nil
	},

	instructions.TXA: func(_ *Interpreter, mc *cpu.CPU, _ *instructions.Definition, _ uint16) error {
		mc.A.Load(mc.X.Value())
		mc.UpdateZeroFlag(mc.A.Value())
		mc.UpdateNegativeFlag(mc.A.Value())
		return nil
	},

	instructions.INX: func(_ *Interpreter, mc *cpu.CPU, _ *instructions.Definition, _ uint16) error {
		mc.X.Increment()
		mc.UpdateZeroFlag(mc.X.Value())
		mc.UpdateNegativeFlag(mc.X.Value())
		return nil
	},

	instructions.NOP: func(_ *Interpreter, _ *cpu.CPU, _ *instructions.Definition, _ uint16) error {
		return nil
	},
}

// value returns the value an instruction with the Read effect works with.
// for immediate addressing this is the operand itself. for other addressing
// modes the operand is the address of the value.
func (it *Interpreter) value(defn *instructions.Definition, operand uint16) (uint8, error) {
	if defn.AddressingMode == instructions.Immediate {
		return uint8(operand), nil
	}
	return it.mem.Read(operand)
}
