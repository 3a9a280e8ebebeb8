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

package hardware

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/sixtyfive/hardware/cpu"
	"github.com/jetsetilly/sixtyfive/hardware/cpu/execution"
	"github.com/jetsetilly/sixtyfive/hardware/cpu/interpreter"
	"github.com/jetsetilly/sixtyfive/hardware/instance"
	"github.com/jetsetilly/sixtyfive/hardware/memory"
	"github.com/jetsetilly/sixtyfive/hardware/memory/memorymap"
	"github.com/jetsetilly/sixtyfive/logger"
)

// Machine is the main container for the emulated components.
type Machine struct {
	Instance *instance.Instance

	CPU         *cpu.CPU
	RAM         *memory.RAM
	ROM         *memory.ROM
	Bus         *memory.Bus
	Interpreter *interpreter.Interpreter
}

// NewMachine creates a new Machine and everything associated with the
// hardware. If the instance argument is nil then a new instance is created
// with default preferences.
func NewMachine(ins *instance.Instance) (*Machine, error) {
	if ins == nil {
		var err error
		ins, err = instance.NewInstance(nil)
		if err != nil {
			return nil, fmt.Errorf("machine: %w", err)
		}
	}

	m := &Machine{
		Instance: ins,
		CPU:      cpu.NewCPU(ins),
		RAM:      memory.NewRAM(),
		ROM:      memory.NewROM(ins.Prefs.ROMWrites()),
		Bus:      memory.NewBus(),
	}

	if err := m.Bus.Attach(memorymap.RAMRange, m.RAM); err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}
	if err := m.Bus.Attach(memorymap.ROMRange, m.ROM); err != nil {
		return nil, fmt.Errorf("machine: %w", err)
	}

	m.Interpreter = interpreter.NewInterpreter(m.Bus)
	m.Interpreter.SetTrace(ins.Prefs)

	m.Reset()

	return m, nil
}

func (m *Machine) String() string {
	s := strings.Builder{}
	s.WriteString(m.CPU.String())
	s.WriteString("\n")
	s.WriteString(m.Bus.Summary())
	return s.String()
}

// Reset the CPU and clear RAM. The contents of ROM are not changed.
func (m *Machine) Reset() {
	m.CPU.Reset()
	m.RAM.Reset()
}

// Load program into the interpreter and point the program counter at the
// start of the program. Registers and memory are not changed.
func (m *Machine) Load(program []uint8) {
	m.Interpreter.Load(program)
	m.CPU.PC.Load(0)
}

// LoadROM copies program into ROM. The program does not need to be loaded
// into ROM in order to be run.
func (m *Machine) LoadROM(program []uint8) error {
	if err := m.ROM.Load(0, program); err != nil {
		return fmt.Errorf("machine: %w", err)
	}
	return nil
}

// Step the loaded program by one instruction.
func (m *Machine) Step() (execution.Result, error) {
	return m.Interpreter.Step(m.CPU)
}

// Run loads program and runs it until it halts or an error occurs.
func (m *Machine) Run(program []uint8) error {
	m.Load(program)
	if err := m.Interpreter.Interpret(m.CPU); err != nil {
		return err
	}
	logger.Logf(m.Instance.Prefs, "machine", "halted: %s", m.CPU)
	return nil
}

// Continue running the loaded program one instruction at a time. The
// continueCheck function is called after every instruction and running stops
// if it returns false or an error. A nil continueCheck is the same as
// calling the Interpreter's Interpret() function.
//
// Returns nil if the program halts.
func (m *Machine) Continue(continueCheck func(r execution.Result) (bool, error)) error {
	if continueCheck == nil {
		return m.Interpreter.Interpret(m.CPU)
	}

	for {
		r, err := m.Step()
		if err != nil {
			return err
		}
		if r.Halted {
			return nil
		}

		ok, err := continueCheck(r)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}
