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
	"fmt"
	"slices"

	"github.com/jetsetilly/sixtyfive/hardware/cpu"
	"github.com/jetsetilly/sixtyfive/hardware/cpu/execution"
	"github.com/jetsetilly/sixtyfive/hardware/cpu/instructions"
	"github.com/jetsetilly/sixtyfive/hardware/memory/cpubus"
	"github.com/jetsetilly/sixtyfive/logger"
)

// Interpreter runs an instruction stream against a CPU.
type Interpreter struct {
	mem cpubus.Memory

	source []uint8
	state  State

	// the program counter has wrapped past the end of the address space. the
	// stream is exhausted for as long as the program counter stays at zero
	wrapped bool

	// instruction definitions and handlers indexed by opcode. a nil
	// definition means the opcode is not supported
	defns    []*instructions.Definition
	handlers [256]handler

	// permission for logging of every executed instruction
	trace logger.Permission

	// the result of the most recent call to Step()
	LastResult execution.Result
}

// NewInterpreter is the preferred method of initialisation for the
// Interpreter type. Memory accesses made by instructions are made through
// the mem argument.
//
// Panics if an instruction definition has no handler.
func NewInterpreter(mem cpubus.Memory) *Interpreter {
	it := &Interpreter{
		mem:   mem,
		defns: instructions.GetDefinitions(),
		trace: logger.Deny,
	}

	for opcode, defn := range it.defns {
		if defn == nil {
			continue
		}
		h, ok := handlers[defn.Operator]
		if !ok {
			panic(fmt.Sprintf("interpreter: no handler for %s", defn))
		}
		it.handlers[opcode] = h
	}

	return it
}

// SetTrace sets the permission used to decide whether each executed
// instruction is logged. A nil permission turns trace logging off.
func (it *Interpreter) SetTrace(perm logger.Permission) {
	if perm == nil {
		perm = logger.Deny
	}
	it.trace = perm
}

// Load an instruction stream. The stream replaces any previously loaded
// stream and the interpreter is made ready, whatever its current state.
//
// A nil stream counts as loaded and will halt immediately.
func (it *Interpreter) Load(source []uint8) {
	it.source = source
	it.state = Ready
	it.wrapped = false
	it.LastResult.Reset()
}

// State returns the current state of the interpreter.
func (it *Interpreter) State() State {
	return it.state
}

// Definitions returns the instruction table used by the interpreter, indexed
// by opcode. Unsupported opcodes have a nil entry.
func (it *Interpreter) Definitions() []*instructions.Definition {
	return slices.Clone(it.defns)
}

// Interpret the loaded instruction stream, starting at the current program
// counter of the CPU, until the stream halts or an error occurs.
func (it *Interpreter) Interpret(mc *cpu.CPU) error {
	if it.state == Unloaded {
		return NoSourceLoaded
	}

	for {
		r, err := it.Step(mc)
		if err != nil {
			return err
		}
		if r.Halted {
			return nil
		}
	}
}

// Step executes a single instruction. The returned Result describes the
// instruction even if an error is returned.
func (it *Interpreter) Step(mc *cpu.CPU) (execution.Result, error) {
	if it.state == Unloaded {
		return execution.Result{}, NoSourceLoaded
	}

	r, err := it.step(mc)
	it.LastResult = r

	if err != nil {
		it.state = Halted
		logger.Logf(logger.Allow, "interpreter", "%s: %v", r, err)
		return r, err
	}

	if r.Halted {
		it.state = Halted
		logger.Logf(it.trace, "interpreter", "%s", r)
		return r, nil
	}

	it.state = Running
	logger.Logf(it.trace, "interpreter", "%s  %s", r, mc)

	return r, nil
}

// read the byte at the program counter without changing it. returns false if
// the program counter is beyond the end of the stream.
func (it *Interpreter) peek(mc *cpu.CPU) (uint8, bool) {
	pc := mc.PC.Address()
	if it.wrapped {
		if pc == 0 {
			return 0, false
		}
		it.wrapped = false
	}
	if int(pc) >= len(it.source) {
		return 0, false
	}
	return it.source[pc], true
}

// advance the program counter by one, noting when it wraps
func (it *Interpreter) advance(mc *cpu.CPU) {
	mc.PC.Increment()
	if mc.PC.Address() == 0 {
		it.wrapped = true
	}
}

// read the byte at the program counter and advance the program counter.
func (it *Interpreter) fetch(mc *cpu.CPU) (uint8, error) {
	v, ok := it.peek(mc)
	if !ok {
		return 0, ExpectedParameterError{Position: mc.PC.Address()}
	}
	it.advance(mc)
	return v, nil
}

func (it *Interpreter) step(mc *cpu.CPU) (execution.Result, error) {
	r := execution.Result{
		Address: mc.PC.Address(),
	}

	opcode, ok := it.peek(mc)
	if !ok || opcode == instructions.HaltOpcode {
		r.Halted = true
		r.Final = true
		return r, nil
	}

	defn := it.defns[opcode]
	if defn == nil {
		return r, UnsupportedOpcodeError{Opcode: opcode}
	}
	r.Defn = defn

	it.advance(mc)
	r.ByteCount = 1

	// operand bytes are little-endian
	for i := range defn.AddressingMode.OperandBytes() {
		v, err := it.fetch(mc)
		if err != nil {
			return r, err
		}
		r.InstructionData |= uint16(v) << (8 * i)
		r.ByteCount++
	}

	if err := it.handlers[opcode](it, mc, defn, r.InstructionData); err != nil {
		return r, fmt.Errorf("%s: %w", defn.Operator, err)
	}

	r.Final = true

	return r, nil
}
